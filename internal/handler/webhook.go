package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"k8s.io/klog/v2"

	"github.com/vietmedtour/backend/internal/model"
	"github.com/vietmedtour/backend/internal/repository"
)

// WebhookHandler 处理 n8n 工作流推送的数据同步
type WebhookHandler struct {
	hospitals  repository.HospitalRepository
	knowledge  repository.KnowledgeRepository
	services   repository.ServiceRepository
	userShares repository.UserShareRepository
	contacts   repository.ContactRepository
}

func NewWebhookHandler(
	hospitals repository.HospitalRepository,
	knowledge repository.KnowledgeRepository,
	services repository.ServiceRepository,
	userShares repository.UserShareRepository,
	contacts repository.ContactRepository,
) *WebhookHandler {
	return &WebhookHandler{
		hospitals:  hospitals,
		knowledge:  knowledge,
		services:   services,
		userShares: userShares,
		contacts:   contacts,
	}
}

type webhookPayload struct {
	Type   string          `json:"type" binding:"required"`
	Data   json.RawMessage `json:"data" binding:"required"`
	Source string          `json:"source"`
}

type syncOutcome struct {
	Action string `json:"action"` // created, updated
	ID     uint   `json:"id"`
}

// N8N 单条数据同步，按 external_id 幂等去重
func (h *WebhookHandler) N8N(c *gin.Context) {
	var payload webhookPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, fail(err.Error()))
		return
	}

	outcome, err := h.sync(payload)
	if err != nil {
		klog.Errorf("n8n sync %s: %v", payload.Type, err)
		c.JSON(http.StatusBadRequest, fail(err.Error()))
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "action": outcome.Action, "id": outcome.ID, "type": payload.Type})
}

// Batch 批量同步，单条失败不中断其余条目
func (h *WebhookHandler) Batch(c *gin.Context) {
	var req struct {
		Items []webhookPayload `json:"items" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, fail(err.Error()))
		return
	}

	type batchError struct {
		Index int    `json:"index"`
		Error string `json:"error"`
	}
	var (
		results []syncOutcome
		errs    []batchError
	)
	for i, item := range req.Items {
		outcome, err := h.sync(item)
		if err != nil {
			klog.Errorf("batch sync item %d (%s): %v", i, item.Type, err)
			errs = append(errs, batchError{Index: i, Error: err.Error()})
			continue
		}
		results = append(results, *outcome)
	}
	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"processed": len(results),
		"failed":    len(errs),
		"results":   results,
		"errors":    errs,
	})
}

// SyncStatus 各数据表当前行数
func (h *WebhookHandler) SyncStatus(c *gin.Context) {
	counts := gin.H{}
	for name, counter := range map[string]func() (int64, error){
		"hospitals":   h.hospitals.Count,
		"knowledge":   h.knowledge.Count,
		"services":    h.services.Count,
		"user_shares": h.userShares.Count,
		"contacts":    h.contacts.Count,
	} {
		n, err := counter()
		if err != nil {
			klog.Errorf("count %s: %v", name, err)
			c.JSON(http.StatusInternalServerError, fail(err.Error()))
			return
		}
		counts[name] = n
	}
	c.JSON(http.StatusOK, okData(counts))
}

func (h *WebhookHandler) sync(payload webhookPayload) (*syncOutcome, error) {
	source := payload.Source
	if source == "" {
		source = model.SourceN8N
	}
	switch payload.Type {
	case "hospital":
		return h.syncHospital(payload.Data, source)
	case "knowledge":
		return h.syncKnowledge(payload.Data, source)
	case "service":
		return h.syncService(payload.Data, source)
	case "user_share":
		return h.syncUserShare(payload.Data, source)
	case "contact":
		return h.syncContact(payload.Data, source)
	default:
		return nil, fmt.Errorf("unknown data type: %s", payload.Type)
	}
}

func (h *WebhookHandler) syncHospital(data json.RawMessage, source string) (*syncOutcome, error) {
	var incoming model.Hospital
	if err := json.Unmarshal(data, &incoming); err != nil {
		return nil, fmt.Errorf("parse hospital data: %w", err)
	}
	if incoming.Name == "" {
		return nil, fmt.Errorf("hospital name is required")
	}

	if incoming.ExternalID != "" {
		existing, err := h.hospitals.GetByExternalID(incoming.ExternalID)
		if err == nil {
			id := existing.ID
			if err := json.Unmarshal(data, existing); err != nil {
				return nil, fmt.Errorf("parse hospital data: %w", err)
			}
			existing.ID = id
			existing.Source = source
			if err := h.hospitals.Save(existing); err != nil {
				return nil, err
			}
			return &syncOutcome{Action: "updated", ID: existing.ID}, nil
		}
	}

	incoming.ID = 0
	incoming.Source = source
	if err := h.hospitals.Create(&incoming); err != nil {
		return nil, err
	}
	return &syncOutcome{Action: "created", ID: incoming.ID}, nil
}

func (h *WebhookHandler) syncKnowledge(data json.RawMessage, source string) (*syncOutcome, error) {
	var incoming model.Knowledge
	if err := json.Unmarshal(data, &incoming); err != nil {
		return nil, fmt.Errorf("parse knowledge data: %w", err)
	}
	if incoming.Question == "" || incoming.Answer == "" {
		return nil, fmt.Errorf("knowledge question and answer are required")
	}

	if incoming.ExternalID != "" {
		existing, err := h.knowledge.GetByExternalID(incoming.ExternalID)
		if err == nil {
			id := existing.ID
			if err := json.Unmarshal(data, existing); err != nil {
				return nil, fmt.Errorf("parse knowledge data: %w", err)
			}
			existing.ID = id
			existing.Source = source
			if err := h.knowledge.Save(existing); err != nil {
				return nil, err
			}
			return &syncOutcome{Action: "updated", ID: existing.ID}, nil
		}
	}

	incoming.ID = 0
	incoming.Source = source
	if err := h.knowledge.Create(&incoming); err != nil {
		return nil, err
	}
	return &syncOutcome{Action: "created", ID: incoming.ID}, nil
}

func (h *WebhookHandler) syncService(data json.RawMessage, source string) (*syncOutcome, error) {
	var incoming model.Service
	if err := json.Unmarshal(data, &incoming); err != nil {
		return nil, fmt.Errorf("parse service data: %w", err)
	}
	if incoming.Name == "" {
		return nil, fmt.Errorf("service name is required")
	}

	if incoming.ExternalID != "" {
		existing, err := h.services.GetByExternalID(incoming.ExternalID)
		if err == nil {
			id := existing.ID
			if err := json.Unmarshal(data, existing); err != nil {
				return nil, fmt.Errorf("parse service data: %w", err)
			}
			existing.ID = id
			existing.Source = source
			if err := h.services.Save(existing); err != nil {
				return nil, err
			}
			return &syncOutcome{Action: "updated", ID: existing.ID}, nil
		}
	}

	incoming.ID = 0
	incoming.Source = source
	if err := h.services.Create(&incoming); err != nil {
		return nil, err
	}
	return &syncOutcome{Action: "created", ID: incoming.ID}, nil
}

func (h *WebhookHandler) syncUserShare(data json.RawMessage, source string) (*syncOutcome, error) {
	var incoming model.UserShare
	if err := json.Unmarshal(data, &incoming); err != nil {
		return nil, fmt.Errorf("parse user share data: %w", err)
	}
	if incoming.Title == "" || incoming.Content == "" {
		return nil, fmt.Errorf("user share title and content are required")
	}

	if incoming.ExternalID != "" {
		existing, err := h.userShares.GetByExternalID(incoming.ExternalID)
		if err == nil {
			id := existing.ID
			if err := json.Unmarshal(data, existing); err != nil {
				return nil, fmt.Errorf("parse user share data: %w", err)
			}
			existing.ID = id
			existing.Source = source
			if err := h.userShares.Save(existing); err != nil {
				return nil, err
			}
			return &syncOutcome{Action: "updated", ID: existing.ID}, nil
		}
	}

	incoming.ID = 0
	incoming.Source = source
	if err := h.userShares.Create(&incoming); err != nil {
		return nil, err
	}
	return &syncOutcome{Action: "created", ID: incoming.ID}, nil
}

// syncContact 咨询留言只追加，不按 external_id 更新
func (h *WebhookHandler) syncContact(data json.RawMessage, source string) (*syncOutcome, error) {
	var incoming model.Contact
	if err := json.Unmarshal(data, &incoming); err != nil {
		return nil, fmt.Errorf("parse contact data: %w", err)
	}
	if incoming.Name == "" || incoming.Email == "" {
		return nil, fmt.Errorf("contact name and email are required")
	}

	incoming.ID = 0
	incoming.Source = source
	if err := h.contacts.Create(&incoming); err != nil {
		return nil, err
	}
	return &syncOutcome{Action: "created", ID: incoming.ID}, nil
}
