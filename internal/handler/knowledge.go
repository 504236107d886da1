package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"k8s.io/klog/v2"

	"github.com/vietmedtour/backend/internal/model"
	"github.com/vietmedtour/backend/internal/repository"
)

type KnowledgeHandler struct {
	repo repository.KnowledgeRepository
}

func NewKnowledgeHandler(repo repository.KnowledgeRepository) *KnowledgeHandler {
	return &KnowledgeHandler{repo: repo}
}

// List 问答列表，支持 category/subcategory/difficulty_level/status/search 过滤
func (h *KnowledgeHandler) List(c *gin.Context) {
	q := listQuery(c)
	items, total, err := h.repo.List(q)
	if err != nil {
		klog.Errorf("list knowledge: %v", err)
		c.JSON(http.StatusInternalServerError, fail(err.Error()))
		return
	}
	c.JSON(http.StatusOK, okList(items, q, total))
}

// Get 问答详情，阅读数加一
func (h *KnowledgeHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, fail("invalid id"))
		return
	}

	item, err := h.repo.Get(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, fail("knowledge not found"))
			return
		}
		klog.Errorf("get knowledge %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, fail(err.Error()))
		return
	}

	if err := h.repo.IncrementView(id); err != nil {
		klog.Errorf("increment view for knowledge %d: %v", id, err)
	} else {
		item.ViewCount++
	}
	c.JSON(http.StatusOK, okData(item))
}

func (h *KnowledgeHandler) Create(c *gin.Context) {
	var req struct {
		Question        string   `json:"question" binding:"required"`
		Answer          string   `json:"answer" binding:"required"`
		Category        string   `json:"category"`
		Subcategory     string   `json:"subcategory"`
		DoctorName      string   `json:"doctor_name"`
		DoctorTitle     string   `json:"doctor_title"`
		DoctorAvatar    string   `json:"doctor_avatar"`
		HospitalName    string   `json:"hospital_name"`
		Tags            []string `json:"tags"`
		DifficultyLevel string   `json:"difficulty_level"`
		Status          string   `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, fail(err.Error()))
		return
	}

	item := &model.Knowledge{
		Question:        req.Question,
		Answer:          req.Answer,
		Category:        req.Category,
		Subcategory:     req.Subcategory,
		DoctorName:      req.DoctorName,
		DoctorTitle:     req.DoctorTitle,
		DoctorAvatar:    req.DoctorAvatar,
		HospitalName:    req.HospitalName,
		Tags:            req.Tags,
		DifficultyLevel: req.DifficultyLevel,
		Status:          req.Status,
		Source:          model.SourceManual,
	}
	if err := h.repo.Create(item); err != nil {
		klog.Errorf("create knowledge: %v", err)
		c.JSON(http.StatusInternalServerError, fail(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, okData(item))
}

// Like 点赞数加一
func (h *KnowledgeHandler) Like(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, fail("invalid id"))
		return
	}

	if _, err := h.repo.Get(id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, fail("knowledge not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, fail(err.Error()))
		return
	}
	if err := h.repo.IncrementLike(id); err != nil {
		klog.Errorf("increment like for knowledge %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, fail(err.Error()))
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "liked"})
}
