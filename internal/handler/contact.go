package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"k8s.io/klog/v2"

	"github.com/vietmedtour/backend/internal/model"
	"github.com/vietmedtour/backend/internal/repository"
)

type ContactHandler struct {
	repo repository.ContactRepository
}

func NewContactHandler(repo repository.ContactRepository) *ContactHandler {
	return &ContactHandler{repo: repo}
}

func (h *ContactHandler) Create(c *gin.Context) {
	var req struct {
		Name             string `json:"name" binding:"required"`
		Email            string `json:"email" binding:"required,email"`
		Phone            string `json:"phone"`
		Subject          string `json:"subject" binding:"required"`
		Message          string `json:"message" binding:"required"`
		InquiryType      string `json:"inquiry_type"`
		PreferredContact string `json:"preferred_contact"`
		HospitalInterest string `json:"hospital_interest"`
		ServiceInterest  string `json:"service_interest"`
		BudgetRange      string `json:"budget_range"`
		Timeline         string `json:"timeline"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, fail(err.Error()))
		return
	}

	contact := &model.Contact{
		Name:             req.Name,
		Email:            req.Email,
		Phone:            req.Phone,
		Subject:          req.Subject,
		Message:          req.Message,
		InquiryType:      req.InquiryType,
		PreferredContact: req.PreferredContact,
		HospitalInterest: req.HospitalInterest,
		ServiceInterest:  req.ServiceInterest,
		BudgetRange:      req.BudgetRange,
		Timeline:         req.Timeline,
		Source:           model.SourceWebsite,
	}
	if err := h.repo.Create(contact); err != nil {
		klog.Errorf("create contact: %v", err)
		c.JSON(http.StatusInternalServerError, fail(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, okData(contact))
}

// List 咨询列表，支持 status/inquiry_type/priority/assigned_to 过滤
func (h *ContactHandler) List(c *gin.Context) {
	q := listQuery(c)
	contacts, total, err := h.repo.List(q)
	if err != nil {
		klog.Errorf("list contacts: %v", err)
		c.JSON(http.StatusInternalServerError, fail(err.Error()))
		return
	}
	c.JSON(http.StatusOK, okList(contacts, q, total))
}

// UpdateStatus 更新处理状态，填写回复时记录回复时间
func (h *ContactHandler) UpdateStatus(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, fail("invalid id"))
		return
	}

	var req struct {
		Status     string `json:"status" binding:"required"`
		Priority   string `json:"priority"`
		AssignedTo string `json:"assigned_to"`
		Response   string `json:"response"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, fail(err.Error()))
		return
	}

	contact, err := h.repo.Get(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, fail("contact not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, fail(err.Error()))
		return
	}

	contact.Status = req.Status
	if req.Priority != "" {
		contact.Priority = req.Priority
	}
	if req.AssignedTo != "" {
		contact.AssignedTo = req.AssignedTo
	}
	if req.Response != "" {
		contact.Response = req.Response
		now := time.Now()
		contact.ResponseDate = &now
	}
	if err := h.repo.Save(contact); err != nil {
		klog.Errorf("update contact %d status: %v", id, err)
		c.JSON(http.StatusInternalServerError, fail(err.Error()))
		return
	}
	c.JSON(http.StatusOK, okData(contact))
}
