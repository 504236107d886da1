package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"k8s.io/klog/v2"

	"github.com/vietmedtour/backend/internal/model"
	"github.com/vietmedtour/backend/internal/repository"
)

type UserShareHandler struct {
	repo repository.UserShareRepository
}

func NewUserShareHandler(repo repository.UserShareRepository) *UserShareHandler {
	return &UserShareHandler{repo: repo}
}

// List 用户分享列表，支持 surgery_type/hospital_name/status/search 过滤
func (h *UserShareHandler) List(c *gin.Context) {
	q := listQuery(c)
	shares, total, err := h.repo.List(q)
	if err != nil {
		klog.Errorf("list user shares: %v", err)
		c.JSON(http.StatusInternalServerError, fail(err.Error()))
		return
	}
	c.JSON(http.StatusOK, okList(shares, q, total))
}

// Get 分享详情，阅读数加一
func (h *UserShareHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, fail("invalid id"))
		return
	}

	share, err := h.repo.Get(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, fail("share not found"))
			return
		}
		klog.Errorf("get user share %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, fail(err.Error()))
		return
	}

	if err := h.repo.IncrementView(id); err != nil {
		klog.Errorf("increment view for share %d: %v", id, err)
	} else {
		share.ViewCount++
	}
	c.JSON(http.StatusOK, okData(share))
}

type userShareRequest struct {
	Title        string   `json:"title" binding:"required"`
	Content      string   `json:"content" binding:"required"`
	AuthorName   string   `json:"author_name" binding:"required"`
	AuthorAvatar string   `json:"author_avatar"`
	SurgeryType  string   `json:"surgery_type"`
	HospitalName string   `json:"hospital_name"`
	Rating       int      `json:"rating"`
	Images       []string `json:"images"`
	Tags         []string `json:"tags"`
	Status       string   `json:"status"`
}

func (h *UserShareHandler) Create(c *gin.Context) {
	var req userShareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, fail(err.Error()))
		return
	}

	share := &model.UserShare{
		Title:        req.Title,
		Content:      req.Content,
		AuthorName:   req.AuthorName,
		AuthorAvatar: req.AuthorAvatar,
		SurgeryType:  req.SurgeryType,
		HospitalName: req.HospitalName,
		Rating:       req.Rating,
		Images:       req.Images,
		Tags:         req.Tags,
		Status:       req.Status,
		Source:       model.SourceManual,
	}
	if err := h.repo.Create(share); err != nil {
		klog.Errorf("create user share: %v", err)
		c.JSON(http.StatusInternalServerError, fail(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, okData(share))
}

func (h *UserShareHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, fail("invalid id"))
		return
	}

	share, err := h.repo.Get(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, fail("share not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, fail(err.Error()))
		return
	}

	var req userShareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, fail(err.Error()))
		return
	}

	share.Title = req.Title
	share.Content = req.Content
	share.AuthorName = req.AuthorName
	share.AuthorAvatar = req.AuthorAvatar
	share.SurgeryType = req.SurgeryType
	share.HospitalName = req.HospitalName
	share.Rating = req.Rating
	share.Images = req.Images
	share.Tags = req.Tags
	if req.Status != "" {
		share.Status = req.Status
	}
	if err := h.repo.Save(share); err != nil {
		klog.Errorf("update user share %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, fail(err.Error()))
		return
	}
	c.JSON(http.StatusOK, okData(share))
}

// Like 点赞数加一
func (h *UserShareHandler) Like(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, fail("invalid id"))
		return
	}

	if _, err := h.repo.Get(id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, fail("share not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, fail(err.Error()))
		return
	}
	if err := h.repo.IncrementLike(id); err != nil {
		klog.Errorf("increment like for share %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, fail(err.Error()))
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "liked"})
}
