package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"k8s.io/klog/v2"

	"github.com/vietmedtour/backend/internal/repository"
)

type HospitalHandler struct {
	repo repository.HospitalRepository
}

func NewHospitalHandler(repo repository.HospitalRepository) *HospitalHandler {
	return &HospitalHandler{repo: repo}
}

// List 医院列表，支持 city/type/level/status/search 过滤
func (h *HospitalHandler) List(c *gin.Context) {
	q := listQuery(c)
	hospitals, total, err := h.repo.List(q)
	if err != nil {
		klog.Errorf("list hospitals: %v", err)
		c.JSON(http.StatusInternalServerError, fail(err.Error()))
		return
	}
	c.JSON(http.StatusOK, okList(hospitals, q, total))
}

func (h *HospitalHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, fail("invalid id"))
		return
	}

	hospital, err := h.repo.Get(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, fail("hospital not found"))
			return
		}
		klog.Errorf("get hospital %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, fail(err.Error()))
		return
	}
	c.JSON(http.StatusOK, okData(hospital))
}

// Delete 软删除，状态翻转为 inactive，数据行保留
func (h *HospitalHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, fail("invalid id"))
		return
	}

	if err := h.repo.Deactivate(id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, fail("hospital not found"))
			return
		}
		klog.Errorf("deactivate hospital %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, fail(err.Error()))
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "hospital deactivated"})
}
