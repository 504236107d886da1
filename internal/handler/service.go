package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"k8s.io/klog/v2"

	"github.com/vietmedtour/backend/internal/repository"
)

type ServiceHandler struct {
	repo repository.ServiceRepository
}

func NewServiceHandler(repo repository.ServiceRepository) *ServiceHandler {
	return &ServiceHandler{repo: repo}
}

// List 服务项目列表，支持 category/is_popular/is_recommended 过滤
func (h *ServiceHandler) List(c *gin.Context) {
	q := listQuery(c)
	services, total, err := h.repo.List(q)
	if err != nil {
		klog.Errorf("list services: %v", err)
		c.JSON(http.StatusInternalServerError, fail(err.Error()))
		return
	}
	c.JSON(http.StatusOK, okList(services, q, total))
}

func (h *ServiceHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, fail("invalid id"))
		return
	}

	svc, err := h.repo.Get(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, fail("service not found"))
			return
		}
		klog.Errorf("get service %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, fail(err.Error()))
		return
	}
	c.JSON(http.StatusOK, okData(svc))
}
