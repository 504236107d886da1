package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"k8s.io/klog/v2"

	"github.com/vietmedtour/backend/internal/dqa"
)

// DQAHandler 自动问答生成相关接口
type DQAHandler struct {
	service *dqa.Service
}

func NewDQAHandler(service *dqa.Service) *DQAHandler {
	return &DQAHandler{service: service}
}

// Hospitals 医院数据概览与城市分布
func (h *DQAHandler) Hospitals(c *gin.Context) {
	data, err := h.service.HospitalList()
	if err != nil {
		klog.Errorf("dqa hospital list: %v", err)
		c.JSON(http.StatusInternalServerError, fail(err.Error()))
		return
	}
	c.JSON(http.StatusOK, okData(data))
}

// Hospital 单个医院详情
func (h *DQAHandler) Hospital(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, fail("invalid id"))
		return
	}

	hospital, err := h.service.GetHospital(id)
	if err != nil {
		if errors.Is(err, dqa.ErrHospitalNotFound) {
			c.JSON(http.StatusNotFound, fail(err.Error()))
			return
		}
		klog.Errorf("dqa get hospital %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, fail(err.Error()))
		return
	}
	c.JSON(http.StatusOK, okData(hospital))
}

// AnalyzeChains 连锁品牌覆盖分析
func (h *DQAHandler) AnalyzeChains(c *gin.Context) {
	result, err := h.service.AnalyzeChains()
	if err != nil {
		klog.Errorf("analyze chains: %v", err)
		c.JSON(http.StatusInternalServerError, fail(err.Error()))
		return
	}
	c.JSON(http.StatusOK, okData(result))
}

// Suggestions 待补充分店建议列表
func (h *DQAHandler) Suggestions(c *gin.Context) {
	suggestions, err := h.service.Suggestions()
	if err != nil {
		klog.Errorf("chain suggestions: %v", err)
		c.JSON(http.StatusInternalServerError, fail(err.Error()))
		return
	}
	c.JSON(http.StatusOK, okData(suggestions))
}

// Enhance 执行高优先级建议，创建分店医院
func (h *DQAHandler) Enhance(c *gin.Context) {
	var req struct {
		MaxCount int `json:"maxCount"`
	}
	// 空请求体按默认值处理
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, fail(err.Error()))
		return
	}

	result, err := h.service.ApplySuggestions(req.MaxCount)
	if err != nil {
		klog.Errorf("apply suggestions: %v", err)
		c.JSON(http.StatusInternalServerError, fail(err.Error()))
		return
	}
	c.JSON(http.StatusOK, okData(result))
}

// Generate 手动触发问答生成，count 取值 1-100
func (h *DQAHandler) Generate(c *gin.Context) {
	req := struct {
		Count int `json:"count"`
	}{Count: 1}
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, fail(err.Error()))
		return
	}

	result, err := h.service.GenerateDQA(req.Count)
	if err != nil {
		switch {
		case errors.Is(err, dqa.ErrCountOutOfRange):
			c.JSON(http.StatusBadRequest, fail(err.Error()))
		case errors.Is(err, dqa.ErrNoHospitals):
			c.JSON(http.StatusBadRequest, fail(err.Error()))
		default:
			klog.Errorf("generate dqa: %v", err)
			c.JSON(http.StatusInternalServerError, fail(err.Error()))
		}
		return
	}
	c.JSON(http.StatusOK, okData(result))
}

// Stats 调度器运行统计
func (h *DQAHandler) Stats(c *gin.Context) {
	c.JSON(http.StatusOK, okData(h.service.Stats()))
}

// ControlScheduler 调度器启停控制，action 为 start/stop/restart
func (h *DQAHandler) ControlScheduler(c *gin.Context) {
	action := c.Param("action")
	if err := h.service.ControlScheduler(action); err != nil {
		c.JSON(http.StatusBadRequest, fail(err.Error()))
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "action": action, "running": h.service.Running()})
}

// Status 调度器当前状态
func (h *DQAHandler) Status(c *gin.Context) {
	c.JSON(http.StatusOK, okData(gin.H{
		"running": h.service.Running(),
		"stats":   h.service.Stats(),
	}))
}
