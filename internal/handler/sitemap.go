package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"k8s.io/klog/v2"

	"github.com/vietmedtour/backend/internal/repository"
)

// SitemapHandler 外部静态站点生成器用的分页数据源
type SitemapHandler struct {
	knowledge  repository.KnowledgeRepository
	userShares repository.UserShareRepository
	hospitals  repository.HospitalRepository
	baseURL    string
}

func NewSitemapHandler(
	knowledge repository.KnowledgeRepository,
	userShares repository.UserShareRepository,
	hospitals repository.HospitalRepository,
	baseURL string,
) *SitemapHandler {
	return &SitemapHandler{
		knowledge:  knowledge,
		userShares: userShares,
		hospitals:  hospitals,
		baseURL:    baseURL,
	}
}

func (h *SitemapHandler) page(c *gin.Context, fetch func(page, limit int, status string) ([]repository.SitemapEntry, int64, error), status string) {
	page := intQuery(c, "page", 1)
	limit := intQuery(c, "limit", 5000)

	entries, total, err := fetch(page, limit, status)
	if err != nil {
		klog.Errorf("sitemap page: %v", err)
		c.JSON(http.StatusInternalServerError, fail(err.Error()))
		return
	}

	pages := (total + int64(limit) - 1) / int64(limit)
	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"data":     entries,
		"base_url": h.baseURL,
		"pagination": Pagination{
			Page:  page,
			Limit: limit,
			Total: total,
			Pages: pages,
		},
	})
}

func (h *SitemapHandler) Knowledge(c *gin.Context) {
	h.page(c, h.knowledge.SitemapPage, "published")
}

func (h *SitemapHandler) Sharing(c *gin.Context) {
	h.page(c, h.userShares.SitemapPage, "published")
}

func (h *SitemapHandler) Hospitals(c *gin.Context) {
	h.page(c, h.hospitals.SitemapPage, "active")
}
