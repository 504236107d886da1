package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/vietmedtour/backend/internal/repository"
)

// Pagination 列表响应的分页信息
type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int64 `json:"pages"`
}

func newPagination(q repository.ListQuery, total int64) Pagination {
	page := q.Page
	if page < 1 {
		page = 1
	}
	limit := q.Limit
	if limit < 1 {
		limit = 10
	}
	pages := (total + int64(limit) - 1) / int64(limit)
	return Pagination{Page: page, Limit: limit, Total: total, Pages: pages}
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

func intQuery(c *gin.Context, key string, def int) int {
	v, err := strconv.Atoi(c.Query(key))
	if err != nil {
		return def
	}
	return v
}

func boolQuery(c *gin.Context, key string) *bool {
	raw := c.Query(key)
	if raw == "" {
		return nil
	}
	b := raw == "true" || raw == "1"
	return &b
}

// listQuery 解析列表接口的通用查询参数
func listQuery(c *gin.Context) repository.ListQuery {
	return repository.ListQuery{
		Page:   intQuery(c, "page", 1),
		Limit:  intQuery(c, "limit", 10),
		Status: c.Query("status"),
		Search: c.Query("search"),
		Sort:   c.Query("sort"),
		Order:  c.Query("order"),

		Category:        c.Query("category"),
		Subcategory:     c.Query("subcategory"),
		DifficultyLevel: c.Query("difficulty_level"),
		City:            c.Query("city"),
		Type:            c.Query("type"),
		Level:           c.Query("level"),
		SurgeryType:     c.Query("surgery_type"),
		HospitalName:    c.Query("hospital_name"),
		InquiryType:     c.Query("inquiry_type"),
		Priority:        c.Query("priority"),
		AssignedTo:      c.Query("assigned_to"),
		IsPopular:       boolQuery(c, "is_popular"),
		IsRecommended:   boolQuery(c, "is_recommended"),
	}
}

func okData(data interface{}) gin.H {
	return gin.H{"success": true, "data": data}
}

func okList(data interface{}, q repository.ListQuery, total int64) gin.H {
	return gin.H{"success": true, "data": data, "pagination": newPagination(q, total)}
}

func fail(message string) gin.H {
	return gin.H{"success": false, "error": message}
}
