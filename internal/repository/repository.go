package repository

import (
	"errors"
	"time"

	"github.com/vietmedtour/backend/internal/model"
)

// ErrNotFound 记录不存在错误
var ErrNotFound = errors.New("record not found")

// ListQuery 列表查询通用参数，字段为空则不过滤
type ListQuery struct {
	Page   int
	Limit  int
	Status string
	Search string
	Sort   string
	Order  string // ASC, DESC

	// 实体各自的过滤字段
	Category        string
	Subcategory     string
	DifficultyLevel string
	City            string
	Type            string
	Level           string
	SurgeryType     string
	HospitalName    string
	InquiryType     string
	Priority        string
	AssignedTo      string
	IsPopular       *bool
	IsRecommended   *bool
}

// SitemapEntry 站点地图分页条目，只带生成 URL 需要的字段
type SitemapEntry struct {
	ID        uint      `json:"id"`
	Title     string    `json:"title"`
	UpdatedAt time.Time `json:"updated_at"`
	CreatedAt time.Time `json:"created_at"`
	ViewCount int       `json:"view_count"`
}

type HospitalRepository interface {
	Create(h *model.Hospital) error
	Get(id uint) (*model.Hospital, error)
	GetByExternalID(externalID string) (*model.Hospital, error)
	Save(h *model.Hospital) error
	List(q ListQuery) ([]model.Hospital, int64, error)
	ListActive() ([]model.Hospital, error)
	Deactivate(id uint) error
	SitemapPage(page, limit int, status string) ([]SitemapEntry, int64, error)
	Count() (int64, error)
}

type KnowledgeRepository interface {
	Create(k *model.Knowledge) error
	Get(id uint) (*model.Knowledge, error)
	GetByExternalID(externalID string) (*model.Knowledge, error)
	Save(k *model.Knowledge) error
	List(q ListQuery) ([]model.Knowledge, int64, error)
	IncrementView(id uint) error
	IncrementLike(id uint) error
	SitemapPage(page, limit int, status string) ([]SitemapEntry, int64, error)
	Count() (int64, error)
}

type ServiceRepository interface {
	Create(s *model.Service) error
	Get(id uint) (*model.Service, error)
	GetByExternalID(externalID string) (*model.Service, error)
	Save(s *model.Service) error
	List(q ListQuery) ([]model.Service, int64, error)
	Count() (int64, error)
}

type UserShareRepository interface {
	Create(s *model.UserShare) error
	Get(id uint) (*model.UserShare, error)
	GetByExternalID(externalID string) (*model.UserShare, error)
	Save(s *model.UserShare) error
	List(q ListQuery) ([]model.UserShare, int64, error)
	IncrementView(id uint) error
	IncrementLike(id uint) error
	SitemapPage(page, limit int, status string) ([]SitemapEntry, int64, error)
	Count() (int64, error)
}

type ContactRepository interface {
	Create(c *model.Contact) error
	Get(id uint) (*model.Contact, error)
	Save(c *model.Contact) error
	List(q ListQuery) ([]model.Contact, int64, error)
	Count() (int64, error)
}

func (q ListQuery) offset() int {
	page := q.Page
	if page < 1 {
		page = 1
	}
	return (page - 1) * q.limit()
}

func (q ListQuery) limit() int {
	if q.Limit < 1 {
		return 10
	}
	return q.Limit
}

func (q ListQuery) orderClause(defaultSort string) string {
	sort := q.Sort
	if sort == "" {
		sort = defaultSort
	}
	order := q.Order
	if order != "ASC" && order != "asc" {
		order = "DESC"
	}
	return sort + " " + order
}
