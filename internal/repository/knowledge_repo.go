package repository

import (
	"errors"

	"github.com/vietmedtour/backend/internal/model"
	"gorm.io/gorm"
)

type knowledgeRepository struct {
	db *gorm.DB
}

func NewKnowledgeRepository(db *gorm.DB) KnowledgeRepository {
	return &knowledgeRepository{db: db}
}

func (r *knowledgeRepository) Create(k *model.Knowledge) error {
	return r.db.Create(k).Error
}

func (r *knowledgeRepository) Get(id uint) (*model.Knowledge, error) {
	var k model.Knowledge
	err := r.db.First(&k, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &k, nil
}

func (r *knowledgeRepository) GetByExternalID(externalID string) (*model.Knowledge, error) {
	var k model.Knowledge
	err := r.db.Where("external_id = ?", externalID).First(&k).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &k, nil
}

func (r *knowledgeRepository) Save(k *model.Knowledge) error {
	return r.db.Save(k).Error
}

func (r *knowledgeRepository) List(q ListQuery) ([]model.Knowledge, int64, error) {
	tx := r.db.Model(&model.Knowledge{})
	if q.Status != "" {
		tx = tx.Where("status = ?", q.Status)
	}
	if q.Category != "" {
		tx = tx.Where("category = ?", q.Category)
	}
	if q.Subcategory != "" {
		tx = tx.Where("subcategory = ?", q.Subcategory)
	}
	if q.DifficultyLevel != "" {
		tx = tx.Where("difficulty_level = ?", q.DifficultyLevel)
	}
	if q.Search != "" {
		like := "%" + q.Search + "%"
		tx = tx.Where("question LIKE ? OR answer LIKE ?", like, like)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var items []model.Knowledge
	err := tx.Order(q.orderClause("created_at")).
		Limit(q.limit()).Offset(q.offset()).
		Find(&items).Error
	return items, total, err
}

func (r *knowledgeRepository) IncrementView(id uint) error {
	return r.db.Model(&model.Knowledge{}).Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + 1")).Error
}

func (r *knowledgeRepository) IncrementLike(id uint) error {
	return r.db.Model(&model.Knowledge{}).Where("id = ?", id).
		UpdateColumn("like_count", gorm.Expr("like_count + 1")).Error
}

// SitemapPage 按更新时间倒序分页，只取生成 URL 需要的列
func (r *knowledgeRepository) SitemapPage(page, limit int, status string) ([]SitemapEntry, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 5000
	}
	if status == "" {
		status = "published"
	}

	tx := r.db.Model(&model.Knowledge{}).Where("status = ?", status)

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var entries []SitemapEntry
	err := tx.Select("id, question AS title, updated_at, created_at, view_count").
		Order("updated_at DESC").
		Limit(limit).Offset((page - 1) * limit).
		Scan(&entries).Error
	return entries, total, err
}

func (r *knowledgeRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&model.Knowledge{}).Count(&count).Error
	return count, err
}
