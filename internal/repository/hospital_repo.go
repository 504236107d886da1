package repository

import (
	"errors"

	"github.com/vietmedtour/backend/internal/model"
	"gorm.io/gorm"
)

type hospitalRepository struct {
	db *gorm.DB
}

func NewHospitalRepository(db *gorm.DB) HospitalRepository {
	return &hospitalRepository{db: db}
}

func (r *hospitalRepository) Create(h *model.Hospital) error {
	return r.db.Create(h).Error
}

func (r *hospitalRepository) Get(id uint) (*model.Hospital, error) {
	var h model.Hospital
	err := r.db.First(&h, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &h, nil
}

func (r *hospitalRepository) GetByExternalID(externalID string) (*model.Hospital, error) {
	var h model.Hospital
	err := r.db.Where("external_id = ?", externalID).First(&h).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &h, nil
}

func (r *hospitalRepository) Save(h *model.Hospital) error {
	return r.db.Save(h).Error
}

func (r *hospitalRepository) List(q ListQuery) ([]model.Hospital, int64, error) {
	tx := r.db.Model(&model.Hospital{})
	if q.Status != "" {
		tx = tx.Where("status = ?", q.Status)
	}
	if q.City != "" {
		tx = tx.Where("city = ?", q.City)
	}
	if q.Type != "" {
		tx = tx.Where("type = ?", q.Type)
	}
	if q.Level != "" {
		tx = tx.Where("level = ?", q.Level)
	}
	if q.Search != "" {
		like := "%" + q.Search + "%"
		tx = tx.Where("name LIKE ? OR description LIKE ?", like, like)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var hospitals []model.Hospital
	err := tx.Order(q.orderClause("rating")).
		Limit(q.limit()).Offset(q.offset()).
		Find(&hospitals).Error
	return hospitals, total, err
}

// ListActive 返回全部活跃医院，按 ID 升序。生成器总是基于全量活跃集合工作，不分页
func (r *hospitalRepository) ListActive() ([]model.Hospital, error) {
	var hospitals []model.Hospital
	err := r.db.Where("status = ?", "active").Order("id ASC").Find(&hospitals).Error
	return hospitals, err
}

// Deactivate 软删除，状态翻转为 inactive
func (r *hospitalRepository) Deactivate(id uint) error {
	res := r.db.Model(&model.Hospital{}).Where("id = ?", id).Update("status", "inactive")
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// SitemapPage 站点地图分页，只取生成 URL 需要的列
func (r *hospitalRepository) SitemapPage(page, limit int, status string) ([]SitemapEntry, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 5000
	}
	if status == "" {
		status = "active"
	}

	tx := r.db.Model(&model.Hospital{}).Where("status = ?", status)
	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var entries []SitemapEntry
	err := tx.Select("id, name AS title, updated_at, created_at, review_count AS view_count").
		Order("updated_at DESC").
		Limit(limit).Offset((page - 1) * limit).
		Scan(&entries).Error
	return entries, total, err
}

func (r *hospitalRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&model.Hospital{}).Count(&count).Error
	return count, err
}
