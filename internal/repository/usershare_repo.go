package repository

import (
	"errors"

	"github.com/vietmedtour/backend/internal/model"
	"gorm.io/gorm"
)

type userShareRepository struct {
	db *gorm.DB
}

func NewUserShareRepository(db *gorm.DB) UserShareRepository {
	return &userShareRepository{db: db}
}

func (r *userShareRepository) Create(s *model.UserShare) error {
	return r.db.Create(s).Error
}

func (r *userShareRepository) Get(id uint) (*model.UserShare, error) {
	var s model.UserShare
	err := r.db.First(&s, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &s, nil
}

func (r *userShareRepository) GetByExternalID(externalID string) (*model.UserShare, error) {
	var s model.UserShare
	err := r.db.Where("external_id = ?", externalID).First(&s).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &s, nil
}

func (r *userShareRepository) Save(s *model.UserShare) error {
	return r.db.Save(s).Error
}

func (r *userShareRepository) List(q ListQuery) ([]model.UserShare, int64, error) {
	tx := r.db.Model(&model.UserShare{})
	if q.Status != "" {
		tx = tx.Where("status = ?", q.Status)
	}
	if q.SurgeryType != "" {
		tx = tx.Where("surgery_type = ?", q.SurgeryType)
	}
	if q.HospitalName != "" {
		tx = tx.Where("hospital_name = ?", q.HospitalName)
	}
	if q.Search != "" {
		like := "%" + q.Search + "%"
		tx = tx.Where("title LIKE ? OR content LIKE ? OR author_name LIKE ?", like, like, like)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var shares []model.UserShare
	err := tx.Order(q.orderClause("created_at")).
		Limit(q.limit()).Offset(q.offset()).
		Find(&shares).Error
	return shares, total, err
}

func (r *userShareRepository) IncrementView(id uint) error {
	return r.db.Model(&model.UserShare{}).Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + 1")).Error
}

func (r *userShareRepository) IncrementLike(id uint) error {
	return r.db.Model(&model.UserShare{}).Where("id = ?", id).
		UpdateColumn("like_count", gorm.Expr("like_count + 1")).Error
}

func (r *userShareRepository) SitemapPage(page, limit int, status string) ([]SitemapEntry, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 5000
	}
	if status == "" {
		status = "published"
	}

	tx := r.db.Model(&model.UserShare{}).Where("status = ?", status)

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var entries []SitemapEntry
	err := tx.Select("id, title, updated_at, created_at, view_count").
		Order("updated_at DESC").
		Limit(limit).Offset((page - 1) * limit).
		Scan(&entries).Error
	return entries, total, err
}

func (r *userShareRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&model.UserShare{}).Count(&count).Error
	return count, err
}
