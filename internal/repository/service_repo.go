package repository

import (
	"errors"

	"github.com/vietmedtour/backend/internal/model"
	"gorm.io/gorm"
)

type serviceRepository struct {
	db *gorm.DB
}

func NewServiceRepository(db *gorm.DB) ServiceRepository {
	return &serviceRepository{db: db}
}

func (r *serviceRepository) Create(s *model.Service) error {
	return r.db.Create(s).Error
}

func (r *serviceRepository) Get(id uint) (*model.Service, error) {
	var s model.Service
	err := r.db.First(&s, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &s, nil
}

func (r *serviceRepository) GetByExternalID(externalID string) (*model.Service, error) {
	var s model.Service
	err := r.db.Where("external_id = ?", externalID).First(&s).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &s, nil
}

func (r *serviceRepository) Save(s *model.Service) error {
	return r.db.Save(s).Error
}

func (r *serviceRepository) List(q ListQuery) ([]model.Service, int64, error) {
	tx := r.db.Model(&model.Service{})
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
	if q.IsPopular != nil {
		tx = tx.Where("is_popular = ?", *q.IsPopular)
	}
	if q.IsRecommended != nil {
		tx = tx.Where("is_recommended = ?", *q.IsRecommended)
	}
	if q.Search != "" {
		like := "%" + q.Search + "%"
		tx = tx.Where("name LIKE ? OR description LIKE ?", like, like)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var services []model.Service
	err := tx.Order(q.orderClause("created_at")).
		Limit(q.limit()).Offset(q.offset()).
		Find(&services).Error
	return services, total, err
}

func (r *serviceRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&model.Service{}).Count(&count).Error
	return count, err
}
