package repository

import (
	"errors"

	"github.com/vietmedtour/backend/internal/model"
	"gorm.io/gorm"
)

type contactRepository struct {
	db *gorm.DB
}

func NewContactRepository(db *gorm.DB) ContactRepository {
	return &contactRepository{db: db}
}

func (r *contactRepository) Create(c *model.Contact) error {
	return r.db.Create(c).Error
}

func (r *contactRepository) Get(id uint) (*model.Contact, error) {
	var c model.Contact
	err := r.db.First(&c, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *contactRepository) Save(c *model.Contact) error {
	return r.db.Save(c).Error
}

func (r *contactRepository) List(q ListQuery) ([]model.Contact, int64, error) {
	tx := r.db.Model(&model.Contact{})
	if q.Status != "" {
		tx = tx.Where("status = ?", q.Status)
	}
	if q.Priority != "" {
		tx = tx.Where("priority = ?", q.Priority)
	}
	if q.InquiryType != "" {
		tx = tx.Where("inquiry_type = ?", q.InquiryType)
	}
	if q.AssignedTo != "" {
		tx = tx.Where("assigned_to = ?", q.AssignedTo)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var contacts []model.Contact
	err := tx.Order(q.orderClause("created_at")).
		Limit(q.limit()).Offset(q.offset()).
		Find(&contacts).Error
	return contacts, total, err
}

func (r *contactRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&model.Contact{}).Count(&count).Error
	return count, err
}
