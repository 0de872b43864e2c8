package repository

import (
	"context"

	"gorm.io/gorm"

	"showroom/internal/model"
)

// ContactRepository defines contact message persistence operations.
type ContactRepository interface {
	Create(ctx context.Context, contact *model.Contact) error
	Update(ctx context.Context, contact *model.Contact) error
	Delete(ctx context.Context, contact *model.Contact) error
	FindByID(ctx context.Context, id uint) (*model.Contact, error)
	List(ctx context.Context) ([]model.Contact, error)
}

type contactRepository struct {
	db *gorm.DB
}

// NewContactRepository builds a GORM-backed contact repository.
func NewContactRepository(db *gorm.DB) ContactRepository {
	return &contactRepository{db: db}
}

func (r *contactRepository) Create(ctx context.Context, contact *model.Contact) error {
	return r.db.WithContext(ctx).Create(contact).Error
}

func (r *contactRepository) Update(ctx context.Context, contact *model.Contact) error {
	return r.db.WithContext(ctx).Save(contact).Error
}

func (r *contactRepository) Delete(ctx context.Context, contact *model.Contact) error {
	return r.db.WithContext(ctx).Delete(contact).Error
}

func (r *contactRepository) FindByID(ctx context.Context, id uint) (*model.Contact, error) {
	var contact model.Contact
	if err := r.db.WithContext(ctx).First(&contact, id).Error; err != nil {
		return nil, err
	}
	return &contact, nil
}

// List returns all contact messages in primary-key order, never a nil slice.
func (r *contactRepository) List(ctx context.Context) ([]model.Contact, error) {
	contacts := make([]model.Contact, 0)
	if err := r.db.WithContext(ctx).Order("id").Find(&contacts).Error; err != nil {
		return nil, err
	}
	return contacts, nil
}
