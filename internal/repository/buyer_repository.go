package repository

import (
	"context"

	"gorm.io/gorm"

	"showroom/internal/model"
)

// BuyerRepository defines buyer account persistence operations.
type BuyerRepository interface {
	Create(ctx context.Context, buyer *model.Buyer) error
	FindByID(ctx context.Context, id uint) (*model.Buyer, error)
	FindByUsername(ctx context.Context, username string) (*model.Buyer, error)
	FindByEmail(ctx context.Context, email string) (*model.Buyer, error)
}

type buyerRepository struct {
	db *gorm.DB
}

// NewBuyerRepository builds a GORM-backed buyer repository.
func NewBuyerRepository(db *gorm.DB) BuyerRepository {
	return &buyerRepository{db: db}
}

func (r *buyerRepository) Create(ctx context.Context, buyer *model.Buyer) error {
	return r.db.WithContext(ctx).Create(buyer).Error
}

func (r *buyerRepository) FindByID(ctx context.Context, id uint) (*model.Buyer, error) {
	var buyer model.Buyer
	if err := r.db.WithContext(ctx).First(&buyer, id).Error; err != nil {
		return nil, err
	}
	return &buyer, nil
}

func (r *buyerRepository) FindByUsername(ctx context.Context, username string) (*model.Buyer, error) {
	var buyer model.Buyer
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&buyer).Error; err != nil {
		return nil, err
	}
	return &buyer, nil
}

func (r *buyerRepository) FindByEmail(ctx context.Context, email string) (*model.Buyer, error) {
	var buyer model.Buyer
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&buyer).Error; err != nil {
		return nil, err
	}
	return &buyer, nil
}
