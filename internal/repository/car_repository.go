package repository

import (
	"context"

	"gorm.io/gorm"

	"showroom/internal/model"
)

// CarRepository defines car persistence operations.
type CarRepository interface {
	Create(ctx context.Context, car *model.Car) error
	Update(ctx context.Context, car *model.Car) error
	Delete(ctx context.Context, car *model.Car) error
	FindByID(ctx context.Context, id uint) (*model.Car, error)
	List(ctx context.Context) ([]model.Car, error)
}

type carRepository struct {
	db *gorm.DB
}

// NewCarRepository builds a GORM-backed car repository.
func NewCarRepository(db *gorm.DB) CarRepository {
	return &carRepository{db: db}
}

func (r *carRepository) Create(ctx context.Context, car *model.Car) error {
	return r.db.WithContext(ctx).Create(car).Error
}

// Update saves the full merged row.
func (r *carRepository) Update(ctx context.Context, car *model.Car) error {
	return r.db.WithContext(ctx).Save(car).Error
}

func (r *carRepository) Delete(ctx context.Context, car *model.Car) error {
	return r.db.WithContext(ctx).Delete(car).Error
}

func (r *carRepository) FindByID(ctx context.Context, id uint) (*model.Car, error) {
	var car model.Car
	if err := r.db.WithContext(ctx).First(&car, id).Error; err != nil {
		return nil, err
	}
	return &car, nil
}

// List returns all cars in primary-key order. The slice is never nil, so an
// empty inventory serializes as [].
func (r *carRepository) List(ctx context.Context) ([]model.Car, error) {
	cars := make([]model.Car, 0)
	if err := r.db.WithContext(ctx).Order("id").Find(&cars).Error; err != nil {
		return nil, err
	}
	return cars, nil
}
