package repository

import (
	"context"

	"gorm.io/gorm"

	"showroom/internal/model"
)

// ShowroomRepository defines showroom persistence operations. Writes happen
// only through the seed script, so the interface is read-mostly.
type ShowroomRepository interface {
	Create(ctx context.Context, showroom *model.Showroom) error
	FindByID(ctx context.Context, id uint) (*model.Showroom, error)
	List(ctx context.Context) ([]model.Showroom, error)
}

type showroomRepository struct {
	db *gorm.DB
}

// NewShowroomRepository builds a GORM-backed showroom repository.
func NewShowroomRepository(db *gorm.DB) ShowroomRepository {
	return &showroomRepository{db: db}
}

func (r *showroomRepository) Create(ctx context.Context, showroom *model.Showroom) error {
	return r.db.WithContext(ctx).Create(showroom).Error
}

func (r *showroomRepository) FindByID(ctx context.Context, id uint) (*model.Showroom, error) {
	var showroom model.Showroom
	if err := r.db.WithContext(ctx).First(&showroom, id).Error; err != nil {
		return nil, err
	}
	return &showroom, nil
}

// List returns all showrooms in primary-key order, never a nil slice.
func (r *showroomRepository) List(ctx context.Context) ([]model.Showroom, error) {
	showrooms := make([]model.Showroom, 0)
	if err := r.db.WithContext(ctx).Order("id").Find(&showrooms).Error; err != nil {
		return nil, err
	}
	return showrooms, nil
}
