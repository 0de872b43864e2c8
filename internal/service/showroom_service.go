package service

import (
	"context"

	"gorm.io/gorm"

	"showroom/internal/errors"
	"showroom/internal/model"
	"showroom/internal/repository"
)

// ShowroomService exposes read-only showroom operations; rows are created by
// the seed script.
type ShowroomService interface {
	List(ctx context.Context) ([]model.Showroom, error)
	Get(ctx context.Context, id uint) (*model.Showroom, error)
}

type showroomService struct {
	repo repository.ShowroomRepository
}

// NewShowroomService creates a new showroom service.
func NewShowroomService(repo repository.ShowroomRepository) ShowroomService {
	return &showroomService{repo: repo}
}

func (s *showroomService) List(ctx context.Context) ([]model.Showroom, error) {
	return s.repo.List(ctx)
}

func (s *showroomService) Get(ctx context.Context, id uint) (*model.Showroom, error) {
	showroom, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrShowroomNotFound
		}
		return nil, err
	}
	return showroom, nil
}
