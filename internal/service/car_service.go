package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"showroom/internal/cache"
	"showroom/internal/errors"
	"showroom/internal/model"
	"showroom/internal/repository"
)

const (
	carCacheTTL     = 5 * time.Minute
	carListCacheKey = "cars:all"
)

// CarUpdate carries a partial update: nil fields keep their stored value.
type CarUpdate struct {
	Name       *string
	Price      *decimal.Decimal
	Year       *int
	Type       *string
	ImageURL   *string
	ShowroomID *uint
}

// CarService handles car inventory operations.
type CarService interface {
	List(ctx context.Context) ([]model.Car, error)
	Get(ctx context.Context, id uint) (*model.Car, error)
	Create(ctx context.Context, car *model.Car) error
	Update(ctx context.Context, id uint, update CarUpdate) (*model.Car, error)
	Delete(ctx context.Context, id uint) error
}

type carService struct {
	repo         repository.CarRepository
	showroomRepo repository.ShowroomRepository
	cache        *cache.Client
}

// NewCarService creates a new car service.
func NewCarService(repo repository.CarRepository, showroomRepo repository.ShowroomRepository, cache *cache.Client) CarService {
	return &carService{
		repo:         repo,
		showroomRepo: showroomRepo,
		cache:        cache,
	}
}

func (s *carService) cacheKey(id uint) string {
	return fmt.Sprintf("car:%d", id)
}

// List returns all cars in primary-key order, cached as a whole.
func (s *carService) List(ctx context.Context) ([]model.Car, error) {
	if data, _ := s.cache.Get(ctx, carListCacheKey); data != nil {
		var cached []model.Car
		if err := json.Unmarshal(data, &cached); err == nil && cached != nil {
			return cached, nil
		}
	}

	cars, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if cars == nil {
		// an empty inventory must serialize as [], not null
		cars = make([]model.Car, 0)
	}

	if payload, err := json.Marshal(cars); err == nil {
		_ = s.cache.Set(ctx, carListCacheKey, payload, carCacheTTL)
	}
	return cars, nil
}

// Get retrieves a car by ID with caching.
func (s *carService) Get(ctx context.Context, id uint) (*model.Car, error) {
	if data, _ := s.cache.Get(ctx, s.cacheKey(id)); data != nil {
		var cached model.Car
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	car, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrCarNotFound
		}
		return nil, err
	}

	if payload, err := json.Marshal(car); err == nil {
		_ = s.cache.Set(ctx, s.cacheKey(id), payload, carCacheTTL)
	}
	return car, nil
}

// Create persists a new car after verifying the showroom reference, if any.
func (s *carService) Create(ctx context.Context, car *model.Car) error {
	if err := s.checkShowroom(ctx, car.ShowroomID); err != nil {
		return err
	}
	if err := s.repo.Create(ctx, car); err != nil {
		return fmt.Errorf("create car: %w", err)
	}
	_ = s.cache.Delete(ctx, carListCacheKey)
	return nil
}

// Update applies a partial merge: only non-nil fields replace stored values.
func (s *carService) Update(ctx context.Context, id uint, update CarUpdate) (*model.Car, error) {
	car, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrCarNotFound
		}
		return nil, err
	}

	if update.Name != nil {
		car.Name = *update.Name
	}
	if update.Price != nil {
		car.Price = *update.Price
	}
	if update.Year != nil {
		car.Year = *update.Year
	}
	if update.Type != nil {
		car.Type = *update.Type
	}
	if update.ImageURL != nil {
		car.ImageURL = *update.ImageURL
	}
	if update.ShowroomID != nil {
		if err := s.checkShowroom(ctx, update.ShowroomID); err != nil {
			return nil, err
		}
		car.ShowroomID = update.ShowroomID
	}

	if err := s.repo.Update(ctx, car); err != nil {
		return nil, fmt.Errorf("update car: %w", err)
	}
	_ = s.cache.Delete(ctx, s.cacheKey(id), carListCacheKey)
	return car, nil
}

// Delete removes a car permanently.
func (s *carService) Delete(ctx context.Context, id uint) error {
	car, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.ErrCarNotFound
		}
		return err
	}
	if err := s.repo.Delete(ctx, car); err != nil {
		return fmt.Errorf("delete car: %w", err)
	}
	_ = s.cache.Delete(ctx, s.cacheKey(id), carListCacheKey)
	return nil
}

func (s *carService) checkShowroom(ctx context.Context, id *uint) error {
	if id == nil {
		return nil
	}
	if _, err := s.showroomRepo.FindByID(ctx, *id); err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.ErrUnknownShowroom
		}
		return fmt.Errorf("check showroom: %w", err)
	}
	return nil
}
