package service

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"showroom/internal/errors"
	"showroom/internal/model"
	"showroom/internal/repository"
)

// ContactUpdate carries a partial update: nil fields keep their stored value.
type ContactUpdate struct {
	Name    *string
	Email   *string
	Phone   *string
	Message *string
}

// ContactService handles contact message operations.
type ContactService interface {
	List(ctx context.Context) ([]model.Contact, error)
	Get(ctx context.Context, id uint) (*model.Contact, error)
	Create(ctx context.Context, contact *model.Contact) error
	Update(ctx context.Context, id uint, update ContactUpdate) (*model.Contact, error)
	Delete(ctx context.Context, id uint) error
}

type contactService struct {
	repo repository.ContactRepository
}

// NewContactService creates a new contact service.
func NewContactService(repo repository.ContactRepository) ContactService {
	return &contactService{repo: repo}
}

func (s *contactService) List(ctx context.Context) ([]model.Contact, error) {
	return s.repo.List(ctx)
}

func (s *contactService) Get(ctx context.Context, id uint) (*model.Contact, error) {
	contact, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrContactNotFound
		}
		return nil, err
	}
	return contact, nil
}

func (s *contactService) Create(ctx context.Context, contact *model.Contact) error {
	if err := s.repo.Create(ctx, contact); err != nil {
		return fmt.Errorf("create contact: %w", err)
	}
	return nil
}

// Update applies a partial merge: only non-nil fields replace stored values.
func (s *contactService) Update(ctx context.Context, id uint, update ContactUpdate) (*model.Contact, error) {
	contact, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrContactNotFound
		}
		return nil, err
	}

	if update.Name != nil {
		contact.Name = *update.Name
	}
	if update.Email != nil {
		contact.Email = *update.Email
	}
	if update.Phone != nil {
		contact.Phone = *update.Phone
	}
	if update.Message != nil {
		contact.Message = *update.Message
	}

	if err := s.repo.Update(ctx, contact); err != nil {
		return nil, fmt.Errorf("update contact: %w", err)
	}
	return contact, nil
}

func (s *contactService) Delete(ctx context.Context, id uint) error {
	contact, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.ErrContactNotFound
		}
		return err
	}
	if err := s.repo.Delete(ctx, contact); err != nil {
		return fmt.Errorf("delete contact: %w", err)
	}
	return nil
}
