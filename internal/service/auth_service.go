package service

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"showroom/internal/errors"
	"showroom/internal/model"
	"showroom/internal/repository"
)

// AuthService handles admin and buyer signup and login. The API is
// sessionless: login verifies credentials and returns the account projection,
// nothing is issued or stored.
type AuthService interface {
	AdminSignup(ctx context.Context, username, password string, showroomID *uint) (*model.Admin, error)
	AdminLogin(ctx context.Context, username, password string) (*model.Admin, error)
	BuyerSignup(ctx context.Context, username, email, password string) (*model.Buyer, error)
	BuyerLogin(ctx context.Context, username, password string) (*model.Buyer, error)
}

type authService struct {
	adminRepo repository.AdminRepository
	buyerRepo repository.BuyerRepository
}

// NewAuthService creates a new authentication service.
func NewAuthService(adminRepo repository.AdminRepository, buyerRepo repository.BuyerRepository) AuthService {
	return &authService{
		adminRepo: adminRepo,
		buyerRepo: buyerRepo,
	}
}

// AdminSignup creates an admin account with a hashed password. A taken
// username fails before anything is written.
func (s *authService) AdminSignup(ctx context.Context, username, password string, showroomID *uint) (*model.Admin, error) {
	existing, err := s.adminRepo.FindByUsername(ctx, username)
	if err == nil && existing != nil {
		return nil, errors.ErrUsernameTaken
	}
	if err != nil && err != gorm.ErrRecordNotFound {
		return nil, fmt.Errorf("check admin existence: %w", err)
	}

	admin := &model.Admin{
		Username:   username,
		ShowroomID: showroomID,
	}
	if err := admin.SetPassword(password); err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	if err := s.adminRepo.Create(ctx, admin); err != nil {
		// a concurrent signup can slip past the pre-check; the uniqueIndex
		// still holds the invariant
		if err == gorm.ErrDuplicatedKey {
			return nil, errors.ErrUsernameTaken
		}
		return nil, fmt.Errorf("create admin: %w", err)
	}
	return admin, nil
}

// AdminLogin verifies admin credentials. Unknown username and wrong password
// fail identically.
func (s *authService) AdminLogin(ctx context.Context, username, password string) (*model.Admin, error) {
	admin, err := s.adminRepo.FindByUsername(ctx, username)
	if err != nil {
		return nil, errors.ErrInvalidCredentials
	}
	if !admin.CheckPassword(password) {
		return nil, errors.ErrInvalidCredentials
	}
	return admin, nil
}

// BuyerSignup creates a buyer account. Username and email are both unique;
// whichever collides first decides the error.
func (s *authService) BuyerSignup(ctx context.Context, username, email, password string) (*model.Buyer, error) {
	existing, err := s.buyerRepo.FindByUsername(ctx, username)
	if err == nil && existing != nil {
		return nil, errors.ErrUsernameTaken
	}
	if err != nil && err != gorm.ErrRecordNotFound {
		return nil, fmt.Errorf("check buyer username: %w", err)
	}

	existing, err = s.buyerRepo.FindByEmail(ctx, email)
	if err == nil && existing != nil {
		return nil, errors.ErrEmailTaken
	}
	if err != nil && err != gorm.ErrRecordNotFound {
		return nil, fmt.Errorf("check buyer email: %w", err)
	}

	buyer := &model.Buyer{
		Username: username,
		Email:    email,
	}
	if err := buyer.SetPassword(password); err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	if err := s.buyerRepo.Create(ctx, buyer); err != nil {
		// lost a race with a concurrent signup; decide which unique key
		// collided so the caller gets the right conflict
		if err == gorm.ErrDuplicatedKey {
			if _, emailErr := s.buyerRepo.FindByEmail(ctx, email); emailErr == nil {
				return nil, errors.ErrEmailTaken
			}
			return nil, errors.ErrUsernameTaken
		}
		return nil, fmt.Errorf("create buyer: %w", err)
	}
	return buyer, nil
}

// BuyerLogin verifies buyer credentials with the same uniform failure as
// AdminLogin.
func (s *authService) BuyerLogin(ctx context.Context, username, password string) (*model.Buyer, error) {
	buyer, err := s.buyerRepo.FindByUsername(ctx, username)
	if err != nil {
		return nil, errors.ErrInvalidCredentials
	}
	if !buyer.CheckPassword(password) {
		return nil, errors.ErrInvalidCredentials
	}
	return buyer, nil
}
