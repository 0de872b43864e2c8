package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"showroom/internal/errors"
	"showroom/internal/model"
)

// MockAdminRepository is a mock implementation of AdminRepository.
type MockAdminRepository struct {
	mock.Mock
}

func (m *MockAdminRepository) Create(ctx context.Context, admin *model.Admin) error {
	args := m.Called(ctx, admin)
	return args.Error(0)
}

func (m *MockAdminRepository) FindByID(ctx context.Context, id uint) (*model.Admin, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Admin), args.Error(1)
}

func (m *MockAdminRepository) FindByUsername(ctx context.Context, username string) (*model.Admin, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Admin), args.Error(1)
}

// MockBuyerRepository is a mock implementation of BuyerRepository.
type MockBuyerRepository struct {
	mock.Mock
}

func (m *MockBuyerRepository) Create(ctx context.Context, buyer *model.Buyer) error {
	args := m.Called(ctx, buyer)
	return args.Error(0)
}

func (m *MockBuyerRepository) FindByID(ctx context.Context, id uint) (*model.Buyer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Buyer), args.Error(1)
}

func (m *MockBuyerRepository) FindByUsername(ctx context.Context, username string) (*model.Buyer, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Buyer), args.Error(1)
}

func (m *MockBuyerRepository) FindByEmail(ctx context.Context, email string) (*model.Buyer, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Buyer), args.Error(1)
}

func TestAuthService_AdminSignup(t *testing.T) {
	showroomID := uint(1)

	tests := []struct {
		name          string
		username      string
		password      string
		showroomID    *uint
		setupMock     func(*MockAdminRepository)
		expectedError error
	}{
		{
			name:       "successful signup",
			username:   "admin1",
			password:   "password123",
			showroomID: &showroomID,
			setupMock: func(m *MockAdminRepository) {
				m.On("FindByUsername", mock.Anything, "admin1").Return(nil, gorm.ErrRecordNotFound)
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.Admin")).Return(nil)
			},
			expectedError: nil,
		},
		{
			name:     "username already exists",
			username: "admin1",
			password: "password123",
			setupMock: func(m *MockAdminRepository) {
				m.On("FindByUsername", mock.Anything, "admin1").Return(&model.Admin{Username: "admin1"}, nil)
			},
			expectedError: errors.ErrUsernameTaken,
		},
		{
			// A concurrent signup can pass the pre-check and lose at the
			// uniqueIndex; the caller still gets the taken-username error.
			name:     "concurrent signup loses the unique index race",
			username: "admin1",
			password: "password123",
			setupMock: func(m *MockAdminRepository) {
				m.On("FindByUsername", mock.Anything, "admin1").Return(nil, gorm.ErrRecordNotFound)
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.Admin")).Return(gorm.ErrDuplicatedKey)
			},
			expectedError: errors.ErrUsernameTaken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockAdmins := new(MockAdminRepository)
			tt.setupMock(mockAdmins)

			svc := NewAuthService(mockAdmins, new(MockBuyerRepository))
			admin, err := svc.AdminSignup(context.Background(), tt.username, tt.password, tt.showroomID)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError, err)
				assert.Nil(t, admin)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, admin)
				assert.Equal(t, tt.username, admin.Username)
				assert.Equal(t, tt.showroomID, admin.ShowroomID)
				assert.NotEmpty(t, admin.PasswordHash)
				assert.NotEqual(t, tt.password, admin.PasswordHash)
			}

			mockAdmins.AssertExpectations(t)
		})
	}
}

func TestAuthService_AdminLogin(t *testing.T) {
	hashed := func(plaintext string) string {
		a := &model.Admin{}
		_ = a.SetPassword(plaintext)
		return a.PasswordHash
	}

	tests := []struct {
		name          string
		username      string
		password      string
		setupMock     func(*MockAdminRepository)
		expectedError error
	}{
		{
			name:     "successful login",
			username: "admin1",
			password: "password123",
			setupMock: func(m *MockAdminRepository) {
				m.On("FindByUsername", mock.Anything, "admin1").Return(&model.Admin{
					ID:           1,
					Username:     "admin1",
					PasswordHash: hashed("password123"),
				}, nil)
			},
			expectedError: nil,
		},
		{
			name:     "wrong password",
			username: "admin1",
			password: "wrong",
			setupMock: func(m *MockAdminRepository) {
				m.On("FindByUsername", mock.Anything, "admin1").Return(&model.Admin{
					ID:           1,
					Username:     "admin1",
					PasswordHash: hashed("password123"),
				}, nil)
			},
			expectedError: errors.ErrInvalidCredentials,
		},
		{
			name:     "unknown username fails identically",
			username: "ghost",
			password: "password123",
			setupMock: func(m *MockAdminRepository) {
				m.On("FindByUsername", mock.Anything, "ghost").Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: errors.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockAdmins := new(MockAdminRepository)
			tt.setupMock(mockAdmins)

			svc := NewAuthService(mockAdmins, new(MockBuyerRepository))
			admin, err := svc.AdminLogin(context.Background(), tt.username, tt.password)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError, err)
				assert.Nil(t, admin)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, admin)
				assert.Equal(t, tt.username, admin.Username)
			}

			mockAdmins.AssertExpectations(t)
		})
	}
}

func TestAuthService_BuyerSignup(t *testing.T) {
	tests := []struct {
		name          string
		username      string
		email         string
		setupMock     func(*MockBuyerRepository)
		expectedError error
	}{
		{
			name:     "successful signup",
			username: "buyer1",
			email:    "buyer1@example.com",
			setupMock: func(m *MockBuyerRepository) {
				m.On("FindByUsername", mock.Anything, "buyer1").Return(nil, gorm.ErrRecordNotFound)
				m.On("FindByEmail", mock.Anything, "buyer1@example.com").Return(nil, gorm.ErrRecordNotFound)
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.Buyer")).Return(nil)
			},
			expectedError: nil,
		},
		{
			name:     "username already exists",
			username: "buyer1",
			email:    "fresh@example.com",
			setupMock: func(m *MockBuyerRepository) {
				m.On("FindByUsername", mock.Anything, "buyer1").Return(&model.Buyer{Username: "buyer1"}, nil)
			},
			expectedError: errors.ErrUsernameTaken,
		},
		{
			name:     "email already exists",
			username: "buyer2",
			email:    "buyer1@example.com",
			setupMock: func(m *MockBuyerRepository) {
				m.On("FindByUsername", mock.Anything, "buyer2").Return(nil, gorm.ErrRecordNotFound)
				m.On("FindByEmail", mock.Anything, "buyer1@example.com").Return(&model.Buyer{Email: "buyer1@example.com"}, nil)
			},
			expectedError: errors.ErrEmailTaken,
		},
		{
			// Both pre-checks pass, then the insert collides on the email
			// uniqueIndex; the re-lookup attributes the conflict correctly.
			name:     "concurrent signup takes the email",
			username: "buyer3",
			email:    "buyer1@example.com",
			setupMock: func(m *MockBuyerRepository) {
				m.On("FindByUsername", mock.Anything, "buyer3").Return(nil, gorm.ErrRecordNotFound)
				m.On("FindByEmail", mock.Anything, "buyer1@example.com").Return(nil, gorm.ErrRecordNotFound).Once()
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.Buyer")).Return(gorm.ErrDuplicatedKey)
				m.On("FindByEmail", mock.Anything, "buyer1@example.com").Return(&model.Buyer{Email: "buyer1@example.com"}, nil).Once()
			},
			expectedError: errors.ErrEmailTaken,
		},
		{
			name:     "concurrent signup takes the username",
			username: "buyer1",
			email:    "fresh@example.com",
			setupMock: func(m *MockBuyerRepository) {
				m.On("FindByUsername", mock.Anything, "buyer1").Return(nil, gorm.ErrRecordNotFound)
				m.On("FindByEmail", mock.Anything, "fresh@example.com").Return(nil, gorm.ErrRecordNotFound)
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.Buyer")).Return(gorm.ErrDuplicatedKey)
			},
			expectedError: errors.ErrUsernameTaken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockBuyers := new(MockBuyerRepository)
			tt.setupMock(mockBuyers)

			svc := NewAuthService(new(MockAdminRepository), mockBuyers)
			buyer, err := svc.BuyerSignup(context.Background(), tt.username, tt.email, "secret99")

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError, err)
				assert.Nil(t, buyer)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, buyer)
				assert.Equal(t, tt.username, buyer.Username)
				assert.Equal(t, tt.email, buyer.Email)
				assert.NotEmpty(t, buyer.PasswordHash)
			}

			// Duplicate signups never reach Create.
			mockBuyers.AssertExpectations(t)
		})
	}
}
