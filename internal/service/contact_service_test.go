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

// MockContactRepository is a mock implementation of ContactRepository.
type MockContactRepository struct {
	mock.Mock
}

func (m *MockContactRepository) Create(ctx context.Context, contact *model.Contact) error {
	args := m.Called(ctx, contact)
	return args.Error(0)
}

func (m *MockContactRepository) Update(ctx context.Context, contact *model.Contact) error {
	args := m.Called(ctx, contact)
	return args.Error(0)
}

func (m *MockContactRepository) Delete(ctx context.Context, contact *model.Contact) error {
	args := m.Called(ctx, contact)
	return args.Error(0)
}

func (m *MockContactRepository) FindByID(ctx context.Context, id uint) (*model.Contact, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Contact), args.Error(1)
}

func (m *MockContactRepository) List(ctx context.Context) ([]model.Contact, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Contact), args.Error(1)
}

func TestContactService_Update_PartialMerge(t *testing.T) {
	stored := &model.Contact{
		ID:      1,
		Name:    "Jane",
		Email:   "jane@example.com",
		Phone:   "0700000000",
		Message: "Interested in the Corolla",
	}

	mockContacts := new(MockContactRepository)
	mockContacts.On("FindByID", mock.Anything, uint(1)).Return(stored, nil)
	mockContacts.On("Update", mock.Anything, mock.AnythingOfType("*model.Contact")).Return(nil)

	newMessage := "Still interested, any discount?"
	svc := NewContactService(mockContacts)
	updated, err := svc.Update(context.Background(), 1, ContactUpdate{Message: &newMessage})

	assert.NoError(t, err)
	assert.Equal(t, newMessage, updated.Message)
	assert.Equal(t, "Jane", updated.Name)
	assert.Equal(t, "jane@example.com", updated.Email)
	assert.Equal(t, "0700000000", updated.Phone)
	mockContacts.AssertExpectations(t)
}

func TestContactService_Get_NotFound(t *testing.T) {
	mockContacts := new(MockContactRepository)
	mockContacts.On("FindByID", mock.Anything, uint(5)).Return(nil, gorm.ErrRecordNotFound)

	svc := NewContactService(mockContacts)
	contact, err := svc.Get(context.Background(), 5)

	assert.Nil(t, contact)
	assert.Equal(t, errors.ErrContactNotFound, err)
	mockContacts.AssertExpectations(t)
}

func TestContactService_Delete_NotFound(t *testing.T) {
	mockContacts := new(MockContactRepository)
	mockContacts.On("FindByID", mock.Anything, uint(5)).Return(nil, gorm.ErrRecordNotFound)

	svc := NewContactService(mockContacts)
	err := svc.Delete(context.Background(), 5)

	assert.Equal(t, errors.ErrContactNotFound, err)
	mockContacts.AssertExpectations(t)
}
