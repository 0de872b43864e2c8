package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	apperrors "showroom/internal/errors"
	"showroom/internal/model"
	"showroom/internal/service"
)

// MockCarService is a mock implementation of service.CarService.
type MockCarService struct {
	mock.Mock
}

func (m *MockCarService) List(ctx context.Context) ([]model.Car, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Car), args.Error(1)
}

func (m *MockCarService) Get(ctx context.Context, id uint) (*model.Car, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Car), args.Error(1)
}

func (m *MockCarService) Create(ctx context.Context, car *model.Car) error {
	args := m.Called(ctx, car)
	return args.Error(0)
}

func (m *MockCarService) Update(ctx context.Context, id uint, update service.CarUpdate) (*model.Car, error) {
	args := m.Called(ctx, id, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Car), args.Error(1)
}

func (m *MockCarService) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type testValidator struct {
	validator *validator.Validate
}

func (v *testValidator) Validate(i interface{}) error {
	return v.validator.Struct(i)
}

func newTestContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = &testValidator{validator: validator.New()}

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestCarHandler_CreateCar(t *testing.T) {
	mockSvc := new(MockCarService)
	mockSvc.On("Create", mock.Anything, mock.AnythingOfType("*model.Car")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*model.Car).ID = 1
		}).Return(nil)

	h := NewCarHandler(mockSvc)
	c, rec := newTestContext(t, http.MethodPost, "/cars",
		`{"name":"Toyota Corolla","price":10000,"year":2018,"type":"Sedan"}`)

	err := h.CreateCar(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)

	var body map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.EqualValues(t, 1, body["id"])
	assert.Equal(t, "Toyota Corolla", body["name"])
	assert.EqualValues(t, 2018, body["year"])
	assert.Equal(t, "Sedan", body["type"])
	mockSvc.AssertExpectations(t)
}

func TestCarHandler_CreateCar_MissingRequiredField(t *testing.T) {
	mockSvc := new(MockCarService)
	h := NewCarHandler(mockSvc)

	// price is absent: the request must fail validation before the service
	// layer is touched.
	c, _ := newTestContext(t, http.MethodPost, "/cars",
		`{"name":"Toyota Corolla","year":2018,"type":"Sedan"}`)

	err := h.CreateCar(c)
	httpErr, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)

	// Validation failures use the same envelope as domain errors.
	resp, ok := httpErr.Message.(apperrors.ErrorResponse)
	assert.True(t, ok)
	assert.Equal(t, "VALIDATION_FAILED", resp.Code)
	assert.NotEmpty(t, resp.Error)
	mockSvc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCarHandler_CreateCar_MalformedBody(t *testing.T) {
	mockSvc := new(MockCarService)
	h := NewCarHandler(mockSvc)

	c, _ := newTestContext(t, http.MethodPost, "/cars", `{"name":`)

	err := h.CreateCar(c)
	httpErr, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)

	resp, ok := httpErr.Message.(apperrors.ErrorResponse)
	assert.True(t, ok)
	assert.Equal(t, "INVALID_BODY", resp.Code)
	mockSvc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCarHandler_ListCars_Empty(t *testing.T) {
	mockSvc := new(MockCarService)
	mockSvc.On("List", mock.Anything).Return([]model.Car{}, nil)

	h := NewCarHandler(mockSvc)
	c, rec := newTestContext(t, http.MethodGet, "/cars", "")

	err := h.ListCars(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	// An empty inventory is an empty array on the wire, never null.
	assert.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))
	mockSvc.AssertExpectations(t)
}

func TestCarHandler_GetCar_NotFound(t *testing.T) {
	mockSvc := new(MockCarService)
	mockSvc.On("Get", mock.Anything, uint(42)).Return(nil, apperrors.ErrCarNotFound)

	h := NewCarHandler(mockSvc)
	c, _ := newTestContext(t, http.MethodGet, "/cars/42", "")
	c.SetParamNames("id")
	c.SetParamValues("42")

	err := h.GetCar(c)
	httpErr, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusNotFound, httpErr.Code)
	mockSvc.AssertExpectations(t)
}

func TestCarHandler_UpdateCar_PartialBody(t *testing.T) {
	newPrice := decimal.NewFromInt(9500)
	updated := &model.Car{ID: 1, Name: "Toyota Corolla", Price: newPrice, Year: 2018, Type: "Sedan"}

	mockSvc := new(MockCarService)
	mockSvc.On("Update", mock.Anything, uint(1), mock.MatchedBy(func(u service.CarUpdate) bool {
		return u.Price != nil && u.Price.Equal(newPrice) &&
			u.Name == nil && u.Year == nil && u.Type == nil && u.ImageURL == nil && u.ShowroomID == nil
	})).Return(updated, nil)

	h := NewCarHandler(mockSvc)
	c, rec := newTestContext(t, http.MethodPut, "/cars/1", `{"price":9500}`)
	c.SetParamNames("id")
	c.SetParamValues("1")

	err := h.UpdateCar(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	mockSvc.AssertExpectations(t)
}

func TestCarHandler_DeleteCar(t *testing.T) {
	mockSvc := new(MockCarService)
	mockSvc.On("Delete", mock.Anything, uint(1)).Return(nil)

	h := NewCarHandler(mockSvc)
	c, rec := newTestContext(t, http.MethodDelete, "/cars/1", "")
	c.SetParamNames("id")
	c.SetParamValues("1")

	err := h.DeleteCar(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Car deleted successfully", body["message"])
	mockSvc.AssertExpectations(t)
}

func TestCarHandler_InvalidID(t *testing.T) {
	h := NewCarHandler(new(MockCarService))
	c, _ := newTestContext(t, http.MethodGet, "/cars/abc", "")
	c.SetParamNames("id")
	c.SetParamValues("abc")

	err := h.GetCar(c)
	httpErr, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
}
