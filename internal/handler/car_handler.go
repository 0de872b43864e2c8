package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"showroom/internal/errors"
	"showroom/internal/model"
	"showroom/internal/service"
)

// CarHandler handles car inventory endpoints.
type CarHandler struct {
	carService service.CarService
}

// NewCarHandler creates a new car handler.
func NewCarHandler(carService service.CarService) *CarHandler {
	return &CarHandler{carService: carService}
}

// CreateCarRequest represents a car creation request. Required fields are
// checked before the persistence layer is touched.
type CreateCarRequest struct {
	Name       string           `json:"name" validate:"required"`
	Price      *decimal.Decimal `json:"price" validate:"required"`
	Year       *int             `json:"year" validate:"required"`
	Type       string           `json:"type" validate:"required"`
	ImageURL   string           `json:"image_url"`
	ShowroomID *uint            `json:"showroom_id"`
}

// UpdateCarRequest represents a partial car update; absent fields keep their
// stored values.
type UpdateCarRequest struct {
	Name       *string          `json:"name"`
	Price      *decimal.Decimal `json:"price"`
	Year       *int             `json:"year"`
	Type       *string          `json:"type"`
	ImageURL   *string          `json:"image_url"`
	ShowroomID *uint            `json:"showroom_id"`
}

// MessageResponse represents a confirmation message.
type MessageResponse struct {
	Message string `json:"message"`
}

// ListCars godoc
// @Summary List all cars
// @Tags cars
// @Produce json
// @Success 200 {array} model.Car
// @Failure 500 {object} errors.ErrorResponse
// @Router /cars [get]
func (h *CarHandler) ListCars(c echo.Context) error {
	cars, err := h.carService.List(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, cars)
}

// GetCar godoc
// @Summary Get car by id
// @Tags cars
// @Produce json
// @Param id path int true "Car ID"
// @Success 200 {object} model.Car
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /cars/{id} [get]
func (h *CarHandler) GetCar(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	car, err := h.carService.Get(c.Request().Context(), id)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, car)
}

// CreateCar godoc
// @Summary Add a car to the inventory
// @Tags cars
// @Accept json
// @Produce json
// @Param request body CreateCarRequest true "Car data"
// @Success 201 {object} model.Car
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /cars [post]
func (h *CarHandler) CreateCar(c echo.Context) error {
	var req CreateCarRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid request body",
			Code:  "INVALID_BODY",
		})
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: err.Error(),
			Code:  "VALIDATION_FAILED",
		})
	}

	car := &model.Car{
		Name:       req.Name,
		Price:      *req.Price,
		Year:       *req.Year,
		Type:       req.Type,
		ImageURL:   req.ImageURL,
		ShowroomID: req.ShowroomID,
	}

	if err := h.carService.Create(c.Request().Context(), car); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusCreated, car)
}

// UpdateCar godoc
// @Summary Update a car (partial merge)
// @Tags cars
// @Accept json
// @Produce json
// @Param id path int true "Car ID"
// @Param request body UpdateCarRequest true "Fields to change"
// @Success 200 {object} model.Car
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /cars/{id} [put]
func (h *CarHandler) UpdateCar(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var req UpdateCarRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid request body",
			Code:  "INVALID_BODY",
		})
	}

	car, err := h.carService.Update(c.Request().Context(), id, service.CarUpdate{
		Name:       req.Name,
		Price:      req.Price,
		Year:       req.Year,
		Type:       req.Type,
		ImageURL:   req.ImageURL,
		ShowroomID: req.ShowroomID,
	})
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, car)
}

// DeleteCar godoc
// @Summary Delete a car
// @Tags cars
// @Produce json
// @Param id path int true "Car ID"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /cars/{id} [delete]
func (h *CarHandler) DeleteCar(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	if err := h.carService.Delete(c.Request().Context(), id); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "Car deleted successfully"})
}

// parseID reads the :id path parameter as an unsigned integer.
func parseID(c echo.Context) (uint, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid id",
			Code:  "INVALID_ID",
		})
	}
	return uint(id), nil
}
