package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"showroom/internal/errors"
	"showroom/internal/service"
)

// ShowroomHandler handles read-only showroom endpoints.
type ShowroomHandler struct {
	showroomService service.ShowroomService
}

// NewShowroomHandler creates a new showroom handler.
func NewShowroomHandler(showroomService service.ShowroomService) *ShowroomHandler {
	return &ShowroomHandler{showroomService: showroomService}
}

// ListShowrooms godoc
// @Summary List all showrooms
// @Tags showrooms
// @Produce json
// @Success 200 {array} model.Showroom
// @Failure 500 {object} errors.ErrorResponse
// @Router /showrooms [get]
func (h *ShowroomHandler) ListShowrooms(c echo.Context) error {
	showrooms, err := h.showroomService.List(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, showrooms)
}

// GetShowroom godoc
// @Summary Get showroom by id
// @Tags showrooms
// @Produce json
// @Param id path int true "Showroom ID"
// @Success 200 {object} model.Showroom
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /showrooms/{id} [get]
func (h *ShowroomHandler) GetShowroom(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	showroom, err := h.showroomService.Get(c.Request().Context(), id)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, showroom)
}
