package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"showroom/internal/errors"
	"showroom/internal/model"
	"showroom/internal/service"
)

// ContactHandler handles contact message endpoints.
type ContactHandler struct {
	contactService service.ContactService
}

// NewContactHandler creates a new contact handler.
func NewContactHandler(contactService service.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

// CreateContactRequest represents a contact form submission.
type CreateContactRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone"`
	Message string `json:"message" validate:"required"`
}

// UpdateContactRequest represents a partial contact update.
type UpdateContactRequest struct {
	Name    *string `json:"name"`
	Email   *string `json:"email"`
	Phone   *string `json:"phone"`
	Message *string `json:"message"`
}

// ListContacts godoc
// @Summary List all contact messages
// @Tags contacts
// @Produce json
// @Success 200 {array} model.Contact
// @Failure 500 {object} errors.ErrorResponse
// @Router /contacts [get]
func (h *ContactHandler) ListContacts(c echo.Context) error {
	contacts, err := h.contactService.List(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, contacts)
}

// GetContact godoc
// @Summary Get contact message by id
// @Tags contacts
// @Produce json
// @Param id path int true "Contact ID"
// @Success 200 {object} model.Contact
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /contacts/{id} [get]
func (h *ContactHandler) GetContact(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	contact, err := h.contactService.Get(c.Request().Context(), id)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, contact)
}

// CreateContact godoc
// @Summary Submit a contact message
// @Tags contacts
// @Accept json
// @Produce json
// @Param request body CreateContactRequest true "Contact data"
// @Success 201 {object} model.Contact
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /contacts [post]
func (h *ContactHandler) CreateContact(c echo.Context) error {
	var req CreateContactRequest
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

	contact := &model.Contact{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Message: req.Message,
	}

	if err := h.contactService.Create(c.Request().Context(), contact); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusCreated, contact)
}

// UpdateContact godoc
// @Summary Update a contact message (partial merge)
// @Tags contacts
// @Accept json
// @Produce json
// @Param id path int true "Contact ID"
// @Param request body UpdateContactRequest true "Fields to change"
// @Success 200 {object} model.Contact
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /contacts/{id} [put]
func (h *ContactHandler) UpdateContact(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var req UpdateContactRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid request body",
			Code:  "INVALID_BODY",
		})
	}

	contact, err := h.contactService.Update(c.Request().Context(), id, service.ContactUpdate{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Message: req.Message,
	})
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, contact)
}

// DeleteContact godoc
// @Summary Delete a contact message
// @Tags contacts
// @Produce json
// @Param id path int true "Contact ID"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /contacts/{id} [delete]
func (h *ContactHandler) DeleteContact(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	if err := h.contactService.Delete(c.Request().Context(), id); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "Contact deleted successfully"})
}
