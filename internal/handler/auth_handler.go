package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"showroom/internal/errors"
	"showroom/internal/model"
	"showroom/internal/service"
)

// AuthHandler handles admin and buyer signup/login endpoints.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// AdminSignupRequest represents an admin registration request.
type AdminSignupRequest struct {
	Username   string `json:"username" validate:"required"`
	Password   string `json:"password" validate:"required,min=6"`
	ShowroomID *uint  `json:"showroom_id"`
}

// BuyerSignupRequest represents a buyer registration request.
type BuyerSignupRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// LoginRequest represents a login request for either role.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// AdminLoginResponse represents a successful admin login.
type AdminLoginResponse struct {
	Message string       `json:"message"`
	Admin   *model.Admin `json:"admin"`
}

// BuyerLoginResponse represents a successful buyer login.
type BuyerLoginResponse struct {
	Message string       `json:"message"`
	Buyer   *model.Buyer `json:"buyer"`
}

// AdminSignup godoc
// @Summary Register a new admin
// @Tags auth
// @Accept json
// @Produce json
// @Param request body AdminSignupRequest true "Admin registration data"
// @Success 201 {object} model.Admin
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /admin/signup [post]
func (h *AuthHandler) AdminSignup(c echo.Context) error {
	var req AdminSignupRequest
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

	admin, err := h.authService.AdminSignup(c.Request().Context(), req.Username, req.Password, req.ShowroomID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusCreated, admin)
}

// AdminLogin godoc
// @Summary Login as admin
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Admin credentials"
// @Success 200 {object} AdminLoginResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /admin/login [post]
func (h *AuthHandler) AdminLogin(c echo.Context) error {
	var req LoginRequest
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

	admin, err := h.authService.AdminLogin(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, AdminLoginResponse{
		Message: "Login successful",
		Admin:   admin,
	})
}

// BuyerSignup godoc
// @Summary Register a new buyer
// @Tags auth
// @Accept json
// @Produce json
// @Param request body BuyerSignupRequest true "Buyer registration data"
// @Success 201 {object} model.Buyer
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /buyer/signup [post]
func (h *AuthHandler) BuyerSignup(c echo.Context) error {
	var req BuyerSignupRequest
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

	buyer, err := h.authService.BuyerSignup(c.Request().Context(), req.Username, req.Email, req.Password)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusCreated, buyer)
}

// BuyerLogin godoc
// @Summary Login as buyer
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Buyer credentials"
// @Success 200 {object} BuyerLoginResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /buyer/login [post]
func (h *AuthHandler) BuyerLogin(c echo.Context) error {
	var req LoginRequest
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

	buyer, err := h.authService.BuyerLogin(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, BuyerLoginResponse{
		Message: "Login successful",
		Buyer:   buyer,
	})
}
