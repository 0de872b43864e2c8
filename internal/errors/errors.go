package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrCarNotFound is returned when a car is not found.
	ErrCarNotFound = errors.New("Car not found")
	// ErrContactNotFound is returned when a contact message is not found.
	ErrContactNotFound = errors.New("Contact not found")
	// ErrShowroomNotFound is returned when a showroom is not found.
	ErrShowroomNotFound = errors.New("Showroom not found")
	// ErrUnknownShowroom is returned when a car references a showroom id
	// that has no row.
	ErrUnknownShowroom = errors.New("Showroom does not exist")
	// ErrUsernameTaken is returned when a signup reuses an existing username.
	ErrUsernameTaken = errors.New("Username already exists")
	// ErrEmailTaken is returned when a signup reuses an existing email.
	ErrEmailTaken = errors.New("Email already exists")
	// ErrInvalidCredentials is returned on any login failure, whether the
	// username is unknown or the password does not match.
	ErrInvalidCredentials = errors.New("Invalid credentials")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors. Duplicate-key signups
// surface as 400 with an explanatory message rather than 409.
func MapErrorToHTTP(err error) *HTTPError {
	switch err {
	case ErrCarNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "CAR_NOT_FOUND")
	case ErrContactNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "CONTACT_NOT_FOUND")
	case ErrShowroomNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "SHOWROOM_NOT_FOUND")
	case ErrUnknownShowroom:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "UNKNOWN_SHOWROOM")
	case ErrUsernameTaken:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "USERNAME_TAKEN")
	case ErrEmailTaken:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "EMAIL_TAKEN")
	case ErrInvalidCredentials:
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "INVALID_CREDENTIALS")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
