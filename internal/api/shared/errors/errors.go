package errors

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/RackSavant/sistachat-sub000/internal/domain"
)

// ErrorCode represents a standardized error code
type ErrorCode string

const (
	// Client errors (4xx)
	ErrCodeBadRequest            ErrorCode = "bad_request"
	ErrCodeNotFound              ErrorCode = "not_found"
	ErrCodeValidationFailed      ErrorCode = "validation_failed"
	ErrCodeUnauthorized          ErrorCode = "unauthorized"
	ErrCodeForbidden             ErrorCode = "forbidden"
	ErrCodeInsufficientInventory ErrorCode = "insufficient_inventory"
	ErrCodeInsufficientFunds     ErrorCode = "insufficient_funds"
	ErrCodeArithmeticOverflow    ErrorCode = "arithmetic_overflow"

	// Server errors (5xx)
	ErrCodeInternalError ErrorCode = "internal_error"
	ErrCodeDatabaseError ErrorCode = "database_error"
)

// APIError represents a structured API error that carries error code and details
type APIError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Details string    `json:"details,omitempty"`
}

func (e *APIError) Error() string {
	jsonErr, _ := json.Marshal(e)
	return string(jsonErr)
}

// HTTPStatus returns the HTTP status code for the error code
func (e *APIError) HTTPStatus() int {
	switch e.Code {
	case ErrCodeBadRequest, ErrCodeValidationFailed:
		return http.StatusBadRequest
	case ErrCodeUnauthorized:
		return http.StatusUnauthorized
	case ErrCodeForbidden:
		return http.StatusForbidden
	case ErrCodeNotFound:
		return http.StatusNotFound
	case ErrCodeInsufficientInventory, ErrCodeInsufficientFunds:
		return http.StatusConflict
	case ErrCodeArithmeticOverflow:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// FromDomainError classifies a ledger error by its category.
// Errors outside the ledger categories become database errors without leaking their text.
func FromDomainError(err error) *APIError {
	if err == nil {
		return nil
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}

	switch {
	case errors.Is(err, domain.ErrNotFound):
		return NewNotFoundError("Not found", err.Error())
	case errors.Is(err, domain.ErrAuthorizationFailure):
		return NewForbiddenError("Not allowed", err.Error())
	case errors.Is(err, domain.ErrInsufficientInventory):
		return &APIError{Code: ErrCodeInsufficientInventory, Message: "Insufficient inventory", Details: err.Error()}
	case errors.Is(err, domain.ErrInsufficientFunds):
		return &APIError{Code: ErrCodeInsufficientFunds, Message: "Insufficient funds", Details: err.Error()}
	case errors.Is(err, domain.ErrArithmeticOverflow):
		return &APIError{Code: ErrCodeArithmeticOverflow, Message: "Amount out of range", Details: err.Error()}
	case errors.Is(err, domain.ErrPreconditionViolation):
		return NewBadRequestError("Precondition violated", err.Error())
	default:
		return NewDatabaseError("Ledger operation failed")
	}
}

// Error constructors for common error types
func NewBadRequestError(message string, details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeBadRequest,
		Message: message,
		Details: strings.Join(details, ", "),
	}
}

func NewNotFoundError(message string, details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeNotFound,
		Message: message,
		Details: strings.Join(details, ", "),
	}
}

func NewValidationError(details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeValidationFailed,
		Message: "Validation failed",
		Details: strings.Join(details, ", "),
	}
}

func NewUnauthorizedError(message string, details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeUnauthorized,
		Message: message,
		Details: strings.Join(details, ", "),
	}
}

func NewForbiddenError(message string, details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeForbidden,
		Message: message,
		Details: strings.Join(details, ", "),
	}
}

func NewInternalError(message string, details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeInternalError,
		Message: message,
		Details: strings.Join(details, ", "),
	}
}

func NewDatabaseError(message string, details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeDatabaseError,
		Message: message,
		Details: strings.Join(details, ", "),
	}
}
