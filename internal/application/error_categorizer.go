package application

import (
	"context"
	"errors"
	"net/http"

	"github.com/DanielPopoola/ficmart-calculator/internal/domain"
)

// ErrorCategory represents the nature of an error for logging and metrics
type ErrorCategory string

const (
	CategoryClientError    ErrorCategory = "CLIENT_ERROR"
	CategoryBusinessRule   ErrorCategory = "BUSINESS_RULE"
	CategoryTransient      ErrorCategory = "TRANSIENT"
	CategoryInfrastructure ErrorCategory = "INFRASTRUCTURE"
)

// CategorizeError determines the error category
func CategorizeError(err error) ErrorCategory {
	if err == nil {
		return ""
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return CategoryTransient
	}

	if domain.IsErrorCode(err, domain.ErrCodeUnsupportedConversion) {
		return CategoryBusinessRule
	}

	var vErr *domain.ValidationError
	var dErr *domain.DomainError
	if errors.As(err, &vErr) || errors.As(err, &dErr) {
		return CategoryClientError
	}

	if svcErr, ok := IsServiceError(err); ok {
		switch svcErr.Code {
		case ErrCodeTimeout:
			return CategoryTransient
		}
	}

	return CategoryInfrastructure
}

// Outcome is the label recorded for a finished calculation
func Outcome(err error) string {
	switch CategorizeError(err) {
	case "":
		return "success"
	case CategoryClientError:
		return "invalid"
	case CategoryBusinessRule:
		return "unsupported"
	case CategoryTransient:
		return "timeout"
	default:
		return "error"
	}
}

// ToHTTPStatus maps error to appropriate HTTP status code
func ToHTTPStatus(err error) int {
	if err == nil {
		return http.StatusOK
	}

	if svcErr, ok := IsServiceError(err); ok {
		return svcErr.HTTPStatus
	}

	switch {
	case errors.Is(err, context.DeadlineExceeded),
		errors.Is(err, context.Canceled):
		return http.StatusServiceUnavailable
	}

	switch CategorizeError(err) {
	case CategoryClientError, CategoryBusinessRule:
		return http.StatusBadRequest
	}

	// Default to 500
	return http.StatusInternalServerError
}

// ToErrorCode clear error code for API responses
func ToErrorCode(err error) string {
	if err == nil {
		return ""
	}

	if svcErr, ok := IsServiceError(err); ok {
		return svcErr.Code
	}

	var vErr *domain.ValidationError
	if errors.As(err, &vErr) {
		return domain.ErrCodeValidation
	}

	var dErr *domain.DomainError
	if errors.As(err, &dErr) {
		return dErr.Code
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return ErrCodeTimeout
	}

	return ErrCodeInternal
}
