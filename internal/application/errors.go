package application

import (
	"errors"
	"fmt"
	"net/http"
)

// APPLICATION-LEVEL ERRORS (Orchestration)

type ServiceError struct {
	Code       string
	Message    string
	HTTPStatus int
	Err        error
}

func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}

const (
	ErrCodeTimeout     = "TIMEOUT"
	ErrCodeInternal    = "INTERNAL_ERROR"
	ErrCodeUnavailable = "SERVICE_UNAVAILABLE"
)

// NewTimeoutError shares its status and message with the request timeout
// middleware.
func NewTimeoutError(err error) *ServiceError {
	return &ServiceError{
		Code:       ErrCodeTimeout,
		Message:    "Request timeout",
		HTTPStatus: http.StatusServiceUnavailable,
		Err:        err,
	}
}

func NewInternalError(err error) *ServiceError {
	return &ServiceError{
		Code:       ErrCodeInternal,
		Message:    "An internal error occurred",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

// NewUnavailableError is returned when a dependency needed at start-up,
// such as the rate store, cannot be reached.
func NewUnavailableError(err error) *ServiceError {
	return &ServiceError{
		Code:       ErrCodeUnavailable,
		Message:    "Service unavailable",
		HTTPStatus: http.StatusServiceUnavailable,
		Err:        err,
	}
}

func IsServiceError(err error) (*ServiceError, bool) {
	var svcErr *ServiceError
	ok := errors.As(err, &svcErr)
	return svcErr, ok
}
