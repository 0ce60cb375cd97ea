package application_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/DanielPopoola/ficmart-calculator/internal/application"
	"github.com/DanielPopoola/ficmart-calculator/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestErrorMapping(t *testing.T) {
	validationErr := domain.NewValidationError([]*domain.DomainError{
		domain.NewMissingParameterError("from"),
	})
	unsupported := domain.NewUnsupportedConversionError("EUR", "JPY")

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
		wantCat    application.ErrorCategory
		wantOutcom string
	}{
		{"nil", nil, http.StatusOK, "", "", "success"},
		{"validation", validationErr, http.StatusBadRequest, domain.ErrCodeValidation, application.CategoryClientError, "invalid"},
		{"wrapped validation", fmt.Errorf("convert: %w", validationErr), http.StatusBadRequest, domain.ErrCodeValidation, application.CategoryClientError, "invalid"},
		{"unsupported", unsupported, http.StatusBadRequest, domain.ErrCodeUnsupportedConversion, application.CategoryBusinessRule, "unsupported"},
		{"single field", domain.NewInvalidNumberError("amount"), http.StatusBadRequest, domain.ErrCodeInvalidNumber, application.CategoryClientError, "invalid"},
		{"deadline", context.DeadlineExceeded, http.StatusServiceUnavailable, application.ErrCodeTimeout, application.CategoryTransient, "timeout"},
		{"timeout service error", application.NewTimeoutError(context.Canceled), http.StatusServiceUnavailable, application.ErrCodeTimeout, application.CategoryTransient, "timeout"},
		{"internal", application.NewInternalError(errors.New("db down")), http.StatusInternalServerError, application.ErrCodeInternal, application.CategoryInfrastructure, "error"},
		{"unavailable", application.NewUnavailableError(errors.New("no rates")), http.StatusServiceUnavailable, application.ErrCodeUnavailable, application.CategoryInfrastructure, "error"},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, application.ErrCodeInternal, application.CategoryInfrastructure, "error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantStatus, application.ToHTTPStatus(tt.err))
			assert.Equal(t, tt.wantCode, application.ToErrorCode(tt.err))
			assert.Equal(t, tt.wantCat, application.CategorizeError(tt.err))
			assert.Equal(t, tt.wantOutcom, application.Outcome(tt.err))
		})
	}
}

func TestServiceError(t *testing.T) {
	cause := errors.New("connection refused")
	err := application.NewInternalError(cause)

	assert.Equal(t, "An internal error occurred: connection refused", err.Error())
	assert.ErrorIs(t, err, cause)

	svcErr, ok := application.IsServiceError(fmt.Errorf("wrapped: %w", err))
	assert.True(t, ok)
	assert.Equal(t, application.ErrCodeInternal, svcErr.Code)

	assert.Equal(t, "Service unavailable", (&application.ServiceError{Message: "Service unavailable"}).Error())
}
