package domain_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/DanielPopoola/ficmart-calculator/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldErrorMessages(t *testing.T) {
	assert.Equal(t, `Parameter "from" is required`, domain.NewMissingParameterError("from").Error())
	assert.Equal(t, `Parameter "amount" must be a valid number`, domain.NewInvalidNumberError("amount").Error())
	assert.Equal(t, `Parameter "ht" must be positive`, domain.NewNegativeValueError("ht").Error())
	assert.Equal(t, `Parameter "taux" must be between 0 and 100`, domain.NewPercentageRangeError("taux").Error())
	assert.Equal(t, "Conversion from EUR to JPY not supported", domain.NewUnsupportedConversionError("EUR", "JPY").Error())
}

func TestValidationError(t *testing.T) {
	t.Run("joins messages in order", func(t *testing.T) {
		err := domain.NewValidationError([]*domain.DomainError{
			domain.NewMissingParameterError("from"),
			domain.NewMissingParameterError("to"),
			domain.NewInvalidNumberError("amount"),
		})

		assert.Equal(t,
			`Parameter "from" is required, Parameter "to" is required, Parameter "amount" must be a valid number`,
			err.Error(),
		)
		assert.Len(t, err.Messages(), 3)
	})

	t.Run("matches issue codes through wrapping", func(t *testing.T) {
		err := fmt.Errorf("convert: %w", domain.NewValidationError([]*domain.DomainError{
			domain.NewNegativeValueError("amount"),
		}))

		assert.True(t, domain.IsErrorCode(err, domain.ErrCodeValidation))
		assert.True(t, domain.IsErrorCode(err, domain.ErrCodeOutOfRange))
		assert.False(t, domain.IsErrorCode(err, domain.ErrCodeMissingParameter))

		var domainErr *domain.DomainError
		require.True(t, errors.As(err, &domainErr))
		assert.Equal(t, "amount", domainErr.Field)
	})

	t.Run("plain domain error", func(t *testing.T) {
		err := domain.NewUnsupportedConversionError("EUR", "JPY")

		assert.True(t, domain.IsErrorCode(err, domain.ErrCodeUnsupportedConversion))
		assert.False(t, domain.IsErrorCode(err, domain.ErrCodeValidation))
		assert.False(t, domain.IsErrorCode(errors.New("boom"), domain.ErrCodeValidation))
	})

	t.Run("wrapped cause is reported", func(t *testing.T) {
		cause := errors.New("multiple values")
		err := domain.NewInvalidParameterError("amount", cause)

		assert.ErrorIs(t, err, cause)
		assert.Equal(t, `Parameter "amount" is invalid: multiple values`, err.Error())
	})
}

func TestRoundCents(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{"rounds down", 36.663, 36.66},
		{"rounds half up", 0.125, 0.13},
		{"float noise", 110.00000000000001, 110},
		{"large amount", 1099999.989, 1099999.99},
		{"negative zero", -0.001, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.RoundCents(tt.in))
		})
	}
}

func TestCurrency(t *testing.T) {
	assert.Equal(t, domain.EUR, domain.NormalizeCurrency("eur"))
	assert.Equal(t, domain.Currency("USD"), domain.NormalizeCurrency("uSd"))

	assert.True(t, domain.Currency("GBP").IsWellFormed())
	assert.False(t, domain.Currency("GB").IsWellFormed())
	assert.False(t, domain.Currency("gbp").IsWellFormed())
	assert.False(t, domain.Currency("G1P").IsWellFormed())
}
