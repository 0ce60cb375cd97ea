package domain

import (
	"errors"
	"fmt"
	"strings"
)

// DomainError represents a business logic error
type DomainError struct {
	Code    string
	Field   string
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for errors.Is/As support
func (e *DomainError) Unwrap() error {
	return e.Err
}

// Domain validation errors
const (
	ErrCodeMissingParameter      = "MISSING_PARAMETER"
	ErrCodeInvalidNumber         = "INVALID_NUMBER"
	ErrCodeOutOfRange            = "OUT_OF_RANGE"
	ErrCodeValidation            = "VALIDATION_ERROR"
	ErrCodeUnsupportedConversion = "UNSUPPORTED_CONVERSION"
)

func NewMissingParameterError(field string) *DomainError {
	return &DomainError{
		Code:    ErrCodeMissingParameter,
		Field:   field,
		Message: fmt.Sprintf(`Parameter "%s" is required`, field),
	}
}

func NewInvalidNumberError(field string) *DomainError {
	return &DomainError{
		Code:    ErrCodeInvalidNumber,
		Field:   field,
		Message: fmt.Sprintf(`Parameter "%s" must be a valid number`, field),
	}
}

func NewNegativeValueError(field string) *DomainError {
	return &DomainError{
		Code:    ErrCodeOutOfRange,
		Field:   field,
		Message: fmt.Sprintf(`Parameter "%s" must be positive`, field),
	}
}

func NewPercentageRangeError(field string) *DomainError {
	return &DomainError{
		Code:    ErrCodeOutOfRange,
		Field:   field,
		Message: fmt.Sprintf(`Parameter "%s" must be between 0 and 100`, field),
	}
}

func NewInvalidParameterError(field string, err error) *DomainError {
	return &DomainError{
		Code:    ErrCodeValidation,
		Field:   field,
		Message: fmt.Sprintf(`Parameter "%s" is invalid`, field),
		Err:     err,
	}
}

func NewUnsupportedConversionError(from, to Currency) *DomainError {
	return &DomainError{
		Code:    ErrCodeUnsupportedConversion,
		Message: fmt.Sprintf("Conversion from %s to %s not supported", from, to),
	}
}

// ValidationError aggregates every field failure found in a single call.
// Issues keep the order in which the fields were checked.
type ValidationError struct {
	Issues []*DomainError
}

func NewValidationError(issues []*DomainError) *ValidationError {
	return &ValidationError{Issues: issues}
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Messages(), ", ")
}

// Messages returns the human readable message of each issue.
func (e *ValidationError) Messages() []string {
	messages := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		messages = append(messages, issue.Message)
	}
	return messages
}

func (e *ValidationError) Unwrap() []error {
	errs := make([]error, 0, len(e.Issues))
	for _, issue := range e.Issues {
		errs = append(errs, issue)
	}
	return errs
}

// IsErrorCode checks if an error is a DomainError with a specific code.
// A ValidationError matches ErrCodeValidation and the code of any of its issues.
func IsErrorCode(err error, code string) bool {
	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		if code == ErrCodeValidation {
			return true
		}
		for _, issue := range validationErr.Issues {
			if issue.Code == code {
				return true
			}
		}
		return false
	}

	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Code == code
	}
	return false
}
