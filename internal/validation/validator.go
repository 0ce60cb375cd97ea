package validation

import (
	"fmt"
	"math"
	"reflect"
	"regexp"
	"strconv"
	"strings"

	"github.com/DanielPopoola/ficmart-calculator/internal/domain"
	"github.com/go-playground/validator"
)

const (
	tagRequired    = "required"
	tagFinite      = "finite"
	tagNonNegative = "nonnegative"
	tagPercentage  = "percentage"
)

// ConversionParams are the raw inputs of a currency conversion.
type ConversionParams struct {
	From   string `param:"from" validate:"required"`
	To     string `param:"to" validate:"required"`
	Amount string `param:"amount" validate:"required,finite,nonnegative"`
}

// VATParams are the raw inputs of a VAT-inclusive total.
type VATParams struct {
	Net  string `param:"ht" validate:"required,finite,nonnegative"`
	Rate string `param:"taux" validate:"required,finite,percentage"`
}

// DiscountParams are the raw inputs of a discount.
type DiscountParams struct {
	Gross      string `param:"prix" validate:"required,finite,nonnegative"`
	Percentage string `param:"pourcentage" validate:"required,finite,percentage"`
}

// Validator checks raw parameter structs. Every field is checked; the
// checks of a single field stop at its first failing tag.
type Validator struct {
	validate *validator.Validate
}

func New() *Validator {
	v := validator.New()

	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := field.Tag.Get("param")
		if name == "" {
			return field.Name
		}
		return name
	})

	mustRegister(v, tagFinite, isFinite)
	mustRegister(v, tagNonNegative, isNonNegative)
	mustRegister(v, tagPercentage, isPercentage)

	return &Validator{validate: v}
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("register %q validation: %v", tag, err))
	}
}

// Check returns one issue per failing field, in field declaration order.
// A nil result means params are valid.
func (v *Validator) Check(params interface{}) []*domain.DomainError {
	err := v.validate.Struct(params)
	if err == nil {
		return nil
	}

	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []*domain.DomainError{{
			Code:    domain.ErrCodeValidation,
			Message: err.Error(),
			Err:     err,
		}}
	}

	issues := make([]*domain.DomainError, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		issues = append(issues, toDomainError(fe))
	}
	return issues
}

// Messages runs Check and keeps only the messages.
func (v *Validator) Messages(params interface{}) []string {
	issues := v.Check(params)
	messages := make([]string, 0, len(issues))
	for _, issue := range issues {
		messages = append(messages, issue.Message)
	}
	return messages
}

func toDomainError(fe validator.FieldError) *domain.DomainError {
	switch fe.Tag() {
	case tagRequired:
		return domain.NewMissingParameterError(fe.Field())
	case tagFinite:
		return domain.NewInvalidNumberError(fe.Field())
	case tagNonNegative:
		return domain.NewNegativeValueError(fe.Field())
	case tagPercentage:
		return domain.NewPercentageRangeError(fe.Field())
	default:
		return &domain.DomainError{
			Code:    domain.ErrCodeValidation,
			Field:   fe.Field(),
			Message: fmt.Sprintf(`Parameter "%s" failed the %s check`, fe.Field(), fe.Tag()),
		}
	}
}

// leadingNumber matches the decimal number at the start of a value. Anything
// after it ("100€", "10%", "12abc") is ignored.
var leadingNumber = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)

// ParseNumber reads the leading decimal number of a raw value. A value with
// no leading number, or one outside the float64 range, is rejected. Hex and
// the NaN/Inf spellings are not numbers here. -0 is read as 0.
func ParseNumber(raw string) (float64, bool) {
	prefix := leadingNumber.FindString(strings.TrimSpace(raw))
	if prefix == "" {
		return 0, false
	}

	f, err := strconv.ParseFloat(prefix, 64)
	if err != nil || math.IsInf(f, 0) {
		return 0, false
	}
	// drop the sign of -0
	if f == 0 {
		f = 0
	}
	return f, true
}

func isFinite(fl validator.FieldLevel) bool {
	_, ok := ParseNumber(fl.Field().String())
	return ok
}

func isNonNegative(fl validator.FieldLevel) bool {
	f, ok := ParseNumber(fl.Field().String())
	return ok && f >= 0
}

func isPercentage(fl validator.FieldLevel) bool {
	f, ok := ParseNumber(fl.Field().String())
	return ok && f >= 0 && f <= 100
}
