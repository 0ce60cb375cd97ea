package finance

import (
	"github.com/DanielPopoola/ficmart-calculator/internal/domain"
	"github.com/DanielPopoola/ficmart-calculator/internal/validation"
)

// Calculator computes VAT-inclusive totals and discounted prices.
type Calculator struct {
	validator *validation.Validator
}

func NewCalculator(v *validation.Validator) *Calculator {
	return &Calculator{validator: v}
}

// VATInclusive returns net * (1 + rate/100), rounded to cents.
func (c *Calculator) VATInclusive(net, rate string) (domain.VATBreakdown, error) {
	params := validation.VATParams{Net: net, Rate: rate}
	if issues := c.validator.Check(params); len(issues) > 0 {
		return domain.VATBreakdown{}, domain.NewValidationError(issues)
	}

	n, _ := validation.ParseNumber(net)
	r, _ := validation.ParseNumber(rate)

	return domain.VATBreakdown{
		Net:   n,
		Rate:  r,
		Total: domain.RoundCents(n * (1 + r/100)),
	}, nil
}

// ApplyDiscount returns gross * (1 - percentage/100), rounded to cents.
func (c *Calculator) ApplyDiscount(gross, percentage string) (domain.Discount, error) {
	params := validation.DiscountParams{Gross: gross, Percentage: percentage}
	if issues := c.validator.Check(params); len(issues) > 0 {
		return domain.Discount{}, domain.NewValidationError(issues)
	}

	g, _ := validation.ParseNumber(gross)
	p, _ := validation.ParseNumber(percentage)

	return domain.Discount{
		Gross:      g,
		Percentage: p,
		Final:      domain.RoundCents(g * (1 - p/100)),
	}, nil
}
