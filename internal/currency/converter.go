package currency

import (
	"github.com/DanielPopoola/ficmart-calculator/internal/domain"
	"github.com/DanielPopoola/ficmart-calculator/internal/validation"
)

// Converter converts amounts with a fixed rate table. It holds no mutable
// state and may be shared freely.
type Converter struct {
	table     *Table
	validator *validation.Validator
}

func NewConverter(table *Table, v *validation.Validator) *Converter {
	return &Converter{
		table:     table,
		validator: v,
	}
}

// Convert validates the raw inputs and converts amount from one currency to
// another. Currency codes are case-insensitive. Converting a currency to
// itself returns the amount unchanged; every other result is rounded to cents.
func (c *Converter) Convert(from, to, amount string) (domain.Conversion, error) {
	params := validation.ConversionParams{From: from, To: to, Amount: amount}
	if issues := c.validator.Check(params); len(issues) > 0 {
		return domain.Conversion{}, domain.NewValidationError(issues)
	}

	value, _ := validation.ParseNumber(amount)
	src := domain.NormalizeCurrency(from)
	dst := domain.NormalizeCurrency(to)

	if src == dst {
		return domain.Conversion{
			From:            src,
			To:              dst,
			Rate:            1,
			OriginalAmount:  value,
			ConvertedAmount: value,
		}, nil
	}

	rate, ok := c.table.Rate(src, dst)
	if !ok {
		return domain.Conversion{}, domain.NewUnsupportedConversionError(src, dst)
	}

	return domain.Conversion{
		From:            src,
		To:              dst,
		Rate:            rate,
		OriginalAmount:  value,
		ConvertedAmount: domain.RoundCents(value * rate),
	}, nil
}

// SupportedCurrencies lists every currency that appears in the rate table.
func (c *Converter) SupportedCurrencies() []domain.Currency {
	return c.table.Currencies()
}
