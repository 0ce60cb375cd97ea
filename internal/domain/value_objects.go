package domain

import (
	"math"
	"strings"
)

// Currency is a three-letter currency code, upper case once normalised.
type Currency string

const (
	EUR Currency = "EUR"
	USD Currency = "USD"
	GBP Currency = "GBP"
)

// NormalizeCurrency upper-cases a caller supplied code.
func NormalizeCurrency(code string) Currency {
	return Currency(strings.ToUpper(code))
}

func (c Currency) String() string {
	return string(c)
}

// IsWellFormed reports whether c is exactly three upper case ASCII letters.
func (c Currency) IsWellFormed() bool {
	if len(c) != 3 {
		return false
	}
	for i := 0; i < len(c); i++ {
		if c[i] < 'A' || c[i] > 'Z' {
			return false
		}
	}
	return true
}

// RoundCents rounds half away from zero to two decimal places.
func RoundCents(v float64) float64 {
	rounded := math.Round(v*100) / 100
	if rounded == 0 {
		// collapse -0
		return 0
	}
	return rounded
}

// Conversion is the outcome of converting an amount between two currencies.
type Conversion struct {
	From            Currency
	To              Currency
	Rate            float64
	OriginalAmount  float64
	ConvertedAmount float64
}

// VATBreakdown holds a net amount, the VAT rate applied to it and the VAT-inclusive total.
type VATBreakdown struct {
	Net   float64
	Rate  float64
	Total float64
}

// Discount holds a gross price, the percentage taken off and the resulting price.
type Discount struct {
	Gross      float64
	Percentage float64
	Final      float64
}
