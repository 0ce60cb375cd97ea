package application

import (
	"github.com/DanielPopoola/ficmart-calculator/internal/domain"
)

// CurrencyConverter is the port for the currency conversion core.
type CurrencyConverter interface {
	Convert(from, to, amount string) (domain.Conversion, error)
	SupportedCurrencies() []domain.Currency
}

// FinancialCalculator is the port for the VAT and discount core.
type FinancialCalculator interface {
	VATInclusive(net, rate string) (domain.VATBreakdown, error)
	ApplyDiscount(gross, percentage string) (domain.Discount, error)
}

// CalculationRecorder counts finished calculations by operation and outcome.
type CalculationRecorder interface {
	ObserveCalculation(operation, outcome string)
}

type noopRecorder struct{}

func (noopRecorder) ObserveCalculation(string, string) {}

// NoopRecorder discards every observation.
var NoopRecorder CalculationRecorder = noopRecorder{}
