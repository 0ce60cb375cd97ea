package postgres

import (
	"github.com/DanielPopoola/ficmart-calculator/internal/currency"
	"github.com/DanielPopoola/ficmart-calculator/internal/domain"
)

func toPair(m RateModel) currency.Pair {
	return currency.Pair{
		From: domain.NormalizeCurrency(m.FromCode),
		To:   domain.NormalizeCurrency(m.ToCode),
	}
}

func toTable(models []RateModel) (*currency.Table, error) {
	rates := make(map[currency.Pair]float64, len(models))
	for _, m := range models {
		rates[toPair(m)] = m.Rate
	}
	return currency.NewTable(rates)
}
