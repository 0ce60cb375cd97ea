package rest

import (
	"time"

	"github.com/DanielPopoola/ficmart-calculator/internal/api"
	"github.com/DanielPopoola/ficmart-calculator/internal/domain"
)

// ISO-8601 with millisecond precision in UTC.
const timestampLayout = "2006-01-02T15:04:05.000Z"

func ToAPIConversion(c *domain.Conversion) api.ConversionResponse {
	return api.ConversionResponse{
		From:            c.From.String(),
		To:              c.To.String(),
		OriginalAmount:  c.OriginalAmount,
		ConvertedAmount: c.ConvertedAmount,
	}
}

func ToAPIVAT(v *domain.VATBreakdown) api.VATResponse {
	return api.VATResponse{
		Ht:   v.Net,
		Taux: v.Rate,
		Ttc:  v.Total,
	}
}

func ToAPIDiscount(d *domain.Discount) api.DiscountResponse {
	return api.DiscountResponse{
		PrixInitial: d.Gross,
		Pourcentage: d.Percentage,
		PrixFinal:   d.Final,
	}
}

func ToAPICurrencies(currencies []domain.Currency) api.CurrenciesResponse {
	codes := make([]string, 0, len(currencies))
	for _, c := range currencies {
		codes = append(codes, c.String())
	}
	return api.CurrenciesResponse{Currencies: codes}
}

func ToAPIHealth(now time.Time) api.HealthResponse {
	return api.HealthResponse{
		Status:    "OK",
		Timestamp: now.UTC().Format(timestampLayout),
	}
}
