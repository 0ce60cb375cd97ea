package currency_test

import (
	"math"
	"strconv"
	"testing"

	"github.com/DanielPopoola/ficmart-calculator/internal/currency"
	"github.com/DanielPopoola/ficmart-calculator/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func TestDefaultTable(t *testing.T) {
	table := currency.DefaultTable()

	tests := []struct {
		from domain.Currency
		to   domain.Currency
		want float64
	}{
		{domain.EUR, domain.USD, 1.1},
		{domain.USD, domain.EUR, 1 / 1.1},
		{domain.USD, domain.GBP, 0.8},
		{domain.GBP, domain.USD, 1.25},
		{domain.EUR, domain.GBP, 0.88},
		{domain.GBP, domain.EUR, 1 / 0.88},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"-"+string(tt.to), func(t *testing.T) {
			rate, ok := table.Rate(tt.from, tt.to)

			require.True(t, ok)
			assert.InDelta(t, tt.want, rate, 1e-12)
		})
	}

	assert.Equal(t, 6, table.Len())
}

func TestDefaultTable_NotClosed(t *testing.T) {
	table := currency.DefaultTable()

	_, ok := table.Rate(domain.EUR, "JPY")
	assert.False(t, ok)

	_, ok = table.Rate(domain.EUR, domain.EUR)
	assert.False(t, ok, "identity is handled by the converter, not the table")
}

func TestNewTable(t *testing.T) {
	t.Run("copies its input", func(t *testing.T) {
		input := map[currency.Pair]float64{
			{From: "CHF", To: "EUR"}: 0.95,
		}
		table, err := currency.NewTable(input)
		require.NoError(t, err)

		input[currency.Pair{From: "CHF", To: "EUR"}] = 2
		input[currency.Pair{From: "EUR", To: "CHF"}] = 1.05

		rate, ok := table.Rate("CHF", "EUR")
		require.True(t, ok)
		assert.Equal(t, 0.95, rate)
		assert.Equal(t, 1, table.Len())
	})

	t.Run("rejects malformed codes", func(t *testing.T) {
		_, err := currency.NewTable(map[currency.Pair]float64{{From: "eur", To: "USD"}: 1.1})
		assert.Error(t, err)

		_, err = currency.NewTable(map[currency.Pair]float64{{From: "EURO", To: "USD"}: 1.1})
		assert.Error(t, err)
	})

	t.Run("rejects non positive rates", func(t *testing.T) {
		for _, rate := range []float64{0, -1, math.NaN(), math.Inf(1)} {
			_, err := currency.NewTable(map[currency.Pair]float64{{From: "EUR", To: "USD"}: rate})
			assert.Error(t, err, "rate %v", rate)
		}
	})

	t.Run("rejects identity pairs", func(t *testing.T) {
		_, err := currency.NewTable(map[currency.Pair]float64{{From: "EUR", To: "EUR"}: 1})
		assert.Error(t, err)
	})

	t.Run("MustNewTable panics on bad input", func(t *testing.T) {
		assert.Panics(t, func() {
			currency.MustNewTable(map[currency.Pair]float64{{From: "EUR", To: "USD"}: -1})
		})
	})
}

func TestTable_PairsAndCurrencies(t *testing.T) {
	table := currency.MustNewTable(map[currency.Pair]float64{
		{From: "USD", To: "JPY"}: 150,
		{From: "EUR", To: "USD"}: 1.1,
	})

	assert.Equal(t, []currency.Pair{
		{From: "EUR", To: "USD"},
		{From: "USD", To: "JPY"},
	}, table.Pairs())
	assert.Equal(t, []domain.Currency{"EUR", "JPY", "USD"}, table.Currencies())
	assert.Equal(t, "EUR-USD", table.Pairs()[0].String())
}
