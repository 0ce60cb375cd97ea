package postgres

// RateModel is one row of the exchange_rates table.
type RateModel struct {
	FromCode string
	ToCode   string
	Rate     float64
}
