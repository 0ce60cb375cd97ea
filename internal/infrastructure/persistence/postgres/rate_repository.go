package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/DanielPopoola/ficmart-calculator/internal/currency"
	"github.com/DanielPopoola/ficmart-calculator/internal/infrastructure/persistence"
	"github.com/jackc/pgx/v5"
)

var ErrNoRates = errors.New("exchange_rates table is empty")

// RateRepository reads the exchange rate table. It is used once at start-up;
// the resulting currency.Table is never written back.
type RateRepository struct {
	db persistence.Executor
}

func NewRateRepository(db persistence.Executor) *RateRepository {
	return &RateRepository{db: db}
}

func (r *RateRepository) FindAll(ctx context.Context) ([]RateModel, error) {
	query := `
		SELECT from_code, to_code, rate
		FROM exchange_rates
		ORDER BY from_code, to_code
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query exchange rates: %w", err)
	}

	models, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (RateModel, error) {
		var m RateModel
		err := row.Scan(&m.FromCode, &m.ToCode, &m.Rate)
		return m, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan exchange rates: %w", err)
	}

	return models, nil
}

// LoadTable reads every row and builds an immutable rate table from them.
func (r *RateRepository) LoadTable(ctx context.Context) (*currency.Table, error) {
	models, err := r.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(models) == 0 {
		return nil, ErrNoRates
	}

	table, err := toTable(models)
	if err != nil {
		return nil, fmt.Errorf("build rate table: %w", err)
	}
	return table, nil
}
