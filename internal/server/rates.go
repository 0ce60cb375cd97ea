package server

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/DanielPopoola/ficmart-calculator/internal/application"
	"github.com/DanielPopoola/ficmart-calculator/internal/config"
	"github.com/DanielPopoola/ficmart-calculator/internal/currency"
	"github.com/DanielPopoola/ficmart-calculator/internal/infrastructure/persistence"
	"github.com/DanielPopoola/ficmart-calculator/internal/infrastructure/persistence/postgres"
)

// LoadRateTable builds the rate table named by cfg.Rates.Source. A Postgres
// table is read once; the connection is closed before returning.
func LoadRateTable(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*currency.Table, error) {
	switch cfg.Rates.Source {
	case "", config.RateSourceStatic:
		table := currency.DefaultTable()
		logger.Info("using static rate table", "pairs", table.Len())
		return table, nil

	case config.RateSourcePostgres:
		ctx, cancel := context.WithTimeout(ctx, cfg.Rates.LoadTimeout)
		defer cancel()

		db, err := persistence.Connect(ctx, &cfg.Database, logger)
		if err != nil {
			return nil, application.NewUnavailableError(err)
		}
		defer db.Close()

		table, err := postgres.NewRateRepository(db.Pool).LoadTable(ctx)
		if err != nil {
			return nil, application.NewUnavailableError(err)
		}

		logger.Info("loaded rate table from postgres",
			"pairs", table.Len(),
			"currencies", table.Currencies(),
		)
		return table, nil

	default:
		return nil, fmt.Errorf("unknown rate source %q", cfg.Rates.Source)
	}
}
