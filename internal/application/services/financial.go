package services

import (
	"context"
	"log/slog"

	"github.com/DanielPopoola/ficmart-calculator/internal/application"
	"github.com/DanielPopoola/ficmart-calculator/internal/domain"
)

type FinancialService struct {
	calculator application.FinancialCalculator
	recorder   application.CalculationRecorder
	logger     *slog.Logger
}

func NewFinancialService(
	calculator application.FinancialCalculator,
	recorder application.CalculationRecorder,
	logger *slog.Logger,
) *FinancialService {
	if recorder == nil {
		recorder = application.NoopRecorder
	}
	return &FinancialService{
		calculator: calculator,
		recorder:   recorder,
		logger:     logger,
	}
}

// VATInclusive computes the total including VAT
func (s *FinancialService) VATInclusive(ctx context.Context, cmd VATCommand) (*domain.VATBreakdown, error) {
	if err := ctx.Err(); err != nil {
		return nil, finish(ctx, s.logger, s.recorder, OperationVAT, application.NewTimeoutError(err))
	}

	result, err := s.calculator.VATInclusive(cmd.Net, cmd.Rate)
	if err != nil {
		return nil, finish(ctx, s.logger, s.recorder, OperationVAT, err,
			"ht", cmd.Net,
			"taux", cmd.Rate,
		)
	}

	finish(ctx, s.logger, s.recorder, OperationVAT, nil,
		"ht", result.Net,
		"taux", result.Rate,
		"ttc", result.Total,
	)
	return &result, nil
}

// ApplyDiscount computes the discounted price
func (s *FinancialService) ApplyDiscount(ctx context.Context, cmd DiscountCommand) (*domain.Discount, error) {
	if err := ctx.Err(); err != nil {
		return nil, finish(ctx, s.logger, s.recorder, OperationDiscount, application.NewTimeoutError(err))
	}

	result, err := s.calculator.ApplyDiscount(cmd.Gross, cmd.Percentage)
	if err != nil {
		return nil, finish(ctx, s.logger, s.recorder, OperationDiscount, err,
			"prix", cmd.Gross,
			"pourcentage", cmd.Percentage,
		)
	}

	finish(ctx, s.logger, s.recorder, OperationDiscount, nil,
		"prix_initial", result.Gross,
		"pourcentage", result.Percentage,
		"prix_final", result.Final,
	)
	return &result, nil
}
