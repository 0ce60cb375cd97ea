package services

import (
	"context"
	"log/slog"

	"github.com/DanielPopoola/ficmart-calculator/internal/application"
	"github.com/DanielPopoola/ficmart-calculator/internal/domain"
)

const (
	OperationConvert    = "convert"
	OperationVAT        = "vat"
	OperationDiscount   = "discount"
	OperationCurrencies = "currencies"
)

type ConversionService struct {
	converter application.CurrencyConverter
	recorder  application.CalculationRecorder
	logger    *slog.Logger
}

func NewConversionService(
	converter application.CurrencyConverter,
	recorder application.CalculationRecorder,
	logger *slog.Logger,
) *ConversionService {
	if recorder == nil {
		recorder = application.NoopRecorder
	}
	return &ConversionService{
		converter: converter,
		recorder:  recorder,
		logger:    logger,
	}
}

// Convert converts an amount between two currencies
func (s *ConversionService) Convert(ctx context.Context, cmd ConvertCommand) (*domain.Conversion, error) {
	if err := ctx.Err(); err != nil {
		return nil, s.finish(ctx, OperationConvert, application.NewTimeoutError(err))
	}

	result, err := s.converter.Convert(cmd.From, cmd.To, cmd.Amount)
	if err != nil {
		return nil, s.finish(ctx, OperationConvert, err,
			"from", cmd.From,
			"to", cmd.To,
			"amount", cmd.Amount,
		)
	}

	s.finish(ctx, OperationConvert, nil,
		"from", result.From,
		"to", result.To,
		"original_amount", result.OriginalAmount,
		"converted_amount", result.ConvertedAmount,
	)
	return &result, nil
}

// SupportedCurrencies lists the codes present in the rate table
func (s *ConversionService) SupportedCurrencies(ctx context.Context) ([]domain.Currency, error) {
	if err := ctx.Err(); err != nil {
		return nil, s.finish(ctx, OperationCurrencies, application.NewTimeoutError(err))
	}
	return s.converter.SupportedCurrencies(), nil
}

func (s *ConversionService) finish(ctx context.Context, op string, err error, attrs ...any) error {
	return finish(ctx, s.logger, s.recorder, op, err, attrs...)
}

// finish records the outcome of op and logs it. It returns err unchanged.
func finish(
	ctx context.Context,
	logger *slog.Logger,
	recorder application.CalculationRecorder,
	op string,
	err error,
	attrs ...any,
) error {
	outcome := application.Outcome(err)
	recorder.ObserveCalculation(op, outcome)

	attrs = append(attrs, "operation", op, "outcome", outcome)
	switch application.CategorizeError(err) {
	case "":
		logger.DebugContext(ctx, "calculation completed", attrs...)
	case application.CategoryClientError, application.CategoryBusinessRule:
		logger.InfoContext(ctx, "calculation rejected", append(attrs, "error", err.Error())...)
	default:
		logger.ErrorContext(ctx, "calculation failed", append(attrs, "error", err)...)
	}
	return err
}
