package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/DanielPopoola/ficmart-calculator/internal/application/services"
	"github.com/DanielPopoola/ficmart-calculator/internal/domain"
)

type ConversionService interface {
	Convert(ctx context.Context, cmd services.ConvertCommand) (*domain.Conversion, error)
	SupportedCurrencies(ctx context.Context) ([]domain.Currency, error)
}

type FinancialService interface {
	VATInclusive(ctx context.Context, cmd services.VATCommand) (*domain.VATBreakdown, error)
	ApplyDiscount(ctx context.Context, cmd services.DiscountCommand) (*domain.Discount, error)
}

type Handlers struct {
	conversionService ConversionService
	financialService  FinancialService
	logger            *slog.Logger
	now               func() time.Time
}

func NewHandlers(
	conversionService ConversionService,
	financialService FinancialService,
	logger *slog.Logger,
) *Handlers {
	return &Handlers{
		conversionService: conversionService,
		financialService:  financialService,
		logger:            logger,
		now:               time.Now,
	}
}

// WithClock replaces the clock used for health timestamps.
func (h *Handlers) WithClock(now func() time.Time) *Handlers {
	h.now = now
	return h
}

func (h *Handlers) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /convert", h.HandleConvert)
	mux.HandleFunc("GET /tva", h.HandleVATInclusive)
	mux.HandleFunc("GET /remise", h.HandleApplyDiscount)
	mux.HandleFunc("GET /currencies", h.HandleListCurrencies)
	mux.HandleFunc("GET /health", h.HandleHealth)
	mux.HandleFunc("/", h.HandleNotFound)
}
