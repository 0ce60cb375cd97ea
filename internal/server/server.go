package server

import (
	"log/slog"
	"net/http"

	"github.com/DanielPopoola/ficmart-calculator/internal/api"
	"github.com/DanielPopoola/ficmart-calculator/internal/application"
	"github.com/DanielPopoola/ficmart-calculator/internal/application/services"
	"github.com/DanielPopoola/ficmart-calculator/internal/config"
	"github.com/DanielPopoola/ficmart-calculator/internal/currency"
	"github.com/DanielPopoola/ficmart-calculator/internal/finance"
	"github.com/DanielPopoola/ficmart-calculator/internal/interfaces/rest/handlers"
	"github.com/DanielPopoola/ficmart-calculator/internal/interfaces/rest/middleware"
	"github.com/DanielPopoola/ficmart-calculator/internal/telemetry"
	"github.com/DanielPopoola/ficmart-calculator/internal/validation"
	"github.com/getkin/kin-openapi/openapi3"
)

// Dependencies are the pieces built at start-up that the HTTP stack needs.
// Metrics may be nil when metrics are disabled.
type Dependencies struct {
	Server  config.ServerConfig
	Logger  *slog.Logger
	Table   *currency.Table
	Metrics *telemetry.Metrics
	Doc     *openapi3.T
}

// NewHandler wires the calculation core, the routes and the middleware chain.
func NewHandler(deps Dependencies) http.Handler {
	v := validation.New()

	var recorder application.CalculationRecorder = application.NoopRecorder
	if deps.Metrics != nil {
		recorder = deps.Metrics
		deps.Metrics.SetRateTableSize(deps.Table.Len())
	}

	conversionService := services.NewConversionService(
		currency.NewConverter(deps.Table, v),
		recorder,
		deps.Logger,
	)
	financialService := services.NewFinancialService(
		finance.NewCalculator(v),
		recorder,
		deps.Logger,
	)

	h := handlers.NewHandlers(conversionService, financialService, deps.Logger)

	mux := http.NewServeMux()
	h.RegisterRoutes(mux)
	if deps.Doc != nil {
		api.RegisterDocsRoutes(mux, deps.Doc)
	}
	if deps.Metrics != nil {
		mux.Handle("GET /metrics", deps.Metrics.Handler())
	}

	handler := middleware.Metrics(deps.Metrics)(mux)
	handler = middleware.Recovery(deps.Logger)(handler)
	handler = middleware.Timeout(deps.Server.RequestTimeout)(handler)
	handler = middleware.Logging(deps.Logger)(handler)
	handler = middleware.RequestID(handler)

	return handler
}

func New(cfg config.ServerConfig, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:         "0.0.0.0:" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}
}
