package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mehedihasanmondol/online-plan-pilot/internal/adapter/http/handler"
	"github.com/mehedihasanmondol/online-plan-pilot/internal/adapter/http/middleware"
	"github.com/mehedihasanmondol/online-plan-pilot/internal/usecase"
)

// RouterConfig holds dependencies for the router.
type RouterConfig struct {
	AccountHandler        *handler.AccountHandler
	WorkHourHandler       *handler.WorkHourHandler
	PayrollHandler        *handler.PayrollHandler
	EntryHandler          *handler.EntryHandler
	LedgerHandler         *handler.LedgerHandler
	NotificationHandler   *handler.NotificationHandler
	ReconciliationHandler *handler.ReconciliationHandler
	HealthHandler         *handler.HealthHandler
	IdempotencyStore      usecase.IdempotencyStore
	RateLimiter           *middleware.RateLimiter
}

// NewRouter creates a new HTTP router.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.Metrics)

	if cfg.RateLimiter != nil {
		r.Use(cfg.RateLimiter.Limit)
	}

	// Health and metrics endpoints
	r.Get("/health", cfg.HealthHandler.Liveness)
	r.Get("/ready", cfg.HealthHandler.Readiness)
	r.Handle("/metrics", promhttp.Handler())

	// API v1
	r.Route("/api/v1", func(r chi.Router) {
		// Idempotency middleware for mutating requests
		if cfg.IdempotencyStore != nil {
			idempotencyMiddleware := middleware.NewIdempotencyMiddleware(cfg.IdempotencyStore)
			r.Use(idempotencyMiddleware.Wrap)
		}

		// Bank accounts and their ledger views
		r.Route("/accounts", func(r chi.Router) {
			r.Post("/", cfg.AccountHandler.Create)
			r.Get("/", cfg.AccountHandler.List)
			r.Get("/{id}", cfg.AccountHandler.Get)
			r.Post("/{id}/deposits", cfg.AccountHandler.Deposit)
			r.Get("/{id}/entries", cfg.EntryHandler.ListByAccount)
			r.Get("/{id}/balance", cfg.EntryHandler.GetBalance)
			r.Get("/{id}/balance/history", cfg.EntryHandler.GetHistoricalBalance)
			r.Get("/{id}/reconciliation", cfg.ReconciliationHandler.ReconcileAccount)
		})

		// Working hours
		r.Route("/workhours", func(r chi.Router) {
			r.Post("/", cfg.WorkHourHandler.Create)
			r.Get("/", cfg.WorkHourHandler.List)
			r.Get("/summary", cfg.WorkHourHandler.Aggregate)
			r.Get("/{id}", cfg.WorkHourHandler.Get)
			r.Post("/{id}/approve", cfg.WorkHourHandler.Approve)
			r.Post("/{id}/reject", cfg.WorkHourHandler.Reject)
		})

		// Payroll lifecycle
		r.Route("/payrolls", func(r chi.Router) {
			r.Post("/", cfg.PayrollHandler.Create)
			r.Get("/", cfg.PayrollHandler.List)
			r.Get("/{id}", cfg.PayrollHandler.Get)
			r.Post("/{id}/approve", cfg.PayrollHandler.Approve)
			r.Post("/{id}/pay", cfg.PayrollHandler.Pay)
			r.Get("/{id}/entries", cfg.EntryHandler.ListByPayroll)
		})

		// Notifications
		r.Route("/notifications", func(r chi.Router) {
			r.Get("/", cfg.NotificationHandler.List)
			r.Get("/{id}", cfg.NotificationHandler.Get)
		})

		// Ledger-wide checks
		r.Route("/ledger", func(r chi.Router) {
			r.Get("/consistency", cfg.LedgerHandler.CheckConsistency)
		})

		// Reconciliation
		r.Route("/reconciliation", func(r chi.Router) {
			r.Get("/report", cfg.ReconciliationHandler.Report)
			r.Get("/orphans", cfg.ReconciliationHandler.OrphanedPayments)
		})
	})

	return r
}
