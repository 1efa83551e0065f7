package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"

	httpAdapter "github.com/mehedihasanmondol/online-plan-pilot/internal/adapter/http"
	"github.com/mehedihasanmondol/online-plan-pilot/internal/adapter/http/handler"
	"github.com/mehedihasanmondol/online-plan-pilot/internal/adapter/http/middleware"
	postgresRepo "github.com/mehedihasanmondol/online-plan-pilot/internal/adapter/repository/postgres"
	redisRepo "github.com/mehedihasanmondol/online-plan-pilot/internal/adapter/repository/redis"
	"github.com/mehedihasanmondol/online-plan-pilot/internal/infrastructure/config"
	"github.com/mehedihasanmondol/online-plan-pilot/internal/infrastructure/eventpublisher"
	"github.com/mehedihasanmondol/online-plan-pilot/internal/infrastructure/logger"
	"github.com/mehedihasanmondol/online-plan-pilot/internal/infrastructure/metrics"
	"github.com/mehedihasanmondol/online-plan-pilot/internal/infrastructure/postgres"
	"github.com/mehedihasanmondol/online-plan-pilot/internal/infrastructure/redis"
	"github.com/mehedihasanmondol/online-plan-pilot/internal/usecase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		zlog.Fatal().Err(err).Msg("failed to load configuration")
	}

	zlog.Logger = logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
	zerolog.DefaultContextLogger = &zlog.Logger

	// The outbox publisher and migrator log through slog.
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	if err := postgres.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
		zlog.Fatal().Err(err).Msg("failed to run migrations")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := postgres.NewPoolWithConfig(ctx, postgres.PoolConfig{
		DatabaseURL: cfg.DatabaseURL,
		MaxConns:    cfg.DatabaseMaxConns,
		MinConns:    cfg.DatabaseMinConns,
	})
	if err != nil {
		zlog.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	defer pool.Close()
	zlog.Info().Msg("connected to postgres")

	redisClient, err := redis.NewClient(ctx, cfg.RedisURL)
	if err != nil {
		zlog.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer redisClient.Close()
	zlog.Info().Msg("connected to redis")

	// Repositories
	txManager := postgresRepo.NewTxManager(pool)
	accountRepo := postgresRepo.NewAccountRepository(pool)
	entryRepo := postgresRepo.NewEntryRepository(pool)
	ledgerRepo := postgresRepo.NewLedgerRepository(pool)
	payrollRepo := postgresRepo.NewPayrollRepository(pool)
	workHourRepo := postgresRepo.NewWorkHourRepository(pool)
	notificationRepo := postgresRepo.NewNotificationRepository(pool)
	outboxRepo := newOutboxRepository(cfg, pool)
	auditRepo := postgresRepo.NewAuditRepository(pool)
	idGen := postgresRepo.NewULIDGenerator()
	cache := redisRepo.NewCache(redisClient)
	idempotencyStore := redisRepo.NewIdempotencyStore(redisClient)

	m := metrics.New()

	// Use cases
	accountUC := usecase.NewAccountUseCase(txManager, accountRepo, entryRepo, outboxRepo, auditRepo, idGen, cache, m)
	workHourUC := usecase.NewWorkHourUseCase(workHourRepo, auditRepo, idGen)
	payrollUC := usecase.NewPayrollUseCase(txManager, payrollRepo, workHourRepo, outboxRepo, auditRepo, idGen, m)
	paymentUC := usecase.NewPaymentUseCase(txManager, payrollRepo, accountRepo, entryRepo, workHourRepo, outboxRepo, auditRepo, idGen, cache, m)
	ledgerUC := usecase.NewLedgerUseCase(accountRepo, entryRepo, ledgerRepo, cache)
	notificationUC := usecase.NewNotificationUseCase(notificationRepo)
	reconciliationUC := usecase.NewReconciliationUseCase(accountRepo, ledgerRepo)

	// Payments retry lost serialization races with fresh reads per attempt.
	paymentSvc := &retryingPaymentService{
		inner:   paymentUC,
		retrier: postgresRepo.NewRetrier(),
	}

	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		AccountHandler:        handler.NewAccountHandler(accountUC),
		WorkHourHandler:       handler.NewWorkHourHandler(workHourUC),
		PayrollHandler:        handler.NewPayrollHandler(payrollUC, paymentSvc),
		EntryHandler:          handler.NewEntryHandler(ledgerUC),
		LedgerHandler:         handler.NewLedgerHandler(ledgerUC),
		NotificationHandler:   handler.NewNotificationHandler(notificationUC),
		ReconciliationHandler: handler.NewReconciliationHandler(reconciliationUC),
		HealthHandler:         handler.NewHealthHandler(pool, redisClient),
		IdempotencyStore:      idempotencyStore,
		RateLimiter:           middleware.NewRateLimiter(cfg.RateLimitPerSecond, cfg.RateLimitBurst),
	})

	// Outbox publisher: payment events reach workers through here.
	publisher := buildPublisher(cfg, notificationRepo, idGen, m)
	if cfg.OutboxEnabled {
		outboxPublisher := eventpublisher.NewEventPublisher(eventpublisher.Config{
			OutboxRepo: outboxRepo,
			Publisher:  publisher,
			Metrics:    m,
			BatchSize:  cfg.OutboxBatchSize,
			Interval:   cfg.OutboxPollInterval,
		})

		go func() {
			if err := outboxPublisher.Start(ctx); err != nil && ctx.Err() == nil {
				zlog.Error().Err(err).Msg("outbox publisher stopped")
			}
		}()
	} else {
		zlog.Warn().Msg("outbox publishing disabled; domain events are discarded")
	}

	go runReconciliationSweeper(ctx, reconciliationUC, m, cfg.ReconciliationInterval)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	go func() {
		zlog.Info().Str("port", cfg.HTTPPort).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zlog.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()
	zlog.Info().Msg("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		zlog.Fatal().Err(err).Msg("server forced to shutdown")
	}

	if closer, ok := publisher.(interface{ Close() error }); ok {
		if err := closer.Close(); err != nil {
			zlog.Error().Err(err).Msg("failed to close event publisher")
		}
	}

	zlog.Info().Msg("server stopped")
}

// newOutboxRepository returns the transactional outbox, or a discarding
// implementation when event publishing is switched off.
func newOutboxRepository(cfg *config.Config, pool *pgxpool.Pool) usecase.OutboxRepository {
	if !cfg.OutboxEnabled {
		return postgresRepo.NewNullOutboxRepository()
	}

	return postgresRepo.NewOutboxRepository(pool)
}

// buildPublisher wires the outbox sink: Kafka when enabled, structured logs
// otherwise. Either way the NotificationDispatcher materializes worker
// notifications from payment events.
func buildPublisher(
	cfg *config.Config,
	notificationRepo usecase.NotificationRepository,
	idGen usecase.IDGenerator,
	m *metrics.Metrics,
) eventpublisher.Publisher {
	var sink eventpublisher.Publisher
	if cfg.KafkaEnabled {
		sink = eventpublisher.NewKafkaPublisher(cfg.KafkaBrokers, cfg.KafkaTopic)
		zlog.Info().Strs("brokers", cfg.KafkaBrokers).Str("topic", cfg.KafkaTopic).Msg("publishing events to kafka")
	} else {
		sink = eventpublisher.NewLogPublisher(slog.Default())
	}

	return eventpublisher.NewNotificationDispatcher(sink, notificationRepo, idGen, slog.Default(), m)
}

// runReconciliationSweeper periodically re-derives every account balance from
// the ledger and reports drift and orphaned withdrawals through metrics.
func runReconciliationSweeper(ctx context.Context, uc *usecase.ReconciliationUseCase, m *metrics.Metrics, interval time.Duration) {
	if interval <= 0 {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			report, err := uc.GenerateReconciliationReport(ctx)
			if err != nil {
				zlog.Error().Err(err).Msg("reconciliation sweep failed")
				continue
			}

			for _, result := range report.Discrepancies {
				zlog.Warn().
					Str("account_id", result.AccountID).
					Str("recorded", result.RecordedBalance.String()).
					Str("calculated", result.CalculatedBalance.String()).
					Str("difference", result.Difference.String()).
					Msg("account balance drifted from ledger")
			}

			m.ReconciliationRuns.Inc()
			m.UnreconciledAccounts.Set(float64(len(report.Discrepancies)))
			m.OrphanedWithdrawals.Set(float64(len(report.OrphanedPayments)))

			zlog.Info().
				Int("accounts", report.TotalAccounts).
				Int("unreconciled", len(report.Discrepancies)).
				Int("orphaned", len(report.OrphanedPayments)).
				Bool("ledger_consistent", report.LedgerConsistent).
				Msg("reconciliation sweep completed")
		}
	}
}

// retryingPaymentService retries payments that lost a compare-and-set race.
// Each attempt re-reads payroll and account state, so a retry after a
// concurrent payment observes the paid status and stops cleanly.
type retryingPaymentService struct {
	inner   *usecase.PaymentUseCase
	retrier *postgresRepo.Retrier
}

func (s *retryingPaymentService) Pay(ctx context.Context, payrollID, bankAccountID string) error {
	return s.retrier.Retry(ctx, func() error {
		return s.inner.Pay(ctx, payrollID, bankAccountID)
	})
}
