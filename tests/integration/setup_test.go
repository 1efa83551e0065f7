package integration

import (
	"net/http"
	"testing"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/prometheus/client_golang/prometheus"
	redislib "github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	adaptershttp "github.com/mehedihasanmondol/online-plan-pilot/internal/adapter/http"
	"github.com/mehedihasanmondol/online-plan-pilot/internal/adapter/http/handler"
	postgresrepo "github.com/mehedihasanmondol/online-plan-pilot/internal/adapter/repository/postgres"
	redisrepo "github.com/mehedihasanmondol/online-plan-pilot/internal/adapter/repository/redis"
	"github.com/mehedihasanmondol/online-plan-pilot/internal/infrastructure/metrics"
	"github.com/mehedihasanmondol/online-plan-pilot/internal/usecase"
	"github.com/mehedihasanmondol/online-plan-pilot/tests/testutil"
)

// testEnv wires the full stack against a real database. Redis is replaced by
// an in-process miniredis so only PostgreSQL is an external dependency.
type testEnv struct {
	db *testutil.TestDB

	accountUC        *usecase.AccountUseCase
	workHourUC       *usecase.WorkHourUseCase
	payrollUC        *usecase.PayrollUseCase
	paymentUC        *usecase.PaymentUseCase
	ledgerUC         *usecase.LedgerUseCase
	notificationUC   *usecase.NotificationUseCase
	reconciliationUC *usecase.ReconciliationUseCase

	outboxRepo       *postgresrepo.OutboxRepository
	notificationRepo *postgresrepo.NotificationRepository
	entryRepo        *postgresrepo.EntryRepository

	router http.Handler
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping integration test")
	}

	testDB := testutil.NewTestDB(t)
	t.Cleanup(testDB.Cleanup)

	mr := miniredis.RunT(t)
	redisClient := redislib.NewClient(&redislib.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = redisClient.Close() })

	// Fresh registry per environment so repeated metrics.New calls do not
	// collide on the process-wide default.
	registry := prometheus.NewRegistry()
	prometheus.DefaultRegisterer = registry
	prometheus.DefaultGatherer = registry
	m := metrics.New()

	pool := testDB.Pool
	txManager := postgresrepo.NewTxManager(pool)
	accountRepo := postgresrepo.NewAccountRepository(pool)
	entryRepo := postgresrepo.NewEntryRepository(pool)
	ledgerRepo := postgresrepo.NewLedgerRepository(pool)
	payrollRepo := postgresrepo.NewPayrollRepository(pool)
	workHourRepo := postgresrepo.NewWorkHourRepository(pool)
	notificationRepo := postgresrepo.NewNotificationRepository(pool)
	outboxRepo := postgresrepo.NewOutboxRepository(pool)
	auditRepo := postgresrepo.NewAuditRepository(pool)
	idGen := postgresrepo.NewULIDGenerator()
	cache := redisrepo.NewCache(redisClient)

	env := &testEnv{
		db:               testDB,
		accountUC:        usecase.NewAccountUseCase(txManager, accountRepo, entryRepo, outboxRepo, auditRepo, idGen, cache, m),
		workHourUC:       usecase.NewWorkHourUseCase(workHourRepo, auditRepo, idGen),
		payrollUC:        usecase.NewPayrollUseCase(txManager, payrollRepo, workHourRepo, outboxRepo, auditRepo, idGen, m),
		paymentUC:        usecase.NewPaymentUseCase(txManager, payrollRepo, accountRepo, entryRepo, workHourRepo, outboxRepo, auditRepo, idGen, cache, m),
		ledgerUC:         usecase.NewLedgerUseCase(accountRepo, entryRepo, ledgerRepo, cache),
		notificationUC:   usecase.NewNotificationUseCase(notificationRepo),
		reconciliationUC: usecase.NewReconciliationUseCase(accountRepo, ledgerRepo),
		outboxRepo:       outboxRepo,
		notificationRepo: notificationRepo,
		entryRepo:        entryRepo,
	}

	env.router = adaptershttp.NewRouter(adaptershttp.RouterConfig{
		AccountHandler:        handler.NewAccountHandler(env.accountUC),
		WorkHourHandler:       handler.NewWorkHourHandler(env.workHourUC),
		PayrollHandler:        handler.NewPayrollHandler(env.payrollUC, env.paymentUC),
		EntryHandler:          handler.NewEntryHandler(env.ledgerUC),
		LedgerHandler:         handler.NewLedgerHandler(env.ledgerUC),
		NotificationHandler:   handler.NewNotificationHandler(env.notificationUC),
		ReconciliationHandler: handler.NewReconciliationHandler(env.reconciliationUC),
		HealthHandler:         handler.NewHealthHandler(pool, redisClient),
		IdempotencyStore:      redisrepo.NewIdempotencyStore(redisClient),
	})

	return env
}

func depositInput(accountID string, amount int64) usecase.DepositInput {
	return usecase.DepositInput{
		AccountID: accountID,
		Amount:    decimal.NewFromInt(amount),
		Category:  "funding",
	}
}
