package integration

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mehedihasanmondol/online-plan-pilot/internal/domain"
)

// Two clients race to pay the same payroll. Exactly one may win: one ledger
// entry, one balance movement, and the loser sees a conflict or observes the
// record already paid.
func TestConcurrentDoublePay(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.db.TruncateAll(ctx)

	account := env.db.CreateTestAccount(ctx, "race-house", domain.AccountScopeHouse, decimal.NewFromInt(1000))

	start := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC)
	payroll := env.db.CreateTestPayroll(ctx, "worker-race", start, end,
		decimal.NewFromInt(30), decimal.NewFromInt(20), decimal.Zero, domain.PayrollStatusApproved)

	const attempts = 4

	var (
		wg        sync.WaitGroup
		successes atomic.Int64
	)

	errs := make([]error, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()

			err := env.paymentUC.Pay(ctx, payroll.ID, account.ID)
			if err == nil {
				successes.Add(1)
				return
			}
			errs[i] = err
		}(i)
	}

	wg.Wait()

	if successes.Load() != 1 {
		t.Fatalf("expected exactly one successful payment, got %d", successes.Load())
	}

	for _, err := range errs {
		if err == nil {
			continue
		}
		if !errors.Is(err, domain.ErrConcurrencyConflict) && !errors.Is(err, domain.ErrPayrollNotApproved) {
			t.Errorf("unexpected loser error: %v", err)
		}
	}

	// Exactly one withdrawal, balance moved once.
	entries, err := env.entryRepo.GetByPayroll(ctx, payroll.ID)
	if err != nil {
		t.Fatalf("failed to load entries: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected exactly one ledger entry, got %d", len(entries))
	}

	updated, err := env.accountUC.GetAccount(ctx, account.ID)
	if err != nil {
		t.Fatalf("failed to reload account: %v", err)
	}
	if !updated.Balance.Equal(decimal.NewFromInt(400)) {
		t.Errorf("expected balance 400 after single payment, got %s", updated.Balance)
	}

	reloaded, err := env.payrollUC.GetPayroll(ctx, payroll.ID)
	if err != nil {
		t.Fatalf("failed to reload payroll: %v", err)
	}
	if reloaded.Status != domain.PayrollStatusPaid {
		t.Errorf("expected paid status, got %s", reloaded.Status)
	}
}

// Concurrent deposits must serialize on the account row; the final balance
// and entry chain reflect every deposit exactly once.
func TestConcurrentDeposits(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.db.TruncateAll(ctx)

	account := env.db.CreateTestAccount(ctx, "deposit-race", domain.AccountScopeHouse, decimal.Zero)

	const deposits = 10

	var wg sync.WaitGroup
	for i := 0; i < deposits; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			_, err := env.accountUC.Deposit(ctx, depositInput(account.ID, 100))
			if err != nil {
				t.Errorf("deposit failed: %v", err)
			}
		}()
	}

	wg.Wait()

	updated, err := env.accountUC.GetAccount(ctx, account.ID)
	if err != nil {
		t.Fatalf("failed to reload account: %v", err)
	}
	if !updated.Balance.Equal(decimal.NewFromInt(1000)) {
		t.Errorf("expected balance 1000 after %d deposits, got %s", deposits, updated.Balance)
	}

	derived, err := env.ledgerUC.GetBalance(ctx, account.ID)
	if err != nil {
		t.Fatalf("failed to derive balance: %v", err)
	}
	if !derived.Equal(updated.Balance) {
		t.Errorf("derived balance %s disagrees with materialized %s", derived, updated.Balance)
	}
}
