package usecase_test

import (
	"context"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/mehedihasanmondol/online-plan-pilot/internal/domain"
	"github.com/mehedihasanmondol/online-plan-pilot/internal/usecase"
	"github.com/mehedihasanmondol/online-plan-pilot/internal/usecase/mocks"
)

func TestReconciliationUseCase_ReconcileAccount(t *testing.T) {
	t.Run("reconciled account", func(t *testing.T) {
		accRepo := mocks.NewMockAccountRepository()
		accRepo.Create(context.Background(), &domain.BankAccount{
			ID:      "acc-1",
			Balance: decimal.NewFromInt(400),
		})
		// Default mock derives from the same materialized balance.

		uc := usecase.NewReconciliationUseCase(accRepo, mocks.NewMockLedgerRepository())

		result, err := uc.ReconcileAccount(context.Background(), "acc-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !result.IsReconciled {
			t.Error("expected account to be reconciled")
		}
		if !result.Difference.IsZero() {
			t.Errorf("expected zero difference, got %s", result.Difference)
		}
	})

	t.Run("drifted account", func(t *testing.T) {
		accRepo := mocks.NewMockAccountRepository()
		accRepo.Create(context.Background(), &domain.BankAccount{
			ID:      "acc-1",
			Balance: decimal.NewFromInt(400),
		})
		accRepo.GetDerivedBalanceFunc = func(ctx context.Context, id string) (decimal.Decimal, error) {
			return decimal.NewFromInt(390), nil
		}

		uc := usecase.NewReconciliationUseCase(accRepo, mocks.NewMockLedgerRepository())

		result, err := uc.ReconcileAccount(context.Background(), "acc-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.IsReconciled {
			t.Error("expected drift to be detected")
		}
		if !result.Difference.Equal(decimal.NewFromInt(10)) {
			t.Errorf("expected difference 10, got %s", result.Difference)
		}
		if !result.RecordedBalance.Equal(decimal.NewFromInt(400)) || !result.CalculatedBalance.Equal(decimal.NewFromInt(390)) {
			t.Errorf("expected 400 recorded vs 390 calculated, got %s vs %s", result.RecordedBalance, result.CalculatedBalance)
		}
	})

	t.Run("unknown account", func(t *testing.T) {
		uc := usecase.NewReconciliationUseCase(mocks.NewMockAccountRepository(), mocks.NewMockLedgerRepository())

		if _, err := uc.ReconcileAccount(context.Background(), "missing"); err == nil {
			t.Error("expected error, got nil")
		}
	})
}

func TestReconciliationUseCase_CheckLedgerConsistency(t *testing.T) {
	t.Run("consistent", func(t *testing.T) {
		ledgerRepo := mocks.NewMockLedgerRepository()
		ledgerRepo.CheckConsistencyFunc = func(ctx context.Context) (decimal.Decimal, decimal.Decimal, error) {
			return decimal.NewFromInt(900), decimal.NewFromInt(900), nil
		}

		uc := usecase.NewReconciliationUseCase(mocks.NewMockAccountRepository(), ledgerRepo)

		if err := uc.CheckLedgerConsistency(context.Background()); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("inconsistent reports the difference", func(t *testing.T) {
		ledgerRepo := mocks.NewMockLedgerRepository()
		ledgerRepo.CheckConsistencyFunc = func(ctx context.Context) (decimal.Decimal, decimal.Decimal, error) {
			return decimal.NewFromInt(900), decimal.NewFromInt(850), nil
		}

		uc := usecase.NewReconciliationUseCase(mocks.NewMockAccountRepository(), ledgerRepo)

		err := uc.CheckLedgerConsistency(context.Background())
		if err == nil {
			t.Fatal("expected error, got nil")
		}
		if !strings.Contains(err.Error(), "difference=50") {
			t.Errorf("expected difference in error, got %v", err)
		}
	})
}

func TestReconciliationUseCase_GenerateReconciliationReport(t *testing.T) {
	accRepo := mocks.NewMockAccountRepository()
	accRepo.Create(context.Background(), &domain.BankAccount{ID: "acc-1", Balance: decimal.NewFromInt(400)})
	accRepo.Create(context.Background(), &domain.BankAccount{ID: "acc-2", Balance: decimal.NewFromInt(100)})
	accRepo.GetDerivedBalanceFunc = func(ctx context.Context, id string) (decimal.Decimal, error) {
		if id == "acc-2" {
			return decimal.NewFromInt(90), nil
		}
		return decimal.NewFromInt(400), nil
	}

	payrollID := "pr-1"
	ledgerRepo := mocks.NewMockLedgerRepository()
	ledgerRepo.FindOrphanedSalaryWithdrawalsFunc = func(ctx context.Context, limit int) ([]*domain.LedgerEntry, error) {
		return []*domain.LedgerEntry{{ID: "entry-1", PayrollID: &payrollID}}, nil
	}

	uc := usecase.NewReconciliationUseCase(accRepo, ledgerRepo)

	report, err := uc.GenerateReconciliationReport(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if report.TotalAccounts != 2 {
		t.Errorf("expected 2 accounts, got %d", report.TotalAccounts)
	}
	if report.ReconciledAccounts != 1 {
		t.Errorf("expected 1 reconciled account, got %d", report.ReconciledAccounts)
	}
	if len(report.Discrepancies) != 1 || report.Discrepancies[0].AccountID != "acc-2" {
		t.Errorf("expected acc-2 discrepancy, got %v", report.Discrepancies)
	}
	if len(report.OrphanedPayments) != 1 {
		t.Errorf("expected 1 orphaned payment, got %d", len(report.OrphanedPayments))
	}
	if report.LedgerConsistent {
		t.Error("expected report to flag the ledger as inconsistent")
	}
}
