package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/mehedihasanmondol/online-plan-pilot/internal/domain"
	"github.com/shopspring/decimal"
)

// ReconciliationUseCase verifies the ledger-derived balance invariant and
// hunts for the crash-window inconsistency: a salary withdrawal whose payroll
// record never reached paid.
type ReconciliationUseCase struct {
	accountRepo AccountRepository
	ledgerRepo  LedgerRepository
}

// NewReconciliationUseCase creates a new reconciliation use case
func NewReconciliationUseCase(accountRepo AccountRepository, ledgerRepo LedgerRepository) *ReconciliationUseCase {
	return &ReconciliationUseCase{
		accountRepo: accountRepo,
		ledgerRepo:  ledgerRepo,
	}
}

// ReconciliationResult represents the result of a reconciliation check
type ReconciliationResult struct {
	AccountID         string
	RecordedBalance   decimal.Decimal
	CalculatedBalance decimal.Decimal
	Difference        decimal.Decimal
	IsReconciled      bool
	LastChecked       time.Time
}

// ReconcileAccount compares the account's materialized balance against the
// value derived from its opening balance and ledger entries.
func (uc *ReconciliationUseCase) ReconcileAccount(ctx context.Context, accountID string) (*ReconciliationResult, error) {
	account, err := uc.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	derived, err := uc.accountRepo.GetDerivedBalance(ctx, accountID)
	if err != nil {
		return nil, err
	}

	difference := account.Balance.Sub(derived)

	return &ReconciliationResult{
		AccountID:         accountID,
		RecordedBalance:   account.Balance,
		CalculatedBalance: derived,
		Difference:        difference,
		IsReconciled:      difference.IsZero(),
		LastChecked:       time.Now().UTC(),
	}, nil
}

// ReconcileAllAccounts reconciles all accounts in the system
func (uc *ReconciliationUseCase) ReconcileAllAccounts(ctx context.Context) ([]*ReconciliationResult, error) {
	// Get all accounts (use high limit for reconciliation)
	limit, offset, _ := domain.ValidatePagination(10000, 0)
	accounts, err := uc.accountRepo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}

	results := make([]*ReconciliationResult, 0, len(accounts))
	for _, account := range accounts {
		result, err := uc.ReconcileAccount(ctx, account.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to reconcile account %s: %w", account.ID, err)
		}
		results = append(results, result)
	}

	return results, nil
}

// CheckLedgerConsistency verifies that materialized balance movements match
// the signed entry sums across the whole ledger.
func (uc *ReconciliationUseCase) CheckLedgerConsistency(ctx context.Context) error {
	totalMovement, totalEntries, err := uc.ledgerRepo.CheckConsistency(ctx)
	if err != nil {
		return err
	}

	if !totalMovement.Equal(totalEntries) {
		return fmt.Errorf(
			"ledger inconsistency detected: balance movement=%s entry sum=%s difference=%s",
			totalMovement.String(),
			totalEntries.String(),
			totalMovement.Sub(totalEntries).String(),
		)
	}

	return nil
}

// FindOrphanedPayments returns salary withdrawals whose linked payroll record
// is not paid. Any hit means a payment was interrupted between the ledger
// append and the status write and needs manual or automated repair.
func (uc *ReconciliationUseCase) FindOrphanedPayments(ctx context.Context) ([]*domain.LedgerEntry, error) {
	limit, _, _ := domain.ValidatePagination(1000, 0)
	return uc.ledgerRepo.FindOrphanedSalaryWithdrawals(ctx, limit)
}

// ReconciliationReport represents a full reconciliation report
type ReconciliationReport struct {
	TotalAccounts      int
	ReconciledAccounts int
	Discrepancies      []*ReconciliationResult
	OrphanedPayments   []*domain.LedgerEntry
	LedgerConsistent   bool
	CheckedAt          time.Time
}

// GenerateReconciliationReport generates a comprehensive reconciliation report
func (uc *ReconciliationUseCase) GenerateReconciliationReport(ctx context.Context) (*ReconciliationReport, error) {
	results, err := uc.ReconcileAllAccounts(ctx)
	if err != nil {
		return nil, err
	}

	orphans, err := uc.FindOrphanedPayments(ctx)
	if err != nil {
		return nil, err
	}

	ledgerErr := uc.CheckLedgerConsistency(ctx)

	report := &ReconciliationReport{
		TotalAccounts:    len(results),
		Discrepancies:    make([]*ReconciliationResult, 0),
		OrphanedPayments: orphans,
		LedgerConsistent: ledgerErr == nil && len(orphans) == 0,
		CheckedAt:        time.Now().UTC(),
	}

	for _, result := range results {
		if result.IsReconciled {
			report.ReconciledAccounts++
		} else {
			report.Discrepancies = append(report.Discrepancies, result)
		}
	}

	return report, nil
}
