package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mehedihasanmondol/online-plan-pilot/internal/domain"
)

var (
	// ErrInconsistentLedger is returned when materialized balances have
	// drifted from the ledger-derived values.
	ErrInconsistentLedger = errors.New("ledger is inconsistent: balances do not match entry sums")
)

// LedgerUseCase derives balances from the ledger and serves entry listings.
type LedgerUseCase struct {
	accountRepo AccountRepository
	entryRepo   EntryRepository
	ledgerRepo  LedgerRepository
	cache       Cache
}

// NewLedgerUseCase creates a new LedgerUseCase.
func NewLedgerUseCase(accountRepo AccountRepository, entryRepo EntryRepository, ledgerRepo LedgerRepository, cache Cache) *LedgerUseCase {
	return &LedgerUseCase{
		accountRepo: accountRepo,
		entryRepo:   entryRepo,
		ledgerRepo:  ledgerRepo,
		cache:       cache,
	}
}

// GetBalance returns the account's current balance: opening balance plus the
// signed sum of all ledger entries, read in a single query. Reads are cached
// briefly; every balance mutation deletes the key after commit, so a cached
// value is at worst BalanceCacheTTL stale and never fed into a payment
// decision.
func (uc *LedgerUseCase) GetBalance(ctx context.Context, accountID string) (decimal.Decimal, error) {
	if uc.cache != nil {
		if cached, err := uc.cache.Get(ctx, balanceCacheKey(accountID)); err == nil && cached != nil {
			if balance, err := decimal.NewFromString(string(cached)); err == nil {
				return balance, nil
			}
		}
	}

	balance, err := uc.accountRepo.GetDerivedBalance(ctx, accountID)
	if err != nil {
		return decimal.Zero, err
	}

	if uc.cache != nil {
		_ = uc.cache.Set(ctx, balanceCacheKey(accountID), []byte(balance.String()), BalanceCacheTTL)
	}

	return balance, nil
}

// GetEntriesByAccountInput represents input for listing entries.
type GetEntriesByAccountInput struct {
	AccountID string
	Limit     int
	Offset    int
}

// GetEntriesByAccount lists ledger entries for an account, newest first.
func (uc *LedgerUseCase) GetEntriesByAccount(ctx context.Context, input GetEntriesByAccountInput) ([]*domain.LedgerEntry, error) {
	limit, offset, err := domain.ValidatePagination(input.Limit, input.Offset)
	if err != nil {
		return nil, err
	}

	return uc.entryRepo.GetByAccount(ctx, input.AccountID, limit, offset)
}

// GetEntriesByPayroll lists the ledger entries linked to a payroll record.
// A paid record has exactly one.
func (uc *LedgerUseCase) GetEntriesByPayroll(ctx context.Context, payrollID string) ([]*domain.LedgerEntry, error) {
	return uc.entryRepo.GetByPayroll(ctx, payrollID)
}

// GetHistoricalBalance returns the balance at a specific point in time.
func (uc *LedgerUseCase) GetHistoricalBalance(ctx context.Context, accountID string, at time.Time) (decimal.Decimal, error) {
	return uc.entryRepo.GetBalanceAtTime(ctx, accountID, at)
}

// CheckConsistency verifies that materialized balance movements equal the
// signed sum of all ledger entries.
func (uc *LedgerUseCase) CheckConsistency(ctx context.Context) (bool, error) {
	totalMovement, totalEntries, err := uc.ledgerRepo.CheckConsistency(ctx)
	if err != nil {
		return false, err
	}

	if !totalMovement.Equal(totalEntries) {
		return false, ErrInconsistentLedger
	}

	return true, nil
}
