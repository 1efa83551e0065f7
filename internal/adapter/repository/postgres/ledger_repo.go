package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/mehedihasanmondol/online-plan-pilot/internal/domain"
	"github.com/mehedihasanmondol/online-plan-pilot/internal/infrastructure/postgres/generated"
)

// LedgerRepository implements usecase.LedgerRepository.
type LedgerRepository struct {
	pool *pgxpool.Pool
}

// NewLedgerRepository creates a new LedgerRepository.
func NewLedgerRepository(pool *pgxpool.Pool) *LedgerRepository {
	return &LedgerRepository{pool: pool}
}

// CheckConsistency returns the total materialized balance movement across all
// accounts and the signed sum of all ledger entries. The two are equal in a
// consistent ledger.
func (r *LedgerRepository) CheckConsistency(ctx context.Context) (totalMovement, totalEntries decimal.Decimal, err error) {
	q := generated.New(r.pool)

	result, err := q.CheckLedgerConsistency(ctx)
	if err != nil {
		return decimal.Zero, decimal.Zero, err
	}

	return numericToDecimal(result.TotalBalanceMovement), numericToDecimal(result.TotalEntryAmount), nil
}

// FindOrphanedSalaryWithdrawals returns salary withdrawals whose payroll
// record is missing or not paid. These mark payments interrupted between the
// ledger append and the status write.
func (r *LedgerRepository) FindOrphanedSalaryWithdrawals(ctx context.Context, limit int) ([]*domain.LedgerEntry, error) {
	q := generated.New(r.pool)

	rows, err := q.FindOrphanedSalaryWithdrawals(ctx, int32(limit))
	if err != nil {
		return nil, err
	}

	entries := make([]*domain.LedgerEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, rowToEntry(row))
	}

	return entries, nil
}
