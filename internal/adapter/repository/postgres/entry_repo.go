package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/mehedihasanmondol/online-plan-pilot/internal/domain"
	"github.com/mehedihasanmondol/online-plan-pilot/internal/infrastructure/postgres/generated"
	"github.com/mehedihasanmondol/online-plan-pilot/internal/usecase"
)

// EntryRepository implements usecase.EntryRepository. Ledger entries are
// append-only; there are no update or delete operations here.
type EntryRepository struct {
	pool    *pgxpool.Pool
	queries *generated.Queries
}

// NewEntryRepository creates a new EntryRepository.
func NewEntryRepository(pool *pgxpool.Pool) *EntryRepository {
	return &EntryRepository{
		pool:    pool,
		queries: generated.New(pool),
	}
}

// Create appends a ledger entry inside the caller's transaction.
func (r *EntryRepository) Create(ctx context.Context, tx usecase.Transaction, entry *domain.LedgerEntry) error {
	pgxTx := tx.(*Tx).PgxTx()
	queries := generated.New(pgxTx)

	_, err := queries.CreateEntry(ctx, generated.CreateEntryParams{
		ID:                     entry.ID,
		AccountID:              entry.AccountID,
		PayrollID:              ptrToText(entry.PayrollID),
		Direction:              string(entry.Direction),
		Category:               entry.Category,
		Description:            stringToText(entry.Description),
		Amount:                 decimalToNumeric(entry.Amount),
		EntryDate:              timeToPgTimestamptz(entry.EntryDate),
		AccountPreviousBalance: decimalToNumeric(entry.AccountPreviousBalance),
		AccountCurrentBalance:  decimalToNumeric(entry.AccountCurrentBalance),
		AccountVersion:         entry.AccountVersion,
		CreatedAt:              timeToPgTimestamptz(entry.CreatedAt),
	})

	return err
}

// GetByAccount retrieves entries for an account, newest first.
func (r *EntryRepository) GetByAccount(ctx context.Context, accountID string, limit, offset int) ([]*domain.LedgerEntry, error) {
	rows, err := r.queries.GetEntriesByAccount(ctx, generated.GetEntriesByAccountParams{
		AccountID: accountID,
		Limit:     int32(limit),
		Offset:    int32(offset),
	})
	if err != nil {
		return nil, err
	}

	entries := make([]*domain.LedgerEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, rowToEntry(row))
	}

	return entries, nil
}

// GetByPayroll retrieves the entries linked to a payroll record.
func (r *EntryRepository) GetByPayroll(ctx context.Context, payrollID string) ([]*domain.LedgerEntry, error) {
	rows, err := r.queries.GetEntriesByPayroll(ctx, stringToText(payrollID))
	if err != nil {
		return nil, err
	}

	entries := make([]*domain.LedgerEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, rowToEntry(row))
	}

	return entries, nil
}

// GetBalanceAtTime retrieves the account balance at a specific time.
func (r *EntryRepository) GetBalanceAtTime(ctx context.Context, accountID string, at time.Time) (decimal.Decimal, error) {
	balance, err := r.queries.GetAccountBalanceAtTime(ctx, generated.GetAccountBalanceAtTimeParams{
		AccountID: accountID,
		CreatedAt: timeToPgTimestamptz(at),
	})
	if err != nil {
		return decimal.Zero, err
	}

	return numericToDecimal(balance), nil
}

func rowToEntry(row generated.Entry) *domain.LedgerEntry {
	return &domain.LedgerEntry{
		ID:                     row.ID,
		AccountID:              row.AccountID,
		PayrollID:              textToPtr(row.PayrollID),
		Direction:              domain.EntryDirection(row.Direction),
		Category:               row.Category,
		Description:            row.Description.String,
		Amount:                 numericToDecimal(row.Amount),
		EntryDate:              row.EntryDate.Time,
		AccountPreviousBalance: numericToDecimal(row.AccountPreviousBalance),
		AccountCurrentBalance:  numericToDecimal(row.AccountCurrentBalance),
		AccountVersion:         row.AccountVersion,
		CreatedAt:              row.CreatedAt.Time,
	}
}
