package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mehedihasanmondol/online-plan-pilot/internal/domain"
	"github.com/mehedihasanmondol/online-plan-pilot/internal/infrastructure/postgres/generated"
	"github.com/mehedihasanmondol/online-plan-pilot/internal/usecase"
)

// PayrollRepository implements usecase.PayrollRepository. Status transitions
// are compare-and-set writes keyed on id and the expected prior status, so a
// raced second writer affects zero rows and loses.
type PayrollRepository struct {
	pool    *pgxpool.Pool
	queries *generated.Queries
}

// NewPayrollRepository creates a new PayrollRepository.
func NewPayrollRepository(pool *pgxpool.Pool) *PayrollRepository {
	return &PayrollRepository{
		pool:    pool,
		queries: generated.New(pool),
	}
}

// Create inserts a payroll record inside the caller's transaction.
func (r *PayrollRepository) Create(ctx context.Context, tx usecase.Transaction, payroll *domain.PayrollRecord) error {
	pgxTx := tx.(*Tx).PgxTx()
	queries := generated.New(pgxTx)

	_, err := queries.CreatePayroll(ctx, generated.CreatePayrollParams{
		ID:            payroll.ID,
		WorkerID:      payroll.WorkerID,
		PeriodStart:   timeToPgTimestamptz(payroll.PeriodStart),
		PeriodEnd:     timeToPgTimestamptz(payroll.PeriodEnd),
		TotalHours:    decimalToNumeric(payroll.TotalHours),
		HourlyRate:    decimalToNumeric(payroll.HourlyRate),
		GrossPay:      decimalToNumeric(payroll.GrossPay),
		Deductions:    decimalToNumeric(payroll.Deductions),
		NetPay:        decimalToNumeric(payroll.NetPay),
		Status:        string(payroll.Status),
		BankAccountID: ptrToText(payroll.BankAccountID),
		PaidAt:        pgTimestamptzFromPtr(payroll.PaidAt),
		CreatedAt:     timeToPgTimestamptz(payroll.CreatedAt),
		UpdatedAt:     timeToPgTimestamptz(payroll.UpdatedAt),
	})

	return err
}

// GetByID retrieves a payroll record by ID.
func (r *PayrollRepository) GetByID(ctx context.Context, id string) (*domain.PayrollRecord, error) {
	row, err := r.queries.GetPayrollByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrPayrollNotFound
		}

		return nil, err
	}

	return rowToPayroll(row), nil
}

// GetByIDForUpdate retrieves a payroll record by ID with a FOR UPDATE lock.
func (r *PayrollRepository) GetByIDForUpdate(ctx context.Context, tx usecase.Transaction, id string) (*domain.PayrollRecord, error) {
	pgxTx := tx.(*Tx).PgxTx()
	queries := generated.New(pgxTx)

	row, err := queries.GetPayrollByIDForUpdate(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrPayrollNotFound
		}

		return nil, err
	}

	return rowToPayroll(row), nil
}

// UpdateStatus performs a compare-and-set status write keyed on the expected
// prior status. Zero rows affected means a concurrent writer won.
func (r *PayrollRepository) UpdateStatus(ctx context.Context, tx usecase.Transaction, id string, from, to domain.PayrollStatus, updatedAt time.Time) error {
	pgxTx := tx.(*Tx).PgxTx()
	queries := generated.New(pgxTx)

	affected, err := queries.UpdatePayrollStatus(ctx, generated.UpdatePayrollStatusParams{
		ID:         id,
		FromStatus: string(from),
		ToStatus:   string(to),
		UpdatedAt:  timeToPgTimestamptz(updatedAt),
	})
	if err != nil {
		return err
	}

	if affected == 0 {
		return domain.ErrConcurrencyConflict
	}

	return nil
}

// MarkPaid transitions approved to paid, recording the paying account and
// timestamp, with the same compare-and-set semantics as UpdateStatus.
func (r *PayrollRepository) MarkPaid(ctx context.Context, tx usecase.Transaction, id, bankAccountID string, paidAt time.Time) error {
	pgxTx := tx.(*Tx).PgxTx()
	queries := generated.New(pgxTx)

	affected, err := queries.MarkPayrollPaid(ctx, generated.MarkPayrollPaidParams{
		ID:            id,
		BankAccountID: stringToText(bankAccountID),
		PaidAt:        timeToPgTimestamptz(paidAt),
	})
	if err != nil {
		return err
	}

	if affected == 0 {
		return domain.ErrConcurrencyConflict
	}

	return nil
}

// HasOverlappingPeriod reports whether any payroll record for the worker
// overlaps the given period. Runs inside the creation transaction.
func (r *PayrollRepository) HasOverlappingPeriod(ctx context.Context, tx usecase.Transaction, workerID string, periodStart, periodEnd time.Time) (bool, error) {
	pgxTx := tx.(*Tx).PgxTx()
	queries := generated.New(pgxTx)

	count, err := queries.CountOverlappingPayrolls(ctx, generated.CountOverlappingPayrollsParams{
		WorkerID:    workerID,
		PeriodStart: timeToPgTimestamptz(periodStart),
		PeriodEnd:   timeToPgTimestamptz(periodEnd),
	})
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// List lists payroll records with filters and pagination.
func (r *PayrollRepository) List(ctx context.Context, filter usecase.PayrollFilter) ([]*domain.PayrollRecord, error) {
	rows, err := r.queries.ListPayrolls(ctx, generated.ListPayrollsParams{
		WorkerID: filter.WorkerID,
		Status:   string(filter.Status),
		Limit:    int32(filter.Limit),
		Offset:   int32(filter.Offset),
	})
	if err != nil {
		return nil, err
	}

	payrolls := make([]*domain.PayrollRecord, 0, len(rows))
	for _, row := range rows {
		payrolls = append(payrolls, rowToPayroll(row))
	}

	return payrolls, nil
}

func rowToPayroll(row generated.Payroll) *domain.PayrollRecord {
	return &domain.PayrollRecord{
		ID:            row.ID,
		WorkerID:      row.WorkerID,
		PeriodStart:   row.PeriodStart.Time,
		PeriodEnd:     row.PeriodEnd.Time,
		TotalHours:    numericToDecimal(row.TotalHours),
		HourlyRate:    numericToDecimal(row.HourlyRate),
		GrossPay:      numericToDecimal(row.GrossPay),
		Deductions:    numericToDecimal(row.Deductions),
		NetPay:        numericToDecimal(row.NetPay),
		Status:        domain.PayrollStatus(row.Status),
		BankAccountID: textToPtr(row.BankAccountID),
		PaidAt:        timestamptzToPtr(row.PaidAt),
		CreatedAt:     row.CreatedAt.Time,
		UpdatedAt:     row.UpdatedAt.Time,
	}
}

func pgTimestamptzFromPtr(t *time.Time) pgtype.Timestamptz {
	if t == nil {
		return pgtype.Timestamptz{}
	}

	return pgtype.Timestamptz{Time: *t, Valid: true}
}
