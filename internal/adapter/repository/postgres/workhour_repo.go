package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/mehedihasanmondol/online-plan-pilot/internal/domain"
	"github.com/mehedihasanmondol/online-plan-pilot/internal/infrastructure/postgres/generated"
	"github.com/mehedihasanmondol/online-plan-pilot/internal/usecase"
)

// WorkHourRepository implements usecase.WorkHourRepository.
type WorkHourRepository struct {
	pool    *pgxpool.Pool
	queries *generated.Queries
}

// NewWorkHourRepository creates a new WorkHourRepository.
func NewWorkHourRepository(pool *pgxpool.Pool) *WorkHourRepository {
	return &WorkHourRepository{
		pool:    pool,
		queries: generated.New(pool),
	}
}

// Create records a new working hour entry.
func (r *WorkHourRepository) Create(ctx context.Context, entry *domain.WorkingHourEntry) error {
	_, err := r.queries.CreateWorkHour(ctx, generated.CreateWorkHourParams{
		ID:         entry.ID,
		WorkerID:   entry.WorkerID,
		ClientID:   stringToText(entry.ClientID),
		ProjectID:  stringToText(entry.ProjectID),
		WorkDate:   timeToPgTimestamptz(entry.Date),
		StartTime:  timeToPgTimestamptz(entry.StartTime),
		EndTime:    timeToPgTimestamptz(entry.EndTime),
		Hours:      decimalToNumeric(entry.Hours),
		HourlyRate: decimalToNumeric(entry.HourlyRate),
		Status:     string(entry.Status),
		Notes:      stringToText(entry.Notes),
		CreatedAt:  timeToPgTimestamptz(entry.CreatedAt),
		UpdatedAt:  timeToPgTimestamptz(entry.UpdatedAt),
	})

	return err
}

// GetByID retrieves a working hour entry by ID.
func (r *WorkHourRepository) GetByID(ctx context.Context, id string) (*domain.WorkingHourEntry, error) {
	row, err := r.queries.GetWorkHourByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrWorkHourNotFound
		}

		return nil, err
	}

	return rowToWorkHour(row), nil
}

// UpdateStatus performs a compare-and-set status write keyed on the expected
// prior status. Zero rows affected means a concurrent writer won.
func (r *WorkHourRepository) UpdateStatus(ctx context.Context, id string, from, to domain.WorkHourStatus, updatedAt time.Time) error {
	affected, err := r.queries.UpdateWorkHourStatus(ctx, generated.UpdateWorkHourStatusParams{
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

// MarkPaidForPeriod flips the worker's approved entries in the period to
// paid, inside the payment transaction. Entries approved after approvedBefore
// were never aggregated into the payroll's totals and are left untouched.
func (r *WorkHourRepository) MarkPaidForPeriod(ctx context.Context, tx usecase.Transaction, workerID string, periodStart, periodEnd, approvedBefore time.Time, updatedAt time.Time) error {
	pgxTx := tx.(*Tx).PgxTx()
	queries := generated.New(pgxTx)

	return queries.MarkWorkHoursPaidForPeriod(ctx, generated.MarkWorkHoursPaidForPeriodParams{
		WorkerID:       workerID,
		PeriodStart:    timeToPgTimestamptz(periodStart),
		PeriodEnd:      timeToPgTimestamptz(periodEnd),
		ApprovedBefore: timeToPgTimestamptz(approvedBefore),
		UpdatedAt:      timeToPgTimestamptz(updatedAt),
	})
}

// List lists working hour entries with filters and pagination.
func (r *WorkHourRepository) List(ctx context.Context, filter usecase.WorkHourFilter) ([]*domain.WorkingHourEntry, error) {
	rows, err := r.queries.ListWorkHours(ctx, generated.ListWorkHoursParams{
		WorkerID: filter.WorkerID,
		Status:   string(filter.Status),
		FromDate: pgTimestamptzFromPtr(filter.From),
		ToDate:   pgTimestamptzFromPtr(filter.To),
		Limit:    int32(filter.Limit),
		Offset:   int32(filter.Offset),
	})
	if err != nil {
		return nil, err
	}

	entries := make([]*domain.WorkingHourEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, rowToWorkHour(row))
	}

	return entries, nil
}

// SumApproved sums hours and hours-weighted earnings of the worker's approved
// entries over the period in one aggregate query.
func (r *WorkHourRepository) SumApproved(ctx context.Context, workerID string, periodStart, periodEnd time.Time) (hours, earnings decimal.Decimal, err error) {
	row, err := r.queries.SumApprovedWorkHours(ctx, generated.SumApprovedWorkHoursParams{
		WorkerID:    workerID,
		PeriodStart: timeToPgTimestamptz(periodStart),
		PeriodEnd:   timeToPgTimestamptz(periodEnd),
	})
	if err != nil {
		return decimal.Zero, decimal.Zero, err
	}

	return numericToDecimal(row.TotalHours), numericToDecimal(row.TotalEarnings), nil
}

func rowToWorkHour(row generated.WorkHour) *domain.WorkingHourEntry {
	return &domain.WorkingHourEntry{
		ID:         row.ID,
		WorkerID:   row.WorkerID,
		ClientID:   row.ClientID.String,
		ProjectID:  row.ProjectID.String,
		Date:       row.WorkDate.Time,
		StartTime:  row.StartTime.Time,
		EndTime:    row.EndTime.Time,
		Hours:      numericToDecimal(row.Hours),
		HourlyRate: numericToDecimal(row.HourlyRate),
		Status:     domain.WorkHourStatus(row.Status),
		Notes:      row.Notes.String,
		CreatedAt:  row.CreatedAt.Time,
		UpdatedAt:  row.UpdatedAt.Time,
	}
}
