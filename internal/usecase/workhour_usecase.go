package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mehedihasanmondol/online-plan-pilot/internal/domain"
)

// WorkHourUseCase handles working hour entry business logic.
type WorkHourUseCase struct {
	workHourRepo WorkHourRepository
	auditRepo    AuditRepository
	idGen        IDGenerator
}

// NewWorkHourUseCase creates a new WorkHourUseCase.
func NewWorkHourUseCase(workHourRepo WorkHourRepository, auditRepo AuditRepository, idGen IDGenerator) *WorkHourUseCase {
	return &WorkHourUseCase{
		workHourRepo: workHourRepo,
		auditRepo:    auditRepo,
		idGen:        idGen,
	}
}

// CreateWorkHourInput represents input for recording a working hour entry.
type CreateWorkHourInput struct {
	WorkerID   string
	ClientID   string
	ProjectID  string
	Date       time.Time
	StartTime  time.Time
	EndTime    time.Time
	Hours      decimal.Decimal
	HourlyRate decimal.Decimal
	Notes      string
}

// CreateWorkHour records a new working hour entry in pending status.
func (uc *WorkHourUseCase) CreateWorkHour(ctx context.Context, input CreateWorkHourInput) (*domain.WorkingHourEntry, error) {
	now := time.Now().UTC()

	entry := &domain.WorkingHourEntry{
		ID:         uc.idGen.Generate(),
		WorkerID:   input.WorkerID,
		ClientID:   input.ClientID,
		ProjectID:  input.ProjectID,
		Date:       input.Date,
		StartTime:  input.StartTime,
		EndTime:    input.EndTime,
		Hours:      input.Hours,
		HourlyRate: input.HourlyRate,
		Status:     domain.WorkHourStatusPending,
		Notes:      input.Notes,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := entry.Validate(); err != nil {
		return nil, err
	}

	if err := uc.workHourRepo.Create(ctx, entry); err != nil {
		return nil, err
	}

	uc.audit(ctx, domain.AuditActionWorkHourCreate, entry.ID, entry)

	return entry, nil
}

// ApproveWorkHour transitions a pending entry to approved.
func (uc *WorkHourUseCase) ApproveWorkHour(ctx context.Context, id string) error {
	return uc.transition(ctx, id, domain.WorkHourStatusApproved, domain.AuditActionWorkHourApprove)
}

// RejectWorkHour transitions a pending entry to rejected.
func (uc *WorkHourUseCase) RejectWorkHour(ctx context.Context, id string) error {
	return uc.transition(ctx, id, domain.WorkHourStatusRejected, domain.AuditActionWorkHourReject)
}

func (uc *WorkHourUseCase) transition(ctx context.Context, id string, to domain.WorkHourStatus, action domain.AuditAction) error {
	entry, err := uc.workHourRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if !entry.Status.CanTransitionTo(to) {
		return domain.ErrInvalidStateTransition
	}

	// Compare-and-set keyed on the status we just read. A raced caller loses
	// with ErrConcurrencyConflict instead of overwriting the newer status.
	if err := uc.workHourRepo.UpdateStatus(ctx, id, entry.Status, to, time.Now().UTC()); err != nil {
		return err
	}

	uc.audit(ctx, action, id, entry)

	return nil
}

// GetWorkHour retrieves a working hour entry by ID.
func (uc *WorkHourUseCase) GetWorkHour(ctx context.Context, id string) (*domain.WorkingHourEntry, error) {
	return uc.workHourRepo.GetByID(ctx, id)
}

// ListWorkHoursInput represents input for listing working hour entries.
type ListWorkHoursInput struct {
	WorkerID string
	Status   domain.WorkHourStatus
	From     *time.Time
	To       *time.Time
	Limit    int
	Offset   int
}

// ListWorkHours lists working hour entries with filters and pagination.
func (uc *WorkHourUseCase) ListWorkHours(ctx context.Context, input ListWorkHoursInput) ([]*domain.WorkingHourEntry, error) {
	limit, offset, err := domain.ValidatePagination(input.Limit, input.Offset)
	if err != nil {
		return nil, err
	}

	return uc.workHourRepo.List(ctx, WorkHourFilter{
		WorkerID: input.WorkerID,
		Status:   input.Status,
		From:     input.From,
		To:       input.To,
		Limit:    limit,
		Offset:   offset,
	})
}

// HoursSummary is the result of aggregating approved hours for one worker
// over one period.
type HoursSummary struct {
	WorkerID    string
	PeriodStart time.Time
	PeriodEnd   time.Time
	TotalHours  decimal.Decimal
	AverageRate decimal.Decimal
}

// AggregateApprovedHours sums approved entries for a worker over a date range
// into total hours and an hours-weighted average rate. The result reflects
// the eligible entry set at call time only; entries approved afterwards
// require a re-aggregation.
func (uc *WorkHourUseCase) AggregateApprovedHours(ctx context.Context, workerID string, periodStart, periodEnd time.Time) (*HoursSummary, error) {
	if workerID == "" {
		return nil, domain.ErrMissingWorker
	}

	if err := domain.ValidatePeriod(periodStart, periodEnd); err != nil {
		return nil, err
	}

	hours, earnings, err := uc.workHourRepo.SumApproved(ctx, workerID, periodStart, periodEnd)
	if err != nil {
		return nil, err
	}

	// Weighted by hours, not a plain mean of the per-entry rates. Zero hours
	// yields a zero rate rather than dividing by zero.
	averageRate := decimal.Zero
	if hours.IsPositive() {
		averageRate = earnings.Div(hours)
	}

	return &HoursSummary{
		WorkerID:    workerID,
		PeriodStart: periodStart,
		PeriodEnd:   periodEnd,
		TotalHours:  hours,
		AverageRate: averageRate,
	}, nil
}

func (uc *WorkHourUseCase) audit(ctx context.Context, action domain.AuditAction, resourceID string, state any) {
	if uc.auditRepo == nil {
		return
	}

	log := &domain.AuditLog{
		ID:           uc.idGen.Generate(),
		ActorID:      "system",
		Action:       string(action),
		ResourceType: "workhour",
		ResourceID:   resourceID,
		AfterState:   domain.MarshalState(state),
		Status:       string(domain.AuditStatusSuccess),
		CreatedAt:    time.Now(),
	}
	_ = uc.auditRepo.Create(ctx, log)
}
