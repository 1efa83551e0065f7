package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mehedihasanmondol/online-plan-pilot/internal/domain"
	"github.com/mehedihasanmondol/online-plan-pilot/internal/infrastructure/metrics"
)

// PayrollUseCase owns the payroll record lifecycle up to the paid transition,
// which belongs to PaymentUseCase.
type PayrollUseCase struct {
	txManager    TransactionManager
	payrollRepo  PayrollRepository
	workHourRepo WorkHourRepository
	outboxRepo   OutboxRepository
	auditRepo    AuditRepository
	idGen        IDGenerator
	metrics      *metrics.Metrics
}

// NewPayrollUseCase creates a new PayrollUseCase.
func NewPayrollUseCase(
	txManager TransactionManager,
	payrollRepo PayrollRepository,
	workHourRepo WorkHourRepository,
	outboxRepo OutboxRepository,
	auditRepo AuditRepository,
	idGen IDGenerator,
	metrics *metrics.Metrics,
) *PayrollUseCase {
	return &PayrollUseCase{
		txManager:    txManager,
		payrollRepo:  payrollRepo,
		workHourRepo: workHourRepo,
		outboxRepo:   outboxRepo,
		auditRepo:    auditRepo,
		idGen:        idGen,
		metrics:      metrics,
	}
}

// CreatePayrollInput represents input for creating a payroll record.
type CreatePayrollInput struct {
	WorkerID    string
	PeriodStart time.Time
	PeriodEnd   time.Time
	Deductions  decimal.Decimal
}

// CreatePayroll aggregates the worker's approved hours over the period into a
// pending payroll record. The period must not overlap an existing record for
// the same worker; the check runs in the same transaction as the insert, with
// an exclusion constraint as backstop.
func (uc *PayrollUseCase) CreatePayroll(ctx context.Context, input CreatePayrollInput) (*domain.PayrollRecord, error) {
	if input.WorkerID == "" {
		return nil, domain.ErrMissingWorker
	}

	if err := domain.ValidatePeriod(input.PeriodStart, input.PeriodEnd); err != nil {
		return nil, err
	}

	if input.Deductions.IsNegative() {
		return nil, domain.ErrNegativeDeductions
	}

	hours, earnings, err := uc.workHourRepo.SumApproved(ctx, input.WorkerID, input.PeriodStart, input.PeriodEnd)
	if err != nil {
		return nil, err
	}

	rate := decimal.Zero
	if hours.IsPositive() {
		rate = earnings.Div(hours)
	}

	now := time.Now().UTC()
	payroll := &domain.PayrollRecord{
		ID:          uc.idGen.Generate(),
		WorkerID:    input.WorkerID,
		PeriodStart: input.PeriodStart,
		PeriodEnd:   input.PeriodEnd,
		TotalHours:  hours,
		HourlyRate:  rate,
		Deductions:  input.Deductions,
		Status:      domain.PayrollStatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	payroll.Recalculate()

	if err := payroll.Validate(); err != nil {
		return nil, err
	}

	txCtx, cancel := context.WithTimeout(ctx, DefaultTransactionTimeout)
	defer cancel()

	tx, err := uc.txManager.Begin(txCtx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(txCtx) }()

	overlaps, err := uc.payrollRepo.HasOverlappingPeriod(txCtx, tx, input.WorkerID, input.PeriodStart, input.PeriodEnd)
	if err != nil {
		return nil, err
	}
	if overlaps {
		return nil, domain.ErrPayrollPeriodOverlap
	}

	if err := uc.payrollRepo.Create(txCtx, tx, payroll); err != nil {
		return nil, err
	}

	event := &domain.OutboxEvent{
		ID:            uc.idGen.Generate(),
		AggregateID:   payroll.ID,
		AggregateType: domain.AggregateTypePayroll,
		EventType:     domain.EventTypePayrollCreated,
		Payload: map[string]any{
			"payroll_id":   payroll.ID,
			"worker_id":    payroll.WorkerID,
			"period_start": payroll.PeriodStart.Format(time.RFC3339),
			"period_end":   payroll.PeriodEnd.Format(time.RFC3339),
			"net_pay":      payroll.NetPay.String(),
		},
		CreatedAt: now,
		Published: false,
	}
	if err := uc.outboxRepo.Create(txCtx, tx, event); err != nil {
		return nil, err
	}

	if uc.auditRepo != nil {
		auditLog := &domain.AuditLog{
			ID:           uc.idGen.Generate(),
			ActorID:      "system",
			Action:       string(domain.AuditActionPayrollCreate),
			ResourceType: "payroll",
			ResourceID:   payroll.ID,
			AfterState:   domain.MarshalState(payroll),
			Status:       string(domain.AuditStatusSuccess),
			CreatedAt:    time.Now(),
		}
		if err := uc.auditRepo.CreateTx(txCtx, tx, auditLog); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(txCtx); err != nil {
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.PayrollsCreated.Inc()
	}

	return payroll, nil
}

// ApprovePayroll transitions a pending payroll record to approved, freezing
// every field except status.
func (uc *PayrollUseCase) ApprovePayroll(ctx context.Context, id string) error {
	txCtx, cancel := context.WithTimeout(ctx, DefaultTransactionTimeout)
	defer cancel()

	tx, err := uc.txManager.Begin(txCtx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(txCtx) }()

	payroll, err := uc.payrollRepo.GetByIDForUpdate(txCtx, tx, id)
	if err != nil {
		return err
	}

	if !payroll.Status.CanTransitionTo(domain.PayrollStatusApproved) {
		return domain.ErrInvalidStateTransition
	}

	now := time.Now().UTC()
	if err := uc.payrollRepo.UpdateStatus(txCtx, tx, id, payroll.Status, domain.PayrollStatusApproved, now); err != nil {
		return err
	}

	event := &domain.OutboxEvent{
		ID:            uc.idGen.Generate(),
		AggregateID:   payroll.ID,
		AggregateType: domain.AggregateTypePayroll,
		EventType:     domain.EventTypePayrollApproved,
		Payload: map[string]any{
			"payroll_id": payroll.ID,
			"worker_id":  payroll.WorkerID,
			"net_pay":    payroll.NetPay.String(),
		},
		CreatedAt: now,
		Published: false,
	}
	if err := uc.outboxRepo.Create(txCtx, tx, event); err != nil {
		return err
	}

	if uc.auditRepo != nil {
		auditLog := &domain.AuditLog{
			ID:           uc.idGen.Generate(),
			ActorID:      "system",
			Action:       string(domain.AuditActionPayrollApprove),
			ResourceType: "payroll",
			ResourceID:   payroll.ID,
			BeforeState:  domain.MarshalState(payroll),
			Status:       string(domain.AuditStatusSuccess),
			CreatedAt:    time.Now(),
		}
		if err := uc.auditRepo.CreateTx(txCtx, tx, auditLog); err != nil {
			return err
		}
	}

	if err := tx.Commit(txCtx); err != nil {
		return err
	}

	if uc.metrics != nil {
		uc.metrics.PayrollsApproved.Inc()
	}

	return nil
}

// GetPayroll retrieves a payroll record by ID.
func (uc *PayrollUseCase) GetPayroll(ctx context.Context, id string) (*domain.PayrollRecord, error) {
	return uc.payrollRepo.GetByID(ctx, id)
}

// ListPayrollsInput represents input for listing payroll records.
type ListPayrollsInput struct {
	WorkerID string
	Status   domain.PayrollStatus
	Limit    int
	Offset   int
}

// ListPayrolls lists payroll records with filters and pagination.
func (uc *PayrollUseCase) ListPayrolls(ctx context.Context, input ListPayrollsInput) ([]*domain.PayrollRecord, error) {
	limit, offset, err := domain.ValidatePagination(input.Limit, input.Offset)
	if err != nil {
		return nil, err
	}

	return uc.payrollRepo.List(ctx, PayrollFilter{
		WorkerID: input.WorkerID,
		Status:   input.Status,
		Limit:    limit,
		Offset:   offset,
	})
}
