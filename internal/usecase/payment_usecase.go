package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/mehedihasanmondol/online-plan-pilot/internal/domain"
	"github.com/mehedihasanmondol/online-plan-pilot/internal/infrastructure/metrics"
)

// PaymentUseCase executes the paid transition of a payroll record: balance
// check, ledger append, status flip and notification event as one atomic
// unit. Everything up to the commit happens inside a single transaction with
// the payroll row and the account row locked, so two payers can never both
// observe a balance sufficient for only one of them, and a raced second
// caller fails instead of double-paying.
type PaymentUseCase struct {
	txManager    TransactionManager
	payrollRepo  PayrollRepository
	accountRepo  AccountRepository
	entryRepo    EntryRepository
	workHourRepo WorkHourRepository
	outboxRepo   OutboxRepository
	auditRepo    AuditRepository
	idGen        IDGenerator
	cache        Cache
	metrics      *metrics.Metrics
}

// NewPaymentUseCase creates a new PaymentUseCase.
func NewPaymentUseCase(
	txManager TransactionManager,
	payrollRepo PayrollRepository,
	accountRepo AccountRepository,
	entryRepo EntryRepository,
	workHourRepo WorkHourRepository,
	outboxRepo OutboxRepository,
	auditRepo AuditRepository,
	idGen IDGenerator,
	cache Cache,
	metrics *metrics.Metrics,
) *PaymentUseCase {
	return &PaymentUseCase{
		txManager:    txManager,
		payrollRepo:  payrollRepo,
		accountRepo:  accountRepo,
		entryRepo:    entryRepo,
		workHourRepo: workHourRepo,
		outboxRepo:   outboxRepo,
		auditRepo:    auditRepo,
		idGen:        idGen,
		cache:        cache,
		metrics:      metrics,
	}
}

// Pay disburses an approved payroll record from the given bank account.
//
// Preconditions: the payroll record exists and is approved; the account
// exists and holds at least the net pay. On success the ledger gains exactly
// one salary withdrawal linked to the payroll, the materialized balance
// drops by net pay, the record is paid and the aggregated approved hours of
// the period are flipped to paid. On any failure nothing is mutated. The
// payment-completed
// notification is dispatched from the outbox after commit, best-effort.
func (uc *PaymentUseCase) Pay(ctx context.Context, payrollID, bankAccountID string) error {
	start := time.Now()

	if payrollID == "" {
		return domain.ErrPayrollNotFound
	}
	if bankAccountID == "" {
		return domain.ErrAccountNotFound
	}

	txCtx, cancel := context.WithTimeout(ctx, DefaultTransactionTimeout)
	defer cancel()

	tx, err := uc.txManager.Begin(txCtx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(txCtx) }()

	// Lock the payroll row. The status check under this lock is what makes a
	// second concurrent Pay on the same record fail fast instead of paying
	// twice: it blocks here until the first commits, then reads paid.
	payroll, err := uc.payrollRepo.GetByIDForUpdate(txCtx, tx, payrollID)
	if err != nil {
		return uc.fail(err)
	}

	if !payroll.Status.CanTransitionTo(domain.PayrollStatusPaid) {
		return uc.fail(domain.ErrInvalidStateTransition)
	}

	// Lock the account row. This serializes all balance movements per
	// account, closing the read-then-write double-spend window.
	account, err := uc.accountRepo.GetByIDForUpdate(txCtx, tx, bankAccountID)
	if err != nil {
		return uc.fail(err)
	}

	if err := account.ValidateWithdrawal(payroll.NetPay); err != nil {
		return uc.fail(err)
	}

	now := time.Now().UTC()
	newBalance := account.ApplyWithdrawal(payroll.NetPay)

	entry := &domain.LedgerEntry{
		ID:                     uc.idGen.Generate(),
		AccountID:              account.ID,
		PayrollID:              &payroll.ID,
		Direction:              domain.EntryDirectionWithdrawal,
		Category:               domain.EntryCategorySalary,
		Description:            "salary payment",
		Amount:                 payroll.NetPay.Neg(),
		EntryDate:              now,
		AccountPreviousBalance: account.Balance,
		AccountCurrentBalance:  newBalance,
		AccountVersion:         account.Version + 1,
		CreatedAt:              now,
	}
	if err := uc.entryRepo.Create(txCtx, tx, entry); err != nil {
		return uc.fail(err)
	}

	if err := uc.accountRepo.UpdateBalance(txCtx, tx, account.ID, newBalance, now); err != nil {
		return uc.fail(err)
	}

	// Compare-and-set keyed on approved. Zero rows here means something else
	// advanced the record despite our lock; surface the conflict rather than
	// guessing.
	if err := uc.payrollRepo.MarkPaid(txCtx, tx, payroll.ID, account.ID, now); err != nil {
		return uc.fail(err)
	}

	// Only hours approved by the time the payroll was computed are covered by
	// its net pay. Entries approved later stay approved and remain payable.
	if err := uc.workHourRepo.MarkPaidForPeriod(txCtx, tx, payroll.WorkerID, payroll.PeriodStart, payroll.PeriodEnd, payroll.CreatedAt, now); err != nil {
		return uc.fail(err)
	}

	event := &domain.OutboxEvent{
		ID:            uc.idGen.Generate(),
		AggregateID:   payroll.ID,
		AggregateType: domain.AggregateTypePayroll,
		EventType:     domain.EventTypePayrollPaid,
		Payload: map[string]any{
			"payroll_id":      payroll.ID,
			"worker_id":       payroll.WorkerID,
			"bank_account_id": account.ID,
			"net_pay":         payroll.NetPay.String(),
			"period_start":    payroll.PeriodStart.Format(time.RFC3339),
			"period_end":      payroll.PeriodEnd.Format(time.RFC3339),
			"paid_at":         now.Format(time.RFC3339),
		},
		CreatedAt: now,
		Published: false,
	}
	if err := uc.outboxRepo.Create(txCtx, tx, event); err != nil {
		return uc.fail(err)
	}

	if uc.auditRepo != nil {
		auditLog := &domain.AuditLog{
			ID:           uc.idGen.Generate(),
			ActorID:      "system",
			Action:       string(domain.AuditActionPayrollPay),
			ResourceType: "payroll",
			ResourceID:   payroll.ID,
			BeforeState:  domain.MarshalState(map[string]any{"status": domain.PayrollStatusApproved, "balance": account.Balance.String()}),
			AfterState:   domain.MarshalState(map[string]any{"status": domain.PayrollStatusPaid, "balance": newBalance.String(), "entry_id": entry.ID}),
			Status:       string(domain.AuditStatusSuccess),
			CreatedAt:    time.Now(),
		}
		if err := uc.auditRepo.CreateTx(txCtx, tx, auditLog); err != nil {
			return uc.fail(err)
		}
	}

	if err := tx.Commit(txCtx); err != nil {
		return uc.fail(err)
	}

	if uc.cache != nil {
		_ = uc.cache.Delete(ctx, balanceCacheKey(account.ID))
	}

	if uc.metrics != nil {
		uc.metrics.PaymentsCompleted.Inc()
		uc.metrics.PaymentAmount.Observe(payroll.NetPay.InexactFloat64())
		uc.metrics.PaymentDuration.Observe(time.Since(start).Seconds())
	}

	return nil
}

func (uc *PaymentUseCase) fail(err error) error {
	if uc.metrics != nil {
		uc.metrics.PaymentErrors.WithLabelValues(paymentErrorType(err)).Inc()
	}
	return err
}

func paymentErrorType(err error) string {
	switch {
	case errors.Is(err, domain.ErrInsufficientFunds):
		return "insufficient_funds"
	case errors.Is(err, domain.ErrInvalidStateTransition):
		return "invalid_state"
	case errors.Is(err, domain.ErrConcurrencyConflict):
		return "conflict"
	case errors.Is(err, domain.ErrPayrollNotFound), errors.Is(err, domain.ErrAccountNotFound):
		return "not_found"
	default:
		return "persistence"
	}
}

func balanceCacheKey(accountID string) string {
	return "balance:" + accountID
}
