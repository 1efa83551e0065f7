package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mehedihasanmondol/online-plan-pilot/internal/domain"
	"github.com/mehedihasanmondol/online-plan-pilot/internal/usecase"
	"github.com/mehedihasanmondol/online-plan-pilot/internal/usecase/mocks"
)

func newPaymentUseCase(
	payrollRepo *mocks.MockPayrollRepository,
	accRepo *mocks.MockAccountRepository,
	entryRepo *mocks.MockEntryRepository,
	workHourRepo *mocks.MockWorkHourRepository,
	outboxRepo *mocks.MockOutboxRepository,
) *usecase.PaymentUseCase {
	return usecase.NewPaymentUseCase(
		mocks.NewMockTransactionManager(),
		payrollRepo,
		accRepo,
		entryRepo,
		workHourRepo,
		outboxRepo,
		mocks.NewMockAuditRepository(),
		mocks.NewMockIDGenerator(),
		mocks.NewMockCache(),
		nil,
	)
}

func TestPaymentUseCase_Pay(t *testing.T) {
	payrollRepo := mocks.NewMockPayrollRepository()
	accRepo := mocks.NewMockAccountRepository()
	entryRepo := mocks.NewMockEntryRepository()
	workHourRepo := mocks.NewMockWorkHourRepository()
	outboxRepo := mocks.NewMockOutboxRepository()

	periodStart := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	periodEnd := time.Date(2025, 7, 15, 0, 0, 0, 0, time.UTC)

	accRepo.Create(context.Background(), &domain.BankAccount{
		ID:             "acc-1",
		Name:           "house main",
		Scope:          domain.AccountScopeHouse,
		OpeningBalance: decimal.NewFromInt(1000),
		Balance:        decimal.NewFromInt(1000),
	})
	payrollRepo.Create(context.Background(), nil, &domain.PayrollRecord{
		ID:          "pr-1",
		WorkerID:    "worker-1",
		PeriodStart: periodStart,
		PeriodEnd:   periodEnd,
		TotalHours:  decimal.NewFromInt(8),
		HourlyRate:  decimal.NewFromInt(75),
		GrossPay:    decimal.NewFromInt(600),
		Deductions:  decimal.Zero,
		NetPay:      decimal.NewFromInt(600),
		Status:      domain.PayrollStatusApproved,
	})
	workHourRepo.Create(context.Background(), &domain.WorkingHourEntry{
		ID:       "wh-1",
		WorkerID: "worker-1",
		Date:     time.Date(2025, 7, 3, 0, 0, 0, 0, time.UTC),
		Status:   domain.WorkHourStatusApproved,
	})
	workHourRepo.Create(context.Background(), &domain.WorkingHourEntry{
		ID:       "wh-2",
		WorkerID: "worker-1",
		Date:     time.Date(2025, 8, 3, 0, 0, 0, 0, time.UTC),
		Status:   domain.WorkHourStatusApproved,
	})

	uc := newPaymentUseCase(payrollRepo, accRepo, entryRepo, workHourRepo, outboxRepo)

	if err := uc.Pay(context.Background(), "pr-1", "acc-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	account, err := accRepo.GetByID(context.Background(), "acc-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !account.Balance.Equal(decimal.NewFromInt(400)) {
		t.Errorf("expected balance 400, got %s", account.Balance)
	}

	payroll, err := payrollRepo.GetByID(context.Background(), "pr-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if payroll.Status != domain.PayrollStatusPaid {
		t.Errorf("expected status %s, got %s", domain.PayrollStatusPaid, payroll.Status)
	}
	if payroll.BankAccountID == nil || *payroll.BankAccountID != "acc-1" {
		t.Errorf("expected bank account acc-1 on payroll, got %v", payroll.BankAccountID)
	}
	if payroll.PaidAt == nil {
		t.Error("expected paid_at to be set")
	}

	entries := entryRepo.All()
	if len(entries) != 1 {
		t.Fatalf("expected exactly 1 ledger entry, got %d", len(entries))
	}
	entry := entries[0]
	if entry.PayrollID == nil || *entry.PayrollID != "pr-1" {
		t.Errorf("expected entry linked to pr-1, got %v", entry.PayrollID)
	}
	if entry.Direction != domain.EntryDirectionWithdrawal {
		t.Errorf("expected withdrawal entry, got %s", entry.Direction)
	}
	if entry.Category != domain.EntryCategorySalary {
		t.Errorf("expected salary category, got %s", entry.Category)
	}
	if !entry.Amount.Equal(decimal.NewFromInt(-600)) {
		t.Errorf("expected amount -600, got %s", entry.Amount)
	}
	if !entry.AccountPreviousBalance.Equal(decimal.NewFromInt(1000)) || !entry.AccountCurrentBalance.Equal(decimal.NewFromInt(400)) {
		t.Errorf("expected balance snapshot 1000 -> 400, got %s -> %s", entry.AccountPreviousBalance, entry.AccountCurrentBalance)
	}

	inPeriod, _ := workHourRepo.GetByID(context.Background(), "wh-1")
	if inPeriod.Status != domain.WorkHourStatusPaid {
		t.Errorf("expected in-period hours paid, got %s", inPeriod.Status)
	}
	outOfPeriod, _ := workHourRepo.GetByID(context.Background(), "wh-2")
	if outOfPeriod.Status != domain.WorkHourStatusApproved {
		t.Errorf("expected out-of-period hours untouched, got %s", outOfPeriod.Status)
	}

	events := outboxRepo.Events()
	if len(events) != 1 {
		t.Fatalf("expected 1 outbox event, got %d", len(events))
	}
	if events[0].EventType != domain.EventTypePayrollPaid {
		t.Errorf("expected event %s, got %s", domain.EventTypePayrollPaid, events[0].EventType)
	}
	if events[0].AggregateID != "pr-1" {
		t.Errorf("expected aggregate pr-1, got %s", events[0].AggregateID)
	}
}

func TestPaymentUseCase_Pay_LateApprovedHoursStayApproved(t *testing.T) {
	payrollRepo := mocks.NewMockPayrollRepository()
	accRepo := mocks.NewMockAccountRepository()
	entryRepo := mocks.NewMockEntryRepository()
	workHourRepo := mocks.NewMockWorkHourRepository()
	outboxRepo := mocks.NewMockOutboxRepository()

	periodStart := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	periodEnd := time.Date(2025, 7, 15, 0, 0, 0, 0, time.UTC)
	computedAt := time.Date(2025, 7, 16, 12, 0, 0, 0, time.UTC)

	accRepo.Create(context.Background(), &domain.BankAccount{
		ID:      "acc-1",
		Scope:   domain.AccountScopeHouse,
		Balance: decimal.NewFromInt(1000),
	})
	payrollRepo.Create(context.Background(), nil, &domain.PayrollRecord{
		ID:          "pr-1",
		WorkerID:    "worker-1",
		PeriodStart: periodStart,
		PeriodEnd:   periodEnd,
		TotalHours:  decimal.NewFromInt(8),
		HourlyRate:  decimal.NewFromInt(20),
		GrossPay:    decimal.NewFromInt(160),
		NetPay:      decimal.NewFromInt(160),
		Status:      domain.PayrollStatusApproved,
		CreatedAt:   computedAt,
	})
	// Aggregated into the payroll's totals.
	workHourRepo.Create(context.Background(), &domain.WorkingHourEntry{
		ID:        "wh-aggregated",
		WorkerID:  "worker-1",
		Date:      time.Date(2025, 7, 3, 0, 0, 0, 0, time.UTC),
		Hours:     decimal.NewFromInt(8),
		Status:    domain.WorkHourStatusApproved,
		UpdatedAt: computedAt.Add(-time.Hour),
	})
	// Approved after the payroll was computed; its hours are not in net pay.
	workHourRepo.Create(context.Background(), &domain.WorkingHourEntry{
		ID:        "wh-late",
		WorkerID:  "worker-1",
		Date:      time.Date(2025, 7, 10, 0, 0, 0, 0, time.UTC),
		Hours:     decimal.NewFromInt(5),
		Status:    domain.WorkHourStatusApproved,
		UpdatedAt: computedAt.Add(time.Hour),
	})

	uc := newPaymentUseCase(payrollRepo, accRepo, entryRepo, workHourRepo, outboxRepo)

	if err := uc.Pay(context.Background(), "pr-1", "acc-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	aggregated, _ := workHourRepo.GetByID(context.Background(), "wh-aggregated")
	if aggregated.Status != domain.WorkHourStatusPaid {
		t.Errorf("expected aggregated hours paid, got %s", aggregated.Status)
	}

	late, _ := workHourRepo.GetByID(context.Background(), "wh-late")
	if late.Status != domain.WorkHourStatusApproved {
		t.Errorf("expected late-approved hours to stay approved, got %s", late.Status)
	}
}

func TestPaymentUseCase_Pay_InsufficientFunds(t *testing.T) {
	payrollRepo := mocks.NewMockPayrollRepository()
	accRepo := mocks.NewMockAccountRepository()
	entryRepo := mocks.NewMockEntryRepository()
	workHourRepo := mocks.NewMockWorkHourRepository()
	outboxRepo := mocks.NewMockOutboxRepository()

	accRepo.Create(context.Background(), &domain.BankAccount{
		ID:      "acc-1",
		Name:    "house main",
		Scope:   domain.AccountScopeHouse,
		Balance: decimal.NewFromInt(100),
	})
	payrollRepo.Create(context.Background(), nil, &domain.PayrollRecord{
		ID:       "pr-1",
		WorkerID: "worker-1",
		NetPay:   decimal.NewFromInt(600),
		Status:   domain.PayrollStatusApproved,
	})

	uc := newPaymentUseCase(payrollRepo, accRepo, entryRepo, workHourRepo, outboxRepo)

	err := uc.Pay(context.Background(), "pr-1", "acc-1")
	if !errors.Is(err, domain.ErrInsufficientFunds) {
		t.Fatalf("expected ErrInsufficientFunds, got %v", err)
	}

	// Nothing may have moved.
	account, _ := accRepo.GetByID(context.Background(), "acc-1")
	if !account.Balance.Equal(decimal.NewFromInt(100)) {
		t.Errorf("expected balance unchanged at 100, got %s", account.Balance)
	}
	payroll, _ := payrollRepo.GetByID(context.Background(), "pr-1")
	if payroll.Status != domain.PayrollStatusApproved {
		t.Errorf("expected payroll still approved, got %s", payroll.Status)
	}
	if len(entryRepo.All()) != 0 {
		t.Errorf("expected no ledger entries, got %d", len(entryRepo.All()))
	}
	if len(outboxRepo.Events()) != 0 {
		t.Errorf("expected no outbox events, got %d", len(outboxRepo.Events()))
	}
}

func TestPaymentUseCase_Pay_Errors(t *testing.T) {
	tests := []struct {
		name       string
		payrollID  string
		accountID  string
		setupMocks func(*mocks.MockPayrollRepository, *mocks.MockAccountRepository)
		wantErr    error
	}{
		{
			name:       "empty payroll id",
			payrollID:  "",
			accountID:  "acc-1",
			setupMocks: func(payrollRepo *mocks.MockPayrollRepository, accRepo *mocks.MockAccountRepository) {},
			wantErr:    domain.ErrPayrollNotFound,
		},
		{
			name:       "empty account id",
			payrollID:  "pr-1",
			accountID:  "",
			setupMocks: func(payrollRepo *mocks.MockPayrollRepository, accRepo *mocks.MockAccountRepository) {},
			wantErr:    domain.ErrAccountNotFound,
		},
		{
			name:       "unknown payroll",
			payrollID:  "missing",
			accountID:  "acc-1",
			setupMocks: func(payrollRepo *mocks.MockPayrollRepository, accRepo *mocks.MockAccountRepository) {},
			wantErr:    domain.ErrPayrollNotFound,
		},
		{
			name:      "unknown account",
			payrollID: "pr-1",
			accountID: "missing",
			setupMocks: func(payrollRepo *mocks.MockPayrollRepository, accRepo *mocks.MockAccountRepository) {
				payrollRepo.Create(context.Background(), nil, &domain.PayrollRecord{
					ID:     "pr-1",
					NetPay: decimal.NewFromInt(100),
					Status: domain.PayrollStatusApproved,
				})
			},
			wantErr: domain.ErrAccountNotFound,
		},
		{
			name:      "pending payroll cannot be paid",
			payrollID: "pr-1",
			accountID: "acc-1",
			setupMocks: func(payrollRepo *mocks.MockPayrollRepository, accRepo *mocks.MockAccountRepository) {
				payrollRepo.Create(context.Background(), nil, &domain.PayrollRecord{
					ID:     "pr-1",
					NetPay: decimal.NewFromInt(100),
					Status: domain.PayrollStatusPending,
				})
			},
			wantErr: domain.ErrInvalidStateTransition,
		},
		{
			name:      "paid payroll cannot be paid again",
			payrollID: "pr-1",
			accountID: "acc-1",
			setupMocks: func(payrollRepo *mocks.MockPayrollRepository, accRepo *mocks.MockAccountRepository) {
				payrollRepo.Create(context.Background(), nil, &domain.PayrollRecord{
					ID:     "pr-1",
					NetPay: decimal.NewFromInt(100),
					Status: domain.PayrollStatusPaid,
				})
			},
			wantErr: domain.ErrInvalidStateTransition,
		},
		{
			name:      "raced status flip surfaces conflict",
			payrollID: "pr-1",
			accountID: "acc-1",
			setupMocks: func(payrollRepo *mocks.MockPayrollRepository, accRepo *mocks.MockAccountRepository) {
				payrollRepo.Create(context.Background(), nil, &domain.PayrollRecord{
					ID:     "pr-1",
					NetPay: decimal.NewFromInt(100),
					Status: domain.PayrollStatusApproved,
				})
				accRepo.Create(context.Background(), &domain.BankAccount{
					ID:      "acc-1",
					Balance: decimal.NewFromInt(1000),
				})
				payrollRepo.MarkPaidFunc = func(ctx context.Context, tx usecase.Transaction, id, bankAccountID string, paidAt time.Time) error {
					return domain.ErrConcurrencyConflict
				}
			},
			wantErr: domain.ErrConcurrencyConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payrollRepo := mocks.NewMockPayrollRepository()
			accRepo := mocks.NewMockAccountRepository()
			tt.setupMocks(payrollRepo, accRepo)

			uc := newPaymentUseCase(payrollRepo, accRepo, mocks.NewMockEntryRepository(), mocks.NewMockWorkHourRepository(), mocks.NewMockOutboxRepository())

			err := uc.Pay(context.Background(), tt.payrollID, tt.accountID)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestPaymentUseCase_Pay_SecondAttemptFails(t *testing.T) {
	payrollRepo := mocks.NewMockPayrollRepository()
	accRepo := mocks.NewMockAccountRepository()
	entryRepo := mocks.NewMockEntryRepository()

	accRepo.Create(context.Background(), &domain.BankAccount{
		ID:      "acc-1",
		Balance: decimal.NewFromInt(1000),
	})
	payrollRepo.Create(context.Background(), nil, &domain.PayrollRecord{
		ID:       "pr-1",
		WorkerID: "worker-1",
		NetPay:   decimal.NewFromInt(600),
		Status:   domain.PayrollStatusApproved,
	})

	uc := newPaymentUseCase(payrollRepo, accRepo, entryRepo, mocks.NewMockWorkHourRepository(), mocks.NewMockOutboxRepository())

	if err := uc.Pay(context.Background(), "pr-1", "acc-1"); err != nil {
		t.Fatalf("unexpected error on first attempt: %v", err)
	}

	err := uc.Pay(context.Background(), "pr-1", "acc-1")
	if !errors.Is(err, domain.ErrInvalidStateTransition) {
		t.Fatalf("expected ErrInvalidStateTransition on second attempt, got %v", err)
	}

	// The record was debited exactly once.
	if len(entryRepo.All()) != 1 {
		t.Errorf("expected exactly 1 ledger entry, got %d", len(entryRepo.All()))
	}
	account, _ := accRepo.GetByID(context.Background(), "acc-1")
	if !account.Balance.Equal(decimal.NewFromInt(400)) {
		t.Errorf("expected balance 400, got %s", account.Balance)
	}
}

func TestPaymentUseCase_Pay_CommitError(t *testing.T) {
	errCommit := errors.New("commit failed")

	payrollRepo := mocks.NewMockPayrollRepository()
	accRepo := mocks.NewMockAccountRepository()
	txMgr := mocks.NewMockTransactionManager()
	txMgr.BeginFunc = func(ctx context.Context) (usecase.Transaction, error) {
		return &mocks.MockTransaction{
			CommitFunc: func(ctx context.Context) error { return errCommit },
		}, nil
	}

	accRepo.Create(context.Background(), &domain.BankAccount{
		ID:      "acc-1",
		Balance: decimal.NewFromInt(1000),
	})
	payrollRepo.Create(context.Background(), nil, &domain.PayrollRecord{
		ID:       "pr-1",
		WorkerID: "worker-1",
		NetPay:   decimal.NewFromInt(600),
		Status:   domain.PayrollStatusApproved,
	})

	uc := usecase.NewPaymentUseCase(
		txMgr,
		payrollRepo,
		accRepo,
		mocks.NewMockEntryRepository(),
		mocks.NewMockWorkHourRepository(),
		mocks.NewMockOutboxRepository(),
		mocks.NewMockAuditRepository(),
		mocks.NewMockIDGenerator(),
		mocks.NewMockCache(),
		nil,
	)

	if err := uc.Pay(context.Background(), "pr-1", "acc-1"); !errors.Is(err, errCommit) {
		t.Fatalf("expected commit error, got %v", err)
	}
}
