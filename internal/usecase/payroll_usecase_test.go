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

func newPayrollUseCase(payrollRepo *mocks.MockPayrollRepository, workHourRepo *mocks.MockWorkHourRepository, outboxRepo *mocks.MockOutboxRepository) *usecase.PayrollUseCase {
	return usecase.NewPayrollUseCase(
		mocks.NewMockTransactionManager(),
		payrollRepo,
		workHourRepo,
		outboxRepo,
		mocks.NewMockAuditRepository(),
		mocks.NewMockIDGenerator(),
		nil,
	)
}

func TestPayrollUseCase_CreatePayroll(t *testing.T) {
	payrollRepo := mocks.NewMockPayrollRepository()
	workHourRepo := mocks.NewMockWorkHourRepository()
	outboxRepo := mocks.NewMockOutboxRepository()

	periodStart := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	periodEnd := time.Date(2025, 7, 15, 0, 0, 0, 0, time.UTC)

	// Mixed rates: 5h at $20 and 3h at $30. The average must be weighted by
	// hours (190/8 = 23.75), not the midpoint of the rates.
	workHourRepo.Create(context.Background(), &domain.WorkingHourEntry{
		ID:         "wh-1",
		WorkerID:   "worker-1",
		Date:       time.Date(2025, 7, 2, 0, 0, 0, 0, time.UTC),
		Hours:      decimal.NewFromInt(5),
		HourlyRate: decimal.NewFromInt(20),
		Status:     domain.WorkHourStatusApproved,
	})
	workHourRepo.Create(context.Background(), &domain.WorkingHourEntry{
		ID:         "wh-2",
		WorkerID:   "worker-1",
		Date:       time.Date(2025, 7, 9, 0, 0, 0, 0, time.UTC),
		Hours:      decimal.NewFromInt(3),
		HourlyRate: decimal.NewFromInt(30),
		Status:     domain.WorkHourStatusApproved,
	})
	// Pending entries never count.
	workHourRepo.Create(context.Background(), &domain.WorkingHourEntry{
		ID:         "wh-3",
		WorkerID:   "worker-1",
		Date:       time.Date(2025, 7, 10, 0, 0, 0, 0, time.UTC),
		Hours:      decimal.NewFromInt(10),
		HourlyRate: decimal.NewFromInt(100),
		Status:     domain.WorkHourStatusPending,
	})

	uc := newPayrollUseCase(payrollRepo, workHourRepo, outboxRepo)

	payroll, err := uc.CreatePayroll(context.Background(), usecase.CreatePayrollInput{
		WorkerID:    "worker-1",
		PeriodStart: periodStart,
		PeriodEnd:   periodEnd,
		Deductions:  decimal.NewFromInt(40),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !payroll.TotalHours.Equal(decimal.NewFromInt(8)) {
		t.Errorf("expected 8 total hours, got %s", payroll.TotalHours)
	}
	if !payroll.HourlyRate.Equal(decimal.RequireFromString("23.75")) {
		t.Errorf("expected weighted rate 23.75, got %s", payroll.HourlyRate)
	}
	if !payroll.GrossPay.Equal(decimal.NewFromInt(190)) {
		t.Errorf("expected gross 190, got %s", payroll.GrossPay)
	}
	if !payroll.NetPay.Equal(decimal.NewFromInt(150)) {
		t.Errorf("expected net 150, got %s", payroll.NetPay)
	}
	if payroll.Status != domain.PayrollStatusPending {
		t.Errorf("expected pending status, got %s", payroll.Status)
	}

	events := outboxRepo.Events()
	if len(events) != 1 || events[0].EventType != domain.EventTypePayrollCreated {
		t.Errorf("expected a single %s event, got %v", domain.EventTypePayrollCreated, events)
	}
}

func TestPayrollUseCase_CreatePayroll_NoApprovedHours(t *testing.T) {
	uc := newPayrollUseCase(mocks.NewMockPayrollRepository(), mocks.NewMockWorkHourRepository(), mocks.NewMockOutboxRepository())

	payroll, err := uc.CreatePayroll(context.Background(), usecase.CreatePayrollInput{
		WorkerID:    "worker-1",
		PeriodStart: time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
		PeriodEnd:   time.Date(2025, 7, 15, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !payroll.TotalHours.IsZero() || !payroll.HourlyRate.IsZero() || !payroll.NetPay.IsZero() {
		t.Errorf("expected zero totals, got hours=%s rate=%s net=%s", payroll.TotalHours, payroll.HourlyRate, payroll.NetPay)
	}
}

func TestPayrollUseCase_CreatePayroll_Errors(t *testing.T) {
	periodStart := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	periodEnd := time.Date(2025, 7, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		input      usecase.CreatePayrollInput
		setupMocks func(*mocks.MockPayrollRepository, *mocks.MockWorkHourRepository)
		wantErr    error
	}{
		{
			name: "missing worker",
			input: usecase.CreatePayrollInput{
				PeriodStart: periodStart,
				PeriodEnd:   periodEnd,
			},
			setupMocks: func(payrollRepo *mocks.MockPayrollRepository, workHourRepo *mocks.MockWorkHourRepository) {},
			wantErr:    domain.ErrMissingWorker,
		},
		{
			name: "period end before start",
			input: usecase.CreatePayrollInput{
				WorkerID:    "worker-1",
				PeriodStart: periodEnd,
				PeriodEnd:   periodStart,
			},
			setupMocks: func(payrollRepo *mocks.MockPayrollRepository, workHourRepo *mocks.MockWorkHourRepository) {},
			wantErr:    domain.ErrInvalidPeriod,
		},
		{
			name: "negative deductions",
			input: usecase.CreatePayrollInput{
				WorkerID:    "worker-1",
				PeriodStart: periodStart,
				PeriodEnd:   periodEnd,
				Deductions:  decimal.NewFromInt(-5),
			},
			setupMocks: func(payrollRepo *mocks.MockPayrollRepository, workHourRepo *mocks.MockWorkHourRepository) {},
			wantErr:    domain.ErrNegativeDeductions,
		},
		{
			name: "deductions exceed gross",
			input: usecase.CreatePayrollInput{
				WorkerID:    "worker-1",
				PeriodStart: periodStart,
				PeriodEnd:   periodEnd,
				Deductions:  decimal.NewFromInt(500),
			},
			setupMocks: func(payrollRepo *mocks.MockPayrollRepository, workHourRepo *mocks.MockWorkHourRepository) {
				workHourRepo.Create(context.Background(), &domain.WorkingHourEntry{
					ID:         "wh-1",
					WorkerID:   "worker-1",
					Date:       time.Date(2025, 7, 2, 0, 0, 0, 0, time.UTC),
					Hours:      decimal.NewFromInt(8),
					HourlyRate: decimal.NewFromInt(25),
					Status:     domain.WorkHourStatusApproved,
				})
			},
			wantErr: domain.ErrDeductionsExceedGross,
		},
		{
			name: "overlapping period",
			input: usecase.CreatePayrollInput{
				WorkerID:    "worker-1",
				PeriodStart: periodStart,
				PeriodEnd:   periodEnd,
			},
			setupMocks: func(payrollRepo *mocks.MockPayrollRepository, workHourRepo *mocks.MockWorkHourRepository) {
				payrollRepo.Create(context.Background(), nil, &domain.PayrollRecord{
					ID:          "pr-existing",
					WorkerID:    "worker-1",
					PeriodStart: time.Date(2025, 7, 10, 0, 0, 0, 0, time.UTC),
					PeriodEnd:   time.Date(2025, 7, 24, 0, 0, 0, 0, time.UTC),
					Status:      domain.PayrollStatusPending,
				})
			},
			wantErr: domain.ErrPayrollPeriodOverlap,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payrollRepo := mocks.NewMockPayrollRepository()
			workHourRepo := mocks.NewMockWorkHourRepository()
			tt.setupMocks(payrollRepo, workHourRepo)

			uc := newPayrollUseCase(payrollRepo, workHourRepo, mocks.NewMockOutboxRepository())

			_, err := uc.CreatePayroll(context.Background(), tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestPayrollUseCase_ApprovePayroll(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		status  domain.PayrollStatus
		wantErr error
	}{
		{
			name:   "approve pending payroll",
			id:     "pr-1",
			status: domain.PayrollStatusPending,
		},
		{
			name:    "approve already approved payroll",
			id:      "pr-1",
			status:  domain.PayrollStatusApproved,
			wantErr: domain.ErrInvalidStateTransition,
		},
		{
			name:    "approve paid payroll",
			id:      "pr-1",
			status:  domain.PayrollStatusPaid,
			wantErr: domain.ErrInvalidStateTransition,
		},
		{
			name:    "approve unknown payroll",
			id:      "missing",
			status:  domain.PayrollStatusPending,
			wantErr: domain.ErrPayrollNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payrollRepo := mocks.NewMockPayrollRepository()
			outboxRepo := mocks.NewMockOutboxRepository()
			payrollRepo.Create(context.Background(), nil, &domain.PayrollRecord{
				ID:       "pr-1",
				WorkerID: "worker-1",
				NetPay:   decimal.NewFromInt(100),
				Status:   tt.status,
			})

			uc := newPayrollUseCase(payrollRepo, mocks.NewMockWorkHourRepository(), outboxRepo)

			err := uc.ApprovePayroll(context.Background(), tt.id)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			payroll, _ := payrollRepo.GetByID(context.Background(), tt.id)
			if payroll.Status != domain.PayrollStatusApproved {
				t.Errorf("expected approved status, got %s", payroll.Status)
			}
			events := outboxRepo.Events()
			if len(events) != 1 || events[0].EventType != domain.EventTypePayrollApproved {
				t.Errorf("expected a single %s event, got %v", domain.EventTypePayrollApproved, events)
			}
		})
	}
}

func TestPayrollUseCase_ListPayrolls(t *testing.T) {
	payrollRepo := mocks.NewMockPayrollRepository()
	payrollRepo.Create(context.Background(), nil, &domain.PayrollRecord{ID: "pr-1", WorkerID: "worker-1", Status: domain.PayrollStatusPending})
	payrollRepo.Create(context.Background(), nil, &domain.PayrollRecord{ID: "pr-2", WorkerID: "worker-1", Status: domain.PayrollStatusPaid})
	payrollRepo.Create(context.Background(), nil, &domain.PayrollRecord{ID: "pr-3", WorkerID: "worker-2", Status: domain.PayrollStatusPending})

	uc := newPayrollUseCase(payrollRepo, mocks.NewMockWorkHourRepository(), mocks.NewMockOutboxRepository())

	payrolls, err := uc.ListPayrolls(context.Background(), usecase.ListPayrollsInput{WorkerID: "worker-1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(payrolls) != 2 {
		t.Errorf("expected 2 payrolls for worker-1, got %d", len(payrolls))
	}

	payrolls, err = uc.ListPayrolls(context.Background(), usecase.ListPayrollsInput{Status: domain.PayrollStatusPending})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(payrolls) != 2 {
		t.Errorf("expected 2 pending payrolls, got %d", len(payrolls))
	}
}
