package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrPayrollNotFound      = errors.New("payroll record not found")
	ErrPayrollPeriodOverlap = errors.New("payroll period overlaps an existing record for this worker")
	ErrPayrollNotPending    = errors.New("payroll record is not pending")
	ErrPayrollNotApproved   = errors.New("payroll record is not approved")
)

// PayrollStatus is the lifecycle state of a payroll record.
type PayrollStatus string

const (
	// PayrollStatusPending is the initial state. All computed fields are
	// still mutable.
	PayrollStatusPending PayrollStatus = "pending"

	// PayrollStatusApproved freezes every field except status.
	PayrollStatusApproved PayrollStatus = "approved"

	// PayrollStatusPaid is terminal. The record holds the paying account
	// and the paid timestamp.
	PayrollStatusPaid PayrollStatus = "paid"
)

// payrollTransitions holds the permitted status edges. No skips, no backward
// transitions.
var payrollTransitions = map[PayrollStatus][]PayrollStatus{
	PayrollStatusPending:  {PayrollStatusApproved},
	PayrollStatusApproved: {PayrollStatusPaid},
}

// IsValid checks if the status is a known payroll status.
func (s PayrollStatus) IsValid() bool {
	switch s {
	case PayrollStatusPending, PayrollStatusApproved, PayrollStatusPaid:
		return true
	}
	return false
}

// CanTransitionTo reports whether the status edge s -> next is permitted.
func (s PayrollStatus) CanTransitionTo(next PayrollStatus) bool {
	for _, allowed := range payrollTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// PayrollRecord represents the computed pay for one worker over one pay
// period. Gross pay is hours times the hours-weighted average rate; net pay
// is gross minus deductions.
type PayrollRecord struct {
	ID            string
	WorkerID      string
	PeriodStart   time.Time
	PeriodEnd     time.Time
	TotalHours    decimal.Decimal
	HourlyRate    decimal.Decimal
	GrossPay      decimal.Decimal
	Deductions    decimal.Decimal
	NetPay        decimal.Decimal
	Status        PayrollStatus
	BankAccountID *string
	PaidAt        *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Validate checks the record's fields before it is persisted.
func (p *PayrollRecord) Validate() error {
	if p.WorkerID == "" {
		return ErrMissingWorker
	}
	if p.PeriodEnd.Before(p.PeriodStart) {
		return ErrInvalidPeriod
	}
	if p.TotalHours.IsNegative() {
		return ErrNegativeHours
	}
	if p.HourlyRate.IsNegative() {
		return ErrNegativeRate
	}
	if p.Deductions.IsNegative() {
		return ErrNegativeDeductions
	}
	if p.Deductions.GreaterThan(p.GrossPay) {
		return ErrDeductionsExceedGross
	}
	return nil
}

// Recalculate recomputes gross and net pay from hours, rate and deductions.
// Callers must only invoke this while the record is pending.
func (p *PayrollRecord) Recalculate() {
	p.GrossPay = p.TotalHours.Mul(p.HourlyRate)
	p.NetPay = p.GrossPay.Sub(p.Deductions)
}
