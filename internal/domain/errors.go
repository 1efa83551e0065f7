package domain

import "errors"

var (
	// Account errors
	ErrAccountNotFound     = errors.New("bank account not found")
	ErrInsufficientFunds   = errors.New("insufficient funds")
	ErrInvalidAccountScope = errors.New("unknown account ownership scope")

	// Ledger errors
	ErrInvalidAmount         = errors.New("amount must be positive")
	ErrInvalidEntryDirection = errors.New("entry direction does not match signed amount")

	// Lifecycle errors
	ErrInvalidStateTransition = errors.New("invalid state transition")
	ErrConcurrencyConflict    = errors.New("concurrent update conflict, retry the operation")

	// Validation errors
	ErrMissingWorker         = errors.New("worker reference is required")
	ErrInvalidPeriod         = errors.New("period end must not be before period start")
	ErrInvalidTimeRange      = errors.New("end time must not be before start time")
	ErrNegativeHours         = errors.New("hours must be non-negative")
	ErrNegativeRate          = errors.New("hourly rate must be non-negative")
	ErrNegativeDeductions    = errors.New("deductions must be non-negative")
	ErrDeductionsExceedGross = errors.New("deductions must not exceed gross pay")
)
