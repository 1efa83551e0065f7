package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrWorkHourNotFound   = errors.New("working hour entry not found")
	ErrWorkHourNotPending = errors.New("working hour entry is not pending")
)

// WorkHourStatus is the lifecycle state of a working hour entry.
type WorkHourStatus string

const (
	WorkHourStatusPending  WorkHourStatus = "pending"
	WorkHourStatusApproved WorkHourStatus = "approved"
	WorkHourStatusRejected WorkHourStatus = "rejected"
	WorkHourStatusPaid     WorkHourStatus = "paid"
)

// workHourTransitions holds the permitted status edges. Rejected and paid are
// terminal.
var workHourTransitions = map[WorkHourStatus][]WorkHourStatus{
	WorkHourStatusPending:  {WorkHourStatusApproved, WorkHourStatusRejected},
	WorkHourStatusApproved: {WorkHourStatusPaid},
}

// IsValid checks if the status is a known working hour status.
func (s WorkHourStatus) IsValid() bool {
	switch s {
	case WorkHourStatusPending, WorkHourStatusApproved, WorkHourStatusRejected, WorkHourStatusPaid:
		return true
	}
	return false
}

// CanTransitionTo reports whether the status edge s -> next is permitted.
func (s WorkHourStatus) CanTransitionTo(next WorkHourStatus) bool {
	for _, allowed := range workHourTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// WorkingHourEntry represents a single time record for a worker on a client
// project. Mutable only while pending; once referenced by a paid payroll
// record the entry is flipped to paid and frozen.
type WorkingHourEntry struct {
	ID         string
	WorkerID   string
	ClientID   string
	ProjectID  string
	Date       time.Time
	StartTime  time.Time
	EndTime    time.Time
	Hours      decimal.Decimal
	HourlyRate decimal.Decimal
	Status     WorkHourStatus
	Notes      string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Validate checks the entry's fields before it is recorded.
func (w *WorkingHourEntry) Validate() error {
	if w.WorkerID == "" {
		return ErrMissingWorker
	}
	if w.Hours.IsNegative() {
		return ErrNegativeHours
	}
	if w.HourlyRate.IsNegative() {
		return ErrNegativeRate
	}
	if !w.EndTime.IsZero() && !w.StartTime.IsZero() && w.EndTime.Before(w.StartTime) {
		return ErrInvalidTimeRange
	}
	return nil
}

// Earnings returns hours times rate for this entry.
func (w *WorkingHourEntry) Earnings() decimal.Decimal {
	return w.Hours.Mul(w.HourlyRate)
}
