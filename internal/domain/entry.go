package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntryDirection classifies a ledger entry as money in or money out.
type EntryDirection string

const (
	EntryDirectionDeposit    EntryDirection = "deposit"
	EntryDirectionWithdrawal EntryDirection = "withdrawal"
)

// IsValid checks if the direction is a known entry direction.
func (d EntryDirection) IsValid() bool {
	return d == EntryDirectionDeposit || d == EntryDirectionWithdrawal
}

// Ledger entry categories
const (
	EntryCategorySalary     = "salary"
	EntryCategoryFunding    = "funding"
	EntryCategoryAdjustment = "adjustment"
)

// LedgerEntry represents a single immutable row in an account's ledger.
// Amount is signed: positive for deposits, negative for withdrawals, so the
// account balance is opening balance plus the plain sum of Amount.
// Entries are never updated or deleted once committed.
type LedgerEntry struct {
	CreatedAt              time.Time
	EntryDate              time.Time
	ID                     string
	AccountID              string
	PayrollID              *string
	Direction              EntryDirection
	Category               string
	Description            string
	Amount                 decimal.Decimal
	AccountPreviousBalance decimal.Decimal
	AccountCurrentBalance  decimal.Decimal
	AccountVersion         int64
}

// Validate checks that the signed amount agrees with the direction.
func (e *LedgerEntry) Validate() error {
	if !e.Direction.IsValid() {
		return ErrInvalidEntryDirection
	}
	if e.Amount.IsZero() {
		return ErrInvalidAmount
	}
	if e.Direction == EntryDirectionDeposit && e.Amount.IsNegative() {
		return ErrInvalidEntryDirection
	}
	if e.Direction == EntryDirectionWithdrawal && e.Amount.IsPositive() {
		return ErrInvalidEntryDirection
	}
	return nil
}

// Magnitude returns the unsigned size of the entry.
func (e *LedgerEntry) Magnitude() decimal.Decimal {
	return e.Amount.Abs()
}
