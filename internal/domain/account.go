package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountScope describes who owns a bank account.
type AccountScope string

const (
	// AccountScopeHouse is a company-owned account that payroll is paid from.
	AccountScopeHouse AccountScope = "house"

	// AccountScopeWorker is an account owned by a single worker.
	AccountScopeWorker AccountScope = "worker"
)

// Valid scopes
var validAccountScopes = map[AccountScope]bool{
	AccountScopeHouse:  true,
	AccountScopeWorker: true,
}

// IsValid checks if the scope is a known account scope.
func (s AccountScope) IsValid() bool {
	return validAccountScopes[s]
}

// BankAccount represents an account whose balance is derived from its ledger.
// Balance mirrors opening balance plus the signed sum of ledger entries and is
// maintained in the same transaction as every append.
type BankAccount struct {
	ID             string
	Name           string
	Scope          AccountScope
	WorkerID       *string
	OpeningBalance decimal.Decimal
	Balance        decimal.Decimal
	Version        int64
	Primary        bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// ValidateWithdrawal checks if the account holds enough funds for amount.
func (a *BankAccount) ValidateWithdrawal(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}
	if a.Balance.LessThan(amount) {
		return ErrInsufficientFunds
	}
	return nil
}

// ApplyWithdrawal returns the new balance after withdrawing amount.
func (a *BankAccount) ApplyWithdrawal(amount decimal.Decimal) decimal.Decimal {
	return a.Balance.Sub(amount)
}

// ApplyDeposit returns the new balance after depositing amount.
func (a *BankAccount) ApplyDeposit(amount decimal.Decimal) decimal.Decimal {
	return a.Balance.Add(amount)
}
