package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/mehedihasanmondol/online-plan-pilot/internal/domain"
	"github.com/mehedihasanmondol/online-plan-pilot/internal/usecase"
)

// CreateAccountRequest represents a request to create a bank account.
type CreateAccountRequest struct {
	Name           string          `json:"name"`
	Scope          string          `json:"scope"`
	WorkerID       *string         `json:"worker_id,omitempty"`
	OpeningBalance decimal.Decimal `json:"opening_balance"`
	Primary        bool            `json:"primary"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateAccountRequest) ToUseCaseInput() usecase.CreateAccountInput {
	return usecase.CreateAccountInput{
		Name:           r.Name,
		Scope:          domain.AccountScope(r.Scope),
		WorkerID:       r.WorkerID,
		OpeningBalance: r.OpeningBalance,
		Primary:        r.Primary,
	}
}

// DepositRequest represents a request to record a deposit on an account.
type DepositRequest struct {
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category,omitempty"`
	Description string          `json:"description,omitempty"`
}

// ToUseCaseInput converts to use case input. The account ID comes from the
// URL, not the body.
func (r *DepositRequest) ToUseCaseInput(accountID string) usecase.DepositInput {
	return usecase.DepositInput{
		AccountID:   accountID,
		Amount:      r.Amount,
		Category:    r.Category,
		Description: r.Description,
	}
}

// CreateWorkHourRequest represents a request to record a working hour entry.
type CreateWorkHourRequest struct {
	WorkerID   string          `json:"worker_id"`
	ClientID   string          `json:"client_id,omitempty"`
	ProjectID  string          `json:"project_id,omitempty"`
	Date       time.Time       `json:"date"`
	StartTime  time.Time       `json:"start_time"`
	EndTime    time.Time       `json:"end_time"`
	Hours      decimal.Decimal `json:"hours"`
	HourlyRate decimal.Decimal `json:"hourly_rate"`
	Notes      string          `json:"notes,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateWorkHourRequest) ToUseCaseInput() usecase.CreateWorkHourInput {
	return usecase.CreateWorkHourInput{
		WorkerID:   r.WorkerID,
		ClientID:   r.ClientID,
		ProjectID:  r.ProjectID,
		Date:       r.Date,
		StartTime:  r.StartTime,
		EndTime:    r.EndTime,
		Hours:      r.Hours,
		HourlyRate: r.HourlyRate,
		Notes:      r.Notes,
	}
}

// CreatePayrollRequest represents a request to generate a payroll record from
// a worker's approved hours.
type CreatePayrollRequest struct {
	WorkerID    string          `json:"worker_id"`
	PeriodStart time.Time       `json:"period_start"`
	PeriodEnd   time.Time       `json:"period_end"`
	Deductions  decimal.Decimal `json:"deductions"`
}

// ToUseCaseInput converts to use case input.
func (r *CreatePayrollRequest) ToUseCaseInput() usecase.CreatePayrollInput {
	return usecase.CreatePayrollInput{
		WorkerID:    r.WorkerID,
		PeriodStart: r.PeriodStart,
		PeriodEnd:   r.PeriodEnd,
		Deductions:  r.Deductions,
	}
}

// PayRequest represents a request to pay an approved payroll record.
type PayRequest struct {
	BankAccountID string `json:"bank_account_id"`
}

// PaginationRequest represents pagination parameters.
type PaginationRequest struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}
