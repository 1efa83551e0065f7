package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/mehedihasanmondol/online-plan-pilot/internal/domain"
	"github.com/mehedihasanmondol/online-plan-pilot/internal/usecase"
)

// AccountResponse represents a bank account in API responses.
type AccountResponse struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Scope          string          `json:"scope"`
	WorkerID       *string         `json:"worker_id,omitempty"`
	OpeningBalance decimal.Decimal `json:"opening_balance"`
	Balance        decimal.Decimal `json:"balance"`
	Version        int64           `json:"version"`
	Primary        bool            `json:"primary"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// AccountFromDomain converts a domain account to a response.
func AccountFromDomain(a *domain.BankAccount) *AccountResponse {
	return &AccountResponse{
		ID:             a.ID,
		Name:           a.Name,
		Scope:          string(a.Scope),
		WorkerID:       a.WorkerID,
		OpeningBalance: a.OpeningBalance,
		Balance:        a.Balance,
		Version:        a.Version,
		Primary:        a.Primary,
		CreatedAt:      a.CreatedAt,
		UpdatedAt:      a.UpdatedAt,
	}
}

// AccountsFromDomain converts domain accounts to responses.
func AccountsFromDomain(accounts []*domain.BankAccount) []*AccountResponse {
	result := make([]*AccountResponse, len(accounts))
	for i, a := range accounts {
		result[i] = AccountFromDomain(a)
	}
	return result
}

// EntryResponse represents a ledger entry in API responses.
type EntryResponse struct {
	ID                     string          `json:"id"`
	AccountID              string          `json:"account_id"`
	PayrollID              *string         `json:"payroll_id,omitempty"`
	Direction              string          `json:"direction"`
	Category               string          `json:"category"`
	Description            string          `json:"description,omitempty"`
	Amount                 decimal.Decimal `json:"amount"`
	AccountPreviousBalance decimal.Decimal `json:"account_previous_balance"`
	AccountCurrentBalance  decimal.Decimal `json:"account_current_balance"`
	AccountVersion         int64           `json:"account_version"`
	EntryDate              time.Time       `json:"entry_date"`
	CreatedAt              time.Time       `json:"created_at"`
}

// EntryFromDomain converts a domain entry to a response.
func EntryFromDomain(e *domain.LedgerEntry) *EntryResponse {
	return &EntryResponse{
		ID:                     e.ID,
		AccountID:              e.AccountID,
		PayrollID:              e.PayrollID,
		Direction:              string(e.Direction),
		Category:               e.Category,
		Description:            e.Description,
		Amount:                 e.Amount,
		AccountPreviousBalance: e.AccountPreviousBalance,
		AccountCurrentBalance:  e.AccountCurrentBalance,
		AccountVersion:         e.AccountVersion,
		EntryDate:              e.EntryDate,
		CreatedAt:              e.CreatedAt,
	}
}

// EntriesFromDomain converts domain entries to responses.
func EntriesFromDomain(entries []*domain.LedgerEntry) []*EntryResponse {
	result := make([]*EntryResponse, len(entries))
	for i, e := range entries {
		result[i] = EntryFromDomain(e)
	}
	return result
}

// PayrollResponse represents a payroll record in API responses.
type PayrollResponse struct {
	ID            string          `json:"id"`
	WorkerID      string          `json:"worker_id"`
	PeriodStart   time.Time       `json:"period_start"`
	PeriodEnd     time.Time       `json:"period_end"`
	TotalHours    decimal.Decimal `json:"total_hours"`
	HourlyRate    decimal.Decimal `json:"hourly_rate"`
	GrossPay      decimal.Decimal `json:"gross_pay"`
	Deductions    decimal.Decimal `json:"deductions"`
	NetPay        decimal.Decimal `json:"net_pay"`
	Status        string          `json:"status"`
	BankAccountID *string         `json:"bank_account_id,omitempty"`
	PaidAt        *time.Time      `json:"paid_at,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// PayrollFromDomain converts a domain payroll record to a response.
func PayrollFromDomain(p *domain.PayrollRecord) *PayrollResponse {
	return &PayrollResponse{
		ID:            p.ID,
		WorkerID:      p.WorkerID,
		PeriodStart:   p.PeriodStart,
		PeriodEnd:     p.PeriodEnd,
		TotalHours:    p.TotalHours,
		HourlyRate:    p.HourlyRate,
		GrossPay:      p.GrossPay,
		Deductions:    p.Deductions,
		NetPay:        p.NetPay,
		Status:        string(p.Status),
		BankAccountID: p.BankAccountID,
		PaidAt:        p.PaidAt,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

// PayrollsFromDomain converts domain payroll records to responses.
func PayrollsFromDomain(payrolls []*domain.PayrollRecord) []*PayrollResponse {
	result := make([]*PayrollResponse, len(payrolls))
	for i, p := range payrolls {
		result[i] = PayrollFromDomain(p)
	}
	return result
}

// WorkHourResponse represents a working hour entry in API responses.
type WorkHourResponse struct {
	ID         string          `json:"id"`
	WorkerID   string          `json:"worker_id"`
	ClientID   string          `json:"client_id,omitempty"`
	ProjectID  string          `json:"project_id,omitempty"`
	Date       time.Time       `json:"date"`
	StartTime  time.Time       `json:"start_time"`
	EndTime    time.Time       `json:"end_time"`
	Hours      decimal.Decimal `json:"hours"`
	HourlyRate decimal.Decimal `json:"hourly_rate"`
	Status     string          `json:"status"`
	Notes      string          `json:"notes,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// WorkHourFromDomain converts a domain working hour entry to a response.
func WorkHourFromDomain(w *domain.WorkingHourEntry) *WorkHourResponse {
	return &WorkHourResponse{
		ID:         w.ID,
		WorkerID:   w.WorkerID,
		ClientID:   w.ClientID,
		ProjectID:  w.ProjectID,
		Date:       w.Date,
		StartTime:  w.StartTime,
		EndTime:    w.EndTime,
		Hours:      w.Hours,
		HourlyRate: w.HourlyRate,
		Status:     string(w.Status),
		Notes:      w.Notes,
		CreatedAt:  w.CreatedAt,
		UpdatedAt:  w.UpdatedAt,
	}
}

// WorkHoursFromDomain converts domain working hour entries to responses.
func WorkHoursFromDomain(entries []*domain.WorkingHourEntry) []*WorkHourResponse {
	result := make([]*WorkHourResponse, len(entries))
	for i, w := range entries {
		result[i] = WorkHourFromDomain(w)
	}
	return result
}

// HoursSummaryResponse represents aggregated approved hours in API responses.
type HoursSummaryResponse struct {
	WorkerID    string          `json:"worker_id"`
	PeriodStart time.Time       `json:"period_start"`
	PeriodEnd   time.Time       `json:"period_end"`
	TotalHours  decimal.Decimal `json:"total_hours"`
	AverageRate decimal.Decimal `json:"average_rate"`
}

// HoursSummaryFromUseCase converts an aggregation result to a response.
func HoursSummaryFromUseCase(s *usecase.HoursSummary) *HoursSummaryResponse {
	return &HoursSummaryResponse{
		WorkerID:    s.WorkerID,
		PeriodStart: s.PeriodStart,
		PeriodEnd:   s.PeriodEnd,
		TotalHours:  s.TotalHours,
		AverageRate: s.AverageRate,
	}
}

// NotificationResponse represents a notification in API responses.
type NotificationResponse struct {
	ID          string     `json:"id"`
	RecipientID string     `json:"recipient_id"`
	Title       string     `json:"title"`
	Message     string     `json:"message"`
	Priority    string     `json:"priority"`
	PayrollID   *string    `json:"payroll_id,omitempty"`
	DeliveredAt *time.Time `json:"delivered_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// NotificationFromDomain converts a domain notification to a response.
func NotificationFromDomain(n *domain.Notification) *NotificationResponse {
	return &NotificationResponse{
		ID:          n.ID,
		RecipientID: n.RecipientID,
		Title:       n.Title,
		Message:     n.Message,
		Priority:    string(n.Priority),
		PayrollID:   n.PayrollID,
		DeliveredAt: n.DeliveredAt,
		CreatedAt:   n.CreatedAt,
	}
}

// NotificationsFromDomain converts domain notifications to responses.
func NotificationsFromDomain(notifications []*domain.Notification) []*NotificationResponse {
	result := make([]*NotificationResponse, len(notifications))
	for i, n := range notifications {
		result[i] = NotificationFromDomain(n)
	}
	return result
}

// BalanceResponse represents an account balance in API responses.
type BalanceResponse struct {
	AccountID string          `json:"account_id"`
	Balance   decimal.Decimal `json:"balance"`
	At        *time.Time      `json:"at,omitempty"`
}

// ReconciliationResultResponse represents a single account reconciliation.
type ReconciliationResultResponse struct {
	AccountID         string          `json:"account_id"`
	RecordedBalance   decimal.Decimal `json:"recorded_balance"`
	CalculatedBalance decimal.Decimal `json:"calculated_balance"`
	Difference        decimal.Decimal `json:"difference"`
	IsReconciled      bool            `json:"is_reconciled"`
	LastChecked       time.Time       `json:"last_checked"`
}

// ReconciliationResultFromUseCase converts a reconciliation result to a response.
func ReconciliationResultFromUseCase(r *usecase.ReconciliationResult) *ReconciliationResultResponse {
	return &ReconciliationResultResponse{
		AccountID:         r.AccountID,
		RecordedBalance:   r.RecordedBalance,
		CalculatedBalance: r.CalculatedBalance,
		Difference:        r.Difference,
		IsReconciled:      r.IsReconciled,
		LastChecked:       r.LastChecked,
	}
}

// ReconciliationReportResponse represents a full reconciliation report.
type ReconciliationReportResponse struct {
	TotalAccounts      int                             `json:"total_accounts"`
	ReconciledAccounts int                             `json:"reconciled_accounts"`
	Discrepancies      []*ReconciliationResultResponse `json:"discrepancies"`
	OrphanedPayments   []*EntryResponse                `json:"orphaned_payments"`
	LedgerConsistent   bool                            `json:"ledger_consistent"`
	CheckedAt          time.Time                       `json:"checked_at"`
}

// ReconciliationReportFromUseCase converts a reconciliation report to a response.
func ReconciliationReportFromUseCase(r *usecase.ReconciliationReport) *ReconciliationReportResponse {
	discrepancies := make([]*ReconciliationResultResponse, len(r.Discrepancies))
	for i, d := range r.Discrepancies {
		discrepancies[i] = ReconciliationResultFromUseCase(d)
	}

	return &ReconciliationReportResponse{
		TotalAccounts:      r.TotalAccounts,
		ReconciledAccounts: r.ReconciledAccounts,
		Discrepancies:      discrepancies,
		OrphanedPayments:   EntriesFromDomain(r.OrphanedPayments),
		LedgerConsistent:   r.LedgerConsistent,
		CheckedAt:          r.CheckedAt,
	}
}

// ListAccountsResponse wraps a page of accounts.
type ListAccountsResponse struct {
	Accounts []*AccountResponse `json:"accounts"`
	Total    int64              `json:"total"`
}

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
