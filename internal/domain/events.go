package domain

import "time"

// Event types
const (
	EventTypePayrollCreated  = "payroll.created"
	EventTypePayrollApproved = "payroll.approved"
	EventTypePayrollPaid     = "payroll.paid"
	EventTypeDepositRecorded = "deposit.recorded"
	EventTypeAccountCreated  = "account.created"
)

// Aggregate types
const (
	AggregateTypePayroll = "payroll"
	AggregateTypeAccount = "account"
)

// OutboxEvent represents an event to be published. Rows are written inside
// the transaction that produced them and drained after commit.
type OutboxEvent struct {
	ID            string
	AggregateID   string
	AggregateType string
	EventType     string
	Payload       map[string]any
	CreatedAt     time.Time
	PublishedAt   *time.Time
	Published     bool
}

// PayrollCreatedEvent payload
type PayrollCreatedEvent struct {
	PayrollID   string `json:"payroll_id"`
	WorkerID    string `json:"worker_id"`
	PeriodStart string `json:"period_start"`
	PeriodEnd   string `json:"period_end"`
	NetPay      string `json:"net_pay"`
}

// PayrollApprovedEvent payload
type PayrollApprovedEvent struct {
	PayrollID string `json:"payroll_id"`
	WorkerID  string `json:"worker_id"`
	NetPay    string `json:"net_pay"`
}

// PayrollPaidEvent payload. The dispatcher turns this into the
// payment-completed notification for the worker.
type PayrollPaidEvent struct {
	PayrollID     string `json:"payroll_id"`
	WorkerID      string `json:"worker_id"`
	BankAccountID string `json:"bank_account_id"`
	NetPay        string `json:"net_pay"`
	PeriodStart   string `json:"period_start"`
	PeriodEnd     string `json:"period_end"`
	PaidAt        string `json:"paid_at"`
}

// DepositRecordedEvent payload
type DepositRecordedEvent struct {
	AccountID string `json:"account_id"`
	EntryID   string `json:"entry_id"`
	Amount    string `json:"amount"`
	Category  string `json:"category"`
}

// AccountCreatedEvent payload
type AccountCreatedEvent struct {
	AccountID string `json:"account_id"`
	Name      string `json:"name"`
	Scope     string `json:"scope"`
}
