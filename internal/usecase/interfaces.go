package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mehedihasanmondol/online-plan-pilot/internal/domain"
)

// AccountRepository defines data access for bank accounts.
type AccountRepository interface {
	Create(ctx context.Context, account *domain.BankAccount) error
	GetByID(ctx context.Context, id string) (*domain.BankAccount, error)
	GetByIDForUpdate(ctx context.Context, tx Transaction, id string) (*domain.BankAccount, error)
	UpdateBalance(ctx context.Context, tx Transaction, id string, balance decimal.Decimal, updatedAt time.Time) error
	GetDerivedBalance(ctx context.Context, id string) (decimal.Decimal, error)
	List(ctx context.Context, limit, offset int) ([]*domain.BankAccount, error)
}

// WorkHourRepository defines data access for working hour entries.
type WorkHourRepository interface {
	Create(ctx context.Context, entry *domain.WorkingHourEntry) error
	GetByID(ctx context.Context, id string) (*domain.WorkingHourEntry, error)
	UpdateStatus(ctx context.Context, id string, from, to domain.WorkHourStatus, updatedAt time.Time) error
	// MarkPaidForPeriod flips the worker's approved entries in the period to
	// paid. Entries whose last status change is after approvedBefore are
	// skipped: they were not part of the payroll's aggregation.
	MarkPaidForPeriod(ctx context.Context, tx Transaction, workerID string, periodStart, periodEnd, approvedBefore time.Time, updatedAt time.Time) error
	List(ctx context.Context, filter WorkHourFilter) ([]*domain.WorkingHourEntry, error)
	SumApproved(ctx context.Context, workerID string, periodStart, periodEnd time.Time) (hours, earnings decimal.Decimal, err error)
}

// WorkHourFilter narrows working hour listings.
type WorkHourFilter struct {
	WorkerID string
	Status   domain.WorkHourStatus
	From     *time.Time
	To       *time.Time
	Limit    int
	Offset   int
}

// PayrollRepository defines data access for payroll records.
type PayrollRepository interface {
	Create(ctx context.Context, tx Transaction, payroll *domain.PayrollRecord) error
	GetByID(ctx context.Context, id string) (*domain.PayrollRecord, error)
	GetByIDForUpdate(ctx context.Context, tx Transaction, id string) (*domain.PayrollRecord, error)
	// UpdateStatus performs a compare-and-set keyed on id and the expected
	// prior status. Returns domain.ErrConcurrencyConflict when no row matched.
	UpdateStatus(ctx context.Context, tx Transaction, id string, from, to domain.PayrollStatus, updatedAt time.Time) error
	// MarkPaid transitions approved -> paid, recording the paying account and
	// timestamp, with the same compare-and-set semantics as UpdateStatus.
	MarkPaid(ctx context.Context, tx Transaction, id, bankAccountID string, paidAt time.Time) error
	HasOverlappingPeriod(ctx context.Context, tx Transaction, workerID string, periodStart, periodEnd time.Time) (bool, error)
	List(ctx context.Context, filter PayrollFilter) ([]*domain.PayrollRecord, error)
}

// PayrollFilter narrows payroll listings.
type PayrollFilter struct {
	WorkerID string
	Status   domain.PayrollStatus
	Limit    int
	Offset   int
}

// EntryRepository defines data access for ledger entries.
type EntryRepository interface {
	Create(ctx context.Context, tx Transaction, entry *domain.LedgerEntry) error
	GetByAccount(ctx context.Context, accountID string, limit, offset int) ([]*domain.LedgerEntry, error)
	GetByPayroll(ctx context.Context, payrollID string) ([]*domain.LedgerEntry, error)
	GetBalanceAtTime(ctx context.Context, accountID string, at time.Time) (decimal.Decimal, error)
}

// LedgerRepository defines data access for ledger-wide operations.
type LedgerRepository interface {
	// CheckConsistency returns the sum of materialized balance movements
	// (balance minus opening balance) across all accounts and the signed sum
	// of all ledger entries. The two must be equal.
	CheckConsistency(ctx context.Context) (totalMovement, totalEntries decimal.Decimal, err error)
	// FindOrphanedSalaryWithdrawals returns salary withdrawals whose linked
	// payroll record is not paid. A non-empty result is a fatal inconsistency.
	FindOrphanedSalaryWithdrawals(ctx context.Context, limit int) ([]*domain.LedgerEntry, error)
}

// NotificationRepository defines data access for notifications.
type NotificationRepository interface {
	Create(ctx context.Context, notification *domain.Notification) error
	GetByID(ctx context.Context, id string) (*domain.Notification, error)
	MarkDelivered(ctx context.Context, id string, deliveredAt time.Time) error
	ListByRecipient(ctx context.Context, recipientID string, limit, offset int) ([]*domain.Notification, error)
}

// OutboxRepository defines data access for outbox events.
type OutboxRepository interface {
	Create(ctx context.Context, tx Transaction, event *domain.OutboxEvent) error
	GetUnpublished(ctx context.Context, limit int) ([]*domain.OutboxEvent, error)
	MarkPublished(ctx context.Context, id string, publishedAt time.Time) error
	GetByAggregate(ctx context.Context, aggregateType, aggregateID string, limit, offset int) ([]*domain.OutboxEvent, error)
	DeletePublished(ctx context.Context, before time.Time) error
}

// AuditRepository defines data access for audit logs.
type AuditRepository interface {
	Create(ctx context.Context, log *domain.AuditLog) error
	CreateTx(ctx context.Context, tx Transaction, log *domain.AuditLog) error
	List(ctx context.Context, filter domain.AuditFilter) ([]*domain.AuditLog, error)
	GetByResourceID(ctx context.Context, resourceType, resourceID string) ([]*domain.AuditLog, error)
}

// Transaction represents a database transaction.
type Transaction interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// TransactionManager handles transaction lifecycle.
type TransactionManager interface {
	Begin(ctx context.Context) (Transaction, error)
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}

// Cache defines caching operations.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// IdempotencyStore handles idempotency key storage.
type IdempotencyStore interface {
	// CheckAndSet atomically checks if key exists, sets if not.
	// Returns (exists, existingValue, error).
	CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error)
	// Update updates an existing key with the final response.
	Update(ctx context.Context, key string, response []byte, ttl time.Duration) error
}
