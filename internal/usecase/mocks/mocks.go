package mocks

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/mehedihasanmondol/online-plan-pilot/internal/domain"
	"github.com/mehedihasanmondol/online-plan-pilot/internal/usecase"
	"github.com/shopspring/decimal"
)

// MockAccountRepository is a mock implementation of AccountRepository.
type MockAccountRepository struct {
	mu       sync.RWMutex
	accounts map[string]*domain.BankAccount

	CreateFunc            func(ctx context.Context, account *domain.BankAccount) error
	GetByIDFunc           func(ctx context.Context, id string) (*domain.BankAccount, error)
	GetByIDForUpdateFunc  func(ctx context.Context, tx usecase.Transaction, id string) (*domain.BankAccount, error)
	UpdateBalanceFunc     func(ctx context.Context, tx usecase.Transaction, id string, balance decimal.Decimal, updatedAt time.Time) error
	GetDerivedBalanceFunc func(ctx context.Context, id string) (decimal.Decimal, error)
	ListFunc              func(ctx context.Context, limit, offset int) ([]*domain.BankAccount, error)
}

func NewMockAccountRepository() *MockAccountRepository {
	return &MockAccountRepository{
		accounts: make(map[string]*domain.BankAccount),
	}
}

func (m *MockAccountRepository) Create(ctx context.Context, account *domain.BankAccount) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, account)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.accounts[account.ID] = account
	return nil
}

func (m *MockAccountRepository) GetByID(ctx context.Context, id string) (*domain.BankAccount, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if acc, ok := m.accounts[id]; ok {
		return acc, nil
	}
	return nil, domain.ErrAccountNotFound
}

func (m *MockAccountRepository) GetByIDForUpdate(ctx context.Context, tx usecase.Transaction, id string) (*domain.BankAccount, error) {
	if m.GetByIDForUpdateFunc != nil {
		return m.GetByIDForUpdateFunc(ctx, tx, id)
	}
	return m.GetByID(ctx, id)
}

func (m *MockAccountRepository) UpdateBalance(ctx context.Context, tx usecase.Transaction, id string, balance decimal.Decimal, updatedAt time.Time) error {
	if m.UpdateBalanceFunc != nil {
		return m.UpdateBalanceFunc(ctx, tx, id, balance, updatedAt)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if acc, ok := m.accounts[id]; ok {
		acc.Balance = balance
		acc.Version++
		acc.UpdatedAt = updatedAt
	}
	return nil
}

func (m *MockAccountRepository) GetDerivedBalance(ctx context.Context, id string) (decimal.Decimal, error) {
	if m.GetDerivedBalanceFunc != nil {
		return m.GetDerivedBalanceFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if acc, ok := m.accounts[id]; ok {
		return acc.Balance, nil
	}
	return decimal.Zero, domain.ErrAccountNotFound
}

func (m *MockAccountRepository) List(ctx context.Context, limit, offset int) ([]*domain.BankAccount, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, limit, offset)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var accounts []*domain.BankAccount
	for _, acc := range m.accounts {
		accounts = append(accounts, acc)
	}
	return accounts, nil
}

// MockWorkHourRepository is a mock implementation of WorkHourRepository.
type MockWorkHourRepository struct {
	mu      sync.RWMutex
	entries map[string]*domain.WorkingHourEntry

	CreateFunc            func(ctx context.Context, entry *domain.WorkingHourEntry) error
	GetByIDFunc           func(ctx context.Context, id string) (*domain.WorkingHourEntry, error)
	UpdateStatusFunc      func(ctx context.Context, id string, from, to domain.WorkHourStatus, updatedAt time.Time) error
	MarkPaidForPeriodFunc func(ctx context.Context, tx usecase.Transaction, workerID string, periodStart, periodEnd, approvedBefore time.Time, updatedAt time.Time) error
	ListFunc              func(ctx context.Context, filter usecase.WorkHourFilter) ([]*domain.WorkingHourEntry, error)
	SumApprovedFunc       func(ctx context.Context, workerID string, periodStart, periodEnd time.Time) (decimal.Decimal, decimal.Decimal, error)
}

func NewMockWorkHourRepository() *MockWorkHourRepository {
	return &MockWorkHourRepository{
		entries: make(map[string]*domain.WorkingHourEntry),
	}
}

func (m *MockWorkHourRepository) Create(ctx context.Context, entry *domain.WorkingHourEntry) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, entry)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[entry.ID] = entry
	return nil
}

func (m *MockWorkHourRepository) GetByID(ctx context.Context, id string) (*domain.WorkingHourEntry, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if e, ok := m.entries[id]; ok {
		return e, nil
	}
	return nil, domain.ErrWorkHourNotFound
}

func (m *MockWorkHourRepository) UpdateStatus(ctx context.Context, id string, from, to domain.WorkHourStatus, updatedAt time.Time) error {
	if m.UpdateStatusFunc != nil {
		return m.UpdateStatusFunc(ctx, id, from, to, updatedAt)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.entries[id]
	if !ok {
		return domain.ErrWorkHourNotFound
	}
	if e.Status != from {
		return domain.ErrConcurrencyConflict
	}
	e.Status = to
	e.UpdatedAt = updatedAt
	return nil
}

func (m *MockWorkHourRepository) MarkPaidForPeriod(ctx context.Context, tx usecase.Transaction, workerID string, periodStart, periodEnd, approvedBefore time.Time, updatedAt time.Time) error {
	if m.MarkPaidForPeriodFunc != nil {
		return m.MarkPaidForPeriodFunc(ctx, tx, workerID, periodStart, periodEnd, approvedBefore, updatedAt)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, e := range m.entries {
		if e.WorkerID != workerID || e.Status != domain.WorkHourStatusApproved {
			continue
		}
		if e.Date.Before(periodStart) || e.Date.After(periodEnd) {
			continue
		}
		if e.UpdatedAt.After(approvedBefore) {
			continue
		}
		e.Status = domain.WorkHourStatusPaid
		e.UpdatedAt = updatedAt
	}
	return nil
}

func (m *MockWorkHourRepository) List(ctx context.Context, filter usecase.WorkHourFilter) ([]*domain.WorkingHourEntry, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var entries []*domain.WorkingHourEntry
	for _, e := range m.entries {
		if filter.WorkerID != "" && e.WorkerID != filter.WorkerID {
			continue
		}
		if filter.Status != "" && e.Status != filter.Status {
			continue
		}
		entries = append(entries, e)
	}
	return entries, nil
}

func (m *MockWorkHourRepository) SumApproved(ctx context.Context, workerID string, periodStart, periodEnd time.Time) (decimal.Decimal, decimal.Decimal, error) {
	if m.SumApprovedFunc != nil {
		return m.SumApprovedFunc(ctx, workerID, periodStart, periodEnd)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	hours := decimal.Zero
	earnings := decimal.Zero
	for _, e := range m.entries {
		if e.WorkerID != workerID || e.Status != domain.WorkHourStatusApproved {
			continue
		}
		if e.Date.Before(periodStart) || e.Date.After(periodEnd) {
			continue
		}
		hours = hours.Add(e.Hours)
		earnings = earnings.Add(e.Hours.Mul(e.HourlyRate))
	}
	return hours, earnings, nil
}

// MockPayrollRepository is a mock implementation of PayrollRepository.
type MockPayrollRepository struct {
	mu       sync.RWMutex
	payrolls map[string]*domain.PayrollRecord

	CreateFunc               func(ctx context.Context, tx usecase.Transaction, payroll *domain.PayrollRecord) error
	GetByIDFunc              func(ctx context.Context, id string) (*domain.PayrollRecord, error)
	GetByIDForUpdateFunc     func(ctx context.Context, tx usecase.Transaction, id string) (*domain.PayrollRecord, error)
	UpdateStatusFunc         func(ctx context.Context, tx usecase.Transaction, id string, from, to domain.PayrollStatus, updatedAt time.Time) error
	MarkPaidFunc             func(ctx context.Context, tx usecase.Transaction, id, bankAccountID string, paidAt time.Time) error
	HasOverlappingPeriodFunc func(ctx context.Context, tx usecase.Transaction, workerID string, periodStart, periodEnd time.Time) (bool, error)
	ListFunc                 func(ctx context.Context, filter usecase.PayrollFilter) ([]*domain.PayrollRecord, error)
}

func NewMockPayrollRepository() *MockPayrollRepository {
	return &MockPayrollRepository{
		payrolls: make(map[string]*domain.PayrollRecord),
	}
}

func (m *MockPayrollRepository) Create(ctx context.Context, tx usecase.Transaction, payroll *domain.PayrollRecord) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, tx, payroll)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.payrolls[payroll.ID] = payroll
	return nil
}

func (m *MockPayrollRepository) GetByID(ctx context.Context, id string) (*domain.PayrollRecord, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if p, ok := m.payrolls[id]; ok {
		return p, nil
	}
	return nil, domain.ErrPayrollNotFound
}

func (m *MockPayrollRepository) GetByIDForUpdate(ctx context.Context, tx usecase.Transaction, id string) (*domain.PayrollRecord, error) {
	if m.GetByIDForUpdateFunc != nil {
		return m.GetByIDForUpdateFunc(ctx, tx, id)
	}
	return m.GetByID(ctx, id)
}

func (m *MockPayrollRepository) UpdateStatus(ctx context.Context, tx usecase.Transaction, id string, from, to domain.PayrollStatus, updatedAt time.Time) error {
	if m.UpdateStatusFunc != nil {
		return m.UpdateStatusFunc(ctx, tx, id, from, to, updatedAt)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.payrolls[id]
	if !ok {
		return domain.ErrPayrollNotFound
	}
	if p.Status != from {
		return domain.ErrConcurrencyConflict
	}
	p.Status = to
	p.UpdatedAt = updatedAt
	return nil
}

func (m *MockPayrollRepository) MarkPaid(ctx context.Context, tx usecase.Transaction, id, bankAccountID string, paidAt time.Time) error {
	if m.MarkPaidFunc != nil {
		return m.MarkPaidFunc(ctx, tx, id, bankAccountID, paidAt)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.payrolls[id]
	if !ok {
		return domain.ErrPayrollNotFound
	}
	if p.Status != domain.PayrollStatusApproved {
		return domain.ErrConcurrencyConflict
	}
	p.Status = domain.PayrollStatusPaid
	p.BankAccountID = &bankAccountID
	p.PaidAt = &paidAt
	p.UpdatedAt = paidAt
	return nil
}

func (m *MockPayrollRepository) HasOverlappingPeriod(ctx context.Context, tx usecase.Transaction, workerID string, periodStart, periodEnd time.Time) (bool, error) {
	if m.HasOverlappingPeriodFunc != nil {
		return m.HasOverlappingPeriodFunc(ctx, tx, workerID, periodStart, periodEnd)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, p := range m.payrolls {
		if p.WorkerID != workerID {
			continue
		}
		if !periodEnd.Before(p.PeriodStart) && !periodStart.After(p.PeriodEnd) {
			return true, nil
		}
	}
	return false, nil
}

func (m *MockPayrollRepository) List(ctx context.Context, filter usecase.PayrollFilter) ([]*domain.PayrollRecord, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var payrolls []*domain.PayrollRecord
	for _, p := range m.payrolls {
		if filter.WorkerID != "" && p.WorkerID != filter.WorkerID {
			continue
		}
		if filter.Status != "" && p.Status != filter.Status {
			continue
		}
		payrolls = append(payrolls, p)
	}
	return payrolls, nil
}

// MockEntryRepository is a mock implementation of EntryRepository.
type MockEntryRepository struct {
	mu      sync.RWMutex
	entries map[string]*domain.LedgerEntry

	CreateFunc           func(ctx context.Context, tx usecase.Transaction, entry *domain.LedgerEntry) error
	GetByAccountFunc     func(ctx context.Context, accountID string, limit, offset int) ([]*domain.LedgerEntry, error)
	GetByPayrollFunc     func(ctx context.Context, payrollID string) ([]*domain.LedgerEntry, error)
	GetBalanceAtTimeFunc func(ctx context.Context, accountID string, at time.Time) (decimal.Decimal, error)
}

func NewMockEntryRepository() *MockEntryRepository {
	return &MockEntryRepository{
		entries: make(map[string]*domain.LedgerEntry),
	}
}

func (m *MockEntryRepository) Create(ctx context.Context, tx usecase.Transaction, entry *domain.LedgerEntry) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, tx, entry)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[entry.ID] = entry
	return nil
}

func (m *MockEntryRepository) GetByAccount(ctx context.Context, accountID string, limit, offset int) ([]*domain.LedgerEntry, error) {
	if m.GetByAccountFunc != nil {
		return m.GetByAccountFunc(ctx, accountID, limit, offset)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var entries []*domain.LedgerEntry
	for _, e := range m.entries {
		if e.AccountID == accountID {
			entries = append(entries, e)
		}
	}
	return entries, nil
}

func (m *MockEntryRepository) GetByPayroll(ctx context.Context, payrollID string) ([]*domain.LedgerEntry, error) {
	if m.GetByPayrollFunc != nil {
		return m.GetByPayrollFunc(ctx, payrollID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var entries []*domain.LedgerEntry
	for _, e := range m.entries {
		if e.PayrollID != nil && *e.PayrollID == payrollID {
			entries = append(entries, e)
		}
	}
	return entries, nil
}

func (m *MockEntryRepository) GetBalanceAtTime(ctx context.Context, accountID string, at time.Time) (decimal.Decimal, error) {
	if m.GetBalanceAtTimeFunc != nil {
		return m.GetBalanceAtTimeFunc(ctx, accountID, at)
	}
	return decimal.Zero, nil
}

// All returns every stored entry. Test helper.
func (m *MockEntryRepository) All() []*domain.LedgerEntry {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var entries []*domain.LedgerEntry
	for _, e := range m.entries {
		entries = append(entries, e)
	}
	return entries
}

// MockLedgerRepository is a mock implementation of LedgerRepository.
type MockLedgerRepository struct {
	CheckConsistencyFunc              func(ctx context.Context) (decimal.Decimal, decimal.Decimal, error)
	FindOrphanedSalaryWithdrawalsFunc func(ctx context.Context, limit int) ([]*domain.LedgerEntry, error)
}

func NewMockLedgerRepository() *MockLedgerRepository {
	return &MockLedgerRepository{}
}

func (m *MockLedgerRepository) CheckConsistency(ctx context.Context) (decimal.Decimal, decimal.Decimal, error) {
	if m.CheckConsistencyFunc != nil {
		return m.CheckConsistencyFunc(ctx)
	}
	return decimal.Zero, decimal.Zero, nil
}

func (m *MockLedgerRepository) FindOrphanedSalaryWithdrawals(ctx context.Context, limit int) ([]*domain.LedgerEntry, error) {
	if m.FindOrphanedSalaryWithdrawalsFunc != nil {
		return m.FindOrphanedSalaryWithdrawalsFunc(ctx, limit)
	}
	return nil, nil
}

// MockNotificationRepository is a mock implementation of NotificationRepository.
type MockNotificationRepository struct {
	mu            sync.RWMutex
	notifications map[string]*domain.Notification

	CreateFunc          func(ctx context.Context, notification *domain.Notification) error
	GetByIDFunc         func(ctx context.Context, id string) (*domain.Notification, error)
	MarkDeliveredFunc   func(ctx context.Context, id string, deliveredAt time.Time) error
	ListByRecipientFunc func(ctx context.Context, recipientID string, limit, offset int) ([]*domain.Notification, error)
}

func NewMockNotificationRepository() *MockNotificationRepository {
	return &MockNotificationRepository{
		notifications: make(map[string]*domain.Notification),
	}
}

func (m *MockNotificationRepository) Create(ctx context.Context, notification *domain.Notification) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, notification)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.notifications[notification.ID] = notification
	return nil
}

func (m *MockNotificationRepository) GetByID(ctx context.Context, id string) (*domain.Notification, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if n, ok := m.notifications[id]; ok {
		return n, nil
	}
	return nil, domain.ErrNotificationNotFound
}

func (m *MockNotificationRepository) MarkDelivered(ctx context.Context, id string, deliveredAt time.Time) error {
	if m.MarkDeliveredFunc != nil {
		return m.MarkDeliveredFunc(ctx, id, deliveredAt)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if n, ok := m.notifications[id]; ok {
		n.DeliveredAt = &deliveredAt
		return nil
	}
	return domain.ErrNotificationNotFound
}

func (m *MockNotificationRepository) ListByRecipient(ctx context.Context, recipientID string, limit, offset int) ([]*domain.Notification, error) {
	if m.ListByRecipientFunc != nil {
		return m.ListByRecipientFunc(ctx, recipientID, limit, offset)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var notifications []*domain.Notification
	for _, n := range m.notifications {
		if n.RecipientID == recipientID {
			notifications = append(notifications, n)
		}
	}
	return notifications, nil
}

// MockOutboxRepository is a mock implementation of OutboxRepository.
type MockOutboxRepository struct {
	mu     sync.RWMutex
	events map[string]*domain.OutboxEvent

	CreateFunc          func(ctx context.Context, tx usecase.Transaction, event *domain.OutboxEvent) error
	GetUnpublishedFunc  func(ctx context.Context, limit int) ([]*domain.OutboxEvent, error)
	MarkPublishedFunc   func(ctx context.Context, id string, publishedAt time.Time) error
	GetByAggregateFunc  func(ctx context.Context, aggregateType, aggregateID string, limit, offset int) ([]*domain.OutboxEvent, error)
	DeletePublishedFunc func(ctx context.Context, before time.Time) error
}

func NewMockOutboxRepository() *MockOutboxRepository {
	return &MockOutboxRepository{
		events: make(map[string]*domain.OutboxEvent),
	}
}

func (m *MockOutboxRepository) Create(ctx context.Context, tx usecase.Transaction, event *domain.OutboxEvent) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, tx, event)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events[event.ID] = event
	return nil
}

func (m *MockOutboxRepository) GetUnpublished(ctx context.Context, limit int) ([]*domain.OutboxEvent, error) {
	if m.GetUnpublishedFunc != nil {
		return m.GetUnpublishedFunc(ctx, limit)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var events []*domain.OutboxEvent
	for _, e := range m.events {
		if !e.Published {
			events = append(events, e)
		}
		if len(events) >= limit {
			break
		}
	}
	return events, nil
}

func (m *MockOutboxRepository) MarkPublished(ctx context.Context, id string, publishedAt time.Time) error {
	if m.MarkPublishedFunc != nil {
		return m.MarkPublishedFunc(ctx, id, publishedAt)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if e, ok := m.events[id]; ok {
		e.Published = true
		e.PublishedAt = &publishedAt
	}
	return nil
}

func (m *MockOutboxRepository) GetByAggregate(ctx context.Context, aggregateType, aggregateID string, limit, offset int) ([]*domain.OutboxEvent, error) {
	if m.GetByAggregateFunc != nil {
		return m.GetByAggregateFunc(ctx, aggregateType, aggregateID, limit, offset)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var events []*domain.OutboxEvent
	for _, e := range m.events {
		if e.AggregateType == aggregateType && e.AggregateID == aggregateID {
			events = append(events, e)
		}
	}
	return events, nil
}

func (m *MockOutboxRepository) DeletePublished(ctx context.Context, before time.Time) error {
	if m.DeletePublishedFunc != nil {
		return m.DeletePublishedFunc(ctx, before)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, e := range m.events {
		if e.Published && e.PublishedAt != nil && e.PublishedAt.Before(before) {
			delete(m.events, id)
		}
	}
	return nil
}

// Events returns every stored event. Test helper.
func (m *MockOutboxRepository) Events() []*domain.OutboxEvent {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var events []*domain.OutboxEvent
	for _, e := range m.events {
		events = append(events, e)
	}
	return events
}

// MockAuditRepository is a mock implementation of AuditRepository.
type MockAuditRepository struct {
	mu   sync.RWMutex
	logs []*domain.AuditLog

	CreateFunc   func(ctx context.Context, log *domain.AuditLog) error
	CreateTxFunc func(ctx context.Context, tx usecase.Transaction, log *domain.AuditLog) error
}

func NewMockAuditRepository() *MockAuditRepository {
	return &MockAuditRepository{}
}

func (m *MockAuditRepository) Create(ctx context.Context, log *domain.AuditLog) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, log)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.logs = append(m.logs, log)
	return nil
}

func (m *MockAuditRepository) CreateTx(ctx context.Context, tx usecase.Transaction, log *domain.AuditLog) error {
	if m.CreateTxFunc != nil {
		return m.CreateTxFunc(ctx, tx, log)
	}
	return m.Create(ctx, log)
}

func (m *MockAuditRepository) List(ctx context.Context, filter domain.AuditFilter) ([]*domain.AuditLog, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]*domain.AuditLog(nil), m.logs...), nil
}

func (m *MockAuditRepository) GetByResourceID(ctx context.Context, resourceType, resourceID string) ([]*domain.AuditLog, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var logs []*domain.AuditLog
	for _, l := range m.logs {
		if l.ResourceType == resourceType && l.ResourceID == resourceID {
			logs = append(logs, l)
		}
	}
	return logs, nil
}

// MockTransactionManager is a mock implementation of TransactionManager.
type MockTransactionManager struct {
	BeginFunc func(ctx context.Context) (usecase.Transaction, error)
}

func NewMockTransactionManager() *MockTransactionManager {
	return &MockTransactionManager{}
}

func (m *MockTransactionManager) Begin(ctx context.Context) (usecase.Transaction, error) {
	if m.BeginFunc != nil {
		return m.BeginFunc(ctx)
	}
	return &MockTransaction{}, nil
}

// MockTransaction is a mock implementation of Transaction.
type MockTransaction struct {
	CommitFunc   func(ctx context.Context) error
	RollbackFunc func(ctx context.Context) error
}

func (m *MockTransaction) Commit(ctx context.Context) error {
	if m.CommitFunc != nil {
		return m.CommitFunc(ctx)
	}
	return nil
}

func (m *MockTransaction) Rollback(ctx context.Context) error {
	if m.RollbackFunc != nil {
		return m.RollbackFunc(ctx)
	}
	return nil
}

// MockIDGenerator is a mock implementation of IDGenerator.
type MockIDGenerator struct {
	GenerateFunc func() string
	counter      int
	mu           sync.Mutex
}

func NewMockIDGenerator() *MockIDGenerator {
	return &MockIDGenerator{}
}

func (m *MockIDGenerator) Generate() string {
	if m.GenerateFunc != nil {
		return m.GenerateFunc()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counter++
	return fmt.Sprintf("mock-id-%d", m.counter)
}

// MockCache is a mock implementation of Cache.
type MockCache struct {
	mu   sync.RWMutex
	data map[string][]byte

	GetFunc    func(ctx context.Context, key string) ([]byte, error)
	SetFunc    func(ctx context.Context, key string, value []byte, ttl time.Duration) error
	DeleteFunc func(ctx context.Context, key string) error
}

func NewMockCache() *MockCache {
	return &MockCache{
		data: make(map[string][]byte),
	}
}

func (m *MockCache) Get(ctx context.Context, key string) ([]byte, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, key)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if v, ok := m.data[key]; ok {
		return v, nil
	}
	return nil, nil
}

func (m *MockCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if m.SetFunc != nil {
		return m.SetFunc(ctx, key, value, ttl)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

func (m *MockCache) Delete(ctx context.Context, key string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, key)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

// MockIdempotencyStore is a mock implementation of IdempotencyStore.
type MockIdempotencyStore struct {
	mu   sync.RWMutex
	data map[string][]byte

	CheckAndSetFunc func(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error)
	UpdateFunc      func(ctx context.Context, key string, response []byte, ttl time.Duration) error
}

func NewMockIdempotencyStore() *MockIdempotencyStore {
	return &MockIdempotencyStore{
		data: make(map[string][]byte),
	}
}

func (m *MockIdempotencyStore) CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error) {
	if m.CheckAndSetFunc != nil {
		return m.CheckAndSetFunc(ctx, key, response, ttl)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if existing, ok := m.data[key]; ok {
		return true, existing, nil
	}
	if response != nil {
		m.data[key] = response
	} else {
		m.data[key] = []byte("processing")
	}
	return false, nil, nil
}

func (m *MockIdempotencyStore) Update(ctx context.Context, key string, response []byte, ttl time.Duration) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, key, response, ttl)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = response
	return nil
}
