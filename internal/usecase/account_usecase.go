package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mehedihasanmondol/online-plan-pilot/internal/domain"
	"github.com/mehedihasanmondol/online-plan-pilot/internal/infrastructure/metrics"
)

// AccountUseCase handles bank account business logic, including funding
// deposits, which go through the same locked-append discipline as payments.
type AccountUseCase struct {
	txManager   TransactionManager
	accountRepo AccountRepository
	entryRepo   EntryRepository
	outboxRepo  OutboxRepository
	auditRepo   AuditRepository
	idGen       IDGenerator
	cache       Cache
	metrics     *metrics.Metrics
}

// NewAccountUseCase creates a new AccountUseCase.
func NewAccountUseCase(
	txManager TransactionManager,
	accountRepo AccountRepository,
	entryRepo EntryRepository,
	outboxRepo OutboxRepository,
	auditRepo AuditRepository,
	idGen IDGenerator,
	cache Cache,
	metrics *metrics.Metrics,
) *AccountUseCase {
	return &AccountUseCase{
		txManager:   txManager,
		accountRepo: accountRepo,
		entryRepo:   entryRepo,
		outboxRepo:  outboxRepo,
		auditRepo:   auditRepo,
		idGen:       idGen,
		cache:       cache,
		metrics:     metrics,
	}
}

// CreateAccountInput represents input for creating a bank account.
type CreateAccountInput struct {
	Name           string
	Scope          domain.AccountScope
	WorkerID       *string
	OpeningBalance decimal.Decimal
	Primary        bool
}

// CreateAccount creates a new bank account. The opening balance is immutable
// afterwards; the materialized balance starts equal to it.
func (uc *AccountUseCase) CreateAccount(ctx context.Context, input CreateAccountInput) (*domain.BankAccount, error) {
	if err := domain.ValidateAccountName(input.Name); err != nil {
		return nil, err
	}

	if !input.Scope.IsValid() {
		return nil, domain.ErrInvalidAccountScope
	}

	if input.Scope == domain.AccountScopeWorker && (input.WorkerID == nil || *input.WorkerID == "") {
		return nil, domain.ErrMissingWorker
	}

	if input.OpeningBalance.IsNegative() {
		return nil, domain.ErrInvalidAmount
	}

	now := time.Now().UTC()
	account := &domain.BankAccount{
		ID:             uc.idGen.Generate(),
		Name:           input.Name,
		Scope:          input.Scope,
		WorkerID:       input.WorkerID,
		OpeningBalance: input.OpeningBalance,
		Balance:        input.OpeningBalance,
		Version:        0,
		Primary:        input.Primary,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := uc.accountRepo.Create(ctx, account); err != nil {
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.AccountsCreated.Inc()
	}

	return account, nil
}

// GetAccount retrieves a bank account by ID.
func (uc *AccountUseCase) GetAccount(ctx context.Context, id string) (*domain.BankAccount, error) {
	return uc.accountRepo.GetByID(ctx, id)
}

// ListAccountsInput represents input for listing accounts.
type ListAccountsInput struct {
	Limit  int
	Offset int
}

// ListAccounts lists bank accounts with pagination.
func (uc *AccountUseCase) ListAccounts(ctx context.Context, input ListAccountsInput) ([]*domain.BankAccount, error) {
	limit, offset, err := domain.ValidatePagination(input.Limit, input.Offset)
	if err != nil {
		return nil, err
	}
	return uc.accountRepo.List(ctx, limit, offset)
}

// DepositInput represents input for recording a deposit.
type DepositInput struct {
	AccountID   string
	Amount      decimal.Decimal
	Category    string
	Description string
}

// Deposit appends a deposit ledger entry and moves the materialized balance
// with it in one transaction.
func (uc *AccountUseCase) Deposit(ctx context.Context, input DepositInput) (*domain.LedgerEntry, error) {
	if err := domain.ValidateAmount(input.Amount); err != nil {
		return nil, err
	}

	category := input.Category
	if category == "" {
		category = domain.EntryCategoryFunding
	}

	txCtx, cancel := context.WithTimeout(ctx, DefaultTransactionTimeout)
	defer cancel()

	tx, err := uc.txManager.Begin(txCtx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(txCtx) }()

	account, err := uc.accountRepo.GetByIDForUpdate(txCtx, tx, input.AccountID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	newBalance := account.ApplyDeposit(input.Amount)

	entry := &domain.LedgerEntry{
		ID:                     uc.idGen.Generate(),
		AccountID:              account.ID,
		Direction:              domain.EntryDirectionDeposit,
		Category:               category,
		Description:            input.Description,
		Amount:                 input.Amount,
		EntryDate:              now,
		AccountPreviousBalance: account.Balance,
		AccountCurrentBalance:  newBalance,
		AccountVersion:         account.Version + 1,
		CreatedAt:              now,
	}
	if err := uc.entryRepo.Create(txCtx, tx, entry); err != nil {
		return nil, err
	}

	if err := uc.accountRepo.UpdateBalance(txCtx, tx, account.ID, newBalance, now); err != nil {
		return nil, err
	}

	event := &domain.OutboxEvent{
		ID:            uc.idGen.Generate(),
		AggregateID:   account.ID,
		AggregateType: domain.AggregateTypeAccount,
		EventType:     domain.EventTypeDepositRecorded,
		Payload: map[string]any{
			"account_id": account.ID,
			"entry_id":   entry.ID,
			"amount":     input.Amount.String(),
			"category":   category,
		},
		CreatedAt: now,
		Published: false,
	}
	if err := uc.outboxRepo.Create(txCtx, tx, event); err != nil {
		return nil, err
	}

	if uc.auditRepo != nil {
		auditLog := &domain.AuditLog{
			ID:           uc.idGen.Generate(),
			ActorID:      "system",
			Action:       string(domain.AuditActionAccountDeposit),
			ResourceType: "account",
			ResourceID:   account.ID,
			AfterState:   domain.MarshalState(entry),
			Status:       string(domain.AuditStatusSuccess),
			CreatedAt:    time.Now(),
		}
		if err := uc.auditRepo.CreateTx(txCtx, tx, auditLog); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(txCtx); err != nil {
		return nil, err
	}

	if uc.cache != nil {
		_ = uc.cache.Delete(ctx, balanceCacheKey(account.ID))
	}

	if uc.metrics != nil {
		uc.metrics.DepositsRecorded.Inc()
	}

	return entry, nil
}
