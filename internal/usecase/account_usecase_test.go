package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/mehedihasanmondol/online-plan-pilot/internal/domain"
	"github.com/mehedihasanmondol/online-plan-pilot/internal/usecase"
	"github.com/mehedihasanmondol/online-plan-pilot/internal/usecase/mocks"
)

func newAccountUseCase(accRepo *mocks.MockAccountRepository, entryRepo *mocks.MockEntryRepository, outboxRepo *mocks.MockOutboxRepository, cache *mocks.MockCache) *usecase.AccountUseCase {
	return usecase.NewAccountUseCase(
		mocks.NewMockTransactionManager(),
		accRepo,
		entryRepo,
		outboxRepo,
		mocks.NewMockAuditRepository(),
		mocks.NewMockIDGenerator(),
		cache,
		nil,
	)
}

func TestAccountUseCase_CreateAccount(t *testing.T) {
	workerID := "worker-1"

	tests := []struct {
		name    string
		input   usecase.CreateAccountInput
		wantErr error
	}{
		{
			name: "house account",
			input: usecase.CreateAccountInput{
				Name:           "house main",
				Scope:          domain.AccountScopeHouse,
				OpeningBalance: decimal.NewFromInt(1000),
				Primary:        true,
			},
		},
		{
			name: "worker account",
			input: usecase.CreateAccountInput{
				Name:     "worker savings",
				Scope:    domain.AccountScopeWorker,
				WorkerID: &workerID,
			},
		},
		{
			name: "worker scope without worker",
			input: usecase.CreateAccountInput{
				Name:  "worker savings",
				Scope: domain.AccountScopeWorker,
			},
			wantErr: domain.ErrMissingWorker,
		},
		{
			name: "unknown scope",
			input: usecase.CreateAccountInput{
				Name:  "mystery",
				Scope: domain.AccountScope("petty-cash"),
			},
			wantErr: domain.ErrInvalidAccountScope,
		},
		{
			name: "negative opening balance",
			input: usecase.CreateAccountInput{
				Name:           "house main",
				Scope:          domain.AccountScopeHouse,
				OpeningBalance: decimal.NewFromInt(-100),
			},
			wantErr: domain.ErrInvalidAmount,
		},
		{
			name: "empty name",
			input: usecase.CreateAccountInput{
				Scope: domain.AccountScopeHouse,
			},
			wantErr: domain.ErrInvalidAccountName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			accRepo := mocks.NewMockAccountRepository()
			uc := newAccountUseCase(accRepo, mocks.NewMockEntryRepository(), mocks.NewMockOutboxRepository(), mocks.NewMockCache())

			account, err := uc.CreateAccount(context.Background(), tt.input)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if account.ID == "" {
				t.Error("expected generated id")
			}
			if !account.Balance.Equal(tt.input.OpeningBalance) {
				t.Errorf("expected balance to start at opening balance %s, got %s", tt.input.OpeningBalance, account.Balance)
			}
			if account.Version != 0 {
				t.Errorf("expected version 0, got %d", account.Version)
			}
		})
	}
}

func TestAccountUseCase_GetAccount(t *testing.T) {
	accRepo := mocks.NewMockAccountRepository()
	accRepo.Create(context.Background(), &domain.BankAccount{ID: "acc-1", Name: "house main"})

	uc := newAccountUseCase(accRepo, mocks.NewMockEntryRepository(), mocks.NewMockOutboxRepository(), mocks.NewMockCache())

	t.Run("existing account", func(t *testing.T) {
		account, err := uc.GetAccount(context.Background(), "acc-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if account.ID != "acc-1" {
			t.Errorf("expected acc-1, got %s", account.ID)
		}
	})

	t.Run("missing account", func(t *testing.T) {
		_, err := uc.GetAccount(context.Background(), "missing")
		if !errors.Is(err, domain.ErrAccountNotFound) {
			t.Errorf("expected ErrAccountNotFound, got %v", err)
		}
	})
}

func TestAccountUseCase_ListAccounts(t *testing.T) {
	accRepo := mocks.NewMockAccountRepository()
	accRepo.Create(context.Background(), &domain.BankAccount{ID: "acc-1", Name: "house main"})
	accRepo.Create(context.Background(), &domain.BankAccount{ID: "acc-2", Name: "house reserve"})

	uc := newAccountUseCase(accRepo, mocks.NewMockEntryRepository(), mocks.NewMockOutboxRepository(), mocks.NewMockCache())

	accounts, err := uc.ListAccounts(context.Background(), usecase.ListAccountsInput{Limit: 10})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(accounts) != 2 {
		t.Errorf("expected 2 accounts, got %d", len(accounts))
	}
}

func TestAccountUseCase_Deposit(t *testing.T) {
	accRepo := mocks.NewMockAccountRepository()
	entryRepo := mocks.NewMockEntryRepository()
	outboxRepo := mocks.NewMockOutboxRepository()
	cache := mocks.NewMockCache()

	accRepo.Create(context.Background(), &domain.BankAccount{
		ID:             "acc-1",
		Name:           "house main",
		Scope:          domain.AccountScopeHouse,
		OpeningBalance: decimal.NewFromInt(100),
		Balance:        decimal.NewFromInt(100),
	})
	// Stale cached balance that the deposit must invalidate.
	cache.Set(context.Background(), "balance:acc-1", []byte("100"), 0)

	uc := newAccountUseCase(accRepo, entryRepo, outboxRepo, cache)

	entry, err := uc.Deposit(context.Background(), usecase.DepositInput{
		AccountID:   "acc-1",
		Amount:      decimal.NewFromInt(250),
		Description: "client payment",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if entry.Direction != domain.EntryDirectionDeposit {
		t.Errorf("expected deposit direction, got %s", entry.Direction)
	}
	if entry.Category != domain.EntryCategoryFunding {
		t.Errorf("expected default funding category, got %s", entry.Category)
	}
	if !entry.Amount.Equal(decimal.NewFromInt(250)) {
		t.Errorf("expected amount 250, got %s", entry.Amount)
	}
	if !entry.AccountPreviousBalance.Equal(decimal.NewFromInt(100)) || !entry.AccountCurrentBalance.Equal(decimal.NewFromInt(350)) {
		t.Errorf("expected balance snapshot 100 -> 350, got %s -> %s", entry.AccountPreviousBalance, entry.AccountCurrentBalance)
	}

	account, _ := accRepo.GetByID(context.Background(), "acc-1")
	if !account.Balance.Equal(decimal.NewFromInt(350)) {
		t.Errorf("expected balance 350, got %s", account.Balance)
	}

	events := outboxRepo.Events()
	if len(events) != 1 || events[0].EventType != domain.EventTypeDepositRecorded {
		t.Errorf("expected a single %s event, got %v", domain.EventTypeDepositRecorded, events)
	}

	if cached, _ := cache.Get(context.Background(), "balance:acc-1"); cached != nil {
		t.Errorf("expected cached balance to be invalidated, got %s", cached)
	}
}

func TestAccountUseCase_Deposit_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   usecase.DepositInput
		wantErr error
	}{
		{
			name: "zero amount",
			input: usecase.DepositInput{
				AccountID: "acc-1",
				Amount:    decimal.Zero,
			},
			wantErr: domain.ErrInvalidAmount,
		},
		{
			name: "negative amount",
			input: usecase.DepositInput{
				AccountID: "acc-1",
				Amount:    decimal.NewFromInt(-50),
			},
			wantErr: domain.ErrInvalidAmount,
		},
		{
			name: "amount below minimum",
			input: usecase.DepositInput{
				AccountID: "acc-1",
				Amount:    decimal.RequireFromString("0.001"),
			},
			wantErr: domain.ErrAmountTooSmall,
		},
		{
			name: "amount above maximum",
			input: usecase.DepositInput{
				AccountID: "acc-1",
				Amount:    decimal.RequireFromString("1000000000001"),
			},
			wantErr: domain.ErrAmountTooLarge,
		},
		{
			name: "unknown account",
			input: usecase.DepositInput{
				AccountID: "missing",
				Amount:    decimal.NewFromInt(50),
			},
			wantErr: domain.ErrAccountNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			accRepo := mocks.NewMockAccountRepository()
			accRepo.Create(context.Background(), &domain.BankAccount{
				ID:      "acc-1",
				Balance: decimal.NewFromInt(100),
			})

			uc := newAccountUseCase(accRepo, mocks.NewMockEntryRepository(), mocks.NewMockOutboxRepository(), mocks.NewMockCache())

			_, err := uc.Deposit(context.Background(), tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}
