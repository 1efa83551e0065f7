package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/mehedihasanmondol/online-plan-pilot/internal/adapter/http/dto"
	"github.com/mehedihasanmondol/online-plan-pilot/internal/domain"
	"github.com/mehedihasanmondol/online-plan-pilot/internal/usecase"
)

type accountServiceStub struct {
	createFn  func(ctx context.Context, input usecase.CreateAccountInput) (*domain.BankAccount, error)
	getFn     func(ctx context.Context, id string) (*domain.BankAccount, error)
	listFn    func(ctx context.Context, input usecase.ListAccountsInput) ([]*domain.BankAccount, error)
	depositFn func(ctx context.Context, input usecase.DepositInput) (*domain.LedgerEntry, error)
}

func (s *accountServiceStub) CreateAccount(ctx context.Context, input usecase.CreateAccountInput) (*domain.BankAccount, error) {
	return s.createFn(ctx, input)
}

func (s *accountServiceStub) GetAccount(ctx context.Context, id string) (*domain.BankAccount, error) {
	return s.getFn(ctx, id)
}

func (s *accountServiceStub) ListAccounts(ctx context.Context, input usecase.ListAccountsInput) ([]*domain.BankAccount, error) {
	return s.listFn(ctx, input)
}

func (s *accountServiceStub) Deposit(ctx context.Context, input usecase.DepositInput) (*domain.LedgerEntry, error) {
	return s.depositFn(ctx, input)
}

func TestAccountHandler_Create_Success(t *testing.T) {
	account := &domain.BankAccount{
		ID:             "acc-1",
		Name:           "Payroll Float",
		Scope:          domain.AccountScopeHouse,
		OpeningBalance: decimal.RequireFromString("1000"),
		Balance:        decimal.RequireFromString("1000"),
	}

	var captured usecase.CreateAccountInput
	handler := NewAccountHandler(&accountServiceStub{
		createFn: func(ctx context.Context, input usecase.CreateAccountInput) (*domain.BankAccount, error) {
			captured = input
			return account, nil
		},
	})

	body, _ := json.Marshal(dto.CreateAccountRequest{
		Name:           "Payroll Float",
		Scope:          "house",
		OpeningBalance: decimal.RequireFromString("1000"),
	})

	req := httptest.NewRequest(http.MethodPost, "/accounts", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.Create(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	if captured.Name != "Payroll Float" || captured.Scope != domain.AccountScopeHouse {
		t.Fatalf("expected input to match request, got %+v", captured)
	}
	if !captured.OpeningBalance.Equal(decimal.RequireFromString("1000")) {
		t.Fatalf("opening balance = %s", captured.OpeningBalance)
	}

	var resp dto.AccountResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.ID != "acc-1" {
		t.Fatalf("expected account ID acc-1, got %s", resp.ID)
	}
}

func TestAccountHandler_Create_InvalidJSON(t *testing.T) {
	handler := NewAccountHandler(&accountServiceStub{
		createFn: func(ctx context.Context, input usecase.CreateAccountInput) (*domain.BankAccount, error) {
			t.Fatal("CreateAccount should not be called for invalid payload")
			return nil, nil
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/accounts", bytes.NewBufferString("{invalid json"))
	rec := httptest.NewRecorder()

	handler.Create(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAccountHandler_Create_ServiceError(t *testing.T) {
	handler := NewAccountHandler(&accountServiceStub{
		createFn: func(ctx context.Context, input usecase.CreateAccountInput) (*domain.BankAccount, error) {
			return nil, errors.New("db error")
		},
	})

	body, _ := json.Marshal(dto.CreateAccountRequest{Name: "test", Scope: "house"})
	req := httptest.NewRequest(http.MethodPost, "/accounts", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.Create(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
}

func TestAccountHandler_Get(t *testing.T) {
	account := &domain.BankAccount{ID: "acc-1", Name: "test"}
	handler := NewAccountHandler(&accountServiceStub{
		getFn: func(ctx context.Context, id string) (*domain.BankAccount, error) {
			if id != "acc-1" {
				t.Fatalf("expected id acc-1, got %s", id)
			}
			return account, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/accounts/acc-1", nil)
	req = setChiURLParam(req, "id", "acc-1")
	rec := httptest.NewRecorder()

	handler.Get(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAccountHandler_Get_NotFound(t *testing.T) {
	handler := NewAccountHandler(&accountServiceStub{
		getFn: func(ctx context.Context, id string) (*domain.BankAccount, error) {
			return nil, domain.ErrAccountNotFound
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/accounts/acc-1", nil)
	req = setChiURLParam(req, "id", "acc-1")
	rec := httptest.NewRecorder()

	handler.Get(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestAccountHandler_List(t *testing.T) {
	handler := NewAccountHandler(&accountServiceStub{
		listFn: func(ctx context.Context, input usecase.ListAccountsInput) ([]*domain.BankAccount, error) {
			if input.Limit != 5 || input.Offset != 2 {
				t.Fatalf("expected limit=5 offset=2, got %+v", input)
			}
			return []*domain.BankAccount{{ID: "acc-1"}, {ID: "acc-2"}}, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/accounts?limit=5&offset=2", nil)
	rec := httptest.NewRecorder()

	handler.List(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp dto.ListAccountsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp.Accounts) != 2 {
		t.Fatalf("expected 2 accounts, got %d", len(resp.Accounts))
	}
}

func TestAccountHandler_Deposit_Success(t *testing.T) {
	entry := &domain.LedgerEntry{
		ID:        "entry-1",
		AccountID: "acc-1",
		Direction: domain.EntryDirectionDeposit,
		Category:  domain.EntryCategoryFunding,
		Amount:    decimal.RequireFromString("250"),
	}

	var captured usecase.DepositInput
	handler := NewAccountHandler(&accountServiceStub{
		depositFn: func(ctx context.Context, input usecase.DepositInput) (*domain.LedgerEntry, error) {
			captured = input
			return entry, nil
		},
	})

	body, _ := json.Marshal(dto.DepositRequest{
		Amount:   decimal.RequireFromString("250"),
		Category: "funding",
	})

	req := httptest.NewRequest(http.MethodPost, "/accounts/acc-1/deposits", bytes.NewReader(body))
	req = setChiURLParam(req, "id", "acc-1")
	rec := httptest.NewRecorder()

	handler.Deposit(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	if captured.AccountID != "acc-1" || !captured.Amount.Equal(decimal.RequireFromString("250")) {
		t.Fatalf("expected input to match request, got %+v", captured)
	}
}

func TestAccountHandler_Deposit_InvalidAmount(t *testing.T) {
	handler := NewAccountHandler(&accountServiceStub{
		depositFn: func(ctx context.Context, input usecase.DepositInput) (*domain.LedgerEntry, error) {
			return nil, domain.ErrInvalidAmount
		},
	})

	body, _ := json.Marshal(dto.DepositRequest{Amount: decimal.Zero})
	req := httptest.NewRequest(http.MethodPost, "/accounts/acc-1/deposits", bytes.NewReader(body))
	req = setChiURLParam(req, "id", "acc-1")
	rec := httptest.NewRecorder()

	handler.Deposit(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func setChiURLParam(r *http.Request, key, value string) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, &chi.Context{
		URLParams: chi.RouteParams{
			Keys:   []string{key},
			Values: []string{value},
		},
	}))
}
