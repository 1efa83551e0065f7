package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mehedihasanmondol/online-plan-pilot/internal/adapter/http/dto"
	"github.com/mehedihasanmondol/online-plan-pilot/internal/domain"
	"github.com/mehedihasanmondol/online-plan-pilot/internal/usecase"
)

// PayrollService defines the lifecycle behavior needed by PayrollHandler.
type PayrollService interface {
	CreatePayroll(ctx context.Context, input usecase.CreatePayrollInput) (*domain.PayrollRecord, error)
	ApprovePayroll(ctx context.Context, id string) error
	GetPayroll(ctx context.Context, id string) (*domain.PayrollRecord, error)
	ListPayrolls(ctx context.Context, input usecase.ListPayrollsInput) ([]*domain.PayrollRecord, error)
}

// PaymentService executes the payment of an approved payroll record.
type PaymentService interface {
	Pay(ctx context.Context, payrollID, bankAccountID string) error
}

// PayrollHandler handles payroll HTTP requests.
type PayrollHandler struct {
	payrollUC PayrollService
	paymentUC PaymentService
}

// NewPayrollHandler creates a new PayrollHandler.
func NewPayrollHandler(payrollUC PayrollService, paymentUC PaymentService) *PayrollHandler {
	return &PayrollHandler{payrollUC: payrollUC, paymentUC: paymentUC}
}

// Create generates a payroll record from the worker's approved hours.
func (h *PayrollHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreatePayrollRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	payroll, err := h.payrollUC.CreatePayroll(r.Context(), req.ToUseCaseInput())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to create payroll", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.PayrollFromDomain(payroll))
}

// Approve moves a pending payroll record to approved.
func (h *PayrollHandler) Approve(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing payroll ID", "")
		return
	}

	if err := h.payrollUC.ApprovePayroll(r.Context(), id); err != nil {
		writeError(w, mapDomainError(err), "failed to approve payroll", err.Error())
		return
	}

	payroll, err := h.payrollUC.GetPayroll(r.Context(), id)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get payroll", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.PayrollFromDomain(payroll))
}

// Pay withdraws the net pay from the funding account and marks the payroll
// record paid, all in one transaction.
func (h *PayrollHandler) Pay(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing payroll ID", "")
		return
	}

	var req dto.PayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if req.BankAccountID == "" {
		writeError(w, http.StatusBadRequest, "missing bank account ID", "")
		return
	}

	if err := h.paymentUC.Pay(r.Context(), id, req.BankAccountID); err != nil {
		writeError(w, mapDomainError(err), "failed to pay payroll", err.Error())
		return
	}

	payroll, err := h.payrollUC.GetPayroll(r.Context(), id)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get payroll", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.PayrollFromDomain(payroll))
}

// Get retrieves a payroll record by ID.
func (h *PayrollHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing payroll ID", "")
		return
	}

	payroll, err := h.payrollUC.GetPayroll(r.Context(), id)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get payroll", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.PayrollFromDomain(payroll))
}

// List lists payroll records, optionally filtered by worker and status.
func (h *PayrollHandler) List(w http.ResponseWriter, r *http.Request) {
	limit := parseIntQuery(r, "limit", 20)
	offset := parseIntQuery(r, "offset", 0)

	payrolls, err := h.payrollUC.ListPayrolls(r.Context(), usecase.ListPayrollsInput{
		WorkerID: r.URL.Query().Get("worker_id"),
		Status:   domain.PayrollStatus(r.URL.Query().Get("status")),
		Limit:    limit,
		Offset:   offset,
	})
	if err != nil {
		writeError(w, mapDomainError(err), "failed to list payrolls", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.PayrollsFromDomain(payrolls))
}
