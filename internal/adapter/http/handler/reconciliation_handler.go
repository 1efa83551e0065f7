package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mehedihasanmondol/online-plan-pilot/internal/adapter/http/dto"
	"github.com/mehedihasanmondol/online-plan-pilot/internal/usecase"
)

// ReconciliationHandler handles reconciliation HTTP requests.
type ReconciliationHandler struct {
	reconciliationUC *usecase.ReconciliationUseCase
}

// NewReconciliationHandler creates a new ReconciliationHandler.
func NewReconciliationHandler(reconciliationUC *usecase.ReconciliationUseCase) *ReconciliationHandler {
	return &ReconciliationHandler{reconciliationUC: reconciliationUC}
}

// Report generates a full reconciliation report: per-account drift, orphaned
// salary withdrawals and the global consistency check.
func (h *ReconciliationHandler) Report(w http.ResponseWriter, r *http.Request) {
	report, err := h.reconciliationUC.GenerateReconciliationReport(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to generate report", err.Error())
		return
	}

	status := http.StatusOK
	if !report.LedgerConsistent {
		status = http.StatusConflict
	}

	writeJSON(w, status, dto.ReconciliationReportFromUseCase(report))
}

// ReconcileAccount compares one account's materialized balance against the
// value derived from its entries.
func (h *ReconciliationHandler) ReconcileAccount(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing account ID", "")
		return
	}

	result, err := h.reconciliationUC.ReconcileAccount(r.Context(), id)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to reconcile account", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ReconciliationResultFromUseCase(result))
}

// OrphanedPayments lists salary withdrawals whose payroll record is missing
// or not paid.
func (h *ReconciliationHandler) OrphanedPayments(w http.ResponseWriter, r *http.Request) {
	orphans, err := h.reconciliationUC.FindOrphanedPayments(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to find orphaned payments", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.EntriesFromDomain(orphans))
}
