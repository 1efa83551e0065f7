package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/mehedihasanmondol/online-plan-pilot/internal/adapter/http/dto"
	"github.com/mehedihasanmondol/online-plan-pilot/internal/domain"
	"github.com/mehedihasanmondol/online-plan-pilot/internal/usecase"
)

// WorkHourService defines the behavior needed by WorkHourHandler.
type WorkHourService interface {
	CreateWorkHour(ctx context.Context, input usecase.CreateWorkHourInput) (*domain.WorkingHourEntry, error)
	ApproveWorkHour(ctx context.Context, id string) error
	RejectWorkHour(ctx context.Context, id string) error
	GetWorkHour(ctx context.Context, id string) (*domain.WorkingHourEntry, error)
	ListWorkHours(ctx context.Context, input usecase.ListWorkHoursInput) ([]*domain.WorkingHourEntry, error)
	AggregateApprovedHours(ctx context.Context, workerID string, periodStart, periodEnd time.Time) (*usecase.HoursSummary, error)
}

// WorkHourHandler handles working hour HTTP requests.
type WorkHourHandler struct {
	workHourUC WorkHourService
}

// NewWorkHourHandler creates a new WorkHourHandler.
func NewWorkHourHandler(workHourUC WorkHourService) *WorkHourHandler {
	return &WorkHourHandler{workHourUC: workHourUC}
}

// Create records a new working hour entry in pending status.
func (h *WorkHourHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateWorkHourRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	entry, err := h.workHourUC.CreateWorkHour(r.Context(), req.ToUseCaseInput())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to create work hour", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.WorkHourFromDomain(entry))
}

// Approve moves a pending entry to approved, making it payroll-eligible.
func (h *WorkHourHandler) Approve(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.workHourUC.ApproveWorkHour)
}

// Reject moves a pending entry to rejected.
func (h *WorkHourHandler) Reject(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.workHourUC.RejectWorkHour)
}

func (h *WorkHourHandler) transition(w http.ResponseWriter, r *http.Request, fn func(context.Context, string) error) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing work hour ID", "")
		return
	}

	if err := fn(r.Context(), id); err != nil {
		writeError(w, mapDomainError(err), "failed to update work hour", err.Error())
		return
	}

	entry, err := h.workHourUC.GetWorkHour(r.Context(), id)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get work hour", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.WorkHourFromDomain(entry))
}

// Get retrieves a working hour entry by ID.
func (h *WorkHourHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing work hour ID", "")
		return
	}

	entry, err := h.workHourUC.GetWorkHour(r.Context(), id)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get work hour", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.WorkHourFromDomain(entry))
}

// List lists working hour entries with optional filters.
func (h *WorkHourHandler) List(w http.ResponseWriter, r *http.Request) {
	limit := parseIntQuery(r, "limit", 20)
	offset := parseIntQuery(r, "offset", 0)

	input := usecase.ListWorkHoursInput{
		WorkerID: r.URL.Query().Get("worker_id"),
		Status:   domain.WorkHourStatus(r.URL.Query().Get("status")),
		Limit:    limit,
		Offset:   offset,
	}

	if fromStr := r.URL.Query().Get("from"); fromStr != "" {
		from, err := time.Parse(time.RFC3339, fromStr)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid 'from' format (use RFC3339)", err.Error())
			return
		}
		input.From = &from
	}

	if toStr := r.URL.Query().Get("to"); toStr != "" {
		to, err := time.Parse(time.RFC3339, toStr)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid 'to' format (use RFC3339)", err.Error())
			return
		}
		input.To = &to
	}

	entries, err := h.workHourUC.ListWorkHours(r.Context(), input)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to list work hours", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.WorkHoursFromDomain(entries))
}

// Aggregate sums a worker's approved hours over a period.
func (h *WorkHourHandler) Aggregate(w http.ResponseWriter, r *http.Request) {
	workerID := r.URL.Query().Get("worker_id")
	if workerID == "" {
		writeError(w, http.StatusBadRequest, "missing 'worker_id' parameter", "")
		return
	}

	periodStart, err := time.Parse(time.RFC3339, r.URL.Query().Get("period_start"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid 'period_start' format (use RFC3339)", err.Error())
		return
	}

	periodEnd, err := time.Parse(time.RFC3339, r.URL.Query().Get("period_end"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid 'period_end' format (use RFC3339)", err.Error())
		return
	}

	summary, err := h.workHourUC.AggregateApprovedHours(r.Context(), workerID, periodStart, periodEnd)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to aggregate hours", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.HoursSummaryFromUseCase(summary))
}
