package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mehedihasanmondol/online-plan-pilot/internal/adapter/http/dto"
	"github.com/mehedihasanmondol/online-plan-pilot/internal/usecase"
)

// NotificationHandler handles notification HTTP requests.
type NotificationHandler struct {
	notificationUC *usecase.NotificationUseCase
}

// NewNotificationHandler creates a new NotificationHandler.
func NewNotificationHandler(notificationUC *usecase.NotificationUseCase) *NotificationHandler {
	return &NotificationHandler{notificationUC: notificationUC}
}

// Get retrieves a notification by ID.
func (h *NotificationHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing notification ID", "")
		return
	}

	notification, err := h.notificationUC.GetNotification(r.Context(), id)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get notification", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.NotificationFromDomain(notification))
}

// List lists a recipient's notifications, newest first.
func (h *NotificationHandler) List(w http.ResponseWriter, r *http.Request) {
	recipientID := r.URL.Query().Get("recipient_id")
	if recipientID == "" {
		writeError(w, http.StatusBadRequest, "missing 'recipient_id' parameter", "")
		return
	}

	limit := parseIntQuery(r, "limit", 20)
	offset := parseIntQuery(r, "offset", 0)

	notifications, err := h.notificationUC.ListNotifications(r.Context(), usecase.ListNotificationsInput{
		RecipientID: recipientID,
		Limit:       limit,
		Offset:      offset,
	})
	if err != nil {
		writeError(w, mapDomainError(err), "failed to list notifications", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.NotificationsFromDomain(notifications))
}
