package usecase

import (
	"context"

	"github.com/mehedihasanmondol/online-plan-pilot/internal/domain"
)

// NotificationUseCase serves notification listings to the UI layer.
// Notification rows are produced by the outbox dispatcher, not here.
type NotificationUseCase struct {
	notificationRepo NotificationRepository
}

// NewNotificationUseCase creates a new NotificationUseCase.
func NewNotificationUseCase(notificationRepo NotificationRepository) *NotificationUseCase {
	return &NotificationUseCase{
		notificationRepo: notificationRepo,
	}
}

// ListNotificationsInput represents input for listing notifications.
type ListNotificationsInput struct {
	RecipientID string
	Limit       int
	Offset      int
}

// ListNotifications lists a recipient's notifications, newest first.
func (uc *NotificationUseCase) ListNotifications(ctx context.Context, input ListNotificationsInput) ([]*domain.Notification, error) {
	if input.RecipientID == "" {
		return nil, domain.ErrMissingWorker
	}

	limit, offset, err := domain.ValidatePagination(input.Limit, input.Offset)
	if err != nil {
		return nil, err
	}

	return uc.notificationRepo.ListByRecipient(ctx, input.RecipientID, limit, offset)
}

// GetNotification retrieves a notification by ID.
func (uc *NotificationUseCase) GetNotification(ctx context.Context, id string) (*domain.Notification, error) {
	return uc.notificationRepo.GetByID(ctx, id)
}
