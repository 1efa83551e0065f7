package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mehedihasanmondol/online-plan-pilot/internal/domain"
	"github.com/mehedihasanmondol/online-plan-pilot/internal/infrastructure/postgres/generated"
)

// NotificationRepository implements usecase.NotificationRepository.
// Notifications are write-once; the only mutation is the delivery timestamp.
type NotificationRepository struct {
	pool    *pgxpool.Pool
	queries *generated.Queries
}

// NewNotificationRepository creates a new NotificationRepository.
func NewNotificationRepository(pool *pgxpool.Pool) *NotificationRepository {
	return &NotificationRepository{
		pool:    pool,
		queries: generated.New(pool),
	}
}

// Create creates a new notification.
func (r *NotificationRepository) Create(ctx context.Context, notification *domain.Notification) error {
	_, err := r.queries.CreateNotification(ctx, generated.CreateNotificationParams{
		ID:          notification.ID,
		RecipientID: notification.RecipientID,
		Title:       notification.Title,
		Message:     notification.Message,
		Priority:    string(notification.Priority),
		PayrollID:   ptrToText(notification.PayrollID),
		DeliveredAt: pgTimestamptzFromPtr(notification.DeliveredAt),
		CreatedAt:   timeToPgTimestamptz(notification.CreatedAt),
	})

	return err
}

// GetByID retrieves a notification by ID.
func (r *NotificationRepository) GetByID(ctx context.Context, id string) (*domain.Notification, error) {
	row, err := r.queries.GetNotificationByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotificationNotFound
		}

		return nil, err
	}

	return rowToNotification(row), nil
}

// MarkDelivered records the delivery timestamp.
func (r *NotificationRepository) MarkDelivered(ctx context.Context, id string, deliveredAt time.Time) error {
	return r.queries.MarkNotificationDelivered(ctx, generated.MarkNotificationDeliveredParams{
		ID:          id,
		DeliveredAt: timeToPgTimestamptz(deliveredAt),
	})
}

// ListByRecipient lists a recipient's notifications, newest first.
func (r *NotificationRepository) ListByRecipient(ctx context.Context, recipientID string, limit, offset int) ([]*domain.Notification, error) {
	rows, err := r.queries.ListNotificationsByRecipient(ctx, generated.ListNotificationsByRecipientParams{
		RecipientID: recipientID,
		Limit:       int32(limit),
		Offset:      int32(offset),
	})
	if err != nil {
		return nil, err
	}

	notifications := make([]*domain.Notification, 0, len(rows))
	for _, row := range rows {
		notifications = append(notifications, rowToNotification(row))
	}

	return notifications, nil
}

func rowToNotification(row generated.Notification) *domain.Notification {
	return &domain.Notification{
		ID:          row.ID,
		RecipientID: row.RecipientID,
		Title:       row.Title,
		Message:     row.Message,
		Priority:    domain.NotificationPriority(row.Priority),
		PayrollID:   textToPtr(row.PayrollID),
		DeliveredAt: timestamptzToPtr(row.DeliveredAt),
		CreatedAt:   row.CreatedAt.Time,
	}
}
