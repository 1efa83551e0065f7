package eventpublisher

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/mehedihasanmondol/online-plan-pilot/internal/domain"
	"github.com/mehedihasanmondol/online-plan-pilot/internal/infrastructure/metrics"
	"github.com/mehedihasanmondol/online-plan-pilot/internal/usecase"
)

// NotificationDispatcher decorates a Publisher: after an event goes out, it
// materializes worker-facing notifications from payment events. Notification
// rows are best-effort; a failed insert is logged but never blocks the event,
// and the ledger is already consistent by the time the dispatcher runs.
type NotificationDispatcher struct {
	inner            Publisher
	notificationRepo usecase.NotificationRepository
	idGen            usecase.IDGenerator
	logger           *slog.Logger
	metrics          *metrics.Metrics
}

// NewNotificationDispatcher creates a new NotificationDispatcher around inner.
func NewNotificationDispatcher(
	inner Publisher,
	notificationRepo usecase.NotificationRepository,
	idGen usecase.IDGenerator,
	logger *slog.Logger,
	m *metrics.Metrics,
) *NotificationDispatcher {
	if logger == nil {
		logger = slog.Default()
	}

	return &NotificationDispatcher{
		inner:            inner,
		notificationRepo: notificationRepo,
		idGen:            idGen,
		logger:           logger,
		metrics:          m,
	}
}

// Publish forwards the event and creates notifications for events workers
// should hear about.
func (d *NotificationDispatcher) Publish(ctx context.Context, event *domain.OutboxEvent) error {
	if err := d.inner.Publish(ctx, event); err != nil {
		return err
	}

	if event.EventType == domain.EventTypePayrollPaid {
		d.notifyPayrollPaid(ctx, event)
	}

	return nil
}

// Close releases the wrapped sink if it holds external connections.
func (d *NotificationDispatcher) Close() error {
	if closer, ok := d.inner.(interface{ Close() error }); ok {
		return closer.Close()
	}
	return nil
}

func (d *NotificationDispatcher) notifyPayrollPaid(ctx context.Context, event *domain.OutboxEvent) {
	workerID, _ := event.Payload["worker_id"].(string)
	if workerID == "" {
		d.logger.Warn("paid event without worker, skipping notification",
			slog.String("event_id", event.ID))
		return
	}

	netPay, _ := event.Payload["net_pay"].(string)
	periodStart, _ := event.Payload["period_start"].(string)
	periodEnd, _ := event.Payload["period_end"].(string)

	now := time.Now().UTC()
	payrollID := event.AggregateID

	notification := &domain.Notification{
		ID:          d.idGen.Generate(),
		RecipientID: workerID,
		Title:       "Salary payment completed",
		Message:     fmt.Sprintf("Your salary of %s for %s to %s has been paid.", netPay, periodStart, periodEnd),
		Priority:    domain.NotificationPriorityHigh,
		PayrollID:   &payrollID,
		DeliveredAt: &now,
		CreatedAt:   now,
	}

	if err := d.notificationRepo.Create(ctx, notification); err != nil {
		d.logger.Error("failed to create payment notification",
			slog.String("payroll_id", payrollID),
			slog.String("worker_id", workerID),
			slog.String("error", err.Error()))
		return
	}

	if d.metrics != nil {
		d.metrics.NotificationsDelivered.Inc()
	}

	d.logger.Info("payment notification delivered",
		slog.String("payroll_id", payrollID),
		slog.String("worker_id", workerID))
}
