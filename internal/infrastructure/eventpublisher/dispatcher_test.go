package eventpublisher

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/mehedihasanmondol/online-plan-pilot/internal/domain"
	"github.com/mehedihasanmondol/online-plan-pilot/internal/usecase/mocks"
)

func newTestDispatcher(inner Publisher, repo *mocks.MockNotificationRepository) *NotificationDispatcher {
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
	return NewNotificationDispatcher(inner, repo, mocks.NewMockIDGenerator(), logger, nil)
}

func paidEvent() *domain.OutboxEvent {
	return &domain.OutboxEvent{
		ID:            "evt-1",
		AggregateID:   "pr-1",
		AggregateType: domain.AggregateTypePayroll,
		EventType:     domain.EventTypePayrollPaid,
		Payload: map[string]any{
			"worker_id":    "worker-1",
			"net_pay":      "600",
			"period_start": "2025-03-01",
			"period_end":   "2025-03-15",
		},
	}
}

func TestDispatcherCreatesNotificationForPaidEvent(t *testing.T) {
	repo := mocks.NewMockNotificationRepository()
	inner := &stubPublisher{}
	d := newTestDispatcher(inner, repo)

	if err := d.Publish(context.Background(), paidEvent()); err != nil {
		t.Fatalf("publish failed: %v", err)
	}

	if len(inner.published) != 1 {
		t.Fatalf("expected inner publisher to be called")
	}

	notifications, err := repo.ListByRecipient(context.Background(), "worker-1", 10, 0)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(notifications) != 1 {
		t.Fatalf("expected one notification, got %d", len(notifications))
	}

	n := notifications[0]
	if n.PayrollID == nil || *n.PayrollID != "pr-1" {
		t.Fatalf("expected notification tied to payroll pr-1, got %+v", n)
	}
	if n.Priority != domain.NotificationPriorityHigh {
		t.Fatalf("expected high priority, got %s", n.Priority)
	}
	if n.DeliveredAt == nil {
		t.Fatalf("expected notification to be marked delivered")
	}
}

func TestDispatcherSkipsOtherEventTypes(t *testing.T) {
	repo := mocks.NewMockNotificationRepository()
	inner := &stubPublisher{}
	d := newTestDispatcher(inner, repo)

	event := paidEvent()
	event.EventType = domain.EventTypePayrollApproved

	if err := d.Publish(context.Background(), event); err != nil {
		t.Fatalf("publish failed: %v", err)
	}

	notifications, _ := repo.ListByRecipient(context.Background(), "worker-1", 10, 0)
	if len(notifications) != 0 {
		t.Fatalf("expected no notifications for approved event, got %d", len(notifications))
	}
}

func TestDispatcherPropagatesInnerError(t *testing.T) {
	repo := mocks.NewMockNotificationRepository()
	inner := &stubPublisher{errorsByID: map[string]error{"evt-1": errors.New("broker down")}}
	d := newTestDispatcher(inner, repo)

	if err := d.Publish(context.Background(), paidEvent()); err == nil {
		t.Fatal("expected error from inner publisher")
	}

	notifications, _ := repo.ListByRecipient(context.Background(), "worker-1", 10, 0)
	if len(notifications) != 0 {
		t.Fatalf("expected no notification when publish fails, got %d", len(notifications))
	}
}

func TestDispatcherIgnoresEventWithoutWorker(t *testing.T) {
	repo := mocks.NewMockNotificationRepository()
	inner := &stubPublisher{}
	d := newTestDispatcher(inner, repo)

	event := paidEvent()
	delete(event.Payload, "worker_id")

	if err := d.Publish(context.Background(), event); err != nil {
		t.Fatalf("publish failed: %v", err)
	}

	notifications, _ := repo.ListByRecipient(context.Background(), "worker-1", 10, 0)
	if len(notifications) != 0 {
		t.Fatalf("expected no notification without a worker, got %d", len(notifications))
	}
}
