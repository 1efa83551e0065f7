package main

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus"

	postgresRepo "github.com/mehedihasanmondol/online-plan-pilot/internal/adapter/repository/postgres"
	"github.com/mehedihasanmondol/online-plan-pilot/internal/domain"
	"github.com/mehedihasanmondol/online-plan-pilot/internal/infrastructure/config"
	"github.com/mehedihasanmondol/online-plan-pilot/internal/infrastructure/eventpublisher"
	"github.com/mehedihasanmondol/online-plan-pilot/internal/infrastructure/metrics"
	"github.com/mehedihasanmondol/online-plan-pilot/internal/usecase/mocks"
)

func newTestMetrics() *metrics.Metrics {
	registry := prometheus.NewRegistry()
	prometheus.DefaultRegisterer = registry
	prometheus.DefaultGatherer = registry

	return metrics.New()
}

func TestBuildPublisherLogSink(t *testing.T) {
	cfg := &config.Config{KafkaEnabled: false}

	pub := buildPublisher(cfg, mocks.NewMockNotificationRepository(), mocks.NewMockIDGenerator(), newTestMetrics())

	dispatcher, ok := pub.(*eventpublisher.NotificationDispatcher)
	if !ok {
		t.Fatalf("expected notification dispatcher, got %T", pub)
	}

	// Log sink holds no connections, so closing is a no-op.
	if err := dispatcher.Close(); err != nil {
		t.Fatalf("close failed: %v", err)
	}
}

func TestBuildPublisherKafkaSink(t *testing.T) {
	cfg := &config.Config{
		KafkaEnabled: true,
		KafkaBrokers: []string{"localhost:9092"},
		KafkaTopic:   "payroll-events",
	}

	pub := buildPublisher(cfg, mocks.NewMockNotificationRepository(), mocks.NewMockIDGenerator(), newTestMetrics())

	if _, ok := pub.(*eventpublisher.NotificationDispatcher); !ok {
		t.Fatalf("expected notification dispatcher, got %T", pub)
	}
}

func TestNewOutboxRepositorySwitch(t *testing.T) {
	enabled := newOutboxRepository(&config.Config{OutboxEnabled: true}, nil)
	if _, ok := enabled.(*postgresRepo.OutboxRepository); !ok {
		t.Fatalf("expected transactional outbox, got %T", enabled)
	}

	disabled := newOutboxRepository(&config.Config{OutboxEnabled: false}, nil)
	if _, ok := disabled.(*postgresRepo.NullOutboxRepository); !ok {
		t.Fatalf("expected discarding outbox, got %T", disabled)
	}

	// The discarding outbox accepts and drops events.
	if err := disabled.Create(context.Background(), nil, &domain.OutboxEvent{ID: "ev-1"}); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	events, err := disabled.GetUnpublished(context.Background(), 10)
	if err != nil {
		t.Fatalf("get unpublished failed: %v", err)
	}
	if len(events) != 0 {
		t.Fatalf("expected no stored events, got %d", len(events))
	}
}
