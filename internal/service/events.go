package service

import (
	"context"
	"log/slog"

	"blog-cms/internal/domain"
	"blog-cms/internal/eventbus"
	"blog-cms/internal/logger"
	"blog-cms/internal/metrics"
)

// publishRecorded releases the recorder and publishes its events in order.
// The write has already succeeded at this point, so a failed publish is
// logged and counted instead of failing the request.
func publishRecorded(ctx context.Context, bus eventbus.EventBus, recorder *domain.EventRecorder) {
	for _, event := range recorder.Release() {
		if err := bus.Publish(ctx, event); err != nil {
			metrics.ObserveEventFailed(event.EventName())
			logger.ErrorContext(ctx, "failed to publish domain event",
				slog.String("event", event.EventName()),
				slog.String("aggregate_id", event.AggregateID()),
				slog.String("error", err.Error()),
			)
		}
	}
}

// record wraps events from one lifecycle operation in a fresh recorder.
func record(events []domain.Event) *domain.EventRecorder {
	recorder := &domain.EventRecorder{}
	recorder.Record(events...)
	return recorder
}
