package eventbus

import (
	"context"
	"log/slog"

	"blog-cms/internal/domain"
	"blog-cms/internal/logger"
	"blog-cms/internal/metrics"
)

// AuditLog writes every event to the structured log.
func AuditLog(ctx context.Context, event domain.Event) error {
	logger.InfoContext(ctx, "domain event",
		slog.String("event", event.EventName()),
		slog.String("aggregate_id", event.AggregateID()),
		slog.Time("occurred_at", event.OccurredOn()),
	)
	return nil
}

// TransitionMetrics counts article status changes carried by events.
func TransitionMetrics(_ context.Context, event domain.Event) error {
	switch e := event.(type) {
	case domain.ArticleCreated:
		metrics.ObserveTransition("none", string(domain.StatusDraft))
	case domain.ArticleSubmittedForReview:
		metrics.ObserveTransition(string(e.FromStatus), string(domain.StatusPendingReview))
	case domain.ArticleApproved:
		metrics.ObserveTransition(string(domain.StatusPendingReview), string(domain.StatusApproved))
	case domain.ArticleRejected:
		metrics.ObserveTransition(string(domain.StatusPendingReview), string(domain.StatusRejected))
	case domain.ArticlePublished:
		metrics.ObserveTransition(string(domain.StatusApproved), string(domain.StatusPublished))
	}
	return nil
}

// RegisterDefaultSubscribers attaches the audit log and transition metrics.
func RegisterDefaultSubscribers(bus *InProcessBus) {
	bus.SubscribeAll(AuditLog)
	bus.SubscribeAll(TransitionMetrics)
}
