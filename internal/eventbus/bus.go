// Package eventbus delivers domain events to subscribers, either directly
// in-process or through a Postgres outbox drained by a relay worker.
package eventbus

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"blog-cms/internal/domain"
	"blog-cms/internal/logger"
	"blog-cms/internal/metrics"
)

// EventBus publishes domain events.
type EventBus interface {
	Publish(ctx context.Context, event domain.Event) error
}

// Handler reacts to one event.
type Handler func(ctx context.Context, event domain.Event) error

// InProcessBus dispatches events synchronously to subscribers in
// subscription order.
type InProcessBus struct {
	mu       sync.RWMutex
	byName   map[string][]Handler
	wildcard []Handler
}

// NewInProcessBus creates an empty InProcessBus.
func NewInProcessBus() *InProcessBus {
	return &InProcessBus{byName: make(map[string][]Handler)}
}

// Subscribe registers h for events named name.
func (b *InProcessBus) Subscribe(name string, h Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.byName[name] = append(b.byName[name], h)
}

// SubscribeAll registers h for every event.
func (b *InProcessBus) SubscribeAll(h Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.wildcard = append(b.wildcard, h)
}

// Publish runs every matching handler, even when an earlier one fails, and
// returns the joined handler errors. Failures are counted by the caller.
func (b *InProcessBus) Publish(ctx context.Context, event domain.Event) error {
	b.mu.RLock()
	handlers := make([]Handler, 0, len(b.byName[event.EventName()])+len(b.wildcard))
	handlers = append(handlers, b.byName[event.EventName()]...)
	handlers = append(handlers, b.wildcard...)
	b.mu.RUnlock()

	var errs []error
	for _, h := range handlers {
		if err := h(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if err := errors.Join(errs...); err != nil {
		logger.WarnContext(ctx, "event handler failed",
			slog.String("event", event.EventName()),
			slog.String("aggregate_id", event.AggregateID()),
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("dispatch %s: %w", event.EventName(), err)
	}

	metrics.ObserveEventPublished(event.EventName())
	return nil
}
