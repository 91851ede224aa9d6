package eventbus

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"blog-cms/internal/domain"
	"blog-cms/internal/logger"
	"blog-cms/internal/metrics"
	"blog-cms/internal/repository"
)

// OutboxBus stores events in the outbox table. A Relay delivers them later.
type OutboxBus struct {
	outbox repository.OutboxRepository
}

// NewOutboxBus creates an OutboxBus.
func NewOutboxBus(outbox repository.OutboxRepository) *OutboxBus {
	return &OutboxBus{outbox: outbox}
}

// Publish appends the event to the outbox.
func (b *OutboxBus) Publish(ctx context.Context, event domain.Event) error {
	payload, err := Encode(event)
	if err != nil {
		return err
	}
	if err := b.outbox.Append(ctx, repository.OutboxMessage{
		EventName:   event.EventName(),
		AggregateID: event.AggregateID(),
		Payload:     payload,
		OccurredAt:  event.OccurredOn(),
	}); err != nil {
		return fmt.Errorf("append %s to outbox: %w", event.EventName(), err)
	}
	return nil
}

// Relay polls the outbox and forwards pending events to a target bus in ID
// order. Delivery is at-least-once: a batch stops at the first failure and
// the failed event is retried on the next poll. After maxAttempts
// consecutive failures the event is dead-lettered: logged, counted and
// marked so later events can flow. Attempt counts live in memory and reset
// on restart.
type Relay struct {
	outbox      repository.OutboxRepository
	target      EventBus
	batchSize   int
	maxAttempts int
	now         func() time.Time

	mu       sync.Mutex
	attempts map[int64]int

	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// NewRelay creates a Relay. maxAttempts below 1 means a single attempt.
func NewRelay(outbox repository.OutboxRepository, target EventBus, batchSize, maxAttempts int) *Relay {
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	return &Relay{
		outbox:      outbox,
		target:      target,
		batchSize:   batchSize,
		maxAttempts: maxAttempts,
		now:         func() time.Time { return time.Now().UTC() },
		attempts:    make(map[int64]int),
		stopChan:    make(chan struct{}),
	}
}

// Start begins polling every interval.
func (r *Relay) Start(interval time.Duration) {
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		go func() {
			select {
			case <-r.stopChan:
				cancel()
			case <-ctx.Done():
			}
		}()

		for {
			if _, err := r.RelayOnce(ctx); err != nil && ctx.Err() == nil {
				logger.Error("outbox relay failed", slog.String("error", err.Error()))
			}

			select {
			case <-ticker.C:
			case <-r.stopChan:
				return
			}
		}
	}()
}

// Stop stops the relay and waits for the current poll to finish. It is safe
// to call more than once.
func (r *Relay) Stop() {
	r.stopOnce.Do(func() {
		close(r.stopChan)
	})
	r.wg.Wait()
}

// RelayOnce delivers one batch and returns the number of relayed events.
func (r *Relay) RelayOnce(ctx context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	messages, err := r.outbox.FetchPending(ctx, r.batchSize)
	if err != nil {
		return 0, err
	}

	delivered := make([]int64, 0, len(messages))
	var deliverErr error
	for _, m := range messages {
		event, err := Decode(m.EventName, m.Payload)
		if err != nil {
			// Undecodable rows would block the queue forever.
			logger.Error("dropping undecodable outbox event",
				slog.Int64("outbox_id", m.ID),
				slog.String("event", m.EventName),
				slog.String("error", err.Error()),
			)
			metrics.ObserveEventFailed(m.EventName)
			delivered = append(delivered, m.ID)
			continue
		}
		if err := r.target.Publish(ctx, event); err != nil {
			metrics.ObserveEventFailed(m.EventName)
			r.attempts[m.ID]++
			if r.attempts[m.ID] < r.maxAttempts {
				deliverErr = fmt.Errorf("relay outbox event %d: %w", m.ID, err)
				break
			}
			logger.Error("dead-lettering outbox event",
				slog.Int64("outbox_id", m.ID),
				slog.String("event", m.EventName),
				slog.String("aggregate_id", m.AggregateID),
				slog.Int("attempts", r.attempts[m.ID]),
				slog.String("payload", string(m.Payload)),
				slog.String("error", err.Error()),
			)
			metrics.OutboxDeadLettered.WithLabelValues(m.EventName).Inc()
			delete(r.attempts, m.ID)
			delivered = append(delivered, m.ID)
			continue
		}
		delete(r.attempts, m.ID)
		delivered = append(delivered, m.ID)
	}

	if err := r.outbox.MarkPublished(ctx, delivered, r.now()); err != nil {
		return 0, err
	}
	metrics.OutboxRelayed.Add(float64(len(delivered)))

	if pending, err := r.outbox.CountPending(ctx); err == nil {
		metrics.OutboxPending.Set(float64(pending))
	}

	return len(delivered), deliverErr
}
