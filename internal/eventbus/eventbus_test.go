package eventbus_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"blog-cms/internal/domain"
	"blog-cms/internal/eventbus"
	"blog-cms/internal/metrics"
	"blog-cms/internal/mocks"
	"blog-cms/internal/repository"
)

var occurred = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func createdEvent(id string) domain.ArticleCreated {
	return domain.ArticleCreated{
		ArticleID: domain.ArticleID(id),
		Title:     "Hello",
		Slug:      "hello",
		AuthorID:  "author-1",
		Status:    domain.StatusDraft,
		CreatedAt: occurred,
	}
}

func TestInProcessBus_Publish(t *testing.T) {
	ctx := context.Background()

	t.Run("dispatches to named and wildcard subscribers in order", func(t *testing.T) {
		bus := eventbus.NewInProcessBus()
		var seen []string
		bus.Subscribe(domain.EventArticleCreated, func(_ context.Context, e domain.Event) error {
			seen = append(seen, "named:"+e.AggregateID())
			return nil
		})
		bus.Subscribe(domain.EventArticleDeleted, func(context.Context, domain.Event) error {
			seen = append(seen, "wrong")
			return nil
		})
		bus.SubscribeAll(func(_ context.Context, e domain.Event) error {
			seen = append(seen, "all:"+e.EventName())
			return nil
		})

		before := testutil.ToFloat64(metrics.EventsPublished.WithLabelValues(domain.EventArticleCreated))
		require.NoError(t, bus.Publish(ctx, createdEvent("a1")))

		assert.Equal(t, []string{"named:a1", "all:article.created"}, seen)
		assert.Equal(t, before+1, testutil.ToFloat64(metrics.EventsPublished.WithLabelValues(domain.EventArticleCreated)))
	})

	t.Run("runs all handlers and joins failures", func(t *testing.T) {
		bus := eventbus.NewInProcessBus()
		boom := errors.New("boom")
		calls := 0
		bus.SubscribeAll(func(context.Context, domain.Event) error { calls++; return boom })
		bus.SubscribeAll(func(context.Context, domain.Event) error { calls++; return nil })

		err := bus.Publish(ctx, createdEvent("a1"))

		assert.ErrorIs(t, err, boom)
		assert.Equal(t, 2, calls)
	})

	t.Run("no subscribers is fine", func(t *testing.T) {
		assert.NoError(t, eventbus.NewInProcessBus().Publish(ctx, createdEvent("a1")))
	})
}

func TestCodec_RoundTrip(t *testing.T) {
	parent := domain.CategoryID("root")
	events := []domain.Event{
		createdEvent("a1"),
		domain.ArticleSubmittedForReview{ArticleID: "a1", AuthorID: "u1", FromStatus: domain.StatusRejected, SubmittedAt: occurred},
		domain.ArticleApproved{ArticleID: "a1", ReviewerID: "r1", ApprovedAt: occurred},
		domain.ArticleRejected{ArticleID: "a1", ReviewerID: "r1", Reason: "needs work", RejectedAt: occurred},
		domain.ArticlePublished{ArticleID: "a1", Slug: "hello", AuthorID: "u1", PublishedAt: occurred, OccurredAt: occurred},
		domain.ArticleUpdated{ArticleID: "a1", Title: "Hi", Slug: "hi", ChangedFields: []string{"title"}, UpdatedAt: occurred},
		domain.ArticleDeleted{ArticleID: "a1", Slug: "hi", DeletedAt: occurred},
		domain.AuthorCreated{AuthorID: "u1", Name: "Jane", Email: "jane@example.com", CreatedAt: occurred},
		domain.CategoryCreated{CategoryID: "c1", Name: "Go", Slug: "go", ParentID: &parent, CreatedAt: occurred},
	}

	for _, event := range events {
		t.Run(event.EventName(), func(t *testing.T) {
			payload, err := eventbus.Encode(event)
			require.NoError(t, err)

			decoded, err := eventbus.Decode(event.EventName(), payload)
			require.NoError(t, err)
			assert.Equal(t, event, decoded)
		})
	}

	_, err := eventbus.Decode("article.exploded", []byte(`{}`))
	assert.Error(t, err)
}

func TestOutboxBus_Publish(t *testing.T) {
	ctx := context.Background()
	outbox := mocks.NewMockOutboxRepository(t)
	bus := eventbus.NewOutboxBus(outbox)

	outbox.EXPECT().
		Append(mock.Anything, mock.MatchedBy(func(m repository.OutboxMessage) bool {
			return m.EventName == domain.EventArticleCreated && m.AggregateID == "a1" && m.OccurredAt.Equal(occurred)
		})).
		Return(nil)

	require.NoError(t, bus.Publish(ctx, createdEvent("a1")))
}

func TestRelay_RelayOnce(t *testing.T) {
	ctx := context.Background()

	message := func(id int64, eventID string) repository.OutboxMessage {
		payload, err := eventbus.Encode(createdEvent(eventID))
		require.NoError(t, err)
		return repository.OutboxMessage{ID: id, EventName: domain.EventArticleCreated, AggregateID: eventID, Payload: payload}
	}

	t.Run("delivers in order and marks published", func(t *testing.T) {
		outbox := mocks.NewMockOutboxRepository(t)
		target := mocks.NewMockEventBus(t)
		relay := eventbus.NewRelay(outbox, target, 10, 3)

		outbox.EXPECT().FetchPending(mock.Anything, 10).Return([]repository.OutboxMessage{message(1, "a1"), message(2, "a2")}, nil)
		var order []string
		target.EXPECT().Publish(mock.Anything, mock.Anything).
			RunAndReturn(func(_ context.Context, e domain.Event) error {
				order = append(order, e.AggregateID())
				return nil
			}).Times(2)
		outbox.EXPECT().MarkPublished(mock.Anything, []int64{1, 2}, mock.AnythingOfType("time.Time")).Return(nil)
		outbox.EXPECT().CountPending(mock.Anything).Return(0, nil)

		n, err := relay.RelayOnce(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, n)
		assert.Equal(t, []string{"a1", "a2"}, order)
	})

	t.Run("stops at first delivery failure", func(t *testing.T) {
		outbox := mocks.NewMockOutboxRepository(t)
		target := mocks.NewMockEventBus(t)
		relay := eventbus.NewRelay(outbox, target, 10, 3)

		outbox.EXPECT().FetchPending(mock.Anything, 10).
			Return([]repository.OutboxMessage{message(1, "a1"), message(2, "a2"), message(3, "a3")}, nil)
		target.EXPECT().Publish(mock.Anything, mock.Anything).
			RunAndReturn(func(_ context.Context, e domain.Event) error {
				if e.AggregateID() == "a2" {
					return errors.New("subscriber down")
				}
				return nil
			}).Times(2)
		outbox.EXPECT().MarkPublished(mock.Anything, []int64{1}, mock.Anything).Return(nil)
		outbox.EXPECT().CountPending(mock.Anything).Return(2, nil)

		before := testutil.ToFloat64(metrics.EventsFailed.WithLabelValues(domain.EventArticleCreated))
		n, err := relay.RelayOnce(ctx)
		assert.Error(t, err)
		assert.Equal(t, 1, n)
		assert.Equal(t, float64(2), testutil.ToFloat64(metrics.OutboxPending))
		assert.Equal(t, before+1, testutil.ToFloat64(metrics.EventsFailed.WithLabelValues(domain.EventArticleCreated)))
	})

	t.Run("skips undecodable rows", func(t *testing.T) {
		outbox := mocks.NewMockOutboxRepository(t)
		target := mocks.NewMockEventBus(t)
		relay := eventbus.NewRelay(outbox, target, 5, 3)

		outbox.EXPECT().FetchPending(mock.Anything, 5).
			Return([]repository.OutboxMessage{{ID: 9, EventName: "legacy.event", Payload: []byte(`{}`)}}, nil)
		outbox.EXPECT().MarkPublished(mock.Anything, []int64{9}, mock.Anything).Return(nil)
		outbox.EXPECT().CountPending(mock.Anything).Return(0, nil)

		n, err := relay.RelayOnce(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, n)
	})

	t.Run("dead-letters an event after max attempts", func(t *testing.T) {
		outbox := mocks.NewMockOutboxRepository(t)
		target := mocks.NewMockEventBus(t)
		relay := eventbus.NewRelay(outbox, target, 10, 2)

		outbox.EXPECT().FetchPending(mock.Anything, 10).
			Return([]repository.OutboxMessage{message(1, "a1"), message(2, "a2")}, nil).Times(2)
		var delivered []string
		target.EXPECT().Publish(mock.Anything, mock.Anything).
			RunAndReturn(func(_ context.Context, e domain.Event) error {
				if e.AggregateID() == "a1" {
					return errors.New("subscriber rejects a1")
				}
				delivered = append(delivered, e.AggregateID())
				return nil
			}).Times(3)
		outbox.EXPECT().MarkPublished(mock.Anything, []int64{}, mock.Anything).Return(nil).Once()
		outbox.EXPECT().MarkPublished(mock.Anything, []int64{1, 2}, mock.Anything).Return(nil).Once()
		outbox.EXPECT().CountPending(mock.Anything).Return(0, nil)

		before := testutil.ToFloat64(metrics.OutboxDeadLettered.WithLabelValues(domain.EventArticleCreated))

		n, err := relay.RelayOnce(ctx)
		assert.Error(t, err)
		assert.Equal(t, 0, n)

		n, err = relay.RelayOnce(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, n)
		assert.Equal(t, []string{"a2"}, delivered)
		assert.Equal(t, before+1, testutil.ToFloat64(metrics.OutboxDeadLettered.WithLabelValues(domain.EventArticleCreated)))
	})

	t.Run("success resets the attempt count", func(t *testing.T) {
		outbox := mocks.NewMockOutboxRepository(t)
		target := mocks.NewMockEventBus(t)
		relay := eventbus.NewRelay(outbox, target, 10, 2)

		outbox.EXPECT().FetchPending(mock.Anything, 10).Return([]repository.OutboxMessage{message(1, "a1")}, nil)
		target.EXPECT().Publish(mock.Anything, mock.Anything).Return(errors.New("flaky")).Once()
		target.EXPECT().Publish(mock.Anything, mock.Anything).Return(nil).Once()
		outbox.EXPECT().MarkPublished(mock.Anything, []int64{}, mock.Anything).Return(nil).Once()
		outbox.EXPECT().MarkPublished(mock.Anything, []int64{1}, mock.Anything).Return(nil).Once()
		outbox.EXPECT().CountPending(mock.Anything).Return(0, nil)

		_, err := relay.RelayOnce(ctx)
		assert.Error(t, err)
		n, err := relay.RelayOnce(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, n)
	})

	t.Run("fetch failure", func(t *testing.T) {
		outbox := mocks.NewMockOutboxRepository(t)
		relay := eventbus.NewRelay(outbox, mocks.NewMockEventBus(t), 5, 3)

		outbox.EXPECT().FetchPending(mock.Anything, 5).Return(nil, errors.New("db down"))

		_, err := relay.RelayOnce(ctx)
		assert.Error(t, err)
	})
}

func TestRelay_StartStop(t *testing.T) {
	outbox := mocks.NewMockOutboxRepository(t)
	relay := eventbus.NewRelay(outbox, mocks.NewMockEventBus(t), 5, 3)

	polled := make(chan struct{}, 1)
	outbox.EXPECT().FetchPending(mock.Anything, 5).
		RunAndReturn(func(context.Context, int) ([]repository.OutboxMessage, error) {
			select {
			case polled <- struct{}{}:
			default:
			}
			return nil, nil
		})
	outbox.EXPECT().MarkPublished(mock.Anything, mock.Anything, mock.Anything).Return(nil)
	outbox.EXPECT().CountPending(mock.Anything).Return(0, nil)

	relay.Start(5 * time.Millisecond)
	select {
	case <-polled:
	case <-time.After(time.Second):
		t.Fatal("relay did not poll")
	}
	relay.Stop()
	assert.NotPanics(t, relay.Stop)
}

func TestTransitionMetrics(t *testing.T) {
	before := testutil.ToFloat64(metrics.ArticleTransitions.WithLabelValues("rejected", "pending_review"))

	require.NoError(t, eventbus.TransitionMetrics(context.Background(), domain.ArticleSubmittedForReview{
		ArticleID: "a1", FromStatus: domain.StatusRejected, SubmittedAt: occurred,
	}))

	assert.Equal(t, before+1, testutil.ToFloat64(metrics.ArticleTransitions.WithLabelValues("rejected", "pending_review")))
}
