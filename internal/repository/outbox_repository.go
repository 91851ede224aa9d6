package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresOutboxRepository implements OutboxRepository using PostgreSQL.
type PostgresOutboxRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresOutboxRepository creates a new PostgresOutboxRepository.
func NewPostgresOutboxRepository(pool *pgxpool.Pool) *PostgresOutboxRepository {
	return &PostgresOutboxRepository{pool: pool}
}

// Append stores messages in one batch, keeping their order.
func (r *PostgresOutboxRepository) Append(ctx context.Context, messages ...OutboxMessage) error {
	if len(messages) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for _, m := range messages {
		batch.Queue(`
			INSERT INTO outbox_events (event_name, aggregate_id, payload, occurred_at)
			VALUES ($1, $2, $3, $4)
		`, m.EventName, m.AggregateID, m.Payload, m.OccurredAt)
	}

	results := r.pool.SendBatch(ctx, batch)
	for range messages {
		if _, err := results.Exec(); err != nil {
			_ = results.Close()
			return fmt.Errorf("insert outbox event: %w", err)
		}
	}
	if err := results.Close(); err != nil {
		return fmt.Errorf("close outbox batch: %w", err)
	}
	return nil
}

// FetchPending returns up to limit undelivered messages, oldest first.
func (r *PostgresOutboxRepository) FetchPending(ctx context.Context, limit int) ([]OutboxMessage, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, event_name, aggregate_id, payload, occurred_at, created_at
		FROM outbox_events
		WHERE published_at IS NULL
		ORDER BY id
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("query outbox: %w", err)
	}
	defer rows.Close()

	var messages []OutboxMessage
	for rows.Next() {
		var m OutboxMessage
		if err := rows.Scan(&m.ID, &m.EventName, &m.AggregateID, &m.Payload, &m.OccurredAt, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan outbox event: %w", err)
		}
		messages = append(messages, m)
	}

	return messages, rows.Err()
}

// MarkPublished flags messages as delivered.
func (r *PostgresOutboxRepository) MarkPublished(ctx context.Context, ids []int64, at time.Time) error {
	if len(ids) == 0 {
		return nil
	}
	if _, err := r.pool.Exec(ctx, `UPDATE outbox_events SET published_at = $2 WHERE id = ANY($1)`, ids, at); err != nil {
		return fmt.Errorf("mark outbox events published: %w", err)
	}
	return nil
}

// CountPending returns the number of undelivered messages.
func (r *PostgresOutboxRepository) CountPending(ctx context.Context) (int, error) {
	var count int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM outbox_events WHERE published_at IS NULL`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count pending outbox events: %w", err)
	}
	return count, nil
}
