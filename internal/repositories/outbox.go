package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/evgsol/matchpay/internal/models"
)

// OutboxRepository persists state-change events in the same transaction
// as the change itself. The synchronizer drains unprocessed events in
// insertion order outside any request transaction.
type OutboxRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewOutboxRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *OutboxRepository {
	return &OutboxRepository{db: db, txGetter: txGetter}
}

func (r *OutboxRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Insert appends an event to the outbox.
func (r *OutboxRepository) Insert(ctx context.Context, aggregate string, aggregateID uuid.UUID, eventType string, payload []byte) error {
	const query = `
		INSERT INTO outbox (aggregate, aggregate_id, event_type, payload, created_at)
		VALUES ($1, $2, $3, $4, NOW())
	`

	_, err := r.executor(ctx).ExecContext(ctx, query, aggregate, aggregateID, eventType, payload)
	return err
}

// ListUnprocessed returns the oldest unprocessed events.
func (r *OutboxRepository) ListUnprocessed(ctx context.Context, limit int) ([]models.OutboxEventDB, error) {
	const query = `
		SELECT event_id, aggregate, aggregate_id, event_type, payload, created_at, processed_at
		FROM outbox
		WHERE processed_at IS NULL
		ORDER BY event_id ASC
		LIMIT $1
	`

	var events []models.OutboxEventDB
	err := sqlx.SelectContext(ctx, r.executor(ctx), &events, query, limit)
	if err != nil {
		return nil, err
	}
	return events, nil
}

// MarkProcessed stamps the given events as applied to the mirror.
func (r *OutboxRepository) MarkProcessed(ctx context.Context, eventIDs []int64) error {
	if len(eventIDs) == 0 {
		return nil
	}

	const query = `UPDATE outbox SET processed_at = NOW() WHERE event_id = ANY($1)`

	_, err := r.executor(ctx).ExecContext(ctx, query, pq.Array(eventIDs))
	return err
}
