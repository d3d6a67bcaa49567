package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/evgsol/matchpay/internal/models"
)

const matchColumns = `order_id, matched_order_id, status, chat_id, created_at, updated_at`

// MatchRepository handles the symmetric pairing records. Both rows of a
// pairing are always written and deleted in the same statement, so the
// match-symmetry invariant cannot be broken by a partial write.
type MatchRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewMatchRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *MatchRepository {
	return &MatchRepository{db: db, txGetter: txGetter}
}

func (r *MatchRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// InsertPair writes both sides of a proposed pairing.
func (r *MatchRepository) InsertPair(ctx context.Context, orderA, orderB uuid.UUID) error {
	const query = `
		INSERT INTO matches (order_id, matched_order_id, status, chat_id, created_at, updated_at)
		VALUES ($1, $2, $3, NULL, NOW(), NOW()),
		       ($2, $1, $3, NULL, NOW(), NOW())
	`

	_, err := r.executor(ctx).ExecContext(ctx, query,
		orderA, orderB, models.MatchStatusPendingConfirmation)
	return err
}

// GetByOrderID returns the match record for one side, locked for the rest
// of the transaction so concurrent confirm/reject calls serialize on it.
// Returns sql.ErrNoRows when no match exists.
func (r *MatchRepository) GetByOrderID(ctx context.Context, orderID uuid.UUID) (*models.MatchDB, error) {
	query := `SELECT ` + matchColumns + ` FROM matches WHERE order_id = $1 FOR UPDATE`

	var match models.MatchDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &match, query, orderID)
	if err != nil {
		return nil, err
	}
	return &match, nil
}

// SetMatchedPair commits both sides of the pairing with the resolved chat.
func (r *MatchRepository) SetMatchedPair(ctx context.Context, orderA, orderB, chatID uuid.UUID) error {
	const query = `
		UPDATE matches
		SET status = $3, chat_id = $4, updated_at = NOW()
		WHERE order_id IN ($1, $2)
	`

	_, err := r.executor(ctx).ExecContext(ctx, query,
		orderA, orderB, models.MatchStatusMatched, chatID)
	return err
}

// DeletePair removes both sides of the pairing.
func (r *MatchRepository) DeletePair(ctx context.Context, orderA, orderB uuid.UUID) error {
	const query = `DELETE FROM matches WHERE order_id IN ($1, $2)`

	_, err := r.executor(ctx).ExecContext(ctx, query, orderA, orderB)
	return err
}

// ListExpired returns one side per pairing stuck in pending_confirmation
// since before the cutoff; the expiry sweeper applies an implicit reject
// to each.
func (r *MatchRepository) ListExpired(ctx context.Context, cutoff time.Time, limit int) ([]models.MatchDB, error) {
	query := `
		SELECT ` + matchColumns + `
		FROM matches
		WHERE status = $1 AND created_at < $2 AND order_id < matched_order_id
		ORDER BY created_at ASC
		LIMIT $3
	`

	var matches []models.MatchDB
	err := sqlx.SelectContext(ctx, r.executor(ctx), &matches, query,
		models.MatchStatusPendingConfirmation, cutoff, limit)
	if err != nil {
		return nil, err
	}
	return matches, nil
}
