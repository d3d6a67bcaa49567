package repositories

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/evgsol/matchpay/internal/logger"
	"github.com/evgsol/matchpay/internal/models"
)

// ChannelRepository handles communication channels between matched users.
// The user pair is stored normalized and carries a unique index, so the
// get-or-create is a single upsert and two concurrent calls for the same
// pair converge on one row.
type ChannelRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewChannelRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *ChannelRepository {
	return &ChannelRepository{db: db, txGetter: txGetter}
}

func (r *ChannelRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// GetOrCreate returns the channel for the normalized user pair, creating
// it if absent. The order id is appended to order_ids exactly once.
func (r *ChannelRepository) GetOrCreate(ctx context.Context, userLo, userHi, orderID uuid.UUID) (*models.ChannelDB, error) {
	query := `
		INSERT INTO channels (channel_id, user_lo, user_hi, order_ids, created_at, updated_at)
		VALUES ($1, $2, $3, ARRAY[$4]::text[], NOW(), NOW())
		ON CONFLICT (user_lo, user_hi)
		DO UPDATE SET
			order_ids = CASE
				WHEN $4 = ANY(channels.order_ids) THEN channels.order_ids
				ELSE array_append(channels.order_ids, $4)
			END,
			updated_at = NOW()
		RETURNING channel_id, user_lo, user_hi, order_ids, created_at, updated_at
	`

	var channel models.ChannelDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &channel, query,
		uuid.New(), userLo, userHi, orderID.String())

	logger.Log.Debugw("channel get-or-create",
		"query", strings.Join(strings.Fields(query), " "),
		"user_lo", userLo,
		"user_hi", userHi,
		"order_id", orderID,
		"error", err,
	)
	if err != nil {
		return nil, err
	}
	return &channel, nil
}
