package repositories

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/evgsol/matchpay/internal/logger"
	"github.com/evgsol/matchpay/internal/models"
)

// Candidate rankings accepted by ListCandidates. Mapped to a fixed ORDER BY
// here so the ranking stays configurable without interpolating caller input.
const (
	RankOldestFirst   = "oldest_first"
	RankHighestReward = "highest_reward"
)

var rankOrderBy = map[string]string{
	RankOldestFirst:   "created_at ASC",
	RankHighestReward: "escrow_amount DESC, created_at ASC",
}

const orderColumns = `
	order_id, user_id, role, status, pickup_location, delivery_location,
	matched_order_id, chat_id, escrow_amount, rejected_matches, created_at, updated_at
`

// OrderRepository handles order rows on behalf of the matching engine and
// the confirmation handler. Status transitions are compare-and-swap
// updates guarded on the current status, so two concurrent proposals can
// never both claim the same order.
type OrderRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewOrderRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *OrderRepository {
	return &OrderRepository{db: db, txGetter: txGetter}
}

func (r *OrderRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// GetByID returns a single order or sql.ErrNoRows.
func (r *OrderRepository) GetByID(ctx context.Context, orderID uuid.UUID) (*models.OrderDB, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE order_id = $1`

	var order models.OrderDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &order, query, orderID)
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// ListCandidates returns pending orders compatible with the given order:
// opposite role, same route bucket, neither side in the other's
// rejected-matches set. The route-bucket predicate keeps the scan on the
// (pickup, delivery, status) index instead of the whole pending pool.
func (r *OrderRepository) ListCandidates(ctx context.Context, order *models.OrderDB, ranking string, limit int) ([]models.OrderDB, error) {
	orderBy, ok := rankOrderBy[ranking]
	if !ok {
		orderBy = rankOrderBy[RankOldestFirst]
	}

	query := `
		SELECT ` + orderColumns + `
		FROM orders
		WHERE status = $1
		  AND role <> $2
		  AND pickup_location = $3
		  AND delivery_location = $4
		  AND order_id <> $5
		  AND NOT (order_id::text = ANY($6::text[]))
		  AND NOT ($5::text = ANY(rejected_matches))
		ORDER BY ` + orderBy + `
		LIMIT $7
	`

	rejected := order.RejectedMatches
	if rejected == nil {
		rejected = pq.StringArray{}
	}

	var candidates []models.OrderDB
	err := sqlx.SelectContext(ctx, r.executor(ctx), &candidates, query,
		models.OrderStatusPending, order.Role, order.PickupLocation, order.DeliveryLocation,
		order.OrderID, rejected, limit)

	logger.Log.Debugw("order list candidates",
		"order_id", order.OrderID,
		"route", order.PickupLocation+"->"+order.DeliveryLocation,
		"found", len(candidates),
		"error", err,
	)
	if err != nil {
		return nil, err
	}
	return candidates, nil
}

// ClaimPending moves an order from pending to pending_confirmation.
// Returns sql.ErrNoRows if the order was not pending anymore, i.e. the
// claim lost a race or the order left circulation.
func (r *OrderRepository) ClaimPending(ctx context.Context, orderID uuid.UUID) error {
	const query = `
		UPDATE orders
		SET status = $2, updated_at = NOW()
		WHERE order_id = $1 AND status = $3
	`

	res, err := r.executor(ctx).ExecContext(ctx, query,
		orderID, models.OrderStatusPendingConfirmation, models.OrderStatusPending)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// Unclaim reverts a pending_confirmation order back to pending. Used when
// a proposal claimed its own order but found no claimable candidate.
func (r *OrderRepository) Unclaim(ctx context.Context, orderID uuid.UUID) error {
	const query = `
		UPDATE orders
		SET status = $2, updated_at = NOW()
		WHERE order_id = $1 AND status = $3
	`

	_, err := r.executor(ctx).ExecContext(ctx, query,
		orderID, models.OrderStatusPending, models.OrderStatusPendingConfirmation)
	return err
}

// SetMatched finalizes the matching fields of an order.
func (r *OrderRepository) SetMatched(ctx context.Context, orderID, matchedOrderID, chatID uuid.UUID) error {
	const query = `
		UPDATE orders
		SET status = $2, matched_order_id = $3, chat_id = $4, updated_at = NOW()
		WHERE order_id = $1
	`

	_, err := r.executor(ctx).ExecContext(ctx, query,
		orderID, models.OrderStatusMatched, matchedOrderID, chatID)
	return err
}

// ResetToPending rolls an order back to pending after a reject and
// appends the counterpart to rejected_matches. The append is duplicate-free
// and monotonic; the set is never cleared.
func (r *OrderRepository) ResetToPending(ctx context.Context, orderID, rejectedOrderID uuid.UUID) error {
	const query = `
		UPDATE orders
		SET status = $2,
		    matched_order_id = NULL,
		    chat_id = NULL,
		    rejected_matches = CASE
		        WHEN $3 = ANY(rejected_matches) THEN rejected_matches
		        ELSE array_append(rejected_matches, $3)
		    END,
		    updated_at = NOW()
		WHERE order_id = $1
	`

	_, err := r.executor(ctx).ExecContext(ctx, query,
		orderID, models.OrderStatusPending, rejectedOrderID.String())
	return err
}

// ListUpdatedSince returns orders touched after the given time; used by
// the synchronizer's reconciliation pass.
func (r *OrderRepository) ListUpdatedSince(ctx context.Context, since time.Time, limit int) ([]models.OrderDB, error) {
	query := `
		SELECT ` + orderColumns + `
		FROM orders
		WHERE updated_at >= $1
		ORDER BY updated_at ASC
		LIMIT $2
	`

	var orders []models.OrderDB
	err := sqlx.SelectContext(ctx, r.executor(ctx), &orders, query, since, limit)
	if err != nil {
		return nil, err
	}
	return orders, nil
}
