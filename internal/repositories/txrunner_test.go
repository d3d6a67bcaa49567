package repositories

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"

	"github.com/evgsol/matchpay/internal/models"
)

type txCtxKey struct{}

func txIntoContext(ctx context.Context, tx *sqlx.Tx) context.Context {
	return context.WithValue(ctx, txCtxKey{}, tx)
}

func txFromContext(ctx context.Context) *sqlx.Tx {
	tx, _ := ctx.Value(txCtxKey{}).(*sqlx.Tx)
	return tx
}

func TestTxRunner_CommitOnSuccess(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()
	ctx := context.Background()

	runner := NewTxRunner(db, txIntoContext)
	matches := NewMatchRepository(db, txFromContext)

	orderA := uuid.New()
	orderB := uuid.New()

	err := runner.RunInTx(ctx, func(txCtx context.Context) error {
		return matches.InsertPair(txCtx, orderA, orderB)
	})
	assert.NoError(t, err)

	match, err := matches.GetByOrderID(ctx, orderA)
	assert.NoError(t, err)
	assert.Equal(t, orderB, match.MatchedOrderID)
}

func TestTxRunner_RollbackOnError(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()
	ctx := context.Background()

	runner := NewTxRunner(db, txIntoContext)
	matches := NewMatchRepository(db, txFromContext)

	orderA := uuid.New()
	orderB := uuid.New()

	err := runner.RunInTx(ctx, func(txCtx context.Context) error {
		if err := matches.InsertPair(txCtx, orderA, orderB); err != nil {
			return err
		}
		return errors.New("abort")
	})
	assert.EqualError(t, err, "abort")

	// The insert never became visible.
	var count int
	assert.NoError(t, db.Get(&count, `SELECT COUNT(*) FROM matches WHERE order_id IN ($1, $2)`, orderA, orderB))
	assert.Zero(t, count)
}

func TestTxRunner_MultiRowTransitionIsAtomic(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()
	ctx := context.Background()

	runner := NewTxRunner(db, txIntoContext)
	matches := NewMatchRepository(db, txFromContext)
	orders := NewOrderRepository(db, txFromContext)

	orderA := seedOrder(t, db, orderSeed{role: models.RoleSender, status: models.OrderStatusPendingConfirmation})
	orderB := seedOrder(t, db, orderSeed{role: models.RoleCustomer, status: models.OrderStatusPendingConfirmation})
	assert.NoError(t, matches.InsertPair(ctx, orderA, orderB))

	// A reject-style transition: drop the pairing, reset both orders.
	err := runner.RunInTx(ctx, func(txCtx context.Context) error {
		if err := matches.DeletePair(txCtx, orderA, orderB); err != nil {
			return err
		}
		if err := orders.ResetToPending(txCtx, orderA, orderB); err != nil {
			return err
		}
		return orders.ResetToPending(txCtx, orderB, orderA)
	})
	assert.NoError(t, err)

	for _, id := range []uuid.UUID{orderA, orderB} {
		order, err := orders.GetByID(ctx, id)
		assert.NoError(t, err)
		assert.Equal(t, models.OrderStatusPending, order.Status)
	}
}
