package repositories

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/evgsol/matchpay/internal/models"
)

// TransactionRepository handles the append-only audit log backing wallet
// mutations. Escrow settlement is keyed by the originating escrow_hold
// row: closing it is a compare-and-swap on closed_by IS NULL, so a second
// release or refund for the same order finds no open hold.
type TransactionRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewTransactionRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *TransactionRepository {
	return &TransactionRepository{db: db, txGetter: txGetter}
}

func (r *TransactionRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Insert appends a transaction row.
func (r *TransactionRepository) Insert(ctx context.Context, txn *models.TransactionDB) error {
	const query = `
		INSERT INTO transactions
			(transaction_id, wallet_id, type, amount, fee, status, reference, metadata, created_at, completed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), $9)
	`

	_, err := r.executor(ctx).ExecContext(ctx, query,
		txn.TransactionID, txn.WalletID, txn.Type, txn.Amount, txn.Fee,
		txn.Status, txn.Reference, txn.Metadata, txn.CompletedAt)
	return err
}

// FindOpenHold returns the completed, unsettled escrow_hold for an order,
// locking it for the rest of the transaction. sql.ErrNoRows means the
// order has no open hold (never held, or already settled).
func (r *TransactionRepository) FindOpenHold(ctx context.Context, orderID uuid.UUID) (*models.TransactionDB, error) {
	const query = `
		SELECT transaction_id, wallet_id, type, amount, fee, status, reference, closed_by, metadata, created_at, completed_at
		FROM transactions
		WHERE reference = $1 AND type = $2 AND status = $3 AND closed_by IS NULL
		FOR UPDATE
	`

	var txn models.TransactionDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &txn, query,
		orderID, models.TxnTypeEscrowHold, models.TxnStatusCompleted)
	if err != nil {
		return nil, err
	}
	return &txn, nil
}

// CloseHold marks the hold as settled by the given release/refund
// transaction. Returns sql.ErrNoRows if the hold was already closed.
func (r *TransactionRepository) CloseHold(ctx context.Context, holdID, closedBy uuid.UUID) error {
	const query = `
		UPDATE transactions
		SET closed_by = $2
		WHERE transaction_id = $1 AND closed_by IS NULL
	`

	res, err := r.executor(ctx).ExecContext(ctx, query, holdID, closedBy)
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
