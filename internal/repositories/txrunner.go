package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"
)

// TxRunner runs a function inside a database transaction made visible to
// repositories through the context, the same way the HTTP transaction
// middleware does for request handlers. Background loops use it for
// multi-row transitions outside any request.
type TxRunner struct {
	db    *sqlx.DB
	txCtx func(ctx context.Context, tx *sqlx.Tx) context.Context
}

func NewTxRunner(db *sqlx.DB, txCtx func(ctx context.Context, tx *sqlx.Tx) context.Context) *TxRunner {
	return &TxRunner{db: db, txCtx: txCtx}
}

// RunInTx begins a transaction, runs fn with it in the context, and
// commits, rolling back on error or panic.
func (r *TxRunner) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	tx, err := r.db.Beginx()
	if err != nil {
		return err
	}

	defer func() {
		if rec := recover(); rec != nil {
			tx.Rollback()
			panic(rec)
		}
	}()

	if err := fn(r.txCtx(ctx, tx)); err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit()
}
