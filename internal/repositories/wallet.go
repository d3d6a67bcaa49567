package repositories

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/evgsol/matchpay/internal/logger"
	"github.com/evgsol/matchpay/internal/models"
)

// WalletRepository handles wallet rows. Balance mutations are single
// guarded statements: the WHERE clause refuses any update that would take
// balance or frozen_balance negative, which is the storage-level backstop
// for the wallet invariants.
type WalletRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewWalletRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *WalletRepository {
	return &WalletRepository{db: db, txGetter: txGetter}
}

func (r *WalletRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// GetOrCreate lazily creates the user's wallet on first use and returns
// the existing row unchanged otherwise.
func (r *WalletRepository) GetOrCreate(ctx context.Context, userID uuid.UUID) (*models.WalletDB, error) {
	query := `
		INSERT INTO wallets (wallet_id, user_id, balance, frozen_balance, currency, status, created_at, updated_at)
		VALUES ($1, $2, 0, 0, $3, $4, NOW(), NOW())
		ON CONFLICT (user_id)
		DO UPDATE SET user_id = EXCLUDED.user_id
		RETURNING wallet_id, user_id, balance, frozen_balance, currency, status, created_at, updated_at
	`

	var wallet models.WalletDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &wallet, query,
		uuid.New(), userID, models.DefaultCurrency, models.WalletStatusActive)

	logger.Log.Debugw("wallet get-or-create",
		"query", strings.Join(strings.Fields(query), " "),
		"user_id", userID,
		"error", err,
	)
	if err != nil {
		return nil, err
	}
	return &wallet, nil
}

// GetByUserID returns the user's wallet or sql.ErrNoRows.
func (r *WalletRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*models.WalletDB, error) {
	const query = `
		SELECT wallet_id, user_id, balance, frozen_balance, currency, status, created_at, updated_at
		FROM wallets
		WHERE user_id = $1
	`

	var wallet models.WalletDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &wallet, query, userID)
	if err != nil {
		return nil, err
	}
	return &wallet, nil
}

// AdjustBalance applies a signed delta to the available balance.
// Returns sql.ErrNoRows when the guard refuses (result would be negative).
func (r *WalletRepository) AdjustBalance(ctx context.Context, walletID uuid.UUID, delta int64) error {
	query := `
		UPDATE wallets
		SET balance = balance + $2, updated_at = NOW()
		WHERE wallet_id = $1 AND balance + $2 >= 0
		RETURNING balance
	`

	var balance int64
	err := sqlx.GetContext(ctx, r.executor(ctx), &balance, query, walletID, delta)

	logger.Log.Debugw("wallet adjust balance",
		"wallet_id", walletID,
		"delta", delta,
		"result", balance,
		"error", err,
	)

	return err
}

// AdjustFrozen applies a signed delta to the frozen balance.
// Returns sql.ErrNoRows when the guard refuses (result would be negative).
func (r *WalletRepository) AdjustFrozen(ctx context.Context, walletID uuid.UUID, delta int64) error {
	query := `
		UPDATE wallets
		SET frozen_balance = frozen_balance + $2, updated_at = NOW()
		WHERE wallet_id = $1 AND frozen_balance + $2 >= 0
		RETURNING frozen_balance
	`

	var frozen int64
	err := sqlx.GetContext(ctx, r.executor(ctx), &frozen, query, walletID, delta)

	logger.Log.Debugw("wallet adjust frozen",
		"wallet_id", walletID,
		"delta", delta,
		"result", frozen,
		"error", err,
	)

	return err
}
