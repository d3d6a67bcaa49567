package repositories

import (
	"context"
	"database/sql"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"

	"github.com/evgsol/matchpay/internal/models"
)

func getWalletRow(t *testing.T, db *sqlx.DB, walletID uuid.UUID) (balance, frozen int64) {
	err := db.QueryRow(`SELECT balance, frozen_balance FROM wallets WHERE wallet_id=$1`, walletID).
		Scan(&balance, &frozen)
	assert.NoError(t, err)
	return balance, frozen
}

func TestWalletRepository_GetOrCreate(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()
	ctx := context.Background()

	repo := NewWalletRepository(db, nil)
	userID := uuid.New()

	wallet, err := repo.GetOrCreate(ctx, userID)
	assert.NoError(t, err)
	assert.Equal(t, userID, wallet.UserID)
	assert.Zero(t, wallet.Balance)
	assert.Zero(t, wallet.FrozenBalance)
	assert.Equal(t, models.DefaultCurrency, wallet.Currency)
	assert.Equal(t, models.WalletStatusActive, wallet.Status)

	// Second call returns the same row unchanged.
	again, err := repo.GetOrCreate(ctx, userID)
	assert.NoError(t, err)
	assert.Equal(t, wallet.WalletID, again.WalletID)

	var count int
	assert.NoError(t, db.Get(&count, `SELECT COUNT(*) FROM wallets WHERE user_id=$1`, userID))
	assert.Equal(t, 1, count)
}

func TestWalletRepository_GetByUserID(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()
	ctx := context.Background()

	repo := NewWalletRepository(db, nil)

	created, err := repo.GetOrCreate(ctx, uuid.New())
	assert.NoError(t, err)

	got, err := repo.GetByUserID(ctx, created.UserID)
	assert.NoError(t, err)
	assert.Equal(t, created.WalletID, got.WalletID)

	_, err = repo.GetByUserID(ctx, uuid.New())
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestWalletRepository_AdjustBalance(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()
	ctx := context.Background()

	repo := NewWalletRepository(db, nil)
	wallet, err := repo.GetOrCreate(ctx, uuid.New())
	assert.NoError(t, err)

	assert.NoError(t, repo.AdjustBalance(ctx, wallet.WalletID, 100000))
	assert.NoError(t, repo.AdjustBalance(ctx, wallet.WalletID, -40000))

	balance, _ := getWalletRow(t, db, wallet.WalletID)
	assert.Equal(t, int64(60000), balance)

	// The guard refuses a debit past zero and leaves the row untouched.
	err = repo.AdjustBalance(ctx, wallet.WalletID, -60001)
	assert.ErrorIs(t, err, sql.ErrNoRows)
	balance, _ = getWalletRow(t, db, wallet.WalletID)
	assert.Equal(t, int64(60000), balance)
}

func TestWalletRepository_AdjustFrozen(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()
	ctx := context.Background()

	repo := NewWalletRepository(db, nil)
	wallet, err := repo.GetOrCreate(ctx, uuid.New())
	assert.NoError(t, err)

	assert.NoError(t, repo.AdjustFrozen(ctx, wallet.WalletID, 100000))

	_, frozen := getWalletRow(t, db, wallet.WalletID)
	assert.Equal(t, int64(100000), frozen)

	err = repo.AdjustFrozen(ctx, wallet.WalletID, -100001)
	assert.ErrorIs(t, err, sql.ErrNoRows)
	_, frozen = getWalletRow(t, db, wallet.WalletID)
	assert.Equal(t, int64(100000), frozen)
}

func TestWalletRepository_AdjustBalanceConcurrency(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()
	ctx := context.Background()

	repo := NewWalletRepository(db, nil)
	wallet, err := repo.GetOrCreate(ctx, uuid.New())
	assert.NoError(t, err)

	const numGoroutines = 200
	var wg sync.WaitGroup
	wg.Add(numGoroutines)

	for i := 0; i < numGoroutines; i++ {
		go func() {
			defer wg.Done()
			_ = repo.AdjustBalance(ctx, wallet.WalletID, 10)
		}()
	}
	wg.Wait()

	balance, _ := getWalletRow(t, db, wallet.WalletID)
	assert.Equal(t, int64(numGoroutines*10), balance)
}
