package services

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/evgsol/matchpay/internal/logger"
	"github.com/evgsol/matchpay/internal/models"
)

// WalletStore defines the wallet row operations the manager needs.
type WalletStore interface {
	GetOrCreate(ctx context.Context, userID uuid.UUID) (*models.WalletDB, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (*models.WalletDB, error)
	AdjustBalance(ctx context.Context, walletID uuid.UUID, delta int64) error
	AdjustFrozen(ctx context.Context, walletID uuid.UUID, delta int64) error
}

// TransactionInserter appends audit records for balance mutations.
type TransactionInserter interface {
	Insert(ctx context.Context, txn *models.TransactionDB) error
}

// Notifier publishes fire-and-forget notification messages.
type Notifier interface {
	Publish(ctx context.Context, key string, value interface{}) error
}

// WalletService enforces per-wallet invariants: balances never go
// negative, suspended wallets are never mutated, and every mutation is
// paired with a transaction record inside the caller's database
// transaction.
type WalletService struct {
	wallets  WalletStore
	txns     TransactionInserter
	notifier Notifier
}

// NewWalletService creates a new WalletService. notifier may be nil.
func NewWalletService(wallets WalletStore, txns TransactionInserter, notifier Notifier) *WalletService {
	return &WalletService{wallets: wallets, txns: txns, notifier: notifier}
}

// EnsureWallet is an idempotent get-or-create for the user's wallet.
func (s *WalletService) EnsureWallet(ctx context.Context, userID uuid.UUID) (*models.WalletDB, error) {
	wallet, err := s.wallets.GetOrCreate(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to ensure wallet", "user_id", userID, "error", err)
		return nil, err
	}
	return wallet, nil
}

// EnsureActive fails with ErrWalletSuspended unless the wallet is active.
// Called before any mutating operation.
func (s *WalletService) EnsureActive(wallet *models.WalletDB) error {
	if wallet.Status != models.WalletStatusActive {
		return ErrWalletSuspended
	}
	return nil
}

// HasSufficientBalance is the read-only guard used before initiating a hold.
func (s *WalletService) HasSufficientBalance(wallet *models.WalletDB, amount int64) bool {
	return wallet.Balance >= amount
}

// AdjustBalance applies a signed delta to the available balance.
func (s *WalletService) AdjustBalance(ctx context.Context, walletID uuid.UUID, delta int64) error {
	err := s.wallets.AdjustBalance(ctx, walletID, delta)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrInsufficientFunds
	}
	return err
}

// AdjustFrozen applies a signed delta to the frozen balance.
func (s *WalletService) AdjustFrozen(ctx context.Context, walletID uuid.UUID, delta int64) error {
	err := s.wallets.AdjustFrozen(ctx, walletID, delta)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrInsufficientFunds
	}
	return err
}

// RecordTransaction appends the audit record paired with a mutation,
// filling in id, status and completion time when unset.
func (s *WalletService) RecordTransaction(ctx context.Context, txn *models.TransactionDB) error {
	if txn.TransactionID == uuid.Nil {
		txn.TransactionID = uuid.New()
	}
	if txn.Status == "" {
		txn.Status = models.TxnStatusCompleted
	}
	if txn.CompletedAt == nil && txn.Status == models.TxnStatusCompleted {
		now := time.Now()
		txn.CompletedAt = &now
	}
	return s.txns.Insert(ctx, txn)
}

// GetBalance returns the user's available and frozen balances. A user
// without a wallet has zero of both.
func (s *WalletService) GetBalance(ctx context.Context, userID uuid.UUID) (balance, frozen int64, err error) {
	wallet, err := s.wallets.GetByUserID(ctx, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, 0, nil
	}
	if err != nil {
		logger.Log.Errorw("failed to get wallet balance", "user_id", userID, "error", err)
		return 0, 0, err
	}
	return wallet.Balance, wallet.FrozenBalance, nil
}

// Deposit tops up the user's wallet and publishes a notification.
func (s *WalletService) Deposit(ctx context.Context, userID uuid.UUID, amount int64) (*models.WalletDB, error) {
	wallet, err := s.EnsureWallet(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := s.EnsureActive(wallet); err != nil {
		return nil, err
	}

	if err := s.AdjustBalance(ctx, wallet.WalletID, amount); err != nil {
		logger.Log.Errorw("failed to deposit", "user_id", userID, "amount", amount, "error", err)
		return nil, err
	}

	txn := &models.TransactionDB{
		WalletID: wallet.WalletID,
		Type:     models.TxnTypeDeposit,
		Amount:   amount,
	}
	if err := s.RecordTransaction(ctx, txn); err != nil {
		logger.Log.Errorw("failed to record deposit transaction", "user_id", userID, "error", err)
		return nil, err
	}

	wallet.Balance += amount
	s.notify(ctx, txn)
	return wallet, nil
}

// notify publishes a transaction notification; failures are logged and
// never surfaced, notification delivery must not affect the money flow.
func (s *WalletService) notify(ctx context.Context, txn *models.TransactionDB) {
	if s.notifier == nil {
		logger.Log.Warnw("notifier not configured, skipping publishing", "transaction_id", txn.TransactionID)
		return
	}
	if err := s.notifier.Publish(ctx, txn.TransactionID.String(), txn); err != nil {
		logger.Log.Errorw("failed to publish transaction notification", "transaction_id", txn.TransactionID, "error", err)
	}
}
