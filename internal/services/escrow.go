package services

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/evgsol/matchpay/internal/logger"
	"github.com/evgsol/matchpay/internal/models"
)

// Settlement outcomes accepted by Settle.
const (
	OutcomeRelease = "release"
	OutcomeRefund  = "refund"
)

// EscrowWallets is the slice of the wallet manager the coordinator uses.
type EscrowWallets interface {
	EnsureWallet(ctx context.Context, userID uuid.UUID) (*models.WalletDB, error)
	EnsureActive(wallet *models.WalletDB) error
	HasSufficientBalance(wallet *models.WalletDB, amount int64) bool
	AdjustBalance(ctx context.Context, walletID uuid.UUID, delta int64) error
	AdjustFrozen(ctx context.Context, walletID uuid.UUID, delta int64) error
	RecordTransaction(ctx context.Context, txn *models.TransactionDB) error
}

// HoldStore finds and closes escrow_hold audit rows.
type HoldStore interface {
	FindOpenHold(ctx context.Context, orderID uuid.UUID) (*models.TransactionDB, error)
	CloseHold(ctx context.Context, holdID, closedBy uuid.UUID) error
}

// OrderGetter resolves the counterpart order during settlement.
type OrderGetter interface {
	GetByID(ctx context.Context, orderID uuid.UUID) (*models.OrderDB, error)
}

// EscrowService sequences hold -> release/refund across two wallets.
// Settlement is keyed by the originating escrow_hold row: release and
// refund first close it with a compare-and-swap, so exactly one of them
// can ever succeed per held order and a repeat attempt fails with
// ErrAlreadySettled before any balance moves.
type EscrowService struct {
	wallets    EscrowWallets
	holds      HoldStore
	orders     OrderGetter
	feeFlat    int64
	feePercent decimal.Decimal // e.g. 1.5 for a 1.5% release fee
}

// NewEscrowService creates a new EscrowService. feePercent is a
// percentage of the held amount charged on release; refunds carry no fee.
func NewEscrowService(wallets EscrowWallets, holds HoldStore, orders OrderGetter, feeFlat int64, feePercent float64) *EscrowService {
	return &EscrowService{
		wallets:    wallets,
		holds:      holds,
		orders:     orders,
		feeFlat:    feeFlat,
		feePercent: decimal.NewFromFloat(feePercent),
	}
}

// Hold reserves the order's escrow amount from the payer's available
// balance into the frozen balance. This is the critical precondition for
// an order entering circulation: a failed hold aborts order creation.
func (s *EscrowService) Hold(ctx context.Context, order *models.OrderDB) error {
	wallet, err := s.wallets.EnsureWallet(ctx, order.UserID)
	if err != nil {
		return err
	}
	if err := s.wallets.EnsureActive(wallet); err != nil {
		logger.Log.Warnw("escrow hold on inactive wallet", "order_id", order.OrderID, "user_id", order.UserID, "status", wallet.Status)
		return err
	}
	if !s.wallets.HasSufficientBalance(wallet, order.EscrowAmount) {
		logger.Log.Warnw("escrow hold with insufficient balance",
			"order_id", order.OrderID, "user_id", order.UserID,
			"balance", wallet.Balance, "amount", order.EscrowAmount)
		return ErrInsufficientFunds
	}

	if err := s.wallets.AdjustBalance(ctx, wallet.WalletID, -order.EscrowAmount); err != nil {
		return err
	}
	if err := s.wallets.AdjustFrozen(ctx, wallet.WalletID, order.EscrowAmount); err != nil {
		return err
	}

	txn := &models.TransactionDB{
		WalletID:  wallet.WalletID,
		Type:      models.TxnTypeEscrowHold,
		Amount:    order.EscrowAmount,
		Reference: order.OrderID,
	}
	if err := s.wallets.RecordTransaction(ctx, txn); err != nil {
		return err
	}

	logger.Log.Infow("escrow held",
		"order_id", order.OrderID, "wallet_id", wallet.WalletID, "amount", order.EscrowAmount)
	return nil
}

// ReleaseToCustomer moves the held amount, minus the fee, from the
// payer's frozen balance to the counterpart's available balance. Called
// exactly once, when the order reaches its terminal success state.
func (s *EscrowService) ReleaseToCustomer(ctx context.Context, order *models.OrderDB) error {
	hold, err := s.openHold(ctx, order.OrderID)
	if err != nil {
		return err
	}

	if order.MatchedOrderID == nil {
		return ErrOrderNotMatched
	}
	counterpart, err := s.orders.GetByID(ctx, *order.MatchedOrderID)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrOrderNotFound
	}
	if err != nil {
		return err
	}

	payee, err := s.wallets.EnsureWallet(ctx, counterpart.UserID)
	if err != nil {
		return err
	}
	if err := s.wallets.EnsureActive(payee); err != nil {
		return err
	}

	releaseID := uuid.New()
	if err := s.holds.CloseHold(ctx, hold.TransactionID, releaseID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrAlreadySettled
		}
		return err
	}

	fee := s.fee(hold.Amount)
	if err := s.wallets.AdjustFrozen(ctx, hold.WalletID, -hold.Amount); err != nil {
		return err
	}
	if err := s.wallets.AdjustBalance(ctx, payee.WalletID, hold.Amount-fee); err != nil {
		return err
	}

	txn := &models.TransactionDB{
		TransactionID: releaseID,
		WalletID:      payee.WalletID,
		Type:          models.TxnTypeEscrowRelease,
		Amount:        hold.Amount - fee,
		Fee:           fee,
		Reference:     order.OrderID,
	}
	if err := s.wallets.RecordTransaction(ctx, txn); err != nil {
		return err
	}

	logger.Log.Infow("escrow released",
		"order_id", order.OrderID, "payer_wallet", hold.WalletID, "payee_wallet", payee.WalletID,
		"amount", hold.Amount, "fee", fee)
	return nil
}

// RefundToSender returns the held amount to the payer's available
// balance. Called exactly once, on terminal cancellation.
func (s *EscrowService) RefundToSender(ctx context.Context, order *models.OrderDB) error {
	hold, err := s.openHold(ctx, order.OrderID)
	if err != nil {
		return err
	}

	refundID := uuid.New()
	if err := s.holds.CloseHold(ctx, hold.TransactionID, refundID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrAlreadySettled
		}
		return err
	}

	if err := s.wallets.AdjustFrozen(ctx, hold.WalletID, -hold.Amount); err != nil {
		return err
	}
	if err := s.wallets.AdjustBalance(ctx, hold.WalletID, hold.Amount); err != nil {
		return err
	}

	txn := &models.TransactionDB{
		TransactionID: refundID,
		WalletID:      hold.WalletID,
		Type:          models.TxnTypeEscrowRefund,
		Amount:        hold.Amount,
		Reference:     order.OrderID,
	}
	if err := s.wallets.RecordTransaction(ctx, txn); err != nil {
		return err
	}

	logger.Log.Infow("escrow refunded",
		"order_id", order.OrderID, "wallet_id", hold.WalletID, "amount", hold.Amount)
	return nil
}

// Settle is the typed settlement entry point for the order-fulfillment
// flow: completed orders release to the counterpart, cancelled orders
// refund the payer.
func (s *EscrowService) Settle(ctx context.Context, order *models.OrderDB, outcome string) error {
	switch outcome {
	case OutcomeRelease:
		return s.ReleaseToCustomer(ctx, order)
	case OutcomeRefund:
		return s.RefundToSender(ctx, order)
	default:
		return ErrUnknownOutcome
	}
}

func (s *EscrowService) openHold(ctx context.Context, orderID uuid.UUID) (*models.TransactionDB, error) {
	hold, err := s.holds.FindOpenHold(ctx, orderID)
	if errors.Is(err, sql.ErrNoRows) {
		logger.Log.Errorw("settlement attempt with no open hold", "order_id", orderID)
		return nil, ErrAlreadySettled
	}
	if err != nil {
		return nil, err
	}
	return hold, nil
}

// fee computes the flat + percentage release fee in minor units, capped
// at the held amount.
func (s *EscrowService) fee(amount int64) int64 {
	percent := decimal.NewFromInt(amount).
		Mul(s.feePercent).
		Div(decimal.NewFromInt(100)).
		Round(0).
		IntPart()
	fee := s.feeFlat + percent
	if fee > amount {
		fee = amount
	}
	if fee < 0 {
		fee = 0
	}
	return fee
}
