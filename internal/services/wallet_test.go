package services_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/evgsol/matchpay/internal/models"
	"github.com/evgsol/matchpay/internal/services"
)

func TestWalletService_Deposit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	walletID := uuid.New()

	tests := []struct {
		name        string
		amount      int64
		wallet      *models.WalletDB
		adjustErr   error
		wantErr     error
		wantBalance int64
	}{
		{
			name:   "successful deposit",
			amount: 500000,
			wallet: &models.WalletDB{
				WalletID: walletID,
				UserID:   userID,
				Balance:  0,
				Status:   models.WalletStatusActive,
			},
			wantBalance: 500000,
		},
		{
			name:   "suspended wallet",
			amount: 1000,
			wallet: &models.WalletDB{
				WalletID: walletID,
				UserID:   userID,
				Status:   models.WalletStatusSuspended,
			},
			wantErr: services.ErrWalletSuspended,
		},
		{
			name:   "adjust error",
			amount: 1000,
			wallet: &models.WalletDB{
				WalletID: walletID,
				UserID:   userID,
				Status:   models.WalletStatusActive,
			},
			adjustErr: errors.New("db error"),
			wantErr:   errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockStore := services.NewMockWalletStore(ctrl)
			mockTxns := services.NewMockTransactionInserter(ctrl)

			svc := services.NewWalletService(mockStore, mockTxns, nil)

			mockStore.EXPECT().
				GetOrCreate(gomock.Any(), userID).
				Return(tt.wallet, nil)

			if tt.wallet.Status == models.WalletStatusActive {
				mockStore.EXPECT().
					AdjustBalance(gomock.Any(), walletID, tt.amount).
					Return(tt.adjustErr)
			}
			if tt.wallet.Status == models.WalletStatusActive && tt.adjustErr == nil {
				mockTxns.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, txn *models.TransactionDB) error {
						assert.Equal(t, models.TxnTypeDeposit, txn.Type)
						assert.Equal(t, tt.amount, txn.Amount)
						assert.Equal(t, walletID, txn.WalletID)
						assert.Equal(t, models.TxnStatusCompleted, txn.Status)
						assert.NotEqual(t, uuid.Nil, txn.TransactionID)
						return nil
					})
			}

			wallet, err := svc.Deposit(context.Background(), userID, tt.amount)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Nil(t, wallet)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.wantBalance, wallet.Balance)
		})
	}
}

func TestWalletService_Deposit_NotifyFailureIsSwallowed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	walletID := uuid.New()

	mockStore := services.NewMockWalletStore(ctrl)
	mockTxns := services.NewMockTransactionInserter(ctrl)
	mockNotifier := services.NewMockNotifier(ctrl)

	svc := services.NewWalletService(mockStore, mockTxns, mockNotifier)

	mockStore.EXPECT().
		GetOrCreate(gomock.Any(), userID).
		Return(&models.WalletDB{WalletID: walletID, UserID: userID, Status: models.WalletStatusActive}, nil)
	mockStore.EXPECT().
		AdjustBalance(gomock.Any(), walletID, int64(1000)).
		Return(nil)
	mockTxns.EXPECT().
		Insert(gomock.Any(), gomock.Any()).
		Return(nil)
	mockNotifier.EXPECT().
		Publish(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("broker down"))

	wallet, err := svc.Deposit(context.Background(), userID, 1000)
	assert.NoError(t, err)
	assert.Equal(t, int64(1000), wallet.Balance)
}

func TestWalletService_GetBalance(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()

	tests := []struct {
		name       string
		wallet     *models.WalletDB
		storeErr   error
		wantErr    bool
		wantTotal  int64
		wantFrozen int64
	}{
		{
			name:       "existing wallet",
			wallet:     &models.WalletDB{Balance: 400000, FrozenBalance: 100000},
			wantTotal:  400000,
			wantFrozen: 100000,
		},
		{
			name:     "no wallet yet means zero balances",
			storeErr: sql.ErrNoRows,
		},
		{
			name:     "store error",
			storeErr: errors.New("db error"),
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockStore := services.NewMockWalletStore(ctrl)
			svc := services.NewWalletService(mockStore, services.NewMockTransactionInserter(ctrl), nil)

			mockStore.EXPECT().
				GetByUserID(gomock.Any(), userID).
				Return(tt.wallet, tt.storeErr)

			balance, frozen, err := svc.GetBalance(context.Background(), userID)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.wantTotal, balance)
			assert.Equal(t, tt.wantFrozen, frozen)
		})
	}
}

func TestWalletService_AdjustBalance_GuardMapsToInsufficientFunds(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	walletID := uuid.New()

	mockStore := services.NewMockWalletStore(ctrl)
	svc := services.NewWalletService(mockStore, services.NewMockTransactionInserter(ctrl), nil)

	mockStore.EXPECT().
		AdjustBalance(gomock.Any(), walletID, int64(-100)).
		Return(sql.ErrNoRows)

	err := svc.AdjustBalance(context.Background(), walletID, -100)
	assert.ErrorIs(t, err, services.ErrInsufficientFunds)
}
