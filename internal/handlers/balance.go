package handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/evgsol/matchpay/internal/logger"
	"github.com/evgsol/matchpay/internal/models"
)

// BalanceGetter reads the caller's balances.
type BalanceGetter interface {
	GetBalance(ctx context.Context, userID uuid.UUID) (balance, frozen int64, err error)
}

// BalanceResponse represents the caller's wallet balances
// swagger:model BalanceResponse
type BalanceResponse struct {
	// Available balance in minor units
	Balance int64 `json:"balance"`

	// Balance held in escrow, in minor units
	FrozenBalance int64 `json:"frozen_balance"`

	// Wallet currency code
	Currency string `json:"currency"`
}

// NewBalanceHandler returns an HTTP handler for reading balances.
// @Summary Get balance
// @Description Return the caller's available and frozen balances. A user without a wallet has zero of both.
// @Tags wallet
// @Produce json
// @Success 200 {object} handlers.BalanceResponse
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /balance [get]
// @Security BearerAuth
func NewBalanceHandler(svc BalanceGetter, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := userFromRequest(tokener, r)
		if !ok {
			writeJSON(w, http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
			return
		}

		balance, frozen, err := svc.GetBalance(r.Context(), claims.UserID)
		if err != nil {
			logger.Log.Errorw("failed to get balance", "user_id", claims.UserID, "error", err)
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, BalanceResponse{
			Balance:       balance,
			FrozenBalance: frozen,
			Currency:      models.DefaultCurrency,
		})
	}
}
