package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/evgsol/matchpay/internal/logger"
	"github.com/evgsol/matchpay/internal/models"
)

// Depositor tops up the caller's wallet.
type Depositor interface {
	Deposit(ctx context.Context, userID uuid.UUID, amount int64) (*models.WalletDB, error)
}

// DepositRequest represents the JSON body for a deposit
// swagger:model DepositRequest
type DepositRequest struct {
	// Amount in minor units
	// required: true
	// minimum: 1
	Amount int64 `json:"amount"`
}

// DepositResponse represents a successful deposit
// swagger:model DepositResponse
type DepositResponse struct {
	// Success message
	// default: Account topped up successfully
	Message string `json:"message"`

	// Available balance after the deposit, in minor units
	Balance int64 `json:"balance"`
}

// NewDepositHandler returns an HTTP handler for wallet top-ups.
// @Summary Deposit funds
// @Description Top up the caller's wallet, creating it on first use.
// @Tags wallet
// @Accept json
// @Produce json
// @Param request body handlers.DepositRequest true "Deposit Request"
// @Success 200 {object} handlers.DepositResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid amount"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.ErrorResponse "Wallet is suspended"
// @Router /wallet/deposit [post]
// @Security BearerAuth
func NewDepositHandler(svc Depositor, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := userFromRequest(tokener, r)
		if !ok {
			writeJSON(w, http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
			return
		}

		var req DepositRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Amount <= 0 {
			logger.Log.Errorw("failed to decode deposit request", "error", err)
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid amount"})
			return
		}

		wallet, err := svc.Deposit(r.Context(), claims.UserID, req.Amount)
		if err != nil {
			logger.Log.Errorw("failed to deposit", "user_id", claims.UserID, "amount", req.Amount, "error", err)
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, DepositResponse{
			Message: "Account topped up successfully",
			Balance: wallet.Balance,
		})
	}
}
