package handlers

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/evgsol/matchpay/internal/logger"
	"github.com/evgsol/matchpay/internal/models"
)

// EscrowSettler resolves a held order with a terminal outcome.
type EscrowSettler interface {
	Settle(ctx context.Context, order *models.OrderDB, outcome string) error
}

// SettleRequest represents the JSON body for an escrow settlement
// swagger:model SettleRequest
type SettleRequest struct {
	// Order whose held escrow is resolved
	// required: true
	OrderID uuid.UUID `json:"order_id"`

	// Terminal outcome, either release or refund
	// required: true
	// enum: release,refund
	Outcome string `json:"outcome"`
}

// SettleResponse represents a successful settlement
// swagger:model SettleResponse
type SettleResponse struct {
	// Success message
	// default: Escrow settled
	Message string `json:"message"`

	// The outcome that was applied
	Outcome string `json:"outcome"`
}

// NewSettleHandler returns an HTTP handler that settles a held order.
// @Summary Settle escrow
// @Description Resolve a held order exactly once: release pays the matched counterpart minus the fee, refund returns the full amount to the payer. A second settlement attempt returns a conflict.
// @Tags escrow
// @Accept json
// @Produce json
// @Param request body handlers.SettleRequest true "Settle Request"
// @Success 200 {object} handlers.SettleResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body or outcome"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Order not found"
// @Failure 409 {object} handlers.ErrorResponse "Already settled"
// @Router /escrow/settle [post]
// @Security BearerAuth
func NewSettleHandler(svc EscrowSettler, orders OrderReader, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := userFromRequest(tokener, r)
		if !ok {
			writeJSON(w, http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
			return
		}

		var req SettleRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.OrderID == uuid.Nil {
			logger.Log.Errorw("failed to decode settle request", "error", err)
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
			return
		}

		order, err := orders.GetByID(r.Context(), req.OrderID)
		if errors.Is(err, sql.ErrNoRows) {
			writeJSON(w, http.StatusNotFound, ErrorResponse{Error: "Not found"})
			return
		}
		if err != nil {
			logger.Log.Errorw("failed to get order for settlement", "order_id", req.OrderID, "error", err)
			writeError(w, err)
			return
		}

		if err := svc.Settle(r.Context(), order, req.Outcome); err != nil {
			logger.Log.Errorw("failed to settle escrow",
				"order_id", req.OrderID, "outcome", req.Outcome, "user_id", claims.UserID, "error", err)
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, SettleResponse{
			Message: "Escrow settled",
			Outcome: req.Outcome,
		})
	}
}
