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

// EscrowHolder reserves an order's escrow amount.
type EscrowHolder interface {
	Hold(ctx context.Context, order *models.OrderDB) error
}

// HoldRequest represents the JSON body for an escrow hold
// swagger:model HoldRequest
type HoldRequest struct {
	// Order whose escrow amount is reserved from its owner's balance
	// required: true
	OrderID uuid.UUID `json:"order_id"`
}

// HoldResponse represents a successful escrow hold
// swagger:model HoldResponse
type HoldResponse struct {
	// Success message
	// default: Escrow held
	Message string `json:"message"`

	// Amount moved into the frozen balance, in minor units
	Amount int64 `json:"amount"`
}

// NewHoldHandler returns an HTTP handler that reserves escrow for an order.
// @Summary Hold escrow
// @Description Move the order's escrow amount from the owner's available balance into the frozen balance. A failed hold must abort order creation.
// @Tags escrow
// @Accept json
// @Produce json
// @Param request body handlers.HoldRequest true "Hold Request"
// @Success 200 {object} handlers.HoldResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 402 {object} handlers.ErrorResponse "Insufficient balance"
// @Failure 403 {object} handlers.ErrorResponse "Wallet is suspended"
// @Failure 404 {object} handlers.ErrorResponse "Order not found"
// @Router /escrow/hold [post]
// @Security BearerAuth
func NewHoldHandler(svc EscrowHolder, orders OrderReader, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := userFromRequest(tokener, r)
		if !ok {
			writeJSON(w, http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
			return
		}

		var req HoldRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.OrderID == uuid.Nil {
			logger.Log.Errorw("failed to decode hold request", "error", err)
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
			return
		}

		order, err := orders.GetByID(r.Context(), req.OrderID)
		if errors.Is(err, sql.ErrNoRows) {
			writeJSON(w, http.StatusNotFound, ErrorResponse{Error: "Not found"})
			return
		}
		if err != nil {
			logger.Log.Errorw("failed to get order for hold", "order_id", req.OrderID, "error", err)
			writeError(w, err)
			return
		}

		if err := svc.Hold(r.Context(), order); err != nil {
			logger.Log.Errorw("failed to hold escrow", "order_id", req.OrderID, "user_id", claims.UserID, "error", err)
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, HoldResponse{
			Message: "Escrow held",
			Amount:  order.EscrowAmount,
		})
	}
}
