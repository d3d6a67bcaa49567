package handlers

import (
	"context"
	"database/sql"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/evgsol/matchpay/internal/logger"
	"github.com/evgsol/matchpay/internal/models"
)

// OrderReader loads the order whose matching state is being queried.
type OrderReader interface {
	GetByID(ctx context.Context, orderID uuid.UUID) (*models.OrderDB, error)
}

// MatchingStatusResponse describes the matching state of one order
// swagger:model MatchingStatusResponse
type MatchingStatusResponse struct {
	// Order identifier
	OrderID string `json:"order_id"`

	// Current lifecycle status of the order
	Status string `json:"status"`

	// Counterpart order, present once a match is proposed or confirmed
	MatchedOrderID string `json:"matched_order_id,omitempty"`

	// Chat shared with the counterpart, present once confirmed
	ChatID string `json:"chat_id,omitempty"`

	// Orders this one refuses to match with again
	RejectedMatches []string `json:"rejected_matches"`
}

// NewMatchingStatusHandler returns an HTTP handler that reports an
// order's matching state.
// @Summary Get matching status
// @Description Report the order's lifecycle status, its counterpart and chat when matched, and its rejection list.
// @Tags matching
// @Produce json
// @Param orderID path string true "Order ID"
// @Success 200 {object} handlers.MatchingStatusResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid order id"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Order not found"
// @Router /orders/{orderID}/matching [get]
// @Security BearerAuth
func NewMatchingStatusHandler(orders OrderReader, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := userFromRequest(tokener, r); !ok {
			writeJSON(w, http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
			return
		}

		orderID, err := uuid.Parse(chi.URLParam(r, "orderID"))
		if err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid order id"})
			return
		}

		order, err := orders.GetByID(r.Context(), orderID)
		if errors.Is(err, sql.ErrNoRows) {
			writeJSON(w, http.StatusNotFound, ErrorResponse{Error: "Not found"})
			return
		}
		if err != nil {
			logger.Log.Errorw("failed to get order", "order_id", orderID, "error", err)
			writeError(w, err)
			return
		}

		resp := MatchingStatusResponse{
			OrderID:         order.OrderID.String(),
			Status:          order.Status,
			RejectedMatches: order.RejectedMatches,
		}
		if resp.RejectedMatches == nil {
			resp.RejectedMatches = []string{}
		}
		if order.MatchedOrderID != nil {
			resp.MatchedOrderID = order.MatchedOrderID.String()
		}
		if order.ChatID != nil {
			resp.ChatID = order.ChatID.String()
		}
		writeJSON(w, http.StatusOK, resp)
	}
}
