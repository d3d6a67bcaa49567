package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/evgsol/matchpay/internal/logger"
)

// MatchRejecter defines the rejection interface used by this handler.
type MatchRejecter interface {
	Reject(ctx context.Context, orderID, userID uuid.UUID) error
}

// RejectRequest represents the JSON body for rejecting a match
// swagger:model RejectRequest
type RejectRequest struct {
	// Order whose proposed match is being rejected
	// required: true
	OrderID uuid.UUID `json:"order_id"`
}

// RejectResponse represents a successful rejection
// swagger:model RejectResponse
type RejectResponse struct {
	// Success message
	// default: Match rejected
	Message string `json:"message"`
}

// NewRejectHandler returns an HTTP handler for rejecting a proposed match.
// @Summary Reject a match
// @Description Roll both orders back to pending, record the mutual exclusion and re-seek a partner for each side.
// @Tags matching
// @Accept json
// @Produce json
// @Param request body handlers.RejectRequest true "Reject Request"
// @Success 200 {object} handlers.RejectResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "No match to reject"
// @Router /matching/reject [post]
// @Security BearerAuth
func NewRejectHandler(svc MatchRejecter, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := userFromRequest(tokener, r)
		if !ok {
			writeJSON(w, http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
			return
		}

		var req RejectRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.OrderID == uuid.Nil {
			logger.Log.Errorw("failed to decode reject request", "error", err)
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
			return
		}

		if err := svc.Reject(r.Context(), req.OrderID, claims.UserID); err != nil {
			logger.Log.Errorw("failed to reject match", "order_id", req.OrderID, "user_id", claims.UserID, "error", err)
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, RejectResponse{Message: "Match rejected"})
	}
}
