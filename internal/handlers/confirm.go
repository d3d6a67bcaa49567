package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/evgsol/matchpay/internal/logger"
)

// MatchConfirmer defines the confirmation interface used by this handler.
type MatchConfirmer interface {
	Confirm(ctx context.Context, orderID, userID uuid.UUID) (uuid.UUID, error)
}

// ConfirmRequest represents the JSON body for confirming a match
// swagger:model ConfirmRequest
type ConfirmRequest struct {
	// Order whose proposed match is being confirmed
	// required: true
	OrderID uuid.UUID `json:"order_id"`
}

// ConfirmResponse represents a successful confirmation
// swagger:model ConfirmResponse
type ConfirmResponse struct {
	// Success message
	// default: Match confirmed
	Message string `json:"message"`

	// Communication channel shared by the two matched users
	ChatID string `json:"chat_id"`
}

// NewConfirmHandler returns an HTTP handler for confirming a proposed match.
// @Summary Confirm a match
// @Description Commit the proposed match and provision (or reuse) the chat between the two users. Confirming an already matched order returns the existing chat.
// @Tags matching
// @Accept json
// @Produce json
// @Param request body handlers.ConfirmRequest true "Confirm Request"
// @Success 200 {object} handlers.ConfirmResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "No match to confirm"
// @Router /matching/confirm [post]
// @Security BearerAuth
func NewConfirmHandler(svc MatchConfirmer, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := userFromRequest(tokener, r)
		if !ok {
			writeJSON(w, http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
			return
		}

		var req ConfirmRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.OrderID == uuid.Nil {
			logger.Log.Errorw("failed to decode confirm request", "error", err)
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
			return
		}

		chatID, err := svc.Confirm(r.Context(), req.OrderID, claims.UserID)
		if err != nil {
			logger.Log.Errorw("failed to confirm match", "order_id", req.OrderID, "user_id", claims.UserID, "error", err)
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, ConfirmResponse{
			Message: "Match confirmed",
			ChatID:  chatID.String(),
		})
	}
}
