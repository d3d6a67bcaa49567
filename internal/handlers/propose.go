package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/evgsol/matchpay/internal/logger"
	"github.com/evgsol/matchpay/internal/models"
)

// MatchProposer defines the matching engine interface used by this handler.
type MatchProposer interface {
	ProposeMatch(ctx context.Context, orderID uuid.UUID) (*models.MatchDB, error)
}

// ProposeRequest represents the JSON body for proposing a match
// swagger:model ProposeRequest
type ProposeRequest struct {
	// Order to find a partner for
	// required: true
	OrderID uuid.UUID `json:"order_id"`
}

// ProposeResponse represents the result of a match proposal
// swagger:model ProposeResponse
type ProposeResponse struct {
	// Whether a compatible candidate was found and claimed
	Matched bool `json:"matched"`

	// The counterpart order, present when matched
	MatchedOrderID string `json:"matched_order_id,omitempty"`
}

// NewProposeHandler returns an HTTP handler that runs the matching engine
// for one order.
// @Summary Propose a match
// @Description Scan pending candidates on the same route and claim the first compatible one. Finding no candidate is a normal outcome, not an error.
// @Tags matching
// @Accept json
// @Produce json
// @Param request body handlers.ProposeRequest true "Propose Request"
// @Success 200 {object} handlers.ProposeResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Order not found"
// @Router /matching/propose [post]
// @Security BearerAuth
func NewProposeHandler(svc MatchProposer, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := userFromRequest(tokener, r)
		if !ok {
			writeJSON(w, http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
			return
		}

		var req ProposeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.OrderID == uuid.Nil {
			logger.Log.Errorw("failed to decode propose request", "error", err)
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
			return
		}

		match, err := svc.ProposeMatch(r.Context(), req.OrderID)
		if err != nil {
			logger.Log.Errorw("failed to propose match", "order_id", req.OrderID, "user_id", claims.UserID, "error", err)
			writeError(w, err)
			return
		}

		resp := ProposeResponse{}
		if match != nil {
			resp.Matched = true
			resp.MatchedOrderID = match.MatchedOrderID.String()
		}
		writeJSON(w, http.StatusOK, resp)
	}
}
