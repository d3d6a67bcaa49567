package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/evgsol/matchpay/internal/jwt"
	"github.com/evgsol/matchpay/internal/logger"
	"github.com/evgsol/matchpay/internal/services"
)

// Tokener extracts the authenticated user from a request.
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// ErrorResponse is the common error body.
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// default: Internal server error
	Error string `json:"error"`
}

// writeJSON writes a JSON response with the given status.
func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

// writeError maps service errors to client responses. Insufficient funds
// and suspended wallets are actionable for the client; everything else
// stays generic with the detail in logs.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrInsufficientFunds):
		writeJSON(w, http.StatusPaymentRequired, ErrorResponse{Error: "Insufficient balance"})
	case errors.Is(err, services.ErrWalletSuspended):
		writeJSON(w, http.StatusForbidden, ErrorResponse{Error: "Wallet is suspended"})
	case errors.Is(err, services.ErrMatchNotFound), errors.Is(err, services.ErrOrderNotFound):
		writeJSON(w, http.StatusNotFound, ErrorResponse{Error: "Not found"})
	case errors.Is(err, services.ErrAlreadySettled):
		writeJSON(w, http.StatusConflict, ErrorResponse{Error: "Already settled"})
	case errors.Is(err, services.ErrUnknownOutcome), errors.Is(err, services.ErrOrderNotMatched):
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid request"})
	default:
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "Internal server error, try again"})
	}
}

// userFromRequest authenticates the request and returns the caller's claims.
func userFromRequest(tokener Tokener, r *http.Request) (*jwt.Claims, bool) {
	ctx := r.Context()

	tokenStr, err := tokener.GetTokenFromRequest(ctx, r)
	if err != nil {
		logger.Log.Errorw("failed to get token from request", "error", err)
		return nil, false
	}
	claims, err := tokener.GetClaims(ctx, tokenStr)
	if err != nil {
		logger.Log.Errorw("failed to get claims from token", "error", err)
		return nil, false
	}
	return claims, true
}
