package models

import (
	"time"

	"github.com/google/uuid"
)

// Match statuses
const (
	MatchStatusPendingConfirmation = "pending_confirmation"
	MatchStatusMatched             = "matched"
)

// MatchDB is one side of a symmetric pairing record. Two rows always
// exist in lockstep for a pairing, keyed by either order id, and are
// created and deleted together in the same database transaction.
type MatchDB struct {
	OrderID        uuid.UUID  `json:"order_id" db:"order_id"`
	MatchedOrderID uuid.UUID  `json:"matched_order_id" db:"matched_order_id"`
	Status         string     `json:"status" db:"status"`
	ChatID         *uuid.UUID `json:"chat_id,omitempty" db:"chat_id"`
	CreatedAt      time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at" db:"updated_at"`
}
