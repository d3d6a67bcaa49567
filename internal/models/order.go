package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Order roles: two complementary sides of the same route.
const (
	RoleSender   = "sender"
	RoleCustomer = "customer"
)

// Order statuses. The matching engine owns the transitions
// pending -> pending_confirmation -> matched (and back to pending on
// reject); completed/cancelled are set by the order-fulfillment flow.
const (
	OrderStatusPending             = "pending"
	OrderStatusPendingConfirmation = "pending_confirmation"
	OrderStatusMatched             = "matched"
	OrderStatusCompleted           = "completed"
	OrderStatusCancelled           = "cancelled"
)

// OrderDB represents one side of a delivery request.
type OrderDB struct {
	OrderID          uuid.UUID      `json:"order_id" db:"order_id"`
	UserID           uuid.UUID      `json:"user_id" db:"user_id"`
	Role             string         `json:"role" db:"role"` // sender or customer
	Status           string         `json:"status" db:"status"`
	PickupLocation   string         `json:"pickup_location" db:"pickup_location"`
	DeliveryLocation string         `json:"delivery_location" db:"delivery_location"`
	MatchedOrderID   *uuid.UUID     `json:"matched_order_id,omitempty" db:"matched_order_id"`
	ChatID           *uuid.UUID     `json:"chat_id,omitempty" db:"chat_id"`
	EscrowAmount     int64          `json:"escrow_amount" db:"escrow_amount"` // Minor units
	RejectedMatches  pq.StringArray `json:"rejected_matches" db:"rejected_matches"`
	CreatedAt        time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at" db:"updated_at"`
}

// IsRejected reports whether the given order id is in the mutual-exclusion set.
func (o *OrderDB) IsRejected(orderID uuid.UUID) bool {
	for _, id := range o.RejectedMatches {
		if id == orderID.String() {
			return true
		}
	}
	return false
}
