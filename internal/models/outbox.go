package models

import (
	"time"

	"github.com/google/uuid"
)

// Outbox aggregates
const (
	AggregateOrder = "order"
	AggregateMatch = "match"
	AggregateChat  = "chat"
)

// Outbox event types
const (
	EventOrderUpdated  = "order.updated"
	EventMatchUpserted = "match.upserted"
	EventMatchDeleted  = "match.deleted"
	EventChatUpserted  = "chat.upserted"
)

// OutboxEventDB is a durable record of a state transition, appended in the
// same database transaction as the transition itself. The synchronizer
// drains unprocessed events in insertion order and applies them to the
// real-time mirror.
type OutboxEventDB struct {
	EventID     int64      `json:"event_id" db:"event_id"`
	Aggregate   string     `json:"aggregate" db:"aggregate"`
	AggregateID uuid.UUID  `json:"aggregate_id" db:"aggregate_id"`
	EventType   string     `json:"event_type" db:"event_type"`
	Payload     []byte     `json:"payload" db:"payload"` // Raw JSONB mirror document
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
	ProcessedAt *time.Time `json:"processed_at,omitempty" db:"processed_at"`
}

// OrderMirror is the mirror-store document for orders/{id}.
type OrderMirror struct {
	OrderID         string   `json:"order_id"`
	Role            string   `json:"role"`
	Status          string   `json:"status"`
	MatchedOrderID  string   `json:"matched_order_id,omitempty"`
	ChatID          string   `json:"chat_id,omitempty"`
	RejectedMatches []string `json:"rejected_matches"`
	UpdatedAt       int64    `json:"updated_at"`
}

// MatchMirror is the mirror-store document for matches/{orderId}.
type MatchMirror struct {
	OrderID        string `json:"order_id"`
	MatchedOrderID string `json:"matched_order_id"`
	Status         string `json:"status"`
	ChatID         string `json:"chat_id,omitempty"`
	UpdatedAt      int64  `json:"updated_at"`
}

// ChatMirror is the mirror-store document for chats/{chatId}.
type ChatMirror struct {
	ChatID    string   `json:"chat_id"`
	OrderIDs  []string `json:"order_ids"`
	Users     []string `json:"users"`
	CreatedAt int64    `json:"created_at"`
	UpdatedAt int64    `json:"updated_at"`
}
