package models

import (
	"time"

	"github.com/google/uuid"
)

// DefaultCurrency is the single currency the service operates in.
const DefaultCurrency = "UZS"

// Wallet statuses
const (
	WalletStatusActive    = "active"
	WalletStatusSuspended = "suspended"
	WalletStatusClosed    = "closed"
)

// WalletDB represents a wallet row in the database.
// Balance and frozen balance are stored in minor currency units and
// only ever change together with a transactions row.
type WalletDB struct {
	WalletID      uuid.UUID `json:"wallet_id" db:"wallet_id"`           // Unique wallet identifier
	UserID        uuid.UUID `json:"user_id" db:"user_id"`               // Identifier of the wallet's owner
	Balance       int64     `json:"balance" db:"balance"`               // Available balance, minor units, never negative
	FrozenBalance int64     `json:"frozen_balance" db:"frozen_balance"` // Funds held in escrow, minor units, never negative
	Currency      string    `json:"currency" db:"currency"`             // Currency code
	Status        string    `json:"status" db:"status"`                 // active, suspended or closed
	CreatedAt     time.Time `json:"created_at" db:"created_at"`         // Timestamp when the wallet was created
	UpdatedAt     time.Time `json:"updated_at" db:"updated_at"`         // Timestamp of the last wallet update
}
