package models

import (
	"time"

	"github.com/google/uuid"
)

// Transaction types
const (
	TxnTypeDeposit       = "deposit"
	TxnTypeEscrowHold    = "escrow_hold"
	TxnTypeEscrowRelease = "escrow_release"
	TxnTypeEscrowRefund  = "escrow_refund"
)

// Transaction statuses
const (
	TxnStatusPending   = "pending"
	TxnStatusCompleted = "completed"
	TxnStatusFailed    = "failed"
)

// TransactionDB represents an immutable, append-only audit record paired
// with every balance or frozen-balance mutation. For escrow_hold rows,
// ClosedBy points to the escrow_release/escrow_refund transaction that
// settled the hold; an open hold has ClosedBy = NULL.
type TransactionDB struct {
	TransactionID uuid.UUID  `json:"transaction_id" db:"transaction_id"`
	WalletID      uuid.UUID  `json:"wallet_id" db:"wallet_id"`
	Type          string     `json:"type" db:"type"`
	Amount        int64      `json:"amount" db:"amount"` // Minor units
	Fee           int64      `json:"fee" db:"fee"`       // Minor units, zero for most types
	Status        string     `json:"status" db:"status"`
	Reference     uuid.UUID  `json:"reference" db:"reference"` // Originating order id
	ClosedBy      *uuid.UUID `json:"closed_by,omitempty" db:"closed_by"`
	Metadata      []byte     `json:"metadata,omitempty" db:"metadata"` // Raw JSONB
	CreatedAt     time.Time  `json:"created_at" db:"created_at"`
	CompletedAt   *time.Time `json:"completed_at,omitempty" db:"completed_at"`
}
