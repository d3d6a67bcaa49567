package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// ChannelDB is a communication room shared by exactly two users.
// The pair is stored normalized (UserLo < UserHi lexicographically) so a
// unique index on the pair makes lookup-then-create race-free. OrderIDs
// grows as the same two users are matched again; it never contains
// duplicates.
type ChannelDB struct {
	ChannelID uuid.UUID      `json:"channel_id" db:"channel_id"`
	UserLo    uuid.UUID      `json:"user_lo" db:"user_lo"`
	UserHi    uuid.UUID      `json:"user_hi" db:"user_hi"`
	OrderIDs  pq.StringArray `json:"order_ids" db:"order_ids"`
	CreatedAt time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt time.Time      `json:"updated_at" db:"updated_at"`
}

// NormalizeUserPair orders two user ids lexicographically for channel lookup.
func NormalizeUserPair(a, b uuid.UUID) (lo, hi uuid.UUID) {
	if a.String() <= b.String() {
		return a, b
	}
	return b, a
}
