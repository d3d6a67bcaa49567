package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/evgsol/matchpay/internal/logger"
	"github.com/evgsol/matchpay/internal/models"
)

// ChannelStore persists channels keyed by the normalized user pair.
type ChannelStore interface {
	GetOrCreate(ctx context.Context, userLo, userHi, orderID uuid.UUID) (*models.ChannelDB, error)
}

// ChannelService provisions communication channels between matched
// users, idempotent per user pair: a second match between the same two
// users reuses the existing channel and only appends the new order id.
type ChannelService struct {
	channels ChannelStore
}

func NewChannelService(channels ChannelStore) *ChannelService {
	return &ChannelService{channels: channels}
}

// GetOrCreate returns the channel for the user pair regardless of
// argument order, creating it on first use.
func (s *ChannelService) GetOrCreate(ctx context.Context, userA, userB, orderID uuid.UUID) (*models.ChannelDB, error) {
	lo, hi := models.NormalizeUserPair(userA, userB)

	channel, err := s.channels.GetOrCreate(ctx, lo, hi, orderID)
	if err != nil {
		logger.Log.Errorw("failed to provision channel",
			"user_a", userA, "user_b", userB, "order_id", orderID, "error", err)
		return nil, err
	}
	return channel, nil
}
