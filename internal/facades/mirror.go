package facades

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"

	"github.com/evgsol/matchpay/internal/logger"
)

// Mirror key prefixes, keyed identically to the system of record so
// reconciliation is a pure diff.
const (
	orderKeyPrefix = "orders/"
	matchKeyPrefix = "matches/"
	chatKeyPrefix  = "chats/"
)

// MirrorFacade implements the real-time mirror on Redis. Every write is
// an idempotent SET, so replaying an outbox batch is harmless.
type MirrorFacade struct {
	client *redis.Client
}

// NewMirrorFacade creates a new facade over a Redis client.
func NewMirrorFacade(client *redis.Client) *MirrorFacade {
	return &MirrorFacade{client: client}
}

// UpsertOrder writes the order mirror document.
func (f *MirrorFacade) UpsertOrder(ctx context.Context, orderID string, doc []byte) error {
	return f.set(ctx, orderKeyPrefix+orderID, doc)
}

// UpsertMatch writes one side of a pairing.
func (f *MirrorFacade) UpsertMatch(ctx context.Context, orderID string, doc []byte) error {
	return f.set(ctx, matchKeyPrefix+orderID, doc)
}

// DeleteMatch removes one side of a pairing. Deleting an absent key is
// not an error.
func (f *MirrorFacade) DeleteMatch(ctx context.Context, orderID string) error {
	if err := f.client.Del(ctx, matchKeyPrefix+orderID).Err(); err != nil {
		logger.Log.Errorw("failed to delete match from mirror", "order_id", orderID, "error", err)
		return err
	}
	return nil
}

// UpsertChat writes the channel mirror document.
func (f *MirrorFacade) UpsertChat(ctx context.Context, chatID string, doc []byte) error {
	return f.set(ctx, chatKeyPrefix+chatID, doc)
}

// GetOrder reads the order mirror document; a missing key returns nil
// without error.
func (f *MirrorFacade) GetOrder(ctx context.Context, orderID string) ([]byte, error) {
	val, err := f.client.Get(ctx, orderKeyPrefix+orderID).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		logger.Log.Errorw("failed to read order from mirror", "order_id", orderID, "error", err)
		return nil, err
	}
	return val, nil
}

func (f *MirrorFacade) set(ctx context.Context, key string, doc []byte) error {
	if err := f.client.Set(ctx, key, doc, 0).Err(); err != nil {
		logger.Log.Errorw("failed to write mirror key", "key", key, "error", err)
		return err
	}
	return nil
}
