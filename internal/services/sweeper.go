package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/evgsol/matchpay/internal/logger"
	"github.com/evgsol/matchpay/internal/models"
)

const sweepBatchSize = 100

// ExpiredMatchLister lists pairings stuck in pending_confirmation.
type ExpiredMatchLister interface {
	ListExpired(ctx context.Context, cutoff time.Time, limit int) ([]models.MatchDB, error)
}

// Rejecter applies the reject path to a match.
type Rejecter interface {
	Reject(ctx context.Context, orderID, userID uuid.UUID) error
}

// TxRunner executes a function inside its own database transaction.
type TxRunner interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// SweeperService expires matches whose counterpart never confirmed nor
// rejected within the TTL. An expired match takes the same path as an
// explicit reject, so both orders return to circulation and cannot
// immediately re-claim each other.
type SweeperService struct {
	matches  ExpiredMatchLister
	rejecter Rejecter
	runner   TxRunner
	interval time.Duration
	ttl      time.Duration
}

func NewSweeperService(matches ExpiredMatchLister, rejecter Rejecter, runner TxRunner, interval, ttl time.Duration) *SweeperService {
	return &SweeperService{
		matches:  matches,
		rejecter: rejecter,
		runner:   runner,
		interval: interval,
		ttl:      ttl,
	}
}

// Run sweeps until the context is cancelled.
func (s *SweeperService) Run(ctx context.Context) {
	logger.Log.Infow("confirmation sweeper started", "interval", s.interval, "ttl", s.ttl)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Log.Info("confirmation sweeper stopped")
			return
		case <-ticker.C:
			if _, err := s.SweepOnce(ctx); err != nil {
				logger.Log.Warnw("confirmation sweep failed", "error", err)
			}
		}
	}
}

// SweepOnce expires one batch of stale matches, each in its own
// transaction so one failure does not block the rest. Returns the number
// of matches expired.
func (s *SweeperService) SweepOnce(ctx context.Context) (int, error) {
	cutoff := time.Now().Add(-s.ttl)
	expired, err := s.matches.ListExpired(ctx, cutoff, sweepBatchSize)
	if err != nil {
		return 0, err
	}

	swept := 0
	for _, match := range expired {
		orderID := match.OrderID
		err := s.runner.RunInTx(ctx, func(ctx context.Context) error {
			return s.rejecter.Reject(ctx, orderID, uuid.Nil)
		})
		if errors.Is(err, ErrMatchNotFound) {
			// Resolved between listing and sweeping.
			continue
		}
		if err != nil {
			logger.Log.Warnw("failed to expire stale match", "order_id", orderID, "error", err)
			continue
		}
		swept++
		logger.Log.Infow("stale match expired as implicit reject", "order_id", orderID, "created_at", match.CreatedAt)
	}
	return swept, nil
}
