package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/evgsol/matchpay/internal/logger"
	"github.com/evgsol/matchpay/internal/models"
)

const (
	drainBatchSize = 64
	reconcileBatch = 256
	reconcileEvery = 20 // drain cycles between reconciliation passes
	maxSyncBackoff = 30 * time.Second
)

// OutboxStore drains and acknowledges outbox events.
type OutboxStore interface {
	ListUnprocessed(ctx context.Context, limit int) ([]models.OutboxEventDB, error)
	MarkProcessed(ctx context.Context, eventIDs []int64) error
}

// MirrorStore is the secondary real-time store. All writes are idempotent
// upserts keyed identically to the system of record.
type MirrorStore interface {
	UpsertOrder(ctx context.Context, orderID string, doc []byte) error
	UpsertMatch(ctx context.Context, orderID string, doc []byte) error
	DeleteMatch(ctx context.Context, orderID string) error
	UpsertChat(ctx context.Context, chatID string, doc []byte) error
	GetOrder(ctx context.Context, orderID string) ([]byte, error)
}

// ReconcileOrderLister feeds the reconciliation pass with recently
// touched orders from the system of record.
type ReconcileOrderLister interface {
	ListUpdatedSince(ctx context.Context, since time.Time, limit int) ([]models.OrderDB, error)
}

// SyncService is the single writer to the mirror. It drains the outbox
// in insertion order, applies idempotent upserts, publishes fire-and-forget
// notifications and periodically reconciles the mirror against the system
// of record. It never participates in the primary transaction.
type SyncService struct {
	outbox       OutboxStore
	mirror       MirrorStore
	orders       ReconcileOrderLister
	notifier     Notifier
	pollInterval time.Duration
}

// NewSyncService creates a new SyncService. notifier may be nil.
func NewSyncService(outbox OutboxStore, mirror MirrorStore, orders ReconcileOrderLister, notifier Notifier, pollInterval time.Duration) *SyncService {
	return &SyncService{
		outbox:       outbox,
		mirror:       mirror,
		orders:       orders,
		notifier:     notifier,
		pollInterval: pollInterval,
	}
}

// Run drains the outbox until the context is cancelled, backing off
// exponentially on transient mirror failure.
func (s *SyncService) Run(ctx context.Context) {
	logger.Log.Infow("synchronizer started", "poll_interval", s.pollInterval)

	delay := s.pollInterval
	cycles := 0
	for {
		select {
		case <-ctx.Done():
			logger.Log.Info("synchronizer stopped")
			return
		case <-time.After(delay):
		}

		if _, err := s.DrainOnce(ctx); err != nil {
			delay *= 2
			if delay > maxSyncBackoff {
				delay = maxSyncBackoff
			}
			logger.Log.Warnw("outbox drain failed, backing off", "retry_in", delay, "error", err)
			continue
		}
		delay = s.pollInterval

		cycles++
		if cycles%reconcileEvery == 0 {
			if _, err := s.Reconcile(ctx); err != nil {
				logger.Log.Warnw("reconciliation pass failed", "error", err)
			}
		}
	}
}

// DrainOnce applies one batch of outbox events to the mirror and marks
// them processed. Events are applied in insertion order; the batch stops
// at the first mirror failure so ordering is preserved on retry.
func (s *SyncService) DrainOnce(ctx context.Context) (int, error) {
	events, err := s.outbox.ListUnprocessed(ctx, drainBatchSize)
	if err != nil {
		return 0, err
	}
	if len(events) == 0 {
		return 0, nil
	}

	applied := make([]int64, 0, len(events))
	var applyErr error
	for _, event := range events {
		if applyErr = s.apply(ctx, event); applyErr != nil {
			logger.Log.Warnw("failed to apply outbox event to mirror",
				"event_id", event.EventID, "event_type", event.EventType, "error", applyErr)
			break
		}
		s.publish(ctx, event)
		applied = append(applied, event.EventID)
	}
	if len(applied) == 0 {
		return 0, applyErr
	}

	if err := s.outbox.MarkProcessed(ctx, applied); err != nil {
		// Re-applying the same upserts on the next drain is harmless.
		return len(applied), err
	}
	return len(applied), nil
}

func (s *SyncService) apply(ctx context.Context, event models.OutboxEventDB) error {
	id := event.AggregateID.String()
	switch event.Aggregate {
	case models.AggregateOrder:
		return s.mirror.UpsertOrder(ctx, id, event.Payload)
	case models.AggregateMatch:
		if event.EventType == models.EventMatchDeleted {
			return s.mirror.DeleteMatch(ctx, id)
		}
		return s.mirror.UpsertMatch(ctx, id, event.Payload)
	case models.AggregateChat:
		return s.mirror.UpsertChat(ctx, id, event.Payload)
	default:
		logger.Log.Warnw("unknown outbox aggregate, skipping", "event_id", event.EventID, "aggregate", event.Aggregate)
		return nil
	}
}

func (s *SyncService) publish(ctx context.Context, event models.OutboxEventDB) {
	if s.notifier == nil {
		return
	}
	if err := s.notifier.Publish(ctx, event.AggregateID.String(), event); err != nil {
		logger.Log.Errorw("failed to publish sync notification",
			"event_id", event.EventID, "event_type", event.EventType, "error", err)
	}
}

// Reconcile diffs recently updated orders against the mirror and
// re-applies the system-of-record value wherever the mirror diverged.
// Drift is healed and logged, never fatal to the primary flow. Returns
// the number of healed entries.
func (s *SyncService) Reconcile(ctx context.Context) (int, error) {
	since := time.Now().Add(-reconcileWindow)
	orders, err := s.orders.ListUpdatedSince(ctx, since, reconcileBatch)
	if err != nil {
		return 0, err
	}

	healed := 0
	for i := range orders {
		expected := BuildOrderMirror(&orders[i])

		current, err := s.mirror.GetOrder(ctx, expected.OrderID)
		if err != nil {
			logger.Log.Warnw("failed to read mirror during reconciliation", "order_id", expected.OrderID, "error", err)
			continue
		}

		if mirrorOrderEqual(current, expected) {
			continue
		}

		payload, err := json.Marshal(expected)
		if err != nil {
			return healed, err
		}
		if err := s.mirror.UpsertOrder(ctx, expected.OrderID, payload); err != nil {
			logger.Log.Warnw("failed to heal mirror drift", "order_id", expected.OrderID, "error", err)
			continue
		}

		healed++
		logger.Log.Warnw("sync drift detected, mirror healed",
			"order_id", expected.OrderID, "status", expected.Status)
	}
	return healed, nil
}

// reconcileWindow is how far back the reconciliation pass looks.
const reconcileWindow = 10 * time.Minute

// mirrorOrderEqual compares the fields that define mirror consistency;
// timestamps are allowed to differ.
func mirrorOrderEqual(current []byte, expected models.OrderMirror) bool {
	if len(current) == 0 {
		return false
	}
	var doc models.OrderMirror
	if err := json.Unmarshal(current, &doc); err != nil {
		return false
	}
	if doc.Status != expected.Status ||
		doc.MatchedOrderID != expected.MatchedOrderID ||
		doc.ChatID != expected.ChatID ||
		len(doc.RejectedMatches) != len(expected.RejectedMatches) {
		return false
	}
	for i := range doc.RejectedMatches {
		if doc.RejectedMatches[i] != expected.RejectedMatches[i] {
			return false
		}
	}
	return true
}
