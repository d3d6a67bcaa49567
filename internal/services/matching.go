package services

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/evgsol/matchpay/internal/logger"
	"github.com/evgsol/matchpay/internal/models"
)

// candidateLimit bounds the number of candidates examined per proposal.
const candidateLimit = 16

// MatchingOrderStore defines the order operations the engine needs.
type MatchingOrderStore interface {
	GetByID(ctx context.Context, orderID uuid.UUID) (*models.OrderDB, error)
	ListCandidates(ctx context.Context, order *models.OrderDB, ranking string, limit int) ([]models.OrderDB, error)
	ClaimPending(ctx context.Context, orderID uuid.UUID) error
	Unclaim(ctx context.Context, orderID uuid.UUID) error
}

// PairInserter writes both sides of a proposed pairing.
type PairInserter interface {
	InsertPair(ctx context.Context, orderA, orderB uuid.UUID) error
}

// MatchingService pairs two complementary orders on the same route.
// Candidate claims are compare-and-swap status transitions: a claim that
// finds the row no longer pending lost the race, and the engine moves on
// to the next candidate. All writes of a successful proposal share the
// caller's database transaction.
type MatchingService struct {
	orders  MatchingOrderStore
	matches PairInserter
	events  EventAppender
	ranking string
}

// NewMatchingService creates a new MatchingService. ranking selects the
// candidate tie-break order (repositories.RankOldestFirst and friends).
func NewMatchingService(orders MatchingOrderStore, matches PairInserter, events EventAppender, ranking string) *MatchingService {
	return &MatchingService{orders: orders, matches: matches, events: events, ranking: ranking}
}

// ProposeMatch scans pending candidates compatible with the order and, on
// a hit, moves both sides to pending_confirmation with two symmetric
// match records. Returns nil without error when no compatible candidate
// exists — an empty pool is expected and frequent, not a failure.
func (s *MatchingService) ProposeMatch(ctx context.Context, orderID uuid.UUID) (*models.MatchDB, error) {
	order, err := s.orders.GetByID(ctx, orderID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}
	if order.Status != models.OrderStatusPending {
		logger.Log.Debugw("propose skipped, order not pending", "order_id", orderID, "status", order.Status)
		return nil, nil
	}

	candidates, err := s.orders.ListCandidates(ctx, order, s.ranking, candidateLimit)
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return nil, nil
	}

	// Claim our own side first; if this loses, the order was claimed by a
	// concurrent proposal and there is nothing to do.
	if err := s.orders.ClaimPending(ctx, order.OrderID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			logger.Log.Debugw("propose lost claim on own order", "order_id", orderID)
			return nil, nil
		}
		return nil, err
	}

	for i := range candidates {
		candidate := &candidates[i]

		if err := s.orders.ClaimPending(ctx, candidate.OrderID); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				logger.Log.Debugw("candidate claim lost, trying next",
					"order_id", orderID, "candidate_id", candidate.OrderID, "reason", ErrConcurrentClaimLost)
				continue
			}
			return nil, err
		}

		if err := s.matches.InsertPair(ctx, order.OrderID, candidate.OrderID); err != nil {
			return nil, err
		}

		order.Status = models.OrderStatusPendingConfirmation
		candidate.Status = models.OrderStatusPendingConfirmation
		now := time.Now()

		match := &models.MatchDB{
			OrderID:        order.OrderID,
			MatchedOrderID: candidate.OrderID,
			Status:         models.MatchStatusPendingConfirmation,
			CreatedAt:      now,
			UpdatedAt:      now,
		}
		counterpart := &models.MatchDB{
			OrderID:        candidate.OrderID,
			MatchedOrderID: order.OrderID,
			Status:         models.MatchStatusPendingConfirmation,
			CreatedAt:      now,
			UpdatedAt:      now,
		}

		if err := s.appendProposalEvents(ctx, order, candidate, match, counterpart); err != nil {
			return nil, err
		}

		logger.Log.Infow("match proposed",
			"order_id", order.OrderID, "candidate_id", candidate.OrderID,
			"route", order.PickupLocation+"->"+order.DeliveryLocation)
		return match, nil
	}

	// Every candidate was claimed by someone else; put our side back.
	if err := s.orders.Unclaim(ctx, order.OrderID); err != nil {
		return nil, err
	}
	return nil, nil
}

func (s *MatchingService) appendProposalEvents(ctx context.Context, order, candidate *models.OrderDB, match, counterpart *models.MatchDB) error {
	if err := s.events.OrderUpdated(ctx, order); err != nil {
		return err
	}
	if err := s.events.OrderUpdated(ctx, candidate); err != nil {
		return err
	}
	if err := s.events.MatchUpserted(ctx, match); err != nil {
		return err
	}
	return s.events.MatchUpserted(ctx, counterpart)
}
