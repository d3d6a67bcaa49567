package services

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/evgsol/matchpay/internal/logger"
	"github.com/evgsol/matchpay/internal/models"
)

// ConfirmationMatchStore defines the match-record operations the handler needs.
type ConfirmationMatchStore interface {
	GetByOrderID(ctx context.Context, orderID uuid.UUID) (*models.MatchDB, error)
	SetMatchedPair(ctx context.Context, orderA, orderB, chatID uuid.UUID) error
	DeletePair(ctx context.Context, orderA, orderB uuid.UUID) error
}

// ConfirmationOrderStore defines the order operations the handler needs.
type ConfirmationOrderStore interface {
	GetByID(ctx context.Context, orderID uuid.UUID) (*models.OrderDB, error)
	SetMatched(ctx context.Context, orderID, matchedOrderID, chatID uuid.UUID) error
	ResetToPending(ctx context.Context, orderID, rejectedOrderID uuid.UUID) error
}

// ChannelProvisioner resolves the communication channel for a user pair.
type ChannelProvisioner interface {
	GetOrCreate(ctx context.Context, userA, userB, orderID uuid.UUID) (*models.ChannelDB, error)
}

// Matcher re-seeks a partner for an order after a reject.
type Matcher interface {
	ProposeMatch(ctx context.Context, orderID uuid.UUID) (*models.MatchDB, error)
}

// ConfirmationService applies a party's confirm or reject to a proposed
// match. A missing match record means the match was already resolved or
// expired; both operations treat that as a no-op and return
// ErrMatchNotFound without touching anything.
type ConfirmationService struct {
	matches  ConfirmationMatchStore
	orders   ConfirmationOrderStore
	channels ChannelProvisioner
	matcher  Matcher
	events   EventAppender
}

func NewConfirmationService(
	matches ConfirmationMatchStore,
	orders ConfirmationOrderStore,
	channels ChannelProvisioner,
	matcher Matcher,
	events EventAppender,
) *ConfirmationService {
	return &ConfirmationService{
		matches:  matches,
		orders:   orders,
		channels: channels,
		matcher:  matcher,
		events:   events,
	}
}

// Confirm commits the match: provisions (or reuses) the channel between
// the two users and finalizes both match records and both order rows in
// the caller's transaction. Idempotent: confirming an already matched
// order returns the existing chat id without re-provisioning.
func (s *ConfirmationService) Confirm(ctx context.Context, orderID, userID uuid.UUID) (uuid.UUID, error) {
	match, err := s.matches.GetByOrderID(ctx, orderID)
	if errors.Is(err, sql.ErrNoRows) {
		return uuid.Nil, ErrMatchNotFound
	}
	if err != nil {
		return uuid.Nil, err
	}

	if match.Status == models.MatchStatusMatched && match.ChatID != nil {
		return *match.ChatID, nil
	}

	order, counterpart, err := s.loadPair(ctx, match)
	if err != nil {
		return uuid.Nil, err
	}
	if userID != uuid.Nil && userID != order.UserID && userID != counterpart.UserID {
		logger.Log.Warnw("confirm by non-party user", "order_id", orderID, "user_id", userID)
		return uuid.Nil, ErrMatchNotFound
	}

	channel, err := s.channels.GetOrCreate(ctx, order.UserID, counterpart.UserID, orderID)
	if err != nil {
		return uuid.Nil, err
	}
	chatID := channel.ChannelID

	if err := s.matches.SetMatchedPair(ctx, order.OrderID, counterpart.OrderID, chatID); err != nil {
		return uuid.Nil, err
	}
	if err := s.orders.SetMatched(ctx, order.OrderID, counterpart.OrderID, chatID); err != nil {
		return uuid.Nil, err
	}
	if err := s.orders.SetMatched(ctx, counterpart.OrderID, order.OrderID, chatID); err != nil {
		return uuid.Nil, err
	}

	if err := s.appendConfirmEvents(ctx, order, counterpart, chatID, channel); err != nil {
		return uuid.Nil, err
	}

	logger.Log.Infow("match confirmed",
		"order_id", order.OrderID, "matched_order_id", counterpart.OrderID,
		"chat_id", chatID, "user_id", userID)
	return chatID, nil
}

// Reject rolls both orders back to pending, records the mutual exclusion
// and immediately re-seeks a partner for each side. A failed re-match
// only degrades the order to pending and logs; it never fails the reject.
func (s *ConfirmationService) Reject(ctx context.Context, orderID, userID uuid.UUID) error {
	match, err := s.matches.GetByOrderID(ctx, orderID)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrMatchNotFound
	}
	if err != nil {
		return err
	}

	order, counterpart, err := s.loadPair(ctx, match)
	if err != nil {
		return err
	}
	if userID != uuid.Nil && userID != order.UserID && userID != counterpart.UserID {
		logger.Log.Warnw("reject by non-party user", "order_id", orderID, "user_id", userID)
		return ErrMatchNotFound
	}

	if err := s.matches.DeletePair(ctx, order.OrderID, counterpart.OrderID); err != nil {
		return err
	}
	if err := s.orders.ResetToPending(ctx, order.OrderID, counterpart.OrderID); err != nil {
		return err
	}
	if err := s.orders.ResetToPending(ctx, counterpart.OrderID, order.OrderID); err != nil {
		return err
	}

	if err := s.appendRejectEvents(ctx, order.OrderID, counterpart.OrderID); err != nil {
		return err
	}

	logger.Log.Infow("match rejected",
		"order_id", order.OrderID, "matched_order_id", counterpart.OrderID, "user_id", userID)

	for _, id := range []uuid.UUID{order.OrderID, counterpart.OrderID} {
		if _, err := s.matcher.ProposeMatch(ctx, id); err != nil {
			logger.Log.Warnw("re-match after reject failed, order stays pending", "order_id", id, "error", err)
		}
	}
	return nil
}

func (s *ConfirmationService) loadPair(ctx context.Context, match *models.MatchDB) (order, counterpart *models.OrderDB, err error) {
	order, err = s.orders.GetByID(ctx, match.OrderID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, nil, err
	}
	counterpart, err = s.orders.GetByID(ctx, match.MatchedOrderID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, nil, err
	}
	return order, counterpart, nil
}

func (s *ConfirmationService) appendConfirmEvents(ctx context.Context, order, counterpart *models.OrderDB, chatID uuid.UUID, channel *models.ChannelDB) error {
	// Re-read so the mirror documents carry the committed matching fields.
	for _, id := range []uuid.UUID{order.OrderID, counterpart.OrderID} {
		fresh, err := s.orders.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if err := s.events.OrderUpdated(ctx, fresh); err != nil {
			return err
		}
	}

	chatRef := chatID
	for _, pair := range [][2]uuid.UUID{
		{order.OrderID, counterpart.OrderID},
		{counterpart.OrderID, order.OrderID},
	} {
		m := &models.MatchDB{
			OrderID:        pair[0],
			MatchedOrderID: pair[1],
			Status:         models.MatchStatusMatched,
			ChatID:         &chatRef,
		}
		if err := s.events.MatchUpserted(ctx, m); err != nil {
			return err
		}
	}
	return s.events.ChatUpserted(ctx, channel)
}

func (s *ConfirmationService) appendRejectEvents(ctx context.Context, orderID, counterpartID uuid.UUID) error {
	for _, id := range []uuid.UUID{orderID, counterpartID} {
		if err := s.events.MatchDeleted(ctx, id); err != nil {
			return err
		}
		fresh, err := s.orders.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if err := s.events.OrderUpdated(ctx, fresh); err != nil {
			return err
		}
	}
	return nil
}
