package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/evgsol/matchpay/internal/models"
)

// OutboxInserter appends events to the durable outbox.
type OutboxInserter interface {
	Insert(ctx context.Context, aggregate string, aggregateID uuid.UUID, eventType string, payload []byte) error
}

// EventAppender records state transitions for the synchronizer. The
// append happens in the same database transaction as the transition, so
// the mirror can never see a state the system of record did not commit.
type EventAppender interface {
	OrderUpdated(ctx context.Context, order *models.OrderDB) error
	MatchUpserted(ctx context.Context, match *models.MatchDB) error
	MatchDeleted(ctx context.Context, orderID uuid.UUID) error
	ChatUpserted(ctx context.Context, channel *models.ChannelDB) error
}

// EventRecorder builds mirror documents and appends them to the outbox.
type EventRecorder struct {
	outbox OutboxInserter
}

func NewEventRecorder(outbox OutboxInserter) *EventRecorder {
	return &EventRecorder{outbox: outbox}
}

// OrderUpdated records the order's mirror document.
func (r *EventRecorder) OrderUpdated(ctx context.Context, order *models.OrderDB) error {
	payload, err := json.Marshal(BuildOrderMirror(order))
	if err != nil {
		return err
	}
	return r.outbox.Insert(ctx, models.AggregateOrder, order.OrderID, models.EventOrderUpdated, payload)
}

// MatchUpserted records one side of a pairing.
func (r *EventRecorder) MatchUpserted(ctx context.Context, match *models.MatchDB) error {
	doc := models.MatchMirror{
		OrderID:        match.OrderID.String(),
		MatchedOrderID: match.MatchedOrderID.String(),
		Status:         match.Status,
		UpdatedAt:      time.Now().Unix(),
	}
	if match.ChatID != nil {
		doc.ChatID = match.ChatID.String()
	}
	payload, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	return r.outbox.Insert(ctx, models.AggregateMatch, match.OrderID, models.EventMatchUpserted, payload)
}

// MatchDeleted records the removal of one side of a pairing.
func (r *EventRecorder) MatchDeleted(ctx context.Context, orderID uuid.UUID) error {
	return r.outbox.Insert(ctx, models.AggregateMatch, orderID, models.EventMatchDeleted, nil)
}

// ChatUpserted records the channel's mirror document.
func (r *EventRecorder) ChatUpserted(ctx context.Context, channel *models.ChannelDB) error {
	doc := models.ChatMirror{
		ChatID:    channel.ChannelID.String(),
		OrderIDs:  channel.OrderIDs,
		Users:     []string{channel.UserLo.String(), channel.UserHi.String()},
		CreatedAt: channel.CreatedAt.Unix(),
		UpdatedAt: time.Now().Unix(),
	}
	payload, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	return r.outbox.Insert(ctx, models.AggregateChat, channel.ChannelID, models.EventChatUpserted, payload)
}

// BuildOrderMirror converts an order row to its mirror document. Shared
// with the synchronizer's reconciliation pass so the diff compares the
// exact document the drain would have written.
func BuildOrderMirror(order *models.OrderDB) models.OrderMirror {
	doc := models.OrderMirror{
		OrderID:         order.OrderID.String(),
		Role:            order.Role,
		Status:          order.Status,
		RejectedMatches: order.RejectedMatches,
		UpdatedAt:       order.UpdatedAt.Unix(),
	}
	if doc.RejectedMatches == nil {
		doc.RejectedMatches = []string{}
	}
	if order.MatchedOrderID != nil {
		doc.MatchedOrderID = order.MatchedOrderID.String()
	}
	if order.ChatID != nil {
		doc.ChatID = order.ChatID.String()
	}
	return doc
}
