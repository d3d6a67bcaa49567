package services_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/evgsol/matchpay/internal/models"
	"github.com/evgsol/matchpay/internal/services"
)

type confirmationFixture struct {
	svc      *services.ConfirmationService
	matches  *services.MockConfirmationMatchStore
	orders   *services.MockConfirmationOrderStore
	channels *services.MockChannelProvisioner
	matcher  *services.MockMatcher
	events   *services.MockEventAppender
}

func newConfirmationFixture(ctrl *gomock.Controller) confirmationFixture {
	f := confirmationFixture{
		matches:  services.NewMockConfirmationMatchStore(ctrl),
		orders:   services.NewMockConfirmationOrderStore(ctrl),
		channels: services.NewMockChannelProvisioner(ctrl),
		matcher:  services.NewMockMatcher(ctrl),
		events:   services.NewMockEventAppender(ctrl),
	}
	f.svc = services.NewConfirmationService(f.matches, f.orders, f.channels, f.matcher, f.events)
	return f
}

func TestConfirmationService_Confirm_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newConfirmationFixture(ctrl)

	userA := uuid.New()
	userB := uuid.New()
	chatID := uuid.New()
	order := &models.OrderDB{OrderID: uuid.New(), UserID: userA, Status: models.OrderStatusPendingConfirmation}
	counterpart := &models.OrderDB{OrderID: uuid.New(), UserID: userB, Status: models.OrderStatusPendingConfirmation}

	f.matches.EXPECT().
		GetByOrderID(gomock.Any(), order.OrderID).
		Return(&models.MatchDB{
			OrderID:        order.OrderID,
			MatchedOrderID: counterpart.OrderID,
			Status:         models.MatchStatusPendingConfirmation,
		}, nil)
	f.orders.EXPECT().GetByID(gomock.Any(), order.OrderID).Return(order, nil)
	f.orders.EXPECT().GetByID(gomock.Any(), counterpart.OrderID).Return(counterpart, nil)
	f.channels.EXPECT().
		GetOrCreate(gomock.Any(), userA, userB, order.OrderID).
		Return(&models.ChannelDB{ChannelID: chatID, UserLo: userA, UserHi: userB}, nil)
	f.matches.EXPECT().
		SetMatchedPair(gomock.Any(), order.OrderID, counterpart.OrderID, chatID).
		Return(nil)
	f.orders.EXPECT().
		SetMatched(gomock.Any(), order.OrderID, counterpart.OrderID, chatID).
		Return(nil)
	f.orders.EXPECT().
		SetMatched(gomock.Any(), counterpart.OrderID, order.OrderID, chatID).
		Return(nil)

	// Mirror documents are rebuilt from re-read rows after the writes.
	f.orders.EXPECT().GetByID(gomock.Any(), order.OrderID).Return(order, nil)
	f.orders.EXPECT().GetByID(gomock.Any(), counterpart.OrderID).Return(counterpart, nil)
	f.events.EXPECT().OrderUpdated(gomock.Any(), gomock.Any()).Return(nil).Times(2)
	f.events.EXPECT().MatchUpserted(gomock.Any(), gomock.Any()).Return(nil).Times(2)
	f.events.EXPECT().ChatUpserted(gomock.Any(), gomock.Any()).Return(nil)

	got, err := f.svc.Confirm(context.Background(), order.OrderID, userA)
	assert.NoError(t, err)
	assert.Equal(t, chatID, got)
}

func TestConfirmationService_Confirm_AlreadyMatchedReturnsExistingChat(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newConfirmationFixture(ctrl)

	orderID := uuid.New()
	chatID := uuid.New()

	f.matches.EXPECT().
		GetByOrderID(gomock.Any(), orderID).
		Return(&models.MatchDB{
			OrderID:        orderID,
			MatchedOrderID: uuid.New(),
			Status:         models.MatchStatusMatched,
			ChatID:         &chatID,
		}, nil)

	got, err := f.svc.Confirm(context.Background(), orderID, uuid.New())
	assert.NoError(t, err)
	assert.Equal(t, chatID, got)
}

func TestConfirmationService_Confirm_NoMatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newConfirmationFixture(ctrl)

	orderID := uuid.New()
	f.matches.EXPECT().
		GetByOrderID(gomock.Any(), orderID).
		Return(nil, sql.ErrNoRows)

	_, err := f.svc.Confirm(context.Background(), orderID, uuid.New())
	assert.ErrorIs(t, err, services.ErrMatchNotFound)
}

func TestConfirmationService_Confirm_NonPartyUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newConfirmationFixture(ctrl)

	order := &models.OrderDB{OrderID: uuid.New(), UserID: uuid.New()}
	counterpart := &models.OrderDB{OrderID: uuid.New(), UserID: uuid.New()}

	f.matches.EXPECT().
		GetByOrderID(gomock.Any(), order.OrderID).
		Return(&models.MatchDB{OrderID: order.OrderID, MatchedOrderID: counterpart.OrderID}, nil)
	f.orders.EXPECT().GetByID(gomock.Any(), order.OrderID).Return(order, nil)
	f.orders.EXPECT().GetByID(gomock.Any(), counterpart.OrderID).Return(counterpart, nil)

	_, err := f.svc.Confirm(context.Background(), order.OrderID, uuid.New())
	assert.ErrorIs(t, err, services.ErrMatchNotFound)
}

func TestConfirmationService_Reject_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newConfirmationFixture(ctrl)

	userA := uuid.New()
	order := &models.OrderDB{OrderID: uuid.New(), UserID: userA, Status: models.OrderStatusPendingConfirmation}
	counterpart := &models.OrderDB{OrderID: uuid.New(), UserID: uuid.New(), Status: models.OrderStatusPendingConfirmation}

	f.matches.EXPECT().
		GetByOrderID(gomock.Any(), order.OrderID).
		Return(&models.MatchDB{OrderID: order.OrderID, MatchedOrderID: counterpart.OrderID}, nil)
	f.orders.EXPECT().GetByID(gomock.Any(), order.OrderID).Return(order, nil)
	f.orders.EXPECT().GetByID(gomock.Any(), counterpart.OrderID).Return(counterpart, nil)

	f.matches.EXPECT().
		DeletePair(gomock.Any(), order.OrderID, counterpart.OrderID).
		Return(nil)
	// Each side goes back to pending with the other recorded as rejected.
	f.orders.EXPECT().
		ResetToPending(gomock.Any(), order.OrderID, counterpart.OrderID).
		Return(nil)
	f.orders.EXPECT().
		ResetToPending(gomock.Any(), counterpart.OrderID, order.OrderID).
		Return(nil)

	f.events.EXPECT().MatchDeleted(gomock.Any(), order.OrderID).Return(nil)
	f.events.EXPECT().MatchDeleted(gomock.Any(), counterpart.OrderID).Return(nil)
	f.orders.EXPECT().GetByID(gomock.Any(), order.OrderID).Return(order, nil)
	f.orders.EXPECT().GetByID(gomock.Any(), counterpart.OrderID).Return(counterpart, nil)
	f.events.EXPECT().OrderUpdated(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	// Both sides immediately re-seek a partner.
	f.matcher.EXPECT().ProposeMatch(gomock.Any(), order.OrderID).Return(nil, nil)
	f.matcher.EXPECT().ProposeMatch(gomock.Any(), counterpart.OrderID).Return(nil, nil)

	err := f.svc.Reject(context.Background(), order.OrderID, userA)
	assert.NoError(t, err)
}

func TestConfirmationService_Reject_RematchFailureDoesNotFailReject(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newConfirmationFixture(ctrl)

	order := &models.OrderDB{OrderID: uuid.New(), UserID: uuid.New()}
	counterpart := &models.OrderDB{OrderID: uuid.New(), UserID: uuid.New()}

	f.matches.EXPECT().
		GetByOrderID(gomock.Any(), order.OrderID).
		Return(&models.MatchDB{OrderID: order.OrderID, MatchedOrderID: counterpart.OrderID}, nil)
	f.orders.EXPECT().GetByID(gomock.Any(), order.OrderID).Return(order, nil)
	f.orders.EXPECT().GetByID(gomock.Any(), counterpart.OrderID).Return(counterpart, nil)
	f.matches.EXPECT().DeletePair(gomock.Any(), order.OrderID, counterpart.OrderID).Return(nil)
	f.orders.EXPECT().ResetToPending(gomock.Any(), order.OrderID, counterpart.OrderID).Return(nil)
	f.orders.EXPECT().ResetToPending(gomock.Any(), counterpart.OrderID, order.OrderID).Return(nil)
	f.events.EXPECT().MatchDeleted(gomock.Any(), gomock.Any()).Return(nil).Times(2)
	f.orders.EXPECT().GetByID(gomock.Any(), order.OrderID).Return(order, nil)
	f.orders.EXPECT().GetByID(gomock.Any(), counterpart.OrderID).Return(counterpart, nil)
	f.events.EXPECT().OrderUpdated(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	f.matcher.EXPECT().
		ProposeMatch(gomock.Any(), order.OrderID).
		Return(nil, errors.New("db error"))
	f.matcher.EXPECT().
		ProposeMatch(gomock.Any(), counterpart.OrderID).
		Return(nil, nil)

	// The orders stay pending; the reject itself still succeeds.
	err := f.svc.Reject(context.Background(), order.OrderID, uuid.Nil)
	assert.NoError(t, err)
}

func TestConfirmationService_Reject_NoMatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newConfirmationFixture(ctrl)

	orderID := uuid.New()
	f.matches.EXPECT().
		GetByOrderID(gomock.Any(), orderID).
		Return(nil, sql.ErrNoRows)

	err := f.svc.Reject(context.Background(), orderID, uuid.New())
	assert.ErrorIs(t, err, services.ErrMatchNotFound)
}
