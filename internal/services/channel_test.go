package services_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/evgsol/matchpay/internal/models"
	"github.com/evgsol/matchpay/internal/services"
)

func TestChannelService_GetOrCreate_NormalizesPair(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := services.NewMockChannelStore(ctrl)
	svc := services.NewChannelService(mockStore)

	userA := uuid.MustParse("ffffffff-0000-0000-0000-000000000000")
	userB := uuid.MustParse("00000000-0000-0000-0000-000000000001")
	orderID := uuid.New()
	channel := &models.ChannelDB{ChannelID: uuid.New(), UserLo: userB, UserHi: userA}

	// The store always sees the pair in lexicographic order, so both
	// argument orders resolve to the same channel row.
	mockStore.EXPECT().
		GetOrCreate(gomock.Any(), userB, userA, orderID).
		Return(channel, nil).
		Times(2)

	got1, err := svc.GetOrCreate(context.Background(), userA, userB, orderID)
	assert.NoError(t, err)
	got2, err := svc.GetOrCreate(context.Background(), userB, userA, orderID)
	assert.NoError(t, err)
	assert.Equal(t, got1.ChannelID, got2.ChannelID)
}

func TestNormalizeUserPair(t *testing.T) {
	a := uuid.MustParse("aaaaaaaa-0000-0000-0000-000000000000")
	b := uuid.MustParse("bbbbbbbb-0000-0000-0000-000000000000")

	lo, hi := models.NormalizeUserPair(a, b)
	assert.Equal(t, a, lo)
	assert.Equal(t, b, hi)

	lo, hi = models.NormalizeUserPair(b, a)
	assert.Equal(t, a, lo)
	assert.Equal(t, b, hi)
}
