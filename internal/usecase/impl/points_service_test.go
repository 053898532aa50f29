package impl

import (
	"context"
	"testing"
	"time"

	"bosskill/internal/domain/entity"
	domainerrors "bosskill/internal/domain/errors"
	"bosskill/internal/domain/repository"
	mockRepo "bosskill/internal/mocks/repository"
	"bosskill/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type pointsServiceMocks struct {
	pointsRepo  *mockRepo.MockPointsRepository
	checkInRepo *mockRepo.MockCheckInRepository
}

func newPointsService(t *testing.T) (usecase.PointsUsecase, *pointsServiceMocks) {
	mocks := &pointsServiceMocks{
		pointsRepo:  mockRepo.NewMockPointsRepository(t),
		checkInRepo: mockRepo.NewMockCheckInRepository(t),
	}
	txManager := &fakeTxManager{factory: &fakeRepoFactory{
		pointsRepo:  mocks.pointsRepo,
		checkInRepo: mocks.checkInRepo,
	}}

	svc := NewPointsService(PointsServiceParams{
		TxManager:   txManager,
		PointsRepo:  mocks.pointsRepo,
		CheckInRepo: mocks.checkInRepo,
	}).(*pointsService)
	svc.now = func() time.Time { return time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC) }

	return svc, mocks
}

func TestPointsService_GetWallet_Existing(t *testing.T) {
	svc, mocks := newPointsService(t)
	ctx := context.Background()

	wallet := &entity.Wallet{UserID: "user-1", TotalPoints: 230, AvailablePoints: 180, Level: 3}
	mocks.pointsRepo.EXPECT().FindWallet(ctx, "user-1").Return(wallet, nil)

	got, err := svc.GetWallet(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, wallet, got)
}

func TestPointsService_GetWallet_NewUserGetsZeroedWallet(t *testing.T) {
	svc, mocks := newPointsService(t)
	ctx := context.Background()

	mocks.pointsRepo.EXPECT().
		FindWallet(ctx, "user-1").
		Return(nil, repository.ErrWalletNotFound)

	got, err := svc.GetWallet(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, "user-1", got.UserID)
	assert.Equal(t, 0, got.TotalPoints)
	assert.Equal(t, 0, got.AvailablePoints)
	assert.Equal(t, 1, got.Level)
}

func TestPointsService_ListGifts(t *testing.T) {
	svc, mocks := newPointsService(t)
	ctx := context.Background()

	gifts := []*entity.Gift{{ID: uuid.New(), Name: "rose", PricePoints: 10}}
	mocks.pointsRepo.EXPECT().ListGifts(ctx).Return(gifts, nil)

	got, err := svc.ListGifts(ctx)
	require.NoError(t, err)
	assert.Equal(t, gifts, got)
}

func TestPointsService_SendGift_DebitsSender(t *testing.T) {
	svc, mocks := newPointsService(t)
	ctx := context.Background()

	gift := &entity.Gift{ID: uuid.New(), Name: "rocket", PricePoints: 50}
	mocks.pointsRepo.EXPECT().FindGiftByID(ctx, gift.ID).Return(gift, nil)
	mocks.pointsRepo.EXPECT().
		FindWallet(ctx, "sender-1").
		Return(&entity.Wallet{UserID: "sender-1", TotalPoints: 300, AvailablePoints: 120, Level: 4}, nil).
		Once()
	// Spending never shrinks lifetime points, only the spendable balance.
	mocks.pointsRepo.EXPECT().
		SaveWallet(ctx, mock.MatchedBy(func(wallet *entity.Wallet) bool {
			return wallet.TotalPoints == 300 && wallet.AvailablePoints == 70 && wallet.Level == 4
		})).
		Return(nil)
	mocks.pointsRepo.EXPECT().
		CreateTransaction(ctx, mock.MatchedBy(func(tx *entity.PointTransaction) bool {
			return tx.Points == -50 && tx.Type == "gift_sent"
		})).
		Return(nil)
	mocks.pointsRepo.EXPECT().
		CreateGiftRecord(ctx, mock.MatchedBy(func(record *entity.GiftRecord) bool {
			return record.SenderID == "sender-1" && record.ReceiverID == "receiver-1" && record.GiftID == gift.ID
		})).
		Return(nil)
	mocks.pointsRepo.EXPECT().
		FindWallet(ctx, "sender-1").
		Return(&entity.Wallet{UserID: "sender-1", TotalPoints: 300, AvailablePoints: 70, Level: 4}, nil).
		Once()

	result, err := svc.SendGift(ctx, &usecase.SendGiftInput{
		SenderID:   "sender-1",
		ReceiverID: "receiver-1",
		GiftID:     gift.ID,
		Message:    "nice throw",
	})
	require.NoError(t, err)
	assert.Equal(t, 70, result.Wallet.AvailablePoints)
	assert.Equal(t, "nice throw", result.Record.Message)
}

func TestPointsService_SendGift_InsufficientPoints(t *testing.T) {
	svc, mocks := newPointsService(t)
	ctx := context.Background()

	gift := &entity.Gift{ID: uuid.New(), Name: "rocket", PricePoints: 50}
	mocks.pointsRepo.EXPECT().FindGiftByID(ctx, gift.ID).Return(gift, nil)
	mocks.pointsRepo.EXPECT().
		FindWallet(ctx, "sender-1").
		Return(&entity.Wallet{UserID: "sender-1", TotalPoints: 100, AvailablePoints: 20, Level: 2}, nil)

	result, err := svc.SendGift(ctx, &usecase.SendGiftInput{
		SenderID:   "sender-1",
		ReceiverID: "receiver-1",
		GiftID:     gift.ID,
	})
	assert.ErrorIs(t, err, domainerrors.ErrInsufficientPoints)
	assert.Nil(t, result)
}

func TestPointsService_SendGift_GiftNotFound(t *testing.T) {
	svc, mocks := newPointsService(t)
	ctx := context.Background()

	giftID := uuid.New()
	mocks.pointsRepo.EXPECT().
		FindGiftByID(ctx, giftID).
		Return(nil, repository.ErrGiftNotFound)

	result, err := svc.SendGift(ctx, &usecase.SendGiftInput{
		SenderID: "sender-1",
		GiftID:   giftID,
	})
	assert.ErrorIs(t, err, domainerrors.ErrGiftNotFound)
	assert.Nil(t, result)
}

func TestPointsService_ListRewards_UnlockFlags(t *testing.T) {
	svc, mocks := newPointsService(t)
	ctx := context.Background()

	rewards := []*entity.Reward{
		{ID: uuid.New(), Name: "starter title", RequiredPoints: 0, RequiredStreak: 0},
		{ID: uuid.New(), Name: "century badge", RequiredPoints: 100, RequiredStreak: 0},
		{ID: uuid.New(), Name: "iron will", RequiredPoints: 0, RequiredStreak: 14},
		{ID: uuid.New(), Name: "legend frame", RequiredPoints: 1000, RequiredStreak: 30},
	}

	mocks.pointsRepo.EXPECT().ListRewards(ctx).Return(rewards, nil)
	mocks.pointsRepo.EXPECT().
		FindWallet(ctx, "user-1").
		Return(&entity.Wallet{UserID: "user-1", TotalPoints: 150}, nil)
	mocks.checkInRepo.EXPECT().
		FindStats(ctx, "user-1").
		Return(&entity.CheckInStats{UserID: "user-1", LongestStreak: 7}, nil)

	got, err := svc.ListRewards(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, got, 4)
	assert.True(t, got[0].Unlocked)
	assert.True(t, got[1].Unlocked)
	assert.False(t, got[2].Unlocked)
	assert.False(t, got[3].Unlocked)
}

func TestPointsService_ListRewards_NewUser(t *testing.T) {
	svc, mocks := newPointsService(t)
	ctx := context.Background()

	rewards := []*entity.Reward{
		{ID: uuid.New(), Name: "starter title", RequiredPoints: 0, RequiredStreak: 0},
		{ID: uuid.New(), Name: "century badge", RequiredPoints: 100, RequiredStreak: 0},
	}

	mocks.pointsRepo.EXPECT().ListRewards(ctx).Return(rewards, nil)
	mocks.pointsRepo.EXPECT().
		FindWallet(ctx, "user-1").
		Return(nil, repository.ErrWalletNotFound)
	mocks.checkInRepo.EXPECT().
		FindStats(ctx, "user-1").
		Return(nil, repository.ErrCheckInStatsNotFound)

	got, err := svc.ListRewards(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.True(t, got[0].Unlocked)
	assert.False(t, got[1].Unlocked)
}
