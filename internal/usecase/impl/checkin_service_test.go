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

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type checkInServiceMocks struct {
	checkInRepo *mockRepo.MockCheckInRepository
	pointsRepo  *mockRepo.MockPointsRepository
}

func newCheckInService(t *testing.T, now time.Time) (usecase.CheckInUsecase, *checkInServiceMocks) {
	mocks := &checkInServiceMocks{
		checkInRepo: mockRepo.NewMockCheckInRepository(t),
		pointsRepo:  mockRepo.NewMockPointsRepository(t),
	}
	txManager := &fakeTxManager{factory: &fakeRepoFactory{
		checkInRepo: mocks.checkInRepo,
		pointsRepo:  mocks.pointsRepo,
	}}

	svc := NewCheckInService(CheckInServiceParams{
		TxManager:   txManager,
		CheckInRepo: mocks.checkInRepo,
		Config:      newTestConfig(),
	}).(*checkInService)
	svc.now = func() time.Time { return now }

	return svc, mocks
}

// expectWalletCredit wires the wallet flow a successful check-in goes through:
// first lookup inside creditWallet, the save, the ledger entry, and the reload
// that fills the result.
func expectWalletCredit(ctx context.Context, mocks *checkInServiceMocks, userID string, before *entity.Wallet, after *entity.Wallet) {
	if before == nil {
		mocks.pointsRepo.EXPECT().
			FindWallet(ctx, userID).
			Return(nil, repository.ErrWalletNotFound).
			Once()
	} else {
		mocks.pointsRepo.EXPECT().
			FindWallet(ctx, userID).
			Return(before, nil).
			Once()
	}
	mocks.pointsRepo.EXPECT().
		SaveWallet(ctx, mock.AnythingOfType("*entity.Wallet")).
		Return(nil)
	mocks.pointsRepo.EXPECT().
		CreateTransaction(ctx, mock.AnythingOfType("*entity.PointTransaction")).
		Return(nil)
	mocks.pointsRepo.EXPECT().
		FindWallet(ctx, userID).
		Return(after, nil).
		Once()
}

func TestCheckInService_CheckIn_FirstEver(t *testing.T) {
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	svc, mocks := newCheckInService(t, now)
	ctx := context.Background()

	mocks.checkInRepo.EXPECT().
		FindStats(ctx, "user-1").
		Return(nil, repository.ErrCheckInStatsNotFound)
	mocks.checkInRepo.EXPECT().
		CreateRecord(ctx, mock.MatchedBy(func(record *entity.CheckInRecord) bool {
			return record.Date == "2026-03-01" && record.StreakCount == 1 && record.PointsEarned == 10
		})).
		Return(nil)
	mocks.checkInRepo.EXPECT().
		SaveStats(ctx, mock.MatchedBy(func(stats *entity.CheckInStats) bool {
			return stats.CurrentStreak == 1 && stats.LongestStreak == 1 &&
				stats.TotalCheckIns == 1 && stats.LastCheckIn == "2026-03-01"
		})).
		Return(nil)
	expectWalletCredit(ctx, mocks, "user-1", nil,
		&entity.Wallet{UserID: "user-1", TotalPoints: 10, AvailablePoints: 10, Level: 1})

	result, err := svc.CheckIn(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, 10, result.PointsEarned)
	assert.Equal(t, 1, result.Record.StreakCount)
	assert.Equal(t, 10, result.Wallet.AvailablePoints)
}

func TestCheckInService_CheckIn_ExtendsStreak(t *testing.T) {
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	svc, mocks := newCheckInService(t, now)
	ctx := context.Background()

	mocks.checkInRepo.EXPECT().
		FindStats(ctx, "user-1").
		Return(&entity.CheckInStats{
			UserID:        "user-1",
			CurrentStreak: 4,
			LongestStreak: 4,
			TotalCheckIns: 9,
			LastCheckIn:   "2026-02-28",
		}, nil)
	// Streak 5 pays the base 10 plus 4 bonus days at 5 each.
	mocks.checkInRepo.EXPECT().
		CreateRecord(ctx, mock.MatchedBy(func(record *entity.CheckInRecord) bool {
			return record.StreakCount == 5 && record.PointsEarned == 30
		})).
		Return(nil)
	mocks.checkInRepo.EXPECT().
		SaveStats(ctx, mock.MatchedBy(func(stats *entity.CheckInStats) bool {
			return stats.CurrentStreak == 5 && stats.LongestStreak == 5 && stats.TotalCheckIns == 10
		})).
		Return(nil)
	expectWalletCredit(ctx, mocks, "user-1",
		&entity.Wallet{UserID: "user-1", TotalPoints: 120, AvailablePoints: 90, Level: 2},
		&entity.Wallet{UserID: "user-1", TotalPoints: 150, AvailablePoints: 120, Level: 2})

	result, err := svc.CheckIn(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, 30, result.PointsEarned)
	assert.Equal(t, 5, result.Record.StreakCount)
}

func TestCheckInService_CheckIn_BonusFlattensAtCap(t *testing.T) {
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	svc, mocks := newCheckInService(t, now)
	ctx := context.Background()

	mocks.checkInRepo.EXPECT().
		FindStats(ctx, "user-1").
		Return(&entity.CheckInStats{
			UserID:        "user-1",
			CurrentStreak: 14,
			LongestStreak: 14,
			TotalCheckIns: 14,
			LastCheckIn:   "2026-02-28",
		}, nil)
	// Day 15 of the streak: the bonus is capped at 10 days, 10 + 10*5 = 60.
	mocks.checkInRepo.EXPECT().
		CreateRecord(ctx, mock.MatchedBy(func(record *entity.CheckInRecord) bool {
			return record.StreakCount == 15 && record.PointsEarned == 60
		})).
		Return(nil)
	mocks.checkInRepo.EXPECT().
		SaveStats(ctx, mock.AnythingOfType("*entity.CheckInStats")).
		Return(nil)
	expectWalletCredit(ctx, mocks, "user-1",
		&entity.Wallet{UserID: "user-1", TotalPoints: 500, AvailablePoints: 500, Level: 6},
		&entity.Wallet{UserID: "user-1", TotalPoints: 560, AvailablePoints: 560, Level: 6})

	result, err := svc.CheckIn(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, 60, result.PointsEarned)
}

func TestCheckInService_CheckIn_ResetsAfterGap(t *testing.T) {
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	svc, mocks := newCheckInService(t, now)
	ctx := context.Background()

	mocks.checkInRepo.EXPECT().
		FindStats(ctx, "user-1").
		Return(&entity.CheckInStats{
			UserID:        "user-1",
			CurrentStreak: 8,
			LongestStreak: 8,
			TotalCheckIns: 20,
			LastCheckIn:   "2026-02-20",
		}, nil)
	mocks.checkInRepo.EXPECT().
		CreateRecord(ctx, mock.MatchedBy(func(record *entity.CheckInRecord) bool {
			return record.StreakCount == 1 && record.PointsEarned == 10
		})).
		Return(nil)
	mocks.checkInRepo.EXPECT().
		SaveStats(ctx, mock.MatchedBy(func(stats *entity.CheckInStats) bool {
			return stats.CurrentStreak == 1 && stats.LongestStreak == 8 && stats.TotalCheckIns == 21
		})).
		Return(nil)
	expectWalletCredit(ctx, mocks, "user-1",
		&entity.Wallet{UserID: "user-1", TotalPoints: 300, AvailablePoints: 250, Level: 4},
		&entity.Wallet{UserID: "user-1", TotalPoints: 310, AvailablePoints: 260, Level: 4})

	result, err := svc.CheckIn(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, 1, result.Record.StreakCount)
	assert.Equal(t, 10, result.PointsEarned)
}

func TestCheckInService_CheckIn_AlreadyCheckedInToday(t *testing.T) {
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	svc, mocks := newCheckInService(t, now)
	ctx := context.Background()

	mocks.checkInRepo.EXPECT().
		FindStats(ctx, "user-1").
		Return(&entity.CheckInStats{
			UserID:        "user-1",
			CurrentStreak: 3,
			LastCheckIn:   "2026-03-01",
		}, nil)

	result, err := svc.CheckIn(ctx, "user-1")
	assert.ErrorIs(t, err, domainerrors.ErrAlreadyCheckedIn)
	assert.Nil(t, result)
}

func TestCheckInService_CheckIn_RacingDuplicate(t *testing.T) {
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	svc, mocks := newCheckInService(t, now)
	ctx := context.Background()

	mocks.checkInRepo.EXPECT().
		FindStats(ctx, "user-1").
		Return(nil, repository.ErrCheckInStatsNotFound)
	mocks.checkInRepo.EXPECT().
		CreateRecord(ctx, mock.AnythingOfType("*entity.CheckInRecord")).
		Return(repository.ErrDuplicateCheckIn)

	result, err := svc.CheckIn(ctx, "user-1")
	assert.ErrorIs(t, err, domainerrors.ErrAlreadyCheckedIn)
	assert.Nil(t, result)
}

func TestCheckInService_GetProgress_NewUser(t *testing.T) {
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	svc, mocks := newCheckInService(t, now)
	ctx := context.Background()

	mocks.checkInRepo.EXPECT().
		FindStats(ctx, "user-1").
		Return(nil, repository.ErrCheckInStatsNotFound)

	progress, err := svc.GetProgress(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, "user-1", progress.UserID)
	assert.Equal(t, 0, progress.CurrentStreak)
	assert.False(t, progress.CheckedInToday)
}

func TestCheckInService_GetProgress_CheckedInToday(t *testing.T) {
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	svc, mocks := newCheckInService(t, now)
	ctx := context.Background()

	mocks.checkInRepo.EXPECT().
		FindStats(ctx, "user-1").
		Return(&entity.CheckInStats{
			UserID:        "user-1",
			CurrentStreak: 6,
			LastCheckIn:   "2026-03-01",
		}, nil)

	progress, err := svc.GetProgress(ctx, "user-1")
	require.NoError(t, err)
	assert.True(t, progress.CheckedInToday)
	assert.Equal(t, 6, progress.CurrentStreak)
}

func TestCheckInService_GetProgress_BrokenStreakReadsZero(t *testing.T) {
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	svc, mocks := newCheckInService(t, now)
	ctx := context.Background()

	mocks.checkInRepo.EXPECT().
		FindStats(ctx, "user-1").
		Return(&entity.CheckInStats{
			UserID:        "user-1",
			CurrentStreak: 6,
			LongestStreak: 9,
			LastCheckIn:   "2026-02-25",
		}, nil)

	progress, err := svc.GetProgress(ctx, "user-1")
	require.NoError(t, err)
	assert.False(t, progress.CheckedInToday)
	assert.Equal(t, 0, progress.CurrentStreak)
	assert.Equal(t, 9, progress.LongestStreak)
}

func TestCheckInService_GetLeaderboard_AssignsRanks(t *testing.T) {
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	svc, mocks := newCheckInService(t, now)
	ctx := context.Background()

	mocks.checkInRepo.EXPECT().
		TopStreaks(ctx, 50).
		Return([]*entity.StreakLeader{
			{UserID: "user-9", CurrentStreak: 40},
			{UserID: "user-3", CurrentStreak: 22},
		}, nil)

	leaders, err := svc.GetLeaderboard(ctx)
	require.NoError(t, err)
	require.Len(t, leaders, 2)
	assert.Equal(t, 1, leaders[0].Rank)
	assert.Equal(t, 2, leaders[1].Rank)
}
