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

type feedServiceMocks struct {
	contentRepo *mockRepo.MockContentRepository
	pointsRepo  *mockRepo.MockPointsRepository
}

func newFeedService(t *testing.T, now time.Time) (usecase.FeedUsecase, *feedServiceMocks) {
	mocks := &feedServiceMocks{
		contentRepo: mockRepo.NewMockContentRepository(t),
		pointsRepo:  mockRepo.NewMockPointsRepository(t),
	}
	txManager := &fakeTxManager{factory: &fakeRepoFactory{
		contentRepo: mocks.contentRepo,
		pointsRepo:  mocks.pointsRepo,
	}}

	svc := NewFeedService(FeedServiceParams{
		TxManager:   txManager,
		ContentRepo: mocks.contentRepo,
		Config:      newTestConfig(),
	}).(*feedService)
	svc.now = func() time.Time { return now }

	return svc, mocks
}

func TestFeedService_GetFeed_DecayedRanking(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svc, mocks := newFeedService(t, now)
	ctx := context.Background()

	// Ten half-lives of decay push the old heavyweight below the fresh item.
	fresh := &entity.ContentItem{ID: uuid.New(), Title: "fresh", LikeCount: 10, CreatedAt: now}
	stale := &entity.ContentItem{ID: uuid.New(), Title: "stale", LikeCount: 100, CreatedAt: now.Add(-720 * time.Hour)}

	mocks.contentRepo.EXPECT().
		FindActive(ctx).
		Return([]*entity.ContentItem{stale, fresh}, nil)

	page, err := svc.GetFeed(ctx, &usecase.FeedQuery{})
	require.NoError(t, err)
	require.Len(t, page.Items, 2)
	assert.Equal(t, fresh.ID, page.Items[0].ID)
	assert.Equal(t, stale.ID, page.Items[1].ID)
	assert.InDelta(t, 10.0, page.Items[0].Score, 1e-9)
	assert.Less(t, page.Items[1].Score, 1.0)
}

func TestFeedService_GetFeed_TiesNewestFirst(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svc, mocks := newFeedService(t, now)
	ctx := context.Background()

	older := &entity.ContentItem{ID: uuid.New(), CreatedAt: now.Add(-2 * time.Hour)}
	newer := &entity.ContentItem{ID: uuid.New(), CreatedAt: now.Add(-time.Hour)}

	mocks.contentRepo.EXPECT().
		FindActive(ctx).
		Return([]*entity.ContentItem{older, newer}, nil)

	page, err := svc.GetFeed(ctx, &usecase.FeedQuery{})
	require.NoError(t, err)
	require.Len(t, page.Items, 2)
	assert.Equal(t, newer.ID, page.Items[0].ID)
	assert.Equal(t, older.ID, page.Items[1].ID)
}

func TestFeedService_GetFeed_CategoryFilter(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svc, mocks := newFeedService(t, now)
	ctx := context.Background()

	fitness := &entity.ContentItem{ID: uuid.New(), Category: "fitness", CreatedAt: now}
	cooking := &entity.ContentItem{ID: uuid.New(), Category: "cooking", CreatedAt: now}

	mocks.contentRepo.EXPECT().
		FindActive(ctx).
		Return([]*entity.ContentItem{fitness, cooking}, nil)

	page, err := svc.GetFeed(ctx, &usecase.FeedQuery{Category: "fitness"})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, fitness.ID, page.Items[0].ID)
	assert.Equal(t, 1, page.TotalItems)
}

func TestFeedService_GetFeed_Pagination(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svc, mocks := newFeedService(t, now)
	ctx := context.Background()

	items := make([]*entity.ContentItem, 0, 5)
	for i := 0; i < 5; i++ {
		items = append(items, &entity.ContentItem{
			ID:        uuid.New(),
			CreatedAt: now.Add(-time.Duration(i) * time.Minute),
		})
	}

	mocks.contentRepo.EXPECT().
		FindActive(ctx).
		Return(items, nil).
		Twice()

	page, err := svc.GetFeed(ctx, &usecase.FeedQuery{Page: 2, PageSize: 2})
	require.NoError(t, err)
	require.Len(t, page.Items, 2)
	assert.Equal(t, items[2].ID, page.Items[0].ID)
	assert.Equal(t, items[3].ID, page.Items[1].ID)
	assert.Equal(t, 5, page.TotalItems)
	assert.Equal(t, 2, page.Page)

	empty, err := svc.GetFeed(ctx, &usecase.FeedQuery{Page: 9, PageSize: 2})
	require.NoError(t, err)
	assert.Empty(t, empty.Items)
	assert.Equal(t, 5, empty.TotalItems)
}

func TestFeedService_RecordAction_CreditsRulePoints(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svc, mocks := newFeedService(t, now)
	ctx := context.Background()

	contentID := uuid.New()
	rule := &entity.PointRule{ID: uuid.New(), ActionType: entity.ActionTypeLike, PointsValue: 5, DailyLimit: 10}

	mocks.contentRepo.EXPECT().
		FindContentByID(ctx, contentID).
		Return(&entity.ContentItem{ID: contentID, IsActive: true}, nil)
	mocks.contentRepo.EXPECT().
		CreateAction(ctx, mock.AnythingOfType("*entity.UserAction")).
		Return(nil)
	mocks.contentRepo.EXPECT().
		IncrementCounter(ctx, contentID, entity.ActionTypeLike).
		Return(nil)
	mocks.pointsRepo.EXPECT().
		FindRuleByAction(ctx, entity.ActionTypeLike).
		Return(rule, nil)
	mocks.contentRepo.EXPECT().
		CountActionsOnDate(ctx, "user-1", entity.ActionTypeLike, "2026-03-01").
		Return(int64(3), nil)
	mocks.pointsRepo.EXPECT().
		FindWallet(ctx, "user-1").
		Return(nil, repository.ErrWalletNotFound)

	var saved *entity.Wallet
	mocks.pointsRepo.EXPECT().
		SaveWallet(ctx, mock.AnythingOfType("*entity.Wallet")).
		Run(func(_ context.Context, wallet *entity.Wallet) {
			saved = wallet
		}).
		Return(nil)
	mocks.pointsRepo.EXPECT().
		CreateTransaction(ctx, mock.AnythingOfType("*entity.PointTransaction")).
		Return(nil)

	result, err := svc.RecordAction(ctx, &usecase.RecordActionInput{
		UserID:    "user-1",
		ContentID: contentID,
		Action:    "like",
	})
	require.NoError(t, err)
	assert.Equal(t, 5, result.PointsEarned)
	assert.False(t, result.LimitReached)

	require.NotNil(t, saved)
	assert.Equal(t, 5, saved.TotalPoints)
	assert.Equal(t, 5, saved.AvailablePoints)
	assert.Equal(t, 1, saved.Level)
}

func TestFeedService_RecordAction_DailyLimitReached(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svc, mocks := newFeedService(t, now)
	ctx := context.Background()

	contentID := uuid.New()
	rule := &entity.PointRule{ID: uuid.New(), ActionType: entity.ActionTypeView, PointsValue: 1, DailyLimit: 10}

	mocks.contentRepo.EXPECT().
		FindContentByID(ctx, contentID).
		Return(&entity.ContentItem{ID: contentID, IsActive: true}, nil)
	mocks.contentRepo.EXPECT().
		CreateAction(ctx, mock.AnythingOfType("*entity.UserAction")).
		Return(nil)
	mocks.contentRepo.EXPECT().
		IncrementCounter(ctx, contentID, entity.ActionTypeView).
		Return(nil)
	mocks.pointsRepo.EXPECT().
		FindRuleByAction(ctx, entity.ActionTypeView).
		Return(rule, nil)
	mocks.contentRepo.EXPECT().
		CountActionsOnDate(ctx, "user-1", entity.ActionTypeView, "2026-03-01").
		Return(int64(11), nil)

	result, err := svc.RecordAction(ctx, &usecase.RecordActionInput{
		UserID:    "user-1",
		ContentID: contentID,
		Action:    "view",
	})
	require.NoError(t, err)
	assert.Equal(t, 0, result.PointsEarned)
	assert.True(t, result.LimitReached)
}

func TestFeedService_RecordAction_UnlimitedRuleSkipsDailyCount(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svc, mocks := newFeedService(t, now)
	ctx := context.Background()

	contentID := uuid.New()
	rule := &entity.PointRule{ID: uuid.New(), ActionType: entity.ActionTypeShare, PointsValue: 8, DailyLimit: -1}

	mocks.contentRepo.EXPECT().
		FindContentByID(ctx, contentID).
		Return(&entity.ContentItem{ID: contentID, IsActive: true}, nil)
	mocks.contentRepo.EXPECT().
		CreateAction(ctx, mock.AnythingOfType("*entity.UserAction")).
		Return(nil)
	mocks.contentRepo.EXPECT().
		IncrementCounter(ctx, contentID, entity.ActionTypeShare).
		Return(nil)
	mocks.pointsRepo.EXPECT().
		FindRuleByAction(ctx, entity.ActionTypeShare).
		Return(rule, nil)
	mocks.pointsRepo.EXPECT().
		FindWallet(ctx, "user-1").
		Return(&entity.Wallet{UserID: "user-1", TotalPoints: 95, AvailablePoints: 40, Level: 1}, nil)
	mocks.pointsRepo.EXPECT().
		SaveWallet(ctx, mock.MatchedBy(func(wallet *entity.Wallet) bool {
			return wallet.TotalPoints == 103 && wallet.AvailablePoints == 48 && wallet.Level == 2
		})).
		Return(nil)
	mocks.pointsRepo.EXPECT().
		CreateTransaction(ctx, mock.AnythingOfType("*entity.PointTransaction")).
		Return(nil)

	result, err := svc.RecordAction(ctx, &usecase.RecordActionInput{
		UserID:    "user-1",
		ContentID: contentID,
		Action:    "share",
	})
	require.NoError(t, err)
	assert.Equal(t, 8, result.PointsEarned)
	assert.False(t, result.LimitReached)
}

func TestFeedService_RecordAction_NoRuleEarnsNothing(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svc, mocks := newFeedService(t, now)
	ctx := context.Background()

	contentID := uuid.New()

	mocks.contentRepo.EXPECT().
		FindContentByID(ctx, contentID).
		Return(&entity.ContentItem{ID: contentID, IsActive: true}, nil)
	mocks.contentRepo.EXPECT().
		CreateAction(ctx, mock.AnythingOfType("*entity.UserAction")).
		Return(nil)
	mocks.contentRepo.EXPECT().
		IncrementCounter(ctx, contentID, entity.ActionTypeComment).
		Return(nil)
	mocks.pointsRepo.EXPECT().
		FindRuleByAction(ctx, entity.ActionTypeComment).
		Return(nil, repository.ErrPointRuleNotFound)

	result, err := svc.RecordAction(ctx, &usecase.RecordActionInput{
		UserID:    "user-1",
		ContentID: contentID,
		Action:    "comment",
	})
	require.NoError(t, err)
	assert.Equal(t, 0, result.PointsEarned)
	assert.False(t, result.LimitReached)
}

func TestFeedService_RecordAction_InvalidAction(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svc, _ := newFeedService(t, now)

	result, err := svc.RecordAction(context.Background(), &usecase.RecordActionInput{
		UserID:    "user-1",
		ContentID: uuid.New(),
		Action:    "teleport",
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidAction)
	assert.Nil(t, result)
}

func TestFeedService_RecordAction_ContentNotFound(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svc, mocks := newFeedService(t, now)
	ctx := context.Background()

	contentID := uuid.New()
	mocks.contentRepo.EXPECT().
		FindContentByID(ctx, contentID).
		Return(nil, repository.ErrContentNotFound)

	result, err := svc.RecordAction(ctx, &usecase.RecordActionInput{
		UserID:    "user-1",
		ContentID: contentID,
		Action:    "like",
	})
	assert.ErrorIs(t, err, domainerrors.ErrContentNotFound)
	assert.Nil(t, result)
}
