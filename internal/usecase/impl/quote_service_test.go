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

func newQuoteService(t *testing.T, now time.Time) (usecase.QuoteUsecase, *mockRepo.MockQuoteRepository) {
	quoteRepo := mockRepo.NewMockQuoteRepository(t)
	txManager := &fakeTxManager{factory: &fakeRepoFactory{quoteRepo: quoteRepo}}

	svc := NewQuoteService(QuoteServiceParams{
		TxManager: txManager,
		QuoteRepo: quoteRepo,
	}).(*quoteService)
	svc.now = func() time.Time { return now }

	return svc, quoteRepo
}

func TestQuoteService_GetDailyQuote_FreshCandidate(t *testing.T) {
	now := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	svc, quoteRepo := newQuoteService(t, now)
	ctx := context.Background()

	quote := &entity.Quote{ID: uuid.New(), Text: "keep going", EffectivenessScore: 0.9}
	quoteRepo.EXPECT().
		FindDailyCandidate(ctx, "user-1", "2026-03-01").
		Return(quote, nil)

	daily, err := svc.GetDailyQuote(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, quote.ID, daily.ID)
	assert.False(t, daily.IsRepeat)
}

func TestQuoteService_GetDailyQuote_FallsBackToRepeat(t *testing.T) {
	now := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	svc, quoteRepo := newQuoteService(t, now)
	ctx := context.Background()

	top := &entity.Quote{ID: uuid.New(), Text: "seen it all", EffectivenessScore: 0.95}
	quoteRepo.EXPECT().
		FindDailyCandidate(ctx, "user-1", "2026-03-01").
		Return(nil, repository.ErrQuoteNotFound)
	quoteRepo.EXPECT().
		FindTopEffective(ctx).
		Return(top, nil)

	daily, err := svc.GetDailyQuote(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, top.ID, daily.ID)
	assert.True(t, daily.IsRepeat)
}

func TestQuoteService_GetDailyQuote_NoQuotesAtAll(t *testing.T) {
	now := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	svc, quoteRepo := newQuoteService(t, now)
	ctx := context.Background()

	quoteRepo.EXPECT().
		FindDailyCandidate(ctx, "user-1", "2026-03-01").
		Return(nil, repository.ErrQuoteNotFound)
	quoteRepo.EXPECT().
		FindTopEffective(ctx).
		Return(nil, repository.ErrQuoteNotFound)

	daily, err := svc.GetDailyQuote(ctx, "user-1")
	assert.ErrorIs(t, err, domainerrors.ErrQuoteNotFound)
	assert.Nil(t, daily)
}

func TestQuoteService_GetRandomQuote(t *testing.T) {
	svc, quoteRepo := newQuoteService(t, time.Now())
	ctx := context.Background()

	quote := &entity.Quote{ID: uuid.New(), Text: "roll the dice"}
	quoteRepo.EXPECT().FindRandom(ctx).Return(quote, nil)

	got, err := svc.GetRandomQuote(ctx)
	require.NoError(t, err)
	assert.Equal(t, quote, got)
}

func TestQuoteService_GetRandomQuote_Empty(t *testing.T) {
	svc, quoteRepo := newQuoteService(t, time.Now())
	ctx := context.Background()

	quoteRepo.EXPECT().FindRandom(ctx).Return(nil, repository.ErrQuoteNotFound)

	got, err := svc.GetRandomQuote(ctx)
	assert.ErrorIs(t, err, domainerrors.ErrQuoteNotFound)
	assert.Nil(t, got)
}

func TestQuoteService_GetQuotesByCategory(t *testing.T) {
	svc, quoteRepo := newQuoteService(t, time.Now())
	ctx := context.Background()

	quotes := []*entity.Quote{{ID: uuid.New(), Category: "courage"}}
	quoteRepo.EXPECT().FindByCategory(ctx, "courage").Return(quotes, nil)

	got, err := svc.GetQuotesByCategory(ctx, "courage")
	require.NoError(t, err)
	assert.Equal(t, quotes, got)
}

func TestQuoteService_GetQuotesByCategory_Unknown(t *testing.T) {
	svc, quoteRepo := newQuoteService(t, time.Now())
	ctx := context.Background()

	quoteRepo.EXPECT().FindByCategory(ctx, "nonsense").Return(nil, nil)

	got, err := svc.GetQuotesByCategory(ctx, "nonsense")
	assert.ErrorIs(t, err, domainerrors.ErrQuoteCategoryNotFound)
	assert.Nil(t, got)
}

func TestQuoteService_ListCategories(t *testing.T) {
	svc, quoteRepo := newQuoteService(t, time.Now())
	ctx := context.Background()

	categories := []*entity.QuoteCategory{{ID: uuid.New(), Name: "courage", QuoteCount: 3}}
	quoteRepo.EXPECT().ListCategories(ctx).Return(categories, nil)

	got, err := svc.ListCategories(ctx)
	require.NoError(t, err)
	assert.Equal(t, categories, got)
}

func TestQuoteService_RecordUsage_RatingAppliedBeforeIncrement(t *testing.T) {
	now := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	svc, quoteRepo := newQuoteService(t, now)
	ctx := context.Background()

	quoteID := uuid.New()
	rating := 4
	var calls []string

	quoteRepo.EXPECT().
		FindQuoteByID(ctx, quoteID).
		Return(&entity.Quote{ID: quoteID, UsageCount: 7}, nil)
	quoteRepo.EXPECT().
		CreateUsage(ctx, mock.MatchedBy(func(usage *entity.QuoteUsage) bool {
			return usage.QuoteID == quoteID && usage.UserRating != nil && *usage.UserRating == rating
		})).
		Run(func(_ context.Context, _ *entity.QuoteUsage) {
			calls = append(calls, "usage")
		}).
		Return(nil)
	quoteRepo.EXPECT().
		ApplyRating(ctx, quoteID, rating).
		Run(func(_ context.Context, _ uuid.UUID, _ int) {
			calls = append(calls, "rating")
		}).
		Return(nil)
	quoteRepo.EXPECT().
		IncrementUsageCount(ctx, quoteID).
		Run(func(_ context.Context, _ uuid.UUID) {
			calls = append(calls, "increment")
		}).
		Return(nil)

	err := svc.RecordUsage(ctx, &usecase.RecordQuoteUsageInput{
		UserID:  "user-1",
		QuoteID: quoteID,
		Rating:  &rating,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"usage", "rating", "increment"}, calls)
}

func TestQuoteService_RecordUsage_WithoutRating(t *testing.T) {
	svc, quoteRepo := newQuoteService(t, time.Now())
	ctx := context.Background()

	quoteID := uuid.New()
	quoteRepo.EXPECT().
		FindQuoteByID(ctx, quoteID).
		Return(&entity.Quote{ID: quoteID}, nil)
	quoteRepo.EXPECT().
		CreateUsage(ctx, mock.AnythingOfType("*entity.QuoteUsage")).
		Return(nil)
	quoteRepo.EXPECT().
		IncrementUsageCount(ctx, quoteID).
		Return(nil)

	err := svc.RecordUsage(ctx, &usecase.RecordQuoteUsageInput{
		UserID:  "user-1",
		QuoteID: quoteID,
	})
	require.NoError(t, err)
}

func TestQuoteService_RecordUsage_InvalidRating(t *testing.T) {
	svc, _ := newQuoteService(t, time.Now())

	for _, rating := range []int{0, 6, -1} {
		r := rating
		err := svc.RecordUsage(context.Background(), &usecase.RecordQuoteUsageInput{
			UserID:  "user-1",
			QuoteID: uuid.New(),
			Rating:  &r,
		})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidRating)
	}
}

func TestQuoteService_RecordUsage_QuoteNotFound(t *testing.T) {
	svc, quoteRepo := newQuoteService(t, time.Now())
	ctx := context.Background()

	quoteID := uuid.New()
	quoteRepo.EXPECT().
		FindQuoteByID(ctx, quoteID).
		Return(nil, repository.ErrQuoteNotFound)

	err := svc.RecordUsage(ctx, &usecase.RecordQuoteUsageInput{
		UserID:  "user-1",
		QuoteID: quoteID,
	})
	assert.ErrorIs(t, err, domainerrors.ErrQuoteNotFound)
}
