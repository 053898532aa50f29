package impl

import (
	"context"
	"time"

	"bosskill/internal/domain/entity"
	domainerrors "bosskill/internal/domain/errors"
	"bosskill/internal/domain/repository"
	"bosskill/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// quoteService implements the QuoteUsecase interface.
type quoteService struct {
	txManager repository.TransactionManager
	quoteRepo repository.QuoteRepository
	now       func() time.Time
}

// QuoteServiceParams holds dependencies for QuoteService, injected by Fx.
type QuoteServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	QuoteRepo repository.QuoteRepository
}

// NewQuoteService is the constructor for quoteService. It receives all dependencies as interfaces.
func NewQuoteService(params QuoteServiceParams) usecase.QuoteUsecase {
	return &quoteService{
		txManager: params.TxManager,
		quoteRepo: params.QuoteRepo,
		now:       time.Now,
	}
}

// GetDailyQuote picks today's quote for the user: the most effective
// least-shown active quote the user has not been shown today. When the user
// has already seen every active quote today the top quote comes back again
// with IsRepeat set, so the endpoint never runs dry.
func (srv *quoteService) GetDailyQuote(ctx context.Context, userID string) (*entity.DailyQuote, error) {
	today := srv.now().Format(checkInDateLayout)

	quote, err := srv.quoteRepo.FindDailyCandidate(ctx, userID, today)
	if err == nil {
		return &entity.DailyQuote{Quote: *quote}, nil
	}
	if !errors.Is(err, repository.ErrQuoteNotFound) {
		return nil, errors.Wrap(err, "failed to find daily quote candidate")
	}

	fallback, err := srv.quoteRepo.FindTopEffective(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrQuoteNotFound) {
			return nil, domainerrors.ErrQuoteNotFound
		}

		return nil, errors.Wrap(err, "failed to find fallback quote")
	}

	return &entity.DailyQuote{Quote: *fallback, IsRepeat: true}, nil
}

// GetRandomQuote returns a uniformly random active quote.
func (srv *quoteService) GetRandomQuote(ctx context.Context) (*entity.Quote, error) {
	quote, err := srv.quoteRepo.FindRandom(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrQuoteNotFound) {
			return nil, domainerrors.ErrQuoteNotFound
		}

		return nil, errors.Wrap(err, "failed to find random quote")
	}

	return quote, nil
}

// GetQuotesByCategory returns active quotes in a category, most effective first.
func (srv *quoteService) GetQuotesByCategory(ctx context.Context, categoryName string) ([]*entity.Quote, error) {
	quotes, err := srv.quoteRepo.FindByCategory(ctx, categoryName)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find quotes by category")
	}
	if len(quotes) == 0 {
		return nil, domainerrors.ErrQuoteCategoryNotFound
	}

	return quotes, nil
}

// ListCategories returns active categories with their quote counts.
func (srv *quoteService) ListCategories(ctx context.Context) ([]*entity.QuoteCategory, error) {
	categories, err := srv.quoteRepo.ListCategories(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	return categories, nil
}

// RecordUsage stores that a quote was shown, bumps its usage count and folds
// an optional rating into its effectiveness score. The rating average must
// see the usage count as it was before this usage, so the rating is applied
// before the increment, all inside one transaction.
func (srv *quoteService) RecordUsage(ctx context.Context, input *usecase.RecordQuoteUsageInput) error {
	if input.Rating != nil && (*input.Rating < 1 || *input.Rating > 5) {
		return domainerrors.ErrInvalidRating
	}

	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		quoteRepo := repoFactory.NewQuoteRepository()

		if _, err := quoteRepo.FindQuoteByID(ctx, input.QuoteID); err != nil {
			if errors.Is(err, repository.ErrQuoteNotFound) {
				return domainerrors.ErrQuoteNotFound
			}

			return errors.Wrap(err, "failed to find quote")
		}

		usage := &entity.QuoteUsage{
			ID:         uuid.New(),
			UserID:     input.UserID,
			QuoteID:    input.QuoteID,
			UserRating: input.Rating,
			UsedAt:     srv.now(),
		}
		if err := quoteRepo.CreateUsage(ctx, usage); err != nil {
			return errors.Wrap(err, "failed to create quote usage")
		}

		if input.Rating != nil {
			if err := quoteRepo.ApplyRating(ctx, input.QuoteID, *input.Rating); err != nil {
				return errors.Wrap(err, "failed to apply rating")
			}
		}

		if err := quoteRepo.IncrementUsageCount(ctx, input.QuoteID); err != nil {
			return errors.Wrap(err, "failed to increment usage count")
		}

		return nil
	})
}
