package usecase

import (
	"context"

	"bosskill/internal/domain/entity"

	"github.com/google/uuid"
)

// RecordQuoteUsageInput represents the input for recording a shown quote
type RecordQuoteUsageInput struct {
	UserID  string    `json:"user_id"`
	QuoteID uuid.UUID `json:"quote_id"`
	Rating  *int      `json:"rating,omitempty"` // 1-5, nil when the user did not rate
}

// QuoteUsecase defines the interface for the daily quote use cases
type QuoteUsecase interface {
	// GetDailyQuote picks today's quote for the user: the most effective
	// least-shown quote they have not seen today, falling back to the top
	// quote with IsRepeat set when everything has been seen.
	GetDailyQuote(ctx context.Context, userID string) (*entity.DailyQuote, error)

	// GetRandomQuote returns a uniformly random active quote.
	GetRandomQuote(ctx context.Context) (*entity.Quote, error)

	// GetQuotesByCategory returns active quotes in a category, most
	// effective first.
	GetQuotesByCategory(ctx context.Context, categoryName string) ([]*entity.Quote, error)

	// ListCategories returns active categories with their quote counts.
	ListCategories(ctx context.Context) ([]*entity.QuoteCategory, error)

	// RecordUsage stores that a quote was shown, bumps its usage count and
	// folds an optional rating into its effectiveness score atomically.
	RecordUsage(ctx context.Context, input *RecordQuoteUsageInput) error
}
