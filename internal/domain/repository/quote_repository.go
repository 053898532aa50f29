// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"bosskill/internal/domain/entity"
	"bosskill/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for quote persistence.
var (
	// ErrQuoteNotFound is returned when no quote matches the query.
	ErrQuoteNotFound = errors.New("quote not found")
)

// QuoteRepository defines the interface for quote-related database operations.
type QuoteRepository interface {
	// CreateQuote persists a new quote.
	CreateQuote(ctx context.Context, quote *entity.Quote) error

	// CreateCategory persists a new quote category.
	CreateCategory(ctx context.Context, category *entity.QuoteCategory) error

	// FindQuoteByID retrieves a quote by its unique ID.
	FindQuoteByID(ctx context.Context, id uuid.UUID) (*entity.Quote, error)

	// FindDailyCandidate retrieves the best active quote the user has NOT
	// been shown on the given calendar date (YYYY-MM-DD): effectiveness
	// score descending, then usage count ascending. Returns ErrQuoteNotFound
	// when the user has already seen every active quote that day.
	FindDailyCandidate(ctx context.Context, userID, date string) (*entity.Quote, error)

	// FindTopEffective retrieves the active quote with the highest
	// effectiveness score regardless of usage history.
	FindTopEffective(ctx context.Context) (*entity.Quote, error)

	// FindRandom retrieves a uniformly random active quote.
	FindRandom(ctx context.Context) (*entity.Quote, error)

	// FindByCategory retrieves active quotes in a category, ordered by
	// effectiveness score descending.
	FindByCategory(ctx context.Context, categoryName string) ([]*entity.Quote, error)

	// ListCategories retrieves active categories with their active quote
	// counts, ordered by sort order.
	ListCategories(ctx context.Context) ([]*entity.QuoteCategory, error)

	// CreateUsage records that a quote was shown to a user.
	CreateUsage(ctx context.Context, usage *entity.QuoteUsage) error

	// IncrementUsageCount bumps a quote's usage counter by one.
	IncrementUsageCount(ctx context.Context, quoteID uuid.UUID) error

	// ApplyRating folds a user rating into the quote's effectiveness score
	// using the running-average update over the current usage count.
	ApplyRating(ctx context.Context, quoteID uuid.UUID, rating int) error
}
