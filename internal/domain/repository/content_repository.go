// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"bosskill/internal/domain/entity"
	"bosskill/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for content persistence.
var (
	// ErrContentNotFound is returned when a content item is not found.
	ErrContentNotFound = errors.New("content not found")
)

// ContentRepository defines the interface for feed-content database operations.
type ContentRepository interface {
	// CreateContent persists a new content item.
	CreateContent(ctx context.Context, item *entity.ContentItem) error

	// FindContentByID retrieves a content item by its unique ID.
	FindContentByID(ctx context.Context, id uuid.UUID) (*entity.ContentItem, error)

	// FindActive retrieves all active content items. Ranking happens in the
	// use case because the score is derived per request, never stored.
	FindActive(ctx context.Context) ([]*entity.ContentItem, error)

	// IncrementCounter bumps the engagement counter matching the action type
	// (view, like, favorite) by one. Actions without a counter are a no-op.
	IncrementCounter(ctx context.Context, contentID uuid.UUID, action entity.ActionType) error

	// CreateAction records a single user engagement event.
	CreateAction(ctx context.Context, action *entity.UserAction) error

	// CountActionsOnDate returns how many actions of a type the user already
	// performed on the given calendar date (YYYY-MM-DD), for daily limits.
	CountActionsOnDate(ctx context.Context, userID string, action entity.ActionType, date string) (int64, error)
}
