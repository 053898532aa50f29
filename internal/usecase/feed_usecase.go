package usecase

import (
	"context"

	"bosskill/internal/domain/entity"

	"github.com/google/uuid"
)

// FeedQuery represents the input for ranked feed pagination
type FeedQuery struct {
	Category string `json:"category"` // Empty means all categories
	Page     int    `json:"page"`     // 1-based, 0 means first page
	PageSize int    `json:"page_size"`
}

// FeedPage is one page of the ranked feed
type FeedPage struct {
	Items      []*entity.RankedContent `json:"items"`
	Page       int                     `json:"page"`
	PageSize   int                     `json:"page_size"`
	TotalItems int                     `json:"total_items"`
}

// RecordActionInput represents the input for recording a user engagement event
type RecordActionInput struct {
	UserID    string    `json:"user_id"`
	ContentID uuid.UUID `json:"content_id"`
	Action    string    `json:"action"`
}

// RecordActionResult reports the recorded action and any points it earned
type RecordActionResult struct {
	Action       *entity.UserAction `json:"action"`
	PointsEarned int                `json:"points_earned"`
	LimitReached bool               `json:"limit_reached"` // Daily point limit hit, action recorded without points
}

// FeedUsecase defines the interface for the engagement-ranked feed use cases
type FeedUsecase interface {
	// GetFeed returns a page of active content ranked by time-decayed
	// engagement score, highest first.
	GetFeed(ctx context.Context, query *FeedQuery) (*FeedPage, error)

	// RecordAction stores an engagement event, bumps the matching counter
	// and credits rule points subject to the rule's daily limit.
	RecordAction(ctx context.Context, input *RecordActionInput) (*RecordActionResult, error)
}
