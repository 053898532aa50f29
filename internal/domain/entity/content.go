// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// ContentItem is a feed post with its engagement counters. The ranking score
// is derived at query time, never stored.
type ContentItem struct {
	ID            uuid.UUID `json:"id"`             // The Global Unique Identifier (GUID) for the content item.
	AuthorID      string    `json:"author_id"`      // Opaque identifier of the posting user.
	Title         string    `json:"title"`          // Display title.
	Category      string    `json:"category"`       // Free-form content category.
	LikeCount     int       `json:"like_count"`     // Number of likes received.
	FavoriteCount int       `json:"favorite_count"` // Number of favorites received.
	ViewCount     int       `json:"view_count"`     // Number of views received.
	IsActive      bool      `json:"is_active"`      // Inactive items are excluded from the feed.
	CreatedAt     time.Time `json:"created_at"`     // Timestamp of when the item was posted.
}

// RankedContent is a ContentItem bundled with the engagement score computed
// for the requesting moment. Feed pages are ordered by descending Score.
type RankedContent struct {
	ContentItem
	Score float64 `json:"score"`
}

// UserAction records a single engagement event (view, like, favorite, comment,
// share) a user performed on a content item.
type UserAction struct {
	ID        uuid.UUID  `json:"id"`
	UserID    string     `json:"user_id"`
	ContentID uuid.UUID  `json:"content_id"`
	Type      ActionType `json:"type"`
	CreatedAt time.Time  `json:"created_at"`
}

// ActionType represents the kind of engagement a user action records.
type ActionType string

const (
	// ActionTypeView counts a content view.
	ActionTypeView ActionType = "view"
	// ActionTypeLike counts a like.
	ActionTypeLike ActionType = "like"
	// ActionTypeFavorite counts a favorite.
	ActionTypeFavorite ActionType = "favorite"
	// ActionTypeComment counts a comment.
	ActionTypeComment ActionType = "comment"
	// ActionTypeShare counts a share.
	ActionTypeShare ActionType = "share"
)

// String returns the string representation of the ActionType.
func (a ActionType) String() string {
	return string(a)
}

// IsValid checks if the ActionType is a valid value.
func (a ActionType) IsValid() bool {
	switch a {
	case ActionTypeView, ActionTypeLike, ActionTypeFavorite, ActionTypeComment, ActionTypeShare:
		return true
	default:
		return false
	}
}
