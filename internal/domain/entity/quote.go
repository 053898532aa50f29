// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Quote is a motivational quote candidate for the daily recommendation.
// EffectivenessScore is a curated quality rating that drifts with user ratings;
// UsageCount tracks how often the quote has been shown.
type Quote struct {
	ID                 uuid.UUID `json:"id"`                  // The Global Unique Identifier (GUID) for the quote.
	Text               string    `json:"text"`                // The quote body.
	Category           string    `json:"category"`            // Category name, references QuoteCategory.Name.
	Author             string    `json:"author"`              // Attribution, defaults to "system".
	UsageCount         int       `json:"usage_count"`         // Number of times the quote has been shown.
	EffectivenessScore float64   `json:"effectiveness_score"` // Curated quality rating in [0, 1].
	IsActive           bool      `json:"is_active"`           // Inactive quotes are excluded from selection.
	Tags               []string  `json:"tags"`                // Free-form tags for display.
	CreatedAt          time.Time `json:"created_at"`          // Timestamp of when this record was created.
}

// QuoteCategory groups quotes for browsing.
type QuoteCategory struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`         // Stable machine name, unique.
	DisplayName string    `json:"display_name"` // Localized display name.
	Description string    `json:"description"`
	Color       string    `json:"color"`
	Icon        string    `json:"icon"`
	SortOrder   int       `json:"sort_order"`
	IsActive    bool      `json:"is_active"`
	QuoteCount  int       `json:"quote_count"` // Derived: active quotes in this category.
}

// QuoteUsage records that a quote was shown to a user, with an optional rating.
// The (user, quote, date) trail is what keeps the daily recommendation from
// repeating itself.
type QuoteUsage struct {
	ID         uuid.UUID `json:"id"`
	UserID     string    `json:"user_id"`
	QuoteID    uuid.UUID `json:"quote_id"`
	UserRating *int      `json:"user_rating,omitempty"` // 1-5, nil when the user did not rate.
	UsedAt     time.Time `json:"used_at"`
}

// DailyQuote is the recommendation result: the selected quote plus whether the
// selection had to fall back to a repeat because the user had already seen
// every active quote today.
type DailyQuote struct {
	Quote
	IsRepeat bool `json:"is_repeat"`
}
