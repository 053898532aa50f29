// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Wallet is a user's point balance. TotalPoints only grows; AvailablePoints
// is what is left to spend on gifts and unlocks.
type Wallet struct {
	UserID          string    `json:"user_id"`
	TotalPoints     int       `json:"total_points"`
	AvailablePoints int       `json:"available_points"`
	Level           int       `json:"level"` // Derived from TotalPoints, never decreases.
	UpdatedAt       time.Time `json:"updated_at"`
}

// PointTransaction is one entry in the point ledger. Positive points credit
// the wallet, negative points debit it.
type PointTransaction struct {
	ID          uuid.UUID `json:"id"`
	UserID      string    `json:"user_id"`
	Points      int       `json:"points"`
	Type        string    `json:"type"`                   // e.g. "checkin", "action", "gift_sent".
	ReferenceID string    `json:"reference_id,omitempty"` // Soft reference to the triggering record.
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// PointRule maps an engagement action to the points it awards, with an
// optional daily cap. DailyLimit < 0 means unlimited.
type PointRule struct {
	ID          uuid.UUID  `json:"id"`
	ActionType  ActionType `json:"action_type"`
	PointsValue int        `json:"points_value"`
	DailyLimit  int        `json:"daily_limit"`
	Description string     `json:"description"`
	IsActive    bool       `json:"is_active"`
}

// Gift is a purchasable item users send to each other.
type Gift struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	PricePoints int       `json:"price_points"`
	EffectType  string    `json:"effect_type"`
	IsActive    bool      `json:"is_active"`
	SortOrder   int       `json:"sort_order"`
}

// GiftRecord is a delivered gift.
type GiftRecord struct {
	ID         uuid.UUID  `json:"id"`
	SenderID   string     `json:"sender_id"`
	ReceiverID string     `json:"receiver_id"`
	GiftID     uuid.UUID  `json:"gift_id"`
	ContentID  *uuid.UUID `json:"content_id,omitempty"` // The post the gift was attached to, if any.
	Message    string     `json:"message,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

// Reward is an unlockable (title, sticker pack, avatar frame) gated by points
// or streak length.
type Reward struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Description    string    `json:"description,omitempty"`
	Type           string    `json:"type"` // "title", "sticker", "avatar_frame".
	RequiredPoints int       `json:"required_points"`
	RequiredStreak int       `json:"required_streak"`
	IsActive       bool      `json:"is_active"`
	SortOrder      int       `json:"sort_order"`
}

// UserReward is a Reward bundled with whether the given user has unlocked it.
type UserReward struct {
	Reward
	Unlocked bool `json:"unlocked"`
}
