package model

import (
	"time"

	"github.com/google/uuid"
)

// ContentModel is the GORM-specific struct for the 'contents' table.
// Engagement counters are denormalized; the feed score is never stored.
type ContentModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	AuthorID      string    `gorm:"not null;index"`
	Title         string    `gorm:"not null"`
	Category      string    `gorm:"index"`
	LikeCount     int       `gorm:"not null;default:0"`
	FavoriteCount int       `gorm:"not null;default:0"`
	ViewCount     int       `gorm:"not null;default:0"`
	IsActive      bool      `gorm:"not null;default:true;index"`
	CreatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (ContentModel) TableName() string {
	return "contents"
}

// UserActionModel is the GORM-specific struct for the 'user_actions' table.
type UserActionModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    string    `gorm:"not null;index:idx_user_actions_user_type_date"`
	ContentID uuid.UUID `gorm:"type:uuid;not null;index"`
	Type      string    `gorm:"not null;index:idx_user_actions_user_type_date"`
	CreatedAt time.Time `gorm:"index:idx_user_actions_user_type_date"`
}

// TableName explicitly sets the table name for GORM.
func (UserActionModel) TableName() string {
	return "user_actions"
}
