package model

import (
	"time"

	"github.com/google/uuid"
)

// QuoteModel is the GORM-specific struct for the 'quotes' table.
type QuoteModel struct {
	ID                 uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Text               string    `gorm:"type:text;not null"`
	Category           string    `gorm:"not null;index"`
	Author             string    `gorm:"not null;default:'system'"`
	UsageCount         int       `gorm:"not null;default:0"`
	EffectivenessScore float64   `gorm:"type:decimal(4,3);not null;default:0.5;index"`
	IsActive           bool      `gorm:"not null;default:true;index"`
	Tags               []string  `gorm:"serializer:json"`
	CreatedAt          time.Time
}

// TableName explicitly sets the table name for GORM.
func (QuoteModel) TableName() string {
	return "quotes"
}

// QuoteCategoryModel is the GORM-specific struct for the 'quote_categories' table.
type QuoteCategoryModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name        string    `gorm:"not null;uniqueIndex"`
	DisplayName string    `gorm:"not null"`
	Description string
	Color       string
	Icon        string
	SortOrder   int  `gorm:"not null;default:0"`
	IsActive    bool `gorm:"not null;default:true"`
}

// TableName explicitly sets the table name for GORM.
func (QuoteCategoryModel) TableName() string {
	return "quote_categories"
}

// QuoteUsageModel is the GORM-specific struct for the 'quote_usages' table.
// The (user_id, quote_id, used_at) trail keeps the daily pick from repeating.
type QuoteUsageModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID     string    `gorm:"not null;index:idx_quote_usages_user_date"`
	QuoteID    uuid.UUID `gorm:"type:uuid;not null;index"`
	UserRating *int
	UsedAt     time.Time `gorm:"not null;index:idx_quote_usages_user_date"`
}

// TableName explicitly sets the table name for GORM.
func (QuoteUsageModel) TableName() string {
	return "quote_usages"
}
