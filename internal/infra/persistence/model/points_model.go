package model

import (
	"time"

	"github.com/google/uuid"
)

// WalletModel is the GORM-specific struct for the 'wallets' table.
// One row per user, upserted whenever points move.
type WalletModel struct {
	UserID          string `gorm:"primary_key"`
	TotalPoints     int    `gorm:"not null;default:0"`
	AvailablePoints int    `gorm:"not null;default:0"`
	Level           int    `gorm:"not null;default:1"`
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (WalletModel) TableName() string {
	return "wallets"
}

// PointTransactionModel is the GORM-specific struct for the 'point_transactions' table.
// Append-only ledger; rows are never updated or deleted.
type PointTransactionModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID      string    `gorm:"not null;index"`
	Points      int       `gorm:"not null"`
	Type        string    `gorm:"not null"`
	ReferenceID string
	Description string
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (PointTransactionModel) TableName() string {
	return "point_transactions"
}

// PointRuleModel is the GORM-specific struct for the 'point_rules' table.
type PointRuleModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ActionType  string    `gorm:"not null;uniqueIndex"`
	PointsValue int       `gorm:"not null;default:0"`
	DailyLimit  int       `gorm:"not null;default:-1"`
	Description string
	IsActive    bool `gorm:"not null;default:true"`
}

// TableName explicitly sets the table name for GORM.
func (PointRuleModel) TableName() string {
	return "point_rules"
}

// GiftModel is the GORM-specific struct for the 'gifts' table.
type GiftModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name        string    `gorm:"not null"`
	Description string
	PricePoints int    `gorm:"not null;default:0"`
	EffectType  string `gorm:"not null;default:'none'"`
	IsActive    bool   `gorm:"not null;default:true;index"`
	SortOrder   int    `gorm:"not null;default:0"`
}

// TableName explicitly sets the table name for GORM.
func (GiftModel) TableName() string {
	return "gifts"
}

// GiftRecordModel is the GORM-specific struct for the 'gift_records' table.
type GiftRecordModel struct {
	ID         uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	SenderID   string     `gorm:"not null;index"`
	ReceiverID string     `gorm:"not null;index"`
	GiftID     uuid.UUID  `gorm:"type:uuid;not null"`
	ContentID  *uuid.UUID `gorm:"type:uuid;index"`
	Message    string
	CreatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (GiftRecordModel) TableName() string {
	return "gift_records"
}

// RewardModel is the GORM-specific struct for the 'rewards' table.
type RewardModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name           string    `gorm:"not null"`
	Description    string
	Type           string `gorm:"not null;default:'title'"`
	RequiredPoints int    `gorm:"not null;default:0"`
	RequiredStreak int    `gorm:"not null;default:0"`
	IsActive       bool   `gorm:"not null;default:true;index"`
	SortOrder      int    `gorm:"not null;default:0"`
}

// TableName explicitly sets the table name for GORM.
func (RewardModel) TableName() string {
	return "rewards"
}
