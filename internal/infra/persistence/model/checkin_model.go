package model

import (
	"time"

	"github.com/google/uuid"
)

// CheckInRecordModel is the GORM-specific struct for the 'check_in_records' table.
// The unique (user_id, date) index is what makes double check-ins impossible
// even under concurrent requests.
type CheckInRecordModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID       string    `gorm:"not null;uniqueIndex:idx_check_in_user_date"`
	Date         string    `gorm:"type:date;not null;uniqueIndex:idx_check_in_user_date"`
	StreakCount  int       `gorm:"not null;default:1"`
	PointsEarned int       `gorm:"not null;default:0"`
	CreatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (CheckInRecordModel) TableName() string {
	return "check_in_records"
}

// CheckInStatsModel is the GORM-specific struct for the 'check_in_stats' table.
// One row per user, upserted on every check-in.
type CheckInStatsModel struct {
	UserID        string `gorm:"primary_key"`
	CurrentStreak int    `gorm:"not null;default:0;index"`
	LongestStreak int    `gorm:"not null;default:0"`
	TotalCheckIns int    `gorm:"not null;default:0"`
	LastCheckIn   string `gorm:"type:date"`
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (CheckInStatsModel) TableName() string {
	return "check_in_stats"
}
