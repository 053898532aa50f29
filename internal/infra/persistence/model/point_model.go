package model

import (
	"time"

	"github.com/google/uuid"
)

// PointModel is the GORM-specific struct for the 'points' table.
// A row stays active until a tower absorbs it; tower_id is set at most once.
type PointModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    string     `gorm:"not null;index"`
	Latitude  float64    `gorm:"type:decimal(10,7);not null;index:idx_points_active_window"`
	Longitude float64    `gorm:"type:decimal(10,7);not null;index:idx_points_active_window"`
	Category  string     `gorm:"not null;default:'normal'"`
	IsActive  bool       `gorm:"not null;default:true;index:idx_points_active_window"`
	TowerID   *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (PointModel) TableName() string {
	return "points"
}
