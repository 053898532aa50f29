package model

import (
	"time"

	"github.com/google/uuid"
)

// TowerModel is the GORM-specific struct for the 'towers' table.
// PointCount, Height and Level are fixed at formation time.
type TowerModel struct {
	ID         uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Latitude   float64    `gorm:"type:decimal(10,7);not null;index:idx_towers_status_window"`
	Longitude  float64    `gorm:"type:decimal(10,7);not null;index:idx_towers_status_window"`
	PointCount int        `gorm:"not null"`
	Height     float64    `gorm:"type:decimal(10,2);not null"`
	Level      int        `gorm:"not null;default:1"`
	BuildingID *uuid.UUID `gorm:"type:uuid;index"`
	Status     string     `gorm:"not null;default:'active';index:idx_towers_status_window"`
	CreatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (TowerModel) TableName() string {
	return "towers"
}
