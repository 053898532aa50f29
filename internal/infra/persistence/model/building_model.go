package model

import (
	"time"

	"github.com/google/uuid"
)

// BuildingModel is the GORM-specific struct for the 'buildings' table.
// Buildings are seeded landmarks; tower_id links the occupying tower.
type BuildingModel struct {
	ID         uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name       string     `gorm:"not null"`
	Type       string     `gorm:"not null;default:'landmark'"`
	Latitude   float64    `gorm:"type:decimal(10,7);not null"`
	Longitude  float64    `gorm:"type:decimal(10,7);not null"`
	Importance int        `gorm:"not null;default:0;index"`
	IsOccupied bool       `gorm:"not null;default:false;index"`
	TowerID    *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (BuildingModel) TableName() string {
	return "buildings"
}
