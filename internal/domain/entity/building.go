// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Building is a fixed point of interest that towers compete to occupy.
// A building may be linked to at most one active tower at a time; occupation
// goes to the highest-importance unoccupied building when a tower forms.
type Building struct {
	ID         uuid.UUID  `json:"id"`                 // The Global Unique Identifier (GUID) for the building.
	Name       string     `json:"name"`               // Human-readable building name.
	Type       string     `json:"type"`               // Building category, e.g. "office".
	Latitude   float64    `json:"latitude"`           // The geographic latitude of the building.
	Longitude  float64    `json:"longitude"`          // The geographic longitude of the building.
	Importance int        `json:"importance"`         // Importance ranking; higher is claimed first.
	IsOccupied bool       `json:"is_occupied"`        // True while an active tower is linked.
	TowerID    *uuid.UUID `json:"tower_id,omitempty"` // The occupying tower, if any.
	CreatedAt  time.Time  `json:"created_at"`         // Timestamp of when this record was created.
}

// OccupiedBuilding is a Building bundled with the stats of its occupying tower
// for the conquest listing. Bundled to avoid N+1 tower lookups.
type OccupiedBuilding struct {
	Building
	PointCount  int     `json:"point_count"`
	TowerHeight float64 `json:"tower_height"`
	TowerLevel  int     `json:"tower_level"`
}
