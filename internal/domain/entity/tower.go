// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// TowerStatus represents the lifecycle state of a tower.
type TowerStatus string

const (
	// TowerStatusActive indicates the tower is standing and visible on the map.
	TowerStatusActive TowerStatus = "active"
	// TowerStatusRetired indicates the tower has been torn down.
	TowerStatusRetired TowerStatus = "retired"
)

// Tower is the aggregate formed when enough co-located active points pile up.
// PointCount never decreases; the points that contributed are marked inactive
// and linked to the tower so they can never be counted into a second tower.
type Tower struct {
	ID         uuid.UUID   `json:"id"`                    // The Global Unique Identifier (GUID) for the tower.
	Latitude   float64     `json:"latitude"`              // Centroid latitude the tower was formed at.
	Longitude  float64     `json:"longitude"`             // Centroid longitude the tower was formed at.
	PointCount int         `json:"point_count"`           // Number of points absorbed at formation time.
	Height     float64     `json:"height"`                // Derived height, PointCount / 100.0, fixed at formation.
	Level      int         `json:"level"`                 // Display level of the tower.
	BuildingID *uuid.UUID  `json:"building_id,omitempty"` // The building this tower occupies, if any.
	Status     TowerStatus `json:"status"`                // active or retired.
	CreatedAt  time.Time   `json:"created_at"`            // Timestamp of formation.
}

// NearbyTower is a Tower bundled with the haversine distance from the query
// origin and the occupied building's name for map rendering.
type NearbyTower struct {
	Tower
	DistanceKm   float64 `json:"distance_km"`
	BuildingName string  `json:"building_name,omitempty"`
}
