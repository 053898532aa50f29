// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Point is a single user-submitted geotagged drop, the raw event of the game.
// Points stay active until enough of them pile up in one spot and a Tower
// absorbs them.
type Point struct {
	ID        uuid.UUID     `json:"id"`                 // The Global Unique Identifier (GUID) for the point.
	UserID    string        `json:"user_id"`            // Opaque identifier of the user who dropped the point.
	Latitude  float64       `json:"latitude"`           // The geographic latitude of the drop.
	Longitude float64       `json:"longitude"`          // The geographic longitude of the drop.
	Category  PointCategory `json:"category"`           // The drop variant (normal, golden, rainbow).
	IsActive  bool          `json:"is_active"`          // False once the point has been absorbed into a tower.
	TowerID   *uuid.UUID    `json:"tower_id,omitempty"` // The tower that absorbed this point, set at most once.
	CreatedAt time.Time     `json:"created_at"`         // Timestamp of when the point was dropped.
}

// NearbyPoint is a Point bundled with the query-specific fields a map client
// needs: the haversine distance from the query origin and whether the point
// belongs to the querying user. Bundled to avoid a second lookup per row.
type NearbyPoint struct {
	Point
	DistanceKm float64 `json:"distance_km"`
	IsOwn      bool    `json:"is_own"`
}
