package usecase

import (
	"context"

	"bosskill/internal/domain/entity"
)

// ThrowPointInput represents the input for dropping a new point on the map
type ThrowPointInput struct {
	UserID    string  `json:"user_id"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Category  string  `json:"category"`
}

// ThrowPointResult reports what happened when a point landed: the stored
// point, how many active points now share its spot, and whether that count
// reached the tower threshold. Formation itself is a separate call.
type ThrowPointResult struct {
	Point          *entity.Point `json:"point"`
	ColocatedCount int64         `json:"colocated_count"`
	TowerFormed    bool          `json:"tower_formed"`
}

// FormTowerInput represents the input for forming a tower at a coordinate
type FormTowerInput struct {
	UserID    string  `json:"user_id"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// FormTowerResult reports the formed tower and the building it claimed, if any
type FormTowerResult struct {
	Tower        *entity.Tower `json:"tower"`
	BuildingName *string       `json:"building_name"` // nil when no building was free
}

// NearbyQuery represents the input for radius searches around a coordinate
type NearbyQuery struct {
	UserID    string  `json:"user_id"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	RadiusKm  float64 `json:"radius_km"` // 0 means the configured default
	Limit     int     `json:"limit"`     // 0 means the configured default
}

// MapUsecase defines the interface for the shared map use cases
type MapUsecase interface {
	// ThrowPoint validates and stores a point, then reports how many active
	// points share its spot and whether the tower threshold was reached.
	ThrowPoint(ctx context.Context, input *ThrowPointInput) (*ThrowPointResult, error)

	// FormTower turns the co-located active cluster at the coordinate into a
	// tower atomically: the points are absorbed, the most important free
	// building is claimed and a formation event is published after commit.
	FormTower(ctx context.Context, input *FormTowerInput) (*FormTowerResult, error)

	// GetNearbyPoints returns active points within the radius, the caller's
	// own points first, newest first within each group.
	GetNearbyPoints(ctx context.Context, query *NearbyQuery) ([]*entity.NearbyPoint, error)

	// GetNearbyTowers returns active towers within the radius, nearest first.
	GetNearbyTowers(ctx context.Context, query *NearbyQuery) ([]*entity.NearbyTower, error)

	// GetMapSummary returns the global counters and the tallest towers.
	GetMapSummary(ctx context.Context) (*entity.MapSummary, error)

	// GetOccupiedBuildings returns landmarks claimed by towers, most
	// important first.
	GetOccupiedBuildings(ctx context.Context) ([]*entity.OccupiedBuilding, error)
}
