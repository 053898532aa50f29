// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"bosskill/internal/domain/entity"
	"bosskill/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for tower persistence.
var (
	// ErrTowerNotFound is returned when a tower is not found.
	ErrTowerNotFound = errors.New("tower not found")
)

// TowerRepository defines the interface for tower-related database operations.
type TowerRepository interface {
	// CreateTower persists a newly formed tower.
	CreateTower(ctx context.Context, tower *entity.Tower) error

	// FindTowerByID retrieves a tower by its unique ID.
	FindTowerByID(ctx context.Context, id uuid.UUID) (*entity.Tower, error)

	// FindActiveInWindow retrieves all active towers inside a coarse degree
	// window, each bundled with its occupied building's name. Callers apply
	// the exact haversine radius filter.
	FindActiveInWindow(ctx context.Context, minLat, maxLat, minLon, maxLon float64) ([]*entity.NearbyTower, error)

	// FindTopByPointCount retrieves the tallest active towers, ordered by
	// absorbed point count descending.
	FindTopByPointCount(ctx context.Context, limit int) ([]*entity.Tower, error)

	// CountActive returns the total number of active towers.
	CountActive(ctx context.Context) (int64, error)
}
