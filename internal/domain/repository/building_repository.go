// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"bosskill/internal/domain/entity"
	"bosskill/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for building persistence.
var (
	// ErrBuildingNotFound is returned when a building is not found, including
	// when no unoccupied building remains to claim.
	ErrBuildingNotFound = errors.New("building not found")
)

// BuildingRepository defines the interface for building-related database operations.
type BuildingRepository interface {
	// CreateBuilding persists a new point of interest.
	CreateBuilding(ctx context.Context, building *entity.Building) error

	// FindBuildingByID retrieves a building by its unique ID.
	FindBuildingByID(ctx context.Context, id uuid.UUID) (*entity.Building, error)

	// FindBestUnoccupied retrieves the unoccupied building with the highest
	// importance, tie-broken by lowest id so claiming is deterministic.
	// Returns ErrBuildingNotFound when every building is occupied.
	FindBestUnoccupied(ctx context.Context) (*entity.Building, error)

	// Occupy marks a building occupied and links the occupying tower.
	Occupy(ctx context.Context, buildingID, towerID uuid.UUID) error

	// FindOccupied retrieves occupied buildings with their occupying tower's
	// stats, ordered by importance descending.
	FindOccupied(ctx context.Context) ([]*entity.OccupiedBuilding, error)

	// CountOccupied returns the number of currently occupied buildings.
	CountOccupied(ctx context.Context) (int64, error)
}
