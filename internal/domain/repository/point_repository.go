// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"bosskill/internal/domain/entity"
	"bosskill/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for point persistence.
var (
	// ErrPointNotFound is returned when a point is not found.
	ErrPointNotFound = errors.New("point not found")
)

// PointRepository defines the interface for point-related database operations.
type PointRepository interface {
	// CreatePoint persists a new active point.
	CreatePoint(ctx context.Context, point *entity.Point) error

	// FindPointByID retrieves a point by its unique ID.
	FindPointByID(ctx context.Context, id uuid.UUID) (*entity.Point, error)

	// CountColocatedActive returns the number of active points inside the
	// clustering bounding box around (lat, lon).
	CountColocatedActive(ctx context.Context, lat, lon, tolerance float64) (int64, error)

	// FindActiveInWindow retrieves all active points inside a coarse
	// degree window. Callers apply the exact haversine radius filter; the
	// window only bounds the scan.
	FindActiveInWindow(ctx context.Context, minLat, maxLat, minLon, maxLon float64) ([]*entity.Point, error)

	// DeactivateColocated marks every active point inside the clustering
	// bounding box inactive and links it to the given tower. Only active
	// rows are touched, so a point can never be linked to a second tower.
	// Returns the number of points absorbed.
	DeactivateColocated(ctx context.Context, lat, lon, tolerance float64, towerID uuid.UUID) (int64, error)

	// CountActive returns the total number of active points.
	CountActive(ctx context.Context) (int64, error)
}
