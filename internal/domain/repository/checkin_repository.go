// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"bosskill/internal/domain/entity"
	"bosskill/internal/errors"
)

// Domain-specific errors for check-in persistence.
var (
	// ErrCheckInStatsNotFound is returned when a user has never checked in.
	ErrCheckInStatsNotFound = errors.New("check-in stats not found")
	// ErrDuplicateCheckIn is returned when a (user, date) check-in already exists.
	ErrDuplicateCheckIn = errors.New("already checked in today")
)

// CheckInRepository defines the interface for check-in database operations.
type CheckInRepository interface {
	// CreateRecord persists a daily check-in. Returns ErrDuplicateCheckIn
	// when the user already has a record for that date.
	CreateRecord(ctx context.Context, record *entity.CheckInRecord) error

	// FindStats retrieves the per-user running summary. Returns
	// ErrCheckInStatsNotFound for users with no history.
	FindStats(ctx context.Context, userID string) (*entity.CheckInStats, error)

	// SaveStats upserts the per-user running summary.
	SaveStats(ctx context.Context, stats *entity.CheckInStats) error

	// TopStreaks retrieves the leaderboard: users ordered by current streak
	// descending, then total check-ins descending.
	TopStreaks(ctx context.Context, limit int) ([]*entity.StreakLeader, error)
}
