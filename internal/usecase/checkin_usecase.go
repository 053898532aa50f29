package usecase

import (
	"context"

	"bosskill/internal/domain/entity"
)

// CheckInResult reports the outcome of a successful daily check-in
type CheckInResult struct {
	Record       *entity.CheckInRecord `json:"record"`
	PointsEarned int                   `json:"points_earned"`
	Wallet       *entity.Wallet        `json:"wallet"`
}

// CheckInUsecase defines the interface for the daily check-in use cases
type CheckInUsecase interface {
	// CheckIn records today's check-in for the user, extends or resets the
	// streak, and credits the streak-scaled points to the wallet atomically.
	CheckIn(ctx context.Context, userID string) (*CheckInResult, error)

	// GetProgress returns the user's streak summary and whether they have
	// already checked in today. Users with no history get zeroed stats.
	GetProgress(ctx context.Context, userID string) (*entity.CheckInProgress, error)

	// GetLeaderboard returns the top streak holders.
	GetLeaderboard(ctx context.Context) ([]*entity.StreakLeader, error)
}
