// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// CheckInRecord is a single successful daily check-in. (UserID, Date) is
// unique; a second check-in on the same calendar day is rejected.
type CheckInRecord struct {
	ID           uuid.UUID `json:"id"`
	UserID       string    `json:"user_id"`
	Date         string    `json:"date"`          // Calendar date in server-local time, formatted YYYY-MM-DD.
	StreakCount  int       `json:"streak_count"`  // Streak length this check-in reached.
	PointsEarned int       `json:"points_earned"` // Base plus streak bonus awarded for this check-in.
	CreatedAt    time.Time `json:"created_at"`
}

// CheckInStats is the per-user running summary of check-in history.
// CurrentStreak counts consecutive calendar days; LongestStreak and
// TotalCheckIns are monotonically non-decreasing.
type CheckInStats struct {
	UserID        string    `json:"user_id"`
	CurrentStreak int       `json:"current_streak"`
	LongestStreak int       `json:"longest_streak"`
	TotalCheckIns int       `json:"total_check_ins"`
	LastCheckIn   string    `json:"last_check_in_date"` // YYYY-MM-DD of the most recent check-in, empty if never.
	UpdatedAt     time.Time `json:"updated_at"`
}

// CheckInProgress is the progress view returned to clients: the stats plus
// whether today's check-in is already done.
type CheckInProgress struct {
	CheckInStats
	CheckedInToday bool `json:"checked_in_today"`
}

// StreakLeader is one row of the check-in leaderboard.
type StreakLeader struct {
	Rank          int    `json:"rank"`
	UserID        string `json:"user_id"`
	CurrentStreak int    `json:"current_streak"`
	TotalCheckIns int    `json:"total_check_ins"`
}
