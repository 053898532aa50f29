// Package scoring contains the pure ranking formulas: the engagement score
// that orders the feed and the streak bonus that prices daily check-ins.
// Both are deterministic functions of their inputs so they can be computed at
// query time and never need to be stored.
package scoring

import (
	"math"
	"time"
)

// Engagement weights. Favorites signal twice as strongly as likes; views are
// nearly free and weigh a tenth of a like.
const (
	LikeWeight     = 1.0
	FavoriteWeight = 2.0
	ViewWeight     = 0.1
)

// DefaultHalfLife is the age at which an item's engagement score has decayed
// to half of its raw value.
const DefaultHalfLife = 72 * time.Hour

// Check-in point constants: every check-in pays BasePoints, plus BonusStep for
// each prior consecutive day, capped at BonusCap extra days.
const (
	BasePoints = 10
	BonusStep  = 5
	BonusCap   = 10
)

// EngagementScore computes the feed ranking score for an item with the given
// counters and age. The raw weighted sum decays exponentially: halving every
// halfLife, so the score is monotonically non-increasing in age. A
// non-positive halfLife disables decay. Negative ages (clock skew) count as
// zero rather than boosting the item.
func EngagementScore(likes, favorites, views int, age, halfLife time.Duration) float64 {
	raw := float64(likes)*LikeWeight + float64(favorites)*FavoriteWeight + float64(views)*ViewWeight
	if halfLife <= 0 {
		return raw
	}
	if age < 0 {
		age = 0
	}

	return raw * math.Exp2(-age.Hours()/halfLife.Hours())
}

// StreakBonus returns the extra points a check-in earns on top of BasePoints
// for the given streak length, using the default curve.
func StreakBonus(streak int) int {
	return StreakBonusCurve(streak, BonusStep, BonusCap)
}

// StreakBonusCurve is the configurable bonus curve: step extra points per
// consecutive day beyond the first, flattening after capDays days. The result
// is monotonically non-decreasing in the streak for any non-negative step.
func StreakBonusCurve(streak, step, capDays int) int {
	if streak <= 1 {
		return 0
	}
	days := streak - 1
	if capDays > 0 && days > capDays {
		days = capDays
	}

	return days * step
}

// CheckInPoints is the total award for a check-in that reaches the given
// streak length.
func CheckInPoints(streak int) int {
	return BasePoints + StreakBonus(streak)
}

// WalletLevel derives a user level from lifetime points: one level per 100
// points, starting at level 1.
func WalletLevel(totalPoints int) int {
	if totalPoints < 0 {
		totalPoints = 0
	}

	return totalPoints/100 + 1
}
