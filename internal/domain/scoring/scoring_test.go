package scoring

import (
	"math"
	"testing"
	"time"
)

func TestEngagementScoreWeights(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		likes    int
		favs     int
		views    int
		expected float64
	}{
		{name: "zero engagement", likes: 0, favs: 0, views: 0, expected: 0},
		{name: "likes only", likes: 10, favs: 0, views: 0, expected: 10},
		{name: "favorites weigh double", likes: 0, favs: 5, views: 0, expected: 10},
		{name: "views weigh a tenth", likes: 0, favs: 0, views: 100, expected: 10},
		{name: "mixed", likes: 23, favs: 4, views: 150, expected: 23 + 8 + 15},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := EngagementScore(tt.likes, tt.favs, tt.views, 0, DefaultHalfLife)
			if math.Abs(got-tt.expected) > 1e-9 {
				t.Fatalf("EngagementScore = %f, want %f", got, tt.expected)
			}
		})
	}
}

func TestEngagementScoreDecay(t *testing.T) {
	t.Parallel()

	// One half-life halves the score exactly.
	fresh := EngagementScore(10, 0, 0, 0, DefaultHalfLife)
	aged := EngagementScore(10, 0, 0, DefaultHalfLife, DefaultHalfLife)
	if math.Abs(aged-fresh/2) > 1e-9 {
		t.Fatalf("score after one half-life = %f, want %f", aged, fresh/2)
	}

	// Monotonically non-increasing in age.
	prev := math.Inf(1)
	for _, age := range []time.Duration{0, time.Hour, 24 * time.Hour, 72 * time.Hour, 500 * time.Hour} {
		score := EngagementScore(100, 20, 1000, age, DefaultHalfLife)
		if score > prev {
			t.Fatalf("score increased with age at %s: %f > %f", age, score, prev)
		}
		prev = score
	}

	// Negative age (clock skew) never boosts the item.
	if got := EngagementScore(10, 0, 0, -time.Hour, DefaultHalfLife); got != fresh {
		t.Fatalf("negative age score = %f, want %f", got, fresh)
	}

	// Disabled decay returns the raw weighted sum at any age.
	if got := EngagementScore(10, 0, 0, 1000*time.Hour, 0); got != 10 {
		t.Fatalf("undecayed score = %f, want 10", got)
	}
}

func TestStreakBonus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		streak   int
		expected int
	}{
		{streak: 0, expected: 0},
		{streak: 1, expected: 0},
		{streak: 2, expected: 5},
		{streak: 6, expected: 25},
		{streak: 7, expected: 30},
		{streak: 11, expected: 50},
		{streak: 100, expected: 50},
	}

	for _, tt := range tests {
		if got := StreakBonus(tt.streak); got != tt.expected {
			t.Fatalf("StreakBonus(%d) = %d, want %d", tt.streak, got, tt.expected)
		}
	}

	// Monotonically non-decreasing.
	prev := 0
	for streak := 1; streak <= 30; streak++ {
		bonus := StreakBonus(streak)
		if bonus < prev {
			t.Fatalf("bonus decreased at streak %d: %d < %d", streak, bonus, prev)
		}
		prev = bonus
	}
}

func TestCheckInPoints(t *testing.T) {
	t.Parallel()

	if got := CheckInPoints(1); got != 10 {
		t.Fatalf("CheckInPoints(1) = %d, want 10", got)
	}
	if got := CheckInPoints(6); got != 35 {
		t.Fatalf("CheckInPoints(6) = %d, want 35", got)
	}
}

func TestWalletLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		points   int
		expected int
	}{
		{points: 0, expected: 1},
		{points: 99, expected: 1},
		{points: 100, expected: 2},
		{points: 350, expected: 4},
		{points: -5, expected: 1},
	}

	for _, tt := range tests {
		if got := WalletLevel(tt.points); got != tt.expected {
			t.Fatalf("WalletLevel(%d) = %d, want %d", tt.points, got, tt.expected)
		}
	}
}
