package entity

import "time"

// MapSummary is the global snapshot of the game map: raw counters plus the
// tallest towers, for the world-view screen.
type MapSummary struct {
	TotalActivePoints      int64     `json:"total_active_points"`
	TotalActiveTowers      int64     `json:"total_active_towers"`
	TotalOccupiedBuildings int64     `json:"total_occupied_buildings"`
	TopTowers              []*Tower  `json:"top_towers"`
	UpdatedAt              time.Time `json:"updated_at"`
}
