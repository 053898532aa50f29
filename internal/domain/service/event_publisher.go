package service

import (
	"context"
)

// TowerFormedEvent represents a tower formation to be fanned out asynchronously
type TowerFormedEvent struct {
	RequestID    string  `json:"request_id,omitempty"` // For distributed tracing
	TowerID      string  `json:"tower_id"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	PointCount   int     `json:"point_count"`
	Height       float64 `json:"height"`
	BuildingID   string  `json:"building_id,omitempty"` // Set when the tower claimed a building
	BuildingName string  `json:"building_name,omitempty"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishTowerFormedEvent publishes a tower formation event for async processing
	PublishTowerFormedEvent(ctx context.Context, event *TowerFormedEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
