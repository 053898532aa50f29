// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"bosskill/internal/domain/entity"
	"bosskill/internal/domain/repository"
	"bosskill/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// pointRepository implements the repository.PointRepository interface.
type pointRepository struct {
	db *gorm.DB
}

// NewPointRepository is the constructor for pointRepository.
func NewPointRepository(db *gorm.DB) repository.PointRepository {
	return &pointRepository{
		db: db,
	}
}

// CreatePoint persists a new active point.
func (repo *pointRepository) CreatePoint(ctx context.Context, point *entity.Point) error {
	pointM := fromPointDomain(point)

	if err := repo.db.WithContext(ctx).Create(pointM).Error; err != nil {
		return errors.Wrap(err, "failed to create point")
	}

	point.ID = pointM.ID
	point.CreatedAt = pointM.CreatedAt

	return nil
}

// FindPointByID retrieves a point by its unique ID.
func (repo *pointRepository) FindPointByID(ctx context.Context, id uuid.UUID) (*entity.Point, error) {
	var pointM model.PointModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&pointM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPointNotFound
		}

		return nil, errors.Wrap(err, "failed to find point by ID")
	}

	return toPointDomain(&pointM), nil
}

// CountColocatedActive counts active points inside the clustering bounding box.
func (repo *pointRepository) CountColocatedActive(ctx context.Context, lat, lon, tolerance float64) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.PointModel{}).
		Where("is_active = ?", true).
		Where("latitude BETWEEN ? AND ?", lat-tolerance, lat+tolerance).
		Where("longitude BETWEEN ? AND ?", lon-tolerance, lon+tolerance).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count co-located points")
	}

	return count, nil
}

// FindActiveInWindow retrieves all active points inside a coarse degree window.
func (repo *pointRepository) FindActiveInWindow(ctx context.Context, minLat, maxLat, minLon, maxLon float64) ([]*entity.Point, error) {
	var pointModels []*model.PointModel

	if err := repo.db.WithContext(ctx).
		Where("is_active = ?", true).
		Where("latitude BETWEEN ? AND ?", minLat, maxLat).
		Where("longitude BETWEEN ? AND ?", minLon, maxLon).
		Order("created_at DESC").
		Find(&pointModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find active points in window")
	}

	points := make([]*entity.Point, 0, len(pointModels))
	for _, pointM := range pointModels {
		points = append(points, toPointDomain(pointM))
	}

	return points, nil
}

// DeactivateColocated marks every active point inside the clustering bounding
// box inactive and links it to the tower. The is_active guard in the WHERE
// clause is what keeps a point from ever joining two towers.
func (repo *pointRepository) DeactivateColocated(ctx context.Context, lat, lon, tolerance float64, towerID uuid.UUID) (int64, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.PointModel{}).
		Where("is_active = ?", true).
		Where("latitude BETWEEN ? AND ?", lat-tolerance, lat+tolerance).
		Where("longitude BETWEEN ? AND ?", lon-tolerance, lon+tolerance).
		Updates(map[string]interface{}{
			"is_active": false,
			"tower_id":  towerID,
		})

	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to deactivate co-located points")
	}

	return result.RowsAffected, nil
}

// CountActive returns the total number of active points.
func (repo *pointRepository) CountActive(ctx context.Context) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.PointModel{}).
		Where("is_active = ?", true).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count active points")
	}

	return count, nil
}

// --- Mapper Functions ---

// toPointDomain converts a GORM PointModel to a domain Point entity.
func toPointDomain(data *model.PointModel) *entity.Point {
	if data == nil {
		return nil
	}

	return &entity.Point{
		ID:        data.ID,
		UserID:    data.UserID,
		Latitude:  data.Latitude,
		Longitude: data.Longitude,
		Category:  entity.PointCategory(data.Category),
		IsActive:  data.IsActive,
		TowerID:   data.TowerID,
		CreatedAt: data.CreatedAt,
	}
}

// fromPointDomain converts a domain Point entity to a GORM PointModel.
func fromPointDomain(data *entity.Point) *model.PointModel {
	if data == nil {
		return nil
	}

	return &model.PointModel{
		ID:        data.ID,
		UserID:    data.UserID,
		Latitude:  data.Latitude,
		Longitude: data.Longitude,
		Category:  data.Category.String(),
		IsActive:  data.IsActive,
		TowerID:   data.TowerID,
		CreatedAt: data.CreatedAt,
	}
}
