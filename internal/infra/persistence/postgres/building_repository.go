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

// buildingRepository implements the repository.BuildingRepository interface.
type buildingRepository struct {
	db *gorm.DB
}

// NewBuildingRepository is the constructor for buildingRepository.
func NewBuildingRepository(db *gorm.DB) repository.BuildingRepository {
	return &buildingRepository{
		db: db,
	}
}

// CreateBuilding persists a new point of interest.
func (repo *buildingRepository) CreateBuilding(ctx context.Context, building *entity.Building) error {
	buildingM := fromBuildingDomain(building)

	if err := repo.db.WithContext(ctx).Create(buildingM).Error; err != nil {
		return errors.Wrap(err, "failed to create building")
	}

	building.ID = buildingM.ID
	building.CreatedAt = buildingM.CreatedAt

	return nil
}

// FindBuildingByID retrieves a building by its unique ID.
func (repo *buildingRepository) FindBuildingByID(ctx context.Context, id uuid.UUID) (*entity.Building, error) {
	var buildingM model.BuildingModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&buildingM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBuildingNotFound
		}

		return nil, errors.Wrap(err, "failed to find building by ID")
	}

	return toBuildingDomain(&buildingM), nil
}

// FindBestUnoccupied retrieves the unoccupied building with the highest
// importance. The id tie-break keeps concurrent claims deterministic.
func (repo *buildingRepository) FindBestUnoccupied(ctx context.Context) (*entity.Building, error) {
	var buildingM model.BuildingModel

	if err := repo.db.WithContext(ctx).
		Where("is_occupied = ?", false).
		Order("importance DESC, id ASC").
		First(&buildingM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBuildingNotFound
		}

		return nil, errors.Wrap(err, "failed to find unoccupied building")
	}

	return toBuildingDomain(&buildingM), nil
}

// Occupy marks a building occupied and links the occupying tower. The
// is_occupied guard makes a racing claim lose with ErrBuildingNotFound
// instead of silently overwriting the first tower.
func (repo *buildingRepository) Occupy(ctx context.Context, buildingID, towerID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.BuildingModel{}).
		Where("id = ? AND is_occupied = ?", buildingID, false).
		Updates(map[string]interface{}{
			"is_occupied": true,
			"tower_id":    towerID,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to occupy building")
	}

	if result.RowsAffected == 0 {
		return repository.ErrBuildingNotFound
	}

	return nil
}

// occupiedBuildingRow is the scan target for the conquest listing, the
// building columns plus the occupying tower's stats.
type occupiedBuildingRow struct {
	model.BuildingModel
	PointCount  int
	TowerHeight float64
	TowerLevel  int
}

// FindOccupied retrieves occupied buildings bundled with their tower's stats.
func (repo *buildingRepository) FindOccupied(ctx context.Context) ([]*entity.OccupiedBuilding, error) {
	var rows []*occupiedBuildingRow

	query := `
		SELECT b.*, t.point_count, t.height AS tower_height, t.level AS tower_level
		FROM buildings b
		JOIN towers t ON t.id = b.tower_id
		WHERE b.is_occupied = true
		ORDER BY b.importance DESC
	`

	if err := repo.db.WithContext(ctx).
		Raw(query).
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find occupied buildings")
	}

	buildings := make([]*entity.OccupiedBuilding, 0, len(rows))
	for _, row := range rows {
		buildings = append(buildings, &entity.OccupiedBuilding{
			Building:    *toBuildingDomain(&row.BuildingModel),
			PointCount:  row.PointCount,
			TowerHeight: row.TowerHeight,
			TowerLevel:  row.TowerLevel,
		})
	}

	return buildings, nil
}

// CountOccupied returns the number of currently occupied buildings.
func (repo *buildingRepository) CountOccupied(ctx context.Context) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.BuildingModel{}).
		Where("is_occupied = ?", true).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count occupied buildings")
	}

	return count, nil
}

// --- Mapper Functions ---

// toBuildingDomain converts a GORM BuildingModel to a domain Building entity.
func toBuildingDomain(data *model.BuildingModel) *entity.Building {
	if data == nil {
		return nil
	}

	return &entity.Building{
		ID:         data.ID,
		Name:       data.Name,
		Type:       data.Type,
		Latitude:   data.Latitude,
		Longitude:  data.Longitude,
		Importance: data.Importance,
		IsOccupied: data.IsOccupied,
		TowerID:    data.TowerID,
		CreatedAt:  data.CreatedAt,
	}
}

// fromBuildingDomain converts a domain Building entity to a GORM BuildingModel.
func fromBuildingDomain(data *entity.Building) *model.BuildingModel {
	if data == nil {
		return nil
	}

	return &model.BuildingModel{
		ID:         data.ID,
		Name:       data.Name,
		Type:       data.Type,
		Latitude:   data.Latitude,
		Longitude:  data.Longitude,
		Importance: data.Importance,
		IsOccupied: data.IsOccupied,
		TowerID:    data.TowerID,
		CreatedAt:  data.CreatedAt,
	}
}
