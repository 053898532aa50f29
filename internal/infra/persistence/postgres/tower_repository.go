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

// towerRepository implements the repository.TowerRepository interface.
type towerRepository struct {
	db *gorm.DB
}

// NewTowerRepository is the constructor for towerRepository.
func NewTowerRepository(db *gorm.DB) repository.TowerRepository {
	return &towerRepository{
		db: db,
	}
}

// CreateTower persists a newly formed tower.
func (repo *towerRepository) CreateTower(ctx context.Context, tower *entity.Tower) error {
	towerM := fromTowerDomain(tower)

	if err := repo.db.WithContext(ctx).Create(towerM).Error; err != nil {
		return errors.Wrap(err, "failed to create tower")
	}

	tower.ID = towerM.ID
	tower.CreatedAt = towerM.CreatedAt

	return nil
}

// FindTowerByID retrieves a tower by its unique ID.
func (repo *towerRepository) FindTowerByID(ctx context.Context, id uuid.UUID) (*entity.Tower, error) {
	var towerM model.TowerModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&towerM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTowerNotFound
		}

		return nil, errors.Wrap(err, "failed to find tower by ID")
	}

	return toTowerDomain(&towerM), nil
}

// towerWithBuildingRow is the scan target for the window query, the tower
// columns plus the occupied building's name.
type towerWithBuildingRow struct {
	model.TowerModel
	BuildingName string
}

// FindActiveInWindow retrieves active towers inside a coarse degree window,
// each with the name of the building it occupies, if any.
func (repo *towerRepository) FindActiveInWindow(ctx context.Context, minLat, maxLat, minLon, maxLon float64) ([]*entity.NearbyTower, error) {
	var rows []*towerWithBuildingRow

	query := `
		SELECT t.*, COALESCE(b.name, '') AS building_name
		FROM towers t
		LEFT JOIN buildings b ON b.id = t.building_id
		WHERE t.status = 'active'
		  AND t.latitude BETWEEN ? AND ?
		  AND t.longitude BETWEEN ? AND ?
	`

	if err := repo.db.WithContext(ctx).
		Raw(query, minLat, maxLat, minLon, maxLon).
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find active towers in window")
	}

	towers := make([]*entity.NearbyTower, 0, len(rows))
	for _, row := range rows {
		towers = append(towers, &entity.NearbyTower{
			Tower:        *toTowerDomain(&row.TowerModel),
			BuildingName: row.BuildingName,
		})
	}

	return towers, nil
}

// FindTopByPointCount retrieves the tallest active towers.
func (repo *towerRepository) FindTopByPointCount(ctx context.Context, limit int) ([]*entity.Tower, error) {
	var towerModels []*model.TowerModel

	if err := repo.db.WithContext(ctx).
		Where("status = ?", string(entity.TowerStatusActive)).
		Order("point_count DESC").
		Limit(limit).
		Find(&towerModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find top towers")
	}

	towers := make([]*entity.Tower, 0, len(towerModels))
	for _, towerM := range towerModels {
		towers = append(towers, toTowerDomain(towerM))
	}

	return towers, nil
}

// CountActive returns the total number of active towers.
func (repo *towerRepository) CountActive(ctx context.Context) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.TowerModel{}).
		Where("status = ?", string(entity.TowerStatusActive)).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count active towers")
	}

	return count, nil
}

// --- Mapper Functions ---

// toTowerDomain converts a GORM TowerModel to a domain Tower entity.
func toTowerDomain(data *model.TowerModel) *entity.Tower {
	if data == nil {
		return nil
	}

	return &entity.Tower{
		ID:         data.ID,
		Latitude:   data.Latitude,
		Longitude:  data.Longitude,
		PointCount: data.PointCount,
		Height:     data.Height,
		Level:      data.Level,
		BuildingID: data.BuildingID,
		Status:     entity.TowerStatus(data.Status),
		CreatedAt:  data.CreatedAt,
	}
}

// fromTowerDomain converts a domain Tower entity to a GORM TowerModel.
func fromTowerDomain(data *entity.Tower) *model.TowerModel {
	if data == nil {
		return nil
	}

	return &model.TowerModel{
		ID:         data.ID,
		Latitude:   data.Latitude,
		Longitude:  data.Longitude,
		PointCount: data.PointCount,
		Height:     data.Height,
		Level:      data.Level,
		BuildingID: data.BuildingID,
		Status:     string(data.Status),
		CreatedAt:  data.CreatedAt,
	}
}
