// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"math"
	"sort"
	"time"

	"bosskill/config"
	deliverycontext "bosskill/internal/delivery/context"
	"bosskill/internal/domain/entity"
	domainerrors "bosskill/internal/domain/errors"
	"bosskill/internal/domain/geo"
	"bosskill/internal/domain/repository"
	"bosskill/internal/domain/service"
	"bosskill/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// kmPerDegreeLat approximates one degree of latitude. The degree window it
// derives is a coarse superset of the search circle; the exact haversine
// filter runs on the rows it returns.
const kmPerDegreeLat = 111.32

// mapService implements the MapUsecase interface.
type mapService struct {
	txManager    repository.TransactionManager
	pointRepo    repository.PointRepository
	towerRepo    repository.TowerRepository
	buildingRepo repository.BuildingRepository
	publisher    service.EventPublisher
	game         *config.GameConfig
	logger       *slog.Logger
}

// MapServiceParams holds dependencies for MapService, injected by Fx.
type MapServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	PointRepo    repository.PointRepository
	TowerRepo    repository.TowerRepository
	BuildingRepo repository.BuildingRepository
	Publisher    service.EventPublisher
	Config       *config.Config
	Logger       *slog.Logger
}

// NewMapService is the constructor for mapService. It receives all dependencies as interfaces.
func NewMapService(params MapServiceParams) usecase.MapUsecase {
	game := params.Config.Game
	if game == nil {
		game = config.DefaultGameConfig()
	}

	return &mapService{
		txManager:    params.TxManager,
		pointRepo:    params.PointRepo,
		towerRepo:    params.TowerRepo,
		buildingRepo: params.BuildingRepo,
		publisher:    params.Publisher,
		game:         game,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *mapService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ThrowPoint validates and stores a point, then reports how many active
// points share its spot. Formation stays a separate call; the flag only tells
// the caller the cluster is ready.
func (srv *mapService) ThrowPoint(ctx context.Context, input *usecase.ThrowPointInput) (*usecase.ThrowPointResult, error) {
	if !geo.ValidCoordinate(input.Latitude, input.Longitude) {
		return nil, domainerrors.ErrInvalidCoordinate
	}

	category := entity.PointCategory(input.Category)
	if input.Category == "" {
		category = entity.PointCategoryNormal
	}
	if !category.IsValid() {
		return nil, domainerrors.ErrInvalidCategory
	}

	point := &entity.Point{
		ID:        uuid.New(),
		UserID:    input.UserID,
		Latitude:  input.Latitude,
		Longitude: input.Longitude,
		Category:  category,
		IsActive:  true,
		CreatedAt: time.Now(),
	}

	if err := srv.pointRepo.CreatePoint(ctx, point); err != nil {
		return nil, errors.Wrap(err, "failed to create point")
	}

	count, err := srv.pointRepo.CountColocatedActive(ctx, point.Latitude, point.Longitude, srv.game.ColocationTolerance)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count co-located points")
	}

	return &usecase.ThrowPointResult{
		Point:          point,
		ColocatedCount: count,
		TowerFormed:    count >= int64(srv.game.TowerThreshold),
	}, nil
}

// FormTower absorbs the co-located active cluster at the coordinate into a
// new tower. Count, tower insert, point absorption and building occupation
// happen in one transaction; the formation event is published only after the
// transaction commits.
func (srv *mapService) FormTower(ctx context.Context, input *usecase.FormTowerInput) (*usecase.FormTowerResult, error) {
	if !geo.ValidCoordinate(input.Latitude, input.Longitude) {
		return nil, domainerrors.ErrInvalidCoordinate
	}

	var formedTower *entity.Tower
	var claimedBuilding *entity.Building

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		pointRepo := repoFactory.NewPointRepository()
		towerRepo := repoFactory.NewTowerRepository()
		buildingRepo := repoFactory.NewBuildingRepository()

		count, err := pointRepo.CountColocatedActive(ctx, input.Latitude, input.Longitude, srv.game.ColocationTolerance)
		if err != nil {
			return errors.Wrap(err, "failed to count co-located points")
		}
		if count == 0 {
			return domainerrors.ErrTowerThresholdNotMet
		}

		// Claim the most important free building first so the tower row
		// carries the link from birth.
		building, err := buildingRepo.FindBestUnoccupied(ctx)
		if err != nil && !errors.Is(err, repository.ErrBuildingNotFound) {
			return errors.Wrap(err, "failed to find unoccupied building")
		}

		level := int(count) / srv.game.TowerThreshold
		if level < 1 {
			level = 1
		}

		tower := &entity.Tower{
			ID:         uuid.New(),
			Latitude:   input.Latitude,
			Longitude:  input.Longitude,
			PointCount: int(count),
			Height:     float64(count) / srv.game.TowerHeightDivisor,
			Level:      level,
			Status:     entity.TowerStatusActive,
			CreatedAt:  time.Now(),
		}
		if building != nil {
			tower.BuildingID = &building.ID
		}

		if err := towerRepo.CreateTower(ctx, tower); err != nil {
			return errors.Wrap(err, "failed to create tower")
		}

		absorbed, err := pointRepo.DeactivateColocated(ctx, input.Latitude, input.Longitude, srv.game.ColocationTolerance, tower.ID)
		if err != nil {
			return errors.Wrap(err, "failed to absorb co-located points")
		}
		if absorbed == 0 {
			return errors.New("tower formation absorbed no points")
		}

		if building != nil {
			if err := buildingRepo.Occupy(ctx, building.ID, tower.ID); err != nil {
				return errors.Wrap(err, "failed to occupy building")
			}
		}

		formedTower = tower
		claimedBuilding = building

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.publishTowerFormed(ctx, formedTower, claimedBuilding)

	result := &usecase.FormTowerResult{Tower: formedTower}
	if claimedBuilding != nil {
		name := claimedBuilding.Name
		result.BuildingName = &name
	}

	return result, nil
}

// publishTowerFormed fans the formation out. Publishing happens after commit;
// a publish failure is logged, never surfaced, because the tower already exists.
func (srv *mapService) publishTowerFormed(ctx context.Context, tower *entity.Tower, building *entity.Building) {
	event := &service.TowerFormedEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		TowerID:    tower.ID.String(),
		Latitude:   tower.Latitude,
		Longitude:  tower.Longitude,
		PointCount: tower.PointCount,
		Height:     tower.Height,
	}
	if building != nil {
		event.BuildingID = building.ID.String()
		event.BuildingName = building.Name
	}

	if err := srv.publisher.PublishTowerFormedEvent(ctx, event); err != nil {
		srv.log(ctx).Error("Failed to publish tower formed event",
			slog.String("tower_id", event.TowerID),
			slog.Any("error", err),
		)
	}
}

// GetNearbyPoints returns active points within the radius, the caller's own
// points first, newest first within each group.
func (srv *mapService) GetNearbyPoints(ctx context.Context, query *usecase.NearbyQuery) ([]*entity.NearbyPoint, error) {
	radius, limit, err := srv.normalizeQuery(query)
	if err != nil {
		return nil, err
	}

	minLat, maxLat, minLon, maxLon := searchWindow(query.Latitude, query.Longitude, radius)
	points, err := srv.pointRepo.FindActiveInWindow(ctx, minLat, maxLat, minLon, maxLon)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find points in window")
	}

	origin := orb.Point{query.Longitude, query.Latitude}
	nearby := make([]*entity.NearbyPoint, 0, len(points))
	for _, p := range points {
		distance := geo.DistanceKm(origin, orb.Point{p.Longitude, p.Latitude})
		if distance > radius {
			continue
		}
		nearby = append(nearby, &entity.NearbyPoint{
			Point:      *p,
			DistanceKm: distance,
			IsOwn:      p.UserID == query.UserID,
		})
	}

	sort.SliceStable(nearby, func(i, j int) bool {
		if nearby[i].IsOwn != nearby[j].IsOwn {
			return nearby[i].IsOwn
		}

		return nearby[i].CreatedAt.After(nearby[j].CreatedAt)
	})

	if len(nearby) > limit {
		nearby = nearby[:limit]
	}

	return nearby, nil
}

// GetNearbyTowers returns active towers within the radius, nearest first.
func (srv *mapService) GetNearbyTowers(ctx context.Context, query *usecase.NearbyQuery) ([]*entity.NearbyTower, error) {
	radius, limit, err := srv.normalizeQuery(query)
	if err != nil {
		return nil, err
	}

	minLat, maxLat, minLon, maxLon := searchWindow(query.Latitude, query.Longitude, radius)
	towers, err := srv.towerRepo.FindActiveInWindow(ctx, minLat, maxLat, minLon, maxLon)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find towers in window")
	}

	origin := orb.Point{query.Longitude, query.Latitude}
	nearby := make([]*entity.NearbyTower, 0, len(towers))
	for _, t := range towers {
		distance := geo.DistanceKm(origin, orb.Point{t.Longitude, t.Latitude})
		if distance > radius {
			continue
		}
		t.DistanceKm = distance
		nearby = append(nearby, t)
	}

	sort.SliceStable(nearby, func(i, j int) bool {
		return nearby[i].DistanceKm < nearby[j].DistanceKm
	})

	if len(nearby) > limit {
		nearby = nearby[:limit]
	}

	return nearby, nil
}

// GetMapSummary returns the global counters and the tallest towers.
func (srv *mapService) GetMapSummary(ctx context.Context) (*entity.MapSummary, error) {
	activePoints, err := srv.pointRepo.CountActive(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count active points")
	}

	activeTowers, err := srv.towerRepo.CountActive(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count active towers")
	}

	occupied, err := srv.buildingRepo.CountOccupied(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count occupied buildings")
	}

	topTowers, err := srv.towerRepo.FindTopByPointCount(ctx, srv.game.TopTowersLimit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find top towers")
	}

	return &entity.MapSummary{
		TotalActivePoints:      activePoints,
		TotalActiveTowers:      activeTowers,
		TotalOccupiedBuildings: occupied,
		TopTowers:              topTowers,
		UpdatedAt:              time.Now(),
	}, nil
}

// GetOccupiedBuildings returns landmarks claimed by towers, most important first.
func (srv *mapService) GetOccupiedBuildings(ctx context.Context) ([]*entity.OccupiedBuilding, error) {
	buildings, err := srv.buildingRepo.FindOccupied(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find occupied buildings")
	}

	return buildings, nil
}

// normalizeQuery validates the query origin and fills radius/limit defaults.
func (srv *mapService) normalizeQuery(query *usecase.NearbyQuery) (radius float64, limit int, err error) {
	if !geo.ValidCoordinate(query.Latitude, query.Longitude) {
		return 0, 0, domainerrors.ErrInvalidCoordinate
	}

	radius = query.RadiusKm
	if radius <= 0 {
		radius = srv.game.NearbyRadiusKm
	}

	limit = query.Limit
	if limit <= 0 {
		limit = srv.game.NearbyLimit
	}

	return radius, limit, nil
}

// searchWindow converts a radius search into a coarse degree window. The
// window is a superset of the circle; longitudinal width grows toward the
// poles and collapses to the full range when the cosine vanishes.
func searchWindow(lat, lon, radiusKm float64) (minLat, maxLat, minLon, maxLon float64) {
	latDelta := radiusKm / kmPerDegreeLat

	cosLat := math.Cos(lat * math.Pi / 180)
	lonDelta := 180.0
	if cosLat > 0.01 {
		lonDelta = radiusKm / (kmPerDegreeLat * cosLat)
	}

	return lat - latDelta, lat + latDelta, lon - lonDelta, lon + lonDelta
}
