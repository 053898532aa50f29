package impl

import (
	"context"
	"testing"
	"time"

	"bosskill/internal/domain/entity"
	domainerrors "bosskill/internal/domain/errors"
	"bosskill/internal/domain/repository"
	"bosskill/internal/domain/service"
	mockRepo "bosskill/internal/mocks/repository"
	mockSvc "bosskill/internal/mocks/service"
	"bosskill/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mapServiceMocks struct {
	pointRepo    *mockRepo.MockPointRepository
	towerRepo    *mockRepo.MockTowerRepository
	buildingRepo *mockRepo.MockBuildingRepository
	publisher    *mockSvc.MockEventPublisher
}

func newMapService(t *testing.T) (usecase.MapUsecase, *mapServiceMocks) {
	mocks := &mapServiceMocks{
		pointRepo:    mockRepo.NewMockPointRepository(t),
		towerRepo:    mockRepo.NewMockTowerRepository(t),
		buildingRepo: mockRepo.NewMockBuildingRepository(t),
		publisher:    mockSvc.NewMockEventPublisher(t),
	}
	txManager := &fakeTxManager{factory: &fakeRepoFactory{
		pointRepo:    mocks.pointRepo,
		towerRepo:    mocks.towerRepo,
		buildingRepo: mocks.buildingRepo,
	}}

	svc := NewMapService(MapServiceParams{
		TxManager:    txManager,
		PointRepo:    mocks.pointRepo,
		TowerRepo:    mocks.towerRepo,
		BuildingRepo: mocks.buildingRepo,
		Publisher:    mocks.publisher,
		Config:       newTestConfig(),
		Logger:       newDiscardLogger(),
	})

	return svc, mocks
}

func TestMapService_ThrowPoint_BelowThreshold(t *testing.T) {
	svc, mocks := newMapService(t)
	ctx := context.Background()

	mocks.pointRepo.EXPECT().
		CreatePoint(ctx, mock.AnythingOfType("*entity.Point")).
		Return(nil)
	mocks.pointRepo.EXPECT().
		CountColocatedActive(ctx, 25.0330, 121.5654, 0.001).
		Return(int64(5), nil)

	result, err := svc.ThrowPoint(ctx, &usecase.ThrowPointInput{
		UserID:    "user-1",
		Latitude:  25.0330,
		Longitude: 121.5654,
	})
	require.NoError(t, err)
	assert.False(t, result.TowerFormed)
	assert.Equal(t, int64(5), result.ColocatedCount)
	assert.Equal(t, entity.PointCategoryNormal, result.Point.Category)
	assert.True(t, result.Point.IsActive)
}

func TestMapService_ThrowPoint_ThresholdReached(t *testing.T) {
	svc, mocks := newMapService(t)
	ctx := context.Background()

	mocks.pointRepo.EXPECT().
		CreatePoint(ctx, mock.AnythingOfType("*entity.Point")).
		Return(nil)
	mocks.pointRepo.EXPECT().
		CountColocatedActive(ctx, 25.0330, 121.5654, 0.001).
		Return(int64(1000), nil)

	result, err := svc.ThrowPoint(ctx, &usecase.ThrowPointInput{
		UserID:    "user-1",
		Latitude:  25.0330,
		Longitude: 121.5654,
		Category:  "golden",
	})
	require.NoError(t, err)
	assert.True(t, result.TowerFormed)
	assert.Equal(t, int64(1000), result.ColocatedCount)
	assert.Equal(t, entity.PointCategory("golden"), result.Point.Category)
}

func TestMapService_FormTower_ClaimsBuilding(t *testing.T) {
	svc, mocks := newMapService(t)
	ctx := context.Background()

	building := &entity.Building{
		ID:         uuid.New(),
		Name:       "Taipei 101",
		Importance: 100,
	}

	mocks.pointRepo.EXPECT().
		CountColocatedActive(ctx, 25.0330, 121.5654, 0.001).
		Return(int64(1000), nil)
	mocks.buildingRepo.EXPECT().
		FindBestUnoccupied(ctx).
		Return(building, nil)
	mocks.towerRepo.EXPECT().
		CreateTower(ctx, mock.AnythingOfType("*entity.Tower")).
		Return(nil)
	mocks.pointRepo.EXPECT().
		DeactivateColocated(ctx, 25.0330, 121.5654, 0.001, mock.AnythingOfType("uuid.UUID")).
		Return(int64(1000), nil)
	mocks.buildingRepo.EXPECT().
		Occupy(ctx, building.ID, mock.AnythingOfType("uuid.UUID")).
		Return(nil)

	var published *service.TowerFormedEvent
	mocks.publisher.EXPECT().
		PublishTowerFormedEvent(ctx, mock.AnythingOfType("*service.TowerFormedEvent")).
		Run(func(_ context.Context, event *service.TowerFormedEvent) {
			published = event
		}).
		Return(nil)

	result, err := svc.FormTower(ctx, &usecase.FormTowerInput{
		UserID:    "user-1",
		Latitude:  25.0330,
		Longitude: 121.5654,
	})
	require.NoError(t, err)
	require.NotNil(t, result.Tower)
	assert.Equal(t, 1000, result.Tower.PointCount)
	assert.Equal(t, 10.0, result.Tower.Height)
	assert.Equal(t, 1, result.Tower.Level)
	assert.Equal(t, entity.TowerStatusActive, result.Tower.Status)
	require.NotNil(t, result.Tower.BuildingID)
	assert.Equal(t, building.ID, *result.Tower.BuildingID)
	require.NotNil(t, result.BuildingName)
	assert.Equal(t, "Taipei 101", *result.BuildingName)

	require.NotNil(t, published)
	assert.Equal(t, result.Tower.ID.String(), published.TowerID)
	assert.Equal(t, building.ID.String(), published.BuildingID)
	assert.Equal(t, "Taipei 101", published.BuildingName)
	assert.Equal(t, 1000, published.PointCount)
}

func TestMapService_FormTower_WithoutBuilding(t *testing.T) {
	svc, mocks := newMapService(t)
	ctx := context.Background()

	mocks.pointRepo.EXPECT().
		CountColocatedActive(ctx, 25.0330, 121.5654, 0.001).
		Return(int64(2500), nil)
	mocks.buildingRepo.EXPECT().
		FindBestUnoccupied(ctx).
		Return(nil, repository.ErrBuildingNotFound)
	mocks.towerRepo.EXPECT().
		CreateTower(ctx, mock.AnythingOfType("*entity.Tower")).
		Return(nil)
	mocks.pointRepo.EXPECT().
		DeactivateColocated(ctx, 25.0330, 121.5654, 0.001, mock.AnythingOfType("uuid.UUID")).
		Return(int64(2500), nil)
	mocks.publisher.EXPECT().
		PublishTowerFormedEvent(ctx, mock.AnythingOfType("*service.TowerFormedEvent")).
		Return(nil)

	result, err := svc.FormTower(ctx, &usecase.FormTowerInput{
		UserID:    "user-1",
		Latitude:  25.0330,
		Longitude: 121.5654,
	})
	require.NoError(t, err)
	assert.Nil(t, result.Tower.BuildingID)
	assert.Nil(t, result.BuildingName)
	assert.Equal(t, 25.0, result.Tower.Height)
	assert.Equal(t, 2, result.Tower.Level)
}

func TestMapService_FormTower_SmallClusterLevelFloor(t *testing.T) {
	svc, mocks := newMapService(t)
	ctx := context.Background()

	mocks.pointRepo.EXPECT().
		CountColocatedActive(ctx, 25.0330, 121.5654, 0.001).
		Return(int64(50), nil)
	mocks.buildingRepo.EXPECT().
		FindBestUnoccupied(ctx).
		Return(nil, repository.ErrBuildingNotFound)
	mocks.towerRepo.EXPECT().
		CreateTower(ctx, mock.AnythingOfType("*entity.Tower")).
		Return(nil)
	mocks.pointRepo.EXPECT().
		DeactivateColocated(ctx, 25.0330, 121.5654, 0.001, mock.AnythingOfType("uuid.UUID")).
		Return(int64(50), nil)
	mocks.publisher.EXPECT().
		PublishTowerFormedEvent(ctx, mock.AnythingOfType("*service.TowerFormedEvent")).
		Return(nil)

	result, err := svc.FormTower(ctx, &usecase.FormTowerInput{
		UserID:    "user-1",
		Latitude:  25.0330,
		Longitude: 121.5654,
	})
	require.NoError(t, err)
	assert.Equal(t, 0.5, result.Tower.Height)
	assert.Equal(t, 1, result.Tower.Level)
}

func TestMapService_FormTower_EmptyCluster(t *testing.T) {
	svc, mocks := newMapService(t)
	ctx := context.Background()

	mocks.pointRepo.EXPECT().
		CountColocatedActive(ctx, 25.0330, 121.5654, 0.001).
		Return(int64(0), nil)

	result, err := svc.FormTower(ctx, &usecase.FormTowerInput{
		UserID:    "user-1",
		Latitude:  25.0330,
		Longitude: 121.5654,
	})
	assert.ErrorIs(t, err, domainerrors.ErrTowerThresholdNotMet)
	assert.Nil(t, result)
}

func TestMapService_FormTower_InvalidCoordinate(t *testing.T) {
	svc, _ := newMapService(t)

	result, err := svc.FormTower(context.Background(), &usecase.FormTowerInput{
		UserID:    "user-1",
		Latitude:  0.0,
		Longitude: -181.0,
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCoordinate)
	assert.Nil(t, result)
}

func TestMapService_FormTower_PublishFailureDoesNotSurface(t *testing.T) {
	svc, mocks := newMapService(t)
	ctx := context.Background()

	mocks.pointRepo.EXPECT().
		CountColocatedActive(ctx, 25.0330, 121.5654, 0.001).
		Return(int64(1000), nil)
	mocks.buildingRepo.EXPECT().
		FindBestUnoccupied(ctx).
		Return(nil, repository.ErrBuildingNotFound)
	mocks.towerRepo.EXPECT().
		CreateTower(ctx, mock.AnythingOfType("*entity.Tower")).
		Return(nil)
	mocks.pointRepo.EXPECT().
		DeactivateColocated(ctx, 25.0330, 121.5654, 0.001, mock.AnythingOfType("uuid.UUID")).
		Return(int64(1000), nil)
	mocks.publisher.EXPECT().
		PublishTowerFormedEvent(ctx, mock.AnythingOfType("*service.TowerFormedEvent")).
		Return(errors.New("broker down"))

	result, err := svc.FormTower(ctx, &usecase.FormTowerInput{
		UserID:    "user-1",
		Latitude:  25.0330,
		Longitude: 121.5654,
	})
	require.NoError(t, err)
	require.NotNil(t, result.Tower)
}

func TestMapService_ThrowPoint_InvalidCoordinate(t *testing.T) {
	svc, _ := newMapService(t)

	result, err := svc.ThrowPoint(context.Background(), &usecase.ThrowPointInput{
		UserID:    "user-1",
		Latitude:  91.0,
		Longitude: 0.0,
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCoordinate)
	assert.Nil(t, result)
}

func TestMapService_ThrowPoint_InvalidCategory(t *testing.T) {
	svc, _ := newMapService(t)

	result, err := svc.ThrowPoint(context.Background(), &usecase.ThrowPointInput{
		UserID:    "user-1",
		Latitude:  25.0330,
		Longitude: 121.5654,
		Category:  "plutonium",
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCategory)
	assert.Nil(t, result)
}

func TestMapService_GetNearbyPoints_OwnFirstNewestFirst(t *testing.T) {
	svc, mocks := newMapService(t)
	ctx := context.Background()

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	own := &entity.Point{ID: uuid.New(), UserID: "user-1", Latitude: 25.001, Longitude: 121.5, CreatedAt: base}
	otherNew := &entity.Point{ID: uuid.New(), UserID: "user-2", Latitude: 25.0, Longitude: 121.5, CreatedAt: base.Add(2 * time.Hour)}
	otherOld := &entity.Point{ID: uuid.New(), UserID: "user-2", Latitude: 25.005, Longitude: 121.5, CreatedAt: base.Add(time.Hour)}
	// Roughly 11 km north of the origin, outside the 2 km radius.
	far := &entity.Point{ID: uuid.New(), UserID: "user-1", Latitude: 25.1, Longitude: 121.5, CreatedAt: base}

	mocks.pointRepo.EXPECT().
		FindActiveInWindow(ctx, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return([]*entity.Point{far, otherOld, otherNew, own}, nil)

	nearby, err := svc.GetNearbyPoints(ctx, &usecase.NearbyQuery{
		UserID:    "user-1",
		Latitude:  25.0,
		Longitude: 121.5,
		RadiusKm:  2.0,
	})
	require.NoError(t, err)
	require.Len(t, nearby, 3)
	assert.Equal(t, own.ID, nearby[0].ID)
	assert.True(t, nearby[0].IsOwn)
	assert.Equal(t, otherNew.ID, nearby[1].ID)
	assert.Equal(t, otherOld.ID, nearby[2].ID)
	assert.Greater(t, nearby[2].DistanceKm, nearby[1].DistanceKm)
}

func TestMapService_GetNearbyPoints_LimitApplied(t *testing.T) {
	svc, mocks := newMapService(t)
	ctx := context.Background()

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	points := make([]*entity.Point, 0, 5)
	for i := 0; i < 5; i++ {
		points = append(points, &entity.Point{
			ID:        uuid.New(),
			UserID:    "user-2",
			Latitude:  25.0,
			Longitude: 121.5,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		})
	}

	mocks.pointRepo.EXPECT().
		FindActiveInWindow(ctx, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(points, nil)

	nearby, err := svc.GetNearbyPoints(ctx, &usecase.NearbyQuery{
		UserID:    "user-1",
		Latitude:  25.0,
		Longitude: 121.5,
		Limit:     2,
	})
	require.NoError(t, err)
	assert.Len(t, nearby, 2)
}

func TestMapService_GetNearbyPoints_InvalidCoordinate(t *testing.T) {
	svc, _ := newMapService(t)

	nearby, err := svc.GetNearbyPoints(context.Background(), &usecase.NearbyQuery{
		UserID:    "user-1",
		Latitude:  0.0,
		Longitude: 181.0,
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCoordinate)
	assert.Nil(t, nearby)
}

func TestMapService_GetNearbyTowers_NearestFirst(t *testing.T) {
	svc, mocks := newMapService(t)
	ctx := context.Background()

	farTower := &entity.NearbyTower{Tower: entity.Tower{ID: uuid.New(), Latitude: 25.02, Longitude: 121.5}}
	nearTower := &entity.NearbyTower{Tower: entity.Tower{ID: uuid.New(), Latitude: 25.001, Longitude: 121.5}}

	mocks.towerRepo.EXPECT().
		FindActiveInWindow(ctx, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return([]*entity.NearbyTower{farTower, nearTower}, nil)

	towers, err := svc.GetNearbyTowers(ctx, &usecase.NearbyQuery{
		UserID:    "user-1",
		Latitude:  25.0,
		Longitude: 121.5,
	})
	require.NoError(t, err)
	require.Len(t, towers, 2)
	assert.Equal(t, nearTower.ID, towers[0].ID)
	assert.Equal(t, farTower.ID, towers[1].ID)
	assert.Greater(t, towers[1].DistanceKm, towers[0].DistanceKm)
}

func TestMapService_GetMapSummary(t *testing.T) {
	svc, mocks := newMapService(t)
	ctx := context.Background()

	top := []*entity.Tower{{ID: uuid.New(), PointCount: 5000}}

	mocks.pointRepo.EXPECT().CountActive(ctx).Return(int64(1234), nil)
	mocks.towerRepo.EXPECT().CountActive(ctx).Return(int64(7), nil)
	mocks.buildingRepo.EXPECT().CountOccupied(ctx).Return(int64(3), nil)
	mocks.towerRepo.EXPECT().FindTopByPointCount(ctx, 10).Return(top, nil)

	summary, err := svc.GetMapSummary(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1234), summary.TotalActivePoints)
	assert.Equal(t, int64(7), summary.TotalActiveTowers)
	assert.Equal(t, int64(3), summary.TotalOccupiedBuildings)
	assert.Equal(t, top, summary.TopTowers)
}

func TestMapService_GetOccupiedBuildings(t *testing.T) {
	svc, mocks := newMapService(t)
	ctx := context.Background()

	occupied := []*entity.OccupiedBuilding{
		{Building: entity.Building{ID: uuid.New(), Name: "Taipei 101"}, PointCount: 1200},
	}
	mocks.buildingRepo.EXPECT().FindOccupied(ctx).Return(occupied, nil)

	buildings, err := svc.GetOccupiedBuildings(ctx)
	require.NoError(t, err)
	assert.Equal(t, occupied, buildings)
}

func TestSearchWindow_CollapsesNearPoles(t *testing.T) {
	minLat, maxLat, minLon, maxLon := searchWindow(89.95, 10.0, 5.0)
	assert.Less(t, minLat, 89.95)
	assert.Greater(t, maxLat, 89.95)
	assert.Equal(t, -170.0, minLon)
	assert.Equal(t, 190.0, maxLon)
}

func TestSearchWindow_CoversRadiusAtMidLatitudes(t *testing.T) {
	minLat, maxLat, minLon, maxLon := searchWindow(25.0, 121.5, 5.0)
	assert.InDelta(t, 25.0-5.0/kmPerDegreeLat, minLat, 1e-9)
	assert.InDelta(t, 25.0+5.0/kmPerDegreeLat, maxLat, 1e-9)
	// The longitudinal window widens with latitude.
	assert.Greater(t, maxLon-minLon, maxLat-minLat)
}
