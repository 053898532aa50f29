package impl

import (
	"context"
	"io"
	"log/slog"

	"bosskill/config"
	"bosskill/internal/domain/repository"
	mockRepo "bosskill/internal/mocks/repository"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Game: config.DefaultGameConfig(),
	}
}

// fakeRepoFactory hands out the test's mocks as transaction-bound repositories.
type fakeRepoFactory struct {
	pointRepo    *mockRepo.MockPointRepository
	towerRepo    *mockRepo.MockTowerRepository
	buildingRepo *mockRepo.MockBuildingRepository
	quoteRepo    *mockRepo.MockQuoteRepository
	contentRepo  *mockRepo.MockContentRepository
	checkInRepo  *mockRepo.MockCheckInRepository
	pointsRepo   *mockRepo.MockPointsRepository
}

func (f *fakeRepoFactory) NewPointRepository() repository.PointRepository {
	return f.pointRepo
}

func (f *fakeRepoFactory) NewTowerRepository() repository.TowerRepository {
	return f.towerRepo
}

func (f *fakeRepoFactory) NewBuildingRepository() repository.BuildingRepository {
	return f.buildingRepo
}

func (f *fakeRepoFactory) NewQuoteRepository() repository.QuoteRepository {
	return f.quoteRepo
}

func (f *fakeRepoFactory) NewContentRepository() repository.ContentRepository {
	return f.contentRepo
}

func (f *fakeRepoFactory) NewCheckInRepository() repository.CheckInRepository {
	return f.checkInRepo
}

func (f *fakeRepoFactory) NewPointsRepository() repository.PointsRepository {
	return f.pointsRepo
}

// fakeTxManager runs the transactional function directly against the fake
// factory, without any database underneath.
type fakeTxManager struct {
	factory repository.RepositoryFactory
}

func (m *fakeTxManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(m.factory)
}
