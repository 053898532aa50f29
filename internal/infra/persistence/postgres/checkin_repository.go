package postgres

import (
	"context"

	"bosskill/internal/domain/entity"
	"bosskill/internal/domain/repository"
	"bosskill/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// checkInRepository implements the repository.CheckInRepository interface.
type checkInRepository struct {
	db *gorm.DB
}

// NewCheckInRepository is the constructor for checkInRepository.
func NewCheckInRepository(db *gorm.DB) repository.CheckInRepository {
	return &checkInRepository{
		db: db,
	}
}

// CreateRecord persists a daily check-in. The unique (user_id, date) index
// turns a racing duplicate into ErrDuplicateCheckIn.
func (repo *checkInRepository) CreateRecord(ctx context.Context, record *entity.CheckInRecord) error {
	recordM := &model.CheckInRecordModel{
		ID:           record.ID,
		UserID:       record.UserID,
		Date:         record.Date,
		StreakCount:  record.StreakCount,
		PointsEarned: record.PointsEarned,
		CreatedAt:    record.CreatedAt,
	}

	if err := repo.db.WithContext(ctx).Create(recordM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateCheckIn
		}

		return errors.Wrap(err, "failed to create check-in record")
	}

	record.ID = recordM.ID

	return nil
}

// FindStats retrieves the per-user running summary.
func (repo *checkInRepository) FindStats(ctx context.Context, userID string) (*entity.CheckInStats, error) {
	var statsM model.CheckInStatsModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&statsM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCheckInStatsNotFound
		}

		return nil, errors.Wrap(err, "failed to find check-in stats")
	}

	return toCheckInStatsDomain(&statsM), nil
}

// SaveStats upserts the per-user running summary.
func (repo *checkInRepository) SaveStats(ctx context.Context, stats *entity.CheckInStats) error {
	statsM := &model.CheckInStatsModel{
		UserID:        stats.UserID,
		CurrentStreak: stats.CurrentStreak,
		LongestStreak: stats.LongestStreak,
		TotalCheckIns: stats.TotalCheckIns,
		LastCheckIn:   stats.LastCheckIn,
		UpdatedAt:     stats.UpdatedAt,
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			UpdateAll: true,
		}).
		Create(statsM).Error; err != nil {
		return errors.Wrap(err, "failed to save check-in stats")
	}

	return nil
}

// TopStreaks retrieves the leaderboard rows, longest current streak first.
func (repo *checkInRepository) TopStreaks(ctx context.Context, limit int) ([]*entity.StreakLeader, error) {
	var statsModels []*model.CheckInStatsModel

	if err := repo.db.WithContext(ctx).
		Where("current_streak > 0").
		Order("current_streak DESC, total_check_ins DESC").
		Limit(limit).
		Find(&statsModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find top streaks")
	}

	leaders := make([]*entity.StreakLeader, 0, len(statsModels))
	for _, statsM := range statsModels {
		leaders = append(leaders, &entity.StreakLeader{
			UserID:        statsM.UserID,
			CurrentStreak: statsM.CurrentStreak,
			TotalCheckIns: statsM.TotalCheckIns,
		})
	}

	return leaders, nil
}

// --- Mapper Functions ---

// toCheckInStatsDomain converts a GORM CheckInStatsModel to a domain CheckInStats entity.
func toCheckInStatsDomain(data *model.CheckInStatsModel) *entity.CheckInStats {
	if data == nil {
		return nil
	}

	return &entity.CheckInStats{
		UserID:        data.UserID,
		CurrentStreak: data.CurrentStreak,
		LongestStreak: data.LongestStreak,
		TotalCheckIns: data.TotalCheckIns,
		LastCheckIn:   data.LastCheckIn,
		UpdatedAt:     data.UpdatedAt,
	}
}
