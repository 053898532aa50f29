package impl

import (
	"context"
	"time"

	"bosskill/config"
	"bosskill/internal/domain/entity"
	domainerrors "bosskill/internal/domain/errors"
	"bosskill/internal/domain/repository"
	"bosskill/internal/domain/scoring"
	"bosskill/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// checkInService implements the CheckInUsecase interface.
type checkInService struct {
	txManager   repository.TransactionManager
	checkInRepo repository.CheckInRepository
	game        *config.GameConfig
	now         func() time.Time
}

// CheckInServiceParams holds dependencies for CheckInService, injected by Fx.
type CheckInServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	CheckInRepo repository.CheckInRepository
	Config      *config.Config
}

// NewCheckInService is the constructor for checkInService. It receives all dependencies as interfaces.
func NewCheckInService(params CheckInServiceParams) usecase.CheckInUsecase {
	game := params.Config.Game
	if game == nil {
		game = config.DefaultGameConfig()
	}

	return &checkInService{
		txManager:   params.TxManager,
		checkInRepo: params.CheckInRepo,
		game:        game,
		now:         time.Now,
	}
}

// CheckIn records today's check-in for the user. The streak extends when the
// last check-in was yesterday and resets to 1 otherwise; the points award
// scales with the streak and lands in the wallet in the same transaction as
// the record, so a crash can never pay without recording or vice versa.
func (srv *checkInService) CheckIn(ctx context.Context, userID string) (*usecase.CheckInResult, error) {
	now := srv.now()
	today := now.Format(checkInDateLayout)
	yesterday := now.AddDate(0, 0, -1).Format(checkInDateLayout)

	result := &usecase.CheckInResult{}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		checkInRepo := repoFactory.NewCheckInRepository()
		pointsRepo := repoFactory.NewPointsRepository()

		stats, err := checkInRepo.FindStats(ctx, userID)
		if err != nil {
			if !errors.Is(err, repository.ErrCheckInStatsNotFound) {
				return errors.Wrap(err, "failed to find check-in stats")
			}
			stats = &entity.CheckInStats{UserID: userID}
		}

		if stats.LastCheckIn == today {
			return domainerrors.ErrAlreadyCheckedIn
		}

		streak := 1
		if stats.LastCheckIn == yesterday {
			streak = stats.CurrentStreak + 1
		}

		points := srv.game.CheckInBasePoints +
			scoring.StreakBonusCurve(streak, srv.game.CheckInBonusStep, srv.game.CheckInBonusCapDays)

		record := &entity.CheckInRecord{
			ID:           uuid.New(),
			UserID:       userID,
			Date:         today,
			StreakCount:  streak,
			PointsEarned: points,
			CreatedAt:    now,
		}
		if err := checkInRepo.CreateRecord(ctx, record); err != nil {
			// The unique (user, date) constraint backs the stats check, so a
			// racing duplicate surfaces here instead of double-paying.
			if errors.Is(err, repository.ErrDuplicateCheckIn) {
				return domainerrors.ErrAlreadyCheckedIn
			}

			return errors.Wrap(err, "failed to create check-in record")
		}

		stats.CurrentStreak = streak
		if streak > stats.LongestStreak {
			stats.LongestStreak = streak
		}
		stats.TotalCheckIns++
		stats.LastCheckIn = today
		stats.UpdatedAt = now
		if err := checkInRepo.SaveStats(ctx, stats); err != nil {
			return errors.Wrap(err, "failed to save check-in stats")
		}

		if err := creditWallet(ctx, pointsRepo, userID, points, &entity.PointTransaction{
			ID:          uuid.New(),
			UserID:      userID,
			Points:      points,
			Type:        "checkin",
			ReferenceID: record.ID.String(),
			Description: "daily check-in",
			CreatedAt:   now,
		}); err != nil {
			return err
		}

		wallet, err := pointsRepo.FindWallet(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to reload wallet")
		}

		result.Record = record
		result.PointsEarned = points
		result.Wallet = wallet

		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// GetProgress returns the user's streak summary and whether today's check-in
// is already done. A streak older than yesterday reads as broken even before
// the next check-in resets it.
func (srv *checkInService) GetProgress(ctx context.Context, userID string) (*entity.CheckInProgress, error) {
	stats, err := srv.checkInRepo.FindStats(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrCheckInStatsNotFound) {
			return &entity.CheckInProgress{CheckInStats: entity.CheckInStats{UserID: userID}}, nil
		}

		return nil, errors.Wrap(err, "failed to find check-in stats")
	}

	now := srv.now()
	today := now.Format(checkInDateLayout)
	yesterday := now.AddDate(0, 0, -1).Format(checkInDateLayout)

	if stats.LastCheckIn != today && stats.LastCheckIn != yesterday {
		stats.CurrentStreak = 0
	}

	return &entity.CheckInProgress{
		CheckInStats:   *stats,
		CheckedInToday: stats.LastCheckIn == today,
	}, nil
}

// GetLeaderboard returns the top streak holders with ranks assigned.
func (srv *checkInService) GetLeaderboard(ctx context.Context) ([]*entity.StreakLeader, error) {
	leaders, err := srv.checkInRepo.TopStreaks(ctx, srv.game.LeaderboardSize)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load leaderboard")
	}

	for i, leader := range leaders {
		leader.Rank = i + 1
	}

	return leaders, nil
}
