package impl

import (
	"context"
	"time"

	"bosskill/internal/domain/entity"
	domainerrors "bosskill/internal/domain/errors"
	"bosskill/internal/domain/repository"
	"bosskill/internal/domain/scoring"
	"bosskill/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// pointsService implements the PointsUsecase interface.
type pointsService struct {
	txManager   repository.TransactionManager
	pointsRepo  repository.PointsRepository
	checkInRepo repository.CheckInRepository
	now         func() time.Time
}

// PointsServiceParams holds dependencies for PointsService, injected by Fx.
type PointsServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	PointsRepo  repository.PointsRepository
	CheckInRepo repository.CheckInRepository
}

// NewPointsService is the constructor for pointsService. It receives all dependencies as interfaces.
func NewPointsService(params PointsServiceParams) usecase.PointsUsecase {
	return &pointsService{
		txManager:   params.TxManager,
		pointsRepo:  params.PointsRepo,
		checkInRepo: params.CheckInRepo,
		now:         time.Now,
	}
}

// GetWallet returns the user's wallet. Users who have never earned points get
// a zeroed level-1 wallet instead of an error; nothing is persisted until
// points actually move.
func (srv *pointsService) GetWallet(ctx context.Context, userID string) (*entity.Wallet, error) {
	wallet, err := srv.pointsRepo.FindWallet(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrWalletNotFound) {
			return &entity.Wallet{
				UserID: userID,
				Level:  scoring.WalletLevel(0),
			}, nil
		}

		return nil, errors.Wrap(err, "failed to find wallet")
	}

	return wallet, nil
}

// ListGifts returns the gift catalog.
func (srv *pointsService) ListGifts(ctx context.Context) ([]*entity.Gift, error) {
	gifts, err := srv.pointsRepo.ListGifts(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list gifts")
	}

	return gifts, nil
}

// SendGift deducts the gift's price from the sender's available points and
// records the delivery in one transaction. Senders who cannot afford the gift
// are rejected before anything is written.
func (srv *pointsService) SendGift(ctx context.Context, input *usecase.SendGiftInput) (*usecase.SendGiftResult, error) {
	result := &usecase.SendGiftResult{}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		pointsRepo := repoFactory.NewPointsRepository()

		gift, err := pointsRepo.FindGiftByID(ctx, input.GiftID)
		if err != nil {
			if errors.Is(err, repository.ErrGiftNotFound) {
				return domainerrors.ErrGiftNotFound
			}

			return errors.Wrap(err, "failed to find gift")
		}

		now := srv.now()
		record := &entity.GiftRecord{
			ID:         uuid.New(),
			SenderID:   input.SenderID,
			ReceiverID: input.ReceiverID,
			GiftID:     gift.ID,
			Message:    input.Message,
			CreatedAt:  now,
		}

		if err := creditWallet(ctx, pointsRepo, input.SenderID, -gift.PricePoints, &entity.PointTransaction{
			ID:          uuid.New(),
			UserID:      input.SenderID,
			Points:      -gift.PricePoints,
			Type:        "gift_sent",
			ReferenceID: record.ID.String(),
			Description: "sent gift: " + gift.Name,
			CreatedAt:   now,
		}); err != nil {
			return err
		}

		if err := pointsRepo.CreateGiftRecord(ctx, record); err != nil {
			return errors.Wrap(err, "failed to create gift record")
		}

		wallet, err := pointsRepo.FindWallet(ctx, input.SenderID)
		if err != nil {
			return errors.Wrap(err, "failed to reload wallet")
		}

		result.Record = record
		result.Wallet = wallet

		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// ListRewards returns the reward catalog with each reward's unlocked flag
// computed from the user's lifetime points and longest streak.
func (srv *pointsService) ListRewards(ctx context.Context, userID string) ([]*entity.UserReward, error) {
	rewards, err := srv.pointsRepo.ListRewards(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list rewards")
	}

	totalPoints := 0
	if wallet, err := srv.pointsRepo.FindWallet(ctx, userID); err == nil {
		totalPoints = wallet.TotalPoints
	} else if !errors.Is(err, repository.ErrWalletNotFound) {
		return nil, errors.Wrap(err, "failed to find wallet")
	}

	longestStreak := 0
	if stats, err := srv.checkInRepo.FindStats(ctx, userID); err == nil {
		longestStreak = stats.LongestStreak
	} else if !errors.Is(err, repository.ErrCheckInStatsNotFound) {
		return nil, errors.Wrap(err, "failed to find check-in stats")
	}

	userRewards := make([]*entity.UserReward, 0, len(rewards))
	for _, reward := range rewards {
		userRewards = append(userRewards, &entity.UserReward{
			Reward:   *reward,
			Unlocked: totalPoints >= reward.RequiredPoints && longestStreak >= reward.RequiredStreak,
		})
	}

	return userRewards, nil
}
