package impl

import (
	"context"
	"sort"
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

const checkInDateLayout = "2006-01-02"

// feedService implements the FeedUsecase interface.
type feedService struct {
	txManager   repository.TransactionManager
	contentRepo repository.ContentRepository
	game        *config.GameConfig
	now         func() time.Time
}

// FeedServiceParams holds dependencies for FeedService, injected by Fx.
type FeedServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	ContentRepo repository.ContentRepository
	Config      *config.Config
}

// NewFeedService is the constructor for feedService. It receives all dependencies as interfaces.
func NewFeedService(params FeedServiceParams) usecase.FeedUsecase {
	game := params.Config.Game
	if game == nil {
		game = config.DefaultGameConfig()
	}

	return &feedService{
		txManager:   params.TxManager,
		contentRepo: params.ContentRepo,
		game:        game,
		now:         time.Now,
	}
}

// GetFeed returns a page of active content ranked by time-decayed engagement
// score. Scores are computed per request so the ranking ages on its own
// without any background job.
func (srv *feedService) GetFeed(ctx context.Context, query *usecase.FeedQuery) (*usecase.FeedPage, error) {
	items, err := srv.contentRepo.FindActive(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find active content")
	}

	halfLife := time.Duration(srv.game.FeedDecayHalfLifeHours * float64(time.Hour))
	now := srv.now()

	ranked := make([]*entity.RankedContent, 0, len(items))
	for _, item := range items {
		if query.Category != "" && item.Category != query.Category {
			continue
		}
		ranked = append(ranked, &entity.RankedContent{
			ContentItem: *item,
			Score: scoring.EngagementScore(
				item.LikeCount, item.FavoriteCount, item.ViewCount,
				now.Sub(item.CreatedAt), halfLife,
			),
		})
	}

	// Ties keep newest first so fresh zero-engagement posts surface in order.
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}

		return ranked[i].CreatedAt.After(ranked[j].CreatedAt)
	})

	page := query.Page
	if page < 1 {
		page = 1
	}
	pageSize := query.PageSize
	if pageSize <= 0 {
		pageSize = srv.game.FeedPageSize
	}

	total := len(ranked)
	start := (page - 1) * pageSize
	if start > total {
		start = total
	}
	end := start + pageSize
	if end > total {
		end = total
	}

	return &usecase.FeedPage{
		Items:      ranked[start:end],
		Page:       page,
		PageSize:   pageSize,
		TotalItems: total,
	}, nil
}

// RecordAction stores an engagement event, bumps the matching counter and
// credits rule points subject to the rule's daily limit, all in one
// transaction.
func (srv *feedService) RecordAction(ctx context.Context, input *usecase.RecordActionInput) (*usecase.RecordActionResult, error) {
	actionType := entity.ActionType(input.Action)
	if !actionType.IsValid() {
		return nil, domainerrors.ErrInvalidAction
	}

	action := &entity.UserAction{
		ID:        uuid.New(),
		UserID:    input.UserID,
		ContentID: input.ContentID,
		Type:      actionType,
		CreatedAt: srv.now(),
	}
	result := &usecase.RecordActionResult{Action: action}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		contentRepo := repoFactory.NewContentRepository()
		pointsRepo := repoFactory.NewPointsRepository()

		if _, err := contentRepo.FindContentByID(ctx, input.ContentID); err != nil {
			if errors.Is(err, repository.ErrContentNotFound) {
				return domainerrors.ErrContentNotFound
			}

			return errors.Wrap(err, "failed to find content")
		}

		if err := contentRepo.CreateAction(ctx, action); err != nil {
			return errors.Wrap(err, "failed to create action")
		}

		if err := contentRepo.IncrementCounter(ctx, input.ContentID, actionType); err != nil {
			return errors.Wrap(err, "failed to increment counter")
		}

		earned, limited, err := srv.creditActionPoints(ctx, contentRepo, pointsRepo, action)
		if err != nil {
			return err
		}
		result.PointsEarned = earned
		result.LimitReached = limited

		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// creditActionPoints looks up the point rule for the action and credits the
// wallet unless the rule's daily cap is already exhausted. Actions without an
// active rule earn nothing.
func (srv *feedService) creditActionPoints(
	ctx context.Context,
	contentRepo repository.ContentRepository,
	pointsRepo repository.PointsRepository,
	action *entity.UserAction,
) (earned int, limited bool, err error) {
	rule, err := pointsRepo.FindRuleByAction(ctx, action.Type)
	if err != nil {
		if errors.Is(err, repository.ErrPointRuleNotFound) {
			return 0, false, nil
		}

		return 0, false, errors.Wrap(err, "failed to find point rule")
	}

	if rule.DailyLimit >= 0 {
		today := action.CreatedAt.Format(checkInDateLayout)
		done, err := contentRepo.CountActionsOnDate(ctx, action.UserID, action.Type, today)
		if err != nil {
			return 0, false, errors.Wrap(err, "failed to count today's actions")
		}
		// The action being recorded is already included in the count.
		if done > int64(rule.DailyLimit) {
			return 0, true, nil
		}
	}

	if err := creditWallet(ctx, pointsRepo, action.UserID, rule.PointsValue, &entity.PointTransaction{
		ID:          uuid.New(),
		UserID:      action.UserID,
		Points:      rule.PointsValue,
		Type:        "action",
		ReferenceID: action.ID.String(),
		Description: "engagement: " + action.Type.String(),
		CreatedAt:   action.CreatedAt,
	}); err != nil {
		return 0, false, err
	}

	return rule.PointsValue, false, nil
}

// creditWallet applies a signed point delta to the user's wallet, creating the
// wallet on first touch, and appends the ledger entry. Callers run it inside a
// transaction.
func creditWallet(ctx context.Context, pointsRepo repository.PointsRepository, userID string, delta int, ledger *entity.PointTransaction) error {
	wallet, err := pointsRepo.FindWallet(ctx, userID)
	if err != nil {
		if !errors.Is(err, repository.ErrWalletNotFound) {
			return errors.Wrap(err, "failed to find wallet")
		}
		wallet = &entity.Wallet{UserID: userID}
	}

	if delta > 0 {
		wallet.TotalPoints += delta
	}
	wallet.AvailablePoints += delta
	if wallet.AvailablePoints < 0 {
		return domainerrors.ErrInsufficientPoints
	}
	wallet.Level = scoring.WalletLevel(wallet.TotalPoints)
	wallet.UpdatedAt = ledger.CreatedAt

	if err := pointsRepo.SaveWallet(ctx, wallet); err != nil {
		return errors.Wrap(err, "failed to save wallet")
	}

	if err := pointsRepo.CreateTransaction(ctx, ledger); err != nil {
		return errors.Wrap(err, "failed to create point transaction")
	}

	return nil
}
