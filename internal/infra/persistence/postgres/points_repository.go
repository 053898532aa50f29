package postgres

import (
	"context"

	"bosskill/internal/domain/entity"
	"bosskill/internal/domain/repository"
	"bosskill/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// pointsRepository implements the repository.PointsRepository interface.
type pointsRepository struct {
	db *gorm.DB
}

// NewPointsRepository is the constructor for pointsRepository.
func NewPointsRepository(db *gorm.DB) repository.PointsRepository {
	return &pointsRepository{
		db: db,
	}
}

// FindWallet retrieves a user's wallet.
func (repo *pointsRepository) FindWallet(ctx context.Context, userID string) (*entity.Wallet, error) {
	var walletM model.WalletModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&walletM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrWalletNotFound
		}

		return nil, errors.Wrap(err, "failed to find wallet")
	}

	return toWalletDomain(&walletM), nil
}

// SaveWallet upserts a user's wallet.
func (repo *pointsRepository) SaveWallet(ctx context.Context, wallet *entity.Wallet) error {
	walletM := &model.WalletModel{
		UserID:          wallet.UserID,
		TotalPoints:     wallet.TotalPoints,
		AvailablePoints: wallet.AvailablePoints,
		Level:           wallet.Level,
		UpdatedAt:       wallet.UpdatedAt,
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			UpdateAll: true,
		}).
		Create(walletM).Error; err != nil {
		return errors.Wrap(err, "failed to save wallet")
	}

	return nil
}

// CreateTransaction appends an entry to the point ledger.
func (repo *pointsRepository) CreateTransaction(ctx context.Context, tx *entity.PointTransaction) error {
	txM := &model.PointTransactionModel{
		ID:          tx.ID,
		UserID:      tx.UserID,
		Points:      tx.Points,
		Type:        tx.Type,
		ReferenceID: tx.ReferenceID,
		Description: tx.Description,
		CreatedAt:   tx.CreatedAt,
	}

	if err := repo.db.WithContext(ctx).Create(txM).Error; err != nil {
		return errors.Wrap(err, "failed to create point transaction")
	}

	tx.ID = txM.ID

	return nil
}

// FindRuleByAction retrieves the active point rule for an action type.
func (repo *pointsRepository) FindRuleByAction(ctx context.Context, action entity.ActionType) (*entity.PointRule, error) {
	var ruleM model.PointRuleModel

	if err := repo.db.WithContext(ctx).
		Where("action_type = ? AND is_active = ?", action.String(), true).
		First(&ruleM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPointRuleNotFound
		}

		return nil, errors.Wrap(err, "failed to find point rule")
	}

	return toPointRuleDomain(&ruleM), nil
}

// CreateRule persists a point rule.
func (repo *pointsRepository) CreateRule(ctx context.Context, rule *entity.PointRule) error {
	ruleM := &model.PointRuleModel{
		ID:          rule.ID,
		ActionType:  rule.ActionType.String(),
		PointsValue: rule.PointsValue,
		DailyLimit:  rule.DailyLimit,
		Description: rule.Description,
		IsActive:    rule.IsActive,
	}

	if err := repo.db.WithContext(ctx).Create(ruleM).Error; err != nil {
		return errors.Wrap(err, "failed to create point rule")
	}

	rule.ID = ruleM.ID

	return nil
}

// ListGifts retrieves active gifts ordered by sort order.
func (repo *pointsRepository) ListGifts(ctx context.Context) ([]*entity.Gift, error) {
	var giftModels []*model.GiftModel

	if err := repo.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("sort_order ASC").
		Find(&giftModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list gifts")
	}

	gifts := make([]*entity.Gift, 0, len(giftModels))
	for _, giftM := range giftModels {
		gifts = append(gifts, toGiftDomain(giftM))
	}

	return gifts, nil
}

// FindGiftByID retrieves a gift by its unique ID.
func (repo *pointsRepository) FindGiftByID(ctx context.Context, id uuid.UUID) (*entity.Gift, error) {
	var giftM model.GiftModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&giftM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrGiftNotFound
		}

		return nil, errors.Wrap(err, "failed to find gift by ID")
	}

	return toGiftDomain(&giftM), nil
}

// CreateGift persists a gift definition.
func (repo *pointsRepository) CreateGift(ctx context.Context, gift *entity.Gift) error {
	giftM := fromGiftDomain(gift)

	if err := repo.db.WithContext(ctx).Create(giftM).Error; err != nil {
		return errors.Wrap(err, "failed to create gift")
	}

	gift.ID = giftM.ID

	return nil
}

// CreateGiftRecord persists a delivered gift.
func (repo *pointsRepository) CreateGiftRecord(ctx context.Context, record *entity.GiftRecord) error {
	recordM := &model.GiftRecordModel{
		ID:         record.ID,
		SenderID:   record.SenderID,
		ReceiverID: record.ReceiverID,
		GiftID:     record.GiftID,
		ContentID:  record.ContentID,
		Message:    record.Message,
		CreatedAt:  record.CreatedAt,
	}

	if err := repo.db.WithContext(ctx).Create(recordM).Error; err != nil {
		return errors.Wrap(err, "failed to create gift record")
	}

	record.ID = recordM.ID

	return nil
}

// ListRewards retrieves active rewards ordered by sort order.
func (repo *pointsRepository) ListRewards(ctx context.Context) ([]*entity.Reward, error) {
	var rewardModels []*model.RewardModel

	if err := repo.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("sort_order ASC").
		Find(&rewardModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list rewards")
	}

	rewards := make([]*entity.Reward, 0, len(rewardModels))
	for _, rewardM := range rewardModels {
		rewards = append(rewards, toRewardDomain(rewardM))
	}

	return rewards, nil
}

// CreateReward persists a reward definition.
func (repo *pointsRepository) CreateReward(ctx context.Context, reward *entity.Reward) error {
	rewardM := &model.RewardModel{
		ID:             reward.ID,
		Name:           reward.Name,
		Description:    reward.Description,
		Type:           reward.Type,
		RequiredPoints: reward.RequiredPoints,
		RequiredStreak: reward.RequiredStreak,
		IsActive:       reward.IsActive,
		SortOrder:      reward.SortOrder,
	}

	if err := repo.db.WithContext(ctx).Create(rewardM).Error; err != nil {
		return errors.Wrap(err, "failed to create reward")
	}

	reward.ID = rewardM.ID

	return nil
}

// --- Mapper Functions ---

// toWalletDomain converts a GORM WalletModel to a domain Wallet entity.
func toWalletDomain(data *model.WalletModel) *entity.Wallet {
	if data == nil {
		return nil
	}

	return &entity.Wallet{
		UserID:          data.UserID,
		TotalPoints:     data.TotalPoints,
		AvailablePoints: data.AvailablePoints,
		Level:           data.Level,
		UpdatedAt:       data.UpdatedAt,
	}
}

// toPointRuleDomain converts a GORM PointRuleModel to a domain PointRule entity.
func toPointRuleDomain(data *model.PointRuleModel) *entity.PointRule {
	if data == nil {
		return nil
	}

	return &entity.PointRule{
		ID:          data.ID,
		ActionType:  entity.ActionType(data.ActionType),
		PointsValue: data.PointsValue,
		DailyLimit:  data.DailyLimit,
		Description: data.Description,
		IsActive:    data.IsActive,
	}
}

// toGiftDomain converts a GORM GiftModel to a domain Gift entity.
func toGiftDomain(data *model.GiftModel) *entity.Gift {
	if data == nil {
		return nil
	}

	return &entity.Gift{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		PricePoints: data.PricePoints,
		EffectType:  data.EffectType,
		IsActive:    data.IsActive,
		SortOrder:   data.SortOrder,
	}
}

// fromGiftDomain converts a domain Gift entity to a GORM GiftModel.
func fromGiftDomain(data *entity.Gift) *model.GiftModel {
	if data == nil {
		return nil
	}

	return &model.GiftModel{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		PricePoints: data.PricePoints,
		EffectType:  data.EffectType,
		IsActive:    data.IsActive,
		SortOrder:   data.SortOrder,
	}
}

// toRewardDomain converts a GORM RewardModel to a domain Reward entity.
func toRewardDomain(data *model.RewardModel) *entity.Reward {
	if data == nil {
		return nil
	}

	return &entity.Reward{
		ID:             data.ID,
		Name:           data.Name,
		Description:    data.Description,
		Type:           data.Type,
		RequiredPoints: data.RequiredPoints,
		RequiredStreak: data.RequiredStreak,
		IsActive:       data.IsActive,
		SortOrder:      data.SortOrder,
	}
}
