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

// contentRepository implements the repository.ContentRepository interface.
type contentRepository struct {
	db *gorm.DB
}

// NewContentRepository is the constructor for contentRepository.
func NewContentRepository(db *gorm.DB) repository.ContentRepository {
	return &contentRepository{
		db: db,
	}
}

// CreateContent persists a new content item.
func (repo *contentRepository) CreateContent(ctx context.Context, item *entity.ContentItem) error {
	contentM := fromContentDomain(item)

	if err := repo.db.WithContext(ctx).Create(contentM).Error; err != nil {
		return errors.Wrap(err, "failed to create content")
	}

	item.ID = contentM.ID
	item.CreatedAt = contentM.CreatedAt

	return nil
}

// FindContentByID retrieves a content item by its unique ID.
func (repo *contentRepository) FindContentByID(ctx context.Context, id uuid.UUID) (*entity.ContentItem, error) {
	var contentM model.ContentModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&contentM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrContentNotFound
		}

		return nil, errors.Wrap(err, "failed to find content by ID")
	}

	return toContentDomain(&contentM), nil
}

// FindActive retrieves all active content items, newest first.
func (repo *contentRepository) FindActive(ctx context.Context) ([]*entity.ContentItem, error) {
	var contentModels []*model.ContentModel

	if err := repo.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("created_at DESC").
		Find(&contentModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find active content")
	}

	items := make([]*entity.ContentItem, 0, len(contentModels))
	for _, contentM := range contentModels {
		items = append(items, toContentDomain(contentM))
	}

	return items, nil
}

// counterColumns maps countable action types to their denormalized column.
// Comments and shares have no counter and are a no-op.
var counterColumns = map[entity.ActionType]string{
	entity.ActionTypeView:     "view_count",
	entity.ActionTypeLike:     "like_count",
	entity.ActionTypeFavorite: "favorite_count",
}

// IncrementCounter bumps the engagement counter matching the action type.
func (repo *contentRepository) IncrementCounter(ctx context.Context, contentID uuid.UUID, action entity.ActionType) error {
	column, ok := counterColumns[action]
	if !ok {
		return nil
	}

	result := repo.db.WithContext(ctx).
		Model(&model.ContentModel{}).
		Where("id = ?", contentID).
		Update(column, gorm.Expr(column+" + 1"))

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to increment counter")
	}

	if result.RowsAffected == 0 {
		return repository.ErrContentNotFound
	}

	return nil
}

// CreateAction records a single user engagement event.
func (repo *contentRepository) CreateAction(ctx context.Context, action *entity.UserAction) error {
	actionM := &model.UserActionModel{
		ID:        action.ID,
		UserID:    action.UserID,
		ContentID: action.ContentID,
		Type:      action.Type.String(),
		CreatedAt: action.CreatedAt,
	}

	if err := repo.db.WithContext(ctx).Create(actionM).Error; err != nil {
		return errors.Wrap(err, "failed to create user action")
	}

	action.ID = actionM.ID

	return nil
}

// CountActionsOnDate counts the user's actions of a type on a calendar date.
func (repo *contentRepository) CountActionsOnDate(ctx context.Context, userID string, action entity.ActionType, date string) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.UserActionModel{}).
		Where("user_id = ? AND type = ?", userID, action.String()).
		Where("DATE(created_at) = ?", date).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count actions on date")
	}

	return count, nil
}

// --- Mapper Functions ---

// toContentDomain converts a GORM ContentModel to a domain ContentItem entity.
func toContentDomain(data *model.ContentModel) *entity.ContentItem {
	if data == nil {
		return nil
	}

	return &entity.ContentItem{
		ID:            data.ID,
		AuthorID:      data.AuthorID,
		Title:         data.Title,
		Category:      data.Category,
		LikeCount:     data.LikeCount,
		FavoriteCount: data.FavoriteCount,
		ViewCount:     data.ViewCount,
		IsActive:      data.IsActive,
		CreatedAt:     data.CreatedAt,
	}
}

// fromContentDomain converts a domain ContentItem entity to a GORM ContentModel.
func fromContentDomain(data *entity.ContentItem) *model.ContentModel {
	if data == nil {
		return nil
	}

	return &model.ContentModel{
		ID:            data.ID,
		AuthorID:      data.AuthorID,
		Title:         data.Title,
		Category:      data.Category,
		LikeCount:     data.LikeCount,
		FavoriteCount: data.FavoriteCount,
		ViewCount:     data.ViewCount,
		IsActive:      data.IsActive,
		CreatedAt:     data.CreatedAt,
	}
}
