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

// quoteRepository implements the repository.QuoteRepository interface.
type quoteRepository struct {
	db *gorm.DB
}

// NewQuoteRepository is the constructor for quoteRepository.
func NewQuoteRepository(db *gorm.DB) repository.QuoteRepository {
	return &quoteRepository{
		db: db,
	}
}

// CreateQuote persists a new quote.
func (repo *quoteRepository) CreateQuote(ctx context.Context, quote *entity.Quote) error {
	quoteM := fromQuoteDomain(quote)

	if err := repo.db.WithContext(ctx).Create(quoteM).Error; err != nil {
		return errors.Wrap(err, "failed to create quote")
	}

	quote.ID = quoteM.ID
	quote.CreatedAt = quoteM.CreatedAt

	return nil
}

// CreateCategory persists a new quote category.
func (repo *quoteRepository) CreateCategory(ctx context.Context, category *entity.QuoteCategory) error {
	categoryM := fromQuoteCategoryDomain(category)

	if err := repo.db.WithContext(ctx).Create(categoryM).Error; err != nil {
		return errors.Wrap(err, "failed to create quote category")
	}

	category.ID = categoryM.ID

	return nil
}

// FindQuoteByID retrieves a quote by its unique ID.
func (repo *quoteRepository) FindQuoteByID(ctx context.Context, id uuid.UUID) (*entity.Quote, error) {
	var quoteM model.QuoteModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&quoteM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrQuoteNotFound
		}

		return nil, errors.Wrap(err, "failed to find quote by ID")
	}

	return toQuoteDomain(&quoteM), nil
}

// FindDailyCandidate retrieves the best active quote the user has not been
// shown on the given date: effectiveness descending, least shown first. The
// NOT EXISTS subquery walks today's usage trail for the user.
func (repo *quoteRepository) FindDailyCandidate(ctx context.Context, userID, date string) (*entity.Quote, error) {
	var quoteM model.QuoteModel

	if err := repo.db.WithContext(ctx).
		Where("is_active = ?", true).
		Where(`NOT EXISTS (
			SELECT 1 FROM quote_usages u
			WHERE u.quote_id = quotes.id
			  AND u.user_id = ?
			  AND DATE(u.used_at) = ?
		)`, userID, date).
		Order("effectiveness_score DESC, usage_count ASC").
		First(&quoteM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrQuoteNotFound
		}

		return nil, errors.Wrap(err, "failed to find daily quote candidate")
	}

	return toQuoteDomain(&quoteM), nil
}

// FindTopEffective retrieves the active quote with the highest effectiveness score.
func (repo *quoteRepository) FindTopEffective(ctx context.Context) (*entity.Quote, error) {
	var quoteM model.QuoteModel

	if err := repo.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("effectiveness_score DESC, usage_count ASC").
		First(&quoteM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrQuoteNotFound
		}

		return nil, errors.Wrap(err, "failed to find top effective quote")
	}

	return toQuoteDomain(&quoteM), nil
}

// FindRandom retrieves a uniformly random active quote.
func (repo *quoteRepository) FindRandom(ctx context.Context) (*entity.Quote, error) {
	var quoteM model.QuoteModel

	if err := repo.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("RANDOM()").
		First(&quoteM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrQuoteNotFound
		}

		return nil, errors.Wrap(err, "failed to find random quote")
	}

	return toQuoteDomain(&quoteM), nil
}

// FindByCategory retrieves active quotes in a category, most effective first.
func (repo *quoteRepository) FindByCategory(ctx context.Context, categoryName string) ([]*entity.Quote, error) {
	var quoteModels []*model.QuoteModel

	if err := repo.db.WithContext(ctx).
		Where("category = ? AND is_active = ?", categoryName, true).
		Order("effectiveness_score DESC").
		Find(&quoteModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find quotes by category")
	}

	quotes := make([]*entity.Quote, 0, len(quoteModels))
	for _, quoteM := range quoteModels {
		quotes = append(quotes, toQuoteDomain(quoteM))
	}

	return quotes, nil
}

// quoteCategoryRow is the scan target for the category listing, the category
// columns plus the derived active quote count.
type quoteCategoryRow struct {
	model.QuoteCategoryModel
	QuoteCount int
}

// ListCategories retrieves active categories with their active quote counts.
func (repo *quoteRepository) ListCategories(ctx context.Context) ([]*entity.QuoteCategory, error) {
	var rows []*quoteCategoryRow

	query := `
		SELECT c.*, (
			SELECT COUNT(*) FROM quotes q
			WHERE q.category = c.name AND q.is_active = true
		) AS quote_count
		FROM quote_categories c
		WHERE c.is_active = true
		ORDER BY c.sort_order ASC
	`

	if err := repo.db.WithContext(ctx).
		Raw(query).
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list quote categories")
	}

	categories := make([]*entity.QuoteCategory, 0, len(rows))
	for _, row := range rows {
		category := toQuoteCategoryDomain(&row.QuoteCategoryModel)
		category.QuoteCount = row.QuoteCount
		categories = append(categories, category)
	}

	return categories, nil
}

// CreateUsage records that a quote was shown to a user.
func (repo *quoteRepository) CreateUsage(ctx context.Context, usage *entity.QuoteUsage) error {
	usageM := &model.QuoteUsageModel{
		ID:         usage.ID,
		UserID:     usage.UserID,
		QuoteID:    usage.QuoteID,
		UserRating: usage.UserRating,
		UsedAt:     usage.UsedAt,
	}

	if err := repo.db.WithContext(ctx).Create(usageM).Error; err != nil {
		return errors.Wrap(err, "failed to create quote usage")
	}

	usage.ID = usageM.ID

	return nil
}

// IncrementUsageCount bumps a quote's usage counter by one.
func (repo *quoteRepository) IncrementUsageCount(ctx context.Context, quoteID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.QuoteModel{}).
		Where("id = ?", quoteID).
		Update("usage_count", gorm.Expr("usage_count + 1"))

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to increment usage count")
	}

	if result.RowsAffected == 0 {
		return repository.ErrQuoteNotFound
	}

	return nil
}

// ApplyRating folds a 1-5 rating into the effectiveness score as a running
// average over the usage count. The rating maps onto [0.2, 1.0] so a string
// of fives drifts the score toward 1.0.
func (repo *quoteRepository) ApplyRating(ctx context.Context, quoteID uuid.UUID, rating int) error {
	normalized := float64(rating) * 0.2

	result := repo.db.WithContext(ctx).
		Model(&model.QuoteModel{}).
		Where("id = ?", quoteID).
		Update("effectiveness_score",
			gorm.Expr("(effectiveness_score * usage_count + ?) / (usage_count + 1)", normalized))

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to apply rating")
	}

	if result.RowsAffected == 0 {
		return repository.ErrQuoteNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toQuoteDomain converts a GORM QuoteModel to a domain Quote entity.
func toQuoteDomain(data *model.QuoteModel) *entity.Quote {
	if data == nil {
		return nil
	}

	return &entity.Quote{
		ID:                 data.ID,
		Text:               data.Text,
		Category:           data.Category,
		Author:             data.Author,
		UsageCount:         data.UsageCount,
		EffectivenessScore: data.EffectivenessScore,
		IsActive:           data.IsActive,
		Tags:               data.Tags,
		CreatedAt:          data.CreatedAt,
	}
}

// fromQuoteDomain converts a domain Quote entity to a GORM QuoteModel.
func fromQuoteDomain(data *entity.Quote) *model.QuoteModel {
	if data == nil {
		return nil
	}

	return &model.QuoteModel{
		ID:                 data.ID,
		Text:               data.Text,
		Category:           data.Category,
		Author:             data.Author,
		UsageCount:         data.UsageCount,
		EffectivenessScore: data.EffectivenessScore,
		IsActive:           data.IsActive,
		Tags:               data.Tags,
		CreatedAt:          data.CreatedAt,
	}
}

// toQuoteCategoryDomain converts a GORM QuoteCategoryModel to a domain QuoteCategory entity.
func toQuoteCategoryDomain(data *model.QuoteCategoryModel) *entity.QuoteCategory {
	if data == nil {
		return nil
	}

	return &entity.QuoteCategory{
		ID:          data.ID,
		Name:        data.Name,
		DisplayName: data.DisplayName,
		Description: data.Description,
		Color:       data.Color,
		Icon:        data.Icon,
		SortOrder:   data.SortOrder,
		IsActive:    data.IsActive,
	}
}

// fromQuoteCategoryDomain converts a domain QuoteCategory entity to a GORM QuoteCategoryModel.
func fromQuoteCategoryDomain(data *entity.QuoteCategory) *model.QuoteCategoryModel {
	if data == nil {
		return nil
	}

	return &model.QuoteCategoryModel{
		ID:          data.ID,
		Name:        data.Name,
		DisplayName: data.DisplayName,
		Description: data.Description,
		Color:       data.Color,
		Icon:        data.Icon,
		SortOrder:   data.SortOrder,
		IsActive:    data.IsActive,
	}
}
