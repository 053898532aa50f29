// Command seed creates the schema and loads the fixture data the demo game
// expects: landmark buildings, the quote library, the gift catalog, point
// rules and rewards. Safe to run repeatedly; existing rows are left alone.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"bosskill/config"
	"bosskill/internal/infra/persistence/model"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	cfg, err := config.New()
	if err != nil {
		logger.Error("Failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	db, err := pgLib.New(cfg.Postgres)
	if err != nil {
		logger.Error("Failed to connect to PostgreSQL", slog.Any("error", err))
		os.Exit(1)
	}

	if err := run(db, logger); err != nil {
		logger.Error("Seeding failed", slog.Any("error", err))
		os.Exit(1)
	}

	logger.Info("Seeding completed")
}

func run(db *gorm.DB, logger *slog.Logger) error {
	// uuid_generate_v7 backs the primary key defaults.
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS pg_uuidv7`).Error; err != nil {
		logger.Warn("Could not create pg_uuidv7 extension, assuming it exists", slog.Any("error", err))
	}

	if err := db.AutoMigrate(
		&model.PointModel{},
		&model.TowerModel{},
		&model.BuildingModel{},
		&model.QuoteModel{},
		&model.QuoteCategoryModel{},
		&model.QuoteUsageModel{},
		&model.ContentModel{},
		&model.UserActionModel{},
		&model.CheckInRecordModel{},
		&model.CheckInStatsModel{},
		&model.WalletModel{},
		&model.PointTransactionModel{},
		&model.PointRuleModel{},
		&model.GiftModel{},
		&model.GiftRecordModel{},
		&model.RewardModel{},
	); err != nil {
		return fmt.Errorf("auto-migration failed: %w", err)
	}
	logger.Info("Schema migrated")

	if err := seedBuildings(db); err != nil {
		return fmt.Errorf("seeding buildings failed: %w", err)
	}
	if err := seedQuoteCategories(db); err != nil {
		return fmt.Errorf("seeding quote categories failed: %w", err)
	}
	if err := seedQuotes(db); err != nil {
		return fmt.Errorf("seeding quotes failed: %w", err)
	}
	if err := seedPointRules(db); err != nil {
		return fmt.Errorf("seeding point rules failed: %w", err)
	}
	if err := seedGifts(db); err != nil {
		return fmt.Errorf("seeding gifts failed: %w", err)
	}
	if err := seedRewards(db); err != nil {
		return fmt.Errorf("seeding rewards failed: %w", err)
	}

	return nil
}

func seedBuildings(db *gorm.DB) error {
	buildings := []model.BuildingModel{
		{Name: "阿里巴巴总部", Type: "office", Latitude: 30.2741, Longitude: 120.0261, Importance: 10},
		{Name: "腾讯大厦", Type: "office", Latitude: 22.5431, Longitude: 114.0579, Importance: 10},
		{Name: "字节跳动大厦", Type: "office", Latitude: 40.0020, Longitude: 116.4877, Importance: 9},
		{Name: "百度大厦", Type: "office", Latitude: 40.0566, Longitude: 116.3072, Importance: 9},
		{Name: "华为研发中心", Type: "office", Latitude: 22.6505, Longitude: 114.0579, Importance: 8},
	}

	return db.Clauses(clause.OnConflict{DoNothing: true}).Create(&buildings).Error
}

func seedQuoteCategories(db *gorm.DB) error {
	categories := []model.QuoteCategoryModel{
		{Name: "motivation", DisplayName: "激励类", Description: "激发斗志的正面激励文字", Color: "#4CAF50", Icon: "trending_up", SortOrder: 1, IsActive: true},
		{Name: "humor", DisplayName: "幽默类", Description: "轻松幽默的搞笑文字", Color: "#FF9800", Icon: "sentiment_satisfied", SortOrder: 2, IsActive: true},
		{Name: "inspirational", DisplayName: "鼓舞类", Description: "富有哲理的鼓舞人心文字", Color: "#2196F3", Icon: "lightbulb", SortOrder: 3, IsActive: true},
		{Name: "sarcastic", DisplayName: "讽刺类", Description: "带有讽刺意味的文字", Color: "#F44336", Icon: "mood_bad", SortOrder: 4, IsActive: true},
	}

	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoNothing: true,
	}).Create(&categories).Error
}

func seedQuotes(db *gorm.DB) error {
	quotes := []model.QuoteModel{
		{Text: "在最好的青春里，在格子间里激励自己开出最美的花！", Category: "motivation", EffectivenessScore: 0.92, Tags: []string{"青春", "奋斗", "激励"}},
		{Text: "工作虽苦，但扔大便的快乐谁懂？", Category: "humor", EffectivenessScore: 0.88, Tags: []string{"幽默", "工作", "快乐"}},
		{Text: "996的你，值得一个大大的便便！", Category: "sarcastic", EffectivenessScore: 0.85, Tags: []string{"讽刺", "加班", "释放"}},
		{Text: "在格子间里，做一个会扔便便的自由灵魂", Category: "inspirational", EffectivenessScore: 0.90, Tags: []string{"自由", "灵魂", "格子间"}},
		{Text: "青春不只是奋斗，还有扔大便的快感", Category: "motivation", EffectivenessScore: 0.86, Tags: []string{"青春", "奋斗", "快感"}},
		{Text: "工作压力大？扔个便便释放一下", Category: "humor", EffectivenessScore: 0.87, Tags: []string{"压力", "释放", "幽默"}},
		{Text: "在办公室的角落，藏着你的小确幸", Category: "inspirational", EffectivenessScore: 0.89, Tags: []string{"办公室", "确幸", "角落"}},
		{Text: "不是加班辛苦，是没扔便便的遗憾", Category: "sarcastic", EffectivenessScore: 0.82, Tags: []string{"加班", "遗憾", "讽刺"}},
		{Text: "扔出你的不满，迎接更好的明天", Category: "motivation", EffectivenessScore: 0.91, Tags: []string{"不满", "明天", "迎接"}},
		{Text: "便便虽小，快乐无穷", Category: "humor", EffectivenessScore: 0.84, Tags: []string{"快乐", "无穷", "幽默"}},
		{Text: "在格子间里，找到属于你的释放方式", Category: "inspirational", EffectivenessScore: 0.88, Tags: []string{"格子间", "释放", "方式"}},
		{Text: "工作再累，也要记得扔便便的乐趣", Category: "motivation", EffectivenessScore: 0.85, Tags: []string{"工作", "累", "乐趣"}},
		{Text: "青春奋斗路，便便相伴", Category: "inspirational", EffectivenessScore: 0.83, Tags: []string{"青春", "奋斗", "相伴"}},
		{Text: "释放压力，从扔便便开始", Category: "motivation", EffectivenessScore: 0.90, Tags: []string{"释放", "压力", "开始"}},
		{Text: "在办公室里，做一个快乐的扔便便者", Category: "humor", EffectivenessScore: 0.86, Tags: []string{"办公室", "快乐", "扔便便者"}},
	}
	for i := range quotes {
		quotes[i].IsActive = true
	}

	return db.Clauses(clause.OnConflict{DoNothing: true}).Create(&quotes).Error
}

func seedPointRules(db *gorm.DB) error {
	rules := []model.PointRuleModel{
		{ActionType: "view", PointsValue: 1, DailyLimit: 50, Description: "浏览内容", IsActive: true},
		{ActionType: "like", PointsValue: 2, DailyLimit: 30, Description: "点赞内容", IsActive: true},
		{ActionType: "comment", PointsValue: 5, DailyLimit: 20, Description: "评论内容", IsActive: true},
		{ActionType: "favorite", PointsValue: 3, DailyLimit: 20, Description: "收藏内容", IsActive: true},
		{ActionType: "share", PointsValue: 10, DailyLimit: 10, Description: "分享内容", IsActive: true},
	}

	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "action_type"}},
		DoNothing: true,
	}).Create(&rules).Error
}

func seedGifts(db *gorm.DB) error {
	gifts := []model.GiftModel{
		{Name: "小红花", PricePoints: 10, EffectType: "basic", SortOrder: 1, IsActive: true},
		{Name: "便便徽章", PricePoints: 50, EffectType: "bronze", SortOrder: 2, IsActive: true},
		{Name: "金色便便", PricePoints: 200, EffectType: "gold", SortOrder: 3, IsActive: true},
		{Name: "便便之王", PricePoints: 500, EffectType: "legendary", SortOrder: 4, IsActive: true},
	}

	return db.Clauses(clause.OnConflict{DoNothing: true}).Create(&gifts).Error
}

func seedRewards(db *gorm.DB) error {
	rewards := []model.RewardModel{
		{Name: "新手便便侠", Type: "title", RequiredPoints: 0, RequiredStreak: 0, SortOrder: 1, IsActive: true},
		{Name: "便便达人", Type: "title", RequiredPoints: 100, RequiredStreak: 0, SortOrder: 2, IsActive: true},
		{Name: "便便大师", Type: "title", RequiredPoints: 500, RequiredStreak: 0, SortOrder: 3, IsActive: true},
		{Name: "基础便便贴纸包", Type: "sticker", RequiredPoints: 50, RequiredStreak: 0, SortOrder: 4, IsActive: true},
		{Name: "青铜便便框", Type: "avatar_frame", RequiredPoints: 50, RequiredStreak: 0, SortOrder: 5, IsActive: true},
		{Name: "传奇便便框", Type: "avatar_frame", RequiredPoints: 0, RequiredStreak: 7, SortOrder: 6, IsActive: true},
	}

	return db.Clauses(clause.OnConflict{DoNothing: true}).Create(&rewards).Error
}
