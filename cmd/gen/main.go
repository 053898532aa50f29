package main

import (
	"bosskill/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.PointModel{},
		model.TowerModel{},
		model.BuildingModel{},
		model.QuoteModel{},
		model.QuoteCategoryModel{},
		model.QuoteUsageModel{},
		model.ContentModel{},
		model.UserActionModel{},
		model.CheckInRecordModel{},
		model.CheckInStatsModel{},
		model.WalletModel{},
		model.PointTransactionModel{},
		model.PointRuleModel{},
		model.GiftModel{},
		model.GiftRecordModel{},
		model.RewardModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
