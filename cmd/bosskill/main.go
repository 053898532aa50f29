package main

import (
	"context"
	"log/slog"
	"os"

	"bosskill/config"
	"bosskill/internal/delivery"
	"bosskill/internal/delivery/http"
	"bosskill/internal/delivery/http/router/handler"
	logs "bosskill/internal/infra/log"
	"bosskill/internal/infra/persistence/postgres"
	"bosskill/internal/infra/pubsub"
	"bosskill/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectUsecase(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
		pubsub.NewEventPublisher,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewTransactionManager,
			postgres.NewPointRepository,
			postgres.NewTowerRepository,
			postgres.NewBuildingRepository,
			postgres.NewQuoteRepository,
			postgres.NewContentRepository,
			postgres.NewCheckInRepository,
			postgres.NewPointsRepository,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewMapService,
			impl.NewFeedService,
			impl.NewQuoteService,
			impl.NewCheckInService,
			impl.NewPointsService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewMapHandler,
			handler.NewFeedHandler,
			handler.NewQuoteHandler,
			handler.NewCheckInHandler,
			handler.NewPointsHandler,
			handler.NewTestHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
