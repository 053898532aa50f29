// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"bosskill/config"
	"bosskill/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RouterParams holds all the handlers, injected by Fx.
type RouterParams struct {
	fx.In

	MapHandler     *handler.MapHandler
	FeedHandler    *handler.FeedHandler
	QuoteHandler   *handler.QuoteHandler
	CheckInHandler *handler.CheckInHandler
	PointsHandler  *handler.PointsHandler
	TestHandler    *handler.TestHandler
	Config         *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	mapHandler     *handler.MapHandler
	feedHandler    *handler.FeedHandler
	quoteHandler   *handler.QuoteHandler
	checkInHandler *handler.CheckInHandler
	pointsHandler  *handler.PointsHandler
	testHandler    *handler.TestHandler
	config         *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		mapHandler:     params.MapHandler,
		feedHandler:    params.FeedHandler,
		quoteHandler:   params.QuoteHandler,
		checkInHandler: params.CheckInHandler,
		pointsHandler:  params.PointsHandler,
		testHandler:    params.TestHandler,
		config:         params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Shared map routes
	e.POST("/points", r.mapHandler.ThrowPoint)
	e.GET("/points", r.mapHandler.GetNearbyPoints)
	e.POST("/towers", r.mapHandler.FormTower)
	e.GET("/towers", r.mapHandler.GetNearbyTowers)
	e.GET("/map/summary", r.mapHandler.GetMapSummary)
	e.GET("/buildings/occupied", r.mapHandler.GetOccupiedBuildings)

	// Daily quote routes
	quotesGroup := e.Group("/quotes")
	{
		quotesGroup.GET("/today", r.quoteHandler.GetDailyQuote)
		quotesGroup.GET("/random", r.quoteHandler.GetRandomQuote)
		quotesGroup.GET("/categories", r.quoteHandler.ListCategories)
		quotesGroup.GET("/categories/:name", r.quoteHandler.GetQuotesByCategory)
		quotesGroup.POST("/usage", r.quoteHandler.RecordUsage)
	}

	// Daily check-in routes
	checkinGroup := e.Group("/checkin")
	{
		checkinGroup.POST("", r.checkInHandler.CheckIn)
		checkinGroup.GET("/progress", r.checkInHandler.GetProgress)
		checkinGroup.GET("/leaderboard", r.checkInHandler.GetLeaderboard)
	}

	// Ranked feed routes
	feedGroup := e.Group("/feed")
	{
		feedGroup.GET("", r.feedHandler.GetFeed)
		feedGroup.POST("/actions", r.feedHandler.RecordAction)
	}

	// Wallet, gift and reward routes
	e.GET("/wallet", r.pointsHandler.GetWallet)
	e.GET("/gifts", r.pointsHandler.ListGifts)
	e.POST("/gifts/send", r.pointsHandler.SendGift)
	e.GET("/rewards", r.pointsHandler.ListRewards)
}

// RegisterTestRoutes wires endpoints that only exist when enabled in config.
func (r *router) RegisterTestRoutes(e *echo.Echo) {
	if r.config.TestRoutes != nil && r.config.TestRoutes.Enabled {
		testGroup := e.Group("/test")
		testGroup.GET("/public", r.testHandler.TestPublicEndpoint)
	}
}
