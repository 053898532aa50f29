package handler

import (
	"log/slog"
	"net/http"

	"bosskill/internal/delivery/http/response"
	"bosskill/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// FeedHandlerParams holds dependencies for FeedHandler, injected by Fx.
type FeedHandlerParams struct {
	fx.In

	FeedUC usecase.FeedUsecase
	Logger *slog.Logger
}

// FeedHandler holds dependencies for the ranked feed endpoints
type FeedHandler struct {
	feedUC usecase.FeedUsecase
	logger *slog.Logger
}

// NewFeedHandler is the constructor for FeedHandler
func NewFeedHandler(params FeedHandlerParams) *FeedHandler {
	return &FeedHandler{
		feedUC: params.FeedUC,
		logger: params.Logger,
	}
}

// FeedRequest represents the query parameters for the ranked feed
type FeedRequest struct {
	Category string `query:"category"`
	Page     int    `query:"page"`
	PageSize int    `query:"page_size"`
}

// RecordActionRequest represents the request body for an engagement event
type RecordActionRequest struct {
	UserID    string `json:"user_id" validate:"required"`
	ContentID string `json:"content_id" validate:"required"`
	Action    string `json:"action" validate:"required"`
}

// GetFeed handles one page of the engagement-ranked feed
func (h *FeedHandler) GetFeed(c echo.Context) error {
	var req FeedRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid feed query")
	}

	page, err := h.feedUC.GetFeed(c.Request().Context(), &usecase.FeedQuery{
		Category: req.Category,
		Page:     req.Page,
		PageSize: req.PageSize,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, page, "")
}

// RecordAction handles recording an engagement event on a content item
func (h *FeedHandler) RecordAction(c echo.Context) error {
	var req RecordActionRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid action input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	contentID, err := uuid.Parse(req.ContentID)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid content ID")
	}

	result, err := h.feedUC.RecordAction(c.Request().Context(), &usecase.RecordActionInput{
		UserID:    req.UserID,
		ContentID: contentID,
		Action:    req.Action,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, result, "")
}
