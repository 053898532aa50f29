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

// QuoteHandlerParams holds dependencies for QuoteHandler, injected by Fx.
type QuoteHandlerParams struct {
	fx.In

	QuoteUC usecase.QuoteUsecase
	Logger  *slog.Logger
}

// QuoteHandler holds dependencies for the daily quote endpoints
type QuoteHandler struct {
	quoteUC usecase.QuoteUsecase
	logger  *slog.Logger
}

// NewQuoteHandler is the constructor for QuoteHandler
func NewQuoteHandler(params QuoteHandlerParams) *QuoteHandler {
	return &QuoteHandler{
		quoteUC: params.QuoteUC,
		logger:  params.Logger,
	}
}

// RecordUsageRequest represents the request body for recording a shown quote
type RecordUsageRequest struct {
	UserID  string `json:"user_id" validate:"required"`
	QuoteID string `json:"quote_id" validate:"required"`
	Rating  *int   `json:"rating,omitempty"`
}

// GetDailyQuote handles today's quote selection for a user
func (h *QuoteHandler) GetDailyQuote(c echo.Context) error {
	userID := c.QueryParam("user_id")
	if userID == "" {
		return response.BadRequest(c, "MISSING_USER_ID", "user_id is required")
	}

	quote, err := h.quoteUC.GetDailyQuote(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, quote, "")
}

// GetRandomQuote handles picking a uniformly random active quote
func (h *QuoteHandler) GetRandomQuote(c echo.Context) error {
	quote, err := h.quoteUC.GetRandomQuote(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, quote, "")
}

// ListCategories handles the category listing with quote counts
func (h *QuoteHandler) ListCategories(c echo.Context) error {
	categories, err := h.quoteUC.ListCategories(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, categories, "")
}

// GetQuotesByCategory handles listing quotes of one category
func (h *QuoteHandler) GetQuotesByCategory(c echo.Context) error {
	name := c.Param("name")
	if name == "" {
		return response.BadRequest(c, "MISSING_CATEGORY", "category name is required")
	}

	quotes, err := h.quoteUC.GetQuotesByCategory(c.Request().Context(), name)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, quotes, "")
}

// RecordUsage handles recording that a quote was shown, with an optional rating
func (h *QuoteHandler) RecordUsage(c echo.Context) error {
	var req RecordUsageRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid usage input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	quoteID, err := uuid.Parse(req.QuoteID)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid quote ID")
	}

	if err := h.quoteUC.RecordUsage(c.Request().Context(), &usecase.RecordQuoteUsageInput{
		UserID:  req.UserID,
		QuoteID: quoteID,
		Rating:  req.Rating,
	}); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, map[string]string{"message": "Usage recorded"}, "")
}
