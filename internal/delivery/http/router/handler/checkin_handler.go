package handler

import (
	"log/slog"
	"net/http"

	"bosskill/internal/delivery/http/response"
	"bosskill/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CheckInHandlerParams holds dependencies for CheckInHandler, injected by Fx.
type CheckInHandlerParams struct {
	fx.In

	CheckInUC usecase.CheckInUsecase
	Logger    *slog.Logger
}

// CheckInHandler holds dependencies for the daily check-in endpoints
type CheckInHandler struct {
	checkInUC usecase.CheckInUsecase
	logger    *slog.Logger
}

// NewCheckInHandler is the constructor for CheckInHandler
func NewCheckInHandler(params CheckInHandlerParams) *CheckInHandler {
	return &CheckInHandler{
		checkInUC: params.CheckInUC,
		logger:    params.Logger,
	}
}

// CheckInRequest represents the request body for a daily check-in
type CheckInRequest struct {
	UserID string `json:"user_id" validate:"required"`
}

// CheckIn handles recording today's check-in
func (h *CheckInHandler) CheckIn(c echo.Context) error {
	var req CheckInRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid check-in input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	result, err := h.checkInUC.CheckIn(c.Request().Context(), req.UserID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, result, "")
}

// GetProgress handles the streak summary for a user
func (h *CheckInHandler) GetProgress(c echo.Context) error {
	userID := c.QueryParam("user_id")
	if userID == "" {
		return response.BadRequest(c, "MISSING_USER_ID", "user_id is required")
	}

	progress, err := h.checkInUC.GetProgress(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, progress, "")
}

// GetLeaderboard handles the top streak listing
func (h *CheckInHandler) GetLeaderboard(c echo.Context) error {
	leaders, err := h.checkInUC.GetLeaderboard(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, leaders, "")
}
