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

// PointsHandlerParams holds dependencies for PointsHandler, injected by Fx.
type PointsHandlerParams struct {
	fx.In

	PointsUC usecase.PointsUsecase
	Logger   *slog.Logger
}

// PointsHandler holds dependencies for the wallet, gift and reward endpoints
type PointsHandler struct {
	pointsUC usecase.PointsUsecase
	logger   *slog.Logger
}

// NewPointsHandler is the constructor for PointsHandler
func NewPointsHandler(params PointsHandlerParams) *PointsHandler {
	return &PointsHandler{
		pointsUC: params.PointsUC,
		logger:   params.Logger,
	}
}

// SendGiftRequest represents the request body for sending a gift
type SendGiftRequest struct {
	SenderID   string `json:"sender_id" validate:"required"`
	ReceiverID string `json:"receiver_id" validate:"required"`
	GiftID     string `json:"gift_id" validate:"required"`
	Message    string `json:"message"`
}

// GetWallet handles the wallet lookup for a user
func (h *PointsHandler) GetWallet(c echo.Context) error {
	userID := c.QueryParam("user_id")
	if userID == "" {
		return response.BadRequest(c, "MISSING_USER_ID", "user_id is required")
	}

	wallet, err := h.pointsUC.GetWallet(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, wallet, "")
}

// ListGifts handles the gift catalog listing
func (h *PointsHandler) ListGifts(c echo.Context) error {
	gifts, err := h.pointsUC.ListGifts(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, gifts, "")
}

// SendGift handles paying for and delivering a gift
func (h *PointsHandler) SendGift(c echo.Context) error {
	var req SendGiftRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid gift input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	giftID, err := uuid.Parse(req.GiftID)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid gift ID")
	}

	result, err := h.pointsUC.SendGift(c.Request().Context(), &usecase.SendGiftInput{
		SenderID:   req.SenderID,
		ReceiverID: req.ReceiverID,
		GiftID:     giftID,
		Message:    req.Message,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, result, "")
}

// ListRewards handles the reward catalog with per-user unlock flags
func (h *PointsHandler) ListRewards(c echo.Context) error {
	userID := c.QueryParam("user_id")
	if userID == "" {
		return response.BadRequest(c, "MISSING_USER_ID", "user_id is required")
	}

	rewards, err := h.pointsUC.ListRewards(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, rewards, "")
}
