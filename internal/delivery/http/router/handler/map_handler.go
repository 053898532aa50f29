package handler

import (
	"log/slog"
	"net/http"

	"bosskill/internal/delivery/http/response"
	"bosskill/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// MapHandlerParams holds dependencies for MapHandler, injected by Fx.
type MapHandlerParams struct {
	fx.In

	MapUC  usecase.MapUsecase
	Logger *slog.Logger
}

// MapHandler holds dependencies for the shared map endpoints
type MapHandler struct {
	mapUC  usecase.MapUsecase
	logger *slog.Logger
}

// NewMapHandler is the constructor for MapHandler
func NewMapHandler(params MapHandlerParams) *MapHandler {
	return &MapHandler{
		mapUC:  params.MapUC,
		logger: params.Logger,
	}
}

// ThrowPointRequest represents the request body for dropping a point
type ThrowPointRequest struct {
	UserID    string  `json:"user_id" validate:"required"`
	Latitude  float64 `json:"latitude" validate:"min=-90,max=90"`
	Longitude float64 `json:"longitude" validate:"min=-180,max=180"`
	Category  string  `json:"category"`
}

// FormTowerRequest represents the request body for forming a tower
type FormTowerRequest struct {
	UserID    string  `json:"user_id" validate:"required"`
	Latitude  float64 `json:"latitude" validate:"min=-90,max=90"`
	Longitude float64 `json:"longitude" validate:"min=-180,max=180"`
}

// NearbyRequest represents the query parameters for radius searches
type NearbyRequest struct {
	UserID   string  `query:"user_id"`
	Lat      float64 `query:"lat"`
	Lon      float64 `query:"lon"`
	RadiusKm float64 `query:"radius"`
	Limit    int     `query:"limit"`
}

// ThrowPoint handles dropping a point on the map
func (h *MapHandler) ThrowPoint(c echo.Context) error {
	var req ThrowPointRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid point input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	result, err := h.mapUC.ThrowPoint(c.Request().Context(), &usecase.ThrowPointInput{
		UserID:    req.UserID,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		Category:  req.Category,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, result, "")
}

// FormTower handles turning a co-located cluster into a tower
func (h *MapHandler) FormTower(c echo.Context) error {
	var req FormTowerRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid tower input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	result, err := h.mapUC.FormTower(c.Request().Context(), &usecase.FormTowerInput{
		UserID:    req.UserID,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, result, "")
}

// GetNearbyPoints handles radius searches for active points
func (h *MapHandler) GetNearbyPoints(c echo.Context) error {
	var req NearbyRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid nearby query")
	}

	points, err := h.mapUC.GetNearbyPoints(c.Request().Context(), &usecase.NearbyQuery{
		UserID:    req.UserID,
		Latitude:  req.Lat,
		Longitude: req.Lon,
		RadiusKm:  req.RadiusKm,
		Limit:     req.Limit,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, points, "")
}

// GetNearbyTowers handles radius searches for active towers
func (h *MapHandler) GetNearbyTowers(c echo.Context) error {
	var req NearbyRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid nearby query")
	}

	towers, err := h.mapUC.GetNearbyTowers(c.Request().Context(), &usecase.NearbyQuery{
		UserID:    req.UserID,
		Latitude:  req.Lat,
		Longitude: req.Lon,
		RadiusKm:  req.RadiusKm,
		Limit:     req.Limit,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, towers, "")
}

// GetMapSummary handles the global map counters
func (h *MapHandler) GetMapSummary(c echo.Context) error {
	summary, err := h.mapUC.GetMapSummary(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, summary, "")
}

// GetOccupiedBuildings handles the occupied landmark listing
func (h *MapHandler) GetOccupiedBuildings(c echo.Context) error {
	buildings, err := h.mapUC.GetOccupiedBuildings(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, buildings, "")
}
