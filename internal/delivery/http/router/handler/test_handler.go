package handler

import (
	"net/http"

	deliverycontext "bosskill/internal/delivery/context"
	"bosskill/internal/delivery/http/response"

	"github.com/labstack/echo/v4"
)

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}

// TestHandler handles test endpoints for middleware validation
type TestHandler struct{}

// NewTestHandler creates a new TestHandler instance
func NewTestHandler() *TestHandler {
	return &TestHandler{}
}

// TestPublicEndpoint tests a public endpoint and echoes the request id the
// middleware assigned
func (h *TestHandler) TestPublicEndpoint(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]any{
		"message":    "Public endpoint test successful",
		"status":     "public",
		"request_id": deliverycontext.GetRequestID(c),
	}, "Public endpoint test successful")
}
