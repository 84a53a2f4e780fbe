package handlers

import (
	"context"
	"net/http"
	"time"

	apierrors "finance-tracker/internal/errors"

	"github.com/labstack/echo/v4"
)

// StorePinger reports whether the persisted store is reachable
type StorePinger interface {
	PingContext(ctx context.Context) error
}

// HealthCheckHandler handles the health check endpoint
type HealthCheckHandler struct {
	store StorePinger
}

// NewHealthCheckHandler creates a new health check handler
func NewHealthCheckHandler(store StorePinger) *HealthCheckHandler {
	return &HealthCheckHandler{store: store}
}

// HealthCheck reports API and database connectivity. Demonstration mode keeps
// working while the database is down, so the response says so.
// @Summary Health check
// @Tags Health
// @Produce json
// @Success 200 {object} object{status=string,time=string} "Service is healthy"
// @Failure 503 {object} errors.ErrorResponse "SYSTEM_003 - Service unavailable (database connection failed)"
// @Router /health [get]
func (h *HealthCheckHandler) HealthCheck(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
	defer cancel()

	if err := h.store.PingContext(ctx); err != nil {
		return SendError(c, apierrors.SystemServiceUnavailable,
			apierrors.WithDetails("Database connection failed", "Demonstration mode remains available"),
		)
	}

	return c.JSON(http.StatusOK, map[string]string{
		"status": "healthy",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}
