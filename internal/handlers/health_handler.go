package handlers

import (
	"context"
	"net/http"
	"time"

	"finance-dashboard/internal/errors"
	"finance-dashboard/internal/services"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

const healthPingTimeout = 2 * time.Second

// HealthCheckHandler handles the health check endpoint
type HealthCheckHandler struct {
	db      *gorm.DB
	breaker services.StoreBreakerInterface
}

// NewHealthCheckHandler creates a new health check handler. breaker may be nil.
func NewHealthCheckHandler(db *gorm.DB, breaker services.StoreBreakerInterface) *HealthCheckHandler {
	return &HealthCheckHandler{db: db, breaker: breaker}
}

// HealthCheck pings the remote store
// @Summary Health check
// @Tags Health
// @Produce json
// @Success 200 {object} object{status=string,time=string,store_breaker=string} "Service is healthy"
// @Failure 503 {object} errors.ErrorResponse "SYSTEM_003 - Service unavailable (database connection failed)"
// @Router /health [get]
func (h *HealthCheckHandler) HealthCheck(c echo.Context) error {
	sqlDB, err := h.db.DB()
	if err != nil {
		return SendError(c, errors.SystemServiceUnavailable, errors.WithDetails("Database connection failed"))
	}

	ctx, cancel := context.WithTimeout(requestContext(c), healthPingTimeout)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		return SendError(c, errors.SystemServiceUnavailable, errors.WithDetails("Database connection failed"))
	}

	body := map[string]string{
		"status": "healthy",
		"time":   time.Now().UTC().Format(time.RFC3339),
	}
	if h.breaker != nil {
		body["store_breaker"] = h.breaker.GetState().String()
	}
	return c.JSON(http.StatusOK, body)
}
