package handler

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/deppfellow/pokemon-api/internal/middleware"
	"github.com/deppfellow/pokemon-api/internal/server"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// HealthHandler reports whether the service and its dependencies are reachable.
type HealthHandler struct {
	Handler
}

func NewHealthHandler(s *server.Server) *HealthHandler {
	return &HealthHandler{
		Handler: NewHandler(s),
	}
}

type healthCheck struct {
	name string
	ping func(ctx context.Context) error
}

// checks returns the configured dependency checks that can run.
func (h *HealthHandler) checks() []healthCheck {
	obs := h.server.Config.Observability

	var checks []healthCheck
	if obs.HasCheck("database") && h.server.DB != nil {
		checks = append(checks, healthCheck{name: "database", ping: h.server.DB.Pool.Ping})
	}
	if obs.HasCheck("redis") && h.server.Redis != nil {
		checks = append(checks, healthCheck{name: "redis", ping: func(ctx context.Context) error {
			return h.server.Redis.Ping(ctx).Err()
		}})
	}
	return checks
}

func (h *HealthHandler) recordHealthError(attrs map[string]interface{}) {
	if h.server.LoggerService != nil && h.server.LoggerService.GetApplication() != nil {
		attrs["operation"] = "health_check"
		h.server.LoggerService.GetApplication().RecordCustomEvent("HealthCheckError", attrs)
	}
}

// CheckHealth returns 200 when every configured check passes and 503 otherwise.
func (h *HealthHandler) CheckHealth(c echo.Context) error {
	start := time.Now()

	logger := middleware.GetLogger(c).With().
		Str("operation", "health_check").
		Logger()

	checks := make(map[string]interface{})
	response := map[string]interface{}{
		"status":      "healthy",
		"timestamp":   time.Now().UTC(),
		"environment": h.server.Config.Primary.Env,
		"checks":      checks,
	}

	isHealthy := true
	timeout := h.server.Config.Observability.HealthChecks.Timeout

	for _, check := range h.checks() {
		if err := h.runCheck(c.Request().Context(), check, timeout, checks, logger); err != nil {
			isHealthy = false
		}
	}

	if !isHealthy {
		response["status"] = "unhealthy"

		logger.Warn().
			Dur("total_duration", time.Since(start)).
			Msg("health check failed")

		h.recordHealthError(map[string]interface{}{
			"check_type":        "overall",
			"error_type":        "overall_unhealthy",
			"total_duration_ms": time.Since(start).Milliseconds(),
		})

		return c.JSON(http.StatusServiceUnavailable, response)
	}

	logger.Info().
		Dur("total_duration", time.Since(start)).
		Msg("health check passed")

	if err := c.JSON(http.StatusOK, response); err != nil {
		logger.Error().Err(err).Msg("failed to write JSON response")
		return fmt.Errorf("failed to write JSON response: %w", err)
	}

	return nil
}

func (h *HealthHandler) runCheck(
	parent context.Context,
	check healthCheck,
	timeout time.Duration,
	results map[string]interface{},
	logger zerolog.Logger,
) error {
	ctx, cancel := context.WithTimeout(parent, timeout)
	defer cancel()

	checkStart := time.Now()
	err := check.ping(ctx)
	elapsed := time.Since(checkStart)

	if err != nil {
		results[check.name] = map[string]interface{}{
			"status":        "unhealthy",
			"response_time": elapsed.String(),
			"error":         err.Error(),
		}

		logger.Error().
			Err(err).
			Dur("response_time", elapsed).
			Msgf("%s health check failed", check.name)

		h.recordHealthError(map[string]interface{}{
			"check_type":       check.name,
			"error_type":       check.name + "_unhealthy",
			"response_time_ms": elapsed.Milliseconds(),
			"error_message":    err.Error(),
		})
		return err
	}

	results[check.name] = map[string]interface{}{
		"status":        "healthy",
		"response_time": elapsed.String(),
	}

	logger.Info().
		Dur("response_time", elapsed).
		Msgf("%s health check passed", check.name)
	return nil
}
