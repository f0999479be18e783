package router

import (
	"github.com/deppfellow/pokemon-api/internal/handler"
	"github.com/labstack/echo/v4"
)

// registerSystemRoutes registers the health check and the OpenAPI docs.
func registerSystemRoutes(r *echo.Echo, h *handler.Handlers) {
	r.GET("/status", h.Health.CheckHealth)

	r.Static("/static", handler.StaticDir)
	r.GET("/docs", h.OpenAPI.ServeOpenAPIUI)
}
