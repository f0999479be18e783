// Package router initializes the HTTP router (using Echo).
//
// It registers the middlewares and defines the API route groups,
// mapping specific paths to their corresponding handlers.
package router

import (
	"github.com/deppfellow/pokemon-api/internal/handler"
	"github.com/deppfellow/pokemon-api/internal/middleware"
	"github.com/deppfellow/pokemon-api/internal/server"
	"github.com/labstack/echo/v4"
)

// NewRouter builds the Echo instance with global middleware, system routes
// and the /api groups.
func NewRouter(s *server.Server, h *handler.Handlers) *echo.Echo {
	middlewares := middleware.NewMiddlewares(s)

	router := echo.New()
	router.HideBanner = true
	router.HidePort = true
	router.HTTPErrorHandler = middlewares.Global.GlobalErrorHandler

	router.Use(
		middlewares.RateLimit.Limit(),
		middlewares.Global.CORS(),
		middlewares.Global.Secure(),
		middleware.RequestID(),
		middlewares.Tracing.NewRelicMiddleware(),
		middlewares.Tracing.EnhanceTracing(),
		middlewares.ContextEnhancer.EnhanceContext(),
		middlewares.Global.RequestLogger(),
		middlewares.Global.Recover(),
	)

	registerSystemRoutes(router, h)

	api := router.Group("/api")
	registerPokemonRoutes(api, h.Pokemon)
	registerCategoryRoutes(api, h.Category)
	registerCountryRoutes(api, h.Country)
	registerOwnerRoutes(api, h.Owner)
	registerReviewRoutes(api, h.Review)
	registerReviewerRoutes(api, h.Reviewer)

	return router
}
