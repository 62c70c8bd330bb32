package router

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/octobees/vendor-matching/internal/auth"
	"github.com/octobees/vendor-matching/internal/config"
	"github.com/octobees/vendor-matching/internal/handler"
	middlewarepkg "github.com/octobees/vendor-matching/internal/middleware"
)

// Handlers aggregates HTTP handlers used by the router.
type Handlers struct {
	Health  *handler.HealthHandler
	Match   *handler.MatchHandler
	Vendors *handler.VendorsHandler
	Metrics http.Handler
}

// Register wires all HTTP routes for the API.
func Register(e *echo.Echo, cfg *config.Config, jwtManager *auth.JWTManager, handlers Handlers) {
	e.GET("/healthz", handlers.Health.Health)
	if handlers.Metrics != nil {
		e.GET("/metrics", echo.WrapHandler(handlers.Metrics))
	}

	e.GET("/vendors/categories", handlers.Vendors.Categories)
	e.GET("/vendors/regions", handlers.Vendors.Regions)

	secured := e.Group("")
	secured.Use(middlewarepkg.JWT(jwtManager))

	secured.POST("/vendors/match", handlers.Match.Match, middlewarepkg.MatchRateLimiter(cfg.RateLimitMatch))

	admin := secured.Group("/admin", middlewarepkg.RequireRole(cfg.AdminRole))
	admin.GET("/vendors", handlers.Vendors.ListAdmin)
	admin.GET("/vendors/:id", handlers.Vendors.GetAdmin)
}
