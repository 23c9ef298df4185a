package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ulule/limiter/v3"

	portssvc "github.com/hxudev/currency_exchange_api/internal/core/ports/services"
	"github.com/hxudev/currency_exchange_api/internal/middleware"
	"github.com/hxudev/currency_exchange_api/internal/platform/config"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	dbPool *pgxpool.Pool,
) {
	RegisterValidators()
	exposeErrorDetail = !cfg.IsProduction

	hh := newHealthHandler(dbPool)
	r.GET("/health", hh.health)

	r.NoRoute(func(c *gin.Context) {
		respondErrorCode(c, http.StatusNotFound, "Route not found", codeRouteNotFound)
	})

	root := r.Group("")
	if cfg.RateLimitEnabled {
		rate := limiter.Rate{Period: cfg.RateLimitPeriod, Limit: cfg.RateLimitMax}
		root.Use(middleware.RateLimit(middleware.NewIPRateLimiter(rate)))
	}

	registerAuthRoutes(root, services.Auth)
	registerCurrencyRoutes(root, services.Currency)
	registerUserRoutes(root, cfg, services.User)
	registerExchangeRateRoutes(root, services.ExchangeRate)
}
