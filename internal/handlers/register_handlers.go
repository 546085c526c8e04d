package handlers

import (
	"net/http"

	"github.com/evokeessence/evoke_backend/cmd/docs"
	"github.com/evokeessence/evoke_backend/internal/core/domain"
	portssvc "github.com/evokeessence/evoke_backend/internal/core/ports/services"
	"github.com/evokeessence/evoke_backend/internal/middleware"
	"github.com/evokeessence/evoke_backend/internal/platform/config"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"
)

// RouteDeps carries the optional infrastructure the routes are wrapped with.
// A nil RateLimiter or IdempotencyStore disables that middleware.
type RouteDeps struct {
	RateLimiter      *limiter.Limiter
	IdempotencyStore middleware.IdempotencyStore
}

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	deps RouteDeps,
) {
	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	setupAPIV1Routes(r, cfg, services, deps)

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	service *portssvc.ServiceContainer,
	deps RouteDeps,
) {
	public := r.Group("/api/v1")

	rateLimited := []gin.HandlerFunc{}
	if deps.RateLimiter != nil {
		rateLimited = append(rateLimited, middleware.RateLimit(deps.RateLimiter))
	}

	registerPublicCurrencyRoutes(public, service.Currency)
	registerExchangeRateRoutes(public.Group("", rateLimited...), service.ExchangeRate)
	registerPublicUserRoutes(public, service.User)

	// Apply AuthMiddleware to the authenticated part of v1
	authed := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret))

	idempotent := []gin.HandlerFunc{}
	if deps.IdempotencyStore != nil {
		idempotent = append(idempotent, middleware.Idempotency(deps.IdempotencyStore))
	}

	registerConversionRoutes(authed, service.Currency)
	registerCommissionRoutes(authed, service.Commission)
	registerUserRoutes(authed, service.User)
	registerDepositRoutes(authed, service.Deposit, idempotent...)

	admin := authed.Group("/admin", middleware.RequireRole(domain.RoleAdmin))
	registerAdminContractorRoutes(admin, service.Contractor)
	registerAdminDepositRoutes(admin, service.Deposit)
	registerAdminExchangeRateRoutes(admin, service.ExchangeRate)
	registerReportingRoutes(admin, service.Reporting)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
