package handlers

import (
	"net/http"

	"github.com/SscSPs/billing_ledger_app/cmd/docs"
	portssvc "github.com/SscSPs/billing_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/billing_ledger_app/internal/dto"
	"github.com/SscSPs/billing_ledger_app/internal/middleware"
	"github.com/SscSPs/billing_ledger_app/internal/platform/config"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces.
// v1Middleware runs after authentication on every /api/v1 route.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	cal dto.CivilFormatter,
	v1Middleware ...gin.HandlerFunc,
) {

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	// Setup API v1 routes with Auth Middleware, passing service interfaces
	setupAPIV1Routes(r, cfg, services, cal, v1Middleware)

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	cal dto.CivilFormatter,
	v1Middleware []gin.HandlerFunc,
) {
	// Apply AuthMiddleware to the entire v1 group
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret))
	v1.Use(v1Middleware...)

	companies := v1.Group("/companies/:company_id")
	RegisterPartyRoutes(companies, services.Ledger, services.Aging, cal)
}

// RegisterPartyRoutes registers the customer and supplier report routes on a company group.
func RegisterPartyRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerSvc, agingService portssvc.AgingSvc, cal dto.CivilFormatter) {
	registerLedgerRoutes(rg, ledgerService, cal)
	registerAgingRoutes(rg, agingService, cal)
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
