package handlers

import (
	"fmt"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/SscSPs/estate_commission/cmd/commission_api/docs"
	portssvc "github.com/SscSPs/estate_commission/internal/core/ports/services"
	"github.com/SscSPs/estate_commission/internal/middleware"
	"github.com/SscSPs/estate_commission/internal/observability/metrics"
	"github.com/SscSPs/estate_commission/internal/platform/config"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	m *metrics.Metrics,
	pinger Pinger,
) error {
	r.GET("/health", getHealth(pinger))
	r.GET("/metrics", gin.WrapH(m.Handler()))

	if err := setupAPIV1Routes(r, cfg, services, m); err != nil {
		return err
	}

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)
	return nil
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	m *metrics.Metrics,
) error {
	limiter, err := middleware.NewLimiter(cfg.RateLimit)
	if err != nil {
		return fmt.Errorf("invalid RATE_LIMIT %q: %w", cfg.RateLimit, err)
	}

	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret, cfg.JWTIssuer), middleware.RateLimit(limiter))
	RegisterCompanyRoutes(v1, services, m)
	return nil
}

// RegisterCompanyRoutes registers every company scoped route under /companies/:company_id.
func RegisterCompanyRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer, m *metrics.Metrics) {
	company := rg.Group("/companies/:company_id")
	registerPaymentRoutes(company, services.Payment)
	registerSettingsRoutes(company, services.Settings)
	registerReportingRoutes(company, services.Report, m)
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
