package handlers

import (
	"fmt"
	"slices"
	"time"

	"github.com/SscSPs/hrops_backend/cmd/docs"
	portssvc "github.com/SscSPs/hrops_backend/internal/core/ports/services"
	"github.com/SscSPs/hrops_backend/internal/middleware"
	"github.com/SscSPs/hrops_backend/internal/platform/config"
	"github.com/SscSPs/hrops_backend/internal/utils"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const apiV1Prefix = "/api/v1"

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	analytics *utils.PosthogClientWrapper,
) error {
	RegisterValidators()

	r.Use(cors.New(corsConfig(cfg.CORSAllowedOrigins)))

	// Add health check route
	r.GET("/health", healthCheck)

	if err := setupAPIV1Routes(r, cfg, services, analytics); err != nil {
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
	analytics *utils.PosthogClientWrapper,
) error {
	credentialLimiter, err := middleware.NewMemoryLimiter(cfg.LoginRateLimit)
	if err != nil {
		return fmt.Errorf("invalid LOGIN_RATE_LIMIT %q: %w", cfg.LoginRateLimit, err)
	}

	// Auth and the settings read stay open during maintenance so admins can sign in
	// and clients can show the message.
	v1 := r.Group(apiV1Prefix,
		middleware.MaintenanceGate(services.Setting, cfg.JWTSecret, services.User,
			apiV1Prefix+"/auth", apiV1Prefix+"/settings"),
		middleware.PosthogMiddleware(analytics),
	)

	requireAuth := middleware.AuthMiddleware(cfg.JWTSecret, services.User)

	registerAuthRoutes(v1, requireAuth, middleware.RateLimit(credentialLimiter), services.Auth, cfg.VerifySuccessRedirect)
	registerSettingRoutes(v1, requireAuth, services.Setting)

	protected := v1.Group("", requireAuth)

	// Delegate route registration to specific handlers, passing required services
	registerUserRoutes(protected, services.User)
	registerProjectRoutes(protected, services.Project)
	registerTaskRoutes(protected, services.Task)
	registerAttendanceRoutes(protected, services.Attendance)
	registerWorkReportRoutes(protected, services.WorkReport)
	registerPerformanceRoutes(protected, services.Performance)
	registerPayrollRoutes(protected, services.Payroll)
	registerWorkplaceRoutes(protected, services.Workplace)
	registerReportingRoutes(protected, services.Reporting, services.Attendance.WorkDate)
	return nil
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID"},
		ExposeHeaders: []string{"X-Request-ID", "X-RateLimit-Limit", "X-RateLimit-Remaining"},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || slices.Contains(origins, "*") {
		cfg.AllowAllOrigins = true
		return cfg
	}
	cfg.AllowOrigins = origins
	cfg.AllowCredentials = true
	return cfg
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	// Swagger setup
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = apiV1Prefix
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
