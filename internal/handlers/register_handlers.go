package handlers

import (
	portssvc "github.com/dutytracker/timesheet_backend/internal/core/ports/services"
	"github.com/dutytracker/timesheet_backend/internal/middleware"
	"github.com/dutytracker/timesheet_backend/internal/platform/config"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	// Register public authentication and directory routes
	registerAuthRoutes(r, cfg, services.Identity)
	registerDirectoryRoutes(r, services.Directory)

	// Setup API v1 routes with Auth Middleware, passing service interfaces
	setupAPIV1Routes(r, cfg, services)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	// Apply AuthMiddleware to the entire v1 group
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret))

	// Delegate route registration to specific handlers, passing required services
	registerProfileRoutes(v1, services.Identity)
	registerEmployeeRoutes(v1, services.Identity, services.Catalog, services.Timesheet)
	registerHeadRoutes(v1, cfg, services.Identity, services.Catalog, services.Timesheet)
	registerReportRoutes(v1, services.Identity, services.Reporting)
	registerAdminRoutes(v1, services.Identity, services.Timesheet, services.Catalog)
}
