package handlers

import (
	"log/slog"
	"net/http"

	"github.com/dutytracker/timesheet_backend/internal/core/domain"
	portssvc "github.com/dutytracker/timesheet_backend/internal/core/ports/services"
	"github.com/dutytracker/timesheet_backend/internal/dto"
	"github.com/dutytracker/timesheet_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// adminHandler handles the admin-only oversight routes.
type adminHandler struct {
	timesheetService portssvc.TimesheetSvcFacade
	catalogService   portssvc.CatalogSvcFacade
}

func newAdminHandler(ts portssvc.TimesheetSvcFacade, cs portssvc.CatalogSvcFacade) *adminHandler {
	return &adminHandler{timesheetService: ts, catalogService: cs}
}

// registerAdminRoutes registers routes for the admin role.
func registerAdminRoutes(rg *gin.RouterGroup, identityService portssvc.IdentitySvcFacade, timesheetService portssvc.TimesheetSvcFacade, catalogService portssvc.CatalogSvcFacade) {
	h := newAdminHandler(timesheetService, catalogService)

	admin := rg.Group("/admin", middleware.RequireRole(identityService, domain.RoleAdmin))
	{
		admin.GET("/timesheets", h.listAllTimesheets)
		admin.POST("/timesheets/:timesheetID/status", h.transitionTimesheet)
		admin.POST("/post-names", h.createPostName)
		admin.POST("/duty-names", h.createDutyName)
	}
}

func (h *adminHandler) listAllTimesheets(c *gin.Context) {
	profile, ok := middleware.GetRoleProfileFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	timesheets, err := h.timesheetService.ListAllTimesheets(c.Request.Context(), profile)
	if err != nil {
		respondServiceError(c, err, "Failed to list timesheets")
		return
	}
	c.JSON(http.StatusOK, timesheets)
}

// transitionTimesheet lets the admin review any timesheet; the remark lands
// in the admin remark field.
func (h *adminHandler) transitionTimesheet(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	profile, ok := middleware.GetRoleProfileFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.TransitionTimesheetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for admin Transition", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	if err := h.timesheetService.Transition(c.Request.Context(), profile, c.Param("timesheetID"), req.Status, req.Remark); err != nil {
		respondServiceError(c, err, "Failed to update timesheet status")
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": string(req.Status)})
}

func (h *adminHandler) createPostName(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	profile, ok := middleware.GetRoleProfileFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.CreateCatalogNameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreatePostName", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	postName, err := h.catalogService.CreatePostName(c.Request.Context(), profile, req)
	if err != nil {
		respondServiceError(c, err, "Failed to create post name")
		return
	}
	c.JSON(http.StatusCreated, postName)
}

func (h *adminHandler) createDutyName(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	profile, ok := middleware.GetRoleProfileFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.CreateCatalogNameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateDutyName", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	dutyName, err := h.catalogService.CreateDutyName(c.Request.Context(), profile, req)
	if err != nil {
		respondServiceError(c, err, "Failed to create duty name")
		return
	}
	c.JSON(http.StatusCreated, dutyName)
}
