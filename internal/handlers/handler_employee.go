package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/dutytracker/timesheet_backend/internal/core/domain"
	portssvc "github.com/dutytracker/timesheet_backend/internal/core/ports/services"
	"github.com/dutytracker/timesheet_backend/internal/dto"
	"github.com/dutytracker/timesheet_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// employeeHandler handles the employee dashboard and timesheet submission.
type employeeHandler struct {
	catalogService   portssvc.CatalogSvcFacade
	timesheetService portssvc.TimesheetSvcFacade
}

func newEmployeeHandler(cs portssvc.CatalogSvcFacade, ts portssvc.TimesheetSvcFacade) *employeeHandler {
	return &employeeHandler{
		catalogService:   cs,
		timesheetService: ts,
	}
}

// registerEmployeeRoutes registers routes for the employee role.
func registerEmployeeRoutes(rg *gin.RouterGroup, identityService portssvc.IdentitySvcFacade, catalogService portssvc.CatalogSvcFacade, timesheetService portssvc.TimesheetSvcFacade) {
	h := newEmployeeHandler(catalogService, timesheetService)

	employee := rg.Group("/employee", middleware.RequireRole(identityService, domain.RoleEmployee))
	{
		employee.GET("/dashboard", h.dashboard)
		employee.GET("/timesheets", h.listTimesheets)
		employee.POST("/timesheets", h.submitTimesheet)
	}
}

// dashboard returns the employee landing payload: the pending flag, the
// employee's duties and their submission history.
func (h *employeeHandler) dashboard(c *gin.Context) {
	profile, ok := middleware.GetRoleProfileFromContext(c)
	if !ok || profile.Employee == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	resp := dto.EmployeeDashboardResponse{
		Pending:  profile.Employee.IsPending(),
		Employee: profile.Employee,
	}
	if resp.Pending {
		// A pending employee has nothing to submit against yet.
		c.JSON(http.StatusOK, resp)
		return
	}

	duties, err := h.catalogService.ListOwnDuties(c.Request.Context(), profile)
	if err != nil {
		respondServiceError(c, err, "Failed to load duties")
		return
	}
	timesheets, err := h.timesheetService.ListOwnTimesheets(c.Request.Context(), profile)
	if err != nil {
		respondServiceError(c, err, "Failed to load timesheets")
		return
	}
	resp.Duties = duties
	resp.Timesheets = timesheets
	c.JSON(http.StatusOK, resp)
}

// listTimesheets returns the employee's own history, newest first.
func (h *employeeHandler) listTimesheets(c *gin.Context) {
	profile, ok := middleware.GetRoleProfileFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	timesheets, err := h.timesheetService.ListOwnTimesheets(c.Request.Context(), profile)
	if err != nil {
		respondServiceError(c, err, "Failed to load timesheets")
		return
	}
	c.JSON(http.StatusOK, timesheets)
}

// submitTimesheet creates a Submitted timesheet for one date from the posted
// duty-hours map.
func (h *employeeHandler) submitTimesheet(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	profile, ok := middleware.GetRoleProfileFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.SubmitTimesheetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for SubmitTimesheet", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date, expected YYYY-MM-DD"})
		return
	}

	timesheet, err := h.timesheetService.SubmitTimesheet(c.Request.Context(), profile, date, req.DutyHours)
	if err != nil {
		respondServiceError(c, err, "Failed to submit timesheet")
		return
	}
	c.JSON(http.StatusCreated, timesheet)
}
