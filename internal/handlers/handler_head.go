package handlers

import (
	"log/slog"
	"net/http"

	"github.com/dutytracker/timesheet_backend/internal/core/domain"
	portssvc "github.com/dutytracker/timesheet_backend/internal/core/ports/services"
	"github.com/dutytracker/timesheet_backend/internal/dto"
	"github.com/dutytracker/timesheet_backend/internal/middleware"
	"github.com/dutytracker/timesheet_backend/internal/platform/config"
	"github.com/gin-gonic/gin"
)

// headHandler handles department head management routes: post and duty
// catalogs, employee provisioning and timesheet review.
type headHandler struct {
	catalogService   portssvc.CatalogSvcFacade
	timesheetService portssvc.TimesheetSvcFacade
	cfg              *config.Config
}

func newHeadHandler(cs portssvc.CatalogSvcFacade, ts portssvc.TimesheetSvcFacade, cfg *config.Config) *headHandler {
	return &headHandler{
		catalogService:   cs,
		timesheetService: ts,
		cfg:              cfg,
	}
}

// registerHeadRoutes registers routes for the department head role.
func registerHeadRoutes(rg *gin.RouterGroup, cfg *config.Config, identityService portssvc.IdentitySvcFacade, catalogService portssvc.CatalogSvcFacade, timesheetService portssvc.TimesheetSvcFacade) {
	h := newHeadHandler(catalogService, timesheetService, cfg)

	head := rg.Group("/head", middleware.RequireRole(identityService, domain.RoleDepartmentHead))
	{
		head.GET("/dashboard", h.dashboard)
		head.GET("/employees", h.listEmployees)
		head.POST("/employees", h.provisionEmployee)
		head.GET("/employees/:employeeID/timesheets", h.listEmployeeTimesheets)
		head.PUT("/employees/:employeeID/post", h.allocatePost)
		head.GET("/posts", h.listPosts)
		head.POST("/posts", h.createPost)
		head.GET("/post-names", h.listPostNames)
		head.GET("/duty-names", h.listDutyNames)
		head.GET("/duties", h.listDuties)
		head.POST("/duties", h.assignDuty)
		head.DELETE("/duties/:dutyID", h.removeDuty)
		head.POST("/timesheets/:timesheetID/status", h.transitionTimesheet)
	}
}

// dashboard returns the head's pending and approved counts.
func (h *headHandler) dashboard(c *gin.Context) {
	profile, ok := middleware.GetRoleProfileFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	pending, approved, err := h.timesheetService.DashboardCounts(c.Request.Context(), profile)
	if err != nil {
		respondServiceError(c, err, "Failed to load dashboard counts")
		return
	}
	c.JSON(http.StatusOK, dto.HeadDashboardResponse{
		Department:         profile.ScopeDepartment(),
		PendingTimesheets:  pending,
		ApprovedTimesheets: approved,
	})
}

func (h *headHandler) listEmployees(c *gin.Context) {
	profile, ok := middleware.GetRoleProfileFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	employees, err := h.catalogService.ListDepartmentEmployees(c.Request.Context(), profile)
	if err != nil {
		respondServiceError(c, err, "Failed to list employees")
		return
	}
	c.JSON(http.StatusOK, employees)
}

// provisionEmployee creates an employee account with the default password and
// an immediate post allocation.
func (h *headHandler) provisionEmployee(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	profile, ok := middleware.GetRoleProfileFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.ProvisionEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for ProvisionEmployee", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	employee, err := h.catalogService.ProvisionEmployee(c.Request.Context(), profile, req)
	if err != nil {
		respondServiceError(c, err, "Failed to provision employee")
		return
	}
	c.JSON(http.StatusCreated, dto.ProvisionEmployeeResponse{
		EmployeeID:      employee.EmployeeID,
		Username:        employee.Username,
		InitialPassword: h.cfg.DefaultEmployeePassword,
	})
}

func (h *headHandler) listEmployeeTimesheets(c *gin.Context) {
	profile, ok := middleware.GetRoleProfileFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	timesheets, err := h.timesheetService.ListEmployeeTimesheets(c.Request.Context(), profile, c.Param("employeeID"))
	if err != nil {
		respondServiceError(c, err, "Failed to list employee timesheets")
		return
	}
	c.JSON(http.StatusOK, timesheets)
}

// allocatePost points an employee at an allocated post, overwriting any
// previous allocation.
func (h *headHandler) allocatePost(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	profile, ok := middleware.GetRoleProfileFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.AllocatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for AllocatePost", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	if err := h.catalogService.AllocatePost(c.Request.Context(), profile, c.Param("employeeID"), req.AllocatedPostID); err != nil {
		respondServiceError(c, err, "Failed to allocate post")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *headHandler) listPosts(c *gin.Context) {
	profile, ok := middleware.GetRoleProfileFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	posts, err := h.catalogService.ListDepartmentPosts(c.Request.Context(), profile)
	if err != nil {
		respondServiceError(c, err, "Failed to list posts")
		return
	}
	c.JSON(http.StatusOK, posts)
}

func (h *headHandler) createPost(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	profile, ok := middleware.GetRoleProfileFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.CreateAllocatedPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateAllocatedPost", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	post, err := h.catalogService.CreateAllocatedPost(c.Request.Context(), profile, req)
	if err != nil {
		respondServiceError(c, err, "Failed to create post")
		return
	}
	c.JSON(http.StatusCreated, post)
}

func (h *headHandler) listPostNames(c *gin.Context) {
	names, err := h.catalogService.ListPostNames(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "Failed to list post names")
		return
	}
	c.JSON(http.StatusOK, names)
}

func (h *headHandler) listDutyNames(c *gin.Context) {
	names, err := h.catalogService.ListDutyNames(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "Failed to list duty names")
		return
	}
	c.JSON(http.StatusOK, names)
}

func (h *headHandler) listDuties(c *gin.Context) {
	profile, ok := middleware.GetRoleProfileFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	duties, err := h.catalogService.ListDepartmentDuties(c.Request.Context(), profile)
	if err != nil {
		respondServiceError(c, err, "Failed to list duties")
		return
	}
	c.JSON(http.StatusOK, duties)
}

func (h *headHandler) assignDuty(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	profile, ok := middleware.GetRoleProfileFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.AssignDutyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for AssignDuty", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	duty, err := h.catalogService.AssignDuty(c.Request.Context(), profile, req)
	if err != nil {
		respondServiceError(c, err, "Failed to assign duty")
		return
	}
	c.JSON(http.StatusCreated, duty)
}

func (h *headHandler) removeDuty(c *gin.Context) {
	profile, ok := middleware.GetRoleProfileFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.catalogService.RemoveDuty(c.Request.Context(), profile, c.Param("dutyID")); err != nil {
		respondServiceError(c, err, "Failed to remove duty")
		return
	}
	c.Status(http.StatusNoContent)
}

// transitionTimesheet moves a timesheet into Approved, Rejected or Rework.
func (h *headHandler) transitionTimesheet(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	profile, ok := middleware.GetRoleProfileFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.TransitionTimesheetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for Transition", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	if err := h.timesheetService.Transition(c.Request.Context(), profile, c.Param("timesheetID"), req.Status, req.Remark); err != nil {
		respondServiceError(c, err, "Failed to update timesheet status")
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": string(req.Status)})
}
