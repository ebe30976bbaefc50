package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/dutytracker/timesheet_backend/internal/core/domain"
	portssvc "github.com/dutytracker/timesheet_backend/internal/core/ports/services"
	"github.com/dutytracker/timesheet_backend/internal/dto"
	"github.com/dutytracker/timesheet_backend/internal/middleware"
	"github.com/dutytracker/timesheet_backend/internal/spreadsheet"
	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// reportHandler serves the filtered report view and its spreadsheet export.
type reportHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

func newReportHandler(rs portssvc.ReportingSvcFacade) *reportHandler {
	return &reportHandler{reportingService: rs}
}

// registerReportRoutes registers the report routes for reviewers.
func registerReportRoutes(rg *gin.RouterGroup, identityService portssvc.IdentitySvcFacade, reportingService portssvc.ReportingSvcFacade) {
	h := newReportHandler(reportingService)

	reports := rg.Group("/reports", middleware.RequireRole(identityService, domain.RoleDepartmentHead, domain.RoleAdmin))
	{
		reports.GET("/timesheets", h.timesheetReport)
		reports.POST("/timesheets/export", h.exportTimesheets)
	}
}

// buildReportFilter converts the bound query parameters into a domain filter.
func buildReportFilter(params dto.TimesheetReportParams) (domain.TimesheetReportFilter, error) {
	filter := domain.TimesheetReportFilter{
		Department:    params.Department,
		SubDepartment: params.SubDepartment,
	}
	if params.Status != "" {
		status := domain.TimesheetStatus(params.Status)
		if !status.Valid() {
			return filter, fmt.Errorf("unknown status %q", params.Status)
		}
		filter.Status = status
	}
	if params.DateFrom != "" {
		from, err := time.Parse("2006-01-02", params.DateFrom)
		if err != nil {
			return filter, fmt.Errorf("invalid date_from, expected YYYY-MM-DD")
		}
		filter.DateFrom = &from
	}
	if params.DateTo != "" {
		to, err := time.Parse("2006-01-02", params.DateTo)
		if err != nil {
			return filter, fmt.Errorf("invalid date_to, expected YYYY-MM-DD")
		}
		filter.DateTo = &to
	}
	return filter, nil
}

// timesheetReport returns one page of the employee->timesheets report.
func (h *reportHandler) timesheetReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.TimesheetReportParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind report query", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	filter, err := buildReportFilter(params)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	page, err := h.reportingService.TimesheetReport(c.Request.Context(), filter, params.Page)
	if err != nil {
		respondServiceError(c, err, "Failed to build report")
		return
	}
	c.JSON(http.StatusOK, page)
}

// exportTimesheets streams the filtered report as an xlsx attachment. The
// export honours the same filters as the report view; pagination does not
// apply.
func (h *reportHandler) exportTimesheets(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.TimesheetReportParams
	if err := c.ShouldBind(&params); err != nil {
		logger.Warn("Failed to bind export parameters", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid parameters: " + err.Error()})
		return
	}

	filter, err := buildReportFilter(params)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rows, err := h.reportingService.ExportRows(c.Request.Context(), filter)
	if err != nil {
		respondServiceError(c, err, "Failed to build export")
		return
	}

	c.Header("Content-Disposition", `attachment; filename="timesheets_report.xlsx"`)
	c.Header("Content-Type", xlsxContentType)
	if err := spreadsheet.WriteTimesheetReport(c.Writer, rows); err != nil {
		logger.Error("Failed to write workbook", slog.String("error", err.Error()))
		// Headers are already out; the truncated body is all we can signal with.
		c.Abort()
		return
	}
	c.Status(http.StatusOK)
}
