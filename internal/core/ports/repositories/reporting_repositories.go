package repositories

import (
	"context"

	"github.com/dutytracker/timesheet_backend/internal/core/domain"
)

// ReportingRepository defines the read-only aggregation query behind the
// report view and the spreadsheet export.
type ReportingRepository interface {
	// FindEmployeeTimesheetGroups selects employees matching the department
	// filters (ordered by employee ID), attaches their timesheets matching the
	// status/date filters, and drops employees with zero matches.
	FindEmployeeTimesheetGroups(ctx context.Context, filter domain.TimesheetReportFilter) ([]domain.EmployeeTimesheetGroup, error)
}
