package services

import (
	"context"

	"github.com/dutytracker/timesheet_backend/internal/core/domain"
)

// ReportingSvcFacade covers the read-only report view and the spreadsheet
// export. Both run the same filter pipeline; only the serialization differs.
type ReportingSvcFacade interface {
	// TimesheetReport returns one page of the employee->timesheets report,
	// paginated at the fixed page size.
	TimesheetReport(ctx context.Context, filter domain.TimesheetReportFilter, page int) (*domain.TimesheetReportPage, error)

	// ExportRows returns the unpaginated flattened export rows for the filter.
	ExportRows(ctx context.Context, filter domain.TimesheetReportFilter) ([]domain.ReportRow, error)
}

// DirectorySvcFacade exposes the static department taxonomy.
type DirectorySvcFacade interface {
	// ListDepartments returns the registered departments in display order.
	ListDepartments(ctx context.Context) []domain.DepartmentOption

	// ListSubDepartments returns the ordered sub-departments of a department
	// code; unknown codes yield an empty list.
	ListSubDepartments(ctx context.Context, department string) []domain.DepartmentOption
}
