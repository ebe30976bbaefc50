package repositories

import (
	"context"

	"github.com/dutytracker/timesheet_backend/internal/core/domain"
)

// TimesheetReader defines read operations for timesheets.
type TimesheetReader interface {
	// FindTimesheetByID retrieves a timesheet header with its entries.
	FindTimesheetByID(ctx context.Context, timesheetID string) (*domain.Timesheet, error)

	// ListTimesheetsByEmployee retrieves an employee's timesheets with entries,
	// newest submission first.
	ListTimesheetsByEmployee(ctx context.Context, employeeID string) ([]domain.Timesheet, error)

	// ListAllTimesheets retrieves every timesheet with entries, newest
	// submission first. Admin use only.
	ListAllTimesheets(ctx context.Context) ([]domain.Timesheet, error)

	// CountTimesheetsByStatus counts a department's timesheets in the given
	// statuses.
	CountTimesheetsByStatus(ctx context.Context, department string, statuses []domain.TimesheetStatus) (int, error)
}

// TimesheetWriter defines write operations for timesheets.
type TimesheetWriter interface {
	// SaveTimesheet persists a timesheet header and its entries in one
	// transaction.
	SaveTimesheet(ctx context.Context, timesheet domain.Timesheet) error

	// UpdateTimesheetReview overwrites a timesheet's status and the remark of
	// the acting reviewer. A nil remark leaves that field untouched. Unknown
	// IDs surface as ErrNotFound.
	UpdateTimesheetReview(ctx context.Context, timesheetID string, status domain.TimesheetStatus, headRemark *string, adminRemark *string) error
}

// TimesheetRepositoryFacade combines all timesheet repository interfaces.
type TimesheetRepositoryFacade interface {
	TimesheetReader
	TimesheetWriter
}
