package services

import (
	"context"
	"time"

	"github.com/dutytracker/timesheet_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TimesheetSvcFacade covers the timesheet lifecycle.
type TimesheetSvcFacade interface {
	// SubmitTimesheet creates a timesheet in Submitted state for the calling
	// employee. Pending employees (no allocated post) are refused with
	// ErrValidation. Entries are created only for duties with hours > 0.
	SubmitTimesheet(ctx context.Context, caller *domain.RoleProfile, date time.Time, dutyHours map[string]decimal.Decimal) (*domain.Timesheet, error)

	// ListOwnTimesheets returns the calling employee's history, newest first.
	ListOwnTimesheets(ctx context.Context, caller *domain.RoleProfile) ([]domain.Timesheet, error)

	// ListEmployeeTimesheets returns one department employee's timesheets for
	// a department head.
	ListEmployeeTimesheets(ctx context.Context, caller *domain.RoleProfile, employeeID string) ([]domain.Timesheet, error)

	// ListAllTimesheets returns every timesheet. Admin only.
	ListAllTimesheets(ctx context.Context, caller *domain.RoleProfile) ([]domain.Timesheet, error)

	// Transition moves a timesheet into Approved, Rejected or Rework and
	// records the reviewer's remark. Heads are held to their department scope;
	// approved timesheets are final.
	Transition(ctx context.Context, caller *domain.RoleProfile, timesheetID string, target domain.TimesheetStatus, remark string) error

	// DashboardCounts returns the head's pending and approved counts.
	DashboardCounts(ctx context.Context, caller *domain.RoleProfile) (pending int, approved int, err error)
}
