package dto

import (
	"github.com/dutytracker/timesheet_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SubmitTimesheetRequest creates a timesheet for one date. DutyHours maps the
// employee's duty assignment IDs to hours worked; zero or omitted duties are
// skipped.
type SubmitTimesheetRequest struct {
	Date      string                     `json:"date" binding:"required"` // YYYY-MM-DD
	DutyHours map[string]decimal.Decimal `json:"dutyHours"`
}

// TransitionTimesheetRequest moves a timesheet into a review status.
type TransitionTimesheetRequest struct {
	Status domain.TimesheetStatus `json:"status" binding:"required"`
	Remark string                 `json:"remark"`
}

// EmployeeDashboardResponse is the employee landing payload. When Pending is
// true the submission form must not be offered.
type EmployeeDashboardResponse struct {
	Pending    bool                  `json:"pending"`
	Employee   *domain.Employee      `json:"employee,omitempty"`
	Duties     []domain.EmployeeDuty `json:"duties,omitempty"`
	Timesheets []domain.Timesheet    `json:"timesheets,omitempty"`
}

// HeadDashboardResponse carries the department head's summary counts.
type HeadDashboardResponse struct {
	Department         string `json:"department"`
	PendingTimesheets  int    `json:"pendingTimesheets"`
	ApprovedTimesheets int    `json:"approvedTimesheets"`
}
