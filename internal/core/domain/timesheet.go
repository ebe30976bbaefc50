package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// TimesheetStatus is the lifecycle state of a timesheet.
type TimesheetStatus string

const (
	StatusOpen      TimesheetStatus = "Open"
	StatusSubmitted TimesheetStatus = "Submitted"
	StatusApproved  TimesheetStatus = "Approved"
	StatusRework    TimesheetStatus = "Rework"
	StatusRejected  TimesheetStatus = "Rejected"
)

// TimesheetStatuses lists all valid statuses in display order.
var TimesheetStatuses = []TimesheetStatus{
	StatusOpen, StatusSubmitted, StatusApproved, StatusRework, StatusRejected,
}

// Valid reports whether s is a known timesheet status.
func (s TimesheetStatus) Valid() bool {
	switch s {
	case StatusOpen, StatusSubmitted, StatusApproved, StatusRework, StatusRejected:
		return true
	}
	return false
}

// IsTransitionTarget reports whether s is a status a reviewer may move a
// timesheet into.
func (s TimesheetStatus) IsTransitionTarget() bool {
	switch s {
	case StatusApproved, StatusRejected, StatusRework:
		return true
	}
	return false
}

// CheckTransition validates a status transition. Reviewers may move any
// non-approved timesheet into Approved, Rejected or Rework; an approved
// timesheet is final.
func CheckTransition(from, to TimesheetStatus) error {
	if !to.IsTransitionTarget() {
		return fmt.Errorf("%q is not a valid review action", to)
	}
	if from == StatusApproved {
		return fmt.Errorf("timesheet is already approved and cannot be changed")
	}
	return nil
}

// MaxEntryHours is the largest value a single entry may hold (numeric(4,2)).
var MaxEntryHours = decimal.NewFromFloat(99.99)

// ValidateHours checks that an entry's hours fit the storage constraints:
// non-negative, at most two decimal places, no more than 99.99.
func ValidateHours(hours decimal.Decimal) error {
	if hours.IsNegative() {
		return fmt.Errorf("hours must not be negative")
	}
	if hours.Exponent() < -2 {
		return fmt.Errorf("hours must have at most two decimal places")
	}
	if hours.GreaterThan(MaxEntryHours) {
		return fmt.Errorf("hours must not exceed %s", MaxEntryHours)
	}
	return nil
}

// Timesheet is the header row of one employee's duty-hours for one date. The
// department is a snapshot of the employee's department at submission time;
// later transfers do not rewrite history.
type Timesheet struct {
	TimesheetID          string           `json:"timesheetID"` // Primary Key (UUID)
	EmployeeID           string           `json:"employeeID"`
	Date                 time.Time        `json:"date"`
	Department           string           `json:"department"`
	Status               TimesheetStatus  `json:"status"`
	SubmittedAt          time.Time        `json:"submittedAt"`
	AdminRemark          *string          `json:"adminRemark,omitempty"`
	DepartmentHeadRemark *string          `json:"departmentHeadRemark,omitempty"`
	Entries              []TimesheetEntry `json:"entries,omitempty"`
}

// TimesheetEntry records the hours worked against one duty on a timesheet.
type TimesheetEntry struct {
	EntryID        string          `json:"entryID"` // Primary Key (UUID)
	TimesheetID    string          `json:"timesheetID"`
	EmployeeDutyID string          `json:"employeeDutyID"`
	DutyName       string          `json:"dutyName"` // Denormalized catalog label for display
	Hours          decimal.Decimal `json:"hours"`
}
