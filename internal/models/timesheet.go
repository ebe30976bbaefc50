package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// Timesheet is the database row for a timesheet header.
type Timesheet struct {
	TimesheetID          string         `db:"timesheet_id"`
	EmployeeID           string         `db:"employee_id"`
	Date                 time.Time      `db:"date"`
	Department           string         `db:"department"`
	Status               string         `db:"status"`
	SubmittedAt          time.Time      `db:"submitted_at"`
	AdminRemark          sql.NullString `db:"admin_remark"`
	DepartmentHeadRemark sql.NullString `db:"department_head_remark"`
}

// TimesheetEntry is the database row for a timesheet line entry. DutyName is
// joined in from the catalog on read.
type TimesheetEntry struct {
	EntryID        string          `db:"entry_id"`
	TimesheetID    string          `db:"timesheet_id"`
	EmployeeDutyID string          `db:"employee_duty_id"`
	DutyName       string          `db:"duty_name"`
	Hours          decimal.Decimal `db:"hours"`
}
