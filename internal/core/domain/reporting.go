package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReportPageSize is the fixed number of employees per report page.
const ReportPageSize = 20

// TimesheetReportFilter narrows the report and export queries. Zero values
// mean "no filter" for that dimension.
type TimesheetReportFilter struct {
	Department    string
	SubDepartment string
	Status        TimesheetStatus
	DateFrom      *time.Time
	DateTo        *time.Time
}

// ReportEmployee is the employee header of a report group.
type ReportEmployee struct {
	EmployeeID    string  `json:"employeeID"`
	Username      string  `json:"username"`
	Department    string  `json:"department"`
	SubDepartment *string `json:"subDepartment,omitempty"`
	PostName      *string `json:"postName,omitempty"`
}

// EmployeeTimesheetGroup pairs an employee with their timesheets that matched
// the filter. Employees with zero matching timesheets are dropped before
// pagination.
type EmployeeTimesheetGroup struct {
	Employee   ReportEmployee `json:"employee"`
	Timesheets []Timesheet    `json:"timesheets"`
}

// TimesheetReportPage is one page of the employee->timesheets report.
type TimesheetReportPage struct {
	Groups     []EmployeeTimesheetGroup `json:"groups"`
	Page       int                      `json:"page"`
	TotalPages int                      `json:"totalPages"`
	TotalCount int                      `json:"totalCount"` // Employees with matches, before pagination
}

// ReportRow is one flattened (employee, timesheet, entry) tuple of the export.
type ReportRow struct {
	EmployeeID    string
	Name          string
	Department    string
	SubDepartment string
	Post          string
	Duty          string
	Date          time.Time
	Hours         decimal.Decimal
	Status        TimesheetStatus
}

// missingValue is the placeholder for absent post and sub-department values.
const missingValue = "-"

// FlattenReportGroups expands report groups into export rows, one per
// (employee, timesheet, entry) tuple, preserving group order.
func FlattenReportGroups(groups []EmployeeTimesheetGroup) []ReportRow {
	rows := []ReportRow{}
	for _, g := range groups {
		subDept := missingValue
		if g.Employee.SubDepartment != nil && *g.Employee.SubDepartment != "" {
			subDept = *g.Employee.SubDepartment
		}
		post := missingValue
		if g.Employee.PostName != nil && *g.Employee.PostName != "" {
			post = *g.Employee.PostName
		}
		for _, ts := range g.Timesheets {
			for _, entry := range ts.Entries {
				rows = append(rows, ReportRow{
					EmployeeID:    g.Employee.EmployeeID,
					Name:          g.Employee.Username,
					Department:    g.Employee.Department,
					SubDepartment: subDept,
					Post:          post,
					Duty:          entry.DutyName,
					Date:          ts.Date,
					Hours:         entry.Hours,
					Status:        ts.Status,
				})
			}
		}
	}
	return rows
}
