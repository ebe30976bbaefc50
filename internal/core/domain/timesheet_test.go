package domain_test

import (
	"testing"

	"github.com/dutytracker/timesheet_backend/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCheckTransition(t *testing.T) {
	// A reviewer may move any non-approved timesheet into a review status.
	assert.NoError(t, domain.CheckTransition(domain.StatusSubmitted, domain.StatusApproved))
	assert.NoError(t, domain.CheckTransition(domain.StatusSubmitted, domain.StatusRejected))
	assert.NoError(t, domain.CheckTransition(domain.StatusRework, domain.StatusApproved))
	assert.NoError(t, domain.CheckTransition(domain.StatusRejected, domain.StatusApproved))

	// Approved timesheets are final.
	assert.Error(t, domain.CheckTransition(domain.StatusApproved, domain.StatusRejected))
	assert.Error(t, domain.CheckTransition(domain.StatusApproved, domain.StatusRework))

	// Only review statuses are valid targets.
	assert.Error(t, domain.CheckTransition(domain.StatusSubmitted, domain.StatusOpen))
	assert.Error(t, domain.CheckTransition(domain.StatusSubmitted, domain.StatusSubmitted))
	assert.Error(t, domain.CheckTransition(domain.StatusSubmitted, domain.TimesheetStatus("Bogus")))
}

func TestValidateHours(t *testing.T) {
	assert.NoError(t, domain.ValidateHours(decimal.Zero))
	assert.NoError(t, domain.ValidateHours(decimal.RequireFromString("2.50")))
	assert.NoError(t, domain.ValidateHours(decimal.RequireFromString("99.99")))

	assert.Error(t, domain.ValidateHours(decimal.RequireFromString("-1")))
	assert.Error(t, domain.ValidateHours(decimal.RequireFromString("2.505")))
	assert.Error(t, domain.ValidateHours(decimal.RequireFromString("100")))
}

func TestFlattenReportGroups(t *testing.T) {
	subDept := "CSE"
	post := "Lab Assistant"
	groups := []domain.EmployeeTimesheetGroup{
		{
			Employee: domain.ReportEmployee{EmployeeID: "EMP001", Username: "jdoe", Department: "SOE", SubDepartment: &subDept, PostName: &post},
			Timesheets: []domain.Timesheet{{
				Status: domain.StatusApproved,
				Entries: []domain.TimesheetEntry{
					{DutyName: "Invigilation", Hours: decimal.RequireFromString("2.50")},
					{DutyName: "Lab Supervision", Hours: decimal.RequireFromString("1.25")},
				},
			}},
		},
		{
			Employee: domain.ReportEmployee{EmployeeID: "EMP002", Username: "asmith", Department: "SOE"},
			Timesheets: []domain.Timesheet{{
				Status:  domain.StatusSubmitted,
				Entries: []domain.TimesheetEntry{{DutyName: "Invigilation", Hours: decimal.NewFromInt(4)}},
			}},
		},
	}

	rows := domain.FlattenReportGroups(groups)

	assert.Len(t, rows, 3)
	assert.Equal(t, "EMP001", rows[0].EmployeeID)
	assert.Equal(t, "CSE", rows[0].SubDepartment)
	assert.Equal(t, "Lab Assistant", rows[0].Post)
	assert.Equal(t, "Lab Supervision", rows[1].Duty)

	// Missing sub-department and post render as a dash.
	assert.Equal(t, "-", rows[2].SubDepartment)
	assert.Equal(t, "-", rows[2].Post)
}
