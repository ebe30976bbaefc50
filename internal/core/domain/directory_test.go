package domain_test

import (
	"testing"

	"github.com/dutytracker/timesheet_backend/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestDepartments(t *testing.T) {
	assert.Len(t, domain.Departments, 3)
	assert.True(t, domain.IsKnownDepartment("ADM"))
	assert.True(t, domain.IsKnownDepartment("SOE"))
	assert.True(t, domain.IsKnownDepartment("SLS"))
	assert.False(t, domain.IsKnownDepartment("soe"))
	assert.False(t, domain.IsKnownDepartment(""))
}

func TestSubDepartmentsFor(t *testing.T) {
	soe := domain.SubDepartmentsFor("SOE")
	assert.Len(t, soe, 5)
	assert.Equal(t, "CSE", soe[0].Code)

	// Unknown codes yield an empty list, never an error.
	assert.Empty(t, domain.SubDepartmentsFor("NOPE"))
	assert.NotNil(t, domain.SubDepartmentsFor("NOPE"))
}
