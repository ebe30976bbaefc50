package domain

import "time"

// PostName is a catalog entry for a standard post label.
type PostName struct {
	PostNameID  string    `json:"postNameID"` // Primary Key (UUID)
	Name        string    `json:"name"`       // Unique
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}

// DutyName is a catalog entry for a standard duty label.
type DutyName struct {
	DutyNameID  string    `json:"dutyNameID"` // Primary Key (UUID)
	Name        string    `json:"name"`       // Unique
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}

// AllocatedPost is a concrete post instance scoped to a department and
// sub-department. The (department, sub_department, post_name) triple is unique.
type AllocatedPost struct {
	AllocatedPostID string    `json:"allocatedPostID"` // Primary Key (UUID)
	Department      string    `json:"department"`
	SubDepartment   *string   `json:"subDepartment,omitempty"`
	PostNameID      string    `json:"postNameID"`
	PostName        string    `json:"postName"` // Denormalized catalog label for display
	Description     string    `json:"description"`
	CreatedBy       *string   `json:"createdBy,omitempty"` // Department head employee ID
	CreatedAt       time.Time `json:"createdAt"`
}

// EmployeeDuty assigns a duty name to an employee. The same duty name may be
// assigned to one employee multiple times as distinct rows.
type EmployeeDuty struct {
	EmployeeDutyID string    `json:"employeeDutyID"` // Primary Key (UUID)
	EmployeeID     string    `json:"employeeID"`
	DutyNameID     string    `json:"dutyNameID"`
	DutyName       string    `json:"dutyName"` // Denormalized catalog label for display
	Description    string    `json:"description"`
	CreatedAt      time.Time `json:"createdAt"`
}
