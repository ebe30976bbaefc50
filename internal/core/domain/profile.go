package domain

// Employee is the role-profile of a regular employee. An employee without an
// allocated post is pending and cannot submit timesheets.
type Employee struct {
	EmployeeID      string  `json:"employeeID"` // Business key, unique
	UserID          string  `json:"userID"`
	Username        string  `json:"username"`
	Department      string  `json:"department"`
	SubDepartment   *string `json:"subDepartment,omitempty"`
	AllocatedPostID *string `json:"allocatedPostID,omitempty"`
}

// IsPending reports whether the employee is still waiting for a post allocation.
func (e Employee) IsPending() bool {
	return e.AllocatedPostID == nil
}

// DepartmentHead is the role-profile of a department head. All mutations a
// head performs must target entities inside its own department.
type DepartmentHead struct {
	EmployeeID    string  `json:"employeeID"`
	UserID        string  `json:"userID"`
	Username      string  `json:"username"`
	Department    string  `json:"department"`
	SubDepartment *string `json:"subDepartment,omitempty"`
}

// RoleKind classifies the resolved role-profile of an authenticated user.
type RoleKind string

const (
	RoleUnassigned     RoleKind = "UNASSIGNED"
	RoleEmployee       RoleKind = "EMPLOYEE"
	RoleDepartmentHead RoleKind = "DEPARTMENT_HEAD"
	RoleAdmin          RoleKind = "ADMIN"
)

// RoleProfile is the tagged union of a user's role resolved once per request.
// Exactly one of Employee/DepartmentHead is set for the matching kind; admins
// carry neither. A user with no profile and no admin flag is Unassigned and
// must be treated as an invalid session.
type RoleProfile struct {
	Kind           RoleKind        `json:"kind"`
	User           User            `json:"user"`
	Employee       *Employee       `json:"employee,omitempty"`
	DepartmentHead *DepartmentHead `json:"departmentHead,omitempty"`
}

// ScopeDepartment returns the department boundary of the profile, or empty for
// admins (unscoped) and unassigned users.
func (p RoleProfile) ScopeDepartment() string {
	switch p.Kind {
	case RoleEmployee:
		return p.Employee.Department
	case RoleDepartmentHead:
		return p.DepartmentHead.Department
	}
	return ""
}
