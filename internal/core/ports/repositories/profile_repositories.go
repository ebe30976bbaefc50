package repositories

import (
	"context"

	"github.com/dutytracker/timesheet_backend/internal/core/domain"
)

// EmployeeReader defines read operations for employee role-profiles.
type EmployeeReader interface {
	// FindEmployeeByID retrieves an employee by their business employee ID.
	FindEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error)

	// FindEmployeeByUserID retrieves the employee profile owned by a user.
	FindEmployeeByUserID(ctx context.Context, userID string) (*domain.Employee, error)

	// ListEmployeesByDepartment retrieves all employees of a department,
	// ordered by employee ID.
	ListEmployeesByDepartment(ctx context.Context, department string) ([]domain.Employee, error)
}

// EmployeeWriter defines write operations for employee role-profiles.
type EmployeeWriter interface {
	// SaveEmployee persists a new employee profile. Duplicate employee IDs
	// surface as ErrDuplicate.
	SaveEmployee(ctx context.Context, employee domain.Employee) error

	// UpdateEmployeePost overwrites the employee's allocated post reference.
	// The previous reference is dropped without history.
	UpdateEmployeePost(ctx context.Context, employeeID string, allocatedPostID string) error

	// CreateUserWithEmployee persists a new user and its employee profile in
	// one transaction so a provisioning failure leaves neither row behind.
	CreateUserWithEmployee(ctx context.Context, user domain.User, employee domain.Employee) error
}

// DepartmentHeadReader defines read operations for department head profiles.
type DepartmentHeadReader interface {
	// FindDepartmentHeadByUserID retrieves the head profile owned by a user.
	FindDepartmentHeadByUserID(ctx context.Context, userID string) (*domain.DepartmentHead, error)
}

// DepartmentHeadWriter defines write operations for department head profiles.
type DepartmentHeadWriter interface {
	// SaveDepartmentHead persists a new department head profile.
	SaveDepartmentHead(ctx context.Context, head domain.DepartmentHead) error
}

// ProfileRepositoryFacade combines all role-profile repository interfaces.
type ProfileRepositoryFacade interface {
	EmployeeReader
	EmployeeWriter
	DepartmentHeadReader
	DepartmentHeadWriter
}
