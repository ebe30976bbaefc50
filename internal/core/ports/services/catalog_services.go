package services

import (
	"context"

	"github.com/dutytracker/timesheet_backend/internal/core/domain"
	"github.com/dutytracker/timesheet_backend/internal/dto"
)

// CatalogSvcFacade covers post and duty management. Every mutation is scoped
// by the caller's resolved role-profile: department heads act only inside
// their own department, admins are unscoped.
type CatalogSvcFacade interface {
	// ListPostNames returns the global post-name catalog ordered by name.
	ListPostNames(ctx context.Context) ([]domain.PostName, error)

	// ListDutyNames returns the global duty-name catalog ordered by name.
	ListDutyNames(ctx context.Context) ([]domain.DutyName, error)

	// CreatePostName adds an entry to the global post-name catalog (admin only).
	CreatePostName(ctx context.Context, caller *domain.RoleProfile, req dto.CreateCatalogNameRequest) (*domain.PostName, error)

	// CreateDutyName adds an entry to the global duty-name catalog (admin only).
	CreateDutyName(ctx context.Context, caller *domain.RoleProfile, req dto.CreateCatalogNameRequest) (*domain.DutyName, error)

	// ListDepartmentEmployees lists the employees of the caller's department.
	ListDepartmentEmployees(ctx context.Context, caller *domain.RoleProfile) ([]domain.Employee, error)

	// ListDepartmentPosts lists the caller's department posts, narrowed to the
	// caller's sub-department when one is set.
	ListDepartmentPosts(ctx context.Context, caller *domain.RoleProfile) ([]domain.AllocatedPost, error)

	// ListDepartmentDuties lists all duty assignments in the caller's department.
	ListDepartmentDuties(ctx context.Context, caller *domain.RoleProfile) ([]domain.EmployeeDuty, error)

	// ListOwnDuties lists the calling employee's duty assignments.
	ListOwnDuties(ctx context.Context, caller *domain.RoleProfile) ([]domain.EmployeeDuty, error)

	// CreateAllocatedPost creates a post instance in the caller's scope. A
	// duplicate (department, sub_department, post_name) triple is ErrDuplicate.
	CreateAllocatedPost(ctx context.Context, caller *domain.RoleProfile, req dto.CreateAllocatedPostRequest) (*domain.AllocatedPost, error)

	// AllocatePost points an employee at an existing allocated post,
	// overwriting any previous allocation.
	AllocatePost(ctx context.Context, caller *domain.RoleProfile, employeeID, allocatedPostID string) error

	// AssignDuty adds a duty assignment to an employee in the caller's
	// department. Repeat assignments create distinct rows.
	AssignDuty(ctx context.Context, caller *domain.RoleProfile, req dto.AssignDutyRequest) (*domain.EmployeeDuty, error)

	// RemoveDuty deletes a duty assignment. The assignment's employee must be
	// in the caller's department.
	RemoveDuty(ctx context.Context, caller *domain.RoleProfile, employeeDutyID string) error

	// ProvisionEmployee creates a user with the documented default password
	// plus an employee profile in the caller's department, allocated to the
	// given post. Duplicate usernames are rejected before duplicate employee IDs.
	ProvisionEmployee(ctx context.Context, caller *domain.RoleProfile, req dto.ProvisionEmployeeRequest) (*domain.Employee, error)
}
