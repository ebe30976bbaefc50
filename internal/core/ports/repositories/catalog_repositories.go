package repositories

import (
	"context"

	"github.com/dutytracker/timesheet_backend/internal/core/domain"
)

// CatalogReader defines read operations for the global post/duty name catalogs.
type CatalogReader interface {
	// ListPostNames retrieves all post-name catalog entries ordered by name.
	ListPostNames(ctx context.Context) ([]domain.PostName, error)

	// ListDutyNames retrieves all duty-name catalog entries ordered by name.
	ListDutyNames(ctx context.Context) ([]domain.DutyName, error)

	// FindPostNameByID retrieves a single post-name catalog entry.
	FindPostNameByID(ctx context.Context, postNameID string) (*domain.PostName, error)

	// FindDutyNameByID retrieves a single duty-name catalog entry.
	FindDutyNameByID(ctx context.Context, dutyNameID string) (*domain.DutyName, error)
}

// CatalogWriter defines write operations for the global post/duty name catalogs.
type CatalogWriter interface {
	// SavePostName persists a new post-name catalog entry. A duplicate name
	// surfaces as ErrDuplicate.
	SavePostName(ctx context.Context, postName domain.PostName) error

	// SaveDutyName persists a new duty-name catalog entry. A duplicate name
	// surfaces as ErrDuplicate.
	SaveDutyName(ctx context.Context, dutyName domain.DutyName) error
}

// AllocatedPostReader defines read operations for allocated posts.
type AllocatedPostReader interface {
	// FindAllocatedPostByID retrieves a single allocated post.
	FindAllocatedPostByID(ctx context.Context, allocatedPostID string) (*domain.AllocatedPost, error)

	// ListAllocatedPosts retrieves the posts of a department, optionally
	// narrowed to one sub-department, ordered by post name.
	ListAllocatedPosts(ctx context.Context, department string, subDepartment *string) ([]domain.AllocatedPost, error)
}

// AllocatedPostWriter defines write operations for allocated posts.
type AllocatedPostWriter interface {
	// SaveAllocatedPost persists a new allocated post. A duplicate
	// (department, sub_department, post_name) triple surfaces as ErrDuplicate.
	SaveAllocatedPost(ctx context.Context, post domain.AllocatedPost) error
}

// EmployeeDutyReader defines read operations for duty assignments.
type EmployeeDutyReader interface {
	// FindEmployeeDutyByID retrieves a single duty assignment.
	FindEmployeeDutyByID(ctx context.Context, employeeDutyID string) (*domain.EmployeeDuty, error)

	// ListDutiesByEmployee retrieves an employee's duty assignments ordered by
	// duty name.
	ListDutiesByEmployee(ctx context.Context, employeeID string) ([]domain.EmployeeDuty, error)

	// ListDutiesByDepartment retrieves all duty assignments of employees in a
	// department.
	ListDutiesByDepartment(ctx context.Context, department string) ([]domain.EmployeeDuty, error)
}

// EmployeeDutyWriter defines write operations for duty assignments.
type EmployeeDutyWriter interface {
	// SaveEmployeeDuty persists a new duty assignment. No uniqueness is
	// enforced; repeated assignments create distinct rows.
	SaveEmployeeDuty(ctx context.Context, duty domain.EmployeeDuty) error

	// DeleteEmployeeDuty removes a duty assignment. Referencing timesheet
	// entries are removed by the storage cascade.
	DeleteEmployeeDuty(ctx context.Context, employeeDutyID string) error
}

// CatalogRepositoryFacade combines all catalog-related repository interfaces.
type CatalogRepositoryFacade interface {
	CatalogReader
	CatalogWriter
	AllocatedPostReader
	AllocatedPostWriter
	EmployeeDutyReader
	EmployeeDutyWriter
}
