package services

import (
	"context"

	"github.com/dutytracker/timesheet_backend/internal/core/domain"
	portssvc "github.com/dutytracker/timesheet_backend/internal/core/ports/services"
)

// directoryService exposes the static department taxonomy.
type directoryService struct {
	BaseService
}

// NewDirectoryService creates a new directoryService.
func NewDirectoryService() portssvc.DirectorySvcFacade {
	return &directoryService{}
}

var _ portssvc.DirectorySvcFacade = (*directoryService)(nil)

// ListDepartments returns the registered departments in display order.
func (s *directoryService) ListDepartments(ctx context.Context) []domain.DepartmentOption {
	out := make([]domain.DepartmentOption, len(domain.Departments))
	copy(out, domain.Departments)
	return out
}

// ListSubDepartments returns the ordered sub-departments of a department code.
// Unknown codes yield an empty list.
func (s *directoryService) ListSubDepartments(ctx context.Context, department string) []domain.DepartmentOption {
	return domain.SubDepartmentsFor(department)
}
