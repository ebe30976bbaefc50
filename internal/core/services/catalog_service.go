package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/dutytracker/timesheet_backend/internal/apperrors"
	"github.com/dutytracker/timesheet_backend/internal/core/domain"
	portsrepo "github.com/dutytracker/timesheet_backend/internal/core/ports/repositories"
	portssvc "github.com/dutytracker/timesheet_backend/internal/core/ports/services"
	"github.com/dutytracker/timesheet_backend/internal/dto"
	"github.com/dutytracker/timesheet_backend/internal/platform/config"
	"github.com/dutytracker/timesheet_backend/internal/utils"
	"github.com/google/uuid"
)

// catalogService handles post and duty management inside a caller's
// department scope.
type catalogService struct {
	BaseService
	cfg         *config.Config
	catalogRepo portsrepo.CatalogRepositoryFacade
	profileRepo portsrepo.ProfileRepositoryFacade
	userRepo    portsrepo.UserRepositoryFacade
}

// NewCatalogService creates a new catalogService.
func NewCatalogService(cfg *config.Config, catalogRepo portsrepo.CatalogRepositoryFacade, profileRepo portsrepo.ProfileRepositoryFacade, userRepo portsrepo.UserRepositoryFacade) portssvc.CatalogSvcFacade {
	return &catalogService{
		cfg:         cfg,
		catalogRepo: catalogRepo,
		profileRepo: profileRepo,
		userRepo:    userRepo,
	}
}

// Ensure catalogService implements the portssvc.CatalogSvcFacade interface
var _ portssvc.CatalogSvcFacade = (*catalogService)(nil)

// scopeDepartment extracts the caller's department boundary. Admins have no
// department of their own, so department-scoped mutations refuse them.
func scopeDepartment(caller *domain.RoleProfile) (string, error) {
	dept := caller.ScopeDepartment()
	if dept == "" {
		return "", fmt.Errorf("%w: no department scope for this action", apperrors.ErrForbidden)
	}
	return dept, nil
}

// ListPostNames returns the global post-name catalog.
func (s *catalogService) ListPostNames(ctx context.Context) ([]domain.PostName, error) {
	return s.catalogRepo.ListPostNames(ctx)
}

// ListDutyNames returns the global duty-name catalog.
func (s *catalogService) ListDutyNames(ctx context.Context) ([]domain.DutyName, error) {
	return s.catalogRepo.ListDutyNames(ctx)
}

// CreatePostName adds a new entry to the global post-name catalog. Only
// admins manage the shared catalogs.
func (s *catalogService) CreatePostName(ctx context.Context, caller *domain.RoleProfile, req dto.CreateCatalogNameRequest) (*domain.PostName, error) {
	if caller.Kind != domain.RoleAdmin {
		return nil, fmt.Errorf("%w: admin access required", apperrors.ErrForbidden)
	}

	postName := domain.PostName{
		PostNameID:  uuid.NewString(),
		Name:        req.Name,
		Description: req.Description,
		CreatedAt:   time.Now(),
	}
	if err := s.catalogRepo.SavePostName(ctx, postName); err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Post name created", slog.String("post_name", postName.Name))
	return &postName, nil
}

// CreateDutyName adds a new entry to the global duty-name catalog. Only
// admins manage the shared catalogs.
func (s *catalogService) CreateDutyName(ctx context.Context, caller *domain.RoleProfile, req dto.CreateCatalogNameRequest) (*domain.DutyName, error) {
	if caller.Kind != domain.RoleAdmin {
		return nil, fmt.Errorf("%w: admin access required", apperrors.ErrForbidden)
	}

	dutyName := domain.DutyName{
		DutyNameID:  uuid.NewString(),
		Name:        req.Name,
		Description: req.Description,
		CreatedAt:   time.Now(),
	}
	if err := s.catalogRepo.SaveDutyName(ctx, dutyName); err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Duty name created", slog.String("duty_name", dutyName.Name))
	return &dutyName, nil
}

// ListDepartmentEmployees lists the employees of the caller's department.
func (s *catalogService) ListDepartmentEmployees(ctx context.Context, caller *domain.RoleProfile) ([]domain.Employee, error) {
	dept, err := scopeDepartment(caller)
	if err != nil {
		return nil, err
	}
	return s.profileRepo.ListEmployeesByDepartment(ctx, dept)
}

// ListDepartmentPosts lists the caller's department posts, narrowed to the
// caller's sub-department when one is set.
func (s *catalogService) ListDepartmentPosts(ctx context.Context, caller *domain.RoleProfile) ([]domain.AllocatedPost, error) {
	dept, err := scopeDepartment(caller)
	if err != nil {
		return nil, err
	}
	var subDept *string
	if caller.DepartmentHead != nil {
		subDept = caller.DepartmentHead.SubDepartment
	}
	return s.catalogRepo.ListAllocatedPosts(ctx, dept, subDept)
}

// ListDepartmentDuties lists all duty assignments in the caller's department.
func (s *catalogService) ListDepartmentDuties(ctx context.Context, caller *domain.RoleProfile) ([]domain.EmployeeDuty, error) {
	dept, err := scopeDepartment(caller)
	if err != nil {
		return nil, err
	}
	return s.catalogRepo.ListDutiesByDepartment(ctx, dept)
}

// ListOwnDuties lists the calling employee's duty assignments.
func (s *catalogService) ListOwnDuties(ctx context.Context, caller *domain.RoleProfile) ([]domain.EmployeeDuty, error) {
	if caller.Employee == nil {
		return nil, fmt.Errorf("%w: no employee profile", apperrors.ErrForbidden)
	}
	return s.catalogRepo.ListDutiesByEmployee(ctx, caller.Employee.EmployeeID)
}

// CreateAllocatedPost creates a post instance in the caller's scope from an
// existing catalog post name.
func (s *catalogService) CreateAllocatedPost(ctx context.Context, caller *domain.RoleProfile, req dto.CreateAllocatedPostRequest) (*domain.AllocatedPost, error) {
	dept, err := scopeDepartment(caller)
	if err != nil {
		return nil, err
	}

	postName, err := s.catalogRepo.FindPostNameByID(ctx, req.PostNameID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: post name %s not found", apperrors.ErrValidation, req.PostNameID)
		}
		return nil, fmt.Errorf("failed to look up post name: %w", err)
	}

	post := domain.AllocatedPost{
		AllocatedPostID: uuid.NewString(),
		Department:      dept,
		PostNameID:      postName.PostNameID,
		PostName:        postName.Name,
		Description:     req.Description,
		CreatedAt:       time.Now(),
	}
	if caller.DepartmentHead != nil {
		post.SubDepartment = caller.DepartmentHead.SubDepartment
		createdBy := caller.DepartmentHead.EmployeeID
		post.CreatedBy = &createdBy
	}

	if err := s.catalogRepo.SaveAllocatedPost(ctx, post); err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Allocated post created",
		slog.String("allocated_post_id", post.AllocatedPostID),
		slog.String("department", post.Department),
		slog.String("post_name", post.PostName))
	return &post, nil
}

// AllocatePost points an employee at an existing allocated post, overwriting
// any previous allocation. Both the employee and the post must belong to the
// caller's department.
func (s *catalogService) AllocatePost(ctx context.Context, caller *domain.RoleProfile, employeeID, allocatedPostID string) error {
	dept, err := scopeDepartment(caller)
	if err != nil {
		return err
	}

	employee, err := s.profileRepo.FindEmployeeByID(ctx, employeeID)
	if err != nil {
		return err
	}
	if employee.Department != dept {
		return fmt.Errorf("%w: employee %s is not in your department", apperrors.ErrForbidden, employeeID)
	}

	post, err := s.catalogRepo.FindAllocatedPostByID(ctx, allocatedPostID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("%w: allocated post %s not found", apperrors.ErrValidation, allocatedPostID)
		}
		return fmt.Errorf("failed to look up allocated post: %w", err)
	}
	if post.Department != dept {
		return fmt.Errorf("%w: post %s belongs to another department", apperrors.ErrValidation, allocatedPostID)
	}

	if err := s.profileRepo.UpdateEmployeePost(ctx, employeeID, allocatedPostID); err != nil {
		return err
	}

	s.LogInfo(ctx, "Post allocated to employee",
		slog.String("employee_id", employeeID),
		slog.String("allocated_post_id", allocatedPostID))
	return nil
}

// AssignDuty adds a duty assignment to an employee in the caller's department.
// Repeat assignments create distinct rows.
func (s *catalogService) AssignDuty(ctx context.Context, caller *domain.RoleProfile, req dto.AssignDutyRequest) (*domain.EmployeeDuty, error) {
	dept, err := scopeDepartment(caller)
	if err != nil {
		return nil, err
	}

	employee, err := s.profileRepo.FindEmployeeByID(ctx, req.EmployeeID)
	if err != nil {
		return nil, err
	}
	if employee.Department != dept {
		return nil, fmt.Errorf("%w: employee %s is not in your department", apperrors.ErrForbidden, req.EmployeeID)
	}

	dutyName, err := s.catalogRepo.FindDutyNameByID(ctx, req.DutyNameID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: duty name %s not found", apperrors.ErrValidation, req.DutyNameID)
		}
		return nil, fmt.Errorf("failed to look up duty name: %w", err)
	}

	duty := domain.EmployeeDuty{
		EmployeeDutyID: uuid.NewString(),
		EmployeeID:     employee.EmployeeID,
		DutyNameID:     dutyName.DutyNameID,
		DutyName:       dutyName.Name,
		Description:    req.Description,
		CreatedAt:      time.Now(),
	}
	if err := s.catalogRepo.SaveEmployeeDuty(ctx, duty); err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Duty assigned",
		slog.String("employee_id", duty.EmployeeID),
		slog.String("duty_name", duty.DutyName))
	return &duty, nil
}

// RemoveDuty deletes a duty assignment. The assignment's employee must be in
// the caller's department; the storage cascade drops dependent timesheet
// entries.
func (s *catalogService) RemoveDuty(ctx context.Context, caller *domain.RoleProfile, employeeDutyID string) error {
	dept, err := scopeDepartment(caller)
	if err != nil {
		return err
	}

	duty, err := s.catalogRepo.FindEmployeeDutyByID(ctx, employeeDutyID)
	if err != nil {
		return err
	}
	employee, err := s.profileRepo.FindEmployeeByID(ctx, duty.EmployeeID)
	if err != nil {
		return fmt.Errorf("failed to load duty's employee: %w", err)
	}
	if employee.Department != dept {
		return fmt.Errorf("%w: duty %s belongs to another department", apperrors.ErrForbidden, employeeDutyID)
	}

	if err := s.catalogRepo.DeleteEmployeeDuty(ctx, employeeDutyID); err != nil {
		return err
	}

	s.LogInfo(ctx, "Duty removed",
		slog.String("employee_duty_id", employeeDutyID),
		slog.String("employee_id", duty.EmployeeID))
	return nil
}

// ProvisionEmployee creates a user with the configured default password plus
// an employee profile in the caller's department, allocated to the given
// post. The username is checked before the employee ID so a collision on both
// reports the username first.
func (s *catalogService) ProvisionEmployee(ctx context.Context, caller *domain.RoleProfile, req dto.ProvisionEmployeeRequest) (*domain.Employee, error) {
	dept, err := scopeDepartment(caller)
	if err != nil {
		return nil, err
	}

	post, err := s.catalogRepo.FindAllocatedPostByID(ctx, req.AllocatedPostID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: allocated post %s not found", apperrors.ErrValidation, req.AllocatedPostID)
		}
		return nil, fmt.Errorf("failed to look up allocated post: %w", err)
	}
	if post.Department != dept {
		return nil, fmt.Errorf("%w: post %s belongs to another department", apperrors.ErrValidation, req.AllocatedPostID)
	}

	if _, err := s.userRepo.FindUserByUsername(ctx, req.Username); err == nil {
		return nil, fmt.Errorf("%w: username %s is already taken", apperrors.ErrDuplicate, req.Username)
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check username availability: %w", err)
	}
	if _, err := s.profileRepo.FindEmployeeByID(ctx, req.EmployeeID); err == nil {
		return nil, fmt.Errorf("%w: employee ID %s already exists", apperrors.ErrDuplicate, req.EmployeeID)
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check employee ID availability: %w", err)
	}

	passwordHash, err := utils.HashPassword(s.cfg.DefaultEmployeePassword)
	if err != nil {
		s.LogError(ctx, err, "Failed to hash default password during provisioning")
		return nil, fmt.Errorf("failed to hash default password: %w", err)
	}

	employeeID := req.EmployeeID
	allocatedPostID := req.AllocatedPostID
	user := domain.User{
		UserID:       uuid.NewString(),
		Username:     req.Username,
		PasswordHash: passwordHash,
		EmployeeID:   &employeeID,
		CreatedAt:    time.Now(),
	}
	employee := domain.Employee{
		EmployeeID:      req.EmployeeID,
		UserID:          user.UserID,
		Username:        req.Username,
		Department:      dept,
		SubDepartment:   post.SubDepartment,
		AllocatedPostID: &allocatedPostID,
	}

	if err := s.profileRepo.CreateUserWithEmployee(ctx, user, employee); err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Employee provisioned",
		slog.String("employee_id", employee.EmployeeID),
		slog.String("department", employee.Department),
		slog.String("allocated_post_id", req.AllocatedPostID))
	return &employee, nil
}
