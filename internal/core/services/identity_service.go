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
	"github.com/dutytracker/timesheet_backend/internal/utils"
	"github.com/google/uuid"
)

// identityService handles registration, credential checks and role-profile
// resolution.
type identityService struct {
	BaseService
	userRepo    portsrepo.UserRepositoryFacade
	profileRepo portsrepo.ProfileRepositoryFacade
}

// NewIdentityService creates a new identityService.
func NewIdentityService(userRepo portsrepo.UserRepositoryFacade, profileRepo portsrepo.ProfileRepositoryFacade) portssvc.IdentitySvcFacade {
	return &identityService{
		userRepo:    userRepo,
		profileRepo: profileRepo,
	}
}

// Ensure identityService implements the portssvc.IdentitySvcFacade interface
var _ portssvc.IdentitySvcFacade = (*identityService)(nil)

// validateDepartment checks the department code and the optional
// sub-department against the directory taxonomy.
func validateDepartment(department, subDepartment string) error {
	if !domain.IsKnownDepartment(department) {
		return fmt.Errorf("%w: unknown department %q", apperrors.ErrValidation, department)
	}
	if subDepartment == "" {
		return nil
	}
	for _, opt := range domain.SubDepartmentsFor(department) {
		if opt.Code == subDepartment {
			return nil
		}
	}
	return fmt.Errorf("%w: unknown sub-department %q for department %q", apperrors.ErrValidation, subDepartment, department)
}

// RegisterEmployee creates a user plus a pending employee profile in one
// transaction. The employee stays pending until a head allocates a post.
func (s *identityService) RegisterEmployee(ctx context.Context, req dto.RegisterEmployeeRequest) (*domain.Employee, error) {
	if err := validateDepartment(req.Department, req.SubDepartment); err != nil {
		return nil, err
	}

	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		s.LogError(ctx, err, "Failed to hash password during employee registration")
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	employeeID := req.EmployeeID
	user := domain.User{
		UserID:       uuid.NewString(),
		Username:     req.Username,
		PasswordHash: passwordHash,
		EmployeeID:   &employeeID,
		CreatedAt:    now,
	}
	employee := domain.Employee{
		EmployeeID: req.EmployeeID,
		UserID:     user.UserID,
		Username:   req.Username,
		Department: req.Department,
	}
	if req.SubDepartment != "" {
		subDept := req.SubDepartment
		employee.SubDepartment = &subDept
	}

	if err := s.profileRepo.CreateUserWithEmployee(ctx, user, employee); err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Employee registered",
		slog.String("employee_id", employee.EmployeeID),
		slog.String("department", employee.Department))
	return &employee, nil
}

// RegisterDepartmentHead creates a user plus a department head profile.
func (s *identityService) RegisterDepartmentHead(ctx context.Context, req dto.RegisterDepartmentHeadRequest) (*domain.DepartmentHead, error) {
	if err := validateDepartment(req.Department, req.SubDepartment); err != nil {
		return nil, err
	}

	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		s.LogError(ctx, err, "Failed to hash password during head registration")
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	employeeID := req.EmployeeID
	user := domain.User{
		UserID:       uuid.NewString(),
		Username:     req.Username,
		PasswordHash: passwordHash,
		EmployeeID:   &employeeID,
		CreatedAt:    now,
	}
	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		return nil, err
	}

	head := domain.DepartmentHead{
		EmployeeID: req.EmployeeID,
		UserID:     user.UserID,
		Username:   req.Username,
		Department: req.Department,
	}
	if req.SubDepartment != "" {
		subDept := req.SubDepartment
		head.SubDepartment = &subDept
	}
	if err := s.profileRepo.SaveDepartmentHead(ctx, head); err != nil {
		s.LogError(ctx, err, "Failed to save head profile after user creation",
			slog.String("user_id", user.UserID))
		return nil, err
	}

	s.LogInfo(ctx, "Department head registered",
		slog.String("employee_id", head.EmployeeID),
		slog.String("department", head.Department))
	return &head, nil
}

// Authenticate verifies credentials. The login value is matched against
// usernames first and role-profile employee IDs second; all failures collapse
// into ErrUnauthorized so callers cannot probe which part was wrong.
func (s *identityService) Authenticate(ctx context.Context, login, password string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByUsername(ctx, login)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("failed to look up user by username: %w", err)
		}
		user, err = s.userRepo.FindUserByProfileEmployeeID(ctx, login)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, apperrors.ErrUnauthorized
			}
			return nil, fmt.Errorf("failed to look up user by employee ID: %w", err)
		}
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		s.LogDebug(ctx, "Password mismatch", slog.String("user_id", user.UserID))
		return nil, apperrors.ErrUnauthorized
	}
	return user, nil
}

// ResolveRoleProfile classifies the authenticated user. The admin flag wins
// over any stored profile; a user with neither resolves to ErrUnauthorized so
// the session is terminated rather than left orphaned.
func (s *identityService) ResolveRoleProfile(ctx context.Context, userID string) (*domain.RoleProfile, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		return nil, fmt.Errorf("failed to load user for role resolution: %w", err)
	}

	if user.IsAdmin {
		return &domain.RoleProfile{Kind: domain.RoleAdmin, User: *user}, nil
	}

	employee, err := s.profileRepo.FindEmployeeByUserID(ctx, userID)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to load employee profile: %w", err)
	}
	if employee != nil {
		return &domain.RoleProfile{Kind: domain.RoleEmployee, User: *user, Employee: employee}, nil
	}

	head, err := s.profileRepo.FindDepartmentHeadByUserID(ctx, userID)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to load department head profile: %w", err)
	}
	if head != nil {
		return &domain.RoleProfile{Kind: domain.RoleDepartmentHead, User: *user, DepartmentHead: head}, nil
	}

	s.LogDebug(ctx, "User has no role profile", slog.String("user_id", userID))
	return nil, apperrors.ErrUnauthorized
}
