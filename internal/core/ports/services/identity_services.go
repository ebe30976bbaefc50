package services

import (
	"context"

	"github.com/dutytracker/timesheet_backend/internal/core/domain"
	"github.com/dutytracker/timesheet_backend/internal/dto"
)

// IdentitySvcFacade covers registration, credential checks and per-request
// role-profile resolution.
type IdentitySvcFacade interface {
	// RegisterEmployee creates a user plus a pending employee profile.
	RegisterEmployee(ctx context.Context, req dto.RegisterEmployeeRequest) (*domain.Employee, error)

	// RegisterDepartmentHead creates a user plus a department head profile.
	RegisterDepartmentHead(ctx context.Context, req dto.RegisterDepartmentHeadRequest) (*domain.DepartmentHead, error)

	// Authenticate verifies credentials. Login is matched against usernames
	// first and role-profile employee IDs second. Failures of either step
	// surface as ErrUnauthorized without distinguishing the cause.
	Authenticate(ctx context.Context, login, password string) (*domain.User, error)

	// ResolveRoleProfile classifies the authenticated user. A user with
	// neither a profile nor the admin flag resolves to ErrUnauthorized so the
	// session is terminated rather than left orphaned.
	ResolveRoleProfile(ctx context.Context, userID string) (*domain.RoleProfile, error)
}
