package dto

import "github.com/dutytracker/timesheet_backend/internal/core/domain"

// RegisterEmployeeRequest is the self-service sign-up payload for employees.
type RegisterEmployeeRequest struct {
	Username      string `json:"username" binding:"required"`
	Password      string `json:"password" binding:"required,min=8"`
	EmployeeID    string `json:"employeeID" binding:"required,max=20"`
	Department    string `json:"department" binding:"required"`
	SubDepartment string `json:"subDepartment"`
}

// RegisterDepartmentHeadRequest is the sign-up payload for department heads.
type RegisterDepartmentHeadRequest struct {
	Username      string `json:"username" binding:"required"`
	Password      string `json:"password" binding:"required,min=8"`
	EmployeeID    string `json:"employeeID" binding:"required,max=20"`
	Department    string `json:"department" binding:"required"`
	SubDepartment string `json:"subDepartment"`
}

// LoginRequest carries sign-in credentials. Login accepts either an employee
// ID (employee and head sign-in) or a username (admin sign-in).
type LoginRequest struct {
	Login    string `json:"login" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse returns the signed access token.
type LoginResponse struct {
	Token string `json:"token"`
}

// ProfileResponse describes the caller's resolved role-profile.
type ProfileResponse struct {
	Kind           domain.RoleKind        `json:"kind"`
	Username       string                 `json:"username"`
	Employee       *domain.Employee       `json:"employee,omitempty"`
	DepartmentHead *domain.DepartmentHead `json:"departmentHead,omitempty"`
}

// ToProfileResponse converts a resolved role-profile to its response shape.
func ToProfileResponse(p *domain.RoleProfile) ProfileResponse {
	return ProfileResponse{
		Kind:           p.Kind,
		Username:       p.User.Username,
		Employee:       p.Employee,
		DepartmentHead: p.DepartmentHead,
	}
}
