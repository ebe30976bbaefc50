package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/dutytracker/timesheet_backend/internal/apperrors"
	"github.com/dutytracker/timesheet_backend/internal/core/domain"
	portsrepo "github.com/dutytracker/timesheet_backend/internal/core/ports/repositories"
	portssvc "github.com/dutytracker/timesheet_backend/internal/core/ports/services"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// timesheetService handles the timesheet lifecycle from submission through
// review.
type timesheetService struct {
	BaseService
	timesheetRepo portsrepo.TimesheetRepositoryFacade
	catalogRepo   portsrepo.CatalogRepositoryFacade
	profileRepo   portsrepo.ProfileRepositoryFacade
}

// NewTimesheetService creates a new timesheetService.
func NewTimesheetService(timesheetRepo portsrepo.TimesheetRepositoryFacade, catalogRepo portsrepo.CatalogRepositoryFacade, profileRepo portsrepo.ProfileRepositoryFacade) portssvc.TimesheetSvcFacade {
	return &timesheetService{
		timesheetRepo: timesheetRepo,
		catalogRepo:   catalogRepo,
		profileRepo:   profileRepo,
	}
}

// Ensure timesheetService implements the portssvc.TimesheetSvcFacade interface
var _ portssvc.TimesheetSvcFacade = (*timesheetService)(nil)

// SubmitTimesheet creates a timesheet in Submitted state for the calling
// employee. Zero-hour duties are skipped; each remaining duty must belong to
// the caller. The department is snapshotted onto the timesheet so later
// transfers do not rewrite history.
func (s *timesheetService) SubmitTimesheet(ctx context.Context, caller *domain.RoleProfile, date time.Time, dutyHours map[string]decimal.Decimal) (*domain.Timesheet, error) {
	if caller.Employee == nil {
		return nil, fmt.Errorf("%w: only employees submit timesheets", apperrors.ErrForbidden)
	}
	if caller.Employee.IsPending() {
		return nil, fmt.Errorf("%w: no post allocated yet, contact your department head", apperrors.ErrValidation)
	}

	timesheet := domain.Timesheet{
		TimesheetID: uuid.NewString(),
		EmployeeID:  caller.Employee.EmployeeID,
		Date:        date,
		Department:  caller.Employee.Department,
		Status:      domain.StatusSubmitted,
		SubmittedAt: time.Now(),
		Entries:     []domain.TimesheetEntry{},
	}

	for employeeDutyID, hours := range dutyHours {
		if hours.IsZero() {
			continue
		}
		if err := domain.ValidateHours(hours); err != nil {
			return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
		duty, err := s.catalogRepo.FindEmployeeDutyByID(ctx, employeeDutyID)
		if err != nil {
			return nil, fmt.Errorf("%w: unknown duty %s", apperrors.ErrValidation, employeeDutyID)
		}
		if duty.EmployeeID != caller.Employee.EmployeeID {
			return nil, fmt.Errorf("%w: duty %s is not assigned to you", apperrors.ErrValidation, employeeDutyID)
		}
		timesheet.Entries = append(timesheet.Entries, domain.TimesheetEntry{
			EntryID:        uuid.NewString(),
			TimesheetID:    timesheet.TimesheetID,
			EmployeeDutyID: duty.EmployeeDutyID,
			DutyName:       duty.DutyName,
			Hours:          hours,
		})
	}
	// Map iteration order is random; store entries in a stable order.
	sort.Slice(timesheet.Entries, func(i, j int) bool {
		return timesheet.Entries[i].DutyName < timesheet.Entries[j].DutyName
	})

	if err := s.timesheetRepo.SaveTimesheet(ctx, timesheet); err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Timesheet submitted",
		slog.String("timesheet_id", timesheet.TimesheetID),
		slog.String("employee_id", timesheet.EmployeeID),
		slog.Int("entries", len(timesheet.Entries)))
	return &timesheet, nil
}

// ListOwnTimesheets returns the calling employee's history, newest first.
func (s *timesheetService) ListOwnTimesheets(ctx context.Context, caller *domain.RoleProfile) ([]domain.Timesheet, error) {
	if caller.Employee == nil {
		return nil, fmt.Errorf("%w: no employee profile", apperrors.ErrForbidden)
	}
	return s.timesheetRepo.ListTimesheetsByEmployee(ctx, caller.Employee.EmployeeID)
}

// ListEmployeeTimesheets returns one department employee's timesheets for a
// reviewing head.
func (s *timesheetService) ListEmployeeTimesheets(ctx context.Context, caller *domain.RoleProfile, employeeID string) ([]domain.Timesheet, error) {
	dept, err := scopeDepartment(caller)
	if err != nil {
		return nil, err
	}
	employee, err := s.profileRepo.FindEmployeeByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	if employee.Department != dept {
		return nil, fmt.Errorf("%w: employee %s is not in your department", apperrors.ErrForbidden, employeeID)
	}
	return s.timesheetRepo.ListTimesheetsByEmployee(ctx, employeeID)
}

// ListAllTimesheets returns every timesheet. Admin only.
func (s *timesheetService) ListAllTimesheets(ctx context.Context, caller *domain.RoleProfile) ([]domain.Timesheet, error) {
	if caller.Kind != domain.RoleAdmin {
		return nil, fmt.Errorf("%w: admin access required", apperrors.ErrForbidden)
	}
	return s.timesheetRepo.ListAllTimesheets(ctx)
}

// Transition moves a timesheet into Approved, Rejected or Rework and records
// the reviewer's remark in the field matching their role. Heads are held to
// their department scope; approved timesheets are final.
func (s *timesheetService) Transition(ctx context.Context, caller *domain.RoleProfile, timesheetID string, target domain.TimesheetStatus, remark string) error {
	timesheet, err := s.timesheetRepo.FindTimesheetByID(ctx, timesheetID)
	if err != nil {
		return err
	}

	var headRemark, adminRemark *string
	switch caller.Kind {
	case domain.RoleDepartmentHead:
		if timesheet.Department != caller.DepartmentHead.Department {
			return fmt.Errorf("%w: timesheet %s belongs to another department", apperrors.ErrForbidden, timesheetID)
		}
		if remark != "" {
			headRemark = &remark
		}
	case domain.RoleAdmin:
		if remark != "" {
			adminRemark = &remark
		}
	default:
		return fmt.Errorf("%w: reviewer role required", apperrors.ErrForbidden)
	}

	if err := domain.CheckTransition(timesheet.Status, target); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}

	if err := s.timesheetRepo.UpdateTimesheetReview(ctx, timesheetID, target, headRemark, adminRemark); err != nil {
		return err
	}

	s.LogInfo(ctx, "Timesheet reviewed",
		slog.String("timesheet_id", timesheetID),
		slog.String("from", string(timesheet.Status)),
		slog.String("to", string(target)))
	return nil
}

// DashboardCounts returns the head's pending and approved counts for their
// department.
func (s *timesheetService) DashboardCounts(ctx context.Context, caller *domain.RoleProfile) (int, int, error) {
	dept, err := scopeDepartment(caller)
	if err != nil {
		return 0, 0, err
	}
	// Everything a reviewer may still act on counts as pending.
	pendingStatuses := []domain.TimesheetStatus{domain.StatusOpen, domain.StatusSubmitted, domain.StatusRework}
	pending, err := s.timesheetRepo.CountTimesheetsByStatus(ctx, dept, pendingStatuses)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to count pending timesheets: %w", err)
	}
	approved, err := s.timesheetRepo.CountTimesheetsByStatus(ctx, dept, []domain.TimesheetStatus{domain.StatusApproved})
	if err != nil {
		return 0, 0, fmt.Errorf("failed to count approved timesheets: %w", err)
	}
	return pending, approved, nil
}
