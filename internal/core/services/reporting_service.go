package services

import (
	"context"
	"fmt"

	"github.com/dutytracker/timesheet_backend/internal/core/domain"
	portsrepo "github.com/dutytracker/timesheet_backend/internal/core/ports/repositories"
	portssvc "github.com/dutytracker/timesheet_backend/internal/core/ports/services"
)

// reportingService runs the employee->timesheets report pipeline for the
// paginated view and the spreadsheet export.
type reportingService struct {
	BaseService
	reportingRepo portsrepo.ReportingRepository
}

// NewReportingService creates a new reportingService.
func NewReportingService(reportingRepo portsrepo.ReportingRepository) portssvc.ReportingSvcFacade {
	return &reportingService{reportingRepo: reportingRepo}
}

// Ensure reportingService implements the portssvc.ReportingSvcFacade interface
var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

// TimesheetReport returns one page of the report, paginated at the fixed page
// size. Out-of-range pages clamp to the nearest valid page instead of failing.
func (s *reportingService) TimesheetReport(ctx context.Context, filter domain.TimesheetReportFilter, page int) (*domain.TimesheetReportPage, error) {
	groups, err := s.reportingRepo.FindEmployeeTimesheetGroups(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to build timesheet report: %w", err)
	}

	totalCount := len(groups)
	totalPages := (totalCount + domain.ReportPageSize - 1) / domain.ReportPageSize
	if totalPages < 1 {
		totalPages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * domain.ReportPageSize
	end := start + domain.ReportPageSize
	if start > totalCount {
		start = totalCount
	}
	if end > totalCount {
		end = totalCount
	}

	return &domain.TimesheetReportPage{
		Groups:     groups[start:end],
		Page:       page,
		TotalPages: totalPages,
		TotalCount: totalCount,
	}, nil
}

// ExportRows returns the unpaginated flattened export rows for the filter.
// The rows mirror the report view exactly; only the serialization differs.
func (s *reportingService) ExportRows(ctx context.Context, filter domain.TimesheetReportFilter) ([]domain.ReportRow, error) {
	groups, err := s.reportingRepo.FindEmployeeTimesheetGroups(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to build export rows: %w", err)
	}
	return domain.FlattenReportGroups(groups), nil
}
