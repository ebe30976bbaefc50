package services

import (
	portsrepo "github.com/dutytracker/timesheet_backend/internal/core/ports/repositories"
	portssvc "github.com/dutytracker/timesheet_backend/internal/core/ports/services"
	"github.com/dutytracker/timesheet_backend/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly
// initialized dependencies.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Identity = NewIdentityService(repos.UserRepo, repos.ProfileRepo)
	container.Catalog = NewCatalogService(cfg, repos.CatalogRepo, repos.ProfileRepo, repos.UserRepo)
	container.Timesheet = NewTimesheetService(repos.TimesheetRepo, repos.CatalogRepo, repos.ProfileRepo)
	container.Reporting = NewReportingService(repos.ReportingRepo)
	container.Directory = NewDirectoryService()

	return container
}
