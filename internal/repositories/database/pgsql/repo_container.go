package pgsql

import (
	portsrepo "github.com/dutytracker/timesheet_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	userRepo := newPgxUserRepository(dbPool)
	profileRepo := newPgxProfileRepository(dbPool)
	catalogRepo := newPgxCatalogRepository(dbPool)
	timesheetRepo := newPgxTimesheetRepository(dbPool)
	reportingRepo := newPgxReportingRepository(dbPool)

	return portsrepo.RepositoryProvider{
		UserRepo:      userRepo,
		ProfileRepo:   profileRepo,
		CatalogRepo:   catalogRepo,
		TimesheetRepo: timesheetRepo,
		ReportingRepo: reportingRepo,
	}
}
