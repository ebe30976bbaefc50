package services

// ServiceContainer bundles the service facades handed to the HTTP layer.
type ServiceContainer struct {
	Identity  IdentitySvcFacade
	Catalog   CatalogSvcFacade
	Timesheet TimesheetSvcFacade
	Reporting ReportingSvcFacade
	Directory DirectorySvcFacade
}
