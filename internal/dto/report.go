package dto

// TimesheetReportParams are the query parameters of the report view and the
// export. All filters are optional; dates are YYYY-MM-DD.
type TimesheetReportParams struct {
	Department    string `form:"department" json:"department"`
	SubDepartment string `form:"sub_department" json:"subDepartment"`
	Status        string `form:"status" json:"status"`
	DateFrom      string `form:"date_from" json:"dateFrom"`
	DateTo        string `form:"date_to" json:"dateTo"`
	Page          int    `form:"page,default=1" json:"page"`
}
