package pgsql

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/dutytracker/timesheet_backend/internal/core/domain"
	portsrepo "github.com/dutytracker/timesheet_backend/internal/core/ports/repositories"
	"github.com/dutytracker/timesheet_backend/internal/models"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxReportingRepository implements the ReportingRepository interface.
type PgxReportingRepository struct {
	BaseRepository
}

func newPgxReportingRepository(db *pgxpool.Pool) portsrepo.ReportingRepository {
	return &PgxReportingRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.ReportingRepository = (*PgxReportingRepository)(nil)

// FindEmployeeTimesheetGroups runs the report pipeline: employees matching
// the department filters ordered by employee ID, their timesheets matching
// the status/date filters, employees without matches dropped.
func (r *PgxReportingRepository) FindEmployeeTimesheetGroups(ctx context.Context, filter domain.TimesheetReportFilter) ([]domain.EmployeeTimesheetGroup, error) {
	employees, err := r.findReportEmployees(ctx, filter)
	if err != nil {
		return nil, err
	}
	if len(employees) == 0 {
		return []domain.EmployeeTimesheetGroup{}, nil
	}

	employeeIDs := make([]string, len(employees))
	for i, e := range employees {
		employeeIDs[i] = e.EmployeeID
	}

	timesheetsByEmployee, err := r.findFilteredTimesheets(ctx, employeeIDs, filter)
	if err != nil {
		return nil, err
	}

	groups := []domain.EmployeeTimesheetGroup{}
	for _, employee := range employees {
		timesheets := timesheetsByEmployee[employee.EmployeeID]
		if len(timesheets) == 0 {
			continue
		}
		groups = append(groups, domain.EmployeeTimesheetGroup{
			Employee:   employee,
			Timesheets: timesheets,
		})
	}
	return groups, nil
}

func (r *PgxReportingRepository) findReportEmployees(ctx context.Context, filter domain.TimesheetReportFilter) ([]domain.ReportEmployee, error) {
	query := `
		SELECT e.employee_id, u.username, e.department, e.sub_department, pn.name
		FROM employees e
		JOIN users u ON u.user_id = e.user_id
		LEFT JOIN allocated_posts ap ON ap.allocated_post_id = e.allocated_post_id
		LEFT JOIN department_post_names pn ON pn.post_name_id = ap.post_name_id
	`
	conditions := []string{}
	args := []interface{}{}
	if filter.Department != "" {
		args = append(args, filter.Department)
		conditions = append(conditions, "e.department = $"+strconv.Itoa(len(args)))
	}
	if filter.SubDepartment != "" {
		args = append(args, filter.SubDepartment)
		conditions = append(conditions, "e.sub_department = $"+strconv.Itoa(len(args)))
	}
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY e.employee_id;"

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query report employees: %w", err)
	}
	defer rows.Close()

	employees := []domain.ReportEmployee{}
	for rows.Next() {
		var employee domain.ReportEmployee
		if err := rows.Scan(
			&employee.EmployeeID,
			&employee.Username,
			&employee.Department,
			&employee.SubDepartment,
			&employee.PostName,
		); err != nil {
			return nil, fmt.Errorf("failed to scan report employee row: %w", err)
		}
		employees = append(employees, employee)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating report employee rows: %w", rows.Err())
	}
	return employees, nil
}

func (r *PgxReportingRepository) findFilteredTimesheets(ctx context.Context, employeeIDs []string, filter domain.TimesheetReportFilter) (map[string][]domain.Timesheet, error) {
	query := `SELECT ` + timesheetColumns + ` FROM timesheets WHERE employee_id = ANY($1)`
	args := []interface{}{employeeIDs}
	if filter.Status != "" {
		args = append(args, string(filter.Status))
		query += " AND status = $" + strconv.Itoa(len(args))
	}
	if filter.DateFrom != nil {
		args = append(args, *filter.DateFrom)
		query += " AND date >= $" + strconv.Itoa(len(args))
	}
	if filter.DateTo != nil {
		args = append(args, *filter.DateTo)
		query += " AND date <= $" + strconv.Itoa(len(args))
	}
	query += " ORDER BY submitted_at DESC;"

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query report timesheets: %w", err)
	}
	defer rows.Close()

	byEmployee := map[string][]domain.Timesheet{}
	timesheetIDs := []string{}
	index := map[string]*domain.Timesheet{}
	for rows.Next() {
		timesheet, err := scanTimesheet(rows)
		if err != nil {
			return nil, err
		}
		byEmployee[timesheet.EmployeeID] = append(byEmployee[timesheet.EmployeeID], *timesheet)
		timesheetIDs = append(timesheetIDs, timesheet.TimesheetID)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating report timesheet rows: %w", rows.Err())
	}
	if len(timesheetIDs) == 0 {
		return byEmployee, nil
	}

	for employeeID := range byEmployee {
		for i := range byEmployee[employeeID] {
			ts := &byEmployee[employeeID][i]
			index[ts.TimesheetID] = ts
			ts.Entries = []domain.TimesheetEntry{}
		}
	}

	entryQuery := `
		SELECT te.entry_id, te.timesheet_id, te.employee_duty_id, dn.name, te.hours
		FROM timesheet_entries te
		JOIN employee_duties ed ON ed.employee_duty_id = te.employee_duty_id
		JOIN duty_names dn ON dn.duty_name_id = ed.duty_name_id
		WHERE te.timesheet_id = ANY($1)
		ORDER BY dn.name;
	`
	entryRows, err := r.Pool.Query(ctx, entryQuery, timesheetIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query report entries: %w", err)
	}
	defer entryRows.Close()

	for entryRows.Next() {
		var m models.TimesheetEntry
		if err := entryRows.Scan(&m.EntryID, &m.TimesheetID, &m.EmployeeDutyID, &m.DutyName, &m.Hours); err != nil {
			return nil, fmt.Errorf("failed to scan report entry row: %w", err)
		}
		if ts, ok := index[m.TimesheetID]; ok {
			ts.Entries = append(ts.Entries, domain.TimesheetEntry{
				EntryID:        m.EntryID,
				TimesheetID:    m.TimesheetID,
				EmployeeDutyID: m.EmployeeDutyID,
				DutyName:       m.DutyName,
				Hours:          m.Hours,
			})
		}
	}
	if entryRows.Err() != nil {
		return nil, fmt.Errorf("error iterating report entry rows: %w", entryRows.Err())
	}
	return byEmployee, nil
}
