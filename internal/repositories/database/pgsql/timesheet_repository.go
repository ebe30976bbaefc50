package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/dutytracker/timesheet_backend/internal/apperrors"
	"github.com/dutytracker/timesheet_backend/internal/core/domain"
	portsrepo "github.com/dutytracker/timesheet_backend/internal/core/ports/repositories"
	"github.com/dutytracker/timesheet_backend/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxTimesheetRepository struct {
	BaseRepository
}

func newPgxTimesheetRepository(db *pgxpool.Pool) portsrepo.TimesheetRepositoryFacade {
	return &PgxTimesheetRepository{BaseRepository: BaseRepository{Pool: db}}
}

// Ensure PgxTimesheetRepository implements portsrepo.TimesheetRepositoryFacade
var _ portsrepo.TimesheetRepositoryFacade = (*PgxTimesheetRepository)(nil)

func toDomainTimesheet(m models.Timesheet) domain.Timesheet {
	d := domain.Timesheet{
		TimesheetID: m.TimesheetID,
		EmployeeID:  m.EmployeeID,
		Date:        m.Date,
		Department:  m.Department,
		Status:      domain.TimesheetStatus(m.Status),
		SubmittedAt: m.SubmittedAt,
	}
	if m.AdminRemark.Valid {
		remark := m.AdminRemark.String
		d.AdminRemark = &remark
	}
	if m.DepartmentHeadRemark.Valid {
		remark := m.DepartmentHeadRemark.String
		d.DepartmentHeadRemark = &remark
	}
	return d
}

const timesheetColumns = `timesheet_id, employee_id, date, department, status, submitted_at, admin_remark, department_head_remark`

func scanTimesheet(row pgx.Row) (*domain.Timesheet, error) {
	var m models.Timesheet
	err := row.Scan(
		&m.TimesheetID,
		&m.EmployeeID,
		&m.Date,
		&m.Department,
		&m.Status,
		&m.SubmittedAt,
		&m.AdminRemark,
		&m.DepartmentHeadRemark,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan timesheet row: %w", err)
	}
	timesheet := toDomainTimesheet(m)
	return &timesheet, nil
}

func (r *PgxTimesheetRepository) SaveTimesheet(ctx context.Context, timesheet domain.Timesheet) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx) //nolint:errcheck // rollback after commit is a no-op

	headerQuery := `
		INSERT INTO timesheets (` + timesheetColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err = tx.Exec(ctx, headerQuery,
		timesheet.TimesheetID,
		timesheet.EmployeeID,
		timesheet.Date,
		timesheet.Department,
		string(timesheet.Status),
		timesheet.SubmittedAt,
		nullableString(timesheet.AdminRemark),
		nullableString(timesheet.DepartmentHeadRemark),
	)
	if err != nil {
		return fmt.Errorf("failed to save timesheet header: %w", err)
	}

	entryQuery := `
		INSERT INTO timesheet_entries (entry_id, timesheet_id, employee_duty_id, hours)
		VALUES ($1, $2, $3, $4);
	`
	for _, entry := range timesheet.Entries {
		if _, err := tx.Exec(ctx, entryQuery, entry.EntryID, entry.TimesheetID, entry.EmployeeDutyID, entry.Hours); err != nil {
			return fmt.Errorf("failed to save timesheet entry: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit timesheet: %w", err)
	}
	return nil
}

func (r *PgxTimesheetRepository) FindTimesheetByID(ctx context.Context, timesheetID string) (*domain.Timesheet, error) {
	query := `SELECT ` + timesheetColumns + ` FROM timesheets WHERE timesheet_id = $1;`
	timesheet, err := scanTimesheet(r.Pool.QueryRow(ctx, query, timesheetID))
	if err != nil {
		return nil, err
	}

	entries, err := r.findEntries(ctx, []string{timesheetID})
	if err != nil {
		return nil, err
	}
	timesheet.Entries = entries[timesheetID]
	if timesheet.Entries == nil {
		timesheet.Entries = []domain.TimesheetEntry{}
	}
	return timesheet, nil
}

func (r *PgxTimesheetRepository) ListTimesheetsByEmployee(ctx context.Context, employeeID string) ([]domain.Timesheet, error) {
	query := `SELECT ` + timesheetColumns + ` FROM timesheets WHERE employee_id = $1 ORDER BY submitted_at DESC;`
	return r.queryTimesheetsWithEntries(ctx, query, employeeID)
}

func (r *PgxTimesheetRepository) ListAllTimesheets(ctx context.Context) ([]domain.Timesheet, error) {
	query := `SELECT ` + timesheetColumns + ` FROM timesheets ORDER BY submitted_at DESC;`
	return r.queryTimesheetsWithEntries(ctx, query)
}

func (r *PgxTimesheetRepository) queryTimesheetsWithEntries(ctx context.Context, query string, args ...interface{}) ([]domain.Timesheet, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query timesheets: %w", err)
	}
	defer rows.Close()

	timesheets := []domain.Timesheet{}
	ids := []string{}
	for rows.Next() {
		timesheet, err := scanTimesheet(rows)
		if err != nil {
			return nil, err
		}
		timesheets = append(timesheets, *timesheet)
		ids = append(ids, timesheet.TimesheetID)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating timesheet rows: %w", rows.Err())
	}

	if len(ids) == 0 {
		return timesheets, nil
	}
	entriesByTimesheet, err := r.findEntries(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range timesheets {
		entries := entriesByTimesheet[timesheets[i].TimesheetID]
		if entries == nil {
			entries = []domain.TimesheetEntry{}
		}
		timesheets[i].Entries = entries
	}
	return timesheets, nil
}

// findEntries loads the entries of the given timesheets keyed by timesheet ID.
func (r *PgxTimesheetRepository) findEntries(ctx context.Context, timesheetIDs []string) (map[string][]domain.TimesheetEntry, error) {
	query := `
		SELECT te.entry_id, te.timesheet_id, te.employee_duty_id, dn.name, te.hours
		FROM timesheet_entries te
		JOIN employee_duties ed ON ed.employee_duty_id = te.employee_duty_id
		JOIN duty_names dn ON dn.duty_name_id = ed.duty_name_id
		WHERE te.timesheet_id = ANY($1)
		ORDER BY dn.name;
	`
	rows, err := r.Pool.Query(ctx, query, timesheetIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query timesheet entries: %w", err)
	}
	defer rows.Close()

	byTimesheet := map[string][]domain.TimesheetEntry{}
	for rows.Next() {
		var m models.TimesheetEntry
		if err := rows.Scan(&m.EntryID, &m.TimesheetID, &m.EmployeeDutyID, &m.DutyName, &m.Hours); err != nil {
			return nil, fmt.Errorf("failed to scan timesheet entry row: %w", err)
		}
		byTimesheet[m.TimesheetID] = append(byTimesheet[m.TimesheetID], domain.TimesheetEntry{
			EntryID:        m.EntryID,
			TimesheetID:    m.TimesheetID,
			EmployeeDutyID: m.EmployeeDutyID,
			DutyName:       m.DutyName,
			Hours:          m.Hours,
		})
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating timesheet entry rows: %w", rows.Err())
	}
	return byTimesheet, nil
}

func (r *PgxTimesheetRepository) CountTimesheetsByStatus(ctx context.Context, department string, statuses []domain.TimesheetStatus) (int, error) {
	statusStrs := make([]string, len(statuses))
	for i, s := range statuses {
		statusStrs[i] = string(s)
	}
	query := `SELECT COUNT(*) FROM timesheets WHERE department = $1 AND status = ANY($2);`
	var count int
	if err := r.Pool.QueryRow(ctx, query, department, statusStrs).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count timesheets: %w", err)
	}
	return count, nil
}

func (r *PgxTimesheetRepository) UpdateTimesheetReview(ctx context.Context, timesheetID string, status domain.TimesheetStatus, headRemark *string, adminRemark *string) error {
	query := `
		UPDATE timesheets
		SET status = $1,
		    department_head_remark = COALESCE($2, department_head_remark),
		    admin_remark = COALESCE($3, admin_remark)
		WHERE timesheet_id = $4;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		string(status),
		nullableString(headRemark),
		nullableString(adminRemark),
		timesheetID,
	)
	if err != nil {
		return fmt.Errorf("failed to update timesheet review: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("timesheet %s: %w", timesheetID, apperrors.ErrNotFound)
	}
	return nil
}
