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

type PgxCatalogRepository struct {
	BaseRepository
}

func newPgxCatalogRepository(db *pgxpool.Pool) portsrepo.CatalogRepositoryFacade {
	return &PgxCatalogRepository{BaseRepository: BaseRepository{Pool: db}}
}

// Ensure PgxCatalogRepository implements portsrepo.CatalogRepositoryFacade
var _ portsrepo.CatalogRepositoryFacade = (*PgxCatalogRepository)(nil)

func toDomainPostName(m models.PostName) domain.PostName {
	return domain.PostName{
		PostNameID:  m.PostNameID,
		Name:        m.Name,
		Description: m.Description.String,
		CreatedAt:   m.CreatedAt,
	}
}

func toDomainDutyName(m models.DutyName) domain.DutyName {
	return domain.DutyName{
		DutyNameID:  m.DutyNameID,
		Name:        m.Name,
		Description: m.Description.String,
		CreatedAt:   m.CreatedAt,
	}
}

func toDomainAllocatedPost(m models.AllocatedPost) domain.AllocatedPost {
	d := domain.AllocatedPost{
		AllocatedPostID: m.AllocatedPostID,
		Department:      m.Department,
		PostNameID:      m.PostNameID,
		PostName:        m.PostName,
		Description:     m.Description.String,
		CreatedAt:       m.CreatedAt,
	}
	if m.SubDepartment.Valid {
		sub := m.SubDepartment.String
		d.SubDepartment = &sub
	}
	if m.CreatedBy.Valid {
		createdBy := m.CreatedBy.String
		d.CreatedBy = &createdBy
	}
	return d
}

func toDomainEmployeeDuty(m models.EmployeeDuty) domain.EmployeeDuty {
	return domain.EmployeeDuty{
		EmployeeDutyID: m.EmployeeDutyID,
		EmployeeID:     m.EmployeeID,
		DutyNameID:     m.DutyNameID,
		DutyName:       m.DutyName,
		Description:    m.Description.String,
		CreatedAt:      m.CreatedAt,
	}
}

func (r *PgxCatalogRepository) ListPostNames(ctx context.Context) ([]domain.PostName, error) {
	query := `SELECT post_name_id, name, description, created_at FROM department_post_names ORDER BY name;`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query post names: %w", err)
	}
	defer rows.Close()

	names := []domain.PostName{}
	for rows.Next() {
		var m models.PostName
		if err := rows.Scan(&m.PostNameID, &m.Name, &m.Description, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan post name row: %w", err)
		}
		names = append(names, toDomainPostName(m))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating post name rows: %w", rows.Err())
	}
	return names, nil
}

func (r *PgxCatalogRepository) ListDutyNames(ctx context.Context) ([]domain.DutyName, error) {
	query := `SELECT duty_name_id, name, description, created_at FROM duty_names ORDER BY name;`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query duty names: %w", err)
	}
	defer rows.Close()

	names := []domain.DutyName{}
	for rows.Next() {
		var m models.DutyName
		if err := rows.Scan(&m.DutyNameID, &m.Name, &m.Description, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan duty name row: %w", err)
		}
		names = append(names, toDomainDutyName(m))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating duty name rows: %w", rows.Err())
	}
	return names, nil
}

func (r *PgxCatalogRepository) FindPostNameByID(ctx context.Context, postNameID string) (*domain.PostName, error) {
	query := `SELECT post_name_id, name, description, created_at FROM department_post_names WHERE post_name_id = $1;`
	var m models.PostName
	err := r.Pool.QueryRow(ctx, query, postNameID).Scan(&m.PostNameID, &m.Name, &m.Description, &m.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find post name by ID %s: %w", postNameID, err)
	}
	name := toDomainPostName(m)
	return &name, nil
}

func (r *PgxCatalogRepository) FindDutyNameByID(ctx context.Context, dutyNameID string) (*domain.DutyName, error) {
	query := `SELECT duty_name_id, name, description, created_at FROM duty_names WHERE duty_name_id = $1;`
	var m models.DutyName
	err := r.Pool.QueryRow(ctx, query, dutyNameID).Scan(&m.DutyNameID, &m.Name, &m.Description, &m.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find duty name by ID %s: %w", dutyNameID, err)
	}
	name := toDomainDutyName(m)
	return &name, nil
}

const allocatedPostSelect = `
	SELECT ap.allocated_post_id, ap.department, ap.sub_department, ap.post_name_id, pn.name, ap.description, ap.created_by, ap.created_at
	FROM allocated_posts ap
	JOIN department_post_names pn ON pn.post_name_id = ap.post_name_id
`

func scanAllocatedPost(row pgx.Row) (*domain.AllocatedPost, error) {
	var m models.AllocatedPost
	err := row.Scan(
		&m.AllocatedPostID,
		&m.Department,
		&m.SubDepartment,
		&m.PostNameID,
		&m.PostName,
		&m.Description,
		&m.CreatedBy,
		&m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan allocated post row: %w", err)
	}
	post := toDomainAllocatedPost(m)
	return &post, nil
}

func (r *PgxCatalogRepository) FindAllocatedPostByID(ctx context.Context, allocatedPostID string) (*domain.AllocatedPost, error) {
	query := allocatedPostSelect + ` WHERE ap.allocated_post_id = $1;`
	return scanAllocatedPost(r.Pool.QueryRow(ctx, query, allocatedPostID))
}

func (r *PgxCatalogRepository) ListAllocatedPosts(ctx context.Context, department string, subDepartment *string) ([]domain.AllocatedPost, error) {
	query := allocatedPostSelect + ` WHERE ap.department = $1`
	args := []interface{}{department}
	if subDepartment != nil {
		query += ` AND ap.sub_department = $2`
		args = append(args, *subDepartment)
	}
	query += ` ORDER BY pn.name;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query allocated posts: %w", err)
	}
	defer rows.Close()

	posts := []domain.AllocatedPost{}
	for rows.Next() {
		post, err := scanAllocatedPost(rows)
		if err != nil {
			return nil, err
		}
		posts = append(posts, *post)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating allocated post rows: %w", rows.Err())
	}
	return posts, nil
}

func (r *PgxCatalogRepository) SaveAllocatedPost(ctx context.Context, post domain.AllocatedPost) error {
	query := `
		INSERT INTO allocated_posts (allocated_post_id, department, sub_department, post_name_id, description, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.Pool.Exec(ctx, query,
		post.AllocatedPostID,
		post.Department,
		nullableString(post.SubDepartment),
		post.PostNameID,
		post.Description,
		nullableString(post.CreatedBy),
		post.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("post already exists for this department and sub-department: %w", apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save allocated post: %w", err)
	}
	return nil
}

func (r *PgxCatalogRepository) SavePostName(ctx context.Context, postName domain.PostName) error {
	query := `
		INSERT INTO department_post_names (post_name_id, name, description, created_at)
		VALUES ($1, $2, $3, $4);
	`
	_, err := r.Pool.Exec(ctx, query,
		postName.PostNameID,
		postName.Name,
		postName.Description,
		postName.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("post name %q already exists: %w", postName.Name, apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save post name: %w", err)
	}
	return nil
}

func (r *PgxCatalogRepository) SaveDutyName(ctx context.Context, dutyName domain.DutyName) error {
	query := `
		INSERT INTO duty_names (duty_name_id, name, description, created_at)
		VALUES ($1, $2, $3, $4);
	`
	_, err := r.Pool.Exec(ctx, query,
		dutyName.DutyNameID,
		dutyName.Name,
		dutyName.Description,
		dutyName.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("duty name %q already exists: %w", dutyName.Name, apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save duty name: %w", err)
	}
	return nil
}

const employeeDutySelect = `
	SELECT ed.employee_duty_id, ed.employee_id, ed.duty_name_id, dn.name, ed.description, ed.created_at
	FROM employee_duties ed
	JOIN duty_names dn ON dn.duty_name_id = ed.duty_name_id
`

func scanEmployeeDuty(row pgx.Row) (*domain.EmployeeDuty, error) {
	var m models.EmployeeDuty
	err := row.Scan(
		&m.EmployeeDutyID,
		&m.EmployeeID,
		&m.DutyNameID,
		&m.DutyName,
		&m.Description,
		&m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan employee duty row: %w", err)
	}
	duty := toDomainEmployeeDuty(m)
	return &duty, nil
}

func (r *PgxCatalogRepository) FindEmployeeDutyByID(ctx context.Context, employeeDutyID string) (*domain.EmployeeDuty, error) {
	query := employeeDutySelect + ` WHERE ed.employee_duty_id = $1;`
	return scanEmployeeDuty(r.Pool.QueryRow(ctx, query, employeeDutyID))
}

func (r *PgxCatalogRepository) ListDutiesByEmployee(ctx context.Context, employeeID string) ([]domain.EmployeeDuty, error) {
	query := employeeDutySelect + ` WHERE ed.employee_id = $1 ORDER BY dn.name;`
	return r.queryEmployeeDuties(ctx, query, employeeID)
}

func (r *PgxCatalogRepository) ListDutiesByDepartment(ctx context.Context, department string) ([]domain.EmployeeDuty, error) {
	query := employeeDutySelect + `
		JOIN employees e ON e.employee_id = ed.employee_id
		WHERE e.department = $1
		ORDER BY ed.employee_id, dn.name;`
	return r.queryEmployeeDuties(ctx, query, department)
}

func (r *PgxCatalogRepository) queryEmployeeDuties(ctx context.Context, query string, args ...interface{}) ([]domain.EmployeeDuty, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query employee duties: %w", err)
	}
	defer rows.Close()

	duties := []domain.EmployeeDuty{}
	for rows.Next() {
		duty, err := scanEmployeeDuty(rows)
		if err != nil {
			return nil, err
		}
		duties = append(duties, *duty)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating employee duty rows: %w", rows.Err())
	}
	return duties, nil
}

func (r *PgxCatalogRepository) SaveEmployeeDuty(ctx context.Context, duty domain.EmployeeDuty) error {
	query := `
		INSERT INTO employee_duties (employee_duty_id, employee_id, duty_name_id, description, created_at)
		VALUES ($1, $2, $3, $4, $5);
	`
	_, err := r.Pool.Exec(ctx, query,
		duty.EmployeeDutyID,
		duty.EmployeeID,
		duty.DutyNameID,
		duty.Description,
		duty.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save employee duty: %w", err)
	}
	return nil
}

func (r *PgxCatalogRepository) DeleteEmployeeDuty(ctx context.Context, employeeDutyID string) error {
	// Timesheet entries referencing the duty are removed by ON DELETE CASCADE.
	query := `DELETE FROM employee_duties WHERE employee_duty_id = $1;`
	cmdTag, err := r.Pool.Exec(ctx, query, employeeDutyID)
	if err != nil {
		return fmt.Errorf("failed to delete employee duty: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("employee duty %s: %w", employeeDutyID, apperrors.ErrNotFound)
	}
	return nil
}
