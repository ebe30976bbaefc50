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

type PgxProfileRepository struct {
	BaseRepository
}

func newPgxProfileRepository(db *pgxpool.Pool) portsrepo.ProfileRepositoryFacade {
	return &PgxProfileRepository{BaseRepository: BaseRepository{Pool: db}}
}

// Ensure PgxProfileRepository implements portsrepo.ProfileRepositoryFacade
var _ portsrepo.ProfileRepositoryFacade = (*PgxProfileRepository)(nil)

func toDomainEmployee(m models.Employee) domain.Employee {
	d := domain.Employee{
		EmployeeID: m.EmployeeID,
		UserID:     m.UserID,
		Username:   m.Username,
		Department: m.Department,
	}
	if m.SubDepartment.Valid {
		sub := m.SubDepartment.String
		d.SubDepartment = &sub
	}
	if m.AllocatedPostID.Valid {
		post := m.AllocatedPostID.String
		d.AllocatedPostID = &post
	}
	return d
}

func toDomainDepartmentHead(m models.DepartmentHead) domain.DepartmentHead {
	d := domain.DepartmentHead{
		EmployeeID: m.EmployeeID,
		UserID:     m.UserID,
		Username:   m.Username,
		Department: m.Department,
	}
	if m.SubDepartment.Valid {
		sub := m.SubDepartment.String
		d.SubDepartment = &sub
	}
	return d
}

const employeeSelect = `
	SELECT e.employee_id, e.user_id, u.username, e.department, e.sub_department, e.allocated_post_id
	FROM employees e
	JOIN users u ON u.user_id = e.user_id
`

func scanEmployee(row pgx.Row) (*domain.Employee, error) {
	var m models.Employee
	err := row.Scan(
		&m.EmployeeID,
		&m.UserID,
		&m.Username,
		&m.Department,
		&m.SubDepartment,
		&m.AllocatedPostID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan employee row: %w", err)
	}
	employee := toDomainEmployee(m)
	return &employee, nil
}

func (r *PgxProfileRepository) FindEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error) {
	query := employeeSelect + ` WHERE e.employee_id = $1;`
	return scanEmployee(r.Pool.QueryRow(ctx, query, employeeID))
}

func (r *PgxProfileRepository) FindEmployeeByUserID(ctx context.Context, userID string) (*domain.Employee, error) {
	query := employeeSelect + ` WHERE e.user_id = $1;`
	return scanEmployee(r.Pool.QueryRow(ctx, query, userID))
}

func (r *PgxProfileRepository) ListEmployeesByDepartment(ctx context.Context, department string) ([]domain.Employee, error) {
	query := employeeSelect + ` WHERE e.department = $1 ORDER BY e.employee_id;`
	rows, err := r.Pool.Query(ctx, query, department)
	if err != nil {
		return nil, fmt.Errorf("failed to query employees: %w", err)
	}
	defer rows.Close()

	employees := []domain.Employee{}
	for rows.Next() {
		employee, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, *employee)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating employee rows: %w", rows.Err())
	}
	return employees, nil
}

func (r *PgxProfileRepository) SaveEmployee(ctx context.Context, employee domain.Employee) error {
	query := `
		INSERT INTO employees (employee_id, user_id, department, sub_department, allocated_post_id)
		VALUES ($1, $2, $3, $4, $5);
	`
	_, err := r.Pool.Exec(ctx, query,
		employee.EmployeeID,
		employee.UserID,
		employee.Department,
		nullableString(employee.SubDepartment),
		nullableString(employee.AllocatedPostID),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("employee ID %s already registered: %w", employee.EmployeeID, apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save employee: %w", err)
	}
	return nil
}

func (r *PgxProfileRepository) UpdateEmployeePost(ctx context.Context, employeeID string, allocatedPostID string) error {
	query := `UPDATE employees SET allocated_post_id = $1 WHERE employee_id = $2;`
	cmdTag, err := r.Pool.Exec(ctx, query, allocatedPostID, employeeID)
	if err != nil {
		return fmt.Errorf("failed to update employee post: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("employee %s: %w", employeeID, apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxProfileRepository) CreateUserWithEmployee(ctx context.Context, user domain.User, employee domain.Employee) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx) //nolint:errcheck // rollback after commit is a no-op

	userQuery := `
		INSERT INTO users (user_id, username, password_hash, is_admin, employee_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	_, err = tx.Exec(ctx, userQuery,
		user.UserID,
		user.Username,
		user.PasswordHash,
		user.IsAdmin,
		nullableString(user.EmployeeID),
		user.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("username %s already taken: %w", user.Username, apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save provisioned user: %w", err)
	}

	employeeQuery := `
		INSERT INTO employees (employee_id, user_id, department, sub_department, allocated_post_id)
		VALUES ($1, $2, $3, $4, $5);
	`
	_, err = tx.Exec(ctx, employeeQuery,
		employee.EmployeeID,
		employee.UserID,
		employee.Department,
		nullableString(employee.SubDepartment),
		nullableString(employee.AllocatedPostID),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("employee ID %s already registered: %w", employee.EmployeeID, apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save provisioned employee: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit employee provisioning: %w", err)
	}
	return nil
}

const headSelect = `
	SELECT dh.employee_id, dh.user_id, u.username, dh.department, dh.sub_department
	FROM department_heads dh
	JOIN users u ON u.user_id = dh.user_id
`

func scanDepartmentHead(row pgx.Row) (*domain.DepartmentHead, error) {
	var m models.DepartmentHead
	err := row.Scan(
		&m.EmployeeID,
		&m.UserID,
		&m.Username,
		&m.Department,
		&m.SubDepartment,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan department head row: %w", err)
	}
	head := toDomainDepartmentHead(m)
	return &head, nil
}

func (r *PgxProfileRepository) FindDepartmentHeadByUserID(ctx context.Context, userID string) (*domain.DepartmentHead, error) {
	query := headSelect + ` WHERE dh.user_id = $1;`
	return scanDepartmentHead(r.Pool.QueryRow(ctx, query, userID))
}

func (r *PgxProfileRepository) SaveDepartmentHead(ctx context.Context, head domain.DepartmentHead) error {
	query := `
		INSERT INTO department_heads (employee_id, user_id, department, sub_department)
		VALUES ($1, $2, $3, $4);
	`
	_, err := r.Pool.Exec(ctx, query,
		head.EmployeeID,
		head.UserID,
		head.Department,
		nullableString(head.SubDepartment),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("employee ID %s already registered: %w", head.EmployeeID, apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save department head: %w", err)
	}
	return nil
}
