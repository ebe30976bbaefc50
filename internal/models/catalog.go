package models

import (
	"database/sql"
	"time"
)

// PostName is the database row for a post-name catalog entry.
type PostName struct {
	PostNameID  string         `db:"post_name_id"`
	Name        string         `db:"name"`
	Description sql.NullString `db:"description"`
	CreatedAt   time.Time      `db:"created_at"`
}

// DutyName is the database row for a duty-name catalog entry.
type DutyName struct {
	DutyNameID  string         `db:"duty_name_id"`
	Name        string         `db:"name"`
	Description sql.NullString `db:"description"`
	CreatedAt   time.Time      `db:"created_at"`
}

// AllocatedPost is the database row for a department-scoped post instance.
// PostName is joined in from the catalog on read.
type AllocatedPost struct {
	AllocatedPostID string         `db:"allocated_post_id"`
	Department      string         `db:"department"`
	SubDepartment   sql.NullString `db:"sub_department"`
	PostNameID      string         `db:"post_name_id"`
	PostName        string         `db:"post_name"`
	Description     sql.NullString `db:"description"`
	CreatedBy       sql.NullString `db:"created_by"`
	CreatedAt       time.Time      `db:"created_at"`
}

// EmployeeDuty is the database row for a duty assignment. DutyName is joined
// in from the catalog on read.
type EmployeeDuty struct {
	EmployeeDutyID string         `db:"employee_duty_id"`
	EmployeeID     string         `db:"employee_id"`
	DutyNameID     string         `db:"duty_name_id"`
	DutyName       string         `db:"duty_name"`
	Description    sql.NullString `db:"description"`
	CreatedAt      time.Time      `db:"created_at"`
}
