package models

import "database/sql"

// Employee is the database row for an employee role-profile. Username is
// joined in from the users table on read.
type Employee struct {
	EmployeeID      string         `db:"employee_id"`
	UserID          string         `db:"user_id"`
	Username        string         `db:"username"`
	Department      string         `db:"department"`
	SubDepartment   sql.NullString `db:"sub_department"`
	AllocatedPostID sql.NullString `db:"allocated_post_id"`
}

// DepartmentHead is the database row for a department head role-profile.
type DepartmentHead struct {
	EmployeeID    string         `db:"employee_id"`
	UserID        string         `db:"user_id"`
	Username      string         `db:"username"`
	Department    string         `db:"department"`
	SubDepartment sql.NullString `db:"sub_department"`
}
