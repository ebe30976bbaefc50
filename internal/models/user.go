package models

import (
	"database/sql"
	"time"
)

// User is the database row for an identity credential holder.
type User struct {
	UserID       string         `db:"user_id"`
	Username     string         `db:"username"`
	PasswordHash string         `db:"password_hash"`
	IsAdmin      bool           `db:"is_admin"`
	EmployeeID   sql.NullString `db:"employee_id"`
	CreatedAt    time.Time      `db:"created_at"`
}
