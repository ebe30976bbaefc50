package domain

import "time"

// User represents an identity credential holder in the domain.
type User struct {
	UserID       string    `json:"userID"` // Primary Key (UUID)
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	IsAdmin      bool      `json:"isAdmin"`
	EmployeeID   *string   `json:"employeeID,omitempty"` // Optional link to a role-profile's employee ID
	CreatedAt    time.Time `json:"createdAt"`
}
