package models

import "time"

// UserRole defines the possible roles of a user in the application.
type UserRole string

const (
	RoleParticipant UserRole = "PARTICIPANT"
	RoleReviewer    UserRole = "REVIEWER"
	RoleAdmin       UserRole = "ADMIN"
)

// User represents a user row, including the password hash for authentication.
type User struct {
	UserID       string   `json:"userID"` // Primary Key (e.g., UUID)
	Name         string   `json:"name"`
	Email        string   `json:"email"`
	Role         UserRole `json:"role"`
	PasswordHash string   `json:"-" db:"password_hash"`
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty" db:"deleted_at"` // Used for soft delete
}
