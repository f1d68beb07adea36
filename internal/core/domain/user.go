package domain

import "time"

// UserRole defines the possible roles of a user in the application.
type UserRole string

const (
	RoleParticipant UserRole = "PARTICIPANT"
	RoleReviewer    UserRole = "REVIEWER"
	RoleAdmin       UserRole = "ADMIN"
)

// User represents a user of the application in the domain.
type User struct {
	UserID string   `json:"userID"` // Primary Key (e.g., UUID)
	Name   string   `json:"name"`
	Email  string   `json:"email"`
	Role   UserRole `json:"role"`
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty"` // Used for soft delete
}

// CanReview reports whether the user carries the reviewer capability.
// Admins review as well.
func (u *User) CanReview() bool {
	return u.Role == RoleReviewer || u.Role == RoleAdmin
}

// AsActor converts the user into the actor value passed to core operations.
func (u *User) AsActor() Actor {
	return Actor{ActorID: u.UserID, IsReviewer: u.CanReview()}
}
