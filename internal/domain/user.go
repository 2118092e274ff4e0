package domain

import "time"

// Role represents the role of an acting user
type Role string

const (
	RoleTeacher Role = "teacher"
	RoleAdmin   Role = "admin"
)

// IsValid returns true if the role is known
func (r Role) IsValid() bool {
	return r == RoleTeacher || r == RoleAdmin
}

// IsAdmin returns true for the administrator role
func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}

// User is a minimal account record backing ownership checks and
// the notification mailbox
type User struct {
	ID        int64
	Name      string
	Role      Role
	CreatedAt time.Time
}
