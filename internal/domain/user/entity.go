package user

import (
	"strings"
	"time"
)

type Role string

const (
	RoleUser       Role = "user"       // Regular employee
	RoleSenior     Role = "senior"     // First-stage OT approver
	RoleAdmin      Role = "admin"      // Second-stage approver, full reports
	RoleSuperadmin Role = "superadmin" // Admin plus user management
)

// ParseRole normalizes a stored or transmitted role string. Legacy clients
// sent "Admin" with inconsistent casing, so matching is case-insensitive.
func ParseRole(s string) (Role, bool) {
	switch Role(strings.ToLower(s)) {
	case RoleUser:
		return RoleUser, true
	case RoleSenior:
		return RoleSenior, true
	case RoleAdmin:
		return RoleAdmin, true
	case RoleSuperadmin:
		return RoleSuperadmin, true
	}
	return "", false
}

type User struct {
	ID           string
	Email        string
	PasswordHash *string
	FirstName    string
	LastName     string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// FullName joins the name parts for display.
func (u *User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// IsSenior checks if user can act as a first-stage approver.
func (u *User) IsSenior() bool {
	return u.Role == RoleSenior || u.IsAdmin()
}

// IsAdmin checks if user can act at the admin stage.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin || u.Role == RoleSuperadmin
}
