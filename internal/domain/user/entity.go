package user

import "time"

type Role string

const (
	RoleAdmin    Role = "ADMIN"    // Full access, employee administration and payroll
	RoleManager  Role = "MANAGER"  // Can view teams, create tasks and projects
	RoleEmployee Role = "EMPLOYEE" // Regular employee
)

// ParseRole reports whether s names a known role.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleAdmin, RoleManager, RoleEmployee:
		return Role(s), true
	}
	return "", false
}

type User struct {
	ID           string
	Email        string
	Name         string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Joined from employees when the user has a linked profile
	EmployeeID *string
}
