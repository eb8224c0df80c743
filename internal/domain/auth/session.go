package auth

import (
	"context"

	"github.com/go-chi/jwtauth/v5"
	"github.com/tipl/employee-monitoring/internal/domain/user"
)

// Session is the identity attached to an authenticated request. Claims are
// parsed into this struct once, in full; domain code never touches the raw
// claim map, so a missing or mistyped role can never silently pass a check.
type Session struct {
	UserID     string
	Name       string
	Role       user.Role
	EmployeeID *string // nil when the account has no linked employee profile
}

// IsAdmin reports whether the session holds the ADMIN role.
func (s Session) IsAdmin() bool {
	return s.Role == user.RoleAdmin
}

// IsManager reports whether the session holds MANAGER or ADMIN.
func (s Session) IsManager() bool {
	return s.Role == user.RoleManager || s.Role == user.RoleAdmin
}

// OwnsEmployee reports whether the session's linked employee profile is the
// given employee.
func (s Session) OwnsEmployee(employeeID string) bool {
	return s.EmployeeID != nil && *s.EmployeeID == employeeID
}

// SessionFromContext extracts and validates the session carried by the
// request's access token. Returns ErrInvalidToken when any required claim is
// missing or malformed.
func SessionFromContext(ctx context.Context) (Session, error) {
	token, claims, err := jwtauth.FromContext(ctx)
	if err != nil || token == nil {
		return Session{}, ErrInvalidToken
	}

	tokenType, ok := claims["type"].(string)
	if !ok || tokenType != "access" {
		return Session{}, ErrInvalidToken
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return Session{}, ErrInvalidToken
	}

	name, _ := claims["name"].(string)

	roleStr, ok := claims["role"].(string)
	if !ok {
		return Session{}, ErrInvalidToken
	}
	role, ok := user.ParseRole(roleStr)
	if !ok {
		return Session{}, ErrInvalidToken
	}

	var employeeID *string
	if v, ok := claims["employee_id"].(string); ok && v != "" {
		employeeID = &v
	}

	return Session{
		UserID:     userID,
		Name:       name,
		Role:       role,
		EmployeeID: employeeID,
	}, nil
}
