package auth

import (
	"context"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tipl/employee-monitoring/internal/domain/user"
)

func contextWithClaims(t *testing.T, claims map[string]interface{}) context.Context {
	t.Helper()
	ja := jwtauth.New("HS256", []byte("test-secret"), nil)
	if _, ok := claims["exp"]; !ok {
		claims["exp"] = time.Now().Add(time.Hour).Unix()
	}
	token, _, err := ja.Encode(claims)
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

func TestSessionFromContext(t *testing.T) {
	ctx := contextWithClaims(t, map[string]interface{}{
		"user_id":     "user-1",
		"name":        "Asha",
		"role":        "MANAGER",
		"employee_id": "emp-1",
		"type":        "access",
	})

	session, err := SessionFromContext(ctx)
	require.NoError(t, err)
	assert.Equal(t, "user-1", session.UserID)
	assert.Equal(t, user.RoleManager, session.Role)
	require.NotNil(t, session.EmployeeID)
	assert.Equal(t, "emp-1", *session.EmployeeID)
}

func TestSessionFromContextRejects(t *testing.T) {
	cases := []struct {
		name   string
		claims map[string]interface{}
	}{
		{"missing role", map[string]interface{}{
			"user_id": "user-1", "type": "access",
		}},
		{"unknown role", map[string]interface{}{
			"user_id": "user-1", "role": "SUPERUSER", "type": "access",
		}},
		{"missing user id", map[string]interface{}{
			"role": "ADMIN", "type": "access",
		}},
		{"refresh token", map[string]interface{}{
			"user_id": "user-1", "role": "ADMIN", "type": "refresh",
		}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			ctx := contextWithClaims(t, c.claims)
			_, err := SessionFromContext(ctx)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}

func TestSessionFromContextNoToken(t *testing.T) {
	_, err := SessionFromContext(context.Background())
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestSessionRoleHelpers(t *testing.T) {
	empID := "emp-1"

	admin := Session{Role: user.RoleAdmin}
	assert.True(t, admin.IsAdmin())
	assert.True(t, admin.IsManager())

	manager := Session{Role: user.RoleManager}
	assert.False(t, manager.IsAdmin())
	assert.True(t, manager.IsManager())

	emp := Session{Role: user.RoleEmployee, EmployeeID: &empID}
	assert.False(t, emp.IsManager())
	assert.True(t, emp.OwnsEmployee("emp-1"))
	assert.False(t, emp.OwnsEmployee("emp-2"))

	noProfile := Session{Role: user.RoleEmployee}
	assert.False(t, noProfile.OwnsEmployee("emp-1"))
}
