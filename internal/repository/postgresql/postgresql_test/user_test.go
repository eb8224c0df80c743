package postgresql_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tipl/employee-monitoring/internal/domain/user"
	"github.com/tipl/employee-monitoring/internal/repository/postgresql"
	"golang.org/x/crypto/bcrypt"
)

func TestUserCreateAndLookup(t *testing.T) {
	ctx := context.Background()
	truncateTables(t, ctx)

	repo := postgresql.NewUserRepository(testDB)

	hash, err := bcrypt.GenerateFromPassword([]byte("Admin@12345"), bcrypt.DefaultCost)
	require.NoError(t, err)

	created, err := repo.Create(ctx, user.User{
		Email:        "admin@tipl.local",
		Name:         "System Admin",
		PasswordHash: string(hash),
		Role:         user.RoleAdmin,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	found, err := repo.GetByEmail(ctx, "admin@tipl.local")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)
	assert.Equal(t, user.RoleAdmin, found.Role)
	assert.Nil(t, found.EmployeeID, "no employee profile linked yet")

	// The stored hash verifies against the original password.
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(found.PasswordHash), []byte("Admin@12345")))

	_, err = repo.Create(ctx, user.User{
		Email:        "admin@tipl.local",
		Name:         "Duplicate",
		PasswordHash: string(hash),
		Role:         user.RoleAdmin,
	})
	assert.ErrorIs(t, err, user.ErrEmailExists)

	_, err = repo.GetByEmail(ctx, "nobody@tipl.local")
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}
