package user

import "context"

// UserRepository defines data access methods for identity records.
type UserRepository interface {
	Create(ctx context.Context, user User) (User, error)
	GetByID(ctx context.Context, id string) (User, error)

	// GetByEmail resolves a user for login, including the linked employee id.
	GetByEmail(ctx context.Context, email string) (User, error)
}
