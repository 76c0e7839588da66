package userRepo

import (
	"context"

	"parkwise/models"
)

// UserRepository defines methods for user data access.
type UserRepository interface {
	// GetByEmail retrieves a user by its email address. Returns (nil, nil)
	// when no user exists.
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	// GetByTokenHash retrieves a user holding the given session token hash.
	GetByTokenHash(ctx context.Context, tokenHash string) (*models.User, error)
	// Create inserts a new user record.
	Create(ctx context.Context, user *models.User) error
	// Update modifies an existing user record.
	Update(ctx context.Context, user *models.User) error
}
