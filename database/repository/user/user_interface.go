package userRepo

import (
	"context"
	"errors"

	"ecoskip/models"
)

var (
	// ErrDuplicateEmail is returned by Create when the unique email index rejects the insert.
	ErrDuplicateEmail = errors.New("email already registered")
	ErrNotFound       = errors.New("user not found")
)

// UserRepository defines methods for user data access.
type UserRepository interface {
	// Create inserts a new user record.
	Create(ctx context.Context, user *models.User) error
	// GetByID retrieves a user by its unique ID. Missing users yield ErrNotFound.
	GetByID(ctx context.Context, id string) (*models.User, error)
	// GetByEmail retrieves a user by its email address, or nil when none exists.
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}
