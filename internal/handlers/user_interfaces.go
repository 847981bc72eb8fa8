package handlers

import (
	"context"

	"github.com/arjunsdev/minifeed/internal/models"
	"github.com/arjunsdev/minifeed/internal/service"
)

// UserServiceInterface defines the operations the user handlers need
type UserServiceInterface interface {
	// Register creates a new user account and returns the sanitized record
	Register(ctx context.Context, reg *models.UserRegistration) (*models.User, error)

	// List retrieves all users with password hashes stripped
	List(ctx context.Context) ([]*models.User, error)
}

// Ensure service.UserService implements UserServiceInterface
var _ UserServiceInterface = (*service.UserService)(nil)
