package handlers

import (
	"context"

	"github.com/arjunsdev/minifeed/internal/service"
)

// AuthServiceInterface defines the operations the auth handlers need.
// Handlers depend on this interface so tests can mock the service layer.
type AuthServiceInterface interface {
	// Login authenticates credentials and issues a bearer token
	Login(ctx context.Context, username, password string) (*service.TokenResponse, error)
}

// Ensure service.AuthService implements AuthServiceInterface
var _ AuthServiceInterface = (*service.AuthService)(nil)
