package auth

import (
	"time"

	"github.com/arjunsdev/minifeed/internal/config"
)

// TokenService defines the operations needed for issuing and verifying
// bearer tokens. Handlers and middleware depend on this interface rather
// than the concrete JWTService so tests can substitute their own issuer.
type TokenService interface {
	// IssueToken produces a signed token for the subject, valid for ttl.
	IssueToken(subject string, ttl time.Duration) (string, error)

	// IssueLoginToken produces a token with the login validity window.
	IssueLoginToken(subject string) (string, error)

	// VerifyToken verifies a token and returns its subject.
	VerifyToken(tokenString string) (string, error)

	// GetConfig returns the token settings in use.
	GetConfig() *config.JWTSettings
}

// Ensure JWTService implements TokenService
var _ TokenService = (*JWTService)(nil)
