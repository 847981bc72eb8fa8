package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"github.com/arjunsdev/minifeed/internal/config"
	"github.com/arjunsdev/minifeed/internal/constants"
	"github.com/arjunsdev/minifeed/internal/utils"
)

// ErrInvalidSigningMethod is returned from the keyfunc when a token was
// signed with anything other than HMAC.
var ErrInvalidSigningMethod = errors.New("invalid signing method")

// Claims represents the claims carried by a bearer token.
// The subject registered claim is the username; the token deliberately carries
// no role or disabled status, which are re-fetched live on every request.
type Claims struct {
	jwt.RegisteredClaims
}

// JWTService provides bearer token issuance and verification.
// Signing is HMAC-SHA256 with a process-wide shared secret.
type JWTService struct {
	Config *config.JWTSettings
}

// NewJWTService creates a new JWTService instance
func NewJWTService(config *config.JWTSettings) *JWTService {
	return &JWTService{
		Config: config,
	}
}

// GetConfig returns the JWT settings, falling back to defaults when unset.
func (s *JWTService) GetConfig() *config.JWTSettings {
	if s.Config == nil {
		return &config.JWTSettings{
			Expiry:      constants.DefaultTokenExpiry,
			LoginExpiry: constants.DefaultLoginTokenExpiry,
			Issuer:      "minifeed-api",
		}
	}
	return s.Config
}

// IssueToken produces a signed token for the given subject with an absolute
// expiry of now + ttl. A non-positive ttl falls back to the configured default.
func (s *JWTService) IssueToken(subject string, ttl time.Duration) (string, error) {
	cfg := s.GetConfig()
	if ttl <= 0 {
		ttl = cfg.Expiry
	}

	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    cfg.Issuer,
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			ID:        uuid.New().String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString([]byte(cfg.Secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

// IssueLoginToken produces a token with the login endpoint's validity window.
func (s *JWTService) IssueLoginToken(subject string) (string, error) {
	return s.IssueToken(subject, s.GetConfig().LoginExpiry)
}

// VerifyToken verifies a token's signature and expiry and returns its subject.
// A malformed token, a bad signature, an unexpected signing method, and an
// elapsed expiry all fail with a typed unauthorized error.
func (s *JWTService) VerifyToken(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidSigningMethod
		}
		return []byte(s.GetConfig().Secret), nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", utils.NewExpiredTokenError()
		}
		return "", utils.NewInvalidTokenError()
	}

	if !token.Valid {
		return "", utils.NewInvalidTokenError()
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || claims.Subject == "" {
		return "", utils.NewInvalidTokenError()
	}

	return claims.Subject, nil
}
