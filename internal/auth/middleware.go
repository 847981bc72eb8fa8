package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/arjunsdev/minifeed/internal/constants"
	"github.com/arjunsdev/minifeed/internal/models"
	"github.com/arjunsdev/minifeed/internal/utils"
)

// ContextKey is a custom type for context keys to avoid collisions
type ContextKey string

// Context keys for request-scoped values
const (
	// UserContextKey is the context key for the resolved user record
	UserContextKey ContextKey = constants.CurrentUserContextKey

	// UsernameContextKey is the context key for the authenticated username
	UsernameContextKey ContextKey = constants.UsernameContextKey

	// RequestIDContextKey is the context key for the request ID
	RequestIDContextKey ContextKey = constants.RequestIDContextKey
)

// UserFetcher loads the live user record backing a token subject.
// The repository layer implements this; the middleware depends on it
// so that disabled accounts are rejected even while their tokens are
// still within their validity window.
type UserFetcher interface {
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}

// Middleware resolves a request's identity from its bearer token.
type Middleware struct {
	tokens TokenService
	users  UserFetcher
}

// NewMiddleware creates a new authentication middleware
func NewMiddleware(tokens TokenService, users UserFetcher) *Middleware {
	return &Middleware{
		tokens: tokens,
		users:  users,
	}
}

// RequireAuth returns middleware that rejects requests without a valid
// bearer token. On success the live user record is attached to the
// request context for handlers to read.
func (m *Middleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenString, err := extractBearerToken(r)
		if err != nil {
			utils.ErrorFromAppError(w, utils.ParseError(err))
			return
		}

		username, err := m.tokens.VerifyToken(tokenString)
		if err != nil {
			utils.LogAuth("token_verification", 0, "", false, err.Error())
			utils.ErrorFromAppError(w, utils.ParseError(err))
			return
		}

		// Re-fetch the account on every request: a token outlives
		// deletions and disables, the context attached here must not.
		// Only a confirmed missing account invalidates the token; a
		// store failure is a server-side problem, not a bad credential.
		user, err := m.users.GetByUsername(r.Context(), username)
		if err != nil {
			if utils.IsNotFoundError(err) {
				utils.LogAuth("user_resolution", 0, username, false, "account not found")
				utils.ErrorFromAppError(w, utils.NewInvalidTokenError())
				return
			}
			utils.LogAuth("user_resolution", 0, username, false, "store lookup failed")
			utils.ErrorFromAppError(w, utils.NewInternalServerError(err))
			return
		}

		if user.Disabled {
			utils.LogAuth("user_resolution", user.ID, username, false, "account disabled")
			utils.ErrorFromAppError(w, utils.NewInactiveUserError())
			return
		}

		ctx := context.WithValue(r.Context(), UserContextKey, user)
		ctx = context.WithValue(ctx, UsernameContextKey, user.Username)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// extractBearerToken pulls the token out of the Authorization header.
func extractBearerToken(r *http.Request) (string, error) {
	authHeader := r.Header.Get(constants.HeaderAuthorization)
	if authHeader == "" {
		return "", utils.NewUnauthorizedError(constants.MsgAuthRequired)
	}

	if !strings.HasPrefix(authHeader, constants.BearerTokenPrefix) {
		return "", utils.NewInvalidTokenError()
	}

	token := strings.TrimSpace(strings.TrimPrefix(authHeader, constants.BearerTokenPrefix))
	if token == "" {
		return "", utils.NewInvalidTokenError()
	}

	return token, nil
}

// GetCurrentUser retrieves the resolved user record from the request context.
// It returns nil when the request did not pass through RequireAuth.
func GetCurrentUser(r *http.Request) *models.User {
	user, ok := r.Context().Value(UserContextKey).(*models.User)
	if !ok {
		return nil
	}
	return user
}

// GetUsername retrieves the authenticated username from the request context
func GetUsername(r *http.Request) string {
	username, ok := r.Context().Value(UsernameContextKey).(string)
	if !ok {
		return ""
	}
	return username
}

// GetRequestID retrieves the request ID from the request context
func GetRequestID(r *http.Request) string {
	requestID, ok := r.Context().Value(RequestIDContextKey).(string)
	if !ok {
		log.Debug().Msg("Request ID not found in context")
		return ""
	}
	return requestID
}
