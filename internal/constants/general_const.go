// Package constants provides shared constant values used throughout the application.
//
// The general_const.go file defines general-purpose constants related to routing
// and request parameters. These constants ensure consistent API patterns and URL
// structure throughout the application.
package constants

// Base Routes define the root URL paths for different parts of the API.
const (
	// TokenPath is the endpoint that exchanges credentials for a bearer token.
	TokenPath = "/token"

	// HealthPath is the endpoint for health checks and system status.
	HealthPath = "/health"

	// VersionPath is the endpoint reporting build and environment information.
	VersionPath = "/version"
)

// URL Parameters define path parameter names used in route definitions.
const (
	// ParamPostID is the URL parameter for post identifiers.
	ParamPostID = "postID"
)

// Query Parameters define common query string parameter names.
const (
	// QueryParamComment is the query parameter carrying comment text.
	QueryParamComment = "comment"
)

// Context Keys define the string values used for request context keys.
// The auth package wraps these in its own ContextKey type.
const (
	// CurrentUserContextKey stores the resolved user record for the request.
	CurrentUserContextKey = "current_user"

	// UsernameContextKey stores the authenticated username.
	UsernameContextKey = "username"

	// RequestIDContextKey stores the unique request ID.
	RequestIDContextKey = "request_id"
)
