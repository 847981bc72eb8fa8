// Package constants provides shared constant values used throughout the application.
//
// The errorcodes.go file defines user-facing error messages. These are carefully
// worded to be informative without revealing implementation details: in particular,
// failed logins never distinguish an unknown username from a wrong password.
package constants

// User-Facing Error Messages define standardized messages that can be safely presented to users.
const (
	// MsgAuthRequired indicates that the user must authenticate to access the resource.
	MsgAuthRequired = "Authentication required"

	// MsgInvalidCredentials indicates that login credentials are incorrect.
	MsgInvalidCredentials = "Incorrect username or password"

	// MsgCouldNotValidate indicates that a presented bearer token failed verification.
	MsgCouldNotValidate = "Could not validate credentials"

	// MsgInactiveUser indicates that the account behind a valid token is disabled.
	MsgInactiveUser = "Inactive user"

	// MsgTokenExpired indicates that an authentication token has expired.
	MsgTokenExpired = "Token has expired"

	// MsgUserNotFound indicates that a referenced user does not exist.
	MsgUserNotFound = "User not found"

	// MsgPostNotFound indicates that a referenced post does not exist.
	MsgPostNotFound = "Post not found"

	// MsgResourceNotFound provides a generic missing-resource message.
	MsgResourceNotFound = "The requested resource could not be found"

	// MsgMethodNotAllowed indicates an unsupported HTTP method for the route.
	MsgMethodNotAllowed = "Method not allowed"

	// MsgInternalServerError provides a generic server error message.
	MsgInternalServerError = "An internal server error occurred"

	// MsgRequestBodyTooLarge indicates the request body exceeded the size limit.
	MsgRequestBodyTooLarge = "Request body is too large"

	// MsgEmptyRequestBody indicates a request that required a body arrived without one.
	MsgEmptyRequestBody = "Request body must not be empty"

	// MsgMalformedJSON indicates the request body could not be parsed as JSON.
	MsgMalformedJSON = "Request body contains malformed JSON"

	// MsgMissingComment indicates a comment request without comment text.
	MsgMissingComment = "Comment text is required"
)
