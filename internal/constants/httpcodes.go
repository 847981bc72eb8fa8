// Package constants provides shared constant values used throughout the application.
//
// The httpcodes.go file defines HTTP-related constants such as status codes,
// response codes, headers, and content types. These constants ensure consistent
// HTTP communication patterns across the application and provide meaningful
// standardized responses to API clients.
package constants

// HTTP Status Codes define the standard HTTP response status codes used in the application.
const (
	// StatusOK indicates that the request has succeeded.
	StatusOK = 200

	// StatusCreated indicates that the request has succeeded and a new resource has been created.
	StatusCreated = 201

	// StatusNoContent indicates that the request has succeeded but there is no content to send.
	StatusNoContent = 204

	// StatusBadRequest indicates that the server cannot process the request due to client error.
	StatusBadRequest = 400

	// StatusUnauthorized indicates that the request lacks valid authentication credentials.
	StatusUnauthorized = 401

	// StatusForbidden indicates that the server understood the request but refuses to authorize it.
	StatusForbidden = 403

	// StatusNotFound indicates that the server cannot find the requested resource.
	StatusNotFound = 404

	// StatusMethodNotAllowed indicates that the request method is not supported for the requested resource.
	StatusMethodNotAllowed = 405

	// StatusConflict indicates that the request conflicts with the current state of the server.
	StatusConflict = 409

	// StatusInternalServerError indicates that the server encountered an unexpected condition.
	StatusInternalServerError = 500
)

// HTTP Response Code Types define application-specific response codes.
// These codes provide more detailed information about the response beyond HTTP status codes.
const (
	// ResponseSuccess indicates that the request was processed successfully.
	ResponseSuccess = true

	// ResponseFailure indicates that the request processing failed.
	ResponseFailure = false

	// CodeBadRequest indicates a malformed or invalid request.
	CodeBadRequest = "bad_request"

	// CodeUnauthorized indicates missing or invalid authentication.
	CodeUnauthorized = "unauthorized"

	// CodeForbidden indicates the user lacks permission for the requested action.
	CodeForbidden = "forbidden"

	// CodeNotFound indicates the requested resource does not exist.
	CodeNotFound = "not_found"

	// CodeMethodNotAllowed indicates the HTTP method is not supported for the route.
	CodeMethodNotAllowed = "method_not_allowed"

	// CodeConflict indicates the request conflicts with existing state.
	CodeConflict = "conflict"

	// CodeValidationError indicates the request payload failed validation.
	CodeValidationError = "validation_error"

	// CodeDuplicateResource indicates an attempt to create a resource that already exists.
	CodeDuplicateResource = "duplicate_resource"

	// CodeInvalidCredentials indicates a failed login attempt.
	CodeInvalidCredentials = "invalid_credentials"

	// CodeTokenExpired indicates the presented token is past its expiry.
	CodeTokenExpired = "token_expired"

	// CodeTokenInvalid indicates the presented token is malformed or has a bad signature.
	CodeTokenInvalid = "token_invalid"

	// CodeInactiveUser indicates the account behind a valid token is disabled.
	CodeInactiveUser = "inactive_user"

	// CodeAuthenticationFailed indicates a generic authentication failure.
	CodeAuthenticationFailed = "authentication_failed"

	// CodeInternalError indicates an unexpected server-side failure.
	CodeInternalError = "internal_error"
)

// HTTP Headers define the header names used by the application.
const (
	// HeaderContentType specifies the media type of the request or response body.
	HeaderContentType = "Content-Type"

	// HeaderAuthorization carries the bearer token for protected routes.
	HeaderAuthorization = "Authorization"

	// HeaderXRequestID carries the unique request identifier.
	HeaderXRequestID = "X-Request-ID"

	// HeaderXContentTypeOptions prevents MIME type sniffing.
	HeaderXContentTypeOptions = "X-Content-Type-Options"

	// HeaderXFrameOptions controls whether the response may be framed.
	HeaderXFrameOptions = "X-Frame-Options"

	// HeaderXXSSProtection enables browser XSS filtering.
	HeaderXXSSProtection = "X-XSS-Protection"

	// HeaderReferrerPolicy controls referrer information sent with requests.
	HeaderReferrerPolicy = "Referrer-Policy"

	// HeaderContentSecurityPolicy restricts resource loading.
	HeaderContentSecurityPolicy = "Content-Security-Policy"
)

// Content Types and header values.
const (
	// ContentTypeJSON is the media type for JSON payloads.
	ContentTypeJSON = "application/json"

	// ContentTypeForm is the media type for URL-encoded form payloads.
	ContentTypeForm = "application/x-www-form-urlencoded"

	// ContentTypeOptionsNoSniff disables MIME sniffing.
	ContentTypeOptionsNoSniff = "nosniff"

	// FrameOptionsDeny forbids framing of responses.
	FrameOptionsDeny = "DENY"

	// XSSProtectionModeBlock enables blocking mode for the XSS filter.
	XSSProtectionModeBlock = "1; mode=block"

	// ReferrerPolicyStrictOrigin limits referrer information to the origin.
	ReferrerPolicyStrictOrigin = "strict-origin-when-cross-origin"

	// CSPDefaultSrc restricts all resource loading to the same origin.
	CSPDefaultSrc = "default-src 'self'"
)

// Bearer token conventions.
const (
	// BearerTokenPrefix is the Authorization header scheme prefix.
	BearerTokenPrefix = "Bearer "

	// TokenTypeBearer is the token_type value returned by the login endpoint.
	TokenTypeBearer = "bearer"
)
