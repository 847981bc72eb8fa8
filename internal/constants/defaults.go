// Package constants provides shared constant values used throughout the application.
//
// The defaults.go file defines default values and limits used throughout the
// application. These constants provide sensible defaults for configuration
// settings, establish boundaries for resource usage, and define security
// parameters.
package constants

import "time"

// Default Configuration Values define fallback settings when not specified in configuration.
const (
	// DefaultServerPort is the default HTTP server port.
	DefaultServerPort = 8080

	// DefaultLogLevel is the default logging verbosity level.
	DefaultLogLevel = "info"

	// DefaultLogFormat is the default logging output format.
	DefaultLogFormat = "json"
)

// Environment Types define the recognized application running environments.
const (
	// EnvDevelopment identifies a development environment with debugging features enabled.
	EnvDevelopment = "development"

	// EnvTesting identifies a testing environment for automated tests.
	EnvTesting = "testing"

	// EnvProduction identifies a production environment with optimized settings.
	EnvProduction = "production"
)

// Token Expiry Defaults define how long issued bearer tokens remain valid.
const (
	// DefaultTokenExpiry is the fallback validity window when no TTL is requested.
	DefaultTokenExpiry = 15 * time.Minute

	// DefaultLoginTokenExpiry is the validity window used by the login endpoint.
	DefaultLoginTokenExpiry = 30 * time.Minute
)

// Server Timeouts define the HTTP server's connection handling limits.
const (
	// DefaultReadTimeout limits how long reading a request may take.
	DefaultReadTimeout = 10 * time.Second

	// DefaultWriteTimeout limits how long writing a response may take.
	DefaultWriteTimeout = 30 * time.Second

	// DefaultIdleTimeout limits how long idle keep-alive connections are held.
	DefaultIdleTimeout = 120 * time.Second

	// DefaultShutdownTimeout bounds graceful shutdown on termination signals.
	DefaultShutdownTimeout = 15 * time.Second
)

// Request Limits define boundaries on inbound request content.
const (
	// MaxRequestBodySize is the maximum size in bytes for HTTP request bodies.
	MaxRequestBodySize = 1 << 20 // 1 MB

	// MinUsernameLength is the minimum accepted username length.
	MinUsernameLength = 3

	// MaxUsernameLength is the maximum accepted username length.
	MaxUsernameLength = 50

	// MinPasswordLength is the minimum accepted password length.
	MinPasswordLength = 8
)

// Password Hashing Defaults define parameters for the bcrypt hasher.
const (
	// DefaultBcryptCost is the bcrypt work factor used when none is configured.
	DefaultBcryptCost = 12
)
