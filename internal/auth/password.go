package auth

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/arjunsdev/minifeed/internal/config"
	"github.com/arjunsdev/minifeed/internal/constants"
)

// PasswordConfig contains the parameters for password hashing
type PasswordConfig struct {
	Cost int
}

// DefaultPasswordConfig returns the recommended password hashing configuration
func DefaultPasswordConfig() *PasswordConfig {
	return &PasswordConfig{
		Cost: constants.DefaultBcryptCost,
	}
}

// ConfigFromAppConfig creates a PasswordConfig from the application configuration
func ConfigFromAppConfig(appConfig *config.AppConfig) *PasswordConfig {
	cost := appConfig.PasswordHash.Cost
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = constants.DefaultBcryptCost
	}
	return &PasswordConfig{
		Cost: cost,
	}
}

// HashPassword hashes a plaintext password with bcrypt.
// The salt is generated internally and embedded in the resulting hash string,
// so nothing besides the hash needs to be persisted.
func HashPassword(password string, cfg *PasswordConfig) (string, error) {
	if password == "" {
		return "", errors.New("password cannot be empty")
	}
	if cfg == nil {
		cfg = DefaultPasswordConfig()
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), cfg.Cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	return string(hash), nil
}

// VerifyPassword checks a plaintext password against a stored hash.
// It returns false without error on a mismatch; an error signals a hash
// that could not be parsed at all.
func VerifyPassword(password, encodedHash string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(encodedHash), []byte(password))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	return false, fmt.Errorf("failed to verify password: %w", err)
}
