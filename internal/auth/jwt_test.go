package auth_test

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/arjunsdev/minifeed/internal/auth"
	"github.com/arjunsdev/minifeed/internal/config"
	"github.com/arjunsdev/minifeed/internal/utils"
)

func testJWTConfig() *config.JWTSettings {
	return &config.JWTSettings{
		Secret:      "test-secret",
		Expiry:      15 * time.Minute,
		LoginExpiry: 30 * time.Minute,
		Issuer:      "test-issuer",
	}
}

func TestNewJWTService(t *testing.T) {
	cfg := testJWTConfig()

	service := auth.NewJWTService(cfg)

	if service == nil {
		t.Fatal("Expected service to be created, got nil")
	}

	if service.Config != cfg {
		t.Errorf("Expected Config to be %v, got %v", cfg, service.Config)
	}
}

func TestGetConfig(t *testing.T) {
	// Test with nil config (should use defaults)
	service := &auth.JWTService{Config: nil}
	cfg := service.GetConfig()

	if cfg == nil {
		t.Fatal("Expected default config, got nil")
	}

	if cfg.Expiry != 15*time.Minute {
		t.Errorf("Expected default Expiry to be 15m, got %v", cfg.Expiry)
	}

	if cfg.LoginExpiry != 30*time.Minute {
		t.Errorf("Expected default LoginExpiry to be 30m, got %v", cfg.LoginExpiry)
	}

	// Test with provided config
	providedCfg := testJWTConfig()
	service = &auth.JWTService{Config: providedCfg}

	if service.GetConfig() != providedCfg {
		t.Errorf("Expected provided config, got %v", service.GetConfig())
	}
}

func TestIssueAndVerifyToken(t *testing.T) {
	service := auth.NewJWTService(testJWTConfig())

	token, err := service.IssueToken("johndoe", 15*time.Minute)
	if err != nil {
		t.Fatalf("Expected no error issuing token, got %v", err)
	}

	if token == "" {
		t.Fatal("Expected a token, got empty string")
	}

	subject, err := service.VerifyToken(token)
	if err != nil {
		t.Fatalf("Expected no error verifying token, got %v", err)
	}

	if subject != "johndoe" {
		t.Errorf("Expected subject 'johndoe', got %q", subject)
	}
}

func TestIssueTokenDefaultTTL(t *testing.T) {
	service := auth.NewJWTService(testJWTConfig())

	// Non-positive TTL falls back to the configured default
	token, err := service.IssueToken("johndoe", 0)
	if err != nil {
		t.Fatalf("Expected no error issuing token, got %v", err)
	}

	subject, err := service.VerifyToken(token)
	if err != nil {
		t.Fatalf("Expected token with default TTL to verify, got %v", err)
	}

	if subject != "johndoe" {
		t.Errorf("Expected subject 'johndoe', got %q", subject)
	}
}

func TestIssueLoginToken(t *testing.T) {
	service := auth.NewJWTService(testJWTConfig())

	token, err := service.IssueLoginToken("johndoe")
	if err != nil {
		t.Fatalf("Expected no error issuing login token, got %v", err)
	}

	subject, err := service.VerifyToken(token)
	if err != nil {
		t.Fatalf("Expected login token to verify, got %v", err)
	}

	if subject != "johndoe" {
		t.Errorf("Expected subject 'johndoe', got %q", subject)
	}
}

func TestVerifyExpiredToken(t *testing.T) {
	service := auth.NewJWTService(testJWTConfig())

	token, err := service.IssueToken("johndoe", -1*time.Hour)
	if err != nil {
		t.Fatalf("Expected no error issuing token, got %v", err)
	}

	_, err = service.VerifyToken(token)
	if err == nil {
		t.Fatal("Expected error for expired token, got nil")
	}

	if !errors.Is(err, utils.ErrExpiredToken) {
		t.Errorf("Expected expired token error, got %v", err)
	}
}

func TestVerifyTamperedToken(t *testing.T) {
	service := auth.NewJWTService(testJWTConfig())

	token, err := service.IssueToken("johndoe", 15*time.Minute)
	if err != nil {
		t.Fatalf("Expected no error issuing token, got %v", err)
	}

	// Flip a character in the signature segment
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		t.Fatalf("Expected three token segments, got %d", len(parts))
	}
	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(sig)

	_, err = service.VerifyToken(tampered)
	if err == nil {
		t.Fatal("Expected error for tampered token, got nil")
	}

	if !errors.Is(err, utils.ErrInvalidToken) {
		t.Errorf("Expected invalid token error, got %v", err)
	}
}

func TestVerifyTokenWrongSecret(t *testing.T) {
	issuer := auth.NewJWTService(testJWTConfig())

	otherCfg := testJWTConfig()
	otherCfg.Secret = "different-secret"
	verifier := auth.NewJWTService(otherCfg)

	token, err := issuer.IssueToken("johndoe", 15*time.Minute)
	if err != nil {
		t.Fatalf("Expected no error issuing token, got %v", err)
	}

	_, err = verifier.VerifyToken(token)
	if err == nil {
		t.Fatal("Expected error verifying with wrong secret, got nil")
	}
}

func TestVerifyMalformedToken(t *testing.T) {
	service := auth.NewJWTService(testJWTConfig())

	for _, malformed := range []string{"", "not-a-token", "a.b", "a.b.c"} {
		_, err := service.VerifyToken(malformed)
		if err == nil {
			t.Errorf("Expected error for malformed token %q, got nil", malformed)
		}
	}
}

func TestDistinctTokensForSameSubject(t *testing.T) {
	service := auth.NewJWTService(testJWTConfig())

	first, err := service.IssueToken("johndoe", 15*time.Minute)
	if err != nil {
		t.Fatalf("Expected no error issuing first token, got %v", err)
	}

	second, err := service.IssueToken("johndoe", 15*time.Minute)
	if err != nil {
		t.Fatalf("Expected no error issuing second token, got %v", err)
	}

	// The jti claim makes every issuance unique
	if first == second {
		t.Error("Expected distinct tokens for the same subject")
	}

	for _, token := range []string{first, second} {
		subject, err := service.VerifyToken(token)
		if err != nil {
			t.Errorf("Expected token to verify, got %v", err)
		}
		if subject != "johndoe" {
			t.Errorf("Expected subject 'johndoe', got %q", subject)
		}
	}
}
