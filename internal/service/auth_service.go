package service

import (
	"context"
	"errors"

	"github.com/arjunsdev/minifeed/internal/auth"
	"github.com/arjunsdev/minifeed/internal/constants"
	"github.com/arjunsdev/minifeed/internal/models"
	"github.com/arjunsdev/minifeed/internal/repository"
	"github.com/arjunsdev/minifeed/internal/utils"
)

// TokenResponse is the payload returned by a successful login
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// AuthService handles credential verification and token issuance
type AuthService struct {
	userRepo     repository.UserRepository
	tokenService auth.TokenService
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo repository.UserRepository, tokenService auth.TokenService) *AuthService {
	return &AuthService{
		userRepo:     userRepo,
		tokenService: tokenService,
	}
}

// Authenticate verifies a username and password pair and returns the user.
// An unknown username and a wrong password produce the same error, so the
// response never reveals which accounts exist.
func (s *AuthService) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if utils.IsNotFoundError(err) {
			utils.LogAuth("login", 0, username, false, "unknown username")
			return nil, utils.NewInvalidCredentialsError()
		}
		return nil, err
	}

	valid, err := auth.VerifyPassword(password, user.HashedPassword)
	if err != nil {
		utils.LogAuth("login", user.ID, username, false, "hash verification error")
		return nil, utils.NewInternalServerError(err)
	}
	if !valid {
		utils.LogAuth("login", user.ID, username, false, "wrong password")
		return nil, utils.NewInvalidCredentialsError()
	}

	return user, nil
}

// Login authenticates the credentials and issues a bearer token on success.
// A disabled account still receives a token; the request identity resolver
// rejects it on first use, keeping the gate in one place.
func (s *AuthService) Login(ctx context.Context, username, password string) (*TokenResponse, error) {
	user, err := s.Authenticate(ctx, username, password)
	if err != nil {
		return nil, err
	}

	token, err := s.tokenService.IssueLoginToken(user.Username)
	if err != nil {
		return nil, utils.NewInternalServerError(errors.New("failed to issue token"))
	}

	utils.LogAuth("login", user.ID, username, true, "")

	return &TokenResponse{
		AccessToken: token,
		TokenType:   constants.TokenTypeBearer,
	}, nil
}
