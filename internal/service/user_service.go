package service

import (
	"context"

	"github.com/arjunsdev/minifeed/internal/auth"
	"github.com/arjunsdev/minifeed/internal/constants"
	"github.com/arjunsdev/minifeed/internal/database"
	"github.com/arjunsdev/minifeed/internal/models"
	"github.com/arjunsdev/minifeed/internal/repository"
	"github.com/arjunsdev/minifeed/internal/utils"
)

// UserService handles user registration and lookup
type UserService struct {
	userRepo       repository.UserRepository
	sequencer      database.Sequencer
	passwordConfig *auth.PasswordConfig
}

// NewUserService creates a new UserService
func NewUserService(
	userRepo repository.UserRepository,
	sequencer database.Sequencer,
	passwordConfig *auth.PasswordConfig,
) *UserService {
	return &UserService{
		userRepo:       userRepo,
		sequencer:      sequencer,
		passwordConfig: passwordConfig,
	}
}

// Register creates a new user account. The plaintext password is hashed
// before the document is built, the numeric ID comes from the atomic
// counter sequence, and the returned user is sanitized for the response.
// A duplicate username surfaces as a conflict from the repository.
func (s *UserService) Register(ctx context.Context, reg *models.UserRegistration) (*models.User, error) {
	// Checked here as well as at decode time so non-HTTP callers
	// (the seeder, future scripts) cannot slip past the rules.
	if err := utils.ValidateUsername(reg.Username); err != nil {
		return nil, err
	}

	hash, err := auth.HashPassword(reg.Password, s.passwordConfig)
	if err != nil {
		return nil, err
	}

	id, err := s.sequencer.NextSequence(ctx, constants.SeqUsers)
	if err != nil {
		return nil, err
	}

	user := models.NewUser(reg.Username, reg.FullName)
	user.ID = id
	user.HashedPassword = hash
	user.Disabled = reg.Disabled

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user.Sanitize(), nil
}

// GetByUsername retrieves a user by username
func (s *UserService) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.userRepo.GetByUsername(ctx, username)
}

// List retrieves all users with password hashes stripped
func (s *UserService) List(ctx context.Context) ([]*models.User, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	sanitized := make([]*models.User, 0, len(users))
	for _, user := range users {
		sanitized = append(sanitized, user.Sanitize())
	}

	return sanitized, nil
}
