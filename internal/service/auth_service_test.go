package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/arjunsdev/minifeed/internal/auth"
	"github.com/arjunsdev/minifeed/internal/models"
	"github.com/arjunsdev/minifeed/internal/service"
	"github.com/arjunsdev/minifeed/internal/utils"
)

// fastPasswordConfig keeps bcrypt cheap in tests
func fastPasswordConfig() *auth.PasswordConfig {
	return &auth.PasswordConfig{Cost: bcrypt.MinCost}
}

func hashedTestPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := auth.HashPassword(password, fastPasswordConfig())
	require.NoError(t, err)
	return hash
}

func TestAuthenticateSuccess(t *testing.T) {
	userRepo := new(MockUserRepository)
	tokens := new(MockTokenService)
	authService := service.NewAuthService(userRepo, tokens)

	stored := &models.User{
		ID:             1,
		Username:       "johndoe",
		HashedPassword: hashedTestPassword(t, "secretpassword"),
	}
	userRepo.On("GetByUsername", mock.Anything, "johndoe").Return(stored, nil)

	user, err := authService.Authenticate(context.Background(), "johndoe", "secretpassword")

	require.NoError(t, err)
	assert.Equal(t, int64(1), user.ID)
	userRepo.AssertExpectations(t)
}

func TestAuthenticateUnknownUsername(t *testing.T) {
	userRepo := new(MockUserRepository)
	tokens := new(MockTokenService)
	authService := service.NewAuthService(userRepo, tokens)

	userRepo.On("GetByUsername", mock.Anything, "ghost").Return(nil, utils.NewNotFoundError("User", "ghost"))

	_, err := authService.Authenticate(context.Background(), "ghost", "whatever")

	require.Error(t, err)
	appErr := utils.ParseError(err)
	assert.Equal(t, 401, appErr.StatusCode)
	assert.Equal(t, "Incorrect username or password", appErr.Message)
}

func TestAuthenticateWrongPassword(t *testing.T) {
	userRepo := new(MockUserRepository)
	tokens := new(MockTokenService)
	authService := service.NewAuthService(userRepo, tokens)

	stored := &models.User{
		ID:             1,
		Username:       "johndoe",
		HashedPassword: hashedTestPassword(t, "secretpassword"),
	}
	userRepo.On("GetByUsername", mock.Anything, "johndoe").Return(stored, nil)

	_, err := authService.Authenticate(context.Background(), "johndoe", "wrongpassword")

	require.Error(t, err)
	appErr := utils.ParseError(err)
	assert.Equal(t, 401, appErr.StatusCode)

	// Unknown username and wrong password must be indistinguishable
	userRepo2 := new(MockUserRepository)
	userRepo2.On("GetByUsername", mock.Anything, "ghost").Return(nil, utils.NewNotFoundError("User", "ghost"))
	authService2 := service.NewAuthService(userRepo2, tokens)

	_, err2 := authService2.Authenticate(context.Background(), "ghost", "whatever")
	require.Error(t, err2)
	assert.Equal(t, appErr.Message, utils.ParseError(err2).Message)
}

func TestLoginIssuesToken(t *testing.T) {
	userRepo := new(MockUserRepository)
	tokens := new(MockTokenService)
	authService := service.NewAuthService(userRepo, tokens)

	stored := &models.User{
		ID:             1,
		Username:       "johndoe",
		HashedPassword: hashedTestPassword(t, "secretpassword"),
	}
	userRepo.On("GetByUsername", mock.Anything, "johndoe").Return(stored, nil)
	tokens.On("IssueLoginToken", "johndoe").Return("signed-token", nil)

	response, err := authService.Login(context.Background(), "johndoe", "secretpassword")

	require.NoError(t, err)
	assert.Equal(t, "signed-token", response.AccessToken)
	assert.Equal(t, "bearer", response.TokenType)
	tokens.AssertExpectations(t)
}

func TestLoginBadCredentials(t *testing.T) {
	userRepo := new(MockUserRepository)
	tokens := new(MockTokenService)
	authService := service.NewAuthService(userRepo, tokens)

	userRepo.On("GetByUsername", mock.Anything, "ghost").Return(nil, utils.NewNotFoundError("User", "ghost"))

	_, err := authService.Login(context.Background(), "ghost", "whatever")

	require.Error(t, err)
	assert.Equal(t, 401, utils.StatusCode(err))
	tokens.AssertNotCalled(t, "IssueLoginToken", mock.Anything)
}
