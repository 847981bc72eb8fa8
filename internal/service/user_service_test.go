package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/arjunsdev/minifeed/internal/auth"
	"github.com/arjunsdev/minifeed/internal/constants"
	"github.com/arjunsdev/minifeed/internal/models"
	"github.com/arjunsdev/minifeed/internal/service"
	"github.com/arjunsdev/minifeed/internal/utils"
)

func TestRegister(t *testing.T) {
	userRepo := new(MockUserRepository)
	sequencer := new(MockSequencer)
	userService := service.NewUserService(userRepo, sequencer, fastPasswordConfig())

	sequencer.On("NextSequence", mock.Anything, constants.SeqUsers).Return(int64(7), nil)

	var stored *models.User
	userRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.User")).
		Run(func(args mock.Arguments) {
			stored = args.Get(1).(*models.User)
		}).
		Return(nil)

	reg := &models.UserRegistration{
		Username: "johndoe",
		FullName: "John Doe",
		Password: "secretpassword",
	}

	user, err := userService.Register(context.Background(), reg)

	require.NoError(t, err)
	require.NotNil(t, stored)

	// Stored document carries the hash, never the plaintext
	assert.Equal(t, int64(7), stored.ID)
	assert.NotEmpty(t, stored.HashedPassword)
	assert.NotEqual(t, "secretpassword", stored.HashedPassword)

	valid, err := auth.VerifyPassword("secretpassword", stored.HashedPassword)
	require.NoError(t, err)
	assert.True(t, valid)

	// Returned user is sanitized
	assert.Equal(t, int64(7), user.ID)
	assert.Equal(t, "johndoe", user.Username)
	assert.Empty(t, user.HashedPassword)

	userRepo.AssertExpectations(t)
	sequencer.AssertExpectations(t)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	userRepo := new(MockUserRepository)
	sequencer := new(MockSequencer)
	userService := service.NewUserService(userRepo, sequencer, fastPasswordConfig())

	sequencer.On("NextSequence", mock.Anything, constants.SeqUsers).Return(int64(8), nil)
	userRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.User")).
		Return(utils.NewDuplicateError("User", constants.FieldUsername, "johndoe"))

	reg := &models.UserRegistration{
		Username: "johndoe",
		FullName: "John Doe",
		Password: "secretpassword",
	}

	_, err := userService.Register(context.Background(), reg)

	require.Error(t, err)
	assert.True(t, utils.IsDuplicateError(err))
	assert.Equal(t, 409, utils.StatusCode(err))
}

func TestRegisterInvalidUsername(t *testing.T) {
	userRepo := new(MockUserRepository)
	sequencer := new(MockSequencer)
	userService := service.NewUserService(userRepo, sequencer, fastPasswordConfig())

	for _, username := range []string{"ab", "john doe", "john-doe!"} {
		reg := &models.UserRegistration{
			Username: username,
			FullName: "John Doe",
			Password: "secretpassword",
		}

		_, err := userService.Register(context.Background(), reg)

		require.Error(t, err, "username %q should be rejected", username)
		assert.True(t, utils.IsValidationError(err))
	}

	// Rejected registrations must not mint IDs or touch the store
	sequencer.AssertNotCalled(t, "NextSequence", mock.Anything, mock.Anything)
	userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRegisterDisabledAccount(t *testing.T) {
	userRepo := new(MockUserRepository)
	sequencer := new(MockSequencer)
	userService := service.NewUserService(userRepo, sequencer, fastPasswordConfig())

	sequencer.On("NextSequence", mock.Anything, constants.SeqUsers).Return(int64(9), nil)

	var stored *models.User
	userRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.User")).
		Run(func(args mock.Arguments) {
			stored = args.Get(1).(*models.User)
		}).
		Return(nil)

	reg := &models.UserRegistration{
		Username: "inactive",
		FullName: "Disabled Account",
		Password: "secretpassword",
		Disabled: true,
	}

	user, err := userService.Register(context.Background(), reg)

	require.NoError(t, err)
	assert.True(t, stored.Disabled)
	assert.True(t, user.Disabled)
}

func TestListSanitizesUsers(t *testing.T) {
	userRepo := new(MockUserRepository)
	sequencer := new(MockSequencer)
	userService := service.NewUserService(userRepo, sequencer, fastPasswordConfig())

	userRepo.On("List", mock.Anything).Return([]*models.User{
		{ID: 1, Username: "johndoe", HashedPassword: "some-hash"},
		{ID: 2, Username: "janedoe", HashedPassword: "other-hash"},
	}, nil)

	users, err := userService.List(context.Background())

	require.NoError(t, err)
	require.Len(t, users, 2)
	for _, user := range users {
		assert.Empty(t, user.HashedPassword)
	}
}
