package handlers

import (
	"net/http"

	"github.com/arjunsdev/minifeed/internal/auth"
	"github.com/arjunsdev/minifeed/internal/models"
	"github.com/arjunsdev/minifeed/internal/utils"
)

// UserHandler handles user registration and lookup endpoints
type UserHandler struct {
	userService UserServiceInterface
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(userService UserServiceInterface) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// Register handles POST /users/. The response is the stored user without
// the password hash; a duplicate username is a conflict.
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var reg models.UserRegistration
	if err := utils.DecodeAndValidate(r, &reg); err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	user, err := h.userService.Register(r.Context(), &reg)
	if err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	utils.JSON(w, http.StatusCreated, user)
}

// GetCurrentUser handles GET /users/me/. The record comes from the request
// identity resolver, so it is already live and non-disabled.
func (h *UserHandler) GetCurrentUser(w http.ResponseWriter, r *http.Request) {
	user := auth.GetCurrentUser(r)
	if user == nil {
		utils.Unauthorized(w, "")
		return
	}

	utils.JSON(w, http.StatusOK, user.Sanitize())
}

// ListUsers handles GET /users/
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.userService.List(r.Context())
	if err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	utils.JSON(w, http.StatusOK, users)
}
