package handlers

import (
	"net/http"

	"github.com/arjunsdev/minifeed/internal/utils"
)

// AuthHandler handles the token endpoint
type AuthHandler struct {
	authService AuthServiceInterface
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService AuthServiceInterface) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Login handles POST /token. Credentials arrive form-encoded in the
// OAuth2 password-flow shape: fields "username" and "password".
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		utils.BadRequest(w, "Invalid form data", nil)
		return
	}

	username := r.PostFormValue("username")
	password := r.PostFormValue("password")
	if username == "" || password == "" {
		utils.BadRequest(w, "Username and password are required", nil)
		return
	}

	token, err := h.authService.Login(r.Context(), username, password)
	if err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	utils.JSON(w, http.StatusOK, token)
}
