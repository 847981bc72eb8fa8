package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/arjunsdev/minifeed/internal/constants"
	"github.com/arjunsdev/minifeed/internal/middleware"
	"github.com/arjunsdev/minifeed/internal/utils"
)

// routes builds the application router with its middleware stack
func (s *Server) routes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID())
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Recovery())
	if s.config.Logging.RequestLog {
		r.Use(middleware.RequestLogger())
	}
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(&s.config.CORS))

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		utils.NotFound(w, constants.MsgResourceNotFound)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		utils.MethodNotAllowed(w)
	})

	// Public routes
	r.Get(constants.HealthPath, s.handleHealth)
	r.Get(constants.VersionPath, s.handleVersion)
	r.Post(constants.TokenPath, s.authHandler.Login)
	r.Post("/users/", s.userHandler.Register)

	// Protected routes
	r.Group(func(r chi.Router) {
		r.Use(s.authMiddleware.RequireAuth)

		r.Get("/users/", s.userHandler.ListUsers)
		r.Get("/users/me/", s.userHandler.GetCurrentUser)

		r.Post("/posts/", s.postHandler.CreatePost)
		r.Get("/posts/", s.postHandler.ListPosts)
		r.Put("/posts/{postID}/like/", s.postHandler.LikePost)
		r.Put("/posts/{postID}/comment", s.postHandler.CommentPost)
	})

	return r
}

// handleHealth reports service and store health
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	status := "ok"
	storeStatus := "ok"
	code := http.StatusOK

	if err := s.store.HealthCheck(r.Context()); err != nil {
		status = "degraded"
		storeStatus = "unreachable"
		code = http.StatusServiceUnavailable
	}

	utils.JSON(w, code, map[string]interface{}{
		"status":    status,
		"store":     storeStatus,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// handleVersion reports build and environment information
func (s *Server) handleVersion(w http.ResponseWriter, _ *http.Request) {
	utils.JSON(w, http.StatusOK, map[string]string{
		"name":        s.config.App.Name,
		"version":     s.config.App.Version,
		"environment": s.config.App.Environment,
	})
}
