// Package server wires the application together and owns the HTTP lifecycle.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	"github.com/arjunsdev/minifeed/internal/auth"
	"github.com/arjunsdev/minifeed/internal/config"
	"github.com/arjunsdev/minifeed/internal/constants"
	"github.com/arjunsdev/minifeed/internal/database"
	"github.com/arjunsdev/minifeed/internal/handlers"
	"github.com/arjunsdev/minifeed/internal/repository"
	"github.com/arjunsdev/minifeed/internal/service"
)

// Server is the application server holding every wired component
type Server struct {
	config *config.AppConfig
	store  *database.Store
	http   *http.Server

	authHandler *handlers.AuthHandler
	userHandler *handlers.UserHandler
	postHandler *handlers.PostHandler

	authMiddleware *auth.Middleware
}

// New connects to the store and wires repositories, services, handlers
// and middleware into a ready-to-start server.
func New(cfg *config.AppConfig) (*Server, error) {
	store, err := database.Connect(&cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to store: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Database.ConnectTimeout)
	defer cancel()
	if err := store.EnsureIndexes(ctx); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("failed to ensure indexes: %w", err)
	}

	userRepo := repository.NewUserRepository(store)
	postRepo := repository.NewPostRepository(store)

	tokenService := auth.NewJWTService(&cfg.JWT)
	passwordConfig := auth.ConfigFromAppConfig(cfg)

	authService := service.NewAuthService(userRepo, tokenService)
	userService := service.NewUserService(userRepo, store, passwordConfig)
	postService := service.NewPostService(postRepo, userRepo, store)

	s := &Server{
		config:         cfg,
		store:          store,
		authHandler:    handlers.NewAuthHandler(authService),
		userHandler:    handlers.NewUserHandler(userService),
		postHandler:    handlers.NewPostHandler(postService),
		authMiddleware: auth.NewMiddleware(tokenService, userRepo),
	}

	s.http = &http.Server{
		Addr:         cfg.Server.ServerAddress(),
		Handler:      s.routes(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  constants.DefaultIdleTimeout,
	}

	return s, nil
}

// Start runs the HTTP server until an interrupt or termination signal
// arrives, then shuts down gracefully within the configured timeout.
func (s *Server) Start() error {
	errCh := make(chan error, 1)

	go func() {
		log.Info().
			Str("address", s.http.Addr).
			Str("environment", s.config.App.Environment).
			Msg("Starting HTTP server")

		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case sig := <-quit:
		log.Info().Str("signal", sig.String()).Msg("Shutting down server")
	}

	return s.Shutdown()
}

// Shutdown stops the HTTP server and closes the store connection
func (s *Server) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), s.config.Server.ShutdownTimeout)
	defer cancel()

	if err := s.http.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	if err := s.store.Close(); err != nil {
		return err
	}

	log.Info().Msg("Server stopped")
	return nil
}
