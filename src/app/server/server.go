// Package server provides HTTP server initialization and lifecycle management.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"jokehub/src/app/http/handler"
	"jokehub/src/app/middleware"
	"jokehub/src/core/ports"
	"jokehub/src/core/usecase"
	"jokehub/src/infra/config"
)

// Deps bundles the infrastructure the server is wired with.
type Deps struct {
	Jokes      ports.JokeRepository
	Users      ports.UserRepository
	Dispatcher ports.EventDispatcher
	Tokens     ports.TokenIssuer
}

// Server wraps the HTTP server and its dependencies.
type Server struct {
	cfg    *config.Config
	log    *slog.Logger
	router *gin.Engine
	http   *http.Server
	tokens ports.TokenIssuer

	// Handlers
	healthHandler *handler.HealthHandler
	authHandler   *handler.AuthHandler
	jokeHandler   *handler.JokeHandler
	userHandler   *handler.UserHandler
}

// New creates a new Server with all dependencies wired up.
func New(cfg *config.Config, log *slog.Logger, deps Deps) *Server {
	// Set Gin mode based on log level
	if cfg.Log.Level == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create router without default middleware
	router := gin.New()

	// Create services
	healthService := usecase.NewHealthService(deps.Jokes, log)
	userService := usecase.NewUserService(deps.Users, deps.Tokens, cfg.Auth.BcryptCost, log)
	jokeService := usecase.NewJokeService(deps.Jokes, deps.Users, deps.Dispatcher, log)

	s := &Server{
		cfg:           cfg,
		log:           log,
		router:        router,
		tokens:        deps.Tokens,
		healthHandler: handler.NewHealthHandler(healthService),
		authHandler:   handler.NewAuthHandler(userService),
		jokeHandler:   handler.NewJokeHandler(jokeService),
		userHandler:   handler.NewUserHandler(userService),
	}

	s.setupMiddleware()
	s.setupRoutes()
	s.setupHTTPServer()

	return s
}

// setupMiddleware configures global middleware.
func (s *Server) setupMiddleware() {
	// Order matters: Recovery should be first to catch all panics
	s.router.Use(middleware.Recovery(s.log))
	s.router.Use(middleware.RequestID())
	s.router.Use(middleware.CORS())
	s.router.Use(middleware.Logging(s.log))
}

// setupRoutes configures all HTTP routes.
func (s *Server) setupRoutes() {
	// Health check endpoints (no auth required)
	s.router.GET("/health", s.healthHandler.Health)
	s.router.GET("/health/detailed", s.healthHandler.DetailedHealth)

	requireAuth := middleware.Auth(s.tokens)

	// API v1 routes
	v1 := s.router.Group("/v1")
	{
		// Accounts
		v1.POST("/auth/register", s.authHandler.Register)
		v1.POST("/auth/login", s.authHandler.Login)

		// Jokes (reading is public)
		v1.GET("/jokes", s.jokeHandler.List)
		v1.GET("/jokes/:joke_id", s.jokeHandler.Get)
		v1.POST("/jokes", requireAuth, s.jokeHandler.Create)
		v1.PUT("/jokes/:joke_id", requireAuth, s.jokeHandler.Update)
		v1.DELETE("/jokes/:joke_id", requireAuth, s.jokeHandler.Delete)
		v1.POST("/jokes/:joke_id/like", requireAuth, s.jokeHandler.Like)
		v1.DELETE("/jokes/:joke_id/like", requireAuth, s.jokeHandler.Unlike)

		// Profile
		v1.GET("/users/me", requireAuth, s.userHandler.Me)
		v1.PUT("/users/me", requireAuth, s.userHandler.UpdateMe)
		v1.DELETE("/users/me", requireAuth, s.userHandler.DeleteMe)
	}

	// Handle 404
	s.router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error": gin.H{
				"code":       "NOT_FOUND",
				"message":    "The requested resource was not found",
				"request_id": middleware.GetRequestID(c),
			},
		})
	})
}

// setupHTTPServer configures the underlying HTTP server.
func (s *Server) setupHTTPServer() {
	s.http = &http.Server{
		Addr:         s.cfg.Server.Addr(),
		Handler:      s.router,
		ReadTimeout:  s.cfg.Server.ReadTimeout,
		WriteTimeout: s.cfg.Server.WriteTimeout,
	}
}

// Run starts the HTTP server and blocks until shutdown.
// It handles graceful shutdown on SIGINT/SIGTERM.
func (s *Server) Run() error {
	// Channel to receive shutdown signals
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Channel to receive server errors
	errCh := make(chan error, 1)

	// Start server in goroutine
	go func() {
		s.log.Info("starting HTTP server",
			"addr", s.cfg.Server.Addr(),
		)
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("server error: %w", err)
		}
	}()

	// Wait for shutdown signal or error
	select {
	case sig := <-quit:
		s.log.Info("received shutdown signal", "signal", sig.String())
	case err := <-errCh:
		return err
	}

	// Graceful shutdown
	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown() error {
	s.log.Info("shutting down server", "timeout", s.cfg.Server.ShutdownTimeout)

	ctx, cancel := context.WithTimeout(context.Background(), s.cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := s.http.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown error: %w", err)
	}

	s.log.Info("server stopped gracefully")
	return nil
}

// Router returns the Gin router for testing.
func (s *Server) Router() *gin.Engine {
	return s.router
}

// WaitForReady waits until the server is ready to accept connections.
// Useful for integration tests.
func (s *Server) WaitForReady(timeout time.Duration) error {
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		resp, err := http.Get(fmt.Sprintf("http://%s/health", s.cfg.Server.Addr()))
		if err == nil {
			resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return nil
			}
		}
		time.Sleep(10 * time.Millisecond)
	}
	return fmt.Errorf("server not ready after %v", timeout)
}
