// Package main is the entry point for the JokeHub API server.
// It initializes all dependencies and starts the HTTP server.
package main

import (
	"context"
	"log"
	"os"

	"jokehub/src/app/server"
	"jokehub/src/infra/auth"
	"jokehub/src/infra/config"
	"jokehub/src/infra/db"
	"jokehub/src/infra/events"
	"jokehub/src/infra/logger"
	"jokehub/src/infra/repo"
)

func main() {
	if err := run(); err != nil {
		log.Printf("fatal error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration from environment variables
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// Initialize logger
	log := logger.New(cfg.Log)
	log.Info("starting application",
		"port", cfg.Server.Port,
		"log_level", cfg.Log.Level,
	)

	// Initialize database connection
	pg, err := db.New(context.Background(), cfg.Database, log)
	if err != nil {
		return err
	}
	defer pg.Close()

	// Initialize infrastructure adapters
	deps := server.Deps{
		Jokes:      repo.NewJokeRepository(pg, log),
		Users:      repo.NewUserRepository(pg, log),
		Dispatcher: events.NewOutboxDispatcher(pg, log),
		Tokens:     auth.NewJWTManager(cfg.Auth),
	}

	// Create and run HTTP server
	srv := server.New(cfg, log, deps)

	// Run blocks until shutdown signal is received
	return srv.Run()
}
