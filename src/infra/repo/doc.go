// Package repo contains PostgreSQL implementations of repository interfaces.
//
// This package implements the ports defined in src/core/ports.
// Each repository is responsible for a specific domain aggregate.
//
// Naming convention:
//   - Files: <entity>_repo.go (e.g., joke_repo.go, user_repo.go)
//   - Types: <Entity>Repository (e.g., JokeRepository, UserRepository)
//
// All repositories receive the database pool via constructor injection
// and implement the corresponding interface from src/core/ports.
// Rows are rehydrated into aggregates through the domain factories, so a
// corrupt row surfaces as a domain validation error instead of leaking
// through silently.
package repo
