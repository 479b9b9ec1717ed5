// Package ports defines interfaces (ports) that connect core domain to infrastructure.
// These interfaces follow the ports and adapters (hexagonal) architecture pattern.
//
// Ports are defined here in the core layer, while implementations (adapters)
// live in src/infra. This ensures the core has no dependency on infrastructure.
package ports

import (
	"context"

	"jokehub/src/core/domain"
)

// Repository is the base interface for all repositories.
// Concrete repositories should embed this and add entity-specific methods.
type Repository interface {
	// Health checks if the underlying storage is reachable.
	Health(ctx context.Context) error
}

// JokeListFilter narrows a joke listing.
type JokeListFilter struct {
	// AuthorID restricts the listing to one author when non-empty.
	AuthorID domain.UserID

	// Limit caps the number of rows; zero means the repository default.
	Limit int

	// Offset skips rows for pagination.
	Offset int
}

// JokeRepository persists Joke aggregates.
//
// Create must obtain the store-generated identifier and attach it to the
// aggregate via AssignID, so that events emitted afterwards carry the real id.
type JokeRepository interface {
	Repository

	Create(ctx context.Context, joke *domain.Joke) error
	GetByID(ctx context.Context, id domain.JokeID) (*domain.Joke, error)
	List(ctx context.Context, filter JokeListFilter) ([]*domain.Joke, error)
	Update(ctx context.Context, joke *domain.Joke) error
	Delete(ctx context.Context, id domain.JokeID) error
}

// Credentials carries a user's stored login secret alongside the profile.
type Credentials struct {
	User         *domain.ApplicationUser
	PasswordHash string
}

// UserRepository persists ApplicationUser profiles and their credentials.
//
// Delete must cascade: removing a user also removes that user's jokes.
type UserRepository interface {
	Repository

	Create(ctx context.Context, user *domain.ApplicationUser, passwordHash string) error
	GetByID(ctx context.Context, id domain.UserID) (*domain.ApplicationUser, error)
	GetByEmail(ctx context.Context, email domain.EmailAddress) (*Credentials, error)
	Update(ctx context.Context, user *domain.ApplicationUser) error
	Delete(ctx context.Context, id domain.UserID) error
}
