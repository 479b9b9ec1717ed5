package ports

import (
	"context"
	"time"

	"jokehub/src/core/domain"
)

// ExternalService is the base interface for external service adapters.
type ExternalService interface {
	// Health checks if the external service is reachable.
	Health(ctx context.Context) error
}

// EventDispatcher delivers domain events drained from an aggregate after a
// successful save. Delivery is best-effort, at-least-once; retry and
// broadcast policy belong to the implementation, never to the aggregate.
type EventDispatcher interface {
	Dispatch(ctx context.Context, events []domain.Event) error
}

// TokenIssuer mints and verifies access tokens for the identity collaborator.
type TokenIssuer interface {
	Issue(userID domain.UserID) (token string, expiresAt time.Time, err error)
	Verify(token string) (domain.UserID, error)
}
