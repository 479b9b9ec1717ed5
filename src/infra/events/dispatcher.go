// Package events delivers domain events drained from aggregates.
//
// The dispatcher follows the outbox pattern: every event is written to the
// joke_events table, then delivery to downstream consumers happens from
// there. Delivery is at-least-once; consumers deduplicate on the event id.
package events

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"jokehub/src/core/domain"
	"jokehub/src/core/ports"
	"jokehub/src/infra/db"
)

// OutboxDispatcher persists domain events into the joke_events outbox table
// and logs each delivery.
type OutboxDispatcher struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

// NewOutboxDispatcher constructs a dispatcher backed by Postgres.
func NewOutboxDispatcher(pg *db.Postgres, log *slog.Logger) *OutboxDispatcher {
	return &OutboxDispatcher{
		pool: pg.Pool,
		log:  log,
	}
}

var _ ports.EventDispatcher = (*OutboxDispatcher)(nil)

// outboxRow is the serialized payload stored per event.
type outboxRow struct {
	Question   string `json:"question,omitempty"`
	Answer     string `json:"answer,omitempty"`
	AuthorID   string `json:"author_id,omitempty"`
	TotalLikes *int32 `json:"total_likes,omitempty"`
}

// Dispatch writes the events to the outbox in their original order.
// The first failure aborts the batch; the caller treats delivery as
// best-effort and a later sweep can re-derive state from the aggregates.
func (d *OutboxDispatcher) Dispatch(ctx context.Context, events []domain.Event) error {
	if len(events) == 0 {
		return nil
	}

	const q = `
		INSERT INTO joke_events (event_id, event_type, joke_id, payload, occurred_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	tx, err := d.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	for _, ev := range events {
		payload, err := json.Marshal(rowFor(ev))
		if err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, q,
			ev.EventID(),
			ev.EventName(),
			ev.JokeID().Int64(),
			payload,
			ev.OccurredAt(),
		); err != nil {
			return err
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return err
	}

	for _, ev := range events {
		d.log.Info("domain event recorded",
			"event_id", ev.EventID().String(),
			"event_type", ev.EventName(),
			"joke_id", ev.JokeID().Int64(),
		)
	}
	return nil
}

func rowFor(ev domain.Event) outboxRow {
	switch e := ev.(type) {
	case domain.JokeWasCreated:
		return outboxRow{
			Question: e.Question().String(),
			Answer:   e.Answer().String(),
			AuthorID: e.AuthorID().String(),
		}
	case domain.JokeWasUpdated:
		return outboxRow{
			Question: e.Question().String(),
			Answer:   e.Answer().String(),
		}
	case domain.JokeWasLiked:
		likes := e.TotalLikes()
		return outboxRow{TotalLikes: &likes}
	case domain.JokeWasUnliked:
		likes := e.TotalLikes()
		return outboxRow{TotalLikes: &likes}
	default:
		return outboxRow{}
	}
}

// LogDispatcher is a no-storage dispatcher that only logs events. Used when
// running without a database, e.g. in local smoke tests.
type LogDispatcher struct {
	log *slog.Logger
}

// NewLogDispatcher constructs a logging-only dispatcher.
func NewLogDispatcher(log *slog.Logger) *LogDispatcher {
	return &LogDispatcher{log: log}
}

var _ ports.EventDispatcher = (*LogDispatcher)(nil)

// Dispatch logs each event and reports success.
func (d *LogDispatcher) Dispatch(_ context.Context, events []domain.Event) error {
	for _, ev := range events {
		d.log.Info("domain event",
			"event_id", ev.EventID().String(),
			"event_type", ev.EventName(),
			"joke_id", ev.JokeID().Int64(),
			"occurred_at", ev.OccurredAt().Format(time.RFC3339Nano),
		)
	}
	return nil
}
