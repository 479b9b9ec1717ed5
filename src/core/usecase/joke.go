package usecase

import (
	"context"
	"log/slog"

	"jokehub/src/core/domain"
	"jokehub/src/core/ports"
)

// JokeService handles authoring, liking, and reading jokes. It is the unit
// of work around the Joke aggregate: every mutation saves the aggregate and
// then hands the drained events to the dispatcher.
type JokeService struct {
	jokes      ports.JokeRepository
	users      ports.UserRepository
	dispatcher ports.EventDispatcher
	log        *slog.Logger
}

func NewJokeService(jokes ports.JokeRepository, users ports.UserRepository, dispatcher ports.EventDispatcher, log *slog.Logger) *JokeService {
	return &JokeService{jokes: jokes, users: users, dispatcher: dispatcher, log: log}
}

// dispatch drains the aggregate's events and forwards them. Delivery is
// best-effort: a dispatcher failure is logged, never surfaced to the caller,
// since the state change has already been saved.
func (s *JokeService) dispatch(ctx context.Context, joke *domain.Joke) {
	events := joke.PullPendingEvents()
	if len(events) == 0 {
		return
	}
	if err := s.dispatcher.Dispatch(ctx, events); err != nil {
		s.log.Error("event dispatch failed",
			"joke_id", joke.ID().Int64(),
			"events", len(events),
			"error", err,
		)
	}
}

// Create authors a new joke.
func (s *JokeService) Create(ctx context.Context, authorID, question, answer string) (*domain.Joke, error) {
	uid, err := domain.NewUserID(authorID)
	if err != nil {
		return nil, err
	}
	q, err := domain.NewQuestionText(question)
	if err != nil {
		return nil, err
	}
	a, err := domain.NewAnswerText(answer)
	if err != nil {
		return nil, err
	}

	// the author must exist before a joke can reference them
	if _, err := s.users.GetByID(ctx, uid); err != nil {
		return nil, err
	}

	joke, err := domain.NewJoke(q, a, uid)
	if err != nil {
		return nil, err
	}

	// Create assigns the real id; the queued creation event keeps the
	// placeholder by design.
	if err := s.jokes.Create(ctx, joke); err != nil {
		return nil, err
	}
	s.dispatch(ctx, joke)
	return joke, nil
}

// Get returns a single joke with its author resolved.
func (s *JokeService) Get(ctx context.Context, jokeID int64) (*domain.Joke, error) {
	id, err := domain.NewJokeID(jokeID)
	if err != nil {
		return nil, err
	}
	joke, err := s.jokes.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	s.resolveAuthor(ctx, joke)
	return joke, nil
}

// resolveAuthor attaches the author profile when it can be loaded. A joke
// with an unresolved author is a valid state, so load failures are logged
// and ignored.
func (s *JokeService) resolveAuthor(ctx context.Context, joke *domain.Joke) {
	if joke.Author() != nil {
		return
	}
	author, err := s.users.GetByID(ctx, joke.AuthorID())
	if err != nil {
		s.log.Debug("author not resolved",
			"joke_id", joke.ID().Int64(),
			"author_id", joke.AuthorID().String(),
			"error", err,
		)
		return
	}
	if err := joke.SetAuthor(author); err != nil {
		s.log.Debug("author attach refused", "joke_id", joke.ID().Int64(), "error", err)
	}
}

// List returns jokes, optionally filtered to one author.
func (s *JokeService) List(ctx context.Context, authorID string, limit, offset int) ([]*domain.Joke, error) {
	filter := ports.JokeListFilter{Limit: limit, Offset: offset}
	if authorID != "" {
		uid, err := domain.NewUserID(authorID)
		if err != nil {
			return nil, err
		}
		filter.AuthorID = uid
	}
	return s.jokes.List(ctx, filter)
}

// Update replaces a joke's question and answer. Only the author may update.
func (s *JokeService) Update(ctx context.Context, requesterID string, jokeID int64, question, answer string) (*domain.Joke, error) {
	requester, err := domain.NewUserID(requesterID)
	if err != nil {
		return nil, err
	}
	id, err := domain.NewJokeID(jokeID)
	if err != nil {
		return nil, err
	}
	q, err := domain.NewQuestionText(question)
	if err != nil {
		return nil, err
	}
	a, err := domain.NewAnswerText(answer)
	if err != nil {
		return nil, err
	}

	joke, err := s.jokes.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := joke.Update(requester, q, a); err != nil {
		return nil, err
	}
	if err := s.jokes.Update(ctx, joke); err != nil {
		return nil, err
	}
	s.dispatch(ctx, joke)
	return joke, nil
}

// Like increments a joke's like counter.
func (s *JokeService) Like(ctx context.Context, jokeID int64) (*domain.Joke, error) {
	return s.changeLikes(ctx, jokeID, (*domain.Joke).AddLike)
}

// Unlike decrements a joke's like counter.
func (s *JokeService) Unlike(ctx context.Context, jokeID int64) (*domain.Joke, error) {
	return s.changeLikes(ctx, jokeID, (*domain.Joke).RemoveLike)
}

func (s *JokeService) changeLikes(ctx context.Context, jokeID int64, op func(*domain.Joke) error) (*domain.Joke, error) {
	id, err := domain.NewJokeID(jokeID)
	if err != nil {
		return nil, err
	}
	joke, err := s.jokes.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := op(joke); err != nil {
		return nil, err
	}
	if err := s.jokes.Update(ctx, joke); err != nil {
		return nil, err
	}
	s.dispatch(ctx, joke)
	return joke, nil
}

// Delete removes a joke. Only the author may delete.
func (s *JokeService) Delete(ctx context.Context, requesterID string, jokeID int64) error {
	requester, err := domain.NewUserID(requesterID)
	if err != nil {
		return err
	}
	id, err := domain.NewJokeID(jokeID)
	if err != nil {
		return err
	}
	joke, err := s.jokes.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !joke.IsAuthoredBy(requester) {
		return domain.NewUnauthorizedOperationError("only the author may delete a joke")
	}
	return s.jokes.Delete(ctx, id)
}
