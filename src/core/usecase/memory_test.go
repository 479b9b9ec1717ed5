package usecase_test

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"time"

	"jokehub/src/core/domain"
	"jokehub/src/core/ports"
)

// In-memory adapters backing the service tests. They mirror the Postgres
// repository contract, including id assignment and cascade delete.

type memoryJokeStore struct {
	mu     sync.Mutex
	nextID int64
	jokes  map[int64]*domain.Joke
}

func newMemoryJokeStore() *memoryJokeStore {
	return &memoryJokeStore{nextID: 1, jokes: make(map[int64]*domain.Joke)}
}

func (s *memoryJokeStore) Health(_ context.Context) error { return nil }

func (s *memoryJokeStore) Create(_ context.Context, joke *domain.Joke) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	id, err := domain.NewJokeID(s.nextID)
	if err != nil {
		return err
	}
	if err := joke.AssignID(id); err != nil {
		return err
	}
	s.nextID++
	s.jokes[id.Int64()] = joke
	return nil
}

func (s *memoryJokeStore) GetByID(_ context.Context, id domain.JokeID) (*domain.Joke, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	joke, ok := s.jokes[id.Int64()]
	if !ok {
		return nil, domain.NewNotFoundError("joke")
	}
	return joke, nil
}

func (s *memoryJokeStore) List(_ context.Context, filter ports.JokeListFilter) ([]*domain.Joke, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*domain.Joke
	for _, j := range s.jokes {
		if !filter.AuthorID.IsEmpty() && !j.AuthorID().Equals(filter.AuthorID) {
			continue
		}
		out = append(out, j)
	}
	return out, nil
}

func (s *memoryJokeStore) Update(_ context.Context, joke *domain.Joke) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.jokes[joke.ID().Int64()]; !ok {
		return domain.NewNotFoundError("joke")
	}
	s.jokes[joke.ID().Int64()] = joke
	return nil
}

func (s *memoryJokeStore) Delete(_ context.Context, id domain.JokeID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.jokes[id.Int64()]; !ok {
		return domain.NewNotFoundError("joke")
	}
	delete(s.jokes, id.Int64())
	return nil
}

func (s *memoryJokeStore) deleteByAuthor(authorID domain.UserID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, j := range s.jokes {
		if j.AuthorID().Equals(authorID) {
			delete(s.jokes, id)
		}
	}
}

type memoryUserStore struct {
	mu     sync.Mutex
	users  map[string]*domain.ApplicationUser
	hashes map[string]string
	jokes  *memoryJokeStore
}

func newMemoryUserStore(jokes *memoryJokeStore) *memoryUserStore {
	return &memoryUserStore{
		users:  make(map[string]*domain.ApplicationUser),
		hashes: make(map[string]string),
		jokes:  jokes,
	}
}

func (s *memoryUserStore) Health(_ context.Context) error { return nil }

func (s *memoryUserStore) Create(_ context.Context, user *domain.ApplicationUser, passwordHash string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.users {
		if existing.Email() == user.Email() {
			return domain.NewAlreadyExistsError("email already registered")
		}
	}
	s.users[user.ID().String()] = user
	s.hashes[user.ID().String()] = passwordHash
	return nil
}

func (s *memoryUserStore) GetByID(_ context.Context, id domain.UserID) (*domain.ApplicationUser, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[id.String()]
	if !ok {
		return nil, domain.NewNotFoundError("user")
	}
	return user, nil
}

func (s *memoryUserStore) GetByEmail(_ context.Context, email domain.EmailAddress) (*ports.Credentials, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, user := range s.users {
		if user.Email() == email {
			return &ports.Credentials{User: user, PasswordHash: s.hashes[user.ID().String()]}, nil
		}
	}
	return nil, domain.NewNotFoundError("user")
}

func (s *memoryUserStore) Update(_ context.Context, user *domain.ApplicationUser) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[user.ID().String()]; !ok {
		return domain.NewNotFoundError("user")
	}
	s.users[user.ID().String()] = user
	return nil
}

func (s *memoryUserStore) Delete(_ context.Context, id domain.UserID) error {
	s.mu.Lock()
	if _, ok := s.users[id.String()]; !ok {
		s.mu.Unlock()
		return domain.NewNotFoundError("user")
	}
	delete(s.users, id.String())
	delete(s.hashes, id.String())
	s.mu.Unlock()

	// cascade, as the Postgres schema does via ON DELETE CASCADE
	if s.jokes != nil {
		s.jokes.deleteByAuthor(id)
	}
	return nil
}

// captureDispatcher records dispatched events for assertions.
type captureDispatcher struct {
	mu     sync.Mutex
	events []domain.Event
	err    error
}

func (d *captureDispatcher) Dispatch(_ context.Context, events []domain.Event) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.err != nil {
		return d.err
	}
	d.events = append(d.events, events...)
	return nil
}

func (d *captureDispatcher) names() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]string, len(d.events))
	for i, e := range d.events {
		out[i] = e.EventName()
	}
	return out
}

// stubTokens issues predictable tokens.
type stubTokens struct{}

func (stubTokens) Issue(userID domain.UserID) (string, time.Time, error) {
	return "token-" + userID.String(), time.Now().UTC().Add(time.Hour), nil
}

func (stubTokens) Verify(token string) (domain.UserID, error) {
	return domain.NewUserID(token[len("token-"):])
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
