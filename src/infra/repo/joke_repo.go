package repo

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"jokehub/src/core/domain"
	"jokehub/src/core/ports"
	"jokehub/src/infra/db"
)

// JokeRepository implements ports.JokeRepository using pgx.
type JokeRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

// NewJokeRepository constructs a joke repository backed by Postgres.
func NewJokeRepository(pg *db.Postgres, log *slog.Logger) *JokeRepository {
	return &JokeRepository{
		pool: pg.Pool,
		log:  log,
	}
}

func (r *JokeRepository) Health(ctx context.Context) error {
	return r.pool.Ping(ctx)
}

func (r *JokeRepository) Create(ctx context.Context, joke *domain.Joke) error {
	const q = `
		INSERT INTO jokes (question, answer, author_id, created_at, likes)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING joke_id
	`
	var rawID int64
	err := r.pool.QueryRow(ctx, q,
		joke.Question().String(),
		joke.Answer().String(),
		joke.AuthorID().String(),
		joke.CreatedAt(),
		joke.Likes(),
	).Scan(&rawID)
	if err != nil {
		return err
	}

	id, err := domain.NewJokeID(rawID)
	if err != nil {
		return err
	}
	return joke.AssignID(id)
}

func (r *JokeRepository) GetByID(ctx context.Context, id domain.JokeID) (*domain.Joke, error) {
	const q = `
		SELECT joke_id, question, answer, author_id, created_at, updated_at, likes
		FROM jokes
		WHERE joke_id = $1
	`
	joke, err := scanJoke(r.pool.QueryRow(ctx, q, id.Int64()))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewNotFoundError("joke")
		}
		return nil, err
	}
	return joke, nil
}

// defaultListLimit caps unbounded listings.
const defaultListLimit = 50

func (r *JokeRepository) List(ctx context.Context, filter ports.JokeListFilter) ([]*domain.Joke, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}

	const base = `
		SELECT joke_id, question, answer, author_id, created_at, updated_at, likes
		FROM jokes
	`
	var (
		rows pgx.Rows
		err  error
	)
	if filter.AuthorID.IsEmpty() {
		rows, err = r.pool.Query(ctx, base+`ORDER BY created_at DESC LIMIT $1 OFFSET $2`, limit, filter.Offset)
	} else {
		rows, err = r.pool.Query(ctx, base+`WHERE author_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`,
			filter.AuthorID.String(), limit, filter.Offset)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var jokes []*domain.Joke
	for rows.Next() {
		joke, err := scanJoke(rows)
		if err != nil {
			return nil, err
		}
		jokes = append(jokes, joke)
	}
	return jokes, rows.Err()
}

func (r *JokeRepository) Update(ctx context.Context, joke *domain.Joke) error {
	const q = `
		UPDATE jokes
		SET question = $2, answer = $3, updated_at = $4, likes = $5
		WHERE joke_id = $1
	`
	tag, err := r.pool.Exec(ctx, q,
		joke.ID().Int64(),
		joke.Question().String(),
		joke.Answer().String(),
		joke.UpdatedAt(),
		joke.Likes(),
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.NewNotFoundError("joke")
	}
	return nil
}

func (r *JokeRepository) Delete(ctx context.Context, id domain.JokeID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM jokes WHERE joke_id = $1`, id.Int64())
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.NewNotFoundError("joke")
	}
	return nil
}

// scanJoke rehydrates one joke row through the domain factories.
func scanJoke(row pgx.Row) (*domain.Joke, error) {
	var (
		rawID     int64
		question  string
		answer    string
		authorID  string
		createdAt time.Time
		updatedAt *time.Time
		likes     int32
	)
	if err := row.Scan(&rawID, &question, &answer, &authorID, &createdAt, &updatedAt, &likes); err != nil {
		return nil, err
	}

	id, err := domain.NewJokeID(rawID)
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
	uid, err := domain.NewUserID(authorID)
	if err != nil {
		return nil, err
	}
	return domain.RehydrateJoke(id, q, a, uid, createdAt.UTC(), updatedAt, likes), nil
}
