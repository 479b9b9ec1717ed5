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

// UserRepository implements ports.UserRepository using pgx.
type UserRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

// NewUserRepository constructs a user repository backed by Postgres.
func NewUserRepository(pg *db.Postgres, log *slog.Logger) *UserRepository {
	return &UserRepository{
		pool: pg.Pool,
		log:  log,
	}
}

func (r *UserRepository) Health(ctx context.Context) error {
	return r.pool.Ping(ctx)
}

func (r *UserRepository) Create(ctx context.Context, user *domain.ApplicationUser, passwordHash string) error {
	const q = `
		INSERT INTO users (user_id, display_name, avatar_url, email, password_hash, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.pool.Exec(ctx, q,
		user.ID().String(),
		user.DisplayName().String(),
		user.Avatar().String(),
		user.Email().String(),
		passwordHash,
		user.CreatedAt(),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.NewAlreadyExistsError("email already registered")
		}
		return err
	}
	return nil
}

const userColumns = `user_id, display_name, avatar_url, email, created_at, updated_at`

func (r *UserRepository) GetByID(ctx context.Context, id domain.UserID) (*domain.ApplicationUser, error) {
	const q = `SELECT ` + userColumns + ` FROM users WHERE user_id = $1`
	user, err := scanUser(r.pool.QueryRow(ctx, q, id.String()))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewNotFoundError("user")
		}
		return nil, err
	}
	return user, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email domain.EmailAddress) (*ports.Credentials, error) {
	const q = `
		SELECT user_id, display_name, avatar_url, email, created_at, updated_at, password_hash
		FROM users
		WHERE email = $1
	`
	var (
		rawID       string
		displayName string
		avatarURL   string
		rawEmail    string
		createdAt   time.Time
		updatedAt   *time.Time
		hash        string
	)
	err := r.pool.QueryRow(ctx, q, email.String()).
		Scan(&rawID, &displayName, &avatarURL, &rawEmail, &createdAt, &updatedAt, &hash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewNotFoundError("user")
		}
		return nil, err
	}

	user, err := rehydrateUser(rawID, displayName, avatarURL, rawEmail, createdAt, updatedAt)
	if err != nil {
		return nil, err
	}
	return &ports.Credentials{User: user, PasswordHash: hash}, nil
}

func (r *UserRepository) Update(ctx context.Context, user *domain.ApplicationUser) error {
	const q = `
		UPDATE users
		SET display_name = $2, avatar_url = $3, email = $4, updated_at = $5
		WHERE user_id = $1
	`
	tag, err := r.pool.Exec(ctx, q,
		user.ID().String(),
		user.DisplayName().String(),
		user.Avatar().String(),
		user.Email().String(),
		user.UpdatedAt(),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.NewAlreadyExistsError("email already registered")
		}
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.NewNotFoundError("user")
	}
	return nil
}

// Delete removes a user and, in the same transaction, every joke they
// authored. The schema's ON DELETE CASCADE would cover this too; doing it
// explicitly keeps the contract visible and testable.
func (r *UserRepository) Delete(ctx context.Context, id domain.UserID) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM jokes WHERE author_id = $1`, id.String()); err != nil {
		return err
	}
	tag, err := tx.Exec(ctx, `DELETE FROM users WHERE user_id = $1`, id.String())
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.NewNotFoundError("user")
	}
	return tx.Commit(ctx)
}

func scanUser(row pgx.Row) (*domain.ApplicationUser, error) {
	var (
		rawID       string
		displayName string
		avatarURL   string
		rawEmail    string
		createdAt   time.Time
		updatedAt   *time.Time
	)
	if err := row.Scan(&rawID, &displayName, &avatarURL, &rawEmail, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	return rehydrateUser(rawID, displayName, avatarURL, rawEmail, createdAt, updatedAt)
}

func rehydrateUser(rawID, displayName, avatarURL, rawEmail string, createdAt time.Time, updatedAt *time.Time) (*domain.ApplicationUser, error) {
	id, err := domain.NewUserID(rawID)
	if err != nil {
		return nil, err
	}
	name, err := domain.NewDisplayName(displayName)
	if err != nil {
		return nil, err
	}
	avatar, err := domain.NewAvatarURL(avatarURL)
	if err != nil {
		return nil, err
	}
	email, err := domain.NewEmailAddress(rawEmail)
	if err != nil {
		return nil, err
	}
	return domain.RehydrateUser(id, name, email, avatar, createdAt.UTC(), updatedAt), nil
}
