package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"jokehub/src/core/domain"
	"jokehub/src/core/ports"
)

// UserService handles registration, login, and profile management.
type UserService struct {
	users      ports.UserRepository
	tokens     ports.TokenIssuer
	bcryptCost int
	log        *slog.Logger
}

func NewUserService(users ports.UserRepository, tokens ports.TokenIssuer, bcryptCost int, log *slog.Logger) *UserService {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &UserService{users: users, tokens: tokens, bcryptCost: bcryptCost, log: log}
}

// MinPasswordLen is the minimum accepted password length.
const MinPasswordLen = 8

// Session is the result of a successful login or registration.
type Session struct {
	User      *domain.ApplicationUser
	Token     string
	ExpiresAt time.Time
}

// Register creates a new user account and logs it in.
func (s *UserService) Register(ctx context.Context, displayName, email, password, avatarURL string) (*Session, error) {
	name, err := domain.NewDisplayName(displayName)
	if err != nil {
		return nil, err
	}
	addr, err := domain.NewEmailAddress(email)
	if err != nil {
		return nil, err
	}
	avatar, err := domain.NewAvatarURL(avatarURL)
	if err != nil {
		return nil, err
	}
	if len(password) < MinPasswordLen {
		return nil, domain.NewValidationError("password", "must be at least 8 characters")
	}

	// identifiers are opaque strings; we mint uuids
	uid, err := domain.NewUserID(uuid.NewString())
	if err != nil {
		return nil, err
	}
	user, err := domain.NewApplicationUser(uid, name, addr, avatar)
	if err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return nil, err
	}

	if err := s.users.Create(ctx, user, string(hash)); err != nil {
		return nil, err
	}
	s.log.Info("user registered", "user_id", uid.String())

	return s.newSession(user)
}

// Login verifies credentials and issues a token.
func (s *UserService) Login(ctx context.Context, email, password string) (*Session, error) {
	addr, err := domain.NewEmailAddress(email)
	if err != nil {
		return nil, err
	}

	creds, err := s.users.GetByEmail(ctx, addr)
	if err != nil {
		if domain.IsNotFound(err) {
			// do not reveal whether the account exists
			return nil, domain.NewValidationError("", "invalid email or password")
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(creds.PasswordHash), []byte(password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return nil, domain.NewValidationError("", "invalid email or password")
		}
		return nil, err
	}

	return s.newSession(creds.User)
}

func (s *UserService) newSession(user *domain.ApplicationUser) (*Session, error) {
	token, expiresAt, err := s.tokens.Issue(user.ID())
	if err != nil {
		return nil, err
	}
	return &Session{User: user, Token: token, ExpiresAt: expiresAt}, nil
}

// GetProfile loads a user's profile.
func (s *UserService) GetProfile(ctx context.Context, userID string) (*domain.ApplicationUser, error) {
	uid, err := domain.NewUserID(userID)
	if err != nil {
		return nil, err
	}
	return s.users.GetByID(ctx, uid)
}

// UpdateProfile applies profile changes; nil avatar/email mean unchanged.
func (s *UserService) UpdateProfile(ctx context.Context, userID, displayName string, avatarURL, email *string) (*domain.ApplicationUser, error) {
	uid, err := domain.NewUserID(userID)
	if err != nil {
		return nil, err
	}
	user, err := s.users.GetByID(ctx, uid)
	if err != nil {
		return nil, err
	}
	if err := user.UpdateProfile(displayName, avatarURL, email); err != nil {
		return nil, err
	}
	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Delete removes a user account. The repository cascades to the user's jokes.
func (s *UserService) Delete(ctx context.Context, userID string) error {
	uid, err := domain.NewUserID(userID)
	if err != nil {
		return err
	}
	if err := s.users.Delete(ctx, uid); err != nil {
		return err
	}
	s.log.Info("user deleted", "user_id", uid.String())
	return nil
}
