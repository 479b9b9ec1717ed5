package dto

import (
	"time"

	"jokehub/src/core/domain"
	"jokehub/src/core/usecase"
)

// RegisterRequest is the payload for /v1/auth/register.
type RegisterRequest struct {
	DisplayName string `json:"display_name" binding:"required"`
	Email       string `json:"email" binding:"required"`
	Password    string `json:"password" binding:"required"`
	AvatarURL   string `json:"avatar_url"`
}

// LoginRequest is the payload for /v1/auth/login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// CreateJokeRequest is the payload for creating a joke.
type CreateJokeRequest struct {
	Question string `json:"question" binding:"required"`
	Answer   string `json:"answer" binding:"required"`
}

// UpdateJokeRequest is the payload for updating a joke.
type UpdateJokeRequest struct {
	Question string `json:"question" binding:"required"`
	Answer   string `json:"answer" binding:"required"`
}

// UpdateProfileRequest is the payload for updating the caller's profile.
// Avatar and email are optional; omitting them leaves the value unchanged.
type UpdateProfileRequest struct {
	DisplayName string  `json:"display_name" binding:"required"`
	AvatarURL   *string `json:"avatar_url"`
	Email       *string `json:"email"`
}

// UserResponse is the public shape of a user profile.
type UserResponse struct {
	UserID      string     `json:"user_id"`
	DisplayName string     `json:"display_name"`
	AvatarURL   string     `json:"avatar_url,omitempty"`
	Email       string     `json:"email,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
}

// UserFromDomain converts a profile for API output. Email is included only
// when own is set, so other users' addresses stay private.
func UserFromDomain(u *domain.ApplicationUser, own bool) UserResponse {
	out := UserResponse{
		UserID:      u.ID().String(),
		DisplayName: u.DisplayName().String(),
		AvatarURL:   u.Avatar().String(),
		CreatedAt:   u.CreatedAt(),
		UpdatedAt:   u.UpdatedAt(),
	}
	if own {
		out.Email = u.Email().String()
	}
	return out
}

// SessionResponse is returned on successful registration or login.
type SessionResponse struct {
	User      UserResponse `json:"user"`
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expires_at"`
}

// SessionFromDomain converts a usecase session for API output.
func SessionFromDomain(s *usecase.Session) SessionResponse {
	return SessionResponse{
		User:      UserFromDomain(s.User, true),
		Token:     s.Token,
		ExpiresAt: s.ExpiresAt,
	}
}

// JokeResponse is the public shape of a joke.
type JokeResponse struct {
	JokeID    int64         `json:"joke_id"`
	Question  string        `json:"question"`
	Answer    string        `json:"answer"`
	AuthorID  string        `json:"author_id"`
	Author    *UserResponse `json:"author,omitempty"`
	Likes     int32         `json:"likes"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt *time.Time    `json:"updated_at,omitempty"`
}

// JokeFromDomain converts a joke for API output.
func JokeFromDomain(j *domain.Joke) JokeResponse {
	out := JokeResponse{
		JokeID:    j.ID().Int64(),
		Question:  j.Question().String(),
		Answer:    j.Answer().String(),
		AuthorID:  j.AuthorID().String(),
		Likes:     j.Likes(),
		CreatedAt: j.CreatedAt(),
		UpdatedAt: j.UpdatedAt(),
	}
	if author := j.Author(); author != nil {
		resp := UserFromDomain(author, false)
		out.Author = &resp
	}
	return out
}

// JokesFromDomain converts a joke listing for API output.
func JokesFromDomain(jokes []*domain.Joke) []JokeResponse {
	out := make([]JokeResponse, 0, len(jokes))
	for _, j := range jokes {
		out = append(out, JokeFromDomain(j))
	}
	return out
}
