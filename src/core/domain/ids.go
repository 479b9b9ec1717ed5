package domain

import (
	"fmt"
	"strings"
)

// MaxUserIDLen bounds user identifiers to what the identity store can hold.
const MaxUserIDLen = 450

// JokeID identifies a Joke. The zero value is the placeholder used before
// the persistence layer assigns a real identifier; it never represents a
// stored joke.
type JokeID struct {
	value int64
}

// NewJokeID creates a JokeID from a positive integer.
func NewJokeID(value int64) (JokeID, error) {
	if value <= 0 {
		return JokeID{}, NewValidationError("joke_id", fmt.Sprintf("must be positive, got %d", value))
	}
	return JokeID{value: value}, nil
}

// Int64 returns the wrapped identifier.
func (id JokeID) Int64() int64 {
	return id.value
}

// IsEmpty reports whether the id is the placeholder sentinel.
func (id JokeID) IsEmpty() bool {
	return id.value == 0
}

// String implements fmt.Stringer.
func (id JokeID) String() string {
	return fmt.Sprintf("%d", id.value)
}

// UserID identifies a user. Identifiers are opaque strings issued by the
// identity collaborator. The zero value is the empty sentinel.
type UserID struct {
	value string
}

// NewUserID creates a UserID from a raw string, trimming surrounding whitespace.
func NewUserID(raw string) (UserID, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return UserID{}, NewValidationError("user_id", "must not be blank")
	}
	if len(trimmed) > MaxUserIDLen {
		return UserID{}, NewValidationError("user_id", fmt.Sprintf("must be at most %d characters", MaxUserIDLen))
	}
	return UserID{value: trimmed}, nil
}

// String returns the wrapped identifier.
func (id UserID) String() string {
	return id.value
}

// IsEmpty reports whether the id is the empty sentinel.
func (id UserID) IsEmpty() bool {
	return id.value == ""
}

// Equals compares two user ids by value.
func (id UserID) Equals(other UserID) bool {
	return id.value == other.value
}
