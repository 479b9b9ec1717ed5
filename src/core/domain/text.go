package domain

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"unicode/utf8"
)

// Maximum lengths for the bounded text value objects.
const (
	MaxQuestionLen = 200
	MaxAnswerLen   = 500
	MaxNameLen     = 50
	MaxAvatarLen   = 2048
	MaxEmailLen    = 256
)

// emailPattern is deliberately restrictive: ASCII local part, dotted-label
// domain, at least a two-letter suffix. Anything fancier is rejected.
var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9\-]+(\.[a-zA-Z0-9\-]+)*\.[a-zA-Z]{2,}$`)

// newBoundedText trims raw and enforces non-blank plus a maximum length.
// Lengths are counted in characters, not bytes, so multi-byte input is not
// penalized. All the simple text value objects share this rule set.
func newBoundedText(field, raw string, maxLen int) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", NewValidationError(field, "must not be blank")
	}
	if utf8.RuneCountInString(trimmed) > maxLen {
		return "", NewValidationError(field, fmt.Sprintf("must be at most %d characters", maxLen))
	}
	return trimmed, nil
}

// QuestionText is the question half of a joke.
type QuestionText struct {
	value string
}

// NewQuestionText validates and normalizes a raw question string.
func NewQuestionText(raw string) (QuestionText, error) {
	v, err := newBoundedText("question", raw, MaxQuestionLen)
	if err != nil {
		return QuestionText{}, err
	}
	return QuestionText{value: v}, nil
}

// String returns the normalized question.
func (t QuestionText) String() string { return t.value }

// IsEmpty reports whether the value is the empty sentinel.
func (t QuestionText) IsEmpty() bool { return t.value == "" }

// Len returns the length of the normalized question.
func (t QuestionText) Len() int { return utf8.RuneCountInString(t.value) }

// AnswerText is the answer half of a joke.
type AnswerText struct {
	value string
}

// NewAnswerText validates and normalizes a raw answer string.
func NewAnswerText(raw string) (AnswerText, error) {
	v, err := newBoundedText("answer", raw, MaxAnswerLen)
	if err != nil {
		return AnswerText{}, err
	}
	return AnswerText{value: v}, nil
}

// String returns the normalized answer.
func (t AnswerText) String() string { return t.value }

// IsEmpty reports whether the value is the empty sentinel.
func (t AnswerText) IsEmpty() bool { return t.value == "" }

// Len returns the length of the normalized answer.
func (t AnswerText) Len() int { return utf8.RuneCountInString(t.value) }

// DisplayName is a user's public name.
type DisplayName struct {
	value string
}

// NewDisplayName validates and normalizes a raw display name.
func NewDisplayName(raw string) (DisplayName, error) {
	v, err := newBoundedText("display_name", raw, MaxNameLen)
	if err != nil {
		return DisplayName{}, err
	}
	return DisplayName{value: v}, nil
}

// String returns the normalized display name.
func (t DisplayName) String() string { return t.value }

// IsEmpty reports whether the value is the empty sentinel.
func (t DisplayName) IsEmpty() bool { return t.value == "" }

// Len returns the length of the normalized display name.
func (t DisplayName) Len() int { return utf8.RuneCountInString(t.value) }

// AvatarURL is an optional link to a user's avatar image. A blank input is
// valid and yields the empty sentinel; a non-blank input must be an absolute
// http or https URL.
type AvatarURL struct {
	value string
}

// NewAvatarURL validates and normalizes a raw avatar URL. Blank means absent.
func NewAvatarURL(raw string) (AvatarURL, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return AvatarURL{}, nil
	}
	if utf8.RuneCountInString(trimmed) > MaxAvatarLen {
		return AvatarURL{}, NewValidationError("avatar_url", fmt.Sprintf("must be at most %d characters", MaxAvatarLen))
	}
	u, err := url.Parse(trimmed)
	if err != nil || !u.IsAbs() || u.Host == "" {
		return AvatarURL{}, NewValidationError("avatar_url", "must be an absolute URL")
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return AvatarURL{}, NewValidationError("avatar_url", "must use http or https")
	}
	return AvatarURL{value: trimmed}, nil
}

// String returns the normalized URL, or "" when absent.
func (t AvatarURL) String() string { return t.value }

// IsEmpty reports whether no avatar is set.
func (t AvatarURL) IsEmpty() bool { return t.value == "" }

// Len returns the length of the normalized URL.
func (t AvatarURL) Len() int { return utf8.RuneCountInString(t.value) }

// EmailAddress is a user's email address.
type EmailAddress struct {
	value string
}

// NewEmailAddress validates and normalizes a raw email address.
func NewEmailAddress(raw string) (EmailAddress, error) {
	v, err := newBoundedText("email", raw, MaxEmailLen)
	if err != nil {
		return EmailAddress{}, err
	}
	if !emailPattern.MatchString(v) {
		return EmailAddress{}, NewValidationError("email", "is not a valid email address")
	}
	return EmailAddress{value: v}, nil
}

// String returns the normalized address.
func (t EmailAddress) String() string { return t.value }

// IsEmpty reports whether the value is the empty sentinel.
func (t EmailAddress) IsEmpty() bool { return t.value == "" }

// Len returns the length of the normalized address.
func (t EmailAddress) Len() int { return utf8.RuneCountInString(t.value) }
