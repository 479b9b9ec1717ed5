package auth_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jokehub/src/core/domain"
	"jokehub/src/infra/auth"
	"jokehub/src/infra/config"
)

func newManager(secret string, ttl time.Duration) *auth.JWTManager {
	return auth.NewJWTManager(config.AuthConfig{JWTSecret: secret, TokenTTL: ttl})
}

func TestIssueAndVerify(t *testing.T) {
	m := newManager("test-secret", time.Hour)
	uid, err := domain.NewUserID("u1")
	require.NoError(t, err)

	token, expiresAt, err := m.Issue(uid)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().UTC().Add(time.Hour), expiresAt, time.Minute)

	got, err := m.Verify(token)
	require.NoError(t, err)
	assert.True(t, got.Equals(uid))
}

func TestVerifyRejectsForgedToken(t *testing.T) {
	m := newManager("test-secret", time.Hour)
	other := newManager("other-secret", time.Hour)

	uid, err := domain.NewUserID("u1")
	require.NoError(t, err)
	token, _, err := other.Issue(uid)
	require.NoError(t, err)

	_, err = m.Verify(token)
	assert.Error(t, err)
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	m := newManager("test-secret", -time.Minute)
	uid, err := domain.NewUserID("u1")
	require.NoError(t, err)

	token, _, err := m.Issue(uid)
	require.NoError(t, err)

	_, err = m.Verify(token)
	assert.Error(t, err)
}

func TestIssueRejectsEmptyUser(t *testing.T) {
	m := newManager("test-secret", time.Hour)

	_, _, err := m.Issue(domain.UserID{})
	assert.True(t, domain.IsValidationError(err))
}

func TestVerifyGarbage(t *testing.T) {
	m := newManager("test-secret", time.Hour)

	_, err := m.Verify("not-a-token")
	assert.Error(t, err)
}
