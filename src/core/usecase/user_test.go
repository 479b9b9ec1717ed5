package usecase_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jokehub/src/core/domain"
	"jokehub/src/core/usecase"
)

func newUserFixture(t *testing.T) (*usecase.UserService, *memoryUserStore, *memoryJokeStore) {
	t.Helper()
	jokeStore := newMemoryJokeStore()
	userStore := newMemoryUserStore(jokeStore)
	// low bcrypt cost keeps the tests fast
	svc := usecase.NewUserService(userStore, stubTokens{}, 4, testLogger())
	return svc, userStore, jokeStore
}

func TestRegister(t *testing.T) {
	svc, _, _ := newUserFixture(t)

	session, err := svc.Register(context.Background(), "Jo King", "jo@example.com", "s3cret-pass", "")
	require.NoError(t, err)

	assert.False(t, session.User.ID().IsEmpty())
	assert.Equal(t, "Jo King", session.User.DisplayName().String())
	assert.True(t, strings.HasPrefix(session.Token, "token-"))
	assert.False(t, session.ExpiresAt.IsZero())
}

func TestRegisterValidation(t *testing.T) {
	svc, _, _ := newUserFixture(t)
	ctx := context.Background()

	tests := []struct {
		name        string
		displayName string
		email       string
		password    string
		avatar      string
	}{
		{name: "blank name", displayName: "", email: "jo@example.com", password: "s3cret-pass"},
		{name: "bad email", displayName: "Jo", email: "not-an-email", password: "s3cret-pass"},
		{name: "short password", displayName: "Jo", email: "jo@example.com", password: "short"},
		{name: "bad avatar", displayName: "Jo", email: "jo@example.com", password: "s3cret-pass", avatar: "ftp://x.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(ctx, tt.displayName, tt.email, tt.password, tt.avatar)
			require.Error(t, err)
			assert.True(t, domain.IsValidationError(err))
		})
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _, _ := newUserFixture(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "Jo King", "jo@example.com", "s3cret-pass", "")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "Jo Clone", "jo@example.com", "s3cret-pass", "")
	assert.True(t, domain.IsAlreadyExists(err))
}

func TestLogin(t *testing.T) {
	svc, _, _ := newUserFixture(t)
	ctx := context.Background()

	registered, err := svc.Register(ctx, "Jo King", "jo@example.com", "s3cret-pass", "")
	require.NoError(t, err)

	session, err := svc.Login(ctx, "jo@example.com", "s3cret-pass")
	require.NoError(t, err)
	assert.Equal(t, registered.User.ID(), session.User.ID())

	_, err = svc.Login(ctx, "jo@example.com", "wrong-password")
	require.Error(t, err)
	assert.True(t, domain.IsValidationError(err))

	// unknown accounts fail the same way as bad passwords
	_, err = svc.Login(ctx, "nobody@example.com", "s3cret-pass")
	require.Error(t, err)
	assert.True(t, domain.IsValidationError(err))
}

func TestUpdateProfileFlow(t *testing.T) {
	svc, _, _ := newUserFixture(t)
	ctx := context.Background()

	session, err := svc.Register(ctx, "Jo King", "jo@example.com", "s3cret-pass", "")
	require.NoError(t, err)
	uid := session.User.ID().String()

	avatar := "https://cdn.example.com/jo.png"
	updated, err := svc.UpdateProfile(ctx, uid, "Jo Q. King", &avatar, nil)
	require.NoError(t, err)
	assert.Equal(t, "Jo Q. King", updated.DisplayName().String())
	assert.NotNil(t, updated.UpdatedAt())

	profile, err := svc.GetProfile(ctx, uid)
	require.NoError(t, err)
	assert.Equal(t, avatar, profile.Avatar().String())
}

func TestDeleteCascadesToJokes(t *testing.T) {
	svc, userStore, jokeStore := newUserFixture(t)
	ctx := context.Background()

	session, err := svc.Register(ctx, "Jo King", "jo@example.com", "s3cret-pass", "")
	require.NoError(t, err)
	uid := session.User.ID().String()

	jokes := usecase.NewJokeService(jokeStore, userStore, &captureDispatcher{}, testLogger())
	joke, err := jokes.Create(ctx, uid, "Why?", "Because!")
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, uid))

	_, err = svc.GetProfile(ctx, uid)
	assert.True(t, domain.IsNotFound(err))

	_, err = jokes.Get(ctx, joke.ID().Int64())
	assert.True(t, domain.IsNotFound(err), "deleting a user removes their jokes")
}
