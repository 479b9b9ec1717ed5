package domain_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jokehub/src/core/domain"
)

func mustJokeVOs(t *testing.T) (domain.QuestionText, domain.AnswerText, domain.UserID) {
	t.Helper()
	q, err := domain.NewQuestionText("Why?")
	require.NoError(t, err)
	a, err := domain.NewAnswerText("Because!")
	require.NoError(t, err)
	uid, err := domain.NewUserID("u1")
	require.NoError(t, err)
	return q, a, uid
}

func TestNewJokeWasCreated(t *testing.T) {
	q, a, uid := mustJokeVOs(t)

	ev, err := domain.NewJokeWasCreated(domain.JokeID{}, q, a, uid)
	require.NoError(t, err)

	assert.Equal(t, domain.EventJokeCreated, ev.EventName())
	assert.True(t, ev.JokeID().IsEmpty(), "creation events carry the placeholder id")
	assert.Equal(t, q, ev.Question())
	assert.Equal(t, a, ev.Answer())
	assert.Equal(t, uid, ev.AuthorID())
	assert.NotEqual(t, uuid.Nil, ev.EventID())
	assert.WithinDuration(t, time.Now().UTC(), ev.OccurredAt(), time.Minute)
}

func TestNewJokeWasCreatedRejectsEmptyPayload(t *testing.T) {
	q, a, uid := mustJokeVOs(t)

	_, err := domain.NewJokeWasCreated(domain.JokeID{}, domain.QuestionText{}, a, uid)
	assert.True(t, domain.IsValidationError(err))

	_, err = domain.NewJokeWasCreated(domain.JokeID{}, q, domain.AnswerText{}, uid)
	assert.True(t, domain.IsValidationError(err))

	_, err = domain.NewJokeWasCreated(domain.JokeID{}, q, a, domain.UserID{})
	assert.True(t, domain.IsValidationError(err))
}

func TestEventFactoriesRejectEmptyJokeID(t *testing.T) {
	q, a, _ := mustJokeVOs(t)

	_, err := domain.NewJokeWasUpdated(domain.JokeID{}, q, a)
	require.Error(t, err)
	assert.True(t, domain.IsValidationError(err))
	assert.Equal(t, "joke_id", domain.FieldName(err))

	_, err = domain.NewJokeWasLiked(domain.JokeID{}, 1)
	require.Error(t, err)
	assert.True(t, domain.IsValidationError(err))
	assert.Equal(t, "joke_id", domain.FieldName(err))

	_, err = domain.NewJokeWasUnliked(domain.JokeID{}, 0)
	require.Error(t, err)
	assert.True(t, domain.IsValidationError(err))
	assert.Equal(t, "joke_id", domain.FieldName(err))
}

func TestNewJokeWasUpdated(t *testing.T) {
	q, a, _ := mustJokeVOs(t)
	id, err := domain.NewJokeID(42)
	require.NoError(t, err)

	ev, err := domain.NewJokeWasUpdated(id, q, a)
	require.NoError(t, err)
	assert.Equal(t, domain.EventJokeUpdated, ev.EventName())
	assert.Equal(t, id, ev.JokeID())

	_, err = domain.NewJokeWasUpdated(id, domain.QuestionText{}, a)
	assert.True(t, domain.IsValidationError(err))
}

func TestLikeEvents(t *testing.T) {
	id, err := domain.NewJokeID(42)
	require.NoError(t, err)

	liked, err := domain.NewJokeWasLiked(id, 3)
	require.NoError(t, err)
	assert.Equal(t, domain.EventJokeLiked, liked.EventName())
	assert.Equal(t, int32(3), liked.TotalLikes())

	_, err = domain.NewJokeWasLiked(id, 0)
	assert.True(t, domain.IsValidationError(err), "a like always yields at least one")

	unliked, err := domain.NewJokeWasUnliked(id, 0)
	require.NoError(t, err)
	assert.Equal(t, domain.EventJokeUnliked, unliked.EventName())
	assert.Equal(t, int32(0), unliked.TotalLikes())

	_, err = domain.NewJokeWasUnliked(id, -1)
	assert.True(t, domain.IsValidationError(err))
}
