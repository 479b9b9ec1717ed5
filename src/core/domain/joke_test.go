package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jokehub/src/core/domain"
)

func newTestJoke(t *testing.T) *domain.Joke {
	t.Helper()
	q, a, uid := mustJokeVOs(t)
	j, err := domain.NewJoke(q, a, uid)
	require.NoError(t, err)
	return j
}

func TestNewJoke(t *testing.T) {
	j := newTestJoke(t)

	assert.True(t, j.ID().IsEmpty(), "id is assigned by persistence")
	assert.Equal(t, "Why?", j.Question().String())
	assert.Equal(t, "Because!", j.Answer().String())
	assert.Equal(t, int32(0), j.Likes())
	assert.Nil(t, j.UpdatedAt())
	assert.Nil(t, j.Author())
	assert.False(t, j.CreatedAt().IsZero())

	events := j.PullPendingEvents()
	require.Len(t, events, 1)
	created, ok := events[0].(domain.JokeWasCreated)
	require.True(t, ok)
	assert.True(t, created.JokeID().IsEmpty())
	assert.Equal(t, "u1", created.AuthorID().String())
}

func TestNewJokeRejectsEqualQuestionAndAnswer(t *testing.T) {
	uid, err := domain.NewUserID("u1")
	require.NoError(t, err)

	tests := []struct {
		name     string
		question string
		answer   string
	}{
		{name: "identical", question: "same", answer: "same"},
		{name: "case insensitive", question: "same", answer: "SAME"},
		{name: "differs only in surrounding space", question: " same ", answer: "same"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := domain.NewQuestionText(tt.question)
			require.NoError(t, err)
			a, err := domain.NewAnswerText(tt.answer)
			require.NoError(t, err)

			_, err = domain.NewJoke(q, a, uid)
			require.Error(t, err)
			assert.True(t, domain.IsValidationError(err))
		})
	}
}

func TestJokeAssignID(t *testing.T) {
	j := newTestJoke(t)
	id, err := domain.NewJokeID(7)
	require.NoError(t, err)

	require.NoError(t, j.AssignID(id))
	assert.Equal(t, int64(7), j.ID().Int64())

	// single-shot
	other, err := domain.NewJokeID(8)
	require.NoError(t, err)
	err = j.AssignID(other)
	assert.True(t, domain.IsOperationError(err))
	assert.Equal(t, int64(7), j.ID().Int64())

	err = newTestJoke(t).AssignID(domain.JokeID{})
	assert.True(t, domain.IsValidationError(err))
}

func TestJokeUpdate(t *testing.T) {
	j := newTestJoke(t)
	j.PullPendingEvents()

	author, err := domain.NewUserID("u1")
	require.NoError(t, err)
	q, err := domain.NewQuestionText("What's brown and sticky?")
	require.NoError(t, err)
	a, err := domain.NewAnswerText("A stick.")
	require.NoError(t, err)

	require.NoError(t, j.Update(author, q, a))
	assert.Equal(t, q, j.Question())
	assert.Equal(t, a, j.Answer())
	require.NotNil(t, j.UpdatedAt())

	events := j.PullPendingEvents()
	require.Len(t, events, 1)
	updated, ok := events[0].(domain.JokeWasUpdated)
	require.True(t, ok)
	assert.Equal(t, q, updated.Question())
	assert.Equal(t, a, updated.Answer())
}

func TestJokeUpdateByNonAuthor(t *testing.T) {
	j := newTestJoke(t)
	j.PullPendingEvents()

	stranger, err := domain.NewUserID("u2")
	require.NoError(t, err)
	q, err := domain.NewQuestionText("New question?")
	require.NoError(t, err)
	a, err := domain.NewAnswerText("New answer.")
	require.NoError(t, err)

	err = j.Update(stranger, q, a)
	require.Error(t, err)
	assert.True(t, domain.IsUnauthorizedOperationError(err))
	assert.True(t, domain.IsOperationError(err))

	// no partial effect
	assert.Equal(t, "Why?", j.Question().String())
	assert.Equal(t, "Because!", j.Answer().String())
	assert.Nil(t, j.UpdatedAt())
	assert.Equal(t, 0, j.PendingEventCount())
}

func TestJokeUpdateRejectsEqualFields(t *testing.T) {
	j := newTestJoke(t)
	j.PullPendingEvents()

	author, err := domain.NewUserID("u1")
	require.NoError(t, err)
	q, err := domain.NewQuestionText("echo")
	require.NoError(t, err)
	a, err := domain.NewAnswerText("ECHO")
	require.NoError(t, err)

	err = j.Update(author, q, a)
	assert.True(t, domain.IsValidationError(err))
	assert.Equal(t, "Why?", j.Question().String())
	assert.Equal(t, 0, j.PendingEventCount())
}

func TestJokeLikes(t *testing.T) {
	j := newTestJoke(t)
	j.PullPendingEvents()

	require.NoError(t, j.AddLike())
	require.NoError(t, j.AddLike())
	assert.Equal(t, int32(2), j.Likes())

	require.NoError(t, j.RemoveLike())
	assert.Equal(t, int32(1), j.Likes())

	events := j.PullPendingEvents()
	require.Len(t, events, 3)
	assert.Equal(t, domain.EventJokeLiked, events[0].EventName())
	assert.Equal(t, domain.EventJokeLiked, events[1].EventName())
	assert.Equal(t, domain.EventJokeUnliked, events[2].EventName())
	assert.Equal(t, int32(1), events[0].(domain.JokeWasLiked).TotalLikes())
	assert.Equal(t, int32(2), events[1].(domain.JokeWasLiked).TotalLikes())
	assert.Equal(t, int32(1), events[2].(domain.JokeWasUnliked).TotalLikes())
}

func TestJokeRemoveLikeAtZero(t *testing.T) {
	j := newTestJoke(t)
	j.PullPendingEvents()

	err := j.RemoveLike()
	require.Error(t, err)
	assert.True(t, domain.IsOperationError(err))
	assert.Equal(t, int32(0), j.Likes())
	assert.Equal(t, 0, j.PendingEventCount())
}

func TestJokeAddLikeAtCeiling(t *testing.T) {
	q, a, uid := mustJokeVOs(t)
	id, err := domain.NewJokeID(1)
	require.NoError(t, err)
	j := domain.RehydrateJoke(id, q, a, uid, timeNow(t), nil, domain.MaxLikes)

	err = j.AddLike()
	require.Error(t, err)
	assert.True(t, domain.IsOperationError(err))
	assert.Equal(t, int32(domain.MaxLikes), j.Likes())
	assert.Equal(t, 0, j.PendingEventCount())
}

func TestJokeSetAuthor(t *testing.T) {
	j := newTestJoke(t)
	user := newTestUser(t, "u1")

	require.NoError(t, j.SetAuthor(user))
	assert.Same(t, user, j.Author())

	// refuse re-parenting, even to the same user
	err := j.SetAuthor(user)
	assert.True(t, domain.IsOperationError(err))
	assert.False(t, domain.IsUnauthorizedOperationError(err))
}

func TestJokeSetAuthorMismatch(t *testing.T) {
	j := newTestJoke(t)

	err := j.SetAuthor(nil)
	assert.True(t, domain.IsValidationError(err))

	err = j.SetAuthor(newTestUser(t, "u2"))
	assert.True(t, domain.IsValidationError(err))
	assert.Nil(t, j.Author())
}

func TestJokeIsAuthoredBy(t *testing.T) {
	j := newTestJoke(t)

	author, err := domain.NewUserID("u1")
	require.NoError(t, err)
	stranger, err := domain.NewUserID("u2")
	require.NoError(t, err)

	assert.True(t, j.IsAuthoredBy(author))
	assert.False(t, j.IsAuthoredBy(stranger))
	assert.False(t, j.IsAuthoredBy(domain.UserID{}))
}

func TestPullPendingEventsDrains(t *testing.T) {
	j := newTestJoke(t)
	require.NoError(t, j.AddLike())

	events := j.PullPendingEvents()
	require.Len(t, events, 2)
	assert.Equal(t, 0, j.PendingEventCount())
	assert.Empty(t, j.PullPendingEvents())
}

// Scenario from the product brief: create, like twice, unlike once.
func TestJokeLifecycleScenario(t *testing.T) {
	q, err := domain.NewQuestionText("Why?")
	require.NoError(t, err)
	a, err := domain.NewAnswerText("Because!")
	require.NoError(t, err)
	uid, err := domain.NewUserID("u1")
	require.NoError(t, err)

	j, err := domain.NewJoke(q, a, uid)
	require.NoError(t, err)
	require.NoError(t, j.AddLike())
	require.NoError(t, j.AddLike())
	require.NoError(t, j.RemoveLike())

	assert.Equal(t, int32(1), j.Likes())

	events := j.PullPendingEvents()
	require.Len(t, events, 4)
	assert.Equal(t, domain.EventJokeCreated, events[0].EventName())
	assert.Equal(t, domain.EventJokeLiked, events[1].EventName())
	assert.Equal(t, domain.EventJokeLiked, events[2].EventName())
	assert.Equal(t, domain.EventJokeUnliked, events[3].EventName())
}

func TestValidateIntegrity(t *testing.T) {
	j := newTestJoke(t)
	require.NoError(t, j.ValidateIntegrity())

	q, _, uid := mustJokeVOs(t)
	bad, err := domain.NewAnswerText("why?")
	require.NoError(t, err)
	id, err := domain.NewJokeID(1)
	require.NoError(t, err)

	// imported row with question == answer
	imported := domain.RehydrateJoke(id, q, bad, uid, timeNow(t), nil, 0)
	err = imported.ValidateIntegrity()
	assert.True(t, domain.IsValidationError(err))
}
