package domain

import (
	"time"

	"github.com/google/uuid"
)

// Event names as they appear in the outbox and in dispatcher logs.
const (
	EventJokeCreated = "joke-created"
	EventJokeUpdated = "joke-updated"
	EventJokeLiked   = "joke-liked"
	EventJokeUnliked = "joke-unliked"
)

// Event is an immutable fact describing a state transition of a Joke.
// Events accumulate on the aggregate and are drained by the caller after a
// successful save; delivery is the dispatcher collaborator's problem.
type Event interface {
	// EventID is a unique identifier for deduplication by consumers.
	EventID() uuid.UUID

	// EventName returns the stable name of the event kind.
	EventName() string

	// JokeID returns the identifier of the affected joke. Events emitted
	// before the first save carry the placeholder id, since the real id is
	// assigned by the persistence layer.
	JokeID() JokeID

	// OccurredAt returns the UTC time the event was generated.
	OccurredAt() time.Time
}

// eventBase carries the fields every event shares.
type eventBase struct {
	id         uuid.UUID
	jokeID     JokeID
	occurredAt time.Time
}

func newEventBase(jokeID JokeID) eventBase {
	return eventBase{
		id:         uuid.New(),
		jokeID:     jokeID,
		occurredAt: time.Now().UTC(),
	}
}

func (e eventBase) EventID() uuid.UUID    { return e.id }
func (e eventBase) JokeID() JokeID        { return e.jokeID }
func (e eventBase) OccurredAt() time.Time { return e.occurredAt }

// JokeWasCreated records the birth of a joke. It carries the placeholder
// JokeID because the real identifier is unknown until the first save.
type JokeWasCreated struct {
	eventBase
	question QuestionText
	answer   AnswerText
	authorID UserID
}

// NewJokeWasCreated builds a creation event. The id may be the placeholder,
// but the payload fields must be real values.
func NewJokeWasCreated(id JokeID, question QuestionText, answer AnswerText, authorID UserID) (JokeWasCreated, error) {
	if question.IsEmpty() {
		return JokeWasCreated{}, NewValidationError("question", "must not be empty in a creation event")
	}
	if answer.IsEmpty() {
		return JokeWasCreated{}, NewValidationError("answer", "must not be empty in a creation event")
	}
	if authorID.IsEmpty() {
		return JokeWasCreated{}, NewValidationError("author_id", "must not be empty in a creation event")
	}
	return JokeWasCreated{
		eventBase: newEventBase(id),
		question:  question,
		answer:    answer,
		authorID:  authorID,
	}, nil
}

// EventName implements Event.
func (e JokeWasCreated) EventName() string { return EventJokeCreated }

// Question returns the question the joke was created with.
func (e JokeWasCreated) Question() QuestionText { return e.question }

// Answer returns the answer the joke was created with.
func (e JokeWasCreated) Answer() AnswerText { return e.answer }

// AuthorID returns the author of the new joke.
func (e JokeWasCreated) AuthorID() UserID { return e.authorID }

// JokeWasUpdated records a change to a joke's question and answer.
type JokeWasUpdated struct {
	eventBase
	question QuestionText
	answer   AnswerText
}

// NewJokeWasUpdated builds an update event carrying the new field values.
// The id must be a real, assigned identifier.
func NewJokeWasUpdated(id JokeID, question QuestionText, answer AnswerText) (JokeWasUpdated, error) {
	if id.IsEmpty() {
		return JokeWasUpdated{}, NewValidationError("joke_id", "must not be empty in an update event")
	}
	return newJokeWasUpdated(id, question, answer)
}

// newJokeWasUpdated is the aggregate's construction path. It tolerates the
// placeholder id, since mutations recorded before the first save still queue
// events.
func newJokeWasUpdated(id JokeID, question QuestionText, answer AnswerText) (JokeWasUpdated, error) {
	if question.IsEmpty() {
		return JokeWasUpdated{}, NewValidationError("question", "must not be empty in an update event")
	}
	if answer.IsEmpty() {
		return JokeWasUpdated{}, NewValidationError("answer", "must not be empty in an update event")
	}
	return JokeWasUpdated{
		eventBase: newEventBase(id),
		question:  question,
		answer:    answer,
	}, nil
}

// EventName implements Event.
func (e JokeWasUpdated) EventName() string { return EventJokeUpdated }

// Question returns the new question.
func (e JokeWasUpdated) Question() QuestionText { return e.question }

// Answer returns the new answer.
func (e JokeWasUpdated) Answer() AnswerText { return e.answer }

// JokeWasLiked records an increment of a joke's like counter.
type JokeWasLiked struct {
	eventBase
	totalLikes int32
}

// NewJokeWasLiked builds a like event carrying the new total.
// The id must be a real, assigned identifier.
func NewJokeWasLiked(id JokeID, totalLikes int32) (JokeWasLiked, error) {
	if id.IsEmpty() {
		return JokeWasLiked{}, NewValidationError("joke_id", "must not be empty in a like event")
	}
	return newJokeWasLiked(id, totalLikes)
}

func newJokeWasLiked(id JokeID, totalLikes int32) (JokeWasLiked, error) {
	if totalLikes < 1 {
		return JokeWasLiked{}, NewValidationError("total_likes", "must be at least 1 after a like")
	}
	return JokeWasLiked{
		eventBase:  newEventBase(id),
		totalLikes: totalLikes,
	}, nil
}

// EventName implements Event.
func (e JokeWasLiked) EventName() string { return EventJokeLiked }

// TotalLikes returns the like counter after the increment.
func (e JokeWasLiked) TotalLikes() int32 { return e.totalLikes }

// JokeWasUnliked records a decrement of a joke's like counter.
type JokeWasUnliked struct {
	eventBase
	totalLikes int32
}

// NewJokeWasUnliked builds an unlike event carrying the new total.
// The id must be a real, assigned identifier.
func NewJokeWasUnliked(id JokeID, totalLikes int32) (JokeWasUnliked, error) {
	if id.IsEmpty() {
		return JokeWasUnliked{}, NewValidationError("joke_id", "must not be empty in an unlike event")
	}
	return newJokeWasUnliked(id, totalLikes)
}

func newJokeWasUnliked(id JokeID, totalLikes int32) (JokeWasUnliked, error) {
	if totalLikes < 0 {
		return JokeWasUnliked{}, NewValidationError("total_likes", "must not be negative")
	}
	return JokeWasUnliked{
		eventBase:  newEventBase(id),
		totalLikes: totalLikes,
	}, nil
}

// EventName implements Event.
func (e JokeWasUnliked) EventName() string { return EventJokeUnliked }

// TotalLikes returns the like counter after the decrement.
func (e JokeWasUnliked) TotalLikes() int32 { return e.totalLikes }
