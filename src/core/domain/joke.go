package domain

import (
	"math"
	"strings"
	"time"
)

// MaxLikes is the ceiling of the like counter.
const MaxLikes = math.MaxInt32

// Joke is the aggregate root for a question/answer joke. It owns the
// question-answer invariant, the like counter, and the pending event list.
// All mutation goes through its methods; a failed call leaves state and the
// event list untouched.
type Joke struct {
	id       JokeID
	question QuestionText
	answer   AnswerText
	authorID UserID

	// author is resolved lazily via SetAuthor; a joke can live indefinitely
	// with a valid authorID and no resolved reference.
	author *ApplicationUser

	createdAt time.Time
	updatedAt *time.Time
	likes     int32

	events []Event
}

// NewJoke creates a joke authored by authorID and queues a JokeWasCreated
// event. The event carries the placeholder id; the persistence layer assigns
// the real one via AssignID after the first save.
func NewJoke(question QuestionText, answer AnswerText, authorID UserID) (*Joke, error) {
	if question.IsEmpty() {
		return nil, NewValidationError("question", "must not be empty")
	}
	if answer.IsEmpty() {
		return nil, NewValidationError("answer", "must not be empty")
	}
	if authorID.IsEmpty() {
		return nil, NewValidationError("author_id", "must not be empty")
	}
	if err := checkDistinct(question, answer); err != nil {
		return nil, err
	}

	j := &Joke{
		question:  question,
		answer:    answer,
		authorID:  authorID,
		createdAt: time.Now().UTC(),
	}

	created, err := NewJokeWasCreated(j.id, question, answer, authorID)
	if err != nil {
		return nil, err
	}
	j.events = append(j.events, created)
	return j, nil
}

// RehydrateJoke rebuilds a joke from persisted state. No invariant checks run
// and no events are queued; use ValidateIntegrity to vet imported data.
func RehydrateJoke(id JokeID, question QuestionText, answer AnswerText, authorID UserID, createdAt time.Time, updatedAt *time.Time, likes int32) *Joke {
	return &Joke{
		id:        id,
		question:  question,
		answer:    answer,
		authorID:  authorID,
		createdAt: createdAt,
		updatedAt: updatedAt,
		likes:     likes,
	}
}

// checkDistinct enforces the core invariant: a joke's question and answer
// must never be equal, compared case-insensitively.
func checkDistinct(question QuestionText, answer AnswerText) error {
	if strings.EqualFold(question.String(), answer.String()) {
		return NewValidationError("answer", "must differ from the question")
	}
	return nil
}

// ID returns the joke's identifier; the placeholder until AssignID is called.
func (j *Joke) ID() JokeID { return j.id }

// Question returns the current question.
func (j *Joke) Question() QuestionText { return j.question }

// Answer returns the current answer.
func (j *Joke) Answer() AnswerText { return j.answer }

// AuthorID returns the identifier of the joke's author.
func (j *Joke) AuthorID() UserID { return j.authorID }

// Author returns the resolved author reference, or nil if not attached.
func (j *Joke) Author() *ApplicationUser { return j.author }

// CreatedAt returns the UTC creation time.
func (j *Joke) CreatedAt() time.Time { return j.createdAt }

// UpdatedAt returns the UTC time of the last update, or nil if never updated.
func (j *Joke) UpdatedAt() *time.Time { return j.updatedAt }

// Likes returns the current like count.
func (j *Joke) Likes() int32 { return j.likes }

// AssignID attaches the identifier generated by the persistence layer.
// It is single-shot: reassigning an already identified joke is refused.
func (j *Joke) AssignID(id JokeID) error {
	if id.IsEmpty() {
		return NewValidationError("joke_id", "must not be empty")
	}
	if !j.id.IsEmpty() {
		return NewOperationError("joke already has an identifier")
	}
	j.id = id
	return nil
}

// Update replaces the question and answer. Only the author may update;
// anyone else gets an unauthorized-operation error and the joke is untouched.
func (j *Joke) Update(requesterID UserID, question QuestionText, answer AnswerText) error {
	if !j.IsAuthoredBy(requesterID) {
		return NewUnauthorizedOperationError("only the author may update a joke")
	}
	if question.IsEmpty() {
		return NewValidationError("question", "must not be empty")
	}
	if answer.IsEmpty() {
		return NewValidationError("answer", "must not be empty")
	}
	if err := checkDistinct(question, answer); err != nil {
		return err
	}

	updated, err := newJokeWasUpdated(j.id, question, answer)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	j.question = question
	j.answer = answer
	j.updatedAt = &now
	j.events = append(j.events, updated)
	return nil
}

// AddLike increments the like counter and queues a JokeWasLiked event.
func (j *Joke) AddLike() error {
	if j.likes == MaxLikes {
		return NewOperationError("like counter is at its maximum")
	}

	liked, err := newJokeWasLiked(j.id, j.likes+1)
	if err != nil {
		return err
	}
	j.likes++
	j.events = append(j.events, liked)
	return nil
}

// RemoveLike decrements the like counter and queues a JokeWasUnliked event.
func (j *Joke) RemoveLike() error {
	if j.likes == 0 {
		return NewOperationError("joke has no likes to remove")
	}

	unliked, err := newJokeWasUnliked(j.id, j.likes-1)
	if err != nil {
		return err
	}
	j.likes--
	j.events = append(j.events, unliked)
	return nil
}

// SetAuthor attaches the resolved author reference. The user's identifier
// must match the stored author id, and attachment happens at most once.
func (j *Joke) SetAuthor(user *ApplicationUser) error {
	if user == nil {
		return NewValidationError("author", "must not be nil")
	}
	if j.author != nil {
		return NewOperationError("author is already set")
	}
	if !user.ID().Equals(j.authorID) {
		return NewValidationError("author", "user id does not match the joke's author id")
	}
	j.author = user
	return nil
}

// IsAuthoredBy reports whether the joke was authored by the given user.
// It never fails: an empty or non-matching id simply yields false.
func (j *Joke) IsAuthoredBy(userID UserID) bool {
	if j.authorID.IsEmpty() || userID.IsEmpty() {
		return false
	}
	return j.authorID.Equals(userID)
}

// PullPendingEvents returns the accumulated events in the order the
// operations ran and clears the internal list. Draining an already empty
// list returns nil.
func (j *Joke) PullPendingEvents() []Event {
	if len(j.events) == 0 {
		return nil
	}
	pending := j.events
	j.events = nil
	return pending
}

// PendingEventCount reports how many events are queued without draining them.
func (j *Joke) PendingEventCount() int {
	return len(j.events)
}

// ValidateIntegrity re-runs the question/answer invariant against current
// state. Meant for diagnostics and imported data, not normal mutation paths.
func (j *Joke) ValidateIntegrity() error {
	if j.question.IsEmpty() {
		return NewValidationError("question", "must not be empty")
	}
	if j.answer.IsEmpty() {
		return NewValidationError("answer", "must not be empty")
	}
	return checkDistinct(j.question, j.answer)
}
