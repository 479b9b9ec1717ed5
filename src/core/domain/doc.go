// Package domain contains the core domain model for the application.
//
// This package defines:
//   - Value Objects: validated, immutable wrappers around primitives
//     (JokeID, UserID, QuestionText, AnswerText, DisplayName, AvatarURL, EmailAddress)
//   - Entities: the Joke aggregate and the ApplicationUser profile
//   - Domain Errors: the validation / operation / unauthorized-operation taxonomy
//   - Domain Events: records emitted when a Joke changes state
//
// Rules for this package:
//   - No infrastructure concerns (database, HTTP, etc.)
//   - Value objects are constructible only through their New* factories
//   - Entities validate their own invariants; failed operations leave state untouched
//   - Events accumulate on the aggregate in call order and are drained by the
//     caller via PullPendingEvents; the aggregate never delivers them itself
//
// Instances are not safe for concurrent mutation. Callers serialize access to
// a single Joke or ApplicationUser, typically one instance per unit of work.
package domain
