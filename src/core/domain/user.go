package domain

import "time"

// ApplicationUser is a registered user's profile: display identity plus the
// collection of jokes they authored. Credentials live with the identity
// collaborator, not here.
type ApplicationUser struct {
	id          UserID
	displayName DisplayName
	avatar      AvatarURL
	email       EmailAddress
	createdAt   time.Time
	updatedAt   *time.Time

	// jokes is a plain mutable set of authored jokes, keyed by identity of
	// the aggregate instance. Loading it is the repository's concern.
	jokes []*Joke
}

// NewApplicationUser creates a user profile.
func NewApplicationUser(id UserID, displayName DisplayName, email EmailAddress, avatar AvatarURL) (*ApplicationUser, error) {
	if id.IsEmpty() {
		return nil, NewValidationError("user_id", "must not be empty")
	}
	if displayName.IsEmpty() {
		return nil, NewValidationError("display_name", "must not be empty")
	}
	if email.IsEmpty() {
		return nil, NewValidationError("email", "must not be empty")
	}
	return &ApplicationUser{
		id:          id,
		displayName: displayName,
		avatar:      avatar,
		email:       email,
		createdAt:   time.Now().UTC(),
	}, nil
}

// RehydrateUser rebuilds a user profile from persisted state.
func RehydrateUser(id UserID, displayName DisplayName, email EmailAddress, avatar AvatarURL, createdAt time.Time, updatedAt *time.Time) *ApplicationUser {
	return &ApplicationUser{
		id:          id,
		displayName: displayName,
		avatar:      avatar,
		email:       email,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

// ID returns the user's identifier.
func (u *ApplicationUser) ID() UserID { return u.id }

// DisplayName returns the user's display name.
func (u *ApplicationUser) DisplayName() DisplayName { return u.displayName }

// Avatar returns the user's avatar URL; may be the empty sentinel.
func (u *ApplicationUser) Avatar() AvatarURL { return u.avatar }

// Email returns the user's email address.
func (u *ApplicationUser) Email() EmailAddress { return u.email }

// CreatedAt returns the UTC creation time.
func (u *ApplicationUser) CreatedAt() time.Time { return u.createdAt }

// UpdatedAt returns the UTC time of the last profile change, or nil.
func (u *ApplicationUser) UpdatedAt() *time.Time { return u.updatedAt }

// UpdateProfile re-validates the supplied raw values through the value-object
// factories and applies them. Avatar and email are optional; nil means leave
// unchanged. The update timestamp advances only when a value actually changed.
func (u *ApplicationUser) UpdateProfile(displayName string, avatarURL, email *string) error {
	name, err := NewDisplayName(displayName)
	if err != nil {
		return err
	}

	newAvatar := u.avatar
	if avatarURL != nil {
		newAvatar, err = NewAvatarURL(*avatarURL)
		if err != nil {
			return err
		}
	}

	newEmail := u.email
	if email != nil {
		newEmail, err = NewEmailAddress(*email)
		if err != nil {
			return err
		}
	}

	changed := name != u.displayName || newAvatar != u.avatar || newEmail != u.email
	if !changed {
		return nil
	}

	now := time.Now().UTC()
	u.displayName = name
	u.avatar = newAvatar
	u.email = newEmail
	u.updatedAt = &now
	return nil
}

// Jokes returns the authored jokes currently attached to this profile.
func (u *ApplicationUser) Jokes() []*Joke {
	return u.jokes
}

// AddJoke attaches a joke to the authored set. Adding a joke that is already
// a member is a no-op; a joke authored by someone else is refused.
func (u *ApplicationUser) AddJoke(j *Joke) error {
	if j == nil {
		return NewValidationError("joke", "must not be nil")
	}
	if !j.AuthorID().Equals(u.id) {
		return NewValidationError("joke", "joke is authored by a different user")
	}
	for _, existing := range u.jokes {
		if existing == j {
			return nil
		}
	}
	u.jokes = append(u.jokes, j)
	return nil
}

// RemoveJoke detaches a joke from the authored set. Removing a non-member is
// a silent no-op.
func (u *ApplicationUser) RemoveJoke(j *Joke) {
	for i, existing := range u.jokes {
		if existing == j {
			u.jokes = append(u.jokes[:i], u.jokes[i+1:]...)
			return
		}
	}
}
