// Package session validates the preconditions for starting a meeting and builds the
// descriptor handed to the external conferencing provider. Everything past the handoff
// (media, signaling, room state) belongs to the provider; this package only owns the
// contract points.
package session

import (
	"errors"
	"regexp"

	"github.com/google/uuid"

	"github.com/pbakker/huddle/configs"
	"github.com/pbakker/huddle/internal/meetingid"
)

var validName = regexp.MustCompile(`^[A-Za-z\s]{2,}$`)

// ErrInvalidName is returned with a user-friendly message when the display name fails
// the letters-and-whitespace check.
var ErrInvalidName = errors.New("enter a valid name: letters only, at least 2 characters")

// Descriptor is everything the conferencing provider needs to admit a participant.
type Descriptor struct {
	UserID      string       // opaque per-launch id, never persisted
	DisplayName string
	MeetingID   meetingid.ID // canonical form
	Camera      bool
	Mic         bool
	Speaker     bool
}

// Callbacks are the integration points the conferencing provider calls back into
// during a session. The session-handoff side implements these and passes them to the
// provider at construction time; the provider owns everything else.
type Callbacks interface {
	// AvatarURL returns the avatar to render for a participant with the given name.
	AvatarURL(displayName string) string
	// OnError receives provider-reported runtime errors. They are never fatal here;
	// the provider handles its own teardown.
	OnError(err error)
	// ConfirmLeave gates session teardown behind a yes/no answer from the user.
	ConfirmLeave() bool
}

// NewUserID derives the opaque session user id. Callers generate it once per app
// launch and thread it through; it is never persisted.
func NewUserID() string {
	return uuid.NewString()
}

// ValidateName checks the display name: letters and whitespace, at least 2 characters.
func ValidateName(name string) error {
	if !validName.MatchString(name) {
		return ErrInvalidName
	}
	return nil
}

// Preflight checks the session preconditions in order: display name, meeting id,
// app credentials. The first failure wins and its error is the user-facing message;
// later checks are not run.
func Preflight(name, candidate string, creds configs.Credentials) (meetingid.ID, error) {
	if err := ValidateName(name); err != nil {
		return "", err
	}
	id, err := meetingid.Validate(candidate)
	if err != nil {
		return "", err
	}
	if err := creds.Validate(); err != nil {
		return "", err
	}
	return id, nil
}
