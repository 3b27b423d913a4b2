package configs

import (
	"errors"

	"github.com/spf13/viper"
)

// Credentials are the opaque app credentials issued by the conferencing provider.
// They are read-only after load and validated for presence before any session starts;
// a missing or malformed value is a session-start failure, never a startup crash.
type Credentials struct {
	AppID     int64
	AppSecret string
}

var (
	ErrMissingAppID     = errors.New("application id is missing or not numeric (set app.id in the config file or HUDDLE_APP_ID)")
	ErrMissingAppSecret = errors.New("signing secret is required (set app.secret in the config file or HUDDLE_APP_SECRET)")
)

// LoadCredentials reads the credentials from the initialized config. A value that
// cannot be parsed as a number reads as zero and fails Validate.
func LoadCredentials() Credentials {
	return Credentials{
		AppID:     viper.GetInt64("app.id"),
		AppSecret: viper.GetString("app.secret"),
	}
}

// Validate returns a user-friendly error for the first missing credential.
func (c Credentials) Validate() error {
	if c.AppID <= 0 {
		return ErrMissingAppID
	}
	if c.AppSecret == "" {
		return ErrMissingAppSecret
	}
	return nil
}
