package session

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/pbakker/huddle/configs"
)

// TokenTTL bounds how long a join token stays valid after signing.
const TokenTTL = 2 * time.Hour

// JoinToken signs the descriptor claims with the app signing secret. The provider
// verifies this token before admitting the participant.
func JoinToken(creds configs.Credentials, desc Descriptor) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"app_id": creds.AppID,
		"sub":    desc.UserID,
		"name":   desc.DisplayName,
		"mid":    string(desc.MeetingID),
		"iat":    now.Unix(),
		"exp":    now.Add(TokenTTL).Unix(),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(creds.AppSecret))
	if err != nil {
		return "", fmt.Errorf("error signing join token: %w", err)
	}
	return token, nil
}
