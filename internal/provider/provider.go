// Package provider is the client boundary to the external conferencing service.
// Beyond the join handoff and the three session callbacks, the provider is a black
// box: it owns media capture, transport and room state entirely.
package provider

import (
	"errors"
	"net/http"
	"time"
)

// ErrSessionFailed is surfaced through Callbacks.OnError when the provider reports
// a failed session.
var ErrSessionFailed = errors.New("the meeting session failed")

// Client talks to the conferencing provider's session API.
type Client struct {
	http *http.Client

	// PollInterval controls how often the session status is checked while in a meeting.
	PollInterval time.Duration
}

// NewClient provides a Client for the provider at the given origin.
func NewClient(origin string) *Client {
	providerTransport := transport{
		BaseURL:               origin,
		MaxIdleConns:          10,
		IdleConnTimeout:       30 * time.Second,
		TLSHandshakeTimeout:   5 * time.Second,
		ResponseHeaderTimeout: 10 * time.Second,
	}

	return &Client{
		http: &http.Client{
			Timeout:   15 * time.Second,
			Transport: &providerTransport,
		},
		PollInterval: 5 * time.Second,
	}
}

type joinRequest struct {
	Token       string `json:"token"`
	UserID      string `json:"user_id"`
	DisplayName string `json:"display_name"`
	AvatarURL   string `json:"avatar_url"`
	Camera      bool   `json:"camera"`
	Mic         bool   `json:"microphone"`
	Speaker     bool   `json:"speaker"`
}

type joinResponse struct {
	SessionID string `json:"session_id"`
	Status    string `json:"status"`
}
