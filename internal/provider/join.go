package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/pbakker/huddle/configs"
	"github.com/pbakker/huddle/internal/meetingid"
	"github.com/pbakker/huddle/internal/session"
)

// Join hands the validated session descriptor to the provider and blocks for the
// lifetime of the meeting. Cancelling ctx asks the user to confirm leaving through
// cb.ConfirmLeave; declining keeps the session until the provider ends it.
// Provider-reported runtime errors go to cb.OnError and never abort the session
// from this side.
func (c *Client) Join(ctx context.Context, creds configs.Credentials, desc session.Descriptor, cb session.Callbacks) error {
	token, err := session.JoinToken(creds, desc)
	if err != nil {
		return err
	}

	payload, err := json.Marshal(joinRequest{
		Token:       token,
		UserID:      desc.UserID,
		DisplayName: desc.DisplayName,
		AvatarURL:   cb.AvatarURL(desc.DisplayName),
		Camera:      desc.Camera,
		Mic:         desc.Mic,
		Speaker:     desc.Speaker,
	})
	if err != nil {
		return fmt.Errorf("json marshal error: %w", err)
	}

	res, err := c.http.Post(
		"/v1/rooms/"+string(desc.MeetingID)+"/join",
		"application/json; charset=utf-8",
		bytes.NewReader(payload),
	)
	if err != nil {
		return fmt.Errorf("request error: %w", err)
	}
	defer func() {
		_ = res.Body.Close()
	}()

	if res.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(res.Body)
		return fmt.Errorf("join rejected: %s", strings.TrimSpace(string(body)))
	}

	var joined joinResponse
	if err := json.NewDecoder(res.Body).Decode(&joined); err != nil {
		return fmt.Errorf("json decode error: %w", err)
	}

	log.Infof("in meeting %s as %s (session %s)",
		meetingid.ToDisplay(desc.MeetingID), desc.DisplayName, joined.SessionID)

	return c.watch(ctx, joined.SessionID, token, cb)
}

// watch follows the provider's session status until the meeting ends, the session
// fails, or the user confirms leaving.
func (c *Client) watch(ctx context.Context, sessionID, token string, cb session.Callbacks) error {
	ticker := time.NewTicker(c.PollInterval)
	defer ticker.Stop()

	done := ctx.Done()
	for {
		select {
		case <-done:
			if cb.ConfirmLeave() {
				return c.leave(sessionID, token)
			}
			done = nil // stay in the meeting until the provider ends it
		case <-ticker.C:
			status, err := c.status(sessionID, token)
			if err != nil {
				cb.OnError(err)
				continue
			}
			switch status {
			case StatusFailed:
				// the provider handles teardown on its own terms
				cb.OnError(ErrSessionFailed)
				return nil
			case StatusEnded:
				log.Info("meeting ended")
				return nil
			default:
				log.Debugf("session %s status: %s", sessionID, status)
			}
		}
	}
}

func (c *Client) status(sessionID, token string) (Status, error) {
	req, err := http.NewRequest(http.MethodGet, "/v1/sessions/"+sessionID, nil)
	if err != nil {
		return StatusUnknown, err
	}
	req.Header.Set("Authorization", "Bearer "+token)

	res, err := c.http.Do(req)
	if err != nil {
		return StatusUnknown, fmt.Errorf("request error: %w", err)
	}
	defer func() {
		_ = res.Body.Close()
	}()

	if res.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(res.Body)
		return StatusUnknown, fmt.Errorf("status request failed: %s", strings.TrimSpace(string(body)))
	}

	var joined joinResponse
	if err := json.NewDecoder(res.Body).Decode(&joined); err != nil {
		return StatusUnknown, fmt.Errorf("json decode error: %w", err)
	}
	return parseStatus(joined.Status), nil
}

func (c *Client) leave(sessionID, token string) error {
	req, err := http.NewRequest(http.MethodDelete, "/v1/sessions/"+sessionID, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+token)

	res, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request error: %w", err)
	}
	defer func() {
		_ = res.Body.Close()
	}()

	if res.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(res.Body)
		return fmt.Errorf("leave request failed: %s", strings.TrimSpace(string(body)))
	}
	log.Debug("left meeting")
	return nil
}
