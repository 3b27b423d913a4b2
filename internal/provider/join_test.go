package provider

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/pbakker/huddle/configs"
	"github.com/pbakker/huddle/internal/session"
)

var testCreds = configs.Credentials{AppID: 12345, AppSecret: "s3cret"}

func testDescriptor() session.Descriptor {
	return session.Descriptor{
		UserID:      session.NewUserID(),
		DisplayName: "Ada Lovelace",
		MeetingID:   "1234567890",
		Camera:      true,
		Mic:         true,
		Speaker:     true,
	}
}

// fakeCallbacks records provider callback invocations.
type fakeCallbacks struct {
	mu           sync.Mutex
	confirmLeave bool
	errs         []error
}

func (f *fakeCallbacks) AvatarURL(string) string { return "https://avatars.test/ada" }

func (f *fakeCallbacks) OnError(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.errs = append(f.errs, err)
}

func (f *fakeCallbacks) ConfirmLeave() bool { return f.confirmLeave }

func (f *fakeCallbacks) errors() []error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]error(nil), f.errs...)
}

// fakeProvider is a minimal conferencing-provider API: one room, scripted statuses.
type fakeProvider struct {
	mu       sync.Mutex
	statuses []string // returned in order; last one repeats
	joins    int
	leaves   int
	lastJoin joinRequest
}

func (p *fakeProvider) handler() http.Handler {
	// Method+wildcard ServeMux patterns need Go 1.22; dispatch manually to
	// stay compatible with older toolchains.
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost && strings.HasPrefix(r.URL.Path, "/v1/rooms/") && strings.HasSuffix(r.URL.Path, "/join"):
			p.mu.Lock()
			defer p.mu.Unlock()
			p.joins++
			_ = json.NewDecoder(r.Body).Decode(&p.lastJoin)
			if p.lastJoin.Token == "" {
				http.Error(w, "missing token", http.StatusForbidden)
				return
			}
			_ = json.NewEncoder(w).Encode(joinResponse{SessionID: "sess-1", Status: "connecting"})
		case r.Method == http.MethodGet && strings.HasPrefix(r.URL.Path, "/v1/sessions/"):
			p.mu.Lock()
			defer p.mu.Unlock()
			status := p.statuses[0]
			if len(p.statuses) > 1 {
				p.statuses = p.statuses[1:]
			}
			_ = json.NewEncoder(w).Encode(joinResponse{SessionID: "sess-1", Status: status})
		case r.Method == http.MethodDelete && strings.HasPrefix(r.URL.Path, "/v1/sessions/"):
			p.mu.Lock()
			defer p.mu.Unlock()
			p.leaves++
			w.WriteHeader(http.StatusOK)
		default:
			http.NotFound(w, r)
		}
	})
}

func newTestClient(t *testing.T, p *fakeProvider) *Client {
	t.Helper()
	srv := httptest.NewServer(p.handler())
	t.Cleanup(srv.Close)
	c := NewClient(srv.URL)
	c.PollInterval = 5 * time.Millisecond
	return c
}

func TestJoinUntilMeetingEnds(t *testing.T) {
	fake := &fakeProvider{statuses: []string{"in_meeting", "in_meeting", "ended"}}
	c := newTestClient(t, fake)
	cb := &fakeCallbacks{}

	if err := c.Join(context.Background(), testCreds, testDescriptor(), cb); err != nil {
		t.Fatalf("Join() error: %v", err)
	}
	if fake.joins != 1 {
		t.Errorf("joins = %d, want 1", fake.joins)
	}
	if fake.leaves != 0 {
		t.Errorf("leaves = %d, want 0 (provider ended the meeting)", fake.leaves)
	}
	if fake.lastJoin.DisplayName != "Ada Lovelace" || !fake.lastJoin.Camera {
		t.Errorf("join request = %+v", fake.lastJoin)
	}
	if fake.lastJoin.AvatarURL != "https://avatars.test/ada" {
		t.Errorf("avatar url = %q", fake.lastJoin.AvatarURL)
	}
}

func TestJoinConfirmedLeave(t *testing.T) {
	fake := &fakeProvider{statuses: []string{"in_meeting"}}
	c := newTestClient(t, fake)
	cb := &fakeCallbacks{confirmLeave: true}

	ctx, cancel := context.WithCancel(context.Background())
	cancel() // user interrupts immediately

	if err := c.Join(ctx, testCreds, testDescriptor(), cb); err != nil {
		t.Fatalf("Join() error: %v", err)
	}
	if fake.leaves != 1 {
		t.Errorf("leaves = %d, want 1", fake.leaves)
	}
}

func TestJoinDeclinedLeaveStays(t *testing.T) {
	fake := &fakeProvider{statuses: []string{"in_meeting", "ended"}}
	c := newTestClient(t, fake)
	cb := &fakeCallbacks{confirmLeave: false}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := c.Join(ctx, testCreds, testDescriptor(), cb); err != nil {
		t.Fatalf("Join() error: %v", err)
	}
	if fake.leaves != 0 {
		t.Errorf("leaves = %d, want 0 (leave was declined)", fake.leaves)
	}
}

func TestJoinSessionFailureIsReportedNotReturned(t *testing.T) {
	fake := &fakeProvider{statuses: []string{"failed"}}
	c := newTestClient(t, fake)
	cb := &fakeCallbacks{}

	if err := c.Join(context.Background(), testCreds, testDescriptor(), cb); err != nil {
		t.Fatalf("Join() error: %v", err)
	}
	errs := cb.errors()
	if len(errs) != 1 || !errors.Is(errs[0], ErrSessionFailed) {
		t.Errorf("OnError received %v, want ErrSessionFailed", errs)
	}
}

func TestJoinRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "unknown application", http.StatusForbidden)
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	c.PollInterval = 5 * time.Millisecond
	if err := c.Join(context.Background(), testCreds, testDescriptor(), &fakeCallbacks{}); err == nil {
		t.Fatal("Join() = nil, want error on rejected join")
	}
}
