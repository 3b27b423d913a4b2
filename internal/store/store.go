// Package store maintains the bounded, most-recent-first cache of recently joined
// meetings and the user's remembered display name. Both survive process restarts
// through two independent storage channels: a preferences channel (recent meeting
// ids) and a secure channel (display name). Every persistence failure degrades to
// in-memory state with a logged warning, nothing here is ever fatal.
package store

import (
	"path/filepath"

	log "github.com/sirupsen/logrus"

	"github.com/pbakker/huddle/internal/meetingid"
)

// MaxRecents caps the recent meetings list. The oldest entry is evicted on overflow.
const MaxRecents = 5

// RecentsBackend persists the ordered list of canonical meeting ids.
type RecentsBackend interface {
	Load() ([]string, error)
	Save(ids []string) error
}

// ProfileBackend persists the remembered display name on a channel independent
// of the recents list.
type ProfileBackend interface {
	LoadName() (string, error)
	SaveName(name string) error
}

// Store holds the in-memory state and schedules writes to the injected backends.
// Mutations are expected to arrive from a single goroutine (the command flow);
// in-memory state is updated synchronously before the write is scheduled, so reads
// after a mutation always observe it even if the write never reaches storage.
// Each channel's writes are serialized in submission order, so the last write to
// land always carries the final in-memory state.
type Store struct {
	recents RecentsBackend
	profile ProfileBackend

	ids  []meetingid.ID
	name string

	recentsWrites serialWriter
	profileWrites serialWriter
}

// New builds a Store around the given backends. Load must be called before use.
func New(recents RecentsBackend, profile ProfileBackend) *Store {
	return &Store{
		recents:       recents,
		profile:       profile,
		recentsWrites: serialWriter{label: "recent meetings"},
		profileWrites: serialWriter{label: "display name"},
	}
}

// Open wires the on-disk backends under dataDir: a sqlite database for recent
// meetings and a 0600 TOML file for the display name. A channel that cannot be
// opened degrades to in-memory-only state with logged warnings.
func Open(dataDir string) *Store {
	var rb RecentsBackend
	rb, err := OpenRecents(filepath.Join(dataDir, "recents.db"))
	if err != nil {
		rb = unavailable{err}
	}
	return New(rb, NewFileProfile(filepath.Join(dataDir, "profile.toml")))
}

// Load reads both persisted structures. A read failure on either channel substitutes
// the empty default and logs a warning.
func (s *Store) Load() {
	ids, err := s.recents.Load()
	if err != nil {
		log.Warnf("could not read recent meetings, starting empty: %v", err)
		ids = nil
	}
	s.ids = s.ids[:0]
	for _, raw := range ids {
		id, vErr := meetingid.Validate(raw)
		if vErr != nil {
			log.Warnf("dropping malformed recent meeting entry %q", raw)
			continue
		}
		if len(s.ids) < MaxRecents {
			s.ids = append(s.ids, id)
		}
	}

	name, err := s.profile.LoadName()
	if err != nil {
		log.Warnf("could not read display name: %v", err)
		name = ""
	}
	s.name = name
}

// Recents returns a copy of the list, most recent first.
func (s *Store) Recents() []meetingid.ID {
	out := make([]meetingid.ID, len(s.ids))
	copy(out, s.ids)
	return out
}

// Name returns the remembered display name, empty if none is stored.
func (s *Store) Name() string {
	return s.name
}

// Add records id as the most recent meeting. An id already present is a no-op:
// its position is not promoted. On overflow the oldest entry is dropped.
func (s *Store) Add(id meetingid.ID) {
	if s.index(id) >= 0 {
		return
	}
	s.ids = append([]meetingid.ID{id}, s.ids...)
	if len(s.ids) > MaxRecents {
		s.ids = s.ids[:MaxRecents]
	}
	s.flushRecents()
}

// Remove deletes the first matching entry and reports its original index for a
// later UndoRemove. It is a no-op if id is not present.
func (s *Store) Remove(id meetingid.ID) (index int, ok bool) {
	i := s.index(id)
	if i < 0 {
		return 0, false
	}
	s.ids = append(s.ids[:i], s.ids[i+1:]...)
	s.flushRecents()
	return i, true
}

// UndoRemove reinserts id at the given index, supporting a single level of undo
// after a Remove. The index is clamped to the current list bounds.
func (s *Store) UndoRemove(id meetingid.ID, index int) {
	if index < 0 {
		index = 0
	}
	if index > len(s.ids) {
		index = len(s.ids)
	}
	s.ids = append(s.ids[:index], append([]meetingid.ID{id}, s.ids[index:]...)...)
	if len(s.ids) > MaxRecents {
		s.ids = s.ids[:MaxRecents]
	}
	s.flushRecents()
}

// SaveName overwrites the remembered display name on the secure channel.
func (s *Store) SaveName(name string) {
	s.name = name
	s.profileWrites.schedule(func() error {
		return s.profile.SaveName(name)
	})
}

// Flush waits for all scheduled writes to settle. The mutation methods themselves
// never block on storage; this only exists so a process can drain before exiting.
func (s *Store) Flush() {
	s.recentsWrites.wait()
	s.profileWrites.wait()
}

func (s *Store) index(id meetingid.ID) int {
	for i, existing := range s.ids {
		if existing == id {
			return i
		}
	}
	return -1
}

// flushRecents snapshots the list and schedules a fire-and-forget write.
// Failures are logged and otherwise ignored.
func (s *Store) flushRecents() {
	snapshot := make([]string, len(s.ids))
	for i, id := range s.ids {
		snapshot[i] = string(id)
	}
	s.recentsWrites.schedule(func() error {
		return s.recents.Save(snapshot)
	})
}

// unavailable stands in for a recents channel that failed to open.
type unavailable struct{ err error }

func (u unavailable) Load() ([]string, error) { return nil, u.err }
func (u unavailable) Save([]string) error     { return u.err }
