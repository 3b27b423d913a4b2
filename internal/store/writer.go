package store

import (
	"sync"

	log "github.com/sirupsen/logrus"
)

// serialWriter runs the scheduled writes for one storage channel strictly one at a
// time, so a slow earlier write can never land after (and clobber) a later snapshot.
// Only the newest pending write is kept: intermediate snapshots are superseded, the
// final write always persists the final in-memory state.
type serialWriter struct {
	label string

	mu      sync.Mutex
	pending func() error
	active  bool
	wg      sync.WaitGroup
}

// schedule queues write as the channel's next (and only) pending write, starting a
// writer goroutine if none is running. It never blocks on storage.
func (w *serialWriter) schedule(write func() error) {
	w.mu.Lock()
	w.pending = write
	if w.active {
		w.mu.Unlock()
		return
	}
	w.active = true
	w.wg.Add(1)
	w.mu.Unlock()
	go w.run()
}

func (w *serialWriter) run() {
	defer w.wg.Done()
	for {
		w.mu.Lock()
		write := w.pending
		w.pending = nil
		if write == nil {
			w.active = false
			w.mu.Unlock()
			return
		}
		w.mu.Unlock()

		if err := write(); err != nil {
			log.Warnf("could not persist %s: %v", w.label, err)
		}
	}
}

// wait blocks until every scheduled write has settled.
func (w *serialWriter) wait() {
	w.wg.Wait()
}
