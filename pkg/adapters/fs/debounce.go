package fs

import (
	"sync"
	"time"

	"github.com/aretw0/satchel/pkg/core"
)

// debouncer coalesces a burst of changes into a single delivery after a
// quiet period. Single slot: a new add supersedes the pending one, which
// is fine here because all changes funnel into the same MODIFY signal.
type debouncer struct {
	delay time.Duration

	mu      sync.Mutex
	timer   *time.Timer
	stopped bool
	wg      sync.WaitGroup
}

func newDebouncer(delay time.Duration) *debouncer {
	return &debouncer{delay: delay}
}

// add schedules fire(change) after the quiet period, superseding any
// pending delivery. Calls after stopAndWait are dropped.
func (d *debouncer) add(change core.Change, fire func(core.Change)) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}

	if d.timer != nil && d.timer.Stop() {
		d.wg.Done()
	}

	d.wg.Add(1)
	d.timer = time.AfterFunc(d.delay, func() {
		defer d.wg.Done()

		d.mu.Lock()
		stopped := d.stopped
		d.mu.Unlock()
		if stopped {
			return
		}

		fire(change)
	})
}

// stopAndWait refuses new work and waits for any in-flight delivery,
// bounded by timeout.
func (d *debouncer) stopAndWait(timeout time.Duration) {
	d.mu.Lock()
	d.stopped = true
	if d.timer != nil && d.timer.Stop() {
		d.wg.Done()
	}
	d.mu.Unlock()

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(timeout):
	}
}
