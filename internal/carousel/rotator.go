// Package carousel owns the home banner rotation lifecycle: the index
// advances on a fixed interval only while more than one banner exists, and
// the interval is released on teardown or whenever the banner count changes.
package carousel

import (
	"sync"
	"time"
)

// Rotator auto-advances a banner index
type Rotator struct {
	interval  time.Duration
	onAdvance func(index int)

	mu      sync.Mutex
	count   int
	index   int
	stop    chan struct{}
	stopped bool
}

// NewRotator creates a rotator; it stays idle until SetCount reports more
// than one banner.
func NewRotator(interval time.Duration, onAdvance func(index int)) *Rotator {
	return &Rotator{interval: interval, onAdvance: onAdvance}
}

// SetCount updates the banner count. Any running interval is cleared; a new
// one starts only when more than one banner exists.
func (r *Rotator) SetCount(count int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.stopLoopLocked()
	r.count = count
	r.index = 0
	if r.stopped || count <= 1 {
		return
	}

	stop := make(chan struct{})
	r.stop = stop
	go r.loop(stop)
}

// Index returns the current banner index
func (r *Rotator) Index() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.index
}

// Stop releases the interval. Safe to call on every exit path, including
// before the rotator ever ran.
func (r *Rotator) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stopped = true
	r.stopLoopLocked()
}

func (r *Rotator) stopLoopLocked() {
	if r.stop != nil {
		close(r.stop)
		r.stop = nil
	}
}

func (r *Rotator) loop(stop chan struct{}) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			r.advance(stop)
		case <-stop:
			return
		}
	}
}

func (r *Rotator) advance(stop chan struct{}) {
	r.mu.Lock()
	// the loop may tick once more while SetCount or Stop replaces it
	if r.stop != stop || r.count <= 1 {
		r.mu.Unlock()
		return
	}
	r.index = (r.index + 1) % r.count
	index := r.index
	cb := r.onAdvance
	r.mu.Unlock()

	if cb != nil {
		cb(index)
	}
}
