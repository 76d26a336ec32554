package debounce

import (
	"sync"
	"time"
)

// Debouncer delays a callback until input has been quiescent for the
// configured interval. Scheduling again before the interval elapses cancels
// the pending callback. Each schedule bumps a generation counter so callers
// can discard results from superseded runs: a timer can be stopped, but an
// already-running callback cannot, and its response must not overwrite newer
// state.
type Debouncer struct {
	mu       sync.Mutex
	interval time.Duration
	timer    *time.Timer
	gen      uint64
}

func New(interval time.Duration) *Debouncer {
	return &Debouncer{interval: interval}
}

// Do schedules fn after the quiescence interval, replacing any pending run.
// fn receives the generation it was scheduled under.
func (d *Debouncer) Do(fn func(gen uint64)) uint64 {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.gen++
	gen := d.gen
	d.timer = time.AfterFunc(d.interval, func() { fn(gen) })
	return gen
}

// Cancel drops any pending run and invalidates in-flight generations.
func (d *Debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.gen++
}

// Current reports the latest scheduled generation.
func (d *Debouncer) Current() uint64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.gen
}
