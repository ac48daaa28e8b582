// Package debounce collapses bursts of calls into one delayed execution.
package debounce

import (
	"sync"
	"time"
)

// Debouncer delays an action until calls stop arriving for a full delay.
// A burst of calls spaced closer than the delay runs the action once,
// with the argument of the last call.
type Debouncer[T any] struct {
	delay  time.Duration
	action func(T)

	mu    sync.Mutex
	timer *time.Timer
	seq   uint64
}

// New wraps action so that it runs delay after the most recent Call.
// Actions without arguments use struct{} as T.
func New[T any](delay time.Duration, action func(T)) *Debouncer[T] {
	return &Debouncer[T]{delay: delay, action: action}
}

// Func returns the debounced action as a plain function.
func Func[T any](delay time.Duration, action func(T)) func(T) {
	return New(delay, action).Call
}

// Call cancels any pending execution and schedules action(arg).
func (d *Debouncer[T]) Call(arg T) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.seq++
	seq := d.seq

	d.timer = time.AfterFunc(d.delay, func() {
		d.mu.Lock()
		// A timer that already fired when Stop was called must not run.
		if seq != d.seq {
			d.mu.Unlock()
			return
		}
		d.timer = nil
		d.mu.Unlock()

		d.action(arg)
	})
}

// Pending reports whether an execution is scheduled.
func (d *Debouncer[T]) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.timer != nil
}
