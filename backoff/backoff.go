// Package backoff implements an adaptive backoff counter for wait loops
// that poll a condition before blocking on it. A loop snoozes between
// polls until the backoff reports completion, the point at which blocking
// has become cheaper than further polling.
package backoff

import "runtime"

// completeAfter is the number of backoff steps after which continued
// polling is judged more expensive than parking the goroutine.
const completeAfter = 10

// A Backoff tracks how long a polling loop has been waiting for its
// condition. The zero value is ready for use.
//
// A Backoff is not safe for concurrent use; each waiting goroutine should
// carry its own.
type Backoff struct {
	step uint
}

// Snooze pauses briefly and advances the backoff one step. Go exposes no
// portable CPU spin hint, so each step yields the processor; the step
// count still climbs to the completion threshold, giving the caller's
// loop its poll-then-block shape.
func (b *Backoff) Snooze() {
	if b.step <= completeAfter {
		b.step++
	}
	runtime.Gosched()
}

// IsCompleted reports whether the backoff has run its course, meaning the
// caller should block rather than continue polling.
func (b *Backoff) IsCompleted() bool { return b.step > completeAfter }

// Reset restores b to its initial state for reuse.
func (b *Backoff) Reset() { b.step = 0 }
