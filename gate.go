// Copyright 2026 Michael J. Fromberger. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package gate implements a one-shot readiness gate: a flag one or more
// goroutines can efficiently wait on until another goroutine raises it.
//
// A [Waiter] owns the gate. Its [Waiter.Wait] method blocks until the gate
// is ready, spinning briefly in case the signal arrives quickly and then
// parking on a condition variable so a slow signal does not burn CPU.
// The Waiter derives three kinds of lightweight handle onto the same gate,
// each exposing only the capability its holder needs:
//
//   - A [Notifier] marks the gate ready and wakes one parked waiter.
//   - A [Setter] marks the gate ready without waking anyone.
//   - A [Spectator] reports whether the gate is ready.
//
// Handles are small values and may be freely copied and shared among
// goroutines; all copies observe the one flag their Waiter owns.
//
// # Sharp edges
//
// The gate is deliberately minimal, and two hazards are the caller's to
// avoid. A Setter never wakes a parked waiter: if the waiting goroutine has
// already given up spinning and parked, [Setter.Set] leaves it parked until
// some [Notifier.Notify] arrives. And each call to Notify wakes at most one
// parked waiter: with several goroutines parked concurrently, one Notify is
// only guaranteed to release one of them.
//
// There are no timeouts and no cancellation; a caller needing either must
// arrange it at a higher level.
package gate

import (
	"sync"
	"sync/atomic"

	"github.com/creachadair/gate/backoff"
)

// state is the gate shared by a Waiter and every handle derived from it:
// the ready flag, the condition variable parked waiters sleep on, and the
// lock whose only job is to satisfy the condition variable's wait protocol.
// The flag is read and written without the lock.
type state struct {
	ready atomic.Bool
	μ     sync.Mutex
	wake  sync.Cond // parked waiters sleep here; wake.L == &μ
}

// A Waiter owns a one-shot readiness gate and exposes its blocking wait.
// Use [Waiter.Notifier], [Waiter.Setter], and [Waiter.Spectator] to derive
// handles onto the same gate for other goroutines.
//
// A Waiter must be constructed by [New]; the zero value is not ready for
// use.
type Waiter struct {
	s *state
}

// New constructs a new gate whose flag is not yet ready.
func New() *Waiter {
	s := new(state)
	s.wake.L = &s.μ
	return &Waiter{s: s}
}

// Wait blocks until the gate is ready. If the gate is already ready, Wait
// returns immediately.
//
// Wait begins by polling the flag, backing off adaptively between checks.
// Once the backoff has run its course, meaning the signal is not arriving
// quickly and parking is now cheaper than further spinning, Wait re-checks
// the flag under the parking lock and sleeps on the condition variable if
// it is still unset. A waiter woken from the condition variable re-checks
// the flag and parks again if it finds the gate still unready.
//
// Wait has no timeout: a waiter that has parked blocks until a
// [Notifier.Notify] wakes it.
func (w *Waiter) Wait() {
	var b backoff.Backoff
	for {
		if w.s.ready.Load() {
			return
		}
		if b.IsCompleted() {
			// Re-check the flag under the lock before parking. A notify
			// that landed between the unlocked check above and lock
			// acquisition must not strand us on the condition variable.
			w.s.μ.Lock()
			if !w.s.ready.Load() {
				w.s.wake.Wait()
			}
			w.s.μ.Unlock()
		} else {
			b.Snooze()
		}
	}
}

// Reset marks the gate not ready, beginning a fresh epoch.
//
// Reset provides no synchronization of its own: the caller must ensure no
// other goroutine is still relying on the previous ready observation, and
// must not reset concurrently with an in-flight Wait unless it intends that
// waiter to begin a fresh wait cycle.
func (w *Waiter) Reset() { w.s.ready.Store(false) }

// Notifier returns a handle that marks the gate ready and wakes one parked
// waiter.
func (w *Waiter) Notifier() Notifier {
	return Notifier{ready: &w.s.ready, wake: &w.s.wake}
}

// Setter returns a handle that marks the gate ready without waking anyone.
func (w *Waiter) Setter() Setter { return Setter{ready: &w.s.ready} }

// Spectator returns a read-only handle that reports whether the gate is
// ready.
func (w *Waiter) Spectator() Spectator { return Spectator{ready: &w.s.ready} }
