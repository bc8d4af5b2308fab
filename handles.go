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

package gate

import (
	"sync"
	"sync/atomic"
)

// A Notifier marks its gate ready and wakes a parked waiter. Notifiers are
// derived from a [Waiter] and may be copied freely; all copies refer to the
// same gate.
type Notifier struct {
	ready *atomic.Bool
	wake  *sync.Cond
}

// Notify marks the gate ready and wakes at most one parked waiter; it is a
// no-op on the flag if the gate was already ready. With several waiters
// parked concurrently, each call releases only one of them.
func (n Notifier) Notify() {
	n.ready.Store(true)
	// Hold the parking lock across the signal. A waiter that observed the
	// flag unset under the lock is already registered with the condition
	// variable by the time the lock is released, so the signal cannot slip
	// into the window between its check and its park.
	n.wake.L.Lock()
	n.wake.Signal()
	n.wake.L.Unlock()
}

// A Setter marks its gate ready without waking anyone. It is for callers
// who know the waiter is still spinning, or who deliver the wake through
// another channel. Setters are derived from a [Waiter] and may be copied
// freely.
type Setter struct {
	ready *atomic.Bool
}

// Set marks the gate ready. A waiter already parked on the gate is not
// woken and remains parked until a [Notifier.Notify] arrives.
func (s Setter) Set() { s.ready.Store(true) }

// A Spectator reports whether its gate is ready. Spectators are derived
// from a [Waiter] and may be copied freely.
type Spectator struct {
	ready *atomic.Bool
}

// IsReady reports whether the gate is ready. It never blocks.
func (s Spectator) IsReady() bool { return s.ready.Load() }
