// Package dispatcher provides reference Dispatcher back-ends: Manual for
// deterministic single-stepped tests, and Loop for a real background
// goroutine driven by a coalescing signal channel. Neither is part of the
// core — concrete dispatcher back-ends are external collaborators per
// corehsm's design — but a core with no runnable dispatcher at all is
// untestable end-to-end, so this package fills the same role hsmcpp's
// HsmEventDispatcherGLib/Qt back-ends fill for its core.
package dispatcher

import (
	"sync"

	"github.com/corehsm/corehsm"
)

// Manual is a Dispatcher that only invokes its handler when Tick is called
// explicitly. It exists to drive a corehsm.Machine one dispatch tick at a
// time in tests, matching the "after one dispatch tick" language used
// throughout the state-machine's testable scenarios.
type Manual struct {
	mu      sync.Mutex
	handler func()
	pending bool
}

// NewManual creates a Manual dispatcher.
func NewManual() *Manual {
	return &Manual{}
}

// Start always succeeds; Manual has no native loop to integrate with.
func (d *Manual) Start() bool { return true }

// RegisterEventHandler stores handler, replacing any previous one.
func (d *Manual) RegisterEventHandler(handler func()) corehsm.HandlerID {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.handler = handler
	return 1
}

// UnregisterEventHandler removes the stored handler.
func (d *Manual) UnregisterEventHandler(id corehsm.HandlerID) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.handler = nil
}

// EmitEvent marks a tick as pending. It does not invoke the handler; call
// Tick to do that.
func (d *Manual) EmitEvent() {
	d.mu.Lock()
	d.pending = true
	d.mu.Unlock()
}

// Tick invokes the registered handler once if a tick is pending, returning
// whether it did. Call it repeatedly to drain a machine that keeps
// re-arming (e.g. during entry-point descent).
func (d *Manual) Tick() bool {
	d.mu.Lock()
	if !d.pending {
		d.mu.Unlock()
		return false
	}
	d.pending = false
	handler := d.handler
	d.mu.Unlock()

	if handler == nil {
		return false
	}
	handler()
	return true
}

// DrainAll calls Tick until it reports no pending work, returning the
// number of ticks it ran. Useful for driving a synchronous submit's
// composite entry-point descent to completion in one call.
func (d *Manual) DrainAll(maxTicks int) int {
	n := 0
	for n < maxTicks && d.Tick() {
		n++
	}
	return n
}
