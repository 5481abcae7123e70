package corehsm

import "github.com/google/uuid"

// pendingEvent is one queued submission: the event id, its argument list, a
// flag marking it as an internally-synthesized entry-point descent, and an
// optional sync-handle shared with a synchronous submitter.
type pendingEvent[E comparable] struct {
	traceID   uuid.UUID
	event     E
	args      VariantList
	synthetic bool
	handle    *syncHandle
}

// locker is satisfied by *sync.Mutex and by noopLocker, letting the queue's
// thread-safety be a runtime switch instead of a build tag — the Go
// realization of spec.md's compile-time HSM_DISABLE_THREADSAFETY switch.
type locker interface {
	Lock()
	Unlock()
}

type noopLocker struct{}

func (noopLocker) Lock()   {}
func (noopLocker) Unlock() {}

// eventQueue is the ordered queue of pending events. All mutation happens
// under mu (a real mutex, unless thread-safety was disabled at
// construction).
type eventQueue[E comparable] struct {
	mu    locker
	items []*pendingEvent[E]
}

func newEventQueue[E comparable](mu locker) *eventQueue[E] {
	return &eventQueue[E]{mu: mu}
}

func (q *eventQueue[E]) append(pe *pendingEvent[E]) {
	q.mu.Lock()
	q.items = append(q.items, pe)
	q.mu.Unlock()
}

func (q *eventQueue[E]) pushFront(pe *pendingEvent[E]) {
	q.mu.Lock()
	q.items = append([]*pendingEvent[E]{pe}, q.items...)
	q.mu.Unlock()
}

func (q *eventQueue[E]) popFront() (*pendingEvent[E], bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.items) == 0 {
		return nil, false
	}
	pe := q.items[0]
	q.items = q.items[1:]
	return pe, true
}

func (q *eventQueue[E]) nonEmpty() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items) > 0
}

// clear drops every non-synthetic pending event, finalizing any sync-handle
// it carries with DONE_FAILED. Entry-point-synthetic events survive a clear
// because they represent a commitment to an in-flight composite transition
// that must not be interrupted.
func (q *eventQueue[E]) clear() {
	q.mu.Lock()
	kept := q.items[:0:0]
	for _, pe := range q.items {
		if pe.synthetic {
			kept = append(kept, pe)
			continue
		}
		if pe.handle != nil {
			pe.handle.finish(statusDoneFailed)
		}
	}
	q.items = kept
	q.mu.Unlock()
}

// snapshot returns a copy of the items currently queued, for use by
// IsTransitionPossible's read-only simulation.
func (q *eventQueue[E]) snapshot() []*pendingEvent[E] {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := make([]*pendingEvent[E], len(q.items))
	copy(out, q.items)
	return out
}
