package corehsm

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// Machine is the state-machine façade: lifecycle, registration and
// submission API. It is generic over a state identifier type S and an
// event identifier type E, both of which must support equality (map-key
// use) as spec.md §3 requires.
type Machine[S comparable, E comparable] struct {
	cfg machineConfig

	states      *stateRegistry[S]
	transitions *transitionRegistry[S, E]
	queue       *eventQueue[E]

	current atomic.Value // S

	dispatcher Dispatcher
	handlerID  HandlerID
	stopped    atomic.Bool
}

// New creates a Machine with the given initial current-state.
func New[S comparable, E comparable](initial S, opts ...Option[S, E]) *Machine[S, E] {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	var mu locker = &sync.Mutex{}
	if !cfg.threadSafe {
		mu = noopLocker{}
	}

	m := &Machine[S, E]{
		cfg:         cfg,
		states:      newStateRegistry[S](cfg.structuralSafety),
		transitions: newTransitionRegistry[S, E](),
		queue:       newEventQueue[E](mu),
		handlerID:   InvalidHandlerID,
	}
	m.current.Store(initial)
	m.stopped.Store(true)
	return m
}

// Initialize registers the machine's dispatch callback with dispatcher. It
// must succeed before any event is processed. Returns false if the
// dispatcher fails to start or rejects handler registration.
func (m *Machine[S, E]) Initialize(dispatcher Dispatcher) bool {
	if dispatcher == nil {
		return false
	}
	if !dispatcher.Start() {
		return false
	}

	id := dispatcher.RegisterEventHandler(m.dispatchTick)
	if id == InvalidHandlerID {
		return false
	}

	m.dispatcher = dispatcher
	m.handlerID = id
	m.stopped.Store(false)
	return true
}

// Release unregisters the dispatch callback and drops the dispatcher
// reference. It is idempotent. In-flight callbacks are allowed to finish;
// subsequent dispatch ticks become no-ops. The pending queue is not
// drained — an abandoned synchronous submitter simply times out rather
// than observing DONE_FAILED, unless a queue-clear happens to reach it.
func (m *Machine[S, E]) Release() {
	m.stopped.Store(true)
	if m.dispatcher != nil {
		m.dispatcher.UnregisterEventHandler(m.handlerID)
		m.dispatcher = nil
		m.handlerID = InvalidHandlerID
	}
}

// RegisterState installs callbacks for state. The last call for a given
// state wins. Passing all three callbacks as nil is a no-op.
func (m *Machine[S, E]) RegisterState(state S, onChanged func(VariantList), onEntering func(VariantList) bool, onExiting func() bool) {
	m.states.register(state, onChanged, onEntering, onExiting)
}

// RegisterSubstate attaches child under parent, optionally as its entry
// point. See spec.md §4.2 for the rejection conditions; RegisterSubstate
// returns false and leaves the registry unchanged when any of them apply.
func (m *Machine[S, E]) RegisterSubstate(parent, child S, isEntryPoint bool) bool {
	return m.states.registerSubstate(parent, child, isEntryPoint)
}

// RegisterTransition appends a transition row keyed by (from, event). Rows
// sharing a key are considered in insertion order by the resolver.
func (m *Machine[S, E]) RegisterTransition(from, to S, event E, action func(VariantList), guard func(VariantList) bool) {
	m.transitions.register(from, to, event, action, guard)
}

// CurrentState returns the state the machine currently occupies.
func (m *Machine[S, E]) CurrentState() S {
	return m.current.Load().(S)
}

// SubmitAsync enqueues event without clearing the queue and returns
// immediately.
func (m *Machine[S, E]) SubmitAsync(event E, args ...any) {
	m.SubmitEx(event, false, false, 0, args...)
}

// SubmitAsyncClearing enqueues event after clearing every currently queued
// non-synthetic event (failing their sync submitters, if any).
func (m *Machine[S, E]) SubmitAsyncClearing(event E, args ...any) {
	m.SubmitEx(event, true, false, 0, args...)
}

// SubmitSync enqueues event and blocks until it is fully processed (through
// any entry-point descent) or timeout elapses. timeout <= 0 waits
// indefinitely. It returns true iff the event's final status is DONE_OK.
func (m *Machine[S, E]) SubmitSync(event E, timeout time.Duration, args ...any) bool {
	return m.SubmitEx(event, false, true, timeout, args...)
}

// SubmitEx is the fully parameterized submission form backing SubmitAsync,
// SubmitAsyncClearing and SubmitSync.
func (m *Machine[S, E]) SubmitEx(event E, clearQueue, sync bool, timeout time.Duration, args ...any) bool {
	pe := &pendingEvent[E]{
		traceID: uuid.New(),
		event:   event,
		args:    NewVariantList(args...),
	}
	if sync {
		pe.handle = newSyncHandle()
	}

	if clearQueue {
		m.queue.clear()
	}
	m.queue.append(pe)

	if m.dispatcher != nil {
		m.dispatcher.EmitEvent()
	}

	if !sync {
		return true
	}

	status := pe.handle.wait(timeout)
	pe.handle.release()
	return status == statusDoneOK
}

// IsTransitionPossible is a pure query: it simulates the effect of every
// currently queued event (in submission order) against a hypothetical
// current state, then checks whether event would resolve from the
// resulting state. It has no observable side effects.
//
// Known source ambiguity, preserved deliberately (spec.md §4.6/§9): guards
// of the already-queued events are evaluated using THIS call's args, not
// the args each queued event was actually submitted with.
func (m *Machine[S, E]) IsTransitionPossible(event E, args ...any) bool {
	simulatedArgs := NewVariantList(args...)
	from := m.CurrentState()

	for _, queued := range m.queue.snapshot() {
		if queued.synthetic {
			// An entry-point follow-up carries no real event id — E's zero
			// value is frequently a registered event, not a safe sentinel —
			// so it is simulated as the entry-point descent it actually is,
			// the same special case doTransition applies when it executes
			// one for real.
			to, ok := m.states.getEntryPoint(from)
			if !ok {
				return false
			}
			from = to
			continue
		}

		resolved, ok := resolve(m.states, m.transitions, from, queued.event, simulatedArgs)
		if !ok {
			return false
		}
		from = resolved.to
	}

	_, ok := resolve(m.states, m.transitions, from, event, simulatedArgs)
	return ok
}
