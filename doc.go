// Package corehsm implements a reusable hierarchical state-machine engine
// meant to be embedded in long-running applications: desktop GUIs, embedded
// controllers, services. It provides the generic runtime — states,
// substates, event-driven transitions, an event queue, hierarchical
// transition resolution, and synchronous/asynchronous submission — and
// consumes a pluggable Dispatcher so it never owns a concrete event loop.
//
// The machine is generic over user-defined state and event identifiers
// (S and E, both comparable). Concrete dispatcher back-ends, SCXML code
// generators and logging facilities are external collaborators; this
// package only defines the interfaces they plug into.
package corehsm
