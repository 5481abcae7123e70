package corehsm

// HandlerID identifies a handler registered with a Dispatcher.
type HandlerID uint64

// InvalidHandlerID is the sentinel value a Dispatcher returns from
// RegisterEventHandler when registration fails. The machine treats any
// handler id equal to InvalidHandlerID as "not registered" and refuses to
// proceed.
const InvalidHandlerID HandlerID = 0

// Dispatcher decouples event delivery from any concrete event loop. The
// core consumes this interface; concrete back-ends (a GUI toolkit loop, a
// glib-style loop, an embedded single-thread loop) are external
// collaborators that implement it.
//
// A conforming Dispatcher invokes its registered handler serially — no
// overlapping invocations — and never silently drops an Emit while a
// handler is registered; at worst it coalesces concurrent emits into a
// single wakeup, relying on the handler re-emitting (see dispatchTick) to
// guarantee progress.
type Dispatcher interface {
	// Start prepares any native loop integration. It may be called more
	// than once idempotently. It returns false if integration cannot be
	// established.
	Start() bool

	// RegisterEventHandler stores a zero-argument callback the dispatcher
	// invokes from its loop thread whenever events are signaled. It
	// returns InvalidHandlerID if registration failed.
	RegisterEventHandler(handler func()) HandlerID

	// UnregisterEventHandler removes the handler; after this call returns,
	// the dispatcher must not invoke it again.
	UnregisterEventHandler(id HandlerID)

	// EmitEvent signals the loop that at least one pending event exists.
	// It must be safe to call from any goroutine.
	EmitEvent()
}
