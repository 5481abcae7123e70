package corehsm

// Tracer receives best-effort notifications about machine activity. The
// core never changes behavior based on a Tracer's return value — there is
// none — and never lets a panicking Tracer method escape into the
// dispatcher thread; see traceSafe.
//
// traceID identifies the originally submitted event, not the dispatch tick:
// an entry-point descent triggered by that submission reports the same
// traceID as the transition that triggered it, so a log or trace backend can
// group the whole chain back to one SubmitAsync/SubmitSync call.
type Tracer interface {
	OnTransitionAttempt(traceID, from, event string)
	OnTransitionResolved(traceID, from, to, event string)
	OnTransitionRejected(traceID, from, event, reason string)
	OnStateExiting(traceID, state string, allowed bool)
	OnStateEntering(traceID, state string, allowed bool)
	OnStateChanged(traceID, state string)
	OnEntryPointDescent(traceID, parent, entryPoint string)
	OnError(err error)
}

// NoopTracer implements Tracer with no-op methods. Embed it to satisfy the
// interface while overriding only the methods you care about.
type NoopTracer struct{}

func (NoopTracer) OnTransitionAttempt(traceID, from, event string)          {}
func (NoopTracer) OnTransitionResolved(traceID, from, to, event string)     {}
func (NoopTracer) OnTransitionRejected(traceID, from, event, reason string) {}
func (NoopTracer) OnStateExiting(traceID, state string, allowed bool)       {}
func (NoopTracer) OnStateEntering(traceID, state string, allowed bool)      {}
func (NoopTracer) OnStateChanged(traceID, state string)                     {}
func (NoopTracer) OnEntryPointDescent(traceID, parent, entryPoint string)   {}
func (NoopTracer) OnError(err error)                                        {}

// traceSafe invokes fn (a closure over one Tracer method call) recovering
// any panic so a misbehaving tracer can never take down the dispatcher
// thread the core runs on.
func traceSafe(t Tracer, fn func(Tracer)) {
	defer func() {
		recover()
	}()
	fn(t)
}
