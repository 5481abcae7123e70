package corehsm

// Option configures a Machine at construction time.
type Option[S comparable, E comparable] func(*machineConfig)

type machineConfig struct {
	tracer           Tracer
	threadSafe       bool
	structuralSafety bool
}

func defaultConfig() machineConfig {
	return machineConfig{
		tracer:           NoopTracer{},
		threadSafe:       true,
		structuralSafety: true,
	}
}

// WithTracer installs a Tracer to receive best-effort activity notifications.
func WithTracer[S comparable, E comparable](t Tracer) Option[S, E] {
	return func(c *machineConfig) {
		if t != nil {
			c.tracer = t
		}
	}
}

// WithoutThreadSafety disables the queue mutex, giving up the concurrency
// guarantees of spec.md §5 to avoid the overhead of locking. Only safe when the
// machine is submitted to and dispatched from a single goroutine.
func WithoutThreadSafety[S comparable, E comparable]() Option[S, E] {
	return func(c *machineConfig) {
		c.threadSafe = false
	}
}

// WithoutStructuralSafety disables the register_substate cycle and
// duplicate-entry-point checks of spec.md §4.2, keeping only the
// parent != child check. Intended for release builds where the substate
// graph is static and already known to be correct.
func WithoutStructuralSafety[S comparable, E comparable]() Option[S, E] {
	return func(c *machineConfig) {
		c.structuralSafety = false
	}
}
