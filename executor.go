package corehsm

// dispatchTick is the callback registered with the Dispatcher. It dequeues
// exactly one pending event, resolves and executes its transition, and
// re-arms the dispatcher if the queue is still non-empty afterward. It is
// invoked serially by the dispatcher — the core relies on that guarantee
// and does not itself prevent overlapping calls.
func (m *Machine[S, E]) dispatchTick() {
	if m.stopped.Load() {
		return
	}

	pe, ok := m.queue.popFront()
	if ok {
		status := m.doTransition(pe)
		if status != statusPending {
			if pe.handle != nil {
				pe.handle.finish(status)
			}
		}
		// PENDING means doTransition already pushed an entry-point
		// follow-up carrying the same handle at the front of the queue;
		// the handle's ownership moves with it, no release here.
	}

	if !m.stopped.Load() && m.queue.nonEmpty() && m.dispatcher != nil {
		m.dispatcher.EmitEvent()
	}
}

// doTransition executes one dequeued pending event against the current
// state, implementing spec.md §4.5.
func (m *Machine[S, E]) doTransition(pe *pendingEvent[E]) eventStatus {
	from := m.CurrentState()

	traceID := pe.traceID.String()

	var target resolvedTransition[S]
	if pe.synthetic {
		to, ok := m.states.getEntryPoint(from)
		if !ok {
			traceSafe(m.cfg.tracer, func(t Tracer) {
				t.OnTransitionRejected(traceID, stateLabel(from), "<entry-point>", "state has no entry point")
			})
			return statusDoneFailed
		}
		target = resolvedTransition[S]{to: to}
	} else {
		traceSafe(m.cfg.tracer, func(t Tracer) {
			t.OnTransitionAttempt(traceID, stateLabel(from), stateLabel(pe.event))
		})

		resolved, ok := resolve(m.states, m.transitions, from, pe.event, pe.args)
		if !ok {
			traceSafe(m.cfg.tracer, func(t Tracer) {
				t.OnTransitionRejected(traceID, stateLabel(from), stateLabel(pe.event), "no applicable transition")
			})
			return statusDoneFailed
		}
		target = resolved
	}

	to := target.to

	// Self-transition fast path: only the action fires, no exit/enter/changed.
	if from == to {
		if target.action != nil {
			target.action(pe.args)
		}
		return statusDoneOK
	}

	eventLabel := "<entry-point>"
	if !pe.synthetic {
		eventLabel = stateLabel(pe.event)
	}
	traceSafe(m.cfg.tracer, func(t Tracer) {
		t.OnTransitionResolved(traceID, stateLabel(from), stateLabel(to), eventLabel)
	})

	allowedExit := m.states.onExiting(from)
	traceSafe(m.cfg.tracer, func(t Tracer) { t.OnStateExiting(traceID, stateLabel(from), allowedExit) })
	if !allowedExit {
		return statusDoneFailed
	}

	if target.action != nil {
		target.action(pe.args)
	}

	allowedEnter := m.states.onEntering(to, pe.args)
	traceSafe(m.cfg.tracer, func(t Tracer) { t.OnStateEntering(traceID, stateLabel(to), allowedEnter) })
	if !allowedEnter {
		// The target rejected entry. Restore a consistent observed state
		// by re-entering the source; its onEntering return value is
		// deliberately ignored to avoid infinite rollback loops.
		m.states.onEntering(from, VariantList{})
		m.states.onChanged(from, VariantList{})
		return statusDoneFailed
	}

	m.current.Store(to)
	m.states.onChanged(to, pe.args)
	traceSafe(m.cfg.tracer, func(t Tracer) { t.OnStateChanged(traceID, stateLabel(to)) })

	if entry, ok := m.states.getEntryPoint(to); ok {
		traceSafe(m.cfg.tracer, func(t Tracer) { t.OnEntryPointDescent(traceID, stateLabel(to), stateLabel(entry)) })

		follow := &pendingEvent[E]{
			traceID:   pe.traceID,
			args:      pe.args,
			synthetic: true,
			handle:    pe.handle,
		}
		m.queue.pushFront(follow)
		return statusPending
	}

	return statusDoneOK
}
