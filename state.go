package corehsm

import "fmt"

// stateCallbacks holds the optional callbacks attached to a single state.
// A state need not be registered to participate in the machine; an
// unregistered state simply has empty callbacks.
type stateCallbacks struct {
	onChanged  func(VariantList)
	onEntering func(VariantList) bool
	onExiting  func() bool
}

// stateRegistry stores states, the substate tree, entry points, and each
// state's callbacks. Registration is expected to happen before the
// dispatcher starts delivering events; it is not synchronized against
// concurrent dispatching, matching spec.md's lifecycle note that
// registrations "should not race with active dispatching."
type stateRegistry[S comparable] struct {
	callbacks  map[S]stateCallbacks
	parent     map[S]S
	hasParent  map[S]bool
	entryPoint map[S]S
	hasEntry   map[S]bool

	structuralSafety bool
}

func newStateRegistry[S comparable](structuralSafety bool) *stateRegistry[S] {
	return &stateRegistry[S]{
		callbacks:        make(map[S]stateCallbacks),
		parent:           make(map[S]S),
		hasParent:        make(map[S]bool),
		entryPoint:       make(map[S]S),
		hasEntry:         make(map[S]bool),
		structuralSafety: structuralSafety,
	}
}

// register installs callbacks for state. Calling it more than once for the
// same state replaces the previous callbacks. It is a no-op if all three
// callbacks are nil.
func (r *stateRegistry[S]) register(state S, onChanged func(VariantList), onEntering func(VariantList) bool, onExiting func() bool) {
	if onChanged == nil && onEntering == nil && onExiting == nil {
		return
	}
	r.callbacks[state] = stateCallbacks{onChanged: onChanged, onEntering: onEntering, onExiting: onExiting}
}

// registerSubstate attaches child under parent, optionally as its entry
// point. See spec.md §4.2 for the exact rejection conditions.
func (r *stateRegistry[S]) registerSubstate(parent, child S, isEntryPoint bool) bool {
	if parent == child {
		return false
	}

	if r.structuralSafety {
		if r.hasParent[child] {
			return false
		}
		if r.isAncestor(child, parent) {
			return false
		}
		_, hasEntry := r.entryPoint[parent]
		if !isEntryPoint && !hasEntry {
			return false
		}
		if isEntryPoint && hasEntry {
			return false
		}
	}

	if isEntryPoint {
		r.entryPoint[parent] = child
		r.hasEntry[parent] = true
	}
	r.parent[child] = parent
	r.hasParent[child] = true
	return true
}

// isAncestor reports whether candidate is an ancestor of state (directly or
// transitively), i.e. attaching candidate under state would close a cycle.
func (r *stateRegistry[S]) isAncestor(candidate, state S) bool {
	cur := state
	for {
		p, ok := r.parent[cur]
		if !ok {
			return false
		}
		if p == candidate {
			return true
		}
		cur = p
	}
}

func (r *stateRegistry[S]) getParent(state S) (S, bool) {
	p, ok := r.hasParent[state]
	if !ok || !p {
		var zero S
		return zero, false
	}
	return r.parent[state], true
}

func (r *stateRegistry[S]) getEntryPoint(state S) (S, bool) {
	if !r.hasEntry[state] {
		var zero S
		return zero, false
	}
	return r.entryPoint[state], true
}

func (r *stateRegistry[S]) onExiting(state S) bool {
	cb, ok := r.callbacks[state]
	if !ok || cb.onExiting == nil {
		return true
	}
	return cb.onExiting()
}

func (r *stateRegistry[S]) onEntering(state S, args VariantList) bool {
	cb, ok := r.callbacks[state]
	if !ok || cb.onEntering == nil {
		return true
	}
	return cb.onEntering(args)
}

func (r *stateRegistry[S]) onChanged(state S, args VariantList) {
	cb, ok := r.callbacks[state]
	if !ok || cb.onChanged == nil {
		return
	}
	cb.onChanged(args)
}

func stateLabel[S any](s S) string {
	return fmt.Sprintf("%v", s)
}
