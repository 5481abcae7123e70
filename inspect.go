package corehsm

// Snapshot is a read-only view of a machine's registered structure, used
// for introspection and by the export package. It is not part of the
// dispatch path and taking one has no effect on machine behavior.
type Snapshot[S comparable, E comparable] struct {
	Current     S
	States      []S
	Parent      map[S]S
	EntryPoints map[S]S
	Transitions []TransitionRow[S, E]
}

// TransitionRow describes one registered (from, event) -> to alternative.
// Index preserves insertion order among rows sharing the same (from, event)
// key.
type TransitionRow[S comparable, E comparable] struct {
	From    S
	Event   E
	To      S
	Index   int
	Guarded bool
}

// Inspect returns a snapshot of the machine's current structure and state.
func (m *Machine[S, E]) Inspect() Snapshot[S, E] {
	snap := Snapshot[S, E]{
		Current:     m.CurrentState(),
		Parent:      make(map[S]S, len(m.states.parent)),
		EntryPoints: make(map[S]S, len(m.states.entryPoint)),
	}

	seen := make(map[S]bool)
	addState := func(s S) {
		if !seen[s] {
			seen[s] = true
			snap.States = append(snap.States, s)
		}
	}

	for child, parent := range m.states.parent {
		snap.Parent[child] = parent
		addState(child)
		addState(parent)
	}
	for parent, entry := range m.states.entryPoint {
		snap.EntryPoints[parent] = entry
		addState(parent)
		addState(entry)
	}
	for state := range m.states.callbacks {
		addState(state)
	}
	addState(snap.Current)

	for key, rows := range m.transitions.rows {
		for i, row := range rows {
			snap.Transitions = append(snap.Transitions, TransitionRow[S, E]{
				From:    key.from,
				Event:   key.event,
				To:      row.to,
				Index:   i,
				Guarded: row.guard != nil,
			})
		}
	}

	return snap
}
