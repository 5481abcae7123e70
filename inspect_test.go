package corehsm

import "testing"

func TestInspectReflectsRegisteredStructure(t *testing.T) {
	m := New[toggleState, toggleEvent](stateOff)
	m.RegisterTransition(stateOff, stateOn, eventSwitch, nil, nil)
	m.RegisterTransition(stateOn, stateOff, eventSwitch, nil, func(VariantList) bool { return true })

	snap := m.Inspect()
	if snap.Current != stateOff {
		t.Fatalf("snapshot.Current = %v, want stateOff", snap.Current)
	}
	if len(snap.Transitions) != 2 {
		t.Fatalf("snapshot has %d transitions, want 2", len(snap.Transitions))
	}

	var sawGuarded bool
	for _, row := range snap.Transitions {
		if row.Guarded {
			sawGuarded = true
		}
	}
	if !sawGuarded {
		t.Fatal("expected one transition row to be reported as guarded")
	}
}

func TestInspectReportsParentAndEntryPoint(t *testing.T) {
	m := New[hierState, hierEvent](hA)
	m.RegisterSubstate(hParent, hA, true)
	m.RegisterSubstate(hParent, hB, false)

	snap := m.Inspect()
	if snap.Parent[hA] != hParent || snap.Parent[hB] != hParent {
		t.Fatalf("snapshot.Parent = %v, want both A and B mapped to PARENT", snap.Parent)
	}
	if snap.EntryPoints[hParent] != hA {
		t.Fatalf("snapshot.EntryPoints[PARENT] = %v, want A", snap.EntryPoints[hParent])
	}
}
