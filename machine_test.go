package corehsm_test

import (
	"testing"

	. "github.com/corehsm/corehsm"
	"github.com/corehsm/corehsm/dispatcher"
)

func TestMachineInitializeFailsOnNilDispatcher(t *testing.T) {
	m := New[toggleState, toggleEvent](stateOff)
	if m.Initialize(nil) {
		t.Fatal("Initialize(nil) should fail")
	}
}

func TestMachineReleaseIsIdempotent(t *testing.T) {
	m := New[toggleState, toggleEvent](stateOff)
	d := dispatcher.NewManual()
	if !m.Initialize(d) {
		t.Fatal("initialize failed")
	}
	m.Release()
	m.Release() // must not panic
}

func TestMachineIsTransitionPossibleAgainstIdleQueue(t *testing.T) {
	m := New[toggleState, toggleEvent](stateOff)
	m.RegisterTransition(stateOff, stateOn, eventSwitch, nil, nil)

	if !m.IsTransitionPossible(eventSwitch) {
		t.Fatal("a directly registered transition from the current state should be possible")
	}

	other := New[toggleState, toggleEvent](stateOn)
	other.RegisterTransition(stateOff, stateOn, eventSwitch, nil, nil)
	if other.IsTransitionPossible(eventSwitch) {
		t.Fatal("no transition is registered from ON, so this should be false")
	}
}

func TestMachineIsTransitionPossibleSimulatesQueuedEvents(t *testing.T) {
	m := New[toggleState, toggleEvent](stateOff)
	m.RegisterTransition(stateOff, stateOn, eventSwitch, nil, nil)
	m.RegisterTransition(stateOn, stateOff, eventSwitch, nil, nil)

	d := dispatcher.NewManual()
	if !m.Initialize(d) {
		t.Fatal("initialize failed")
	}
	defer m.Release()

	m.SubmitAsync(eventSwitch) // queued but not yet dispatched: OFF -> ON

	// The simulated queue walk lands on ON, which does have an outgoing
	// Switch transition (back to OFF).
	if !m.IsTransitionPossible(eventSwitch) {
		t.Fatal("simulated queue walk should land on ON, from which Switch is possible")
	}
}

func TestMachineRegisterSubstateRejectionPropagatesFromFacade(t *testing.T) {
	m := New[hierState, hierEvent](hA)
	if !m.RegisterSubstate(hParent, hA, true) {
		t.Fatal("first attach should succeed")
	}
	if m.RegisterSubstate(hRoot, hA, false) {
		t.Fatal("A already has a parent, facade should surface the rejection")
	}
}

func TestMachineWithoutStructuralSafetyAllowsRelaxedRegistration(t *testing.T) {
	m := New[hierState, hierEvent](hA, WithoutStructuralSafety[hierState, hierEvent]())
	if !m.RegisterSubstate(hParent, hA, false) {
		t.Fatal("with structural safety disabled, a missing entry point should not block registration")
	}
}
