package corehsm

// Shared fixture types for internal (non-dispatcher) tests. The dispatcher-driven
// scenario and machine tests keep their own copies of these in package corehsm_test,
// since that external test package cannot see these unexported types.

type toggleState int

const (
	stateOff toggleState = iota
	stateOn
)

type toggleEvent int

const (
	eventSwitch toggleEvent = iota
)

type hierState int

const (
	hRoot hierState = iota
	hParent
	hA
	hB
	hDone
)

type hierEvent int

const hEventFinish hierEvent = 0
