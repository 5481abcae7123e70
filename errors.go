package corehsm

import "fmt"

// ErrorCode classifies why a registration or lookup failed.
type ErrorCode int

const (
	// ErrCodeNone means no error occurred.
	ErrCodeNone ErrorCode = iota
	// ErrCodeStateNotFound means a referenced state was never registered.
	ErrCodeStateNotFound
	// ErrCodeDuplicateParent means a substate already has a parent.
	ErrCodeDuplicateParent
	// ErrCodeCycle means the registration would close a parent cycle.
	ErrCodeCycle
	// ErrCodeEntryPointMissing means a parent needs an entry point before a
	// regular substate can be added to it.
	ErrCodeEntryPointMissing
	// ErrCodeEntryPointDuplicate means a parent already has an entry point.
	ErrCodeEntryPointDuplicate
	// ErrCodeDispatcherUnavailable means the dispatcher failed to start or
	// rejected handler registration.
	ErrCodeDispatcherUnavailable
	// ErrCodeNotInitialized means the machine was used before Initialize.
	ErrCodeNotInitialized
)

// StateError reports a problem with a state identifier or its registration.
type StateError struct {
	Code    ErrorCode
	State   string
	Message string
}

func (e *StateError) Error() string {
	return fmt.Sprintf("corehsm: state error [%s]: %s", e.State, e.Message)
}

func newStateError(code ErrorCode, state, message string) *StateError {
	return &StateError{Code: code, State: state, Message: message}
}

// SubstateError reports why register_substate rejected a parent/child pair.
type SubstateError struct {
	Code   ErrorCode
	Parent string
	Child  string
}

func (e *SubstateError) Error() string {
	switch e.Code {
	case ErrCodeDuplicateParent:
		return fmt.Sprintf("corehsm: substate %q already has a parent", e.Child)
	case ErrCodeCycle:
		return fmt.Sprintf("corehsm: attaching %q under %q would close a cycle", e.Child, e.Parent)
	case ErrCodeEntryPointMissing:
		return fmt.Sprintf("corehsm: parent %q needs an entry point before substate %q can be added", e.Parent, e.Child)
	case ErrCodeEntryPointDuplicate:
		return fmt.Sprintf("corehsm: parent %q already has an entry point", e.Parent)
	default:
		return fmt.Sprintf("corehsm: cannot attach %q under %q", e.Child, e.Parent)
	}
}

func newSubstateError(code ErrorCode, parent, child string) *SubstateError {
	return &SubstateError{Code: code, Parent: parent, Child: child}
}

// DispatcherError reports a failure to wire a Dispatcher into the machine.
type DispatcherError struct {
	Reason string
}

func (e *DispatcherError) Error() string {
	return fmt.Sprintf("corehsm: dispatcher unavailable: %s", e.Reason)
}

func newDispatcherError(reason string) *DispatcherError {
	return &DispatcherError{Reason: reason}
}

// GetErrorCode returns the error code carried by a known corehsm error type,
// or ErrCodeNone for anything else.
func GetErrorCode(err error) ErrorCode {
	switch e := err.(type) {
	case *StateError:
		return e.Code
	case *SubstateError:
		return e.Code
	case *DispatcherError:
		return ErrCodeDispatcherUnavailable
	default:
		return ErrCodeNone
	}
}
