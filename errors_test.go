package corehsm

import (
	"errors"
	"testing"
)

func TestGetErrorCodeDispatchesByType(t *testing.T) {
	cases := []struct {
		err  error
		want ErrorCode
	}{
		{newStateError(ErrCodeStateNotFound, "Off", "not registered"), ErrCodeStateNotFound},
		{newSubstateError(ErrCodeCycle, "Parent", "Child"), ErrCodeCycle},
		{newDispatcherError("start failed"), ErrCodeDispatcherUnavailable},
		{errors.New("plain error"), ErrCodeNone},
	}
	for _, c := range cases {
		if got := GetErrorCode(c.err); got != c.want {
			t.Errorf("GetErrorCode(%v) = %v, want %v", c.err, got, c.want)
		}
	}
}

func TestSubstateErrorMessagesVaryByCode(t *testing.T) {
	dup := newSubstateError(ErrCodeDuplicateParent, "Parent", "Child")
	cyc := newSubstateError(ErrCodeCycle, "Parent", "Child")
	if dup.Error() == cyc.Error() {
		t.Fatal("different error codes should produce different messages")
	}
}
