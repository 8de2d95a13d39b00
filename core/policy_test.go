package core_test

import (
	"testing"

	"github.com/lguimbarda/flux/core"
)

func TestViolationPolicyString(t *testing.T) {
	tests := []struct {
		policy core.ViolationPolicy
		want   string
	}{
		{core.Ignore, "ignore"},
		{core.Delegate, "delegate"},
		{core.Throw, "throw"},
		{core.ViolationPolicy(99), "ViolationPolicy(99)"},
	}

	for _, tt := range tests {
		if got := tt.policy.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestViolationErrorMessage(t *testing.T) {
	err := &core.ViolationError{Arity: "mono", Reason: "received a second item"}
	want := "flux: mono receiver contract violation: received a second item"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}
