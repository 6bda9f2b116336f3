package policy

import (
	"testing"

	"github.com/funvibe/funkos/internal/space"
)

func TestPolicyArity(t *testing.T) {
	tests := []struct {
		name   string
		policy ExecutionPolicy
		kind   Kind
		arity  int
	}{
		{
			name:   "flat range",
			policy: NewRangePolicy(space.OpenMP, 0, 100),
			kind:   KindRange,
			arity:  1,
		},
		{
			name:   "2D range",
			policy: NewMDRangePolicy(space.OpenMP, []int{0, 0}, []int{10, 10}),
			kind:   KindMDRange,
			arity:  2,
		},
		{
			name:   "3D range",
			policy: NewMDRangePolicy(space.Cuda, []int{0, 0, 0}, []int{4, 4, 4}),
			kind:   KindMDRange,
			arity:  3,
		},
		{
			name:   "team",
			policy: NewTeamPolicy(space.OpenMP, 8, 4),
			kind:   KindTeam,
			arity:  1,
		},
		{
			name:   "team thread range",
			policy: NewTeamThreadRange(space.OpenMP, 0, 16),
			kind:   KindTeamThreadRange,
			arity:  1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.policy.Kind(); got != tt.kind {
				t.Errorf("Kind() = %s, want %s", got, tt.kind)
			}
			if got := tt.policy.Arity(); got != tt.arity {
				t.Errorf("Arity() = %d, want %d", got, tt.arity)
			}
		})
	}
}

func TestDispatchExtraParams(t *testing.T) {
	if got := DispatchFor.ExtraParams(); got != 0 {
		t.Errorf("DispatchFor.ExtraParams() = %d, want 0", got)
	}
	if got := DispatchReduce.ExtraParams(); got != 1 {
		t.Errorf("DispatchReduce.ExtraParams() = %d, want 1", got)
	}
	if got := DispatchScan.ExtraParams(); got != 2 {
		t.Errorf("DispatchScan.ExtraParams() = %d, want 2", got)
	}
}

func TestPolicySpace(t *testing.T) {
	p := NewRangePolicy(space.Cuda, 0, 10)
	if p.Space() != space.Cuda {
		t.Errorf("Space() = %s, want Cuda", p.Space())
	}
}
