package infer

import (
	"github.com/funvibe/funkos/internal/config"
	"github.com/funvibe/funkos/internal/policy"
)

// inferPolicyArgs assigns roles to the policy-owned workunit parameters
// that lack a declared annotation: loop index, team handle, accumulator,
// scan final-pass flag. Declared parameters are left untouched.
func inferPolicyArgs(params []Param, policyParams int, pol policy.ExecutionPolicy, kind policy.DispatchKind, u *Updated) error {
	if policyParams > len(params) {
		return NewArityMismatchError(policyParams, len(params))
	}

	for i := 0; i < policyParams; i++ {
		param := params[i]
		if param.Annotation != "" {
			continue
		}

		switch pol.Kind() {
		case policy.KindRange, policy.KindTeamThreadRange:
			// only expects one index param
			if i == 0 {
				u.Types.Set(param.Name, config.IntName)
			}
		case policy.KindTeam:
			if i == 0 {
				u.Types.Set(param.Name, config.TeamMemberName)
			}
		case policy.KindMDRange:
			if i < pol.Arity() {
				u.Types.Set(param.Name, config.IntName)
			}
		default:
			return &UnsupportedPolicyError{Kind: pol.Kind()}
		}

		// The last policy param of a reduction and the second-to-last of
		// a scan is always the accumulator; its role overrides whatever
		// the policy assigned above.
		if (i == policyParams-1 && kind == policy.DispatchReduce) ||
			(i == policyParams-2 && kind == policy.DispatchScan) {
			u.Types.Set(param.Name, config.AccDouble)
		}

		if i == policyParams-1 && kind == policy.DispatchScan {
			u.Types.Set(param.Name, config.BoolName)
		}
	}

	return nil
}
