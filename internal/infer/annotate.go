package infer

import (
	"github.com/funvibe/funkos/internal/policy"
)

// Updated carries everything inference produced for one dispatch call:
// the workunit, the ordered inferred-type and inferred-layout maps, and
// the compacted signature. It is built once per call and never mutated
// afterwards.
type Updated struct {
	Workunit  *Workunit
	Types     TypeMap
	Layouts   LayoutMap
	Signature string
}

// Annotate infers descriptors for every undeclared workunit parameter of
// a dispatch call: policy-owned parameters from the policy and dispatch
// kind, value parameters from the runtime values bound to them. args is
// the full raw argument list of the dispatch call (the same list
// HandleArgs saw); kwargs are keyword arguments matched to trailing
// parameter names. Returns nil when there is nothing to infer.
func Annotate(kind policy.DispatchKind, handled *HandledArgs, args []any, kwargs map[string]any) (*Updated, error) {
	params := handled.Workunit.Params
	u := &Updated{Workunit: handled.Workunit}

	policyParams := handled.Policy.Arity() + kind.ExtraParams()

	if err := inferPolicyArgs(params, policyParams, handled.Policy, kind, u); err != nil {
		return nil, err
	}

	// Policy parameters are the only parameters. The inferred roles are
	// fully determined by the policy and dispatch kind, so no signature
	// is attached.
	if len(params) == policyParams {
		if u.Types.Len() == 0 {
			return nil, nil
		}
		return u, nil
	}

	// Queue keyword arguments onto the argument list, in trailing
	// parameter order, so they are assessed like positional extras.
	if len(kwargs) > 0 {
		argsList := make([]any, len(args))
		copy(argsList, args)
		for _, param := range params[policyParams:] {
			if v, ok := kwargs[param.Name]; ok {
				argsList = append(argsList, v)
			}
		}
		args = argsList
	}

	// Extra arguments begin after (label,) policy, workunit.
	valueIdx := 2
	if handled.Labeled {
		valueIdx = 3
	}

	valueParams := len(params) - policyParams
	supplied := len(args) - valueIdx
	if valueParams != supplied {
		return nil, NewArityMismatchError(valueParams, supplied)
	}

	if err := inferValueArgs(params, policyParams, args, valueIdx, handled.Policy.Space(), u); err != nil {
		return nil, err
	}

	if u.Types.Len() == 0 && u.Layouts.Len() == 0 {
		return nil, nil
	}

	u.Signature = TypesSignature(&u.Types, &u.Layouts)

	return u, nil
}
