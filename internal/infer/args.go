package infer

import (
	"github.com/funvibe/funkos/internal/policy"
	"github.com/funvibe/funkos/internal/runtime"
	"github.com/funvibe/funkos/internal/view"
)

// HandledArgs is the normalized form of the arguments passed to a
// dispatch entry point. At most one of View and InitialValue is set, and
// View only for element-wise dispatch.
type HandledArgs struct {
	Name         string
	Labeled      bool
	Policy       policy.ExecutionPolicy
	Workunit     *Workunit
	View         view.ViewType
	InitialValue any
}

// HandleArgs disambiguates the raw positional arguments of a dispatch
// call. isFor marks element-wise dispatch, where a trailing view binds the
// output array; for reduction/scan a trailing numeric binds the initial
// accumulator value. No type inference happens here.
func HandleArgs(isFor bool, args []any) (*HandledArgs, error) {
	h := &HandledArgs{InitialValue: nil}
	var rawPolicy, rawWorkunit any

	switch len(args) {
	case 2:
		rawPolicy = args[0]
		rawWorkunit = args[1]

	case 3:
		if name, ok := args[0].(string); ok {
			h.Name = name
			h.Labeled = true
			rawPolicy = args[1]
			rawWorkunit = args[2]
		} else if v, ok := args[2].(view.ViewType); isFor && ok {
			rawPolicy = args[0]
			rawWorkunit = args[1]
			h.View = v
		} else if isNumeric(args[2]) {
			rawPolicy = args[0]
			rawWorkunit = args[1]
			h.InitialValue = args[2]
		} else {
			return nil, NewShapeError(args)
		}

	case 4:
		name, ok := args[0].(string)
		if !ok {
			return nil, NewShapeError(args)
		}
		h.Name = name
		h.Labeled = true
		rawPolicy = args[1]
		rawWorkunit = args[2]

		if v, ok := args[3].(view.ViewType); isFor && ok {
			h.View = v
		} else if isNumeric(args[3]) {
			h.InitialValue = args[3]
		} else {
			return nil, NewShapeError(args)
		}

	default:
		return nil, &ShapeError{Args: args, Reason: "incorrect number of arguments"}
	}

	switch p := rawPolicy.(type) {
	case policy.ExecutionPolicy:
		h.Policy = p
	case int:
		// A bare integer is shorthand for a flat range over [0, n) on
		// the default execution space.
		h.Policy = policy.NewRangePolicy(runtime.DefaultSpace(), 0, p)
	default:
		return nil, &ShapeError{Args: args, Reason: "policy argument is neither a policy nor an integer"}
	}

	wu, ok := rawWorkunit.(*Workunit)
	if !ok {
		return nil, &ShapeError{Args: args, Reason: "workunit argument is not a workunit"}
	}
	h.Workunit = wu

	return h, nil
}

// isNumeric matches the value shapes accepted as an initial accumulator.
func isNumeric(v any) bool {
	switch v.(type) {
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64:
		return true
	}
	return false
}
