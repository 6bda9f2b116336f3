package infer

import (
	"fmt"

	"github.com/funvibe/funkos/internal/policy"
)

// ShapeError indicates the dispatch argument tuple does not match any
// recognized pattern.
type ShapeError struct {
	Args   []any
	Reason string
}

func (e *ShapeError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("wrong arguments: %s", e.Reason)
	}
	return fmt.Sprintf("wrong arguments %v", e.Args)
}

func NewShapeError(args []any) *ShapeError {
	return &ShapeError{Args: args}
}

// ArityMismatchError indicates the number of value parameters does not
// match the number of extra arguments supplied at the call site.
type ArityMismatchError struct {
	Params int
	Values int
}

func (e *ArityMismatchError) Error() string {
	return fmt.Sprintf("unannotated arguments mismatch %d != %d", e.Params, e.Values)
}

func NewArityMismatchError(params, values int) *ArityMismatchError {
	return &ArityMismatchError{Params: params, Values: values}
}

// UnsupportedTypeError indicates a value whose type cannot be mapped to a
// known descriptor.
type UnsupportedTypeError struct {
	Param string
	Kind  string
}

func (e *UnsupportedTypeError) Error() string {
	if e.Param != "" {
		return fmt.Sprintf("cannot infer datatype for parameter %q (%s)", e.Param, e.Kind)
	}
	return fmt.Sprintf("numeric type %s is unsupported", e.Kind)
}

// UnsupportedPolicyError indicates a policy kind the adapter does not know
// how to annotate.
type UnsupportedPolicyError struct {
	Kind policy.Kind
}

func (e *UnsupportedPolicyError) Error() string {
	return fmt.Sprintf("automatic annotations not supported for policy %s", e.Kind)
}
