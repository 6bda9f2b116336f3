package infer

import (
	"fmt"
	"math/bits"
	"strconv"

	"github.com/funvibe/funkos/internal/config"
	"github.com/funvibe/funkos/internal/runtime"
	"github.com/funvibe/funkos/internal/space"
	"github.com/funvibe/funkos/internal/types"
	"github.com/funvibe/funkos/internal/view"
)

// inferValueArgs infers types and layouts for the value parameters, each
// paired with its bound runtime value from the call's argument list
// starting at startIdx. Layout inference for views happens even when the
// parameter's type is already declared.
func inferValueArgs(params []Param, policyParams int, argsList []any, startIdx int, sp space.ExecutionSpace, u *Updated) error {
	for i := policyParams; i < len(params); i++ {
		param := params[i]
		value := argsList[startIdx+i-policyParams]

		if v, ok := value.(view.ViewType); ok {
			inferred := v.Layout()
			if inferred == space.LayoutDefault {
				inferred = runtime.DefaultLayout(sp)
			}
			if inferred == space.LayoutRight {
				u.Layouts.Set(param.Name, space.LayoutRight)
			} else {
				u.Layouts.Set(param.Name, space.LayoutLeft)
			}
		}

		if param.Annotation != "" {
			continue
		}

		descriptor, err := valueDescriptor(param.Name, value)
		if err != nil {
			return err
		}
		u.Types.Set(param.Name, descriptor)
	}

	return nil
}

// valueDescriptor maps one runtime value to its type descriptor.
func valueDescriptor(name string, value any) (string, error) {
	switch v := value.(type) {
	case bool:
		return config.BoolName, nil

	case int:
		return intDescriptor(int64(v)), nil
	case int8, int16, int32, uint8, uint16:
		return config.IntName, nil
	case int64:
		return intDescriptor(v), nil
	case uint:
		return uintDescriptor(uint64(v)), nil
	case uint32:
		return uintDescriptor(uint64(v)), nil
	case uint64:
		return uintDescriptor(v), nil

	case float64:
		return config.DoubleName, nil
	case float32:
		return config.FloatName, nil

	case types.Scalar:
		if !types.IsSupportedKind(v.Kind) {
			return "", &UnsupportedTypeError{Kind: v.Kind}
		}
		return config.NumpyPrefix + types.CanonicalKind(v.Kind), nil

	case view.ViewType:
		dtype, ok := viewDataTypeName(v.DataType())
		if !ok {
			return "", &UnsupportedTypeError{Param: name, Kind: "view"}
		}
		return config.ViewMarker + strconv.Itoa(v.Rank()) + "D:" + dtype, nil
	}

	return "", &UnsupportedTypeError{Param: name, Kind: typeName(value)}
}

// intDescriptor promotes integers whose magnitude needs more than 31 bits
// of representation to the 64-bit integer type.
func intDescriptor(v int64) string {
	if bitLength(v) > 31 {
		return config.NumpyPrefix + "int64"
	}
	return config.IntName
}

func uintDescriptor(v uint64) string {
	if bits.Len64(v) > 31 {
		return config.NumpyPrefix + "int64"
	}
	return config.IntName
}

// bitLength is the number of bits needed to represent the magnitude of v.
func bitLength(v int64) int {
	if v < 0 {
		v = -v
	}
	return bits.Len64(uint64(v))
}

// viewDataTypeName resolves a view's element dtype to its descriptor
// spelling, with the float64/float32 aliases mapped to double/float.
func viewDataTypeName(d types.DataType) (string, bool) {
	if !d.Valid() {
		return "", false
	}
	return types.CanonicalKind(d.String()), true
}

func typeName(value any) string {
	if value == nil {
		return "nil"
	}
	return fmt.Sprintf("%T", value)
}
