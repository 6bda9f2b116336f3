package types

// DataType enumerates the scalar element types a view or a
// foreign-numeric scalar can carry.
type DataType int

const (
	Int8 DataType = iota
	Int16
	Int32
	Int64
	UInt8
	UInt16
	UInt32
	UInt64
	Float
	Double
	Real
	Bool
)

// names uses the wire spellings of the descriptor grammar, not Go spellings.
var names = map[DataType]string{
	Int8:   "int8",
	Int16:  "int16",
	Int32:  "int32",
	Int64:  "int64",
	UInt8:  "uint8",
	UInt16: "uint16",
	UInt32: "uint32",
	UInt64: "uint64",
	Float:  "float",
	Double: "double",
	Real:   "real",
	Bool:   "bool",
}

func (d DataType) String() string {
	return names[d]
}

// Valid reports whether d is a member of the enumeration.
func (d DataType) Valid() bool {
	_, ok := names[d]
	return ok
}

// Parse resolves a kind name to a DataType. The float64/float32 aliases
// resolve to Double/Float.
func Parse(name string) (DataType, bool) {
	switch name {
	case "float64":
		return Double, true
	case "float32":
		return Float, true
	}
	for d, n := range names {
		if n == name {
			return d, true
		}
	}
	return 0, false
}

// supportedKinds is every DataType member name plus the two aliases for
// 64-/32-bit floating point.
var supportedKinds = func() map[string]bool {
	m := make(map[string]bool, len(names)+2)
	for _, n := range names {
		m[n] = true
	}
	m["float64"] = true
	m["float32"] = true
	return m
}()

// IsSupportedKind reports whether a foreign-numeric kind name is in the
// supported allow-list.
func IsSupportedKind(kind string) bool {
	return supportedKinds[kind]
}

// CanonicalKind maps the floating-point aliases to their descriptor
// spellings and leaves every other kind untouched.
func CanonicalKind(kind string) string {
	switch kind {
	case "float64":
		return "double"
	case "float32":
		return "float"
	}
	return kind
}

// Scalar is a value originating from the numeric-array ecosystem, carrying
// its kind name alongside the raw value. Plain Go numerics are passed
// directly; Scalar exists for values whose width was fixed by that
// ecosystem rather than by Go.
type Scalar struct {
	Kind  string
	Value any
}
