package config

// ConfigFileName is the default runtime configuration file.
const ConfigFileName = "funkos.yaml"

// ConfigFileNames are all recognized configuration file names
var ConfigFileNames = []string{"funkos.yaml", "funkos.yml", ".funkos.yaml"}

// Descriptor grammar markers. These spellings are part of the
// specialization cache key format and must not change.
const (
	ViewMarker     = "View"
	AccPrefix      = "Acc:"
	TeamMemberName = "TeamMember"
	NumpyPrefix    = "numpy:"
)

// Primitive descriptor names
const (
	IntName    = "int"
	DoubleName = "double"
	FloatName  = "float"
	BoolName   = "bool"
)

// AccDouble is the accumulator role descriptor.
const AccDouble = AccPrefix + DoubleName

// Contraction is one literal rewrite applied while compacting a signature.
type Contraction struct {
	From string
	To   string
}

// Contractions is applied strictly in order: longer and more specific
// tokens first, so a shorter token never matches inside one of them
// (e.g. "int" inside "numpy:int64" is only rewritten after the prefix
// has already been collapsed).
var Contractions = []Contraction{
	{ViewMarker, ""},
	{AccPrefix, ""},
	{TeamMemberName, "T"},
	{NumpyPrefix, "np"},
	{"LayoutRight", "R"},
	{"LayoutLeft", "L"},
	{":", ""},
	{DoubleName, "d"},
	{IntName, "i"},
	{BoolName, "b"},
	{FloatName, "f"},
}
