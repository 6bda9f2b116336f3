package space

// ExecutionSpace identifies where a dispatch runs.
type ExecutionSpace int

const (
	OpenMP ExecutionSpace = iota
	Cuda
	HIP
	Serial
	Threads
	Debug
)

var spaceNames = map[ExecutionSpace]string{
	OpenMP:  "OpenMP",
	Cuda:    "Cuda",
	HIP:     "HIP",
	Serial:  "Serial",
	Threads: "Threads",
	Debug:   "Debug",
}

func (s ExecutionSpace) String() string {
	return spaceNames[s]
}

// ParseSpace resolves a space name as it appears in configuration files.
func ParseSpace(name string) (ExecutionSpace, bool) {
	for s, n := range spaceNames {
		if n == name {
			return s, true
		}
	}
	return 0, false
}

// IsHost reports whether s executes on the host CPU.
func (s ExecutionSpace) IsHost() bool {
	switch s {
	case OpenMP, Serial, Threads, Debug:
		return true
	}
	return false
}

// Layout is the memory ordering convention of a multi-dimensional view.
type Layout int

const (
	// LayoutDefault means the view did not fix a layout; the execution
	// space's default applies.
	LayoutDefault Layout = iota
	LayoutRight
	LayoutLeft
)

var layoutNames = map[Layout]string{
	LayoutDefault: "LayoutDefault",
	LayoutRight:   "LayoutRight",
	LayoutLeft:    "LayoutLeft",
}

func (l Layout) String() string {
	return layoutNames[l]
}

// ParseLayout resolves a layout name as it appears in configuration files.
func ParseLayout(name string) (Layout, bool) {
	for l, n := range layoutNames {
		if n == name {
			return l, true
		}
	}
	return 0, false
}

// DefaultLayout returns the memory layout a view defaults to on the given
// execution space: row-major on host spaces, column-major on device spaces.
func DefaultLayout(s ExecutionSpace) Layout {
	if s.IsHost() {
		return LayoutRight
	}
	return LayoutLeft
}
