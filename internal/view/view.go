package view

import (
	"github.com/funvibe/funkos/internal/space"
	"github.com/funvibe/funkos/internal/types"
)

// ViewType is the descriptor surface of a multi-dimensional array that the
// inference engine consumes. The storage behind it lives elsewhere.
type ViewType interface {
	Rank() int
	DataType() types.DataType
	Layout() space.Layout
}

// View is a host-side array descriptor.
type View struct {
	Shape     []int
	DType     types.DataType
	MemLayout space.Layout
}

// New creates a view descriptor with no fixed layout; the execution
// space's default applies at dispatch time.
func New(shape []int, dtype types.DataType) *View {
	return &View{Shape: shape, DType: dtype, MemLayout: space.LayoutDefault}
}

// WithLayout returns a copy of v with an explicit memory layout.
func (v *View) WithLayout(l space.Layout) *View {
	c := *v
	c.MemLayout = l
	return &c
}

func (v *View) Rank() int                { return len(v.Shape) }
func (v *View) DataType() types.DataType { return v.DType }
func (v *View) Layout() space.Layout     { return v.MemLayout }
