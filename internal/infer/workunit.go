package infer

// Param is one workunit parameter. An empty Annotation means the type is
// undeclared and must be inferred at dispatch time; a non-empty one is a
// descriptor in the grammar of NormalizeAnnotation.
type Param struct {
	Name       string
	Annotation string
}

// Workunit is the callback handed to a dispatch: a name, an ordered
// parameter list, and an opaque body forwarded to the specializer. The
// first arity+extra parameters are policy-owned; the rest are value
// parameters bound to the caller's extra arguments.
type Workunit struct {
	Name   string
	Params []Param
	Body   any
}

// NewWorkunit builds a workunit from name, parameters, and body.
func NewWorkunit(name string, params []Param, body any) *Workunit {
	return &Workunit{Name: name, Params: params, Body: body}
}
