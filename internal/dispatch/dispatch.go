package dispatch

import (
	"github.com/google/uuid"

	"github.com/funvibe/funkos/internal/infer"
	"github.com/funvibe/funkos/internal/policy"
	"github.com/funvibe/funkos/internal/registry"
)

// Context carries one dispatch call through the pipeline stages.
type Context struct {
	Kind    policy.DispatchKind
	Args    []any
	Kwargs  map[string]any
	Label   string
	Handled *infer.HandledArgs
	Updated *infer.Updated
	Kernel  registry.Kernel
}

// Result is what a dispatch hands to the caller: the resolved label, the
// inference outcome (nil when nothing needed inference), and the
// specialized kernel.
type Result struct {
	Label   string
	Handled *infer.HandledArgs
	Updated *infer.Updated
	Kernel  registry.Kernel
}

// Dispatcher owns the dispatch pipeline and the specialization registry.
type Dispatcher struct {
	reg  *registry.Registry
	pipe *Pipeline
}

func New(s registry.Specializer) *Dispatcher {
	reg := registry.New(s)
	return &Dispatcher{
		reg: reg,
		pipe: NewPipeline(
			resolveStage{},
			labelStage{},
			annotateStage{},
			specializeStage{reg: reg},
		),
	}
}

// Registry exposes the specialization cache, mainly for inspection.
func (d *Dispatcher) Registry() *registry.Registry {
	return d.reg
}

// ParallelFor dispatches an element-wise workunit.
func (d *Dispatcher) ParallelFor(args ...any) (*Result, error) {
	return d.run(policy.DispatchFor, args, nil)
}

// ParallelForKw is ParallelFor with keyword arguments bound to trailing
// workunit parameters by name.
func (d *Dispatcher) ParallelForKw(kwargs map[string]any, args ...any) (*Result, error) {
	return d.run(policy.DispatchFor, args, kwargs)
}

// ParallelReduce dispatches a reduction workunit.
func (d *Dispatcher) ParallelReduce(args ...any) (*Result, error) {
	return d.run(policy.DispatchReduce, args, nil)
}

// ParallelReduceKw is ParallelReduce with keyword arguments.
func (d *Dispatcher) ParallelReduceKw(kwargs map[string]any, args ...any) (*Result, error) {
	return d.run(policy.DispatchReduce, args, kwargs)
}

// ParallelScan dispatches a scan workunit.
func (d *Dispatcher) ParallelScan(args ...any) (*Result, error) {
	return d.run(policy.DispatchScan, args, nil)
}

// ParallelScanKw is ParallelScan with keyword arguments.
func (d *Dispatcher) ParallelScanKw(kwargs map[string]any, args ...any) (*Result, error) {
	return d.run(policy.DispatchScan, args, kwargs)
}

func (d *Dispatcher) run(kind policy.DispatchKind, args []any, kwargs map[string]any) (*Result, error) {
	ctx := &Context{Kind: kind, Args: args, Kwargs: kwargs}
	if err := d.pipe.Run(ctx); err != nil {
		return nil, err
	}
	return &Result{
		Label:   ctx.Label,
		Handled: ctx.Handled,
		Updated: ctx.Updated,
		Kernel:  ctx.Kernel,
	}, nil
}

// resolveStage disambiguates the raw argument tuple.
type resolveStage struct{}

func (resolveStage) Process(ctx *Context) error {
	handled, err := infer.HandleArgs(ctx.Kind == policy.DispatchFor, ctx.Args)
	if err != nil {
		return err
	}
	ctx.Handled = handled
	return nil
}

// labelStage picks the human-readable label: the caller's, or a generated
// one for unlabeled dispatches.
type labelStage struct{}

func (labelStage) Process(ctx *Context) error {
	if ctx.Handled.Labeled {
		ctx.Label = ctx.Handled.Name
		return nil
	}
	ctx.Label = ctx.Handled.Workunit.Name + "_" + uuid.NewString()[:8]
	return nil
}

// annotateStage runs type and layout inference.
type annotateStage struct{}

func (annotateStage) Process(ctx *Context) error {
	updated, err := infer.Annotate(ctx.Kind, ctx.Handled, ctx.Args, ctx.Kwargs)
	if err != nil {
		return err
	}
	ctx.Updated = updated
	return nil
}

// specializeStage resolves the compiled kernel through the registry.
type specializeStage struct {
	reg *registry.Registry
}

func (s specializeStage) Process(ctx *Context) error {
	kernel, err := s.reg.Lookup(ctx.Handled.Workunit, ctx.Updated)
	if err != nil {
		return err
	}
	ctx.Kernel = kernel
	return nil
}
