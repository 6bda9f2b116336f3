package dispatch

// Processor is one stage of dispatch processing.
type Processor interface {
	Process(ctx *Context) error
}

// Pipeline represents a sequence of processing stages.
type Pipeline struct {
	processors []Processor
}

func NewPipeline(processors ...Processor) *Pipeline {
	return &Pipeline{processors: processors}
}

// Run executes the pipeline, stopping at the first error. Inference has
// no partial-result path, so a failed stage aborts the dispatch.
func (p *Pipeline) Run(ctx *Context) error {
	for _, processor := range p.processors {
		if err := processor.Process(ctx); err != nil {
			return err
		}
	}
	return nil
}
