package pipeline

import (
	"log"

	"github.com/askiada/go-seqpipe/pkg/pipeline/model"
)

// Option configures a pipeline at construction time.
type Option func(p *Pipeline)

// WithRunner replaces the exec-based runner, typically with a test double
// that records invocations instead of spawning tools.
func WithRunner(runner Runner) Option {
	return func(p *Pipeline) {
		if runner != nil {
			p.runner = runner
		}
	}
}

// WithLogger sends pipeline progress to logger. Progress is discarded by
// default.
func WithLogger(logger *log.Logger) Option {
	return func(p *Pipeline) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// WithPipelineOptions registers observers such as the drawer and the
// measure.
func WithPipelineOptions(opts ...model.PipelineOption) Option {
	return func(p *Pipeline) {
		p.opts = append(p.opts, opts...)
	}
}
