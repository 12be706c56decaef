package pipeline

import (
	"context"
	"io"
	"log"
	"time"

	"github.com/dominikbraun/graph"
	"github.com/pkg/errors"

	"github.com/askiada/go-seqpipe/internal/store"
	"github.com/askiada/go-seqpipe/pkg/pipeline/model"
)

// Pipeline is an ordered chain of stages. Stages run strictly one after the
// other: a stage's entire file loop completes before the next stage begins,
// and only one external process ever runs at a time.
type Pipeline struct {
	runner Runner
	logger *log.Logger
	opts   []model.PipelineOption
	graph  graph.Graph[string, string]
	stages []*Stage
}

// New creates a new pipeline.
func New(opts ...Option) (*Pipeline, error) {
	pipe := &Pipeline{
		runner: &ExecRunner{},
		logger: log.New(io.Discard, "", log.Ltime),
		graph: graph.NewWithStore(
			graph.StringHash,
			store.NewMemoryStore[string, string](),
			graph.Directed(),
			graph.PreventCycles(),
		),
	}

	err := pipe.graph.AddVertex(model.StartStage.Name)
	if err != nil {
		return nil, errors.Wrap(err, "unable to add start vertex")
	}

	for _, opt := range opts {
		opt(pipe)
	}

	for _, opt := range pipe.opts {
		err := opt.New()
		if err != nil {
			return nil, errors.Wrap(err, "unable to apply pipeline option")
		}
	}

	return pipe, nil
}

// AddStage appends a stage to the chain. Stage names must be unique within
// the pipeline.
func (p *Pipeline) AddStage(stage *Stage) error {
	if p == nil {
		return ErrPipelineMustBeSet
	}
	if stage == nil {
		return ErrStageMustBeSet
	}

	err := stage.validate()
	if err != nil {
		return err
	}

	parent := model.StartStage
	if len(p.stages) > 0 {
		parent = p.stages[len(p.stages)-1].info
	}

	err = p.graph.AddVertex(stage.Name)
	if err != nil {
		return errors.Wrapf(err, "unable to add stage %s", stage.Name)
	}

	err = p.graph.AddEdge(parent.Name, stage.Name)
	if err != nil {
		return errors.Wrapf(err, "unable to link stage %s to %s", stage.Name, parent.Name)
	}

	stage.info = &model.StageInfo{Name: stage.Name, Label: stage.Label}

	for _, opt := range p.opts {
		err := opt.PrepareStage(parent, stage.info)
		if err != nil {
			return errors.Wrap(err, "unable to run prepare stage function")
		}
	}

	p.stages = append(p.stages, stage)

	return nil
}

// runContext threads directories from one stage to the next during a single
// run. It is created when Run starts and discarded when Run returns.
type runContext struct {
	currentDir string
	outputDirs map[string]string
}

// Run executes every stage in order, feeding each stage's output directory
// into the next stage. It aborts on the first failure, leaving subsequent
// stages untouched, and returns the final stage's output directory. The
// originating error is wrapped with the failing stage's name and stays
// reachable through the wrap chain.
func (p *Pipeline) Run(ctx context.Context, inputDir string) (string, error) {
	rctx := &runContext{
		currentDir: inputDir,
		outputDirs: make(map[string]string),
	}

	for _, stage := range p.stages {
		p.logger.Printf("starting stage %s", stage.Name)
		start := time.Now()

		outputDir, err := p.execute(ctx, rctx.currentDir, stage)
		if err != nil {
			return "", errors.Wrap(err, stage.Name)
		}

		elapsed := time.Since(start)
		for _, opt := range p.opts {
			err := opt.AfterStage(stage.info, elapsed)
			if err != nil {
				return "", errors.Wrap(err, "unable to run after stage function")
			}
		}

		rctx.outputDirs[stage.Name] = outputDir
		rctx.currentDir = outputDir
		p.logger.Printf("stage %s done in %s, output %s", stage.Name, elapsed, outputDir)
	}

	err := p.finishRun()
	if err != nil {
		return "", err
	}

	return rctx.currentDir, nil
}

func (p *Pipeline) finishRun() error {
	for _, opt := range p.opts {
		err := opt.Finish()
		if err != nil {
			return errors.Wrap(err, "unable to finish pipeline option")
		}
	}

	return nil
}
