package drawer

import (
	"time"

	"github.com/pkg/errors"

	"github.com/askiada/go-seqpipe/pkg/pipeline/measure"
	"github.com/askiada/go-seqpipe/pkg/pipeline/model"
)

// PipelineOption feeds a Drawer from pipeline events and draws the graph
// when the pipeline finishes.
type PipelineOption struct {
	drawer  Drawer
	measure measure.Measure
}

// NewPipelineOption wraps drw as a pipeline option. msr may be nil; when set
// the drawn graph is annotated with its metrics.
func NewPipelineOption(drw Drawer, msr measure.Measure) *PipelineOption {
	return &PipelineOption{drawer: drw, measure: msr}
}

// New adds the start vertex.
func (o *PipelineOption) New() error {
	err := o.drawer.AddStage(model.StartStage.Name)
	if err != nil {
		return errors.Wrap(err, "unable to add start stage")
	}

	return nil
}

// PrepareStage adds the stage vertex and its link to the parent.
func (o *PipelineOption) PrepareStage(parent, stage *model.StageInfo) error {
	err := o.drawer.AddStage(stage.Name)
	if err != nil {
		return errors.Wrap(err, "unable to add stage")
	}

	err = o.drawer.AddLink(parent.Name, stage.Name)
	if err != nil {
		return errors.Wrap(err, "unable to add link")
	}

	return nil
}

// OnCommand implements model.PipelineOption.
func (o *PipelineOption) OnCommand(*model.StageInfo, []string, time.Duration) error {
	return nil
}

// AfterStage annotates the stage with its total duration.
func (o *PipelineOption) AfterStage(stage *model.StageInfo, elapsed time.Duration) error {
	err := o.drawer.SetStageDuration(stage.Name, elapsed)
	if err != nil {
		return errors.Wrap(err, "unable to set stage duration")
	}

	return nil
}

// Finish attaches the measure annotations, when any, and draws the graph.
func (o *PipelineOption) Finish() error {
	if o.measure != nil {
		err := o.drawer.AddMeasure(o.measure)
		if err != nil {
			return errors.Wrap(err, "unable to add measure")
		}
	}

	err := o.drawer.Draw()
	if err != nil {
		return errors.Wrap(err, "unable to draw pipeline")
	}

	return nil
}
