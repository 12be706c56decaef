package measure

import (
	"time"

	"github.com/askiada/go-seqpipe/pkg/pipeline/model"
)

// PipelineOption feeds a Measure from pipeline events.
type PipelineOption struct {
	measure Measure
}

// NewPipelineOption wraps msr as a pipeline option.
func NewPipelineOption(msr Measure) *PipelineOption {
	return &PipelineOption{measure: msr}
}

// New implements model.PipelineOption.
func (o *PipelineOption) New() error { return nil }

// PrepareStage registers the stage metric.
func (o *PipelineOption) PrepareStage(_, stage *model.StageInfo) error {
	o.measure.AddStage(stage.Name)

	return nil
}

// OnCommand records the duration of one external command.
func (o *PipelineOption) OnCommand(stage *model.StageInfo, _ []string, elapsed time.Duration) error {
	o.measure.AddStage(stage.Name).AddCommand(elapsed)

	return nil
}

// AfterStage records the total stage duration.
func (o *PipelineOption) AfterStage(stage *model.StageInfo, elapsed time.Duration) error {
	o.measure.AddStage(stage.Name).SetStageDuration(elapsed)

	return nil
}

// Finish implements model.PipelineOption.
func (o *PipelineOption) Finish() error { return nil }
