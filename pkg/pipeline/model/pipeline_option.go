package model

import "time"

// PipelineOption defines the interface for pipeline options. Options observe
// the pipeline without taking part in stage execution.
type PipelineOption interface {
	// New initialises the pipeline option.
	New() error
	// PrepareStage runs when a stage is added to the pipeline.
	PrepareStage(parent, stage *StageInfo) error
	// OnCommand runs after every external command invoked by a stage.
	OnCommand(stage *StageInfo, argv []string, elapsed time.Duration) error
	// AfterStage runs after a stage fully completes.
	AfterStage(stage *StageInfo, elapsed time.Duration) error
	// Finish runs after the pipeline is finished.
	Finish() error
}
