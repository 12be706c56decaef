package model

// StageInfo describes one stage of a pipeline.
type StageInfo struct {
	// Name identifies the stage in errors, logs and the stage graph.
	Name string
	// Label is the sibling directory name the stage writes its outputs to.
	Label string
}

// StartStage is the implicit parent of the first stage added to a pipeline.
var StartStage = &StageInfo{Name: "start"}
