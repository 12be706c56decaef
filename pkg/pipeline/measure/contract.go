package measure

// Measure collects timing metrics for every stage of a pipeline.
type Measure interface {
	// AddStage registers a stage and returns its metric.
	AddStage(name string) *Metric
	// AllMetrics returns the metric of every registered stage.
	AllMetrics() map[string]*Metric
}
