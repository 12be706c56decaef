// Package measure collects per-stage timing metrics for a pipeline run.
package measure

import "sync"

// DefaultMeasure is the in-memory Measure implementation.
type DefaultMeasure struct {
	mu     sync.Mutex
	stages map[string]*Metric
}

// New creates a new measure.
func New() *DefaultMeasure {
	return &DefaultMeasure{
		stages: make(map[string]*Metric),
	}
}

// AddStage registers a stage and returns its metric. Registering the same
// stage twice returns the existing metric.
func (m *DefaultMeasure) AddStage(name string) *Metric {
	m.mu.Lock()
	defer m.mu.Unlock()

	if mt, ok := m.stages[name]; ok {
		return mt
	}

	mt := &Metric{}
	m.stages[name] = mt

	return mt
}

// AllMetrics returns the metric of every registered stage.
func (m *DefaultMeasure) AllMetrics() map[string]*Metric {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.stages
}
