package measure

import (
	"sync"
	"time"
)

// Metric accumulates the timings of one stage: how long each external
// command took and how long the stage took end to end.
type Metric struct {
	mu             sync.Mutex
	commandElapsed time.Duration
	commands       int64
	stageElapsed   time.Duration
}

// AddCommand records the duration of one external command.
func (m *Metric) AddCommand(elapsed time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.commands++
	m.commandElapsed += elapsed
}

// CommandCount returns how many external commands the stage ran.
func (m *Metric) CommandCount() int64 {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.commands
}

// AVGCommandDuration returns the mean duration of the stage's commands.
func (m *Metric) AVGCommandDuration() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.commands == 0 {
		return 0
	}

	return round(time.Duration(float64(m.commandElapsed) / float64(m.commands)))
}

// SetStageDuration records the total duration of the stage.
func (m *Metric) SetStageDuration(elapsed time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stageElapsed = elapsed
}

// StageDuration returns the total duration of the stage.
func (m *Metric) StageDuration() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.stageElapsed
}

func round(d time.Duration) time.Duration {
	switch {
	case d > time.Second:
		d = d.Round(time.Second)
	case d > time.Millisecond:
		d = d.Round(time.Millisecond)
	case d > time.Microsecond:
		d = d.Round(time.Microsecond)
	}

	return d
}
