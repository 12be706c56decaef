package pipeline

import (
	"context"
	"os"
	"time"

	"github.com/pkg/errors"

	"github.com/askiada/go-seqpipe/pkg/pipeline/model"
)

// PhaseKind distinguishes per-matched-file phases from single aggregate
// phases.
type PhaseKind int

const (
	// PerFile runs one command per matched file, in listing order.
	PerFile PhaseKind = iota
	// Aggregate runs at most one command for the whole phase.
	Aggregate
)

// Command describes one external invocation built by a phase.
type Command struct {
	// Argv is the executable name followed by its ordered arguments.
	Argv []string
	// StdoutRedirect, when set, receives the child's standard output.
	StdoutRedirect string
	// Output names the artifact the invocation produces. Per-file phases
	// record it in the phase state so later phases can consume it.
	Output string
}

// PhaseState carries what earlier phases of the same stage execution
// produced. It is created when the stage starts and discarded when the stage
// returns; later phases read from it, never from a re-listing of the output
// directory.
type PhaseState struct {
	InputDir  string
	OutputDir string

	paths    map[string]string
	produced []string
}

func newPhaseState(inputDir, outputDir string) *PhaseState {
	return &PhaseState{
		InputDir:  inputDir,
		OutputDir: outputDir,
		paths:     make(map[string]string),
	}
}

// SetPath registers a named path for later phases, such as a derived filter
// file or a manifest.
func (s *PhaseState) SetPath(key, path string) {
	s.paths[key] = path
}

// Path returns a path registered by an earlier phase.
func (s *PhaseState) Path(key string) string {
	return s.paths[key]
}

func (s *PhaseState) record(path string) {
	s.produced = append(s.produced, path)
}

// Produced returns the outputs recorded so far, in production order.
func (s *PhaseState) Produced() []string {
	return s.produced
}

// Phase is one ordered sub-step of a stage.
type Phase struct {
	Name string
	Kind PhaseKind
	// Match selects the files a PerFile phase iterates over. When nil the
	// stage's own predicate applies.
	Match Predicate
	// Prepare runs before the phase command. Aggregate phases use it to
	// write derived files from the state, such as a manifest.
	Prepare func(state *PhaseState) error
	// Command builds the argument vector. For PerFile phases file is the
	// matched name; for Aggregate phases it is empty. A nil Command means
	// the phase only prepares.
	Command func(state *PhaseState, file string) (Command, error)
}

// Stage binds a file predicate, an output directory label and an ordered
// list of phases into one pipeline stage.
type Stage struct {
	// Name identifies the stage in errors and logs.
	Name string
	// Label names the sibling output directory.
	Label string
	// Match is the default predicate over input file names.
	Match Predicate
	// AuxInputs are files that must exist before the stage runs, checked
	// before the output directory is created.
	AuxInputs []string
	// Phases run in order. A stage with a single per-file loop declares
	// exactly one PerFile phase.
	Phases []Phase

	info *model.StageInfo
}

// NewStage builds the common single-loop stage: one command per matched
// file.
func NewStage(name, label string, match Predicate, command func(state *PhaseState, file string) (Command, error)) *Stage {
	return &Stage{
		Name:  name,
		Label: label,
		Match: match,
		Phases: []Phase{
			{Name: name, Kind: PerFile, Command: command},
		},
	}
}

func (s *Stage) validate() error {
	if s.Name == "" {
		return ErrStageName
	}
	if s.Label == "" {
		return ErrStageLabel
	}

	return nil
}

// execute runs every phase of the stage against inputDir and returns the
// resolved output directory. Preconditions are checked before the output
// directory is created, so a failed precondition leaves no side effects.
func (p *Pipeline) execute(ctx context.Context, inputDir string, stage *Stage) (string, error) {
	info, err := os.Stat(inputDir)
	if err != nil || !info.IsDir() {
		return "", &DirectoryNotFoundError{Dir: inputDir}
	}

	for _, aux := range stage.AuxInputs {
		info, err := os.Stat(aux)
		if err != nil || info.IsDir() {
			return "", &FileNotFoundError{Path: aux}
		}
	}

	outputDir, err := Resolve(inputDir, stage.Label)
	if err != nil {
		return "", err
	}

	state := newPhaseState(inputDir, outputDir)

	for _, phase := range stage.Phases {
		err := p.runPhase(ctx, stage, phase, state)
		if err != nil {
			return "", errors.Wrapf(err, "phase %s", phase.Name)
		}
	}

	return outputDir, nil
}

func (p *Pipeline) runPhase(ctx context.Context, stage *Stage, phase Phase, state *PhaseState) error {
	if phase.Prepare != nil {
		err := phase.Prepare(state)
		if err != nil {
			return errors.Wrap(err, "unable to prepare phase")
		}
	}

	if phase.Command == nil {
		return nil
	}

	if phase.Kind == Aggregate {
		cmd, err := phase.Command(state, "")
		if err != nil {
			return errors.Wrap(err, "unable to build command")
		}

		return p.runCommand(ctx, stage, cmd)
	}

	match := phase.Match
	if match == nil {
		match = stage.Match
	}

	files, err := Select(state.InputDir, match)
	if err != nil {
		return err
	}

	for _, file := range files {
		cmd, err := phase.Command(state, file)
		if err != nil {
			return errors.Wrapf(err, "unable to build command for %s", file)
		}

		err = p.runCommand(ctx, stage, cmd)
		if err != nil {
			return err
		}

		if cmd.Output != "" {
			state.record(cmd.Output)
		}
	}

	return nil
}

func (p *Pipeline) runCommand(ctx context.Context, stage *Stage, cmd Command) error {
	p.logger.Printf("running command: %v", cmd.Argv)

	start := time.Now()
	runErr := p.runner.Run(ctx, cmd.Argv, cmd.StdoutRedirect)
	elapsed := time.Since(start)

	for _, opt := range p.opts {
		err := opt.OnCommand(stage.info, cmd.Argv, elapsed)
		if err != nil {
			return errors.Wrap(err, "unable to run on command function")
		}
	}

	return runErr
}
