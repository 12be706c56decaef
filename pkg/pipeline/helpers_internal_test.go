package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

type recordedCall struct {
	argv           []string
	stdoutRedirect string
}

// fakeRunner records every invocation instead of spawning processes. failAt
// makes the n-th call (1-based) fail with an ExternalToolError.
type fakeRunner struct {
	calls  []recordedCall
	failAt int
	onRun  func(argv []string, stdoutRedirect string)
}

func (r *fakeRunner) Run(_ context.Context, argv []string, stdoutRedirect string) error {
	r.calls = append(r.calls, recordedCall{argv: argv, stdoutRedirect: stdoutRedirect})
	if r.onRun != nil {
		r.onRun(argv, stdoutRedirect)
	}
	if r.failAt == len(r.calls) {
		return &ExternalToolError{Argv: argv, ExitCode: 1}
	}

	return nil
}

func newTestPipeline(t *testing.T, runner Runner) *Pipeline {
	t.Helper()
	pipe, err := New(WithRunner(runner))
	if err != nil {
		t.Fatal(err)
	}

	return pipe
}

func createFiles(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, name := range names {
		err := os.WriteFile(filepath.Join(dir, name), nil, 0o644)
		if err != nil {
			t.Fatal(err)
		}
	}
}
