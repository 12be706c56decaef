package pipeline_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/askiada/go-seqpipe/pkg/pipeline"
)

// recordingRunner records every invocation and never spawns a process.
// touchOutputs makes it create the files named after -o and -S flags and
// the redirect target, so downstream stages have something to select.
type recordingRunner struct {
	calls        [][]string
	redirects    []string
	failAt       int
	touchOutputs bool
}

func (r *recordingRunner) Run(_ context.Context, argv []string, stdoutRedirect string) error {
	r.calls = append(r.calls, argv)
	r.redirects = append(r.redirects, stdoutRedirect)

	if r.touchOutputs {
		for i, arg := range argv[:len(argv)-1] {
			if arg == "-o" || arg == "-p" || arg == "-S" {
				touch(argv[i+1])
			}
		}
		if stdoutRedirect != "" {
			touch(stdoutRedirect)
		}
	}

	if r.failAt == len(r.calls) {
		return &pipeline.ExternalToolError{Argv: argv, ExitCode: 1}
	}

	return nil
}

func (r *recordingRunner) tools() []string {
	var res []string
	for _, argv := range r.calls {
		res = append(res, argv[0])
	}

	return res
}

func touch(path string) {
	_ = os.WriteFile(path, nil, 0o644)
}

func makeInputDir(t *testing.T, names ...string) string {
	t.Helper()
	inputDir := filepath.Join(t.TempDir(), "data")
	if err := os.Mkdir(inputDir, 0o755); err != nil {
		t.Fatal(err)
	}
	for _, name := range names {
		touch(filepath.Join(inputDir, name))
	}

	return inputDir
}
