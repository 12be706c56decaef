package rnaseq_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

// recordingRunner records every invocation. It creates the files named after
// output flags and the stdout redirect so downstream stages and phases find
// the artifacts the real tools would have produced.
type recordingRunner struct {
	calls     [][]string
	redirects []string
}

func (r *recordingRunner) Run(_ context.Context, argv []string, stdoutRedirect string) error {
	r.calls = append(r.calls, argv)
	r.redirects = append(r.redirects, stdoutRedirect)

	for i, arg := range argv[:len(argv)-1] {
		if arg == "-o" || arg == "-p" || arg == "-S" || arg == "-C" {
			touch(argv[i+1])
		}
	}
	if stdoutRedirect != "" {
		touch(stdoutRedirect)
	}

	return nil
}

func touch(path string) {
	_ = os.WriteFile(path, nil, 0o644)
}

func makeDir(t *testing.T, parent, name string, files ...string) string {
	t.Helper()
	dir := filepath.Join(parent, name)
	if err := os.Mkdir(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	for _, file := range files {
		touch(filepath.Join(dir, file))
	}

	return dir
}
