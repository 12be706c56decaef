package pipeline

import (
	"os"
	"path/filepath"
)

// Resolve derives the output directory for a stage label as a sibling of
// inputDir and ensures it exists, creating missing ancestors. The derived
// path is a pure function of inputDir and label, so re-running a pipeline
// against the same inputs resolves the same directories and creation is a
// no-op when the directory is already there.
func Resolve(inputDir, label string) (string, error) {
	outputDir := filepath.Join(filepath.Dir(inputDir), label)

	err := os.MkdirAll(outputDir, 0o755)
	if err != nil {
		return "", &DirectoryCreationError{Dir: outputDir, Err: err}
	}

	return outputDir, nil
}
