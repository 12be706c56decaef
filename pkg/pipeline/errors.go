package pipeline

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

var (
	ErrPipelineMustBeSet = errors.New("p must be set")
	ErrStageMustBeSet    = errors.New("stage must be set")
	ErrStageName         = errors.New("stage name must be set")
	ErrStageLabel        = errors.New("stage label must be set")
	ErrEmptyArgv         = errors.New("argv must contain at least the tool name")
)

// DirectoryNotFoundError reports an input directory that does not exist or is
// not a directory.
type DirectoryNotFoundError struct {
	Dir string
}

func (e *DirectoryNotFoundError) Error() string {
	return fmt.Sprintf("directory %q does not exist", e.Dir)
}

// FileNotFoundError reports a missing auxiliary input file, such as a genome
// index or an annotation file.
type FileNotFoundError struct {
	Path string
}

func (e *FileNotFoundError) Error() string {
	return fmt.Sprintf("file %q does not exist", e.Path)
}

// DirectoryCreationError reports that the storage rejected creation of an
// output directory.
type DirectoryCreationError struct {
	Dir string
	Err error
}

func (e *DirectoryCreationError) Error() string {
	return fmt.Sprintf("unable to create directory %q: %v", e.Dir, e.Err)
}

func (e *DirectoryCreationError) Unwrap() error { return e.Err }

// Cause makes the underlying error visible to github.com/pkg/errors.
func (e *DirectoryCreationError) Cause() error { return e.Err }

// ToolNotFoundError reports an external executable that cannot be located.
type ToolNotFoundError struct {
	Tool string
}

func (e *ToolNotFoundError) Error() string {
	return fmt.Sprintf("tool %q cannot be located", e.Tool)
}

// ExternalToolError reports an external command that exited with a non-zero
// status. It carries the full argument vector so the caller can tell exactly
// which invocation failed.
type ExternalToolError struct {
	Argv     []string
	ExitCode int
}

func (e *ExternalToolError) Error() string {
	return fmt.Sprintf("command %q exited with status %d", strings.Join(e.Argv, " "), e.ExitCode)
}
