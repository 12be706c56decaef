package pipeline

import (
	"context"
	"io"
	"os"
	"os/exec"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// Runner executes one external command and blocks until it exits. When
// stdoutRedirect is non-empty the child's standard output is written to that
// path, truncating or creating it; otherwise standard output is inherited
// from the caller. Exit status is the only signal consumed from the tool.
//
// There is no retry and no timeout: a hung external process blocks its
// caller. A deadline on ctx kills the child, which is the only cancellation
// offered.
type Runner interface {
	Run(ctx context.Context, argv []string, stdoutRedirect string) error
}

// ExecRunner runs commands with os/exec. Stdout and Stderr default to the
// process streams.
type ExecRunner struct {
	Stdout io.Writer
	Stderr io.Writer
}

func (r *ExecRunner) stdout() io.Writer {
	if r.Stdout != nil {
		return r.Stdout
	}

	return os.Stdout
}

func (r *ExecRunner) stderr() io.Writer {
	if r.Stderr != nil {
		return r.Stderr
	}

	return os.Stderr
}

// Run executes argv synchronously. It fails with ToolNotFoundError when the
// executable cannot be located and with ExternalToolError when the process
// exits non-zero.
func (r *ExecRunner) Run(ctx context.Context, argv []string, stdoutRedirect string) error {
	if len(argv) == 0 {
		return ErrEmptyArgv
	}

	if _, err := exec.LookPath(argv[0]); err != nil {
		return &ToolNotFoundError{Tool: argv[0]}
	}

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Env = os.Environ()
	cmd.Stderr = r.stderr()

	var err error
	if stdoutRedirect == "" {
		cmd.Stdout = r.stdout()
		err = cmd.Run()
	} else {
		err = r.runRedirected(cmd, stdoutRedirect)
	}

	if err != nil {
		exitErr := &exec.ExitError{}
		if errors.As(err, &exitErr) {
			return &ExternalToolError{Argv: argv, ExitCode: exitErr.ExitCode()}
		}

		return errors.Wrapf(err, "unable to run %s", argv[0])
	}

	return nil
}

// runRedirected streams the child's stdout into the redirect file. The copy
// must drain before Wait is called on the command.
func (r *ExecRunner) runRedirected(cmd *exec.Cmd, stdoutRedirect string) error {
	out, err := os.Create(stdoutRedirect)
	if err != nil {
		return errors.Wrapf(err, "unable to create redirect file %s", stdoutRedirect)
	}
	defer out.Close()

	pipe, err := cmd.StdoutPipe()
	if err != nil {
		return errors.Wrap(err, "unable to open stdout pipe")
	}

	if err := cmd.Start(); err != nil {
		return err
	}

	grp := errgroup.Group{}
	grp.Go(func() error {
		_, copyErr := io.Copy(out, pipe)

		return errors.Wrapf(copyErr, "unable to copy stdout to %s", stdoutRedirect)
	})

	if err := grp.Wait(); err != nil {
		_ = cmd.Wait()

		return err
	}

	return cmd.Wait()
}
