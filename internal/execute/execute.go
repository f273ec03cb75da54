// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package execute runs tool commands as child processes with a bounded
// wall-clock timeout and decides success from the output file, not from the
// raw exit status.
package execute

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"time"

	"github.com/pdiddy/dock-prep/internal/fsutil"
	"github.com/pdiddy/dock-prep/internal/tools"
	"github.com/pdiddy/dock-prep/pkg/types"
)

// runner abstracts process spawning for testing.
type runner interface {
	// Run executes cmd under ctx, writing captured output to stdout and
	// stderr (stdout goes to cmd.StdoutPath instead when that is set). It
	// returns the child's exit code, or -1 when the child never completed.
	Run(ctx context.Context, cmd *tools.Command, stdout, stderr io.Writer) (int, error)
}

// osRunner is the production runner backed by os/exec.
type osRunner struct{}

func (o *osRunner) Run(ctx context.Context, cmd *tools.Command, stdout, stderr io.Writer) (int, error) {
	c := exec.CommandContext(ctx, cmd.Path, cmd.Args...)
	c.Dir = cmd.Dir
	if len(cmd.Env) > 0 {
		c.Env = append(os.Environ(), cmd.Env...)
	}

	if cmd.StdoutPath != "" {
		f, err := os.Create(cmd.StdoutPath)
		if err != nil {
			return -1, fmt.Errorf("creating stdout file %s: %w", cmd.StdoutPath, err)
		}
		defer f.Close()
		c.Stdout = f
	} else {
		c.Stdout = stdout
	}
	c.Stderr = stderr

	err := c.Run()
	if err == nil {
		return 0, nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), err
	}
	return -1, err
}

// Executor runs built commands and interprets their outcome per tool.
type Executor struct {
	run runner
	out io.Writer
}

// New creates an Executor that writes status lines to w.
func New(w io.Writer) *Executor {
	return &Executor{run: &osRunner{}, out: w}
}

func newExecutor(r runner, w io.Writer) *Executor {
	return &Executor{run: r, out: w}
}

// Run executes cmd with a wall-clock budget (the tool's default when timeout
// is zero) and returns the interpreted result. The verdict is authoritative
// on the output file: a clean exit without the file is a failure, and for
// tools that tolerate exit errors a non-zero exit with the file present is a
// warning-level success. A timeout is always fatal. The parent process state,
// including its working directory, is never modified; tool-specific
// directories are set on the child at spawn time.
func (e *Executor) Run(ctx context.Context, tool tools.Tool, cmd *tools.Command, outputPath string, timeout time.Duration) (*types.Result, error) {
	if timeout <= 0 {
		timeout = tool.DefaultTimeout()
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	fmt.Fprintf(e.out, "running %s (timeout %s)\n", tool.Name(), timeout)

	var stdoutBuf, stderrBuf bytes.Buffer
	start := time.Now()
	exitCode, runErr := e.run.Run(ctx, cmd, &stdoutBuf, &stderrBuf)
	elapsed := time.Since(start)

	res := &types.Result{
		ExitCode: exitCode,
		Stdout:   stdoutBuf.String(),
		Stderr:   stderrBuf.String(),
		Duration: elapsed,
	}

	if ctx.Err() == context.DeadlineExceeded {
		fmt.Fprintf(e.out, "%s timed out after %s; consider raising the timeout for this operation\n",
			tool.Name(), elapsed.Round(time.Millisecond))
		return res, fmt.Errorf("%w: %s exceeded %s", types.ErrProcessTimeout, tool.Name(), timeout)
	}

	outputExists := fileExists(outputPath)

	if runErr != nil {
		if tool.TolerateExitError(outputExists) {
			fmt.Fprintf(e.out, "warning: %s returned exit code %d but the output file was created\n",
				tool.Name(), exitCode)
			res.Lenient = true
		} else {
			if res.Stdout != "" {
				fmt.Fprintf(e.out, "standard output:\n%s\n", res.Stdout)
			}
			if res.Stderr != "" {
				fmt.Fprintf(e.out, "standard error:\n%s\n", res.Stderr)
			}
			return res, fmt.Errorf("%w: %s exited with code %d: %v",
				types.ErrProcessExecutionFailed, tool.Name(), exitCode, runErr)
		}
	}

	// Re-check after every invocation: the file is the contract.
	if !outputExists {
		return res, fmt.Errorf("%w: %s exited cleanly but %s is absent",
			types.ErrOutputFileNotProduced, tool.Name(), outputPath)
	}

	res.OutputSize = fsutil.FileSize(outputPath)
	fmt.Fprintf(e.out, "created %s (%d bytes)\n", outputPath, res.OutputSize)
	return res, nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
