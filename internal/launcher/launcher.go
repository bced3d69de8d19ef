// Package launcher spawns the target program and waits for it. It owns
// nothing else: environment selection happens in pyenv, reporting in
// report. The child always gets the terminal's stdio, so its output and
// diagnostics pass through untouched.
package launcher

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"syscall"

	"github.com/wpmon/wmlaunch/internal/report"
)

// Spec is everything a launch needs, passed explicitly. The launcher never
// chdirs or mutates its own environment; Dir and Env go straight into the
// exec.Cmd.
type Spec struct {
	// Interpreter is the resolved executable to run.
	Interpreter string
	// Target is the entry point, relative to Dir. Recorded in the result.
	Target string
	// Dir is the child's working directory.
	Dir string
	// Env is the complete child environment.
	Env []string
	// Environment names the activated environment ("ambient" when none).
	Environment string

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Run spawns the target and blocks until it exits. The child's exit status
// lands in the result, not in the error: a non-zero exit is a completed
// launch, not a launcher failure. The error is non-nil only when the child
// could not be spawned or waited on at all.
func Run(ctx context.Context, spec Spec) (*report.Result, error) {
	res := report.New(spec.Target, spec.Interpreter, spec.Dir, spec.Environment)

	cmd := exec.CommandContext(ctx, spec.Interpreter, spec.Target)
	cmd.Dir = spec.Dir
	cmd.Env = spec.Env
	cmd.Stdin = spec.Stdin
	cmd.Stdout = spec.Stdout
	cmd.Stderr = spec.Stderr

	if err := cmd.Start(); err != nil {
		res.Failed()
		return res, fmt.Errorf("start %s: %w", spec.Target, err)
	}
	pid := cmd.Process.Pid

	err := cmd.Wait()
	exitCode := 0
	signal := ""
	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			// Wait itself failed (I/O plumbing, not the child).
			res.Failed()
			return res, fmt.Errorf("wait for %s: %w", spec.Target, err)
		}
		exitCode = exitErr.ExitCode()
		if ws, ok := exitErr.Sys().(syscall.WaitStatus); ok && ws.Signaled() {
			signal = ws.Signal().String()
		}
	}

	res.Complete(pid, exitCode, signal)
	return res, nil
}
