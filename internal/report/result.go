package report

// The result is written once, when the child is done. Nothing updates it
// afterwards; every output format renders from the same struct.

import (
	"fmt"
	"io"
	"time"
)

// Result is the immutable record of one launch.
type Result struct {
	// Identity
	Target      string `json:"target"`
	Interpreter string `json:"interpreter"`
	WorkDir     string `json:"work_dir"`
	Environment string `json:"environment"` // candidate name or "ambient"
	PID         int    `json:"pid,omitempty"`

	// Timing
	StartTime time.Time     `json:"start_time"`
	EndTime   time.Time     `json:"end_time"`
	Duration  time.Duration `json:"duration_ns"`

	// Outcome
	Started  bool   `json:"started"`
	ExitCode int    `json:"exit_code"`
	Signal   string `json:"signal,omitempty"` // set when the child died on a signal
}

// New creates a result for a launch that got as far as spawning.
func New(target, interpreter, workDir, environment string) *Result {
	return &Result{
		Target:      target,
		Interpreter: interpreter,
		WorkDir:     workDir,
		Environment: environment,
		StartTime:   time.Now(),
	}
}

// Complete records the outcome. Call once, when Wait returns.
func (r *Result) Complete(pid, exitCode int, signal string) {
	r.Started = true
	r.PID = pid
	r.ExitCode = exitCode
	r.Signal = signal
	r.EndTime = time.Now()
	r.Duration = r.EndTime.Sub(r.StartTime)
}

// Failed records a spawn that never produced a child process.
func (r *Result) Failed() {
	r.Started = false
	r.ExitCode = -1
	r.EndTime = time.Now()
	r.Duration = r.EndTime.Sub(r.StartTime)
}

// Summary is the one-line record ops grep for.
func (r *Result) Summary() string {
	outcome := fmt.Sprintf("exit=%d", r.ExitCode)
	if !r.Started {
		outcome = "spawn-failed"
	} else if r.Signal != "" {
		outcome = "signal=" + r.Signal
	}
	return fmt.Sprintf("LAUNCH %s | env=%s | %s | runtime=%.1fs | pid=%d",
		r.Target, r.Environment, outcome, r.Duration.Seconds(), r.PID)
}

// WriteText renders the human-readable report.
func (r *Result) WriteText(w io.Writer) error {
	if !r.Started {
		_, err := fmt.Fprintf(w, "%s did not start (environment: %s)\n", r.Target, r.Environment)
		return err
	}
	outcome := fmt.Sprintf("exited with code %d", r.ExitCode)
	if r.Signal != "" {
		outcome = "terminated by signal " + r.Signal
	}
	_, err := fmt.Fprintf(w, "%s %s after %.1fs (pid %d, environment: %s)\n",
		r.Target, outcome, r.Duration.Seconds(), r.PID, r.Environment)
	return err
}
