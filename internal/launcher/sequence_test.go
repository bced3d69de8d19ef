package launcher

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/wpmon/wmlaunch/internal/pyenv"
)

// Mirrors the full launch sequence the run command performs: startup
// notice, child output, closing prompt, in that order on one stream.
func TestLaunchSequenceKeepsOutputOrdered(t *testing.T) {
	requirePOSIX(t)
	dir := t.TempDir()
	target := writeScript(t, dir, "main.sh", "echo hello\n")
	env := pyenv.Probe(dir, []string{"venv", ".venv"})

	var out bytes.Buffer

	fmt.Fprintf(&out, "Starting %s (environment: %s)\n", target, env.Describe())
	res, err := Run(context.Background(), Spec{
		Interpreter: "/bin/sh",
		Target:      target,
		Dir:         dir,
		Env:         env.Environ(os.Environ()),
		Environment: env.Describe(),
		Stdout:      &out,
		Stderr:      &bytes.Buffer{},
	})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	WaitForEnter(strings.NewReader("\n"), &out, "")

	if res.ExitCode != 0 {
		t.Errorf("ExitCode = %d, want 0", res.ExitCode)
	}

	text := out.String()
	notice := strings.Index(text, "Starting main.sh (environment: ambient)")
	hello := strings.Index(text, "hello")
	prompt := strings.Index(text, DefaultPrompt)
	if notice == -1 || hello == -1 || prompt == -1 {
		t.Fatalf("output %q missing notice, child output, or prompt", text)
	}
	if !(notice < hello && hello < prompt) {
		t.Errorf("output order wrong: notice=%d hello=%d prompt=%d", notice, hello, prompt)
	}
}
