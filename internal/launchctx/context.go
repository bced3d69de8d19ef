package launchctx

import (
	"fmt"
	"os"
	"path/filepath"
)

// Defaults match the layout the monitoring app ships with: the entry point
// and its virtual environment sit next to the launcher binary.
var DefaultEnvCandidates = []string{"venv", ".venv"}

const DefaultTarget = "main.py"

// Context is the resolved launch context. Resolved once at startup and
// never mutated afterwards; the child process receives the directory and
// environment explicitly instead of the launcher chdir-ing or setenv-ing
// itself.
type Context struct {
	// ScriptDir is the absolute directory containing the launcher
	// executable, resolved through symlinks. All relative paths below
	// resolve against it.
	ScriptDir string

	// EnvCandidates are probed in order; the first existing directory
	// becomes the active virtual environment. None existing is normal.
	EnvCandidates []string

	// Target is the entry point, relative to ScriptDir.
	Target string
}

// Resolve builds a Context. An empty dir resolves to the directory holding
// the launcher executable, so invoking the launcher from any working
// directory (or via a symlink) yields the same context.
func Resolve(dir string) (*Context, error) {
	scriptDir, err := resolveScriptDir(dir)
	if err != nil {
		return nil, err
	}
	return &Context{
		ScriptDir:     scriptDir,
		EnvCandidates: append([]string(nil), DefaultEnvCandidates...),
		Target:        DefaultTarget,
	}, nil
}

func resolveScriptDir(dir string) (string, error) {
	if dir != "" {
		abs, err := filepath.Abs(dir)
		if err != nil {
			return "", fmt.Errorf("resolve directory %s: %w", dir, err)
		}
		return abs, nil
	}

	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("locate own executable: %w", err)
	}
	// The binary may be reached through a symlink; the real location is
	// what the target program and environments are colocated with.
	real, err := filepath.EvalSymlinks(exe)
	if err != nil {
		return "", fmt.Errorf("resolve executable symlinks: %w", err)
	}
	return filepath.Dir(real), nil
}

// TargetPath returns the absolute path of the entry point.
func (c *Context) TargetPath() string {
	return filepath.Join(c.ScriptDir, c.Target)
}

// TargetExists reports whether the entry point is present as a regular file.
func (c *Context) TargetExists() bool {
	info, err := os.Stat(c.TargetPath())
	return err == nil && info.Mode().IsRegular()
}
