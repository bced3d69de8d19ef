// Package pyenv probes for a Python virtual environment next to the
// launcher and builds the child environment that activates it. Activation
// never touches the launcher's own process environment: callers get an
// explicit []string to hand to exec.Cmd.
package pyenv

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
)

// Env describes the probe outcome. A zero Root means no candidate matched
// and the child runs in the ambient environment; that is not an error.
type Env struct {
	// Name is the candidate directory name that matched, e.g. "venv".
	Name string
	// Root is the absolute path of the environment, "" when ambient.
	Root string
}

// Probe checks candidates in order relative to scriptDir and returns the
// first that exists as a directory. First match wins; a file with a
// candidate's name does not count.
func Probe(scriptDir string, candidates []string) Env {
	for _, name := range candidates {
		root := filepath.Join(scriptDir, name)
		if info, err := os.Stat(root); err == nil && info.IsDir() {
			return Env{Name: name, Root: root}
		}
	}
	return Env{}
}

// Active reports whether a virtual environment was found.
func (e Env) Active() bool {
	return e.Root != ""
}

// BinDir returns the environment's executable directory ("" when ambient).
// Windows venvs keep executables under Scripts, POSIX under bin.
func (e Env) BinDir() string {
	if !e.Active() {
		return ""
	}
	if runtime.GOOS == "windows" {
		return filepath.Join(e.Root, "Scripts")
	}
	return filepath.Join(e.Root, "bin")
}

// Environ builds the child environment from base. For an active
// environment it mirrors what bin/activate does: the environment's bin
// directory leads PATH, VIRTUAL_ENV points at the root, and PYTHONHOME is
// dropped so the interpreter does not resolve the wrong standard library.
// For an ambient environment the base is returned as a copy, untouched.
func (e Env) Environ(base []string) []string {
	if !e.Active() {
		return append([]string(nil), base...)
	}

	out := make([]string, 0, len(base)+1)
	sawPath := false
	for _, kv := range base {
		i := strings.IndexByte(kv, '=')
		if i < 0 {
			out = append(out, kv)
			continue
		}
		key, val := kv[:i], kv[i+1:]
		switch {
		case keyEquals(key, "PATH"):
			sawPath = true
			out = append(out, fmt.Sprintf("%s=%s%c%s", key, e.BinDir(), filepath.ListSeparator, val))
		case keyEquals(key, "VIRTUAL_ENV"):
			// Replaced below.
		case keyEquals(key, "PYTHONHOME"):
			// Dropped: a stale PYTHONHOME overrides the venv's stdlib.
		default:
			out = append(out, kv)
		}
	}
	if !sawPath {
		out = append(out, "PATH="+e.BinDir())
	}
	out = append(out, "VIRTUAL_ENV="+e.Root)
	return out
}

// Windows environment variable names are case-insensitive and PATH
// commonly arrives as "Path"; POSIX names are exact.
func keyEquals(key, name string) bool {
	if runtime.GOOS == "windows" {
		return strings.EqualFold(key, name)
	}
	return key == name
}

// interpreterNames in fallback order for ambient launches.
var interpreterNames = []string{"python3", "python"}

// Interpreter resolves the Python interpreter to run the target with. An
// active environment supplies its own interpreter; otherwise the ambient
// PATH is searched.
func (e Env) Interpreter() (string, error) {
	if e.Active() {
		name := "python"
		if runtime.GOOS == "windows" {
			name = "python.exe"
		}
		py := filepath.Join(e.BinDir(), name)
		if _, err := os.Stat(py); err != nil {
			return "", fmt.Errorf("environment %s has no interpreter at %s: %w", e.Name, py, err)
		}
		return py, nil
	}

	for _, name := range interpreterNames {
		if path, err := exec.LookPath(name); err == nil {
			return path, nil
		}
	}
	return "", fmt.Errorf("no python interpreter found on PATH (tried %s)", strings.Join(interpreterNames, ", "))
}

// Describe returns the one-word environment description used in console
// output and reports.
func (e Env) Describe() string {
	if e.Active() {
		return e.Name
	}
	return "ambient"
}
