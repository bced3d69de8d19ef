package launcher

import (
	"bytes"
	"strings"
	"testing"
)

func TestWaitForEnterConsumesOneLine(t *testing.T) {
	var out bytes.Buffer
	in := strings.NewReader("anything typed here\n")

	WaitForEnter(in, &out, "")

	if got := out.String(); got != DefaultPrompt+"\n" {
		t.Errorf("prompt = %q, want %q", got, DefaultPrompt+"\n")
	}
}

func TestWaitForEnterCustomPrompt(t *testing.T) {
	var out bytes.Buffer
	WaitForEnter(strings.NewReader("\n"), &out, "Done.")
	if got := out.String(); got != "Done.\n" {
		t.Errorf("prompt = %q, want %q", got, "Done.\n")
	}
}

func TestWaitForEnterReturnsOnEOF(t *testing.T) {
	// A piped or closed stdin must not hang the launcher. If this ever
	// blocks, the test binary's deadline catches it.
	var out bytes.Buffer
	WaitForEnter(strings.NewReader(""), &out, "")
}
