package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
	}{
		{"debug", DEBUG},
		{"info", INFO},
		{"WARN", WARN},
		{"warning", WARN},
		{"error", ERROR},
		{"", INFO},
		{"nonsense", INFO},
	}
	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := New(WARN)
	log.SetOutput(&buf)

	log.Debugf("dropped")
	log.Infof("dropped too")
	log.Warnf("kept")
	log.Errorf("also kept")

	out := buf.String()
	if strings.Contains(out, "dropped") {
		t.Errorf("output %q contains filtered entries", out)
	}
	if !strings.Contains(out, "WARN: kept") || !strings.Contains(out, "ERROR: also kept") {
		t.Errorf("output %q missing expected entries", out)
	}
}

func TestWithField(t *testing.T) {
	var buf bytes.Buffer
	log := New(INFO)
	log.SetOutput(&buf)

	log.WithField("target", "main.py").Infof("starting")

	if !strings.Contains(buf.String(), "target:main.py") {
		t.Errorf("output %q missing the field", buf.String())
	}
}
