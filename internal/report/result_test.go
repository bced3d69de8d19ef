package report

import (
	"bytes"
	"strings"
	"testing"
)

func TestCompleteRecordsOutcome(t *testing.T) {
	r := New("main.py", "/usr/bin/python3", "/opt/monitor", "venv")
	r.Complete(4242, 1, "")

	if !r.Started {
		t.Error("Started should be true")
	}
	if r.PID != 4242 || r.ExitCode != 1 {
		t.Errorf("PID/ExitCode = %d/%d, want 4242/1", r.PID, r.ExitCode)
	}
	if r.EndTime.Before(r.StartTime) {
		t.Error("EndTime before StartTime")
	}
	if r.Duration != r.EndTime.Sub(r.StartTime) {
		t.Error("Duration does not match the recorded timestamps")
	}
}

func TestSummary(t *testing.T) {
	tests := []struct {
		name    string
		prepare func(r *Result)
		want    []string
	}{
		{
			name:    "clean exit",
			prepare: func(r *Result) { r.Complete(10, 0, "") },
			want:    []string{"LAUNCH main.py", "env=venv", "exit=0", "pid=10"},
		},
		{
			name:    "crash",
			prepare: func(r *Result) { r.Complete(11, -1, "segmentation fault") },
			want:    []string{"signal=segmentation fault"},
		},
		{
			name:    "spawn failure",
			prepare: func(r *Result) { r.Failed() },
			want:    []string{"spawn-failed"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := New("main.py", "/usr/bin/python3", "/opt/monitor", "venv")
			tt.prepare(r)
			sum := r.Summary()
			for _, want := range tt.want {
				if !strings.Contains(sum, want) {
					t.Errorf("Summary %q missing %q", sum, want)
				}
			}
		})
	}
}

func TestWriteText(t *testing.T) {
	r := New("main.py", "/usr/bin/python3", "/opt/monitor", "ambient")
	r.Complete(7, 2, "")

	var buf bytes.Buffer
	if err := r.WriteText(&buf); err != nil {
		t.Fatalf("WriteText failed: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"main.py", "exited with code 2", "pid 7", "ambient"} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q missing %q", out, want)
		}
	}
}

func TestWriteTextSpawnFailure(t *testing.T) {
	r := New("main.py", "/usr/bin/python3", "/opt/monitor", "ambient")
	r.Failed()

	var buf bytes.Buffer
	if err := r.WriteText(&buf); err != nil {
		t.Fatalf("WriteText failed: %v", err)
	}
	if !strings.Contains(buf.String(), "did not start") {
		t.Errorf("output %q should report the failed spawn", buf.String())
	}
}
