package cmd

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/genesis-engine/genesis-backend/core/history"
)

func TestFormatRunDuration(t *testing.T) {
	tests := []struct {
		name string
		d    time.Duration
		want string
	}{
		{"sub-second keeps milliseconds", 512 * time.Millisecond, "512ms"},
		{"sub-millisecond rounds", 1499 * time.Microsecond, "1ms"},
		{"seconds", 2 * time.Second, "2s"},
		{"rounds to seconds", 2*time.Second + 700*time.Millisecond, "3s"},
		{"minutes", 2*time.Minute + 13*time.Second, "2m13s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := formatRunDuration(tt.d)
			if got != tt.want {
				t.Errorf("formatRunDuration(%v) = %q, want %q", tt.d, got, tt.want)
			}
		})
	}
}

func TestOutputJSONRuns(t *testing.T) {
	started := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	runs := []*history.Run{
		{
			ID:         "run-1",
			Project:    "orders-api",
			Framework:  "fastapi",
			FileCount:  42,
			Success:    true,
			StartedAt:  started,
			FinishedAt: started.Add(90 * time.Second),
		},
	}

	var buf bytes.Buffer
	if err := outputJSONRuns(&buf, runs); err != nil {
		t.Fatalf("outputJSONRuns() error = %v", err)
	}

	var decoded []history.Run
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	if len(decoded) != 1 {
		t.Fatalf("decoded %d runs, want 1", len(decoded))
	}
	if decoded[0].Project != "orders-api" {
		t.Errorf("Project = %q, want orders-api", decoded[0].Project)
	}
	if decoded[0].FileCount != 42 {
		t.Errorf("FileCount = %d, want 42", decoded[0].FileCount)
	}
}

func TestOutputJSONRunsEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := outputJSONRuns(&buf, nil); err != nil {
		t.Fatalf("outputJSONRuns() error = %v", err)
	}

	if strings.TrimSpace(buf.String()) != "[]" {
		t.Errorf("output = %q, want []", buf.String())
	}
}

func TestOutputRichRuns(t *testing.T) {
	started := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	runs := []*history.Run{
		{
			Project:    "orders-api",
			Framework:  "fastapi",
			FileCount:  42,
			Success:    true,
			StartedAt:  started,
			FinishedAt: started.Add(90 * time.Second),
		},
		{
			Project:    "broken-api",
			Framework:  "django",
			Success:    false,
			Error:      "provider unavailable",
			StartedAt:  started,
			FinishedAt: started.Add(time.Second),
		},
	}

	var buf bytes.Buffer
	if err := outputRichRuns(&buf, runs); err != nil {
		t.Fatalf("outputRichRuns() error = %v", err)
	}

	out := buf.String()
	for _, want := range []string{"Generation Runs", "orders-api", "42 files", "1m30s", "broken-api", "provider unavailable", "2 runs"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestOutputRichRunsEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := outputRichRuns(&buf, nil); err != nil {
		t.Fatalf("outputRichRuns() error = %v", err)
	}

	if !strings.Contains(buf.String(), "No runs recorded.") {
		t.Errorf("output = %q, want no-runs message", buf.String())
	}
}
