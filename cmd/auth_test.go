package cmd

import (
	"testing"
)

func TestIsValidTarget(t *testing.T) {
	tests := []struct {
		target string
		want   bool
	}{
		{"claude", true},
		{"openai", true},
		{"deepseek", true},
		{"gemini", true},
		{"anthropic", false},
		{"CLAUDE", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			got := isValidTarget(tt.target)
			if got != tt.want {
				t.Errorf("isValidTarget(%q) = %v, want %v", tt.target, got, tt.want)
			}
		})
	}
}

func TestValidTargets(t *testing.T) {
	targets := validTargets()

	if len(targets) != 4 {
		t.Fatalf("validTargets() returned %d targets, want 4", len(targets))
	}

	for _, target := range targets {
		if !isValidTarget(target) {
			t.Errorf("validTargets() includes %q which isValidTarget rejects", target)
		}
	}
}

func TestTargetStatusStored(t *testing.T) {
	stored := map[string]bool{"claude": true}

	got := targetStatus("claude", stored)
	if got != "configured" {
		t.Errorf("targetStatus() = %q, want %q", got, "configured")
	}
}

func TestTargetStatusEnvFallback(t *testing.T) {
	t.Setenv("DEEPSEEK_API_KEY", "sk-env-test")

	got := targetStatus("deepseek", map[string]bool{})
	want := "configured (env DEEPSEEK_API_KEY)"
	if got != want {
		t.Errorf("targetStatus() = %q, want %q", got, want)
	}
}

func TestTargetStatusNotConfigured(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")

	got := targetStatus("gemini", map[string]bool{})
	if got != "not configured" {
		t.Errorf("targetStatus() = %q, want %q", got, "not configured")
	}
}

func TestTargetStatusPrefersStore(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-env-test")

	got := targetStatus("openai", map[string]bool{"openai": true})
	if got != "configured" {
		t.Errorf("targetStatus() = %q, want %q", got, "configured")
	}
}
