package logging

import (
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
	}{
		{"debug", LevelDebug},
		{"DEBUG", LevelDebug},
		{"info", LevelInfo},
		{"warn", LevelWarn},
		{"warning", LevelWarn},
		{"error", LevelError},
		{"nonsense", LevelInfo},
		{"", LevelInfo},
	}

	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestLevelFiltering(t *testing.T) {
	var sb strings.Builder
	l := New(LevelWarn)
	l.SetOutput(&sb)

	l.Debug("dropped")
	l.Info("dropped")
	l.Warn("kept warn")
	l.Error("kept error")

	out := sb.String()
	if strings.Contains(out, "dropped") {
		t.Errorf("below-level messages leaked: %q", out)
	}
	if !strings.Contains(out, "kept warn") || !strings.Contains(out, "kept error") {
		t.Errorf("at-level messages missing: %q", out)
	}
}

func TestWithPrefix(t *testing.T) {
	var sb strings.Builder
	l := New(LevelInfo)
	l.SetOutput(&sb)

	l.WithPrefix("search").Info("hello")
	if !strings.Contains(sb.String(), "search: hello") {
		t.Errorf("prefixed line = %q", sb.String())
	}

	sb.Reset()
	l.Info("plain")
	if strings.Contains(sb.String(), "search") {
		t.Errorf("prefix leaked to parent logger: %q", sb.String())
	}
}

func TestDiscard(t *testing.T) {
	// Must not panic, must not write anywhere visible.
	Discard().Error("ignored %d", 42)
}
