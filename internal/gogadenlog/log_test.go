package gogadenlog

import (
	"bytes"
	"log"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
	}{
		{"debug4", LevelDebug4},
		{"d3", LevelDebug3},
		{"2", LevelDebug2},
		{"debug", LevelDebug},
		{"info", LevelInfo},
		{"w", LevelWarn},
		{"error", LevelError},
	}
	for _, tt := range tests {
		got, ok := ParseLevel(tt.in)
		if !ok || got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, %v; want %v, true", tt.in, got, ok, tt.want)
		}
	}

	if _, ok := ParseLevel("bogus"); ok {
		t.Error("ParseLevel(\"bogus\") reported success")
	}
}

func TestLoggerFiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(WithLevel(LevelWarn), WithOutput(log.New(&buf, "", 0)))

	l.Info("should not appear")
	l.Debug("should not appear either")
	if buf.Len() != 0 {
		t.Fatalf("buffer = %q, want empty after below-threshold logs", buf.String())
	}

	l.Warn("warning: %d", 7)
	if !strings.Contains(buf.String(), "[WARN] warning: 7") {
		t.Fatalf("buffer = %q, want it to contain the warn line", buf.String())
	}
}

func TestLoggerFineGrainedLevels(t *testing.T) {
	var buf bytes.Buffer
	l := New(WithLevel(LevelDebug4), WithOutput(log.New(&buf, "", 0)))

	l.Debug4("d4 %d", 1)
	l.Debug3("d3 %d", 2)
	l.Debug2("d2 %d", 3)

	got := buf.String()
	for _, want := range []string{"[DEBUG4] d4 1", "[DEBUG3] d3 2", "[DEBUG2] d2 3"} {
		if !strings.Contains(got, want) {
			t.Fatalf("buffer = %q, want it to contain %q", got, want)
		}
	}
}

func TestLoggerFiltersDebug2AndBelow(t *testing.T) {
	var buf bytes.Buffer
	l := New(WithLevel(LevelDebug), WithOutput(log.New(&buf, "", 0)))

	l.Debug4("should not appear")
	l.Debug3("should not appear either")
	l.Debug2("nor this")
	if buf.Len() != 0 {
		t.Fatalf("buffer = %q, want empty: Debug/Debug2/Debug3/Debug4 are all below LevelDebug threshold except Debug itself", buf.String())
	}

	l.Debug("should appear")
	if !strings.Contains(buf.String(), "[DEBUG] should appear") {
		t.Fatalf("buffer = %q, want it to contain the debug line", buf.String())
	}
}

func TestNilLoggerIsSilent(t *testing.T) {
	var l *Logger
	l.Info("should not panic")
	l.Error("neither should this")
}

func TestLevelString(t *testing.T) {
	if LevelError.String() != "ERROR" {
		t.Fatalf("LevelError.String() = %q", LevelError.String())
	}
	if Level(99).String() != "UNKNOWN" {
		t.Fatalf("unknown level String() = %q", Level(99).String())
	}
}
