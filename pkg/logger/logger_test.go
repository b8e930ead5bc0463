package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
)

func TestNew_LevelAndFields(t *testing.T) {
	var buf bytes.Buffer
	log := New(Options{Level: "warn", Service: "portal-api", Output: &buf})

	log.Info().Msg("dropped")
	log.Warn().Str("path", "/api/events").Msg("kept")

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d: %s", len(lines), buf.String())
	}
	var ev map[string]any
	if err := json.Unmarshal(lines[0], &ev); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if ev["service"] != "portal-api" || ev["message"] != "kept" || ev["level"] != "warn" {
		t.Fatalf("unexpected event: %v", ev)
	}
}

func TestInit_FirstCallWins(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	if Get().GetLevel() != zerolog.Disabled {
		t.Fatalf("Get before Init should be a no-op logger")
	}

	var first, second bytes.Buffer
	Init(Options{Output: &first})
	Init(Options{Output: &second})
	l := Component("backend")
	l.Info().Msg("hello")

	if second.Len() != 0 {
		t.Fatalf("second Init must be ignored")
	}
	if !bytes.Contains(first.Bytes(), []byte(`"component":"backend"`)) {
		t.Fatalf("missing component field: %s", first.String())
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]zerolog.Level{
		"":        zerolog.InfoLevel,
		"DEBUG":   zerolog.DebugLevel,
		" trace ": zerolog.TraceLevel,
		"warning": zerolog.WarnLevel,
		"error":   zerolog.ErrorLevel,
		"verbose": zerolog.InfoLevel,
	}
	for in, want := range cases {
		if got := parseLevel(in); got != want {
			t.Fatalf("parseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}
