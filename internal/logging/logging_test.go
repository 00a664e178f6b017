package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]zerolog.Level{
		"debug":   zerolog.DebugLevel,
		" WARN ":  zerolog.WarnLevel,
		"error":   zerolog.ErrorLevel,
		"":        zerolog.InfoLevel,
		"verbose": zerolog.InfoLevel,
	}
	for input, want := range cases {
		if got := ParseLevel(input); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", input, got, want)
		}
	}
}

func TestNewWithWriter_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(&buf, "production", "info")

	logger.Debug().Msg("hidden")
	logger.Info().Str("field", "age").Msg("validated")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("expected a single JSON entry, got %q: %v", buf.String(), err)
	}
	if entry["message"] != "validated" || entry["field"] != "age" || entry["service"] != "notegen" {
		t.Fatalf("unexpected entry: %v", entry)
	}
}

func TestNewWithWriter_Console(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(&buf, "development", "debug")
	logger.Debug().Msg("hello")

	if buf.Len() == 0 || json.Valid(buf.Bytes()) {
		t.Fatalf("expected console output, got %q", buf.String())
	}
}
