package testsupport

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-notegen/pkg/catalog"
)

// MustLoadValues reads a YAML or JSON values fixture.
func MustLoadValues(t *testing.T, path string) catalog.Values {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read values fixture: %v", err)
	}
	values, err := catalog.ParseValues(data)
	if err != nil {
		t.Fatalf("parse values fixture: %v", err)
	}
	return values
}

// MustLoadCatalog reads a catalog fixture.
func MustLoadCatalog(t *testing.T, path string) []catalog.FieldSpec {
	t.Helper()

	fields, err := catalog.LoadFile(path)
	if err != nil {
		t.Fatalf("load catalog fixture: %v", err)
	}
	return fields
}

// DischargeValues returns a complete, valid value set for the default
// catalog. Each call returns a fresh map.
func DischargeValues() catalog.Values {
	return catalog.Values{
		"gender":          "Female",
		"age":             "68",
		"admit":           "01/02/2024",
		"discharge":       "01/10/2024",
		"symptoms":        "fever",
		"history":         "diabetes",
		"labs":            "elevated creatinine",
		"physician_notes": "AKI",
		"admission_hp":    "IV fluids",
		"creatine":        "1.2-2.0",
	}
}

// CompareGolden returns a diff string if the values differ.
func CompareGolden(want, got any) string {
	return cmp.Diff(want, got)
}

// MustReadGolden reads a golden file and returns its raw bytes.
func MustReadGolden(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	return data
}

// MustReadGoldenString reads a golden file and returns its string content.
func MustReadGoldenString(t *testing.T, path string) string {
	t.Helper()
	return string(MustReadGolden(t, path))
}

// WriteMaybeGolden updates a golden file when UPDATE_GOLDENS is set. Returns
// true if the golden was written (test should exit early).
func WriteMaybeGolden(t *testing.T, path string, data []byte) bool {
	t.Helper()
	if os.Getenv("UPDATE_GOLDENS") == "" {
		return false
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
	return true
}

// Context returns a background context for tests.
func Context() context.Context {
	return context.Background()
}

// CaptureOutput runs render against a buffer and returns both the returned
// string and what was written, so tests can assert they agree.
func CaptureOutput(t *testing.T, render func(io.Writer) (string, error)) (string, string) {
	t.Helper()

	var buf bytes.Buffer
	out, err := render(&buf)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	return out, buf.String()
}
