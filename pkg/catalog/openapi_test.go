package catalog

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestOpenAPISchema(t *testing.T) {
	schema := OpenAPISchema(Default())

	if len(schema.Properties) != len(Default()) {
		t.Fatalf("expected %d properties, got %d", len(Default()), len(schema.Properties))
	}

	wantRequired := []string{
		"gender", "age", "admit", "discharge", "symptoms", "history",
		"labs", "admission_hp", "creatine",
	}
	if diff := cmp.Diff(wantRequired, schema.Required); diff != "" {
		t.Fatalf("required mismatch (-want +got):\n%s", diff)
	}

	admit := schema.Properties["admit"].Value
	if admit.Title != "Admit Date" {
		t.Fatalf("unexpected title %q", admit.Title)
	}
	if got := admit.Extensions["x-format"]; got != "short-date" {
		t.Fatalf("unexpected x-format %v", got)
	}
	if _, ok := schema.Properties["physician_notes"].Value.Extensions["x-optional"]; !ok {
		t.Fatalf("expected x-optional on physician_notes")
	}
}

func TestOpenAPIDocument(t *testing.T) {
	doc := OpenAPIDocument(Default(), "notegen", "1.0.0")
	if doc.Info.Title != "notegen" {
		t.Fatalf("unexpected title %q", doc.Info.Title)
	}
	if _, ok := doc.Components.Schemas[ValuesSchemaName]; !ok {
		t.Fatalf("expected %s component", ValuesSchemaName)
	}
}

func TestPayloadChecker(t *testing.T) {
	checker := NewPayloadChecker(Default())

	if err := checker.Check(map[string]any{"age": "42", "physician_notes": nil}); err != nil {
		t.Fatalf("expected payload to pass: %v", err)
	}
	if err := checker.Check(map[string]any{}); err != nil {
		t.Fatalf("missing members must pass: %v", err)
	}
	if err := checker.Check(map[string]any{"age": 42.0}); err == nil {
		t.Fatalf("expected numeric member to fail")
	}
}
