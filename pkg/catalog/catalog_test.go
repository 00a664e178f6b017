package catalog

import (
	"net/url"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"
)

func TestDefaultCatalogIsValid(t *testing.T) {
	fields := Default()
	if err := Validate(fields); err != nil {
		t.Fatalf("default catalog: %v", err)
	}

	want := []string{
		"gender", "age", "admit", "discharge", "symptoms", "history",
		"labs", "physician_notes", "admission_hp", "creatine",
	}
	if diff := cmp.Diff(want, IDs(fields)); diff != "" {
		t.Fatalf("ids mismatch (-want +got):\n%s", diff)
	}

	notes, ok := Lookup(fields, "physician_notes")
	if !ok || !notes.Optional {
		t.Fatalf("expected physician_notes to be optional")
	}
	symptoms, _ := Lookup(fields, "symptoms")
	if !symptoms.Multiline() {
		t.Fatalf("expected symptoms to be multiline")
	}
}

func TestDefaultReturnsFreshSlice(t *testing.T) {
	first := Default()
	first[0].Options[0] = "changed"
	if Default()[0].Options[0] != "Male" {
		t.Fatalf("Default must not share option slices")
	}
}

func TestValidateRejectsBadCatalogs(t *testing.T) {
	tests := []struct {
		name   string
		fields []FieldSpec
		want   string
	}{
		{
			name:   "empty",
			fields: nil,
			want:   "no fields",
		},
		{
			name: "duplicate id",
			fields: []FieldSpec{
				{ID: "age", Label: "Age"},
				{ID: "age", Label: "Again"},
			},
			want: `duplicate id "age"`,
		},
		{
			name:   "missing label",
			fields: []FieldSpec{{ID: "age"}},
			want:   "label is required",
		},
		{
			name:   "bad identifier",
			fields: []FieldSpec{{ID: "first name", Label: "Name"}},
			want:   "id must be",
		},
		{
			name:   "select without options",
			fields: []FieldSpec{{ID: "gender", Label: "Gender", Kind: KindSelect}},
			want:   "select fields require options",
		},
		{
			name:   "unknown input type",
			fields: []FieldSpec{{ID: "gender", Label: "Gender", Kind: "radio"}},
			want:   "unknown input type",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.fields)
			if err == nil {
				t.Fatalf("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("expected %q in %q", tt.want, err.Error())
			}
		})
	}
}

func TestValidateLeavesFormatToSchemaBuilder(t *testing.T) {
	fields := []FieldSpec{{ID: "age", Label: "Age", Format: "decimal"}}
	if err := Validate(fields); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestLoadFS(t *testing.T) {
	fsys := fstest.MapFS{
		"catalog.yaml": {Data: []byte(`
fields:
  - id: gender
    label: Patient Gender
    type: select
    options: [Male, Female]
  - id: age
    label: " Patient Age "
    format: integer
  - id: physician_notes
    label: Physician Noted
    optional: true
`)},
		"catalog.json": {Data: []byte(`{"fields":[{"id":"admit","label":"Admit Date","format":"short-date","placeholder":"mm/dd/yyyy"}]}`)},
	}

	fields, err := LoadFS(fsys, "catalog.yaml")
	if err != nil {
		t.Fatalf("load yaml: %v", err)
	}
	want := []FieldSpec{
		{ID: "gender", Label: "Patient Gender", Kind: KindSelect, Options: []string{"Male", "Female"}},
		{ID: "age", Label: "Patient Age", Format: FormatInteger},
		{ID: "physician_notes", Label: "Physician Noted", Optional: true},
	}
	if diff := cmp.Diff(want, fields); diff != "" {
		t.Fatalf("yaml catalog mismatch (-want +got):\n%s", diff)
	}

	fields, err = LoadFS(fsys, "catalog.json")
	if err != nil {
		t.Fatalf("load json: %v", err)
	}
	if len(fields) != 1 || fields[0].EffectiveFormat() != FormatShortDate {
		t.Fatalf("unexpected json catalog: %#v", fields)
	}
}

func TestLoadFSErrors(t *testing.T) {
	fsys := fstest.MapFS{
		"empty.yaml": {Data: []byte("  ")},
		"dup.yaml":   {Data: []byte("fields:\n  - {id: a, label: A}\n  - {id: a, label: B}\n")},
	}
	if _, err := LoadFS(fsys, "missing.yaml"); err == nil {
		t.Fatalf("expected error for missing file")
	}
	if _, err := LoadFS(fsys, "empty.yaml"); err == nil {
		t.Fatalf("expected error for empty file")
	}
	if _, err := LoadFS(fsys, "dup.yaml"); err == nil || !strings.Contains(err.Error(), "duplicate") {
		t.Fatalf("expected duplicate id error, got %v", err)
	}
}

func TestParseValuesKeepsLiteralText(t *testing.T) {
	values, err := ParseValues([]byte(`
gender: Female
age: 068
admit: 2024-03-15
discharge: "01/10/2024"
physician_notes: ~
`))
	if err != nil {
		t.Fatalf("parse values: %v", err)
	}
	want := Values{
		"gender":    "Female",
		"age":       "068",
		"admit":     "2024-03-15",
		"discharge": "01/10/2024",
	}
	if diff := cmp.Diff(want, values); diff != "" {
		t.Fatalf("values mismatch (-want +got):\n%s", diff)
	}

	if _, err := ParseValues([]byte("symptoms: [a, b]\n")); err == nil {
		t.Fatalf("expected error for non-scalar value")
	}
}

func TestValuesFromForm(t *testing.T) {
	form := url.Values{
		"age":     {"42"},
		"unknown": {"ignored"},
		"labs":    {""},
	}
	got := ValuesFromForm(form, Default())
	want := Values{"age": "42", "labs": ""}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("form values mismatch (-want +got):\n%s", diff)
	}
}

func TestValuesFromPayload(t *testing.T) {
	got, err := ValuesFromPayload(map[string]any{"age": "42", "labs": nil})
	if err != nil {
		t.Fatalf("payload: %v", err)
	}
	if diff := cmp.Diff(Values{"age": "42"}, got); diff != "" {
		t.Fatalf("payload mismatch (-want +got):\n%s", diff)
	}
	if _, err := ValuesFromPayload(map[string]any{"age": 42.0}); err == nil {
		t.Fatalf("expected error for numeric member")
	}
}

func TestValuesCloneAndData(t *testing.T) {
	values := Values{"age": "42"}
	clone := values.Clone()
	clone["age"] = "7"
	if values["age"] != "42" {
		t.Fatalf("clone must not alias the original")
	}
	if got := values.Data()["age"]; got != "42" {
		t.Fatalf("unexpected data value %v", got)
	}
}
