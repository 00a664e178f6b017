package catalog

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

type documentFile struct {
	Fields []FieldSpec `json:"fields" yaml:"fields"`
}

// LoadFile reads a catalog document from disk.
func LoadFile(path string) ([]FieldSpec, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return nil, fmt.Errorf("catalog: file path is required")
	}
	return LoadFS(os.DirFS(filepath.Dir(trimmed)), filepath.Base(trimmed))
}

// LoadFS reads a catalog document from the provided filesystem.
func LoadFS(fsys fs.FS, name string) ([]FieldSpec, error) {
	if fsys == nil {
		return nil, fmt.Errorf("catalog: filesystem is nil")
	}
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("catalog: read %s: %w", name, err)
	}
	return Parse(data, name)
}

// Parse decodes a JSON or YAML catalog document and validates its structure.
func Parse(data []byte, source string) ([]FieldSpec, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, fmt.Errorf("catalog: file %s is empty", source)
	}

	var doc documentFile
	if err := json.Unmarshal(data, &doc); err != nil {
		doc = documentFile{}
		if yerr := yaml.Unmarshal(data, &doc); yerr != nil {
			return nil, fmt.Errorf("catalog: parse %s: invalid JSON or YAML: %w", source, yerr)
		}
	}

	fields := normaliseFields(doc.Fields)
	if err := Validate(fields); err != nil {
		return nil, fmt.Errorf("catalog: %s: %w", source, err)
	}
	return fields, nil
}

func normaliseFields(in []FieldSpec) []FieldSpec {
	out := make([]FieldSpec, 0, len(in))
	for _, field := range in {
		field.ID = strings.TrimSpace(field.ID)
		field.Label = strings.TrimSpace(field.Label)
		field.Kind = InputKind(strings.ToLower(strings.TrimSpace(string(field.Kind))))
		field.Format = Format(strings.TrimSpace(string(field.Format)))
		if len(field.Options) > 0 {
			field.Options = append([]string(nil), field.Options...)
		}
		out = append(out, field)
	}
	return out
}
