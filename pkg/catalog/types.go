package catalog

import "strings"

// Format tags the semantic type of a field value.
type Format string

const (
	FormatString    Format = "string"
	FormatInteger   Format = "integer"
	FormatShortDate Format = "short-date"
)

// InputKind selects the input widget used to collect a field.
type InputKind string

const (
	KindText   InputKind = "text"
	KindSelect InputKind = "select"
)

// FieldSpec describes one input of the form. The ID doubles as the template
// variable name that receives the field value.
type FieldSpec struct {
	ID          string    `json:"id" yaml:"id" validate:"required,field_id"`
	Label       string    `json:"label" yaml:"label" validate:"required"`
	Kind        InputKind `json:"type,omitempty" yaml:"type,omitempty" validate:"omitempty,oneof=text select"`
	Format      Format    `json:"format,omitempty" yaml:"format,omitempty"`
	Optional    bool      `json:"optional,omitempty" yaml:"optional,omitempty"`
	Options     []string  `json:"options,omitempty" yaml:"options,omitempty" validate:"required_if=Kind select,dive,required"`
	Placeholder string    `json:"placeholder,omitempty" yaml:"placeholder,omitempty"`
	Lines       int       `json:"lines,omitempty" yaml:"lines,omitempty" validate:"gte=0"`
}

// EffectiveKind returns the input widget, defaulting to a text input.
func (f FieldSpec) EffectiveKind() InputKind {
	if f.Kind == "" {
		return KindText
	}
	return f.Kind
}

// EffectiveFormat returns the format tag with the string default applied.
// Unknown tags are returned untouched so the schema builder can reject them.
func (f FieldSpec) EffectiveFormat() Format {
	trimmed := Format(strings.TrimSpace(string(f.Format)))
	if trimmed == "" {
		return FormatString
	}
	return trimmed
}

// Multiline reports whether the field should be collected as a text area.
func (f FieldSpec) Multiline() bool {
	return f.EffectiveKind() == KindText && f.Lines > 1
}

// IDs returns the field identifiers in catalog order.
func IDs(fields []FieldSpec) []string {
	out := make([]string, 0, len(fields))
	for _, field := range fields {
		out = append(out, field.ID)
	}
	return out
}

// Lookup returns the field with the supplied id.
func Lookup(fields []FieldSpec, id string) (FieldSpec, bool) {
	for _, field := range fields {
		if field.ID == id {
			return field, true
		}
	}
	return FieldSpec{}, false
}
