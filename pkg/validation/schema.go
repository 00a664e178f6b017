package validation

import (
	"fmt"

	"github.com/goliatone/go-notegen/pkg/catalog"
)

// Schema holds one rule per catalog field, in catalog order. It is immutable
// after construction and safe for concurrent use.
type Schema struct {
	rules []Rule
	index map[string]int
}

// BuildSchema derives the rule set for the supplied fields. An unknown format
// tag is a configuration bug and fails the build with *UnknownFormatError.
func BuildSchema(fields []catalog.FieldSpec) (*Schema, error) {
	schema := &Schema{
		rules: make([]Rule, 0, len(fields)),
		index: make(map[string]int, len(fields)),
	}
	for _, field := range fields {
		if _, exists := schema.index[field.ID]; exists {
			return nil, fmt.Errorf("validation: duplicate field id %q", field.ID)
		}
		rule, err := newRule(field)
		if err != nil {
			return nil, err
		}
		schema.index[field.ID] = len(schema.rules)
		schema.rules = append(schema.rules, rule)
	}
	return schema, nil
}

// Rules returns the rules in catalog order.
func (s *Schema) Rules() []Rule {
	if s == nil {
		return nil
	}
	return append([]Rule(nil), s.rules...)
}

// Rule returns the rule for a field id.
func (s *Schema) Rule(id string) (Rule, bool) {
	if s == nil {
		return Rule{}, false
	}
	idx, ok := s.index[id]
	if !ok {
		return Rule{}, false
	}
	return s.rules[idx], true
}

// Fields returns the catalog entries backing the schema.
func (s *Schema) Fields() []catalog.FieldSpec {
	if s == nil {
		return nil
	}
	out := make([]catalog.FieldSpec, 0, len(s.rules))
	for _, rule := range s.rules {
		out = append(out, rule.field)
	}
	return out
}

// Validate evaluates every rule against values. Keys in values that do not
// belong to the catalog are ignored.
func (s *Schema) Validate(values catalog.Values) Result {
	result := Result{Valid: true}
	if s == nil {
		return result
	}

	result.Fields = make([]FieldResult, 0, len(s.rules))
	for _, rule := range s.rules {
		raw, set := values[rule.field.ID]
		fr := rule.Check(raw, set)
		if !fr.Valid {
			result.Valid = false
		}
		result.Fields = append(result.Fields, fr)
	}
	return result
}

// ValidateField evaluates a single field. The boolean is false for ids
// outside the catalog.
func (s *Schema) ValidateField(id, raw string) (FieldResult, bool) {
	rule, ok := s.Rule(id)
	if !ok {
		return FieldResult{}, false
	}
	return rule.Check(raw, true), true
}
