package catalog

import (
	"fmt"
	"net/url"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Values maps a field id to its raw input. A missing key means the field is
// unset.
type Values map[string]string

// Clone returns a shallow copy of the values.
func (v Values) Clone() Values {
	out := make(Values, len(v))
	for key, value := range v {
		out[key] = value
	}
	return out
}

// Data converts the values into the generic map consumed by templates.
func (v Values) Data() map[string]any {
	out := make(map[string]any, len(v))
	for key, value := range v {
		out[key] = value
	}
	return out
}

// ParseValues decodes a YAML or JSON mapping of field id to scalar value.
// Scalars keep their literal text so dates and zero-padded numbers survive
// untouched; null entries are treated as unset.
func ParseValues(data []byte) (Values, error) {
	var raw map[string]yaml.Node
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("catalog: parse values: %w", err)
	}

	out := make(Values, len(raw))
	keys := make([]string, 0, len(raw))
	for key := range raw {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		node := raw[key]
		if node.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("catalog: value %q must be a scalar", key)
		}
		if node.Tag == "!!null" {
			continue
		}
		out[strings.TrimSpace(key)] = node.Value
	}
	return out, nil
}

// ValuesFromForm extracts the catalog fields from a posted form. Fields not
// present in the form stay unset.
func ValuesFromForm(form url.Values, fields []FieldSpec) Values {
	out := make(Values, len(fields))
	for _, field := range fields {
		if vals, ok := form[field.ID]; ok && len(vals) > 0 {
			out[field.ID] = vals[0]
		}
	}
	return out
}

// ValuesFromPayload converts a decoded JSON object into Values. Only string
// members are accepted; null members are treated as unset.
func ValuesFromPayload(payload map[string]any) (Values, error) {
	out := make(Values, len(payload))
	for key, value := range payload {
		switch typed := value.(type) {
		case nil:
			continue
		case string:
			out[key] = typed
		default:
			return nil, fmt.Errorf("catalog: value %q must be a string, got %T", key, value)
		}
	}
	return out, nil
}
