package validation

// FieldResult is the outcome of one rule. Value holds the coerced input:
// a string, an int64, or a time.Time (InvalidDate on a failed parse).
type FieldResult struct {
	ID    string `json:"id"`
	Valid bool   `json:"valid"`
	Error string `json:"error,omitempty"`
	Value any    `json:"-"`
}

// Result aggregates field outcomes in catalog order.
type Result struct {
	Fields []FieldResult `json:"fields"`
	Valid  bool          `json:"valid"`
}

// Field returns the outcome for an id.
func (r Result) Field(id string) (FieldResult, bool) {
	for _, field := range r.Fields {
		if field.ID == id {
			return field, true
		}
	}
	return FieldResult{}, false
}

// Errors maps each invalid field id to its message.
func (r Result) Errors() map[string]string {
	out := make(map[string]string)
	for _, field := range r.Fields {
		if !field.Valid {
			out[field.ID] = field.Error
		}
	}
	return out
}

// Values returns the coerced values of the valid fields. Optional fields left
// empty are omitted.
func (r Result) Values() map[string]any {
	out := make(map[string]any, len(r.Fields))
	for _, field := range r.Fields {
		if !field.Valid || field.Value == nil {
			continue
		}
		out[field.ID] = field.Value
	}
	return out
}
