// Package form tracks the live state of one form session: the raw values,
// which fields the user has touched, and the validation result recomputed on
// every change. A State is not safe for concurrent use; create one per
// session or request.
package form

import (
	"fmt"

	"github.com/goliatone/go-notegen/pkg/catalog"
	"github.com/goliatone/go-notegen/pkg/validation"
)

// Option configures a State.
type Option func(*State)

// WithSanitizer overrides the input sanitizer. NoSanitize is the default:
// values are free text and every output escapes them.
func WithSanitizer(fn Sanitizer) Option {
	return func(s *State) {
		if fn != nil {
			s.sanitize = fn
		}
	}
}

// WithInitialValues seeds the state. Initial values define the baseline used
// by Dirty and restored by Reset.
func WithInitialValues(values catalog.Values) Option {
	return func(s *State) {
		s.initial = values.Clone()
	}
}

// State holds values, touched flags and the current validation result.
type State struct {
	schema   *validation.Schema
	sanitize Sanitizer
	initial  catalog.Values
	values   catalog.Values
	touched  map[string]bool
	result   validation.Result
}

// NewState creates a session bound to schema and validates the initial values.
func NewState(schema *validation.Schema, options ...Option) *State {
	s := &State{
		schema:   schema,
		sanitize: NoSanitize,
		initial:  catalog.Values{},
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(s)
	}
	s.Reset()
	return s
}

// Set stores a raw value for id and revalidates.
func (s *State) Set(id, raw string) error {
	if _, ok := s.schema.Rule(id); !ok {
		return fmt.Errorf("form: unknown field %q", id)
	}
	s.values[id] = s.sanitize(raw)
	s.revalidate()
	return nil
}

// SetAll stores every catalog value present in values. Unknown keys are
// ignored.
func (s *State) SetAll(values catalog.Values) {
	for _, field := range s.schema.Fields() {
		if raw, ok := values[field.ID]; ok {
			s.values[field.ID] = s.sanitize(raw)
		}
	}
	s.revalidate()
}

// Clear unsets id and revalidates.
func (s *State) Clear(id string) error {
	if _, ok := s.schema.Rule(id); !ok {
		return fmt.Errorf("form: unknown field %q", id)
	}
	delete(s.values, id)
	s.revalidate()
	return nil
}

// Touch marks id as visited, typically on blur.
func (s *State) Touch(id string) {
	if _, ok := s.schema.Rule(id); ok {
		s.touched[id] = true
	}
}

// TouchAll marks every field as visited, as a submit does.
func (s *State) TouchAll() {
	for _, field := range s.schema.Fields() {
		s.touched[field.ID] = true
	}
}

// Touched reports whether id has been visited.
func (s *State) Touched(id string) bool {
	return s.touched[id]
}

// Reset restores the initial values and clears touched flags.
func (s *State) Reset() {
	s.values = s.initial.Clone()
	s.touched = make(map[string]bool)
	s.revalidate()
}

// Fields returns the catalog the state was built from.
func (s *State) Fields() []catalog.FieldSpec {
	return s.schema.Fields()
}

// Values returns a copy of the current raw values.
func (s *State) Values() catalog.Values {
	return s.values.Clone()
}

// Value returns the raw value of id.
func (s *State) Value(id string) string {
	return s.values[id]
}

// Result returns the validation result for the current values.
func (s *State) Result() validation.Result {
	return s.result
}

// Valid reports whether every field passes. Touch state does not matter.
func (s *State) Valid() bool {
	return s.result.Valid
}

// Error returns the validation message for id regardless of touch state.
func (s *State) Error(id string) string {
	fr, ok := s.result.Field(id)
	if !ok || fr.Valid {
		return ""
	}
	return fr.Error
}

// VisibleError returns the message for id only once the field was touched.
func (s *State) VisibleError(id string) string {
	if !s.touched[id] {
		return ""
	}
	return s.Error(id)
}

// Dirty reports whether the values differ from the initial values.
func (s *State) Dirty() bool {
	if len(s.values) != len(s.initial) {
		return true
	}
	for key, value := range s.values {
		if initial, ok := s.initial[key]; !ok || initial != value {
			return true
		}
	}
	return false
}

func (s *State) revalidate() {
	s.result = s.schema.Validate(s.values)
}
