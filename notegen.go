// Package notegen wires the field catalog, the validation schema and the
// narrative template into a single Generator. Everything is built once in
// New; Generate only evaluates rules and renders.
package notegen

import (
	"fmt"

	"github.com/goliatone/go-notegen/pkg/catalog"
	"github.com/goliatone/go-notegen/pkg/narrative"
	"github.com/goliatone/go-notegen/pkg/validation"
)

// Option customises the generator configuration.
type Option func(*config)

type config struct {
	fields          []catalog.FieldSpec
	templateSource  string
	templateOptions []narrative.Option
}

// WithFields replaces the default discharge catalog.
func WithFields(fields []catalog.FieldSpec) Option {
	return func(cfg *config) {
		if fields != nil {
			cfg.fields = fields
		}
	}
}

// WithTemplateSource replaces the default discharge template.
func WithTemplateSource(source string) Option {
	return func(cfg *config) {
		if source != "" {
			cfg.templateSource = source
		}
	}
}

// WithTemplateOptions forwards options to narrative.Compile.
func WithTemplateOptions(options ...narrative.Option) Option {
	return func(cfg *config) {
		cfg.templateOptions = append(cfg.templateOptions, options...)
	}
}

// Generator validates field values and renders the note once they pass.
// It is immutable after New and safe for concurrent use.
type Generator struct {
	fields   []catalog.FieldSpec
	schema   *validation.Schema
	template *narrative.Template
}

// New validates the catalog, builds the schema, compiles the template and
// asserts that template variables and catalog ids agree. Any failure is a
// configuration error.
func New(options ...Option) (*Generator, error) {
	cfg := &config{
		fields:         catalog.Default(),
		templateSource: narrative.Discharge,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(cfg)
	}

	if err := catalog.Validate(cfg.fields); err != nil {
		return nil, fmt.Errorf("notegen: %w", err)
	}

	schema, err := validation.BuildSchema(cfg.fields)
	if err != nil {
		return nil, fmt.Errorf("notegen: build schema: %w", err)
	}

	tpl, err := narrative.Compile(cfg.templateSource, cfg.templateOptions...)
	if err != nil {
		return nil, fmt.Errorf("notegen: compile template: %w", err)
	}

	if err := narrative.CheckFields(tpl, catalog.IDs(cfg.fields)); err != nil {
		return nil, fmt.Errorf("notegen: %w", err)
	}

	return &Generator{
		fields:   append([]catalog.FieldSpec(nil), cfg.fields...),
		schema:   schema,
		template: tpl,
	}, nil
}

// Outcome is the result of evaluating one set of values.
type Outcome struct {
	Result    validation.Result `json:"result"`
	Narrative string            `json:"narrative,omitempty"`
	Rendered  bool              `json:"rendered"`
}

// Fields returns a copy of the catalog.
func (g *Generator) Fields() []catalog.FieldSpec {
	return append([]catalog.FieldSpec(nil), g.fields...)
}

// Schema returns the validation schema.
func (g *Generator) Schema() *validation.Schema { return g.schema }

// Template returns the compiled narrative template.
func (g *Generator) Template() *narrative.Template { return g.template }

// Validate evaluates every rule against values.
func (g *Generator) Validate(values catalog.Values) validation.Result {
	return g.schema.Validate(values)
}

// Generate validates values and, when every field passes, renders the note
// from the coerced values. The narrative is withheld otherwise.
func (g *Generator) Generate(values catalog.Values) Outcome {
	return g.FromResult(g.schema.Validate(values))
}

// FromResult renders the note for an existing validation result.
func (g *Generator) FromResult(result validation.Result) Outcome {
	out := Outcome{Result: result}
	if !result.Valid {
		return out
	}
	out.Narrative = g.template.Render(result.Values())
	out.Rendered = true
	return out
}
