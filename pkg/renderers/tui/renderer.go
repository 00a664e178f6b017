// Package tui fills a note form interactively in the terminal. Prompts go
// through a PromptDriver (survey by default) and every answer is run through
// the same validation schema the HTTP form uses.
package tui

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/goliatone/go-notegen"
	"github.com/goliatone/go-notegen/pkg/catalog"
	"github.com/goliatone/go-notegen/pkg/form"
	"github.com/goliatone/go-notegen/pkg/validation"
)

// Renderer drives a prompt session and serializes the outcome.
type Renderer struct {
	driver       PromptDriver
	outputFormat OutputFormat
	maxAttempts  int
	theme        Theme
}

// New constructs a TUI renderer with defaults (survey driver, JSON output).
func New(options ...Option) (*Renderer, error) {
	r := &Renderer{
		driver:       newSurveyDriver(),
		outputFormat: OutputFormatJSON,
		maxAttempts:  DefaultMaxAttempts,
		theme:        Theme{ErrorPrefix: "! "},
	}

	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}

	switch r.outputFormat {
	case OutputFormatJSON, OutputFormatFormURLEncoded, OutputFormatPrettyText:
	default:
		return nil, fmt.Errorf("tui: unsupported output format %q", r.outputFormat)
	}
	return r, nil
}

// Name reports the renderer identifier.
func (r *Renderer) Name() string {
	return "tui"
}

// ContentType reports the serialization format used by Render.
func (r *Renderer) ContentType() string {
	switch r.outputFormat {
	case OutputFormatFormURLEncoded:
		return "application/x-www-form-urlencoded"
	case OutputFormatPrettyText:
		return "text/plain"
	default:
		return "application/json"
	}
}

// Render prompts for every field of gen's catalog, starting from prefill,
// and serializes the resulting outcome.
func (r *Renderer) Render(ctx context.Context, gen *notegen.Generator, prefill catalog.Values) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("tui: context is required")
	}
	if gen == nil {
		return nil, errors.New("tui: generator is required")
	}

	state := form.NewState(gen.Schema(), form.WithInitialValues(prefill))
	if err := r.Fill(ctx, gen.Schema(), state); err != nil {
		return nil, err
	}

	outcome := gen.FromResult(state.Result())
	return r.serialize(state, outcome)
}

// Fill prompts for each field in catalog order and stores the answers in
// state. A field is re-prompted while invalid, up to the attempt limit.
func (r *Renderer) Fill(ctx context.Context, schema *validation.Schema, state *form.State) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if r.driver == nil {
		return errors.New("tui: prompt driver is nil")
	}

	for _, rule := range schema.Rules() {
		if err := r.promptField(ctx, rule, state); err != nil {
			return err
		}
	}
	state.TouchAll()
	return nil
}

func (r *Renderer) promptField(ctx context.Context, rule validation.Rule, state *form.State) error {
	field := rule.Field()
	for attempt := 0; attempt < r.maxAttempts; attempt++ {
		raw, err := r.ask(ctx, rule, state.Value(field.ID))
		if err != nil {
			return err
		}
		if err := state.Set(field.ID, raw); err != nil {
			return err
		}
		state.Touch(field.ID)

		msg := state.VisibleError(field.ID)
		if msg == "" {
			return nil
		}
		if err := r.driver.Info(ctx, fmt.Sprintf("%s%s: %s", r.theme.ErrorPrefix, field.Label, msg)); err != nil {
			return err
		}
	}
	return fmt.Errorf("%w: %s", ErrTooManyAttempts, field.ID)
}

func (r *Renderer) ask(ctx context.Context, rule validation.Rule, current string) (string, error) {
	field := rule.Field()
	message := displayLabel(field)
	help := displayHelp(field)

	switch {
	case field.EffectiveKind() == catalog.KindSelect:
		idx, err := r.driver.Select(ctx, SelectConfig{
			Message:      message,
			Options:      field.Options,
			DefaultIndex: indexOf(field.Options, current),
			Help:         help,
		})
		if err != nil {
			return "", err
		}
		if idx < 0 || idx >= len(field.Options) {
			return "", nil
		}
		return field.Options[idx], nil
	case field.Multiline():
		return r.driver.TextArea(ctx, TextAreaConfig{
			Message:   message,
			Default:   current,
			Help:      help,
			Validator: rule.Validator(),
		})
	default:
		return r.driver.Input(ctx, InputConfig{
			Message:   message,
			Default:   current,
			Help:      help,
			Validator: rule.Validator(),
		})
	}
}

type jsonOutput struct {
	Values    catalog.Values    `json:"values"`
	Valid     bool              `json:"valid"`
	Errors    map[string]string `json:"errors,omitempty"`
	Narrative string            `json:"narrative,omitempty"`
}

func (r *Renderer) serialize(state *form.State, outcome notegen.Outcome) ([]byte, error) {
	switch r.outputFormat {
	case OutputFormatFormURLEncoded:
		return []byte(flattenForm(state.Values())), nil
	case OutputFormatPrettyText:
		return []byte(prettyPrint(state, outcome)), nil
	default:
		errs := outcome.Result.Errors()
		if len(errs) == 0 {
			errs = nil
		}
		return json.MarshalIndent(jsonOutput{
			Values:    state.Values(),
			Valid:     outcome.Result.Valid,
			Errors:    errs,
			Narrative: outcome.Narrative,
		}, "", "  ")
	}
}

func flattenForm(values catalog.Values) string {
	body := url.Values{}
	for key, value := range values {
		body.Set(key, value)
	}
	return body.Encode()
}

func prettyPrint(state *form.State, outcome notegen.Outcome) string {
	if outcome.Rendered {
		return outcome.Narrative
	}
	var b strings.Builder
	for _, field := range state.Fields() {
		if msg := state.Error(field.ID); msg != "" {
			fmt.Fprintf(&b, "%s: %s\n", field.Label, msg)
		}
	}
	return b.String()
}

func displayLabel(field catalog.FieldSpec) string {
	label := field.Label
	if label == "" {
		label = field.ID
	}
	if field.Optional {
		label += " (optional)"
	}
	return label
}

func displayHelp(field catalog.FieldSpec) string {
	if field.Placeholder != "" {
		return field.Placeholder
	}
	switch field.EffectiveFormat() {
	case catalog.FormatInteger:
		return "a positive whole number"
	case catalog.FormatShortDate:
		return "mm/dd/yyyy"
	default:
		return ""
	}
}
