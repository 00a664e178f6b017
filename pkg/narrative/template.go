package narrative

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/aymerick/raymond"
)

// DateLayout formats time.Time values in rendered output.
const DateLayout = "Mon Jan 02 2006"

// Escaping selects how {{name}} substitutions are written. {{{name}}} is
// never escaped.
type Escaping int

const (
	// EscapeNone writes values untouched; the default for plain-text output.
	EscapeNone Escaping = iota
	// EscapeHTML escapes values for HTML surfaces.
	EscapeHTML
)

// Formatter converts a value into its textual form.
type Formatter func(any) string

// Option configures Compile.
type Option func(*config)

type config struct {
	helpers   Helpers
	escaping  Escaping
	formatter Formatter
}

// WithHelpers replaces the helper set. Pass DefaultHelpers().Merge(extra) to
// keep switch/case alongside custom helpers.
func WithHelpers(helpers Helpers) Option {
	return func(cfg *config) {
		if helpers != nil {
			cfg.helpers = helpers
		}
	}
}

// WithEscaping sets the escaping applied to {{name}} substitutions.
func WithEscaping(mode Escaping) Option {
	return func(cfg *config) {
		cfg.escaping = mode
	}
}

// WithFormatter overrides value formatting.
func WithFormatter(fn Formatter) Option {
	return func(cfg *config) {
		if fn != nil {
			cfg.formatter = fn
		}
	}
}

// Template is a compiled narrative template.
type Template struct {
	tpl       *raymond.Template
	escaping  Escaping
	formatter Formatter
	variables []string
}

// Compile parses source once and returns an immutable template. Helpers are
// registered on this template only.
func Compile(source string, options ...Option) (*Template, error) {
	cfg := config{
		helpers:   DefaultHelpers(),
		escaping:  EscapeNone,
		formatter: FormatValue,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	helpers := Helpers{}.Merge(cfg.helpers)
	variables, err := inspect(source, helpers)
	if err != nil {
		return nil, err
	}

	tpl, err := raymond.Parse(source)
	if err != nil {
		return nil, wrapParseError(err)
	}
	helpers.register(tpl)

	return &Template{
		tpl:       tpl,
		escaping:  cfg.escaping,
		formatter: cfg.formatter,
		variables: variables,
	}, nil
}

// MustCompile is like Compile but panics on error. Intended for package-level
// templates known to be valid.
func MustCompile(source string, options ...Option) *Template {
	tpl, err := Compile(source, options...)
	if err != nil {
		panic(err)
	}
	return tpl
}

// Variables returns the sorted set of names the template reads, including
// helper arguments.
func (t *Template) Variables() []string {
	if t == nil {
		return nil
	}
	return append([]string(nil), t.variables...)
}

// Render substitutes data into the template. Missing names render as empty
// text and the same data yields the same output. Render returns "" only when
// a custom helper fails; Execute reports that error.
func (t *Template) Render(data map[string]any) string {
	out, err := t.exec(data)
	if err != nil {
		return ""
	}
	return out
}

// Execute renders into w.
func (t *Template) Execute(w io.Writer, data map[string]any) error {
	out, err := t.exec(data)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, out)
	return err
}

// Missing lists the template variables that are absent or nil in data.
func (t *Template) Missing(data map[string]any) []string {
	if t == nil {
		return nil
	}
	var out []string
	for _, name := range t.variables {
		if value, ok := data[name]; !ok || value == nil {
			out = append(out, name)
		}
	}
	return out
}

func (t *Template) exec(data map[string]any) (string, error) {
	if t == nil || t.tpl == nil {
		return "", fmt.Errorf("narrative: template is nil")
	}
	out, err := t.tpl.Exec(t.context(data))
	if err != nil {
		return "", fmt.Errorf("narrative: render: %w", err)
	}
	return out, nil
}

// context formats every referenced value up front. Unset values are left out
// so helpers see them as unset; with EscapeNone values are marked safe so the
// engine writes them verbatim.
func (t *Template) context(data map[string]any) map[string]interface{} {
	ctx := make(map[string]interface{}, len(t.variables))
	for _, name := range t.variables {
		value, ok := data[name]
		if !ok || value == nil {
			continue
		}
		text := t.formatter(value)
		if t.escaping == EscapeNone {
			ctx[name] = raymond.SafeString(text)
			continue
		}
		ctx[name] = text
	}
	return ctx
}

// FormatValue is the default Formatter. Dates use DateLayout, nil renders as
// empty text.
func FormatValue(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case time.Time:
		return v.Format(DateLayout)
	case int64:
		return strconv.FormatInt(v, 10)
	case int:
		return strconv.Itoa(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}
