package tui

// OutputFormat controls how a completed session is serialized.
type OutputFormat string

const (
	// OutputFormatJSON emits the values, per-field errors and narrative.
	OutputFormatJSON OutputFormat = "json"
	// OutputFormatFormURLEncoded emits the raw values as a form body.
	OutputFormatFormURLEncoded OutputFormat = "form"
	// OutputFormatPrettyText emits the narrative, or the errors when the form
	// is invalid.
	OutputFormatPrettyText OutputFormat = "pretty"
)

// DefaultMaxAttempts bounds how often a single field is re-prompted.
const DefaultMaxAttempts = 3

// Theme captures optional message prefixes the renderer applies when
// printing feedback.
type Theme struct {
	InfoPrefix  string
	ErrorPrefix string
}

// Option configures the TUI renderer.
type Option func(*Renderer)

// WithPromptDriver overrides the prompt driver used by the renderer.
func WithPromptDriver(driver PromptDriver) Option {
	return func(r *Renderer) {
		if driver != nil {
			r.driver = driver
		}
	}
}

// WithOutputFormat selects the output serialization format.
func WithOutputFormat(format OutputFormat) Option {
	return func(r *Renderer) {
		if format != "" {
			r.outputFormat = format
		}
	}
}

// WithMaxAttempts sets how many times an invalid field is prompted before
// the session fails. Values below one are ignored.
func WithMaxAttempts(n int) Option {
	return func(r *Renderer) {
		if n > 0 {
			r.maxAttempts = n
		}
	}
}

// WithTheme applies optional message prefixes.
func WithTheme(theme Theme) Option {
	return func(r *Renderer) {
		r.theme = theme
	}
}
