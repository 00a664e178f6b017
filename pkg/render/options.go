package render

// RenderOptions describe per-request data that renderers can use to customise
// their output without changing the page itself.
type RenderOptions struct {
	// Title overrides the document title. Renderers fall back to their own
	// default when empty.
	Title string
	// Action is the form submission target. Defaults to "/".
	Action string
}

// ActionOrDefault returns the configured action or "/".
func (o RenderOptions) ActionOrDefault() string {
	if o.Action == "" {
		return "/"
	}
	return o.Action
}
