package narrative

import (
	"strings"

	"github.com/aymerick/raymond"
)

// Helper renders a block. It receives the resolved argument and controls
// whether and how the block body is rendered.
type Helper func(block *Block) string

// Helpers maps helper names to implementations.
type Helpers map[string]Helper

// DefaultHelpers returns the switch/case pair. A new map is returned on every
// call.
func DefaultHelpers() Helpers {
	return Helpers{
		"switch": switchHelper,
		"case":   caseHelper,
	}
}

// Merge returns a copy of h with other applied on top.
func (h Helpers) Merge(other Helpers) Helpers {
	out := make(Helpers, len(h)+len(other))
	for name, fn := range h {
		out[name] = fn
	}
	for name, fn := range other {
		name = strings.TrimSpace(name)
		if name == "" || fn == nil {
			continue
		}
		out[name] = fn
	}
	return out
}

// register binds every helper to tpl only, so helpers never leak between
// templates.
func (h Helpers) register(tpl *raymond.Template) {
	bound := make(map[string]interface{}, len(h))
	for name, fn := range h {
		name, fn := name, fn
		bound[name] = func(arg interface{}, options *raymond.Options) raymond.SafeString {
			return raymond.SafeString(fn(&Block{name: name, arg: arg, options: options}))
		}
	}
	tpl.RegisterHelpers(bound)
}

const switchKey = "switch"

type discriminant struct {
	value string
	set   bool
}

func switchHelper(block *Block) string {
	return block.FnWith(switchKey, discriminant{value: block.ArgString(), set: block.ArgSet()})
}

func caseHelper(block *Block) string {
	raw, ok := block.Data(switchKey)
	if !ok {
		return ""
	}
	current, ok := raw.(discriminant)
	if !ok || !current.set || !block.ArgSet() {
		return ""
	}
	if current.value != block.ArgString() {
		return ""
	}
	return block.Fn()
}
