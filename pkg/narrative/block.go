package narrative

import "github.com/aymerick/raymond"

// Block is handed to a Helper for one invocation.
type Block struct {
	name    string
	arg     interface{}
	options *raymond.Options
}

// Name returns the helper name.
func (b *Block) Name() string { return b.name }

// Arg returns the resolved argument: the literal for quoted arguments,
// otherwise the field value as formatted text (nil when unset).
func (b *Block) Arg() any {
	switch v := b.arg.(type) {
	case nil:
		return nil
	case raymond.SafeString:
		return string(v)
	default:
		return v
	}
}

// ArgSet reports whether the argument resolved to a value.
func (b *Block) ArgSet() bool {
	return b.arg != nil
}

// ArgString returns the argument as text, "" when unset.
func (b *Block) ArgString() string {
	if b.arg == nil {
		return ""
	}
	return raymond.Str(b.arg)
}

// Fn renders the block body with the current data frame.
func (b *Block) Fn() string {
	return b.options.Fn()
}

// FnWith renders the block body with key bound to value for nested helpers.
func (b *Block) FnWith(key string, value any) string {
	frame := b.options.NewDataFrame()
	frame.Set(key, value)
	return b.options.FnData(frame)
}

// Data looks up a value bound by an enclosing block.
func (b *Block) Data(key string) (any, bool) {
	value := b.options.DataFrame().Get(key)
	return value, value != nil
}
