package narrative

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/aymerick/raymond/ast"
	"github.com/aymerick/raymond/parser"
)

var (
	identifierPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)
	parseErrorPattern = regexp.MustCompile(`^Parse error on line (\d+):\s*`)
)

// builtinHelpers are registered globally by the engine and would shadow a
// field of the same name.
var builtinHelpers = map[string]struct{}{
	"if": {}, "unless": {}, "with": {}, "each": {}, "log": {}, "lookup": {}, "equal": {},
}

// SyntaxError reports a malformed template.
type SyntaxError struct {
	Line int
	Msg  string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("narrative: line %d: %s", e.Line, e.Msg)
}

func syntaxErrorf(node ast.Node, format string, args ...any) *SyntaxError {
	return &SyntaxError{Line: node.Location().Line, Msg: fmt.Sprintf(format, args...)}
}

// wrapParseError converts a Handlebars parse failure into a SyntaxError.
func wrapParseError(err error) *SyntaxError {
	msg := err.Error()
	line := 0
	if m := parseErrorPattern.FindStringSubmatch(msg); m != nil {
		line, _ = strconv.Atoi(m[1])
		msg = msg[len(m[0]):]
	}
	if i := strings.IndexByte(msg, '\n'); i >= 0 {
		msg = msg[:i]
	}
	return &SyntaxError{Line: line, Msg: msg}
}

// inspect parses source and checks it against the restricted language:
// substitutions name a single identifier, blocks call a known helper with
// exactly one argument, and partials, else branches and block params are
// rejected. It returns the sorted set of field names the template reads.
func inspect(source string, helpers Helpers) ([]string, error) {
	program, err := parser.Parse(source)
	if err != nil {
		return nil, wrapParseError(err)
	}

	w := &walker{helpers: helpers, seen: make(map[string]struct{})}
	if err := w.program(program); err != nil {
		return nil, err
	}

	out := make([]string, 0, len(w.seen))
	for name := range w.seen {
		out = append(out, name)
	}
	sort.Strings(out)
	return out, nil
}

type walker struct {
	helpers Helpers
	seen    map[string]struct{}
}

func (w *walker) program(p *ast.Program) error {
	if p == nil {
		return nil
	}
	if len(p.BlockParams) > 0 {
		return syntaxErrorf(p, "block params are not supported")
	}
	for _, n := range p.Body {
		if err := w.statement(n); err != nil {
			return err
		}
	}
	return nil
}

func (w *walker) statement(n ast.Node) error {
	switch typed := n.(type) {
	case *ast.ContentStatement, *ast.CommentStatement:
		return nil
	case *ast.MustacheStatement:
		return w.mustache(typed)
	case *ast.BlockStatement:
		return w.block(typed)
	case *ast.PartialStatement:
		return syntaxErrorf(typed, "partials are not supported")
	default:
		return syntaxErrorf(n, "unsupported statement %s", n)
	}
}

func (w *walker) mustache(m *ast.MustacheStatement) error {
	expr := m.Expression
	path, ok := expr.Path.(*ast.PathExpression)
	if !ok {
		return syntaxErrorf(m, "literal %s cannot be substituted", expr.Path)
	}
	if _, isHelper := w.helpers[path.Original]; isHelper {
		return syntaxErrorf(m, "helper %q must be used as a block", path.Original)
	}
	if len(expr.Params) > 0 || expr.Hash != nil {
		return syntaxErrorf(m, "unknown helper %q", path.Original)
	}
	name, ok := fieldName(path)
	if !ok {
		return syntaxErrorf(m, "invalid variable name %q", path.Original)
	}
	if _, reserved := builtinHelpers[name]; reserved {
		return syntaxErrorf(m, "variable name %q is reserved", name)
	}
	w.seen[name] = struct{}{}
	return nil
}

func (w *walker) block(b *ast.BlockStatement) error {
	expr := b.Expression
	path, ok := expr.Path.(*ast.PathExpression)
	if !ok {
		return syntaxErrorf(b, "block must name a helper")
	}
	if _, known := w.helpers[path.Original]; !known {
		return syntaxErrorf(b, "unknown helper %q", path.Original)
	}
	if len(expr.Params) != 1 || expr.Hash != nil {
		return syntaxErrorf(b, "{{#%s}} takes exactly one argument", path.Original)
	}
	if b.Inverse != nil {
		return syntaxErrorf(b, "{{else}} is not supported in {{#%s}}", path.Original)
	}

	switch arg := expr.Params[0].(type) {
	case *ast.StringLiteral:
	case *ast.PathExpression:
		name, ok := fieldName(arg)
		if !ok {
			return syntaxErrorf(b, "invalid variable name %q", arg.Original)
		}
		if _, reserved := builtinHelpers[name]; reserved {
			return syntaxErrorf(b, "variable name %q is reserved", name)
		}
		w.seen[name] = struct{}{}
	default:
		return syntaxErrorf(b, "{{#%s}} argument must be a field name or a quoted literal", path.Original)
	}

	return w.program(b.Program)
}

func fieldName(path *ast.PathExpression) (string, bool) {
	if path.Data || path.Depth > 0 || len(path.Parts) != 1 {
		return "", false
	}
	name := path.Parts[0]
	if name != path.Original || !identifierPattern.MatchString(name) {
		return "", false
	}
	return name, true
}
