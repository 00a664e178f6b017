package template

import (
	"io"
)

// TemplateRenderer is the contract page renderers depend on.
type TemplateRenderer interface {
	Render(name string, data any, out ...io.Writer) (string, error)
	RenderTemplate(name string, data any, out ...io.Writer) (string, error)
	RenderString(templateContent string, data any, out ...io.Writer) (string, error)
	GlobalContext(data any) error
}
