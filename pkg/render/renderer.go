// Package render describes the page view model shared by the note renderers
// and the contract they implement.
package render

import (
	"context"
)

// Renderer converts a Page into a byte representation (HTML, plain text).
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, page Page, options RenderOptions) ([]byte, error)
}
