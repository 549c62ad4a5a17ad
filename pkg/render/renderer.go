// Package render exposes the interpolation builders behind a common Renderer
// interface so front ends can select one by name.
package render

import (
	"context"
)

// Renderer merges a template and serialises the built result (plain text,
// HTML markup, CSS, ...).
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, fragments []string, substitutions []any) ([]byte, error)
}
