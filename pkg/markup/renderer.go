package markup

import (
	"bytes"
	"context"
)

// Renderer exposes a Builder under the "html" renderer name.
type Renderer struct {
	Builder *Builder
}

// NewRenderer wraps a Builder configured with options.
func NewRenderer(options ...Option) *Renderer {
	return &Renderer{Builder: New(options...)}
}

func (r *Renderer) Name() string { return "html" }

func (r *Renderer) ContentType() string { return "text/html; charset=utf-8" }

// Render builds the fragment and serialises it back to markup.
func (r *Renderer) Render(ctx context.Context, fragments []string, substitutions []any) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	builder := r.Builder
	if builder == nil {
		builder = defaultBuilder
	}
	frag, err := builder.Build(fragments, substitutions...)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := frag.Render(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
