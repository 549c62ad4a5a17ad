package render

import (
	"github.com/VanillaMaster/interpolate/pkg/markup"
	"github.com/VanillaMaster/interpolate/pkg/stylesheet"
)

// DefaultRenderer names the renderer front ends fall back to.
const DefaultRenderer = "text"

// NewDefaultRegistry returns a registry holding the text, html and css
// renderers. Markup options configure the html renderer.
func NewDefaultRegistry(markupOptions ...markup.Option) *Registry {
	r := NewRegistry()
	r.MustRegister(Text{})
	r.MustRegister(markup.NewRenderer(markupOptions...))
	r.MustRegister(stylesheet.Renderer{})
	return r
}
