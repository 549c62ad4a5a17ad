package markup

import (
	"io"
	"sync"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

var (
	contextOnce sync.Once
	contextNode *html.Node
	// parseMu serialises parses against the shared context element.
	parseMu sync.Mutex
)

func templateContext() *html.Node {
	contextOnce.Do(func() {
		contextNode = &html.Node{
			Type:     html.ElementNode,
			Data:     atom.Template.String(),
			DataAtom: atom.Template,
		}
	})
	return contextNode
}

func parseInContext(r io.Reader) ([]*html.Node, error) {
	ctx := templateContext()

	parseMu.Lock()
	defer parseMu.Unlock()
	return html.ParseFragment(r, ctx)
}
