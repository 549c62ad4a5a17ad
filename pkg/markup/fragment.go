package markup

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// Fragment is a detached tree of parsed nodes owned by the caller. Its root
// is a synthetic document node whose children are the top-level nodes of the
// parsed markup.
type Fragment struct {
	root *html.Node
}

func newFragment(nodes []*html.Node) *Fragment {
	root := &html.Node{Type: html.DocumentNode}
	for _, n := range nodes {
		root.AppendChild(n)
	}
	return &Fragment{root: root}
}

// Root returns the synthetic document node holding the fragment.
func (f *Fragment) Root() *html.Node {
	return f.root
}

// Nodes returns the top-level nodes in document order.
func (f *Fragment) Nodes() []*html.Node {
	var out []*html.Node
	for c := f.root.FirstChild; c != nil; c = c.NextSibling {
		out = append(out, c)
	}
	return out
}

// Len returns the number of top-level nodes.
func (f *Fragment) Len() int {
	n := 0
	for c := f.root.FirstChild; c != nil; c = c.NextSibling {
		n++
	}
	return n
}

// Elements returns the top-level element nodes, skipping text and comments.
func (f *Fragment) Elements() []*html.Node {
	var out []*html.Node
	for c := f.root.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			out = append(out, c)
		}
	}
	return out
}

// TextContent concatenates every descendant text node.
func (f *Fragment) TextContent() string {
	var sb strings.Builder
	collectText(&sb, f.root)
	return sb.String()
}

func collectText(sb *strings.Builder, n *html.Node) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case html.TextNode:
			sb.WriteString(c.Data)
		case html.ElementNode, html.DocumentNode:
			collectText(sb, c)
		}
	}
}

// Render serialises the top-level nodes to w.
func (f *Fragment) Render(w io.Writer) error {
	for c := f.root.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(w, c); err != nil {
			return fmt.Errorf("markup: render: %w", err)
		}
	}
	return nil
}

// String returns the serialised fragment.
func (f *Fragment) String() string {
	var sb strings.Builder
	if err := f.Render(&sb); err != nil {
		return ""
	}
	return sb.String()
}
