// Package literal splits template-literal source text into the fragment and
// expression sequences an interpolation call site would produce.
//
//	lit, _ := literal.Parse("Hello ${name}, you have ${count} messages")
//	lit.Fragments()   // ["Hello ", ", you have ", " messages"]
//	lit.Expressions() // ["name", "count"]
//
// A placeholder is "${" followed by an expression and "}". A run of
// backslashes in front of "${" collapses pairwise into single backslashes; if
// one is left over the "${" is literal text. Backslashes elsewhere are kept as
// written, so `\${x}` is the text "${x}" and `\\${x}` is a backslash
// followed by a placeholder.
// Expressions are not evaluated; Bind resolves them as names, dotted paths or
// positional indexes.
package literal

import (
	"strings"

	"github.com/VanillaMaster/interpolate"
)

const (
	openPlaceholder  = "${"
	closePlaceholder = "}"
)

// Literal is a parsed template: len(Fragments()) == len(Expressions())+1.
type Literal struct {
	source      string
	fragments   []string
	expressions []string
}

// Parse splits src on ${...} placeholders.
func Parse(src string) (*Literal, error) {
	lit := &Literal{source: src}

	var current strings.Builder
	rest := src
	offset := 0
	for {
		idx := strings.Index(rest, openPlaceholder)
		if idx < 0 {
			current.WriteString(rest)
			break
		}
		text := strings.TrimRight(rest[:idx], `\`)
		slashes := idx - len(text)
		current.WriteString(text)
		current.WriteString(strings.Repeat(`\`, slashes/2))
		if slashes%2 == 1 {
			current.WriteString(openPlaceholder)
			rest = rest[idx+len(openPlaceholder):]
			offset += idx + len(openPlaceholder)
			continue
		}

		start := offset + idx
		body := rest[idx+len(openPlaceholder):]
		end := strings.Index(body, closePlaceholder)
		if end < 0 {
			return nil, &SyntaxError{Offset: start, Msg: "unterminated placeholder"}
		}
		expr := strings.TrimSpace(body[:end])
		if expr == "" {
			return nil, &SyntaxError{Offset: start, Msg: "empty placeholder"}
		}

		lit.fragments = append(lit.fragments, current.String())
		lit.expressions = append(lit.expressions, expr)
		current.Reset()

		consumed := idx + len(openPlaceholder) + end + len(closePlaceholder)
		rest = rest[consumed:]
		offset += consumed
	}
	lit.fragments = append(lit.fragments, current.String())
	return lit, nil
}

// MustParse is like Parse but panics on error.
func MustParse(src string) *Literal {
	lit, err := Parse(src)
	if err != nil {
		panic(err)
	}
	return lit
}

// Source returns the text the literal was parsed from.
func (l *Literal) Source() string {
	return l.source
}

// Fragments returns a copy of the fixed fragments.
func (l *Literal) Fragments() []string {
	return append([]string(nil), l.fragments...)
}

// Expressions returns a copy of the placeholder expressions in source order.
func (l *Literal) Expressions() []string {
	return append([]string(nil), l.expressions...)
}

// Execute binds the expressions and interpolates the result.
func (l *Literal) Execute(named map[string]any, positional []any) (string, error) {
	substitutions, err := l.Bind(named, positional)
	if err != nil {
		return "", err
	}
	return interpolate.Interpolate(l.fragments, substitutions), nil
}
