package interpolate

import (
	"io"
	"strings"

	"github.com/VanillaMaster/interpolate/pkg/stringify"
)

// Interpolate returns fragments[0] + text(substitutions[0]) + fragments[1] +
// ... + fragments[len(fragments)-1].
//
// Up to three substitutions are merged with a straight-line expression; larger
// counts go through a single pre-sized builder. Both paths produce the same
// output. Interpolate panics with an *ArityError when len(fragments) is not
// len(substitutions)+1.
func Interpolate(fragments []string, substitutions []any) string {
	if len(fragments) != len(substitutions)+1 {
		panic(newArityError(len(fragments), len(substitutions)))
	}

	switch len(substitutions) {
	case 0:
		return fragments[0]
	case 1:
		return fragments[0] +
			stringify.Text(substitutions[0]) +
			fragments[1]
	case 2:
		return fragments[0] +
			stringify.Text(substitutions[0]) +
			fragments[1] +
			stringify.Text(substitutions[1]) +
			fragments[2]
	case 3:
		return fragments[0] +
			stringify.Text(substitutions[0]) +
			fragments[1] +
			stringify.Text(substitutions[1]) +
			fragments[2] +
			stringify.Text(substitutions[2]) +
			fragments[3]
	default:
		return merge(fragments, substitutions)
	}
}

// Tag is the variadic form of Interpolate, matching the shape of a tagged
// template call site.
func Tag(fragments []string, substitutions ...any) string {
	return Interpolate(fragments, substitutions)
}

// merge is the general linear path. Substitutions are converted first so the
// builder can be sized once.
func merge(fragments []string, substitutions []any) string {
	texts := make([]string, len(substitutions))
	size := len(fragments[len(substitutions)])
	for i, sub := range substitutions {
		texts[i] = stringify.Text(sub)
		size += len(fragments[i]) + len(texts[i])
	}

	var sb strings.Builder
	sb.Grow(size)
	for i, text := range texts {
		sb.WriteString(fragments[i])
		sb.WriteString(text)
	}
	sb.WriteString(fragments[len(substitutions)])
	return sb.String()
}

// Write streams the merged template to w and returns the number of bytes
// written. Malformed input is reported as an *ArityError before anything is
// written; otherwise the first write error is returned.
func Write(w io.Writer, fragments []string, substitutions []any) (int, error) {
	if err := Validate(fragments, substitutions); err != nil {
		return 0, err
	}

	var n int
	for i, sub := range substitutions {
		c, err := io.WriteString(w, fragments[i])
		n += c
		if err != nil {
			return n, err
		}
		c, err = io.WriteString(w, stringify.Text(sub))
		n += c
		if err != nil {
			return n, err
		}
	}
	c, err := io.WriteString(w, fragments[len(substitutions)])
	return n + c, err
}
