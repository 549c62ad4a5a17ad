// Package interpolate merges a literal template, an ordered sequence of fixed
// fragments, with an ordered sequence of substitution values.
//
//	interpolate.Tag([]string{"Lorem ", " dolor"}, "ipsum") // "Lorem ipsum dolor"
//
// A well formed template has exactly one more fragment than substitutions.
// Substitutions are converted with stringify.Text, so numbers, booleans, nil
// and slices render the same way everywhere in the module. Template text is
// treated as opaque: nothing is parsed, escaped or cached.
//
// The markup and stylesheet builders in pkg/markup and pkg/stylesheet feed the
// merged string into an HTML fragment parser and a CSS compiler respectively.
package interpolate
