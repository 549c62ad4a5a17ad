// Package stylesheet compiles interpolated templates into stylesheet objects.
//
// CSS merges its arguments synchronously and compiles the text in the
// background, returning a Pending result. Compilation rejects text that does
// not tokenize or whose blocks do not balance, then builds a rule tree with
// github.com/aymerick/douceur.
package stylesheet
