// Package markup builds detached HTML fragments from interpolated templates.
//
// HTML merges its arguments with the interpolate package and parses the
// result the way a <template> element parses its innerHTML. The parse uses a
// single process-wide context element that is created on first use and never
// handed out. Malformed markup is recovered best-effort by the HTML parser
// rather than rejected.
package markup
