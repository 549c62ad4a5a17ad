// Package stringify converts arbitrary values to their canonical text form.
//
// The conversion mirrors a general purpose "stringify" operation: numbers
// render as decimal literals, booleans as true/false, nil as "null", the
// Undefined sentinel as "undefined", and slices or arrays as their elements
// joined with commas. Values that carry their own conversion protocol
// (Texter, fmt.Stringer or error) are asked for their text directly. Anything
// else falls back to the structural default produced by fmt.Sprint.
//
// Conversion methods are invoked directly rather than through the fmt
// package, so a panic raised by a value's own String or Text method reaches
// the caller unchanged.
package stringify
