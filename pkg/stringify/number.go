package stringify

import (
	"math"
	"strconv"
	"strings"
)

// Decimal notation is used for magnitudes in [decimalMin, decimalMax);
// everything else switches to exponent notation.
const (
	decimalMin = 1e-6
	decimalMax = 1e21
)

// FormatNumber renders f as a number literal: NaN, Infinity and -Infinity for
// the special values, integral values without a fraction, and exponent
// notation such as 1e+21 or 1.5e-7 outside the decimal range.
func FormatNumber(f float64) string {
	return formatFloat(f, 64)
}

func formatFloat(f float64, bitSize int) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		return "0"
	}

	abs := math.Abs(f)
	if abs >= decimalMin && abs < decimalMax {
		return strconv.FormatFloat(f, 'f', -1, bitSize)
	}
	return trimExponent(strconv.FormatFloat(f, 'e', -1, bitSize))
}

// trimExponent drops the zero padding strconv puts on exponents (1e-07).
func trimExponent(s string) string {
	idx := strings.IndexByte(s, 'e')
	if idx < 0 || idx+2 >= len(s) {
		return s
	}
	mantissa, sign, digits := s[:idx], s[idx+1], strings.TrimLeft(s[idx+2:], "0")
	if digits == "" {
		digits = "0"
	}
	return mantissa + "e" + string(sign) + digits
}
