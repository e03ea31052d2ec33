package helpers

import (
	"math"
	"strconv"
	"strings"
)

// This implements "Number::toString" from the ECMAScript specification
// (https://tc39.es/ecma262/#sec-numeric-types-number-tostring) for radix 10.
// Go's shortest round-trip formatting picks the same digits, only the layout
// around the decimal point and the exponent differ.
func NumberToString(value float64) string {
	switch {
	case math.IsNaN(value):
		return "NaN"
	case value == 0:
		// This also covers negative zero
		return "0"
	case math.IsInf(value, 1):
		return "Infinity"
	case math.IsInf(value, -1):
		return "-Infinity"
	case value < 0:
		return "-" + NumberToString(-value)
	}

	// "d.ddddde±x" with the minimal number of digits
	text := strconv.FormatFloat(value, 'e', -1, 64)
	e := strings.IndexByte(text, 'e')
	digits := strings.Replace(text[:e], ".", "", 1)
	exponent, _ := strconv.Atoi(text[e+1:])
	k := len(digits)
	n := exponent + 1

	switch {
	case k <= n && n <= 21:
		return digits + strings.Repeat("0", n-k)

	case 0 < n && n <= 21:
		return digits[:n] + "." + digits[n:]

	case -6 < n && n <= 0:
		return "0." + strings.Repeat("0", -n) + digits
	}

	sign := "+"
	if n-1 < 0 {
		sign = "-"
	}
	exp := strconv.Itoa(abs(n - 1))
	if k == 1 {
		return digits + "e" + sign + exp
	}
	return digits[:1] + "." + digits[1:] + "e" + sign + exp
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
