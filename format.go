package template

import (
	"fmt"
	"strconv"
	"strings"
)

// formatNumber renders raw according to a decimal-format pattern like
// "#0" or "#0.00": the integer part is zero-padded
// to the number of '0' characters present. If ratio is set, the value is
// first multiplied by it and rendered with as many decimal places as the
// pattern's fractional part has (two when the pattern has none). An empty
// pattern defaults to "#0".
func formatNumber(pattern string, raw int64, ratio *float64) string {
	if pattern == "" {
		pattern = "#0"
	}
	intPart, fracPart, hasFrac := strings.Cut(pattern, ".")
	minWidth := strings.Count(intPart, "0")
	if minWidth == 0 {
		minWidth = 1
	}

	if ratio != nil {
		places := len(fracPart)
		if !hasFrac {
			places = 2
		}
		val := float64(raw) * (*ratio)
		s := strconv.FormatFloat(val, 'f', places, 64)
		return padIntegerPart(s, minWidth)
	}

	return fmt.Sprintf("%0*d", minWidth, raw)
}

// padIntegerPart left-pads the integer portion of a decimal string (which
// may be negative) to minWidth digits without disturbing the fractional
// part.
func padIntegerPart(s string, minWidth int) string {
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	intPart, rest, hasDot := strings.Cut(s, ".")
	for len(intPart) < minWidth {
		intPart = "0" + intPart
	}
	out := intPart
	if hasDot {
		out += "." + rest
	}
	if neg {
		out = "-" + out
	}
	return out
}
