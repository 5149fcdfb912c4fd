package template

import (
	"strconv"
	"strings"
)

// expandDollarInt resolves a `$`-prefixed integer parameter: `$RANDOM`
// expands to a fresh uniform integer in [0, DefaultMax), `$ZIPF` to a
// fresh Zipf draw, and `$NAME` looks up a variable, falling back to
// fallback if unset or unparsable. Non-`$`-prefixed values are parsed
// directly, falling back to the default on parse failure.
func expandDollarInt(vars *VariablesTable, raw string, fallback int64) int64 {
	if !strings.HasPrefix(raw, "$") {
		v, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
		if err != nil {
			return fallback
		}
		return v
	}
	switch strings.ToUpper(raw) {
	case "$RANDOM":
		return uniformInt(newUniform(""), DefaultMax)
	case "$ZIPF":
		return NewZipf(DefaultZipf, defaultZipfSkew).Next()
	default:
		name := strings.TrimPrefix(raw, "$")
		if vars == nil {
			return fallback
		}
		val, ok := vars.Lookup(name)
		if !ok {
			return fallback
		}
		v, err := strconv.ParseInt(strings.TrimSpace(val), 10, 64)
		if err != nil {
			return fallback
		}
		return v
	}
}
