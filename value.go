package template

import "io"

// Value produces a formatted number from one of the five distributions,
// transformed into [min, max] and optionally rendered as a decimal via a
// ratio.
type Value struct {
	Common
	format string
	ratio  *float64
}

func (v *Value) Generate(ctx *genCtx, contextValue int64, w io.Writer) (int, error) {
	raw := v.rawValue(contextValue)
	result := v.transform(raw)
	out := formatNumber(v.format, result, v.ratio)
	if v.save != "" {
		ctx.vars.Set(v.save, out)
	}
	n, err := io.WriteString(w, out)
	if err != nil {
		return n, writeError(v.id, v.name, err)
	}
	return n, nil
}
