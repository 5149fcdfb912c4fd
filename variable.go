package template

import (
	"io"
	"strconv"
)

// Variable reads (and optionally increments) a named entry in the
// variables table ("declare/read with name" mode). The bulk-load-with-
// source mode is consumed entirely at parse time by the parser and never
// produces a tree node.
type Variable struct {
	id           int
	name         string
	varName      string
	defaultVal   string
	hasIncrement bool
	increment    int64
	auxCounter   int64
}

func (v *Variable) ID() int      { return v.id }
func (v *Variable) Name() string { return v.name }

func (v *Variable) Generate(ctx *genCtx, _ int64, w io.Writer) (int, error) {
	cur := ctx.vars.Get(v.varName)

	var out string
	if !v.hasIncrement {
		out = cur
	} else if n, err := strconv.ParseInt(cur, 10, 64); err == nil {
		n += v.increment
		out = strconv.FormatInt(n, 10)
		ctx.vars.Set(v.varName, out)
	} else {
		// Non-numeric current value: fall back to an auxiliary counter
		// appended to the original string.
		v.auxCounter += v.increment
		out = cur + strconv.FormatInt(v.auxCounter, 10)
	}

	n, err := io.WriteString(w, out)
	if err != nil {
		return n, writeError(v.id, v.name, err)
	}
	return n, nil
}
