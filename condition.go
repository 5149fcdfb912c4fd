package template

import (
	"strconv"
	"strings"

	"github.com/projectdiscovery/gologger"
)

// Condition implements a Block's `while=LHS OP RHS` guard, where OP is
// one of `=`, `<`, `>` and either side may be a `$VAR` reference or an
// integer literal.
type Condition struct {
	constant bool
	value    bool
	lhs, rhs string
	op       byte
}

// parseCondition parses a while= expression. An ambiguous operator count
// (zero, two, or more matches of `=`/`<`/`>`) folds the condition to a
// constant true with a logged warning. If both operands are integer
// literals the expression is folded to a constant at parse time.
func parseCondition(raw string) *Condition {
	count := strings.Count(raw, "=") + strings.Count(raw, "<") + strings.Count(raw, ">")
	if count != 1 {
		gologger.Warning().Msgf("template: ambiguous while= expression %q (found %d operator candidates); treating as always-true", raw, count)
		return &Condition{constant: true, value: true}
	}

	idx := strings.IndexAny(raw, "=<>")
	lhs := strings.TrimSpace(raw[:idx])
	rhs := strings.TrimSpace(raw[idx+1:])
	op := raw[idx]

	c := &Condition{lhs: lhs, rhs: rhs, op: op}
	if !strings.HasPrefix(lhs, "$") && !strings.HasPrefix(rhs, "$") {
		lv, lerr := strconv.ParseInt(lhs, 10, 64)
		rv, rerr := strconv.ParseInt(rhs, 10, 64)
		if lerr == nil && rerr == nil {
			c.constant = true
			c.value = compare(lv, rv, op)
		}
	}
	return c
}

func compare(lv, rv int64, op byte) bool {
	switch op {
	case '=':
		return lv == rv
	case '<':
		return lv < rv
	case '>':
		return lv > rv
	default:
		return true
	}
}

// Eval resolves any `$VAR` operands against vars and evaluates the
// comparison.
func (c *Condition) Eval(vars *VariablesTable) bool {
	if c.constant {
		return c.value
	}
	lv := expandDollarInt(vars, c.lhs, 0)
	rv := expandDollarInt(vars, c.rhs, 0)
	return compare(lv, rv, c.op)
}
