package template

import (
	"io"
	"math/rand"
)

// ContextRule selects how a Block numbers its children's context integer
// across iterations.
type ContextRule int

const (
	// RuleCombined computes parent_context*max + counter, yielding a
	// globally unique integer for a fixed-fanout tree layout. Default.
	RuleCombined ContextRule = iota
	// RuleIncremental never resets its counter across the block's lifetime.
	RuleIncremental
	// RuleNested resets its counter to 0 on every call to generate.
	RuleNested
)

func parseContextRule(s string) ContextRule {
	switch lowerASCII(s) {
	case "incremental":
		return RuleIncremental
	case "nested":
		return RuleNested
	default:
		return RuleCombined
	}
}

// Block orchestrates iteration over its children.
type Block struct {
	id       int
	name     string
	children []Segment
	rule     ContextRule
	min, max int64
	ratio    *float64
	cond     *Condition
	counter  int64
	rng      *rand.Rand
}

func (b *Block) ID() int      { return b.id }
func (b *Block) Name() string { return b.name }

func (b *Block) rngGen() *rand.Rand {
	if b.rng == nil {
		b.rng = newUniform(b.name)
	}
	return b.rng
}

func (b *Block) Generate(ctx *genCtx, parentContext int64, w io.Writer) (int, error) {
	if b.cond != nil && !b.cond.Eval(ctx.vars) {
		return 0, nil
	}
	if b.rule != RuleIncremental {
		b.counter = 0
	}

	n := b.iterationCount()
	total := 0
	for i := int64(0); i < n; i++ {
		var childCtx int64
		switch b.rule {
		case RuleCombined:
			childCtx = parentContext*b.max + b.counter
		default: // Incremental, Nested
			childCtx = b.counter
		}
		for _, child := range b.children {
			written, err := child.Generate(ctx, childCtx, w)
			total += written
			if err != nil {
				return total, err
			}
		}
		b.counter++
	}
	return total, nil
}

// iterationCount determines N. See DESIGN.md for the chosen convention
// on the ratio-decayed case's boundary behavior.
func (b *Block) iterationCount() int64 {
	if b.min == b.max {
		return b.max
	}
	if b.ratio != nil && *b.ratio > 0 && *b.ratio < 1 && b.min < b.max {
		n := b.min
		for n < b.max {
			u := b.rngGen().Float64()
			if u >= *b.ratio {
				break
			}
			n++
		}
		return n
	}
	span := b.max - b.min + 1
	return b.min + uniformInt(b.rngGen(), span)
}
