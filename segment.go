package template

import (
	"io"
	"math/rand"
)

// Distribution selects the raw integer source for Value/Date/Words
// segments.
type Distribution int

const (
	// DistContext uses the context integer passed in by the parent Block.
	DistContext Distribution = iota
	// DistSerial uses a per-segment counter, incremented after each generate.
	DistSerial
	// DistRandom draws uniformly in [0, max).
	DistRandom
	// DistZipf draws from a Zipf distribution over a derived element count.
	DistZipf
	// DistLog uses the log-decay divisibility-run algorithm.
	DistLog
)

func parseDistribution(s string) (Distribution, bool) {
	switch lowerASCII(s) {
	case "context":
		return DistContext, true
	case "serial":
		return DistSerial, true
	case "random", "":
		return DistRandom, true
	case "zipf":
		return DistZipf, true
	case "log":
		return DistLog, true
	default:
		return DistRandom, false
	}
}

// Segment is one node of the compiled tree: Literal, Value, Words, Date,
// Variable, File, or Block.
type Segment interface {
	// Generate writes this segment's expansion for the given context to w,
	// returning the number of bytes written.
	Generate(ctx *genCtx, contextValue int64, w io.Writer) (int, error)
	// ID returns the segment's auto-assigned, compilation-unique integer id.
	ID() int
	// Name returns the segment's optional user-assigned name ("" if none).
	Name() string
}

// Common holds the fields shared by the Value, Words and Date variants:
// id, name, distribution, bounds, factor, save-variable, and
// lazily-initialized random generators.
type Common struct {
	id           int
	name         string
	dist         Distribution
	min, max     int64
	factor       int64
	save         string
	serial       int64
	uniform      *rand.Rand
	zipf         *Zipf
	zipfSkew     float64
}

func (c *Common) ID() int      { return c.id }
func (c *Common) Name() string { return c.name }

// rng lazily creates and returns this segment's uniform generator,
// seeded from its name so two same-named segments agree.
func (c *Common) rng() *rand.Rand {
	if c.uniform == nil {
		c.uniform = newUniform(c.name)
	}
	return c.uniform
}

// zipfGen lazily creates this segment's Zipf generator over the derived
// element count, honoring DefaultZipf on a degenerate min==max range.
func (c *Common) zipfGen() *Zipf {
	if c.zipf == nil {
		limit := c.max - c.min
		if c.min == c.max {
			limit = DefaultZipf
		}
		if limit < 1 {
			limit = 1
		}
		if limit > DefaultZipfMax {
			limit = DefaultZipfMax
		}
		c.zipf = NewZipf(limit, c.zipfSkew)
	}
	return c.zipf
}

// rawValue computes the raw (untransformed) integer for the segment's
// distribution, given the caller-supplied context.
func (c *Common) rawValue(contextValue int64) int64 {
	switch c.dist {
	case DistContext:
		return contextValue
	case DistSerial:
		v := c.serial
		c.serial++
		return v
	case DistZipf:
		return c.zipfGen().Next()
	case DistLog:
		return logDecay(c.rng(), logBaseDefault, c.max)
	default: // DistRandom
		bound := c.max
		if bound <= 0 {
			bound = DefaultMax
		}
		return uniformInt(c.rng(), bound)
	}
}

// transform applies the common Value transform:
//
//	result = (raw * factor) mod (max - min + 1) + min   when min < max
//	result = min                                         otherwise
func (c *Common) transform(raw int64) int64 {
	if c.min >= c.max {
		return c.min
	}
	span := c.max - c.min + 1
	f := c.factor
	if f < 1 {
		f = 1
	}
	v := (raw * f) % span
	if v < 0 {
		v += span
	}
	return v + c.min
}
