package template

import (
	"bytes"
	"io"
)

// genCtx carries per-generate-call state through the tree walk: the
// variables table in effect and the current File include depth.
type genCtx struct {
	vars         *VariablesTable
	includeDepth int
}

// Limits bounds a single generate call. MaxOutputBytes == 0 means
// unbounded.
type Limits struct {
	MaxOutputBytes int64
}

// Tree is a compiled template: a root Block plus the variables table it
// shares across all of its segments.
type Tree struct {
	root   *Block
	vars   *VariablesTable
	source string // original template text, kept so Clone can recompile fresh state
}

// SetVariables merges spec into the tree's variables table. spec is
// "none", "{k=v,...}", or a properties file path. May be called before
// or between Generate calls; later calls override earlier values.
func (t *Tree) SetVariables(spec string) error {
	kv, err := loadVariableSpec(spec)
	if err != nil {
		return err
	}
	t.vars.SetAll(kv)
	return nil
}

// Generate streams the tree's expansion for the given root context to w,
// returning the exact number of bytes written. It uses the tree's own
// persistent variables table: sequential calls on one tree see each
// other's `save=` writes and serial-counter state. A single Tree is not
// safe for concurrent Generate calls — use Clone to give each goroutine
// its own compiled tree.
func (t *Tree) Generate(rootContext int, w io.Writer) (int, error) {
	ctx := &genCtx{vars: t.vars}
	return t.root.Generate(ctx, int64(rootContext), w)
}

// GenerateWithLimits is like Generate but aborts once limits.MaxOutputBytes
// is crossed, returning errLimitExceeded.
func (t *Tree) GenerateWithLimits(rootContext int, w io.Writer, limits *Limits) (int, error) {
	if limits == nil || limits.MaxOutputBytes <= 0 {
		return t.Generate(rootContext, w)
	}
	lw := &limitWriter{dst: w, max: limits.MaxOutputBytes}
	n, err := t.Generate(rootContext, lw)
	if lw.exceeded {
		err = errLimitExceeded
	}
	return n, err
}

// GenerateString is a convenience wrapper around Generate that returns
// the expansion as a string.
func (t *Tree) GenerateString(rootContext int) (string, error) {
	var buf bytes.Buffer
	_, err := t.Generate(rootContext, &buf)
	return buf.String(), err
}

// limitWriter aborts writes once the configured byte ceiling is crossed.
type limitWriter struct {
	dst      io.Writer
	max      int64
	written  int64
	exceeded bool
}

func (l *limitWriter) Write(p []byte) (int, error) {
	if l.written+int64(len(p)) > l.max {
		l.exceeded = true
		return 0, errLimitExceeded
	}
	n, err := l.dst.Write(p)
	l.written += int64(n)
	return n, err
}

// Clone returns an independent compiled tree recompiled from the same
// source text, with its own fresh segment ids, counters, and lazy random
// generators, seeded with a copy of the current variables table. Use one
// Clone per goroutine for concurrent generation.
func (t *Tree) Clone() (*Tree, error) {
	clone, err := ParseString(t.source)
	if err != nil {
		return nil, err
	}
	clone.vars = t.vars.Clone()
	return clone, nil
}
