package template

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFileIncludeDepthGuardAborts(t *testing.T) {
	f := &File{name: "self", path: "self.tmpl"}
	f.root = &Block{min: 1, max: 1, children: []Segment{f}}

	ctx := &genCtx{vars: NewVariablesTable()}
	var buf bytes.Buffer
	_, err := f.Generate(ctx, 0, &buf)
	require.Error(t, err)
}

func TestFileWithinDepthSucceeds(t *testing.T) {
	inner := &Literal{text: []byte("leaf")}
	f := &File{name: "one-level", path: "leaf.tmpl", root: &Block{min: 1, max: 1, children: []Segment{inner}}}

	ctx := &genCtx{vars: NewVariablesTable()}
	var buf bytes.Buffer
	n, err := f.Generate(ctx, 0, &buf)
	require.NoError(t, err)
	require.Equal(t, 4, n)
	require.Equal(t, "leaf", buf.String())
}
