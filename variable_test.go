package template

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVariableReadsCurrentValue(t *testing.T) {
	vars := NewVariablesTable()
	vars.Set("x", "hello")
	v := &Variable{varName: "x"}
	ctx := &genCtx{vars: vars}
	var buf bytes.Buffer
	_, err := v.Generate(ctx, 0, &buf)
	require.NoError(t, err)
	require.Equal(t, "hello", buf.String())
}

func TestVariableIncrementsNumericValue(t *testing.T) {
	vars := NewVariablesTable()
	vars.Set("n", "10")
	v := &Variable{varName: "n", hasIncrement: true, increment: 5}
	ctx := &genCtx{vars: vars}

	var buf1, buf2 bytes.Buffer
	_, err := v.Generate(ctx, 0, &buf1)
	require.NoError(t, err)
	require.Equal(t, "15", buf1.String())

	_, err = v.Generate(ctx, 0, &buf2)
	require.NoError(t, err)
	require.Equal(t, "20", buf2.String())
}

func TestVariableNonNumericIncrementFallsBackToAuxCounter(t *testing.T) {
	vars := NewVariablesTable()
	vars.Set("n", "abc")
	v := &Variable{varName: "n", hasIncrement: true, increment: 3}
	ctx := &genCtx{vars: vars}

	var buf1, buf2 bytes.Buffer
	_, err := v.Generate(ctx, 0, &buf1)
	require.NoError(t, err)
	require.Equal(t, "abc3", buf1.String())

	_, err = v.Generate(ctx, 0, &buf2)
	require.NoError(t, err)
	require.Equal(t, "abc6", buf2.String())
}
