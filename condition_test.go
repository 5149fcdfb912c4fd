package template

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseConditionConstantFolding(t *testing.T) {
	c := parseCondition("5>2")
	require.True(t, c.constant)
	require.True(t, c.value)

	c = parseCondition("5<2")
	require.True(t, c.constant)
	require.False(t, c.value)
}

func TestParseConditionAmbiguousOperatorFoldsTrue(t *testing.T) {
	c := parseCondition("5>2>1")
	require.True(t, c.constant)
	require.True(t, c.value)

	c = parseCondition("noop")
	require.True(t, c.constant)
	require.True(t, c.value)
}

func TestConditionEvalWithVariable(t *testing.T) {
	vars := NewVariablesTable()
	vars.Set("n", "10")
	c := parseCondition("$n<20")
	require.False(t, c.constant)
	require.True(t, c.Eval(vars))

	vars.Set("n", "30")
	require.False(t, c.Eval(vars))
}
