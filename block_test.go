package template

import (
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBlockIterationCountExact(t *testing.T) {
	b := &Block{min: 4, max: 4}
	require.EqualValues(t, 4, b.iterationCount())
}

func TestBlockIterationCountRandomUniformWithinBounds(t *testing.T) {
	b := &Block{name: "spread", min: 2, max: 8}
	for i := 0; i < 200; i++ {
		n := b.iterationCount()
		require.True(t, n >= 2 && n <= 8, "got %d", n)
	}
}

func TestBlockRatioDecayStaysWithinBoundsAndGrowsWithRatio(t *testing.T) {
	low := 0.1
	high := 0.9
	lowBlock := &Block{name: "low", min: 1, max: 50, ratio: &low}
	highBlock := &Block{name: "high", min: 1, max: 50, ratio: &high}

	var lowSum, highSum int64
	const trials = 500
	for i := 0; i < trials; i++ {
		n := lowBlock.iterationCount()
		require.True(t, n >= 1 && n <= 50)
		lowSum += n

		n2 := highBlock.iterationCount()
		require.True(t, n2 >= 1 && n2 <= 50)
		highSum += n2
	}
	// Higher continuation probability (ratio) means more steps survive on
	// average, so the high-ratio block's mean iteration count should exceed
	// the low-ratio block's.
	require.Greater(t, highSum, lowSum)
}

func TestBlockContextRuleIncrementalNeverResets(t *testing.T) {
	b := &Block{rule: RuleIncremental, min: 2, max: 2}
	var firstCtx, secondCtx []int64
	b.children = []Segment{&contextRecorder{out: &firstCtx}}
	ctx := &genCtx{vars: NewVariablesTable()}
	_, err := b.Generate(ctx, 0, nopWriter{})
	require.NoError(t, err)
	b.children = []Segment{&contextRecorder{out: &secondCtx}}
	_, err = b.Generate(ctx, 0, nopWriter{})
	require.NoError(t, err)
	require.Equal(t, []int64{0, 1}, firstCtx)
	require.Equal(t, []int64{2, 3}, secondCtx)
}

// contextRecorder is a test-only Segment that records the context values
// it is invoked with instead of writing bytes.
type contextRecorder struct {
	out *[]int64
}

func (c *contextRecorder) ID() int      { return 0 }
func (c *contextRecorder) Name() string { return "" }
func (c *contextRecorder) Generate(_ *genCtx, contextValue int64, _ io.Writer) (int, error) {
	*c.out = append(*c.out, contextValue)
	return 0, nil
}

type nopWriter struct{}

func (nopWriter) Write(p []byte) (int, error) { return len(p), nil }
