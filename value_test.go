package template

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValueTransformWraps(t *testing.T) {
	c := Common{dist: DistContext, min: 5, max: 9, factor: 1}
	// span = max-min+1 = 5; raw=12 -> (12*1)%5=2 -> +min=7
	require.EqualValues(t, 7, c.transform(12))
}

func TestValueTransformDegenerateRangeReturnsMin(t *testing.T) {
	c := Common{min: 3, max: 3}
	require.EqualValues(t, 3, c.transform(999))
}

func TestValueGenerateWritesSaveVar(t *testing.T) {
	v := &Value{Common: Common{dist: DistContext, min: 0, max: 100, factor: 1, save: "last"}, format: "#00"}
	ctx := &genCtx{vars: NewVariablesTable()}
	var buf bytes.Buffer
	n, err := v.Generate(ctx, 7, &buf)
	require.NoError(t, err)
	require.Equal(t, len(buf.String()), n)
	require.Equal(t, "07", buf.String())
	require.Equal(t, "07", ctx.vars.Get("last"))
}

func TestValueSerialDistributionIncrementsPerCall(t *testing.T) {
	v := &Value{Common: Common{dist: DistSerial, min: 0, max: 5, factor: 1}, format: "#0"}
	ctx := &genCtx{vars: NewVariablesTable()}
	var got []string
	for i := 0; i < 5; i++ {
		var buf bytes.Buffer
		_, err := v.Generate(ctx, 0, &buf)
		require.NoError(t, err)
		got = append(got, buf.String())
	}
	require.Equal(t, []string{"0", "1", "2", "3", "4"}, got)
}
