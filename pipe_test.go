package template

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLineFeedStreamsLinesInOrder(t *testing.T) {
	tr, err := ParseString("<?gen.begin count=3 ?><?gen.value order=context format=#0 ?>\n<?gen.end ?>")
	require.NoError(t, err)

	lf := NewLineFeed(tr, 0)
	var lines []string
	for {
		line, ok := lf.NextLine()
		if !ok {
			break
		}
		lines = append(lines, line)
	}
	require.NoError(t, lf.Err())
	require.Equal(t, []string{"0", "1", "2"}, lines)
}
