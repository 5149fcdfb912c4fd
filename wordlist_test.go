package template

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseInlineListDedup(t *testing.T) {
	list := parseInlineList("{red,green,red,blue}")
	require.Len(t, list, 3)
}

func TestTokenizeWordFileSkipsComments(t *testing.T) {
	src := []byte("alpha beta # a trailing comment\nGamma // another\ndelta /* block\ncomment */ epsilon\n")
	toks := tokenizeWordFile(src)
	var words []string
	for _, w := range toks {
		words = append(words, string(w))
	}
	require.Equal(t, []string{"alpha", "beta", "Gamma", "delta", "epsilon"}, words)
}

func TestSynthesizeWordsDeterministicPerSource(t *testing.T) {
	a := synthesizeWords("unresolved-source")
	b := synthesizeWords("unresolved-source")
	require.Equal(t, a, b)
	require.Len(t, a, wordListSize)
}

func TestWordListCacheMemoizes(t *testing.T) {
	cache := &wordListCache{entries: map[string][][]byte{}}
	first := cache.resolve("{only,one}")
	second := cache.resolve("{only,one}")
	require.Equal(t, first, second)
}
