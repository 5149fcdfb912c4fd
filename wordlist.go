package template

import (
	"os"
	"strings"
	"sync"

	fileutil "github.com/projectdiscovery/utils/file"
	sliceutil "github.com/projectdiscovery/utils/slice"
)

// wordListCache is the process-wide memoization of resolved word lists
// keyed by source specification. First-touch population is serialized
// with a mutex; entries are never evicted.
type wordListCache struct {
	mu      sync.Mutex
	entries map[string][][]byte
}

var globalWordLists = &wordListCache{entries: map[string][][]byte{}}

// resolve returns the word list for source, populating the cache on
// first use.
func (c *wordListCache) resolve(source string) [][]byte {
	c.mu.Lock()
	defer c.mu.Unlock()
	if list, ok := c.entries[source]; ok {
		return list
	}
	list := loadWordList(source)
	c.entries[source] = list
	return list
}

func loadWordList(source string) [][]byte {
	switch {
	case strings.HasPrefix(source, "{"):
		return parseInlineList(source)
	case source != "" && fileutil.FileExists(source):
		bin, err := os.ReadFile(source)
		if err != nil {
			return synthesizeWords(source)
		}
		list := tokenizeWordFile(bin)
		if len(list) == 0 {
			return synthesizeWords(source)
		}
		return list
	default:
		return synthesizeWords(source)
	}
}

// parseInlineList parses `{w1,w2,w3}` with no embedded whitespace inside
// an element, deduplicating repeated entries with sliceutil.Dedupe.
func parseInlineList(source string) [][]byte {
	inner := strings.TrimSuffix(strings.TrimPrefix(source, "{"), "}")
	if inner == "" {
		return nil
	}
	parts := sliceutil.Dedupe(strings.Split(inner, ","))
	out := make([][]byte, 0, len(parts))
	for _, p := range parts {
		out = append(out, []byte(p))
	}
	return out
}

// tokenizeWordFile tokenizes file content using a C/C++-style tokenizer:
// `#` and `//` start an end-of-line comment, `/*...*/` is a block
// comment, and newlines/form-feeds (plus other whitespace) separate
// tokens.
func tokenizeWordFile(data []byte) [][]byte {
	var out [][]byte
	var tok []byte
	flush := func() {
		if len(tok) > 0 {
			out = append(out, tok)
			tok = nil
		}
	}
	i := 0
	for i < len(data) {
		c := data[i]
		switch {
		case c == '#':
			flush()
			for i < len(data) && data[i] != '\n' {
				i++
			}
		case c == '/' && i+1 < len(data) && data[i+1] == '/':
			flush()
			for i < len(data) && data[i] != '\n' {
				i++
			}
		case c == '/' && i+1 < len(data) && data[i+1] == '*':
			flush()
			i += 2
			for i+1 < len(data) && !(data[i] == '*' && data[i+1] == '/') {
				i++
			}
			i += 2
		case c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f' || c == '\v':
			flush()
			i++
		default:
			tok = append(tok, c)
			i++
		}
	}
	flush()
	return out
}

// synthesizeWords generates wordListSize random lowercase-ASCII words of
// length in [1, 2*wordSize-1] with average length wordSize. The
// generator is seeded by the source spec so the same unresolved source
// always synthesizes the same list, preserving generation determinism.
func synthesizeWords(source string) [][]byte {
	r := newUniform("wordlist:" + source)
	const alphabet = "abcdefghijklmnopqrstuvwxyz"
	out := make([][]byte, 0, wordListSize)
	for i := 0; i < wordListSize; i++ {
		length := 1 + r.Intn(2*wordSize-1)
		w := make([]byte, length)
		for j := range w {
			w[j] = alphabet[r.Intn(len(alphabet))]
		}
		out = append(out, w)
	}
	return out
}
