package template

import (
	"bytes"
	"io"
)

// Words selects words from a word list and concatenates them with
// separators. The list is resolved once (lazily, memoized process-wide by
// source) and the segment keeps its own serial cursor across generate
// calls.
type Words struct {
	Common
	source string
	list   [][]byte
	cursor int64
}

func (w *Words) resolveList() [][]byte {
	if w.list == nil {
		w.list = globalWordLists.resolve(w.source)
		if len(w.list) == 0 {
			w.list = [][]byte{[]byte("")}
		}
	}
	return w.list
}

func (w *Words) Generate(ctx *genCtx, contextValue int64, out io.Writer) (int, error) {
	list := w.resolveList()
	countRaw := uniformInt(w.rng(), DefaultMax)
	count := int(w.transform(countRaw))
	if count < 0 {
		count = 0
	}

	var buf bytes.Buffer
	for i := 0; i < count; i++ {
		idx := w.pickIndex(contextValue, len(list))
		if i > 0 {
			if i%wordsPerLine == 0 {
				buf.WriteByte('\n')
			} else {
				buf.WriteByte(' ')
			}
		}
		buf.Write(list[idx])
	}

	result := buf.String()
	if w.save != "" {
		ctx.vars.Set(w.save, result)
	}
	n, err := io.WriteString(out, result)
	if err != nil {
		return n, writeError(w.id, w.name, err)
	}
	return n, nil
}

// pickIndex selects a word index according to the segment's distribution,
// modulo the list length.
func (w *Words) pickIndex(contextValue int64, listLen int) int {
	if listLen <= 0 {
		return 0
	}
	n := int64(listLen)
	switch w.dist {
	case DistSerial:
		idx := w.cursor % n
		w.cursor++
		return int(idx)
	case DistContext:
		return int(((contextValue % n) + n) % n)
	case DistZipf:
		z := w.zipfGenFor(n)
		return int(z.Next() % n)
	default: // DistRandom
		return int(uniformInt(w.rng(), n))
	}
}

// zipfGenFor returns (lazily building) a Zipf generator sized to the
// resolved word list rather than the segment's own [min,max] bounds.
func (w *Words) zipfGenFor(n int64) *Zipf {
	if w.zipf == nil {
		limit := n
		if limit < 1 {
			limit = DefaultZipf
		}
		w.zipf = NewZipf(limit, w.zipfSkew)
	}
	return w.zipf
}
