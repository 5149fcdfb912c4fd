package template

import "io"

// Literal is fixed text between processing instructions. It writes its
// bytes unchanged. It has an id but no name and no save variable.
type Literal struct {
	id   int
	text []byte
}

func (l *Literal) ID() int      { return l.id }
func (l *Literal) Name() string { return "" }

func (l *Literal) Generate(_ *genCtx, _ int64, w io.Writer) (int, error) {
	n, err := w.Write(l.text)
	if err != nil {
		return n, writeError(l.id, "", err)
	}
	return n, nil
}
