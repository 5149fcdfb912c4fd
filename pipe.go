package template

import (
	"bufio"
	"io"
)

// LineFeed streams a tree's generated output line by line, for
// collaborators that want to consume the engine incrementally instead of
// buffering the whole expansion. It runs Generate on a background
// goroutine into an io.Pipe and scans the read side.
type LineFeed struct {
	scanner *bufio.Scanner
	pr      *io.PipeReader
	genErr  chan error
	err     error
	done    bool
}

// NewLineFeed starts generating tree's expansion for rootContext in the
// background and returns a LineFeed ready for NextLine.
func NewLineFeed(tree *Tree, rootContext int) *LineFeed {
	pr, pw := io.Pipe()
	lf := &LineFeed{
		scanner: bufio.NewScanner(pr),
		pr:      pr,
		genErr:  make(chan error, 1),
	}
	go func() {
		_, err := tree.Generate(rootContext, pw)
		pw.CloseWithError(err)
		lf.genErr <- err
	}()
	return lf
}

// NextLine returns the next generated line and true, or ("", false) once
// the underlying generation is exhausted or has failed. Call Err after a
// false result to distinguish clean exhaustion from failure.
func (lf *LineFeed) NextLine() (string, bool) {
	if lf.done {
		return "", false
	}
	if lf.scanner.Scan() {
		return lf.scanner.Text(), true
	}
	lf.done = true
	lf.err = lf.scanner.Err()
	if lf.err == nil {
		lf.err = <-lf.genErr
	}
	return "", false
}

// Err returns any error encountered by the background generation or the
// line scanner, once NextLine has returned false.
func (lf *LineFeed) Err() error {
	return lf.err
}
