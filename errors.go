package template

import (
	"fmt"

	errorutil "github.com/projectdiscovery/utils/errors"
)

// ParseError is a fatal parse-time error: missing `?>`, unrecognized
// segment kind, missing `=` in an argument pair, mismatched block names,
// or a template that exceeds maxTemplateBytes.
// Offset is the byte offset into the template where the failure was
// detected: the start of the failing processing instruction, or the
// template length for a template that is too large or ends inside an
// open gen.begin. A missing `?>` is reported at offset 0.
type ParseError struct {
	Offset int
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("template parse error at offset %d: %v", e.Offset, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

func newParseError(offset int, format string, args ...interface{}) error {
	return &ParseError{
		Offset: offset,
		Err:    errorutil.NewWithTag("template", format, args...),
	}
}

// writeError wraps an io.Writer failure encountered mid-generate with the
// name/id of the segment that was writing when it failed; runtime I/O
// failures abort the current generate call.
func writeError(segmentID int, segmentName string, cause error) error {
	if segmentName == "" {
		return errorutil.NewWithTag("template", "segment #%d: write failed: %v", segmentID, cause)
	}
	return errorutil.NewWithTag("template", "segment #%d (%s): write failed: %v", segmentID, segmentName, cause)
}

// errLimitExceeded is returned by a generate call once the configured
// output byte ceiling (Limits.MaxOutputBytes) is crossed.
var errLimitExceeded = errorutil.NewWithTag("template", "output byte ceiling exceeded")
