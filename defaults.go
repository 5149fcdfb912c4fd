package template

// Default bounds used by the statistical generators and the parameter
// decoder. These values affect wraparound semantics and must stay fixed
// for generation reproducibility across runs.
const (
	// DefaultMax sizes the default integer range: a segment with no max=
	// gets max = DefaultMax-1, so its inclusive range [0, max] spans
	// DefaultMax values. It is also the exclusive bound of a $RANDOM
	// expansion and of a Words segment's raw count draw.
	DefaultMax = 1_000_000_000
	// DefaultZipfMax caps the Zipf element count derived from max-min.
	DefaultZipfMax = 9_999_999
	// DefaultZipf is used when a Zipf distribution is requested over an
	// empty/degenerate range (min == max).
	DefaultZipf = 99
	// defaultZipfSkew is the skew theta used when a segment does not set one.
	defaultZipfSkew = 0.9
	// zipfSeed is a fixed Mersenne-prime seed so Zipf sequences are
	// reproducible per-instance across runs.
	zipfSeed = (1 << 31) - 1

	// wordListSize is the number of words synthesized when a Words source
	// resolves to neither an inline list nor an existing file.
	wordListSize = 1000
	// wordSize is the average length of a synthesized word; lengths are
	// drawn uniformly from [1, 2*wordSize-1].
	wordSize = 7
	// wordsPerLine hardcodes a newline after every N words of Words output.
	// A candidate for a configurable wrap width; kept fixed for backward
	// compatibility.
	wordsPerLine = 14

	// logBaseDefault is the multiplier used by the Log distribution.
	logBaseDefault = 10

	// maxIncludeDepth aborts File segments nested beyond this depth.
	maxIncludeDepth = 25

	// maxTemplateBytes rejects templates larger than this during parse.
	maxTemplateBytes = 100 * 1024 * 1024
)

// dateLayout names the supported Date segment `type=` values.
type dateLayout string

const (
	layoutMDY  dateLayout = "mdy"
	layoutYMD  dateLayout = "ymd"
	layoutYMDH dateLayout = "ymdh"
	layoutYMDT dateLayout = "ymdt"
	layoutOAGI dateLayout = "oagi"
)
