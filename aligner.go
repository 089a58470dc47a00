package aligner

import (
	"errors"
	"io"
	"strings"
)

// Sentinel errors for programmatic error handling.
var (
	ErrEmptyPattern = errors.New("empty pattern")
)

// Options control how delimiter occurrences are aligned. The zero value
// aligns the first occurrence per line, inserting padding before the
// delimiter, with the pattern treated as literal text.
type Options struct {
	// AfterDelimiter inserts padding after the delimiter, lining up the
	// text that follows it instead of the delimiter itself.
	AfterDelimiter bool

	// Global aligns every occurrence per line rather than only the first.
	Global bool

	// Count caps how many leading occurrences per line participate when
	// Global is set. 0 means all occurrences. Text past the cap is kept
	// verbatim.
	Count int

	// Regex treats the pattern as a regular expression instead of literal
	// text.
	Regex bool

	// Right pads on the left so text ends flush at the column boundary.
	Right bool

	// SkipUnmatched leaves lines without any occurrence out of the column
	// width calculation. By default such lines still contribute their full
	// length to the first column.
	SkipUnmatched bool
}

// Align pads text so occurrences of pattern line up vertically across
// lines. Lines are separated by "\n"; no trailing-newline normalization is
// performed. Align is total: it never panics or errors, and an invalid
// regular expression (only possible with opts.Regex) returns text
// unchanged.
func Align(text, pattern string, opts Options) string {
	if text == "" {
		return text
	}
	m, err := newMatcher(pattern, opts.Regex)
	if err != nil {
		return text
	}
	lines := strings.Split(text, "\n")
	rows := make([][]string, len(lines))
	for i, line := range lines {
		rows[i] = tokenize(m, line, opts.Global)
	}
	widths := columnWidths(rows, opts)
	out := make([]string, len(rows))
	for i, row := range rows {
		out[i] = rebuild(row, widths, opts)
	}
	return strings.Join(out, "\n")
}

// Pipe reads all of r, aligns it on pattern, and writes the result to w.
// Alignment needs the complete block before any line can be padded, so the
// input is collected first rather than streamed.
func Pipe(w io.Writer, r io.Reader, pattern string, opts Options) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, Align(string(data), pattern, opts))
	return err
}
