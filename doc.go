// Package aligner pads delimiter-separated columns of text so they line up
// vertically.
//
// Given a block of lines and a delimiter pattern (literal text or a
// regular expression), the package inserts spaces so occurrences of the
// pattern (or the text following them) share one column position across
// lines. The central entry point is [Align], a pure function from
// (text, pattern, [Options]) to aligned text. It is total: it never
// panics or returns an error, and an invalid regular expression yields
// the input unchanged.
//
//	out := aligner.Align("a = 1\nab = 2\nabc = 3", "=", aligner.Options{})
//	// a   = 1
//	// ab  = 2
//	// abc = 3
//
// # Options
//
// [Options] modifies where padding goes and which occurrences take part:
//
//   - AfterDelimiter — pad after the delimiter, lining up the text that
//     follows it
//   - Global — align every occurrence per line, not only the first
//   - Count — with Global, cap how many leading occurrences align; the
//     rest of the line passes through verbatim
//   - Regex — treat the pattern as a regular expression
//   - Right — pad on the left so text ends flush at the column
//   - SkipUnmatched — leave lines without any occurrence out of the
//     width calculation
//
// Widths are terminal display widths (wide characters count as two
// cells), so aligned output stays aligned in a monospaced terminal.
//
// # Pattern Specs
//
// Use [ParseSpec] to convert a raw input string carrying modifiers into a
// [Spec]. A leading "r/" selects regular-expression matching; flags after
// a final "/" combine g (global, optionally bounded as g2), n
// (after-delimiter), and r (right):
//
//	spec, err := aligner.ParseSpec("r/=+/g2n")
//	out := spec.Align(text)
//
// # Streams
//
// [Pipe] aligns everything read from an [io.Reader] onto an [io.Writer].
// Alignment needs the whole block for layout, so the input is collected
// before any output is written.
//
// # Errors
//
// The engine itself reports nothing; only [ParseSpec] can fail:
//
//   - [ErrEmptyPattern] — the input string had no pattern left after
//     stripping modifiers
//
// Use [EscapeLiteral] when literal text must be embedded in a larger
// regular expression without its metacharacters taking effect.
package aligner
