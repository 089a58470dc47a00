package aligner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenizeSingleMatch(t *testing.T) {
	t.Parallel()
	m, err := newMatcher("=", false)
	require.NoError(t, err)
	assert.Equal(t, []string{"a ", "=", " 1 = x"}, tokenize(m, "a = 1 = x", false))
}

func TestTokenizeNoMatch(t *testing.T) {
	t.Parallel()
	m, err := newMatcher("=", false)
	require.NoError(t, err)
	assert.Equal(t, []string{"plain"}, tokenize(m, "plain", false))
}

func TestTokenizeGlobal(t *testing.T) {
	t.Parallel()
	m, err := newMatcher("=", false)
	require.NoError(t, err)
	assert.Equal(t, []string{"a ", "=", " 1 ", "=", " x"}, tokenize(m, "a = 1 = x", true))
}

func TestTokenizeAlwaysOddLength(t *testing.T) {
	t.Parallel()
	m, err := newMatcher(",", false)
	require.NoError(t, err)
	for _, line := range []string{"", ",", "a,", ",b", "a,b,c", ",,,"} {
		segs := tokenize(m, line, true)
		assert.Equalf(t, 1, len(segs)%2, "line %q -> %q", line, segs)
	}
}

func TestLiteralSplitAdjacentDelimiters(t *testing.T) {
	t.Parallel()
	m := literalMatcher(",")
	assert.Equal(t, []string{"", ",", "", ",", ""}, m.split(",,"))
}

func TestLiteralSplitEmptyPattern(t *testing.T) {
	t.Parallel()
	m := literalMatcher("")
	assert.Equal(t, []string{"abc"}, m.split("abc"))
	idx, match, ok := m.first("abc")
	assert.False(t, ok)
	assert.Zero(t, idx)
	assert.Empty(t, match)
}

func TestRegexSplitZeroWidthAdvances(t *testing.T) {
	t.Parallel()
	m, err := newMatcher("o*", true)
	require.NoError(t, err)
	// "o*" matches zero-width before every non-o rune; only the real
	// match becomes a delimiter, and the scan terminates.
	assert.Equal(t, []string{"f", "oo", ""}, m.split("foo"))
	assert.Equal(t, []string{"abc"}, m.split("abc"))
	assert.Equal(t, []string{""}, m.split(""))
}

func TestRegexSplitZeroWidthWideRunes(t *testing.T) {
	t.Parallel()
	m, err := newMatcher("x*", true)
	require.NoError(t, err)
	// Advancement is by rune, not byte, so multibyte input cannot stall
	// or split inside a rune.
	assert.Equal(t, []string{"你好"}, m.split("你好"))
}

func TestRegexFirstVariableWidth(t *testing.T) {
	t.Parallel()
	m, err := newMatcher("=+", true)
	require.NoError(t, err)
	idx, match, ok := m.first("a === b")
	require.True(t, ok)
	assert.Equal(t, 2, idx)
	assert.Equal(t, "===", match)
}

func TestColumnWidthsTrailingSegmentCounts(t *testing.T) {
	t.Parallel()
	rows := [][]string{
		{"a ", "=", " 1"},
		{"this line is long"},
	}
	widths := columnWidths(rows, Options{})
	require.Len(t, widths, 2)
	assert.Equal(t, 17, widths[0])
	assert.Equal(t, 2, widths[1])
}

func TestColumnWidthsSkipUnmatched(t *testing.T) {
	t.Parallel()
	rows := [][]string{
		{"a ", "=", " 1"},
		{"this line is long"},
	}
	widths := columnWidths(rows, Options{SkipUnmatched: true})
	require.Len(t, widths, 2)
	assert.Equal(t, 2, widths[0])
}

func TestColumnWidthsBoundedCutoff(t *testing.T) {
	t.Parallel()
	rows := [][]string{
		{"a ", "=", " 1 ", "=", " x"},
	}
	widths := columnWidths(rows, Options{Global: true, Count: 1})
	assert.Equal(t, []int{2}, widths)
}

func TestEffectiveWidthIncludesDelimiterAfterMode(t *testing.T) {
	t.Parallel()
	row := []string{"a ", "==", " 1"}
	assert.Equal(t, 2, effectiveWidth(row, 0, Options{}))
	assert.Equal(t, 4, effectiveWidth(row, 0, Options{AfterDelimiter: true}))
	// Trailing segment has no delimiter to add.
	assert.Equal(t, 2, effectiveWidth(row, 2, Options{AfterDelimiter: true}))
}

func TestPastCutoff(t *testing.T) {
	t.Parallel()
	assert.False(t, pastCutoff(4, Options{}))
	assert.False(t, pastCutoff(4, Options{Global: true}))
	assert.False(t, pastCutoff(0, Options{Global: true, Count: 1}))
	assert.True(t, pastCutoff(2, Options{Global: true, Count: 1}))
	assert.False(t, pastCutoff(2, Options{Count: 1}))
}

func TestRebuildPadCannotGoNegative(t *testing.T) {
	t.Parallel()
	// Resolver and reconstructor share the effective-width formula, so the
	// widest contributing row pads by exactly zero.
	rows := [][]string{
		{"abc ", "=", " 3"},
		{"a ", "=", " 1"},
	}
	opts := Options{}
	widths := columnWidths(rows, opts)
	assert.NotPanics(t, func() {
		assert.Equal(t, "abc = 3", rebuild(rows[0], widths, opts))
		assert.Equal(t, "a   = 1", rebuild(rows[1], widths, opts))
	})
}

func TestParseFlagsRejectsUnknown(t *testing.T) {
	t.Parallel()
	for _, s := range []string{"x", "gx", "2", "g2x", "ng4x"} {
		_, ok := parseFlags(s)
		assert.Falsef(t, ok, "flags %q", s)
	}
}

func TestParseFlagsDigitsBindToGlobal(t *testing.T) {
	t.Parallel()
	opts, ok := parseFlags("g12n")
	require.True(t, ok)
	assert.Equal(t, Options{Global: true, Count: 12, AfterDelimiter: true}, opts)
}
