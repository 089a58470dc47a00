package aligner

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// matcher locates delimiter occurrences within a line.
type matcher interface {
	// first returns the byte offset and text of the first occurrence.
	// ok is false when the line has none.
	first(line string) (idx int, match string, ok bool)

	// split cuts the line on every occurrence, keeping each matched
	// delimiter as its own element: [text, delim, text, delim, ..., text].
	// The result always ends with a text element, possibly empty.
	split(line string) []string
}

// newMatcher picks the matching strategy. Literal patterns never touch the
// regexp engine, so compilation is the only fallible path.
func newMatcher(pattern string, isRegex bool) (matcher, error) {
	if !isRegex {
		return literalMatcher(pattern), nil
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, err
	}
	return &regexMatcher{re: re}, nil
}

type literalMatcher string

func (m literalMatcher) first(line string) (int, string, bool) {
	if m == "" {
		return 0, "", false
	}
	idx := strings.Index(line, string(m))
	if idx < 0 {
		return 0, "", false
	}
	return idx, string(m), true
}

func (m literalMatcher) split(line string) []string {
	if m == "" {
		return []string{line}
	}
	sep := string(m)
	var segs []string
	start := 0
	for {
		idx := strings.Index(line[start:], sep)
		if idx < 0 {
			break
		}
		idx += start
		segs = append(segs, line[start:idx], sep)
		start = idx + len(sep)
	}
	return append(segs, line[start:])
}

type regexMatcher struct {
	re *regexp.Regexp
}

func (m *regexMatcher) first(line string) (int, string, bool) {
	loc := m.re.FindStringIndex(line)
	if loc == nil {
		return 0, "", false
	}
	return loc[0], line[loc[0]:loc[1]], true
}

func (m *regexMatcher) split(line string) []string {
	var segs []string
	start, pos := 0, 0
	for pos <= len(line) {
		loc := m.re.FindStringIndex(line[pos:])
		if loc == nil {
			break
		}
		a, b := pos+loc[0], pos+loc[1]
		if a == b {
			// Zero-width match: advance one rune so the scan always makes
			// progress, and emit no boundary for it.
			if b >= len(line) {
				break
			}
			_, n := utf8.DecodeRuneInString(line[b:])
			pos = b + n
			continue
		}
		segs = append(segs, line[start:a], line[a:b])
		start, pos = b, b
	}
	return append(segs, line[start:])
}

const metachars = `.*+?^${}()|[]\`

// EscapeLiteral returns s with every regular-expression metacharacter
// prefixed by a backslash, so the result matches s as exact text when
// handed to a regular-expression matcher.
func EscapeLiteral(s string) string {
	if !strings.ContainsAny(s, metachars) {
		return s
	}
	var sb strings.Builder
	sb.Grow(len(s) * 2)
	for _, r := range s {
		if strings.ContainsRune(metachars, r) {
			sb.WriteByte('\\')
		}
		sb.WriteRune(r)
	}
	return sb.String()
}
