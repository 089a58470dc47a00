package aligner

// tokenize splits a line into alternating text/delimiter segments. The
// result always has odd length and ends with a text segment; a line with
// no occurrence is the one-element sequence [line]. The column index of
// the text segment at position i is i/2, and a delimiter belongs to the
// column of the text segment before it.
func tokenize(m matcher, line string, global bool) []string {
	if global {
		return m.split(line)
	}
	idx, match, ok := m.first(line)
	if !ok {
		return []string{line}
	}
	return []string{line[:idx], match, line[idx+len(match):]}
}
