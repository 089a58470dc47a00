package aligner

import "github.com/mattn/go-runewidth"

// columnWidths scans tokenized rows and returns the maximum rendered width
// per column. Widths are terminal display widths, so wide characters count
// as two cells. The trailing text segment of a row measures as if followed
// by an empty delimiter, so it widens its column even though rebuild never
// pads it.
func columnWidths(rows [][]string, opts Options) []int {
	var widths []int
	for _, row := range rows {
		if opts.SkipUnmatched && len(row) == 1 {
			continue
		}
		for i := 0; i < len(row); i += 2 {
			if pastCutoff(i, opts) {
				break
			}
			col := i / 2
			for col >= len(widths) {
				widths = append(widths, 0)
			}
			if w := effectiveWidth(row, i, opts); w > widths[col] {
				widths[col] = w
			}
		}
	}
	return widths
}

// pastCutoff reports whether the pair starting at segment index i falls
// past the bounded-occurrence cap and must be passed through verbatim.
func pastCutoff(i int, opts Options) bool {
	return opts.Global && opts.Count > 0 && i >= 2*opts.Count
}

// effectiveWidth measures the text/delimiter pair starting at segment
// index i. The delimiter counts only when padding goes after it.
func effectiveWidth(row []string, i int, opts Options) int {
	w := runewidth.StringWidth(row[i])
	if opts.AfterDelimiter && i+1 < len(row) {
		w += runewidth.StringWidth(row[i+1])
	}
	return w
}
