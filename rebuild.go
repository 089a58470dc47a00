package aligner

import "strings"

// rebuild re-emits one tokenized row padded to the shared column widths.
// columnWidths and rebuild must agree on the effective-width formula, so
// the pad count can never go negative.
func rebuild(row []string, widths []int, opts Options) string {
	var sb strings.Builder
	for i := 0; i < len(row); i += 2 {
		text := row[i]
		if i+1 >= len(row) {
			// Trailing segment with no delimiter after it.
			sb.WriteString(text)
			break
		}
		delim := row[i+1]
		if pastCutoff(i, opts) {
			sb.WriteString(text)
			sb.WriteString(delim)
			continue
		}
		pad := strings.Repeat(" ", widths[i/2]-effectiveWidth(row, i, opts))
		switch {
		case opts.Right:
			// Right alignment pads left of the whole text+delimiter unit
			// whether or not AfterDelimiter is set.
			sb.WriteString(pad)
			sb.WriteString(text)
			sb.WriteString(delim)
		case opts.AfterDelimiter:
			sb.WriteString(text)
			sb.WriteString(delim)
			sb.WriteString(pad)
		default:
			sb.WriteString(text)
			sb.WriteString(pad)
			sb.WriteString(delim)
		}
	}
	return sb.String()
}
