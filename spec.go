package aligner

import (
	"strconv"
	"strings"
)

// Spec is a parsed alignment input: the pattern plus the options its
// modifiers selected.
type Spec struct {
	Pattern string
	Options Options
}

// ParseSpec parses a raw input string of the form [r/]pattern[/flags].
// A leading "r/" marks the pattern as a regular expression and is
// stripped. Flags after a final "/" may combine in any order:
//
//   - g — align every occurrence; g followed by digits (g2) bounds the
//     number of occurrences aligned per line
//   - n — insert padding after the delimiter
//   - r — right-align
//
// A trailing "/" suffix that is not a valid flag combination stays part of
// the pattern. An empty pattern after stripping returns [ErrEmptyPattern].
func ParseSpec(s string) (Spec, error) {
	var spec Spec
	if rest, ok := strings.CutPrefix(s, "r/"); ok {
		spec.Options.Regex = true
		s = rest
	}
	if idx := strings.LastIndexByte(s, '/'); idx >= 0 {
		if opts, ok := parseFlags(s[idx+1:]); ok {
			opts.Regex = spec.Options.Regex
			spec.Options = opts
			s = s[:idx]
		}
	}
	if s == "" {
		return Spec{}, ErrEmptyPattern
	}
	spec.Pattern = s
	return spec, nil
}

// Align applies the parsed spec to text.
func (s Spec) Align(text string) string {
	return Align(text, s.Pattern, s.Options)
}

func parseFlags(s string) (Options, bool) {
	var opts Options
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case 'g':
			opts.Global = true
			j := i + 1
			for j < len(s) && s[j] >= '0' && s[j] <= '9' {
				j++
			}
			if j > i+1 {
				n, err := strconv.Atoi(s[i+1 : j])
				if err != nil {
					return Options{}, false
				}
				opts.Count = n
			}
			i = j - 1
		case 'n':
			opts.AfterDelimiter = true
		case 'r':
			opts.Right = true
		default:
			return Options{}, false
		}
	}
	return opts, true
}
