// Package delimiter guesses the field separator of a sheet from its content.
package delimiter

import (
	"regexp"
	"slices"
	"strings"

	"github.com/csimplestring/go-csv/detector"
)

// Default is the separator used when detection finds nothing.
const Default = ','

// sampleLines bounds how much of a sheet is inspected.
const sampleLines = 15

// nonDelimiters lists the bytes that can never separate fields: anything
// that may appear inside a number, a comment or a formula, plus the high
// bytes of multi-byte UTF-8 sequences.
const nonDelimiters = `[[:alnum:]\n\r@\. \[\]\(\)\+\-\*/\^%#_\x{0080}-\x{00FF}]`

var nonDelimiterRE = regexp.MustCompile(nonDelimiters)

// preferred breaks ties between several consistent candidates.
var preferred = []string{",", "\t", ";", "|"}

// Detect returns the separator that occurs equally often on every sampled
// line of sample. Text inside brackets and parentheses is ignored, so the
// commas of "[0,1]" or "Span(...)" never count. When no separator is
// consistent across all lines, lines holding no separator at all, such as a
// lone Sum formula, are left out and detection runs again. Common separators
// win ties; among the rest the lowest byte wins. fallback is returned when
// there is no consistent candidate.
func Detect(sample string, fallback rune) rune {
	masked := maskNested(sample)
	if r, ok := detect(masked); ok {
		return r
	}
	if r, ok := detect(separatedLines(masked)); ok {
		return r
	}
	return fallback
}

func detect(sample string) (rune, bool) {
	d := detector.New()
	lines, pattern := sampleLines, nonDelimiters
	d.Configure(&lines, &pattern)

	candidates := d.DetectDelimiter(strings.NewReader(sample), '"')
	if len(candidates) == 0 {
		return 0, false
	}
	for _, p := range preferred {
		if slices.Contains(candidates, p) {
			return rune(p[0]), true
		}
	}
	return rune(slices.Min(candidates)[0]), true
}

// separatedLines keeps the lines of a masked sample that contain at least one
// byte that could separate fields.
func separatedLines(masked string) string {
	var kept []string
	for line := range strings.Lines(masked) {
		line = strings.TrimRight(line, "\r\n")
		if nonDelimiterRE.ReplaceAllString(line, "") != "" {
			kept = append(kept, line)
		}
	}
	return strings.Join(kept, "\n")
}

// maskNested drops everything enclosed in () or [] on each line, brackets
// included. Unbalanced nesting ends at the line break.
func maskNested(sample string) string {
	var b strings.Builder
	b.Grow(len(sample))
	depth := 0
	for _, r := range sample {
		switch {
		case r == '\n':
			depth = 0
			b.WriteRune(r)
		case r == '(' || r == '[':
			depth++
		case r == ')' || r == ']':
			depth = max(depth-1, 0)
		case depth == 0:
			b.WriteRune(r)
		}
	}
	return b.String()
}
