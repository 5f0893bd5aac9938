package sheet

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vk/cellgrid/internal/expr"
)

// Parse splits text into lines and each line into fields on sep, classifying
// every field on its own. Row indices follow lines and column indices follow
// fields. The only error is a row or column index reaching MaxIndex; formula
// syntax is never checked here.
func Parse(text string, sep rune) (*Grid, error) {
	g := NewGrid(Extent{})
	maxRow, maxCol := -1, -1

	for row, line := range splitLines(text) {
		for col, field := range strings.Split(line, string(sep)) {
			p, err := NewPosition(row, col)
			if err != nil {
				return nil, fmt.Errorf("field %q: %w", field, err)
			}
			g.Set(p, ParseCell(field))
			maxCol = max(maxCol, col)
		}
		maxRow = max(maxRow, row)
	}

	g.extent = Extent{Width: maxCol + 1, Height: maxRow + 1}
	return g, nil
}

// ParseCell classifies one raw field without any grid context:
//
//   - blank after trimming: Empty
//   - only a comment: Finished with no value
//   - a number or an arithmetic expression: Finished(Number)
//   - anything else without '[': Finished(Text)
//   - anything else: Pending(Text), left for the Resolver to parse
func ParseCell(raw string) Status {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Empty()
	}

	c := Cell{Original: raw}
	content := trimmed
	if before, after, found := strings.Cut(trimmed, "#"); found {
		content = strings.TrimSpace(before)
		c.Comment = strings.TrimSpace(after)
		c.HasComment = true
	}

	if content == "" {
		return Finished(c)
	}
	if n, ok := evalNumber(content); ok {
		c.Value = Number(n)
		return Finished(c)
	}
	c.Value = Text(content)
	if !strings.Contains(content, "[") {
		return Finished(c)
	}
	return Pending(c)
}

func evalNumber(content string) (float64, bool) {
	if n, err := strconv.ParseFloat(content, 64); err == nil {
		return n, true
	}
	n, err := expr.Eval(content)
	if err != nil {
		return 0, false
	}
	return n, true
}

// splitLines splits on '\n', strips a trailing '\r' from every line and drops
// the empty remainder after a final newline.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.Split(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}
