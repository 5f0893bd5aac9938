// Package render prints resolved grids as aligned plain-text tables.
package render

import (
	"bufio"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/apparentlymart/go-textseg/v15/textseg"

	"github.com/vk/cellgrid/internal/sheet"
)

// Separator is printed after every table.
var Separator = strings.Repeat("-", 20)

// Table writes g to w. Each row inside the extent produces two lines: the
// comments of the row, then the display values. Every column is padded to the
// width of its widest comment or value and followed by one space. Positions
// absent from the grid render as blanks.
func Table(w io.Writer, g *sheet.Grid) error {
	ext := g.Extent()

	comments := make([][]string, ext.Height)
	values := make([][]string, ext.Height)
	widths := make([]int, ext.Width)
	for row := range ext.Height {
		comments[row] = make([]string, ext.Width)
		values[row] = make([]string, ext.Width)
		for col := range ext.Width {
			if s, ok := g.Get(sheet.Position{Row: row, Col: col}); ok {
				values[row][col], comments[row][col] = sheet.Display(s)
			}
			widths[col] = max(widths[col], width(comments[row][col]), width(values[row][col]))
		}
	}

	bw := bufio.NewWriter(w)
	for row := range ext.Height {
		writeLine(bw, comments[row], widths)
		writeLine(bw, values[row], widths)
	}
	return bw.Flush()
}

// writeLine writes one padded line. Errors surface through Flush.
func writeLine(w *bufio.Writer, fields []string, widths []int) {
	for col, f := range fields {
		w.WriteString(f)
		w.WriteString(strings.Repeat(" ", widths[col]-width(f)+1))
	}
	w.WriteByte('\n')
}

// width counts user-perceived characters, so combining marks do not widen a
// column.
func width(s string) int {
	n, err := textseg.TokenCount([]byte(s), textseg.ScanGraphemeClusters)
	if err != nil {
		return utf8.RuneCountInString(s)
	}
	return n
}
