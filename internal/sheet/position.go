package sheet

import "fmt"

// MaxIndex is the exclusive upper bound of both position axes.
const MaxIndex = 20000

// Position identifies one grid cell by zero-based row and column.
type Position struct {
	Row int
	Col int
}

// NewPosition returns the position at row and col, or an error wrapping
// ErrOutOfBounds when either component is negative or not below MaxIndex.
func NewPosition(row, col int) (Position, error) {
	if row < 0 || row >= MaxIndex || col < 0 || col >= MaxIndex {
		return Position{}, fmt.Errorf("%w: [%d, %d]", ErrOutOfBounds, row, col)
	}
	return Position{Row: row, Col: col}, nil
}

// String renders the position in its literal form, e.g. "[2, 0]".
func (p Position) String() string {
	return fmt.Sprintf("[%d, %d]", p.Row, p.Col)
}

// Less orders positions row-major.
func (p Position) Less(o Position) bool {
	if p.Row != o.Row {
		return p.Row < o.Row
	}
	return p.Col < o.Col
}

// Compare orders positions row-major, returning -1, 0 or +1, for use with
// slices.SortFunc.
func (p Position) Compare(o Position) int {
	switch {
	case p.Less(o):
		return -1
	case o.Less(p):
		return 1
	default:
		return 0
	}
}

// Extent is the bounding size of a parsed grid.
type Extent struct {
	Width  int // number of columns
	Height int // number of rows
}

// Contains reports whether p lies inside the extent.
func (e Extent) Contains(p Position) bool {
	return p.Row >= 0 && p.Row < e.Height && p.Col >= 0 && p.Col < e.Width
}
