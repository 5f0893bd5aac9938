package sheet

import (
	"iter"
	"maps"
	"slices"
)

// Lookup is the read-only view of a grid that the Resolver consults.
type Lookup interface {
	// Get returns the status at p and whether p appeared in the source.
	Get(p Position) (Status, bool)
}

// Grid is a sparse mapping from positions to statuses plus the bounding
// extent computed while parsing. Positions never present in the source are
// absent from the mapping.
type Grid struct {
	cells  map[Position]Status
	extent Extent
}

var _ Lookup = (*Grid)(nil)

// NewGrid returns an empty grid with the given extent. Parse is the usual way
// to build a grid; NewGrid exists for callers assembling one by hand.
func NewGrid(extent Extent) *Grid {
	return &Grid{
		cells:  make(map[Position]Status),
		extent: extent,
	}
}

// Get implements Lookup.
func (g *Grid) Get(p Position) (Status, bool) {
	s, ok := g.cells[p]
	return s, ok
}

// Set replaces the status at p. The extent is never changed.
func (g *Grid) Set(p Position, s Status) {
	g.cells[p] = s
}

// Extent returns the bounding size computed at parse time.
func (g *Grid) Extent() Extent {
	return g.extent
}

// Len returns the number of positions present in the grid.
func (g *Grid) Len() int {
	return len(g.cells)
}

// Positions returns every present position in row-major order.
func (g *Grid) Positions() []Position {
	ps := slices.Collect(maps.Keys(g.cells))
	slices.SortFunc(ps, Position.Compare)
	return ps
}

// All iterates the present positions in row-major order.
func (g *Grid) All() iter.Seq2[Position, Status] {
	return func(yield func(Position, Status) bool) {
		for _, p := range g.Positions() {
			if !yield(p, g.cells[p]) {
				return
			}
		}
	}
}

// PendingPositions returns the positions whose status is Pending, row-major.
func (g *Grid) PendingPositions() []Position {
	var ps []Position
	for p, s := range g.cells {
		if s.Kind == StatusPending {
			ps = append(ps, p)
		}
	}
	slices.SortFunc(ps, Position.Compare)
	return ps
}

// Snapshot returns a structural copy of the grid. Values are immutable, so
// copying the map is enough to decouple the copy from later Set calls.
func (g *Grid) Snapshot() *Grid {
	return &Grid{
		cells:  maps.Clone(g.cells),
		extent: g.extent,
	}
}
