package sheet

import "strconv"

// StatusKind is the resolution lifecycle state of one grid position.
type StatusKind uint8

const (
	// StatusError is the zero value. A real cell only reaches it when its
	// formula breaks an internal invariant.
	StatusError StatusKind = iota
	// StatusEmpty marks a blank source field.
	StatusEmpty
	// StatusPending marks a cell whose value is not reduced to a literal yet.
	StatusPending
	// StatusFinished marks a cell holding a number, a text or no value.
	StatusFinished
)

// String returns the lower-case name of the state.
func (k StatusKind) String() string {
	switch k {
	case StatusError:
		return "error"
	case StatusEmpty:
		return "empty"
	case StatusPending:
		return "pending"
	case StatusFinished:
		return "finished"
	default:
		return "status(" + strconv.Itoa(int(k)) + ")"
	}
}

// Cell is the content of one non-empty source field.
type Cell struct {
	// Original is the raw field text, kept for diagnostics.
	Original string
	Value    Value
	// Comment is the trimmed text after the first '#', if HasComment is set.
	Comment    string
	HasComment bool
}

// Status pairs a lifecycle state with the cell it describes. Empty statuses
// built by the parser carry a zero Cell; a status copied through a reference
// keeps the referencing cell's original text and comment.
type Status struct {
	Kind StatusKind
	Cell Cell
}

// Empty returns the status of a blank field.
func Empty() Status {
	return Status{Kind: StatusEmpty}
}

// Pending returns a pending status for c.
func Pending(c Cell) Status {
	return Status{Kind: StatusPending, Cell: c}
}

// Finished returns a finished status for c.
func Finished(c Cell) Status {
	return Status{Kind: StatusFinished, Cell: c}
}

// Failed returns the error status, keeping c for diagnostics.
func Failed(c Cell) Status {
	return Status{Kind: StatusError, Cell: c}
}

// IsTerminal reports whether the status can no longer change.
func (s Status) IsTerminal() bool {
	return s.Kind != StatusPending
}

// Equal reports whether s and o are identical, comment and original text
// included.
func (s Status) Equal(o Status) bool {
	return s.Kind == o.Kind &&
		s.Cell.Original == o.Cell.Original &&
		s.Cell.Comment == o.Cell.Comment &&
		s.Cell.HasComment == o.Cell.HasComment &&
		s.Cell.Value.Equal(o.Cell.Value)
}

// withValue returns a copy of s with kind and value replaced. Original text
// and comment are carried over untouched.
func (s Status) withValue(kind StatusKind, v Value) Status {
	c := s.Cell
	c.Value = v
	return Status{Kind: kind, Cell: c}
}
