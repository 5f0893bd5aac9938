package sheet

import (
	"context"
	"strconv"
)

// Strategy resolves the pending cells of a grid in place.
type Strategy interface {
	Run(ctx context.Context, g *Grid) Report
}

// Outcome explains why a cell is still pending after ordered resolution.
type Outcome uint8

const (
	// OutcomeUnresolved: the cell depends on a missing position or on another
	// cell that could not be resolved.
	OutcomeUnresolved Outcome = iota + 1
	// OutcomeCycle: the cell is part of a reference cycle.
	OutcomeCycle
	// OutcomeMalformed: the formula text could not be parsed.
	OutcomeMalformed
	// OutcomeInert: the value has no evaluation rule, e.g. a bare Span.
	OutcomeInert
)

// String returns the lower-case name of the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeUnresolved:
		return "unresolved"
	case OutcomeCycle:
		return "cycle"
	case OutcomeMalformed:
		return "malformed"
	case OutcomeInert:
		return "inert"
	default:
		return "outcome(" + strconv.Itoa(int(o)) + ")"
	}
}

// Report summarises one resolution run.
type Report struct {
	// Strategy names the strategy that produced the report.
	Strategy string
	// Passes is the number of passes executed.
	Passes int
	// Pending lists the positions still pending at the end, row-major.
	Pending []Position
	// Diagnostics holds the latest diagnostic reported for each position.
	Diagnostics map[Position]error
	// Outcomes explains every pending position. Only the ordered strategy
	// fills it.
	Outcomes map[Position]Outcome
}

func newReport(strategy string) Report {
	return Report{
		Strategy:    strategy,
		Diagnostics: make(map[Position]error),
		Outcomes:    make(map[Position]Outcome),
	}
}

// Converged reports whether every cell left the Pending state.
func (r Report) Converged() bool {
	return len(r.Pending) == 0
}
