package sheet

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/vk/cellgrid/internal/ctxlog"
	"github.com/vk/cellgrid/internal/dag"
)

// Ordered resolves a grid in one dependency-ordered sweep instead of blind
// passes. Pending cells that cannot finish get an explicit Outcome.
type Ordered struct {
	resolver *Resolver
}

var _ Strategy = (*Ordered)(nil)

// NewOrdered returns an ordered strategy. A nil resolver selects
// NewResolver().
func NewOrdered(resolver *Resolver) *Ordered {
	if resolver == nil {
		resolver = NewResolver()
	}
	return &Ordered{resolver: resolver}
}

// Run resolves g in place:
//
//  1. formula text of every pending cell is compiled into a value;
//  2. a graph links each pending cell to the pending cells it reads;
//  3. cells on a cycle are set aside;
//  4. the rest is stepped in topological order against the live grid.
func (o *Ordered) Run(ctx context.Context, g *Grid) Report {
	logger := ctxlog.FromContext(ctx)
	report := newReport("ordered")
	report.Passes = 1

	o.compile(g, &report)

	deps := dag.New(Position.Compare)
	for _, p := range g.PendingPositions() {
		deps.AddNode(p)
	}
	selfLoops := make(map[Position]bool)
	for _, p := range g.PendingPositions() {
		cur, _ := g.Get(p)
		for _, q := range reads(g, cur.Cell.Value) {
			if !deps.HasNode(q) {
				continue
			}
			if q == p {
				selfLoops[p] = true
				continue
			}
			// AddEdge only fails for missing nodes or self edges, both
			// excluded above.
			_ = deps.AddEdge(q, p)
		}
	}

	onCycle := make(map[Position]bool)
	for p := range selfLoops {
		onCycle[p] = true
	}
	for _, cycle := range deps.Cycles() {
		for _, p := range cycle {
			onCycle[p] = true
		}
	}

	order, blocked := deps.TopologicalOrder()
	logger.Debug("Dependency graph built.", "nodes", deps.Len(), "ordered", len(order), "blocked", len(blocked), "on_cycle", len(onCycle))

	for _, p := range order {
		if onCycle[p] {
			continue
		}
		o.settle(g, p, &report)
	}

	report.Pending = g.PendingPositions()
	for _, p := range report.Pending {
		outcome := classify(g, p, onCycle[p], report.Diagnostics[p])
		report.Outcomes[p] = outcome
		if outcome != OutcomeUnresolved || report.Diagnostics[p] != nil {
			continue
		}
		// Dependencies only fails for unknown nodes and p is a node.
		if waiting, _ := deps.Dependencies(p); len(waiting) > 0 {
			report.Diagnostics[p] = fmt.Errorf("%w: waiting on %s", ErrUnresolved, joinPositions(waiting))
		}
	}
	logger.Debug("Ordered resolution finished.", "still_pending", len(report.Pending))
	return report
}

// compile steps every pending text cell once so that formula bodies become
// reference, range or aggregate values.
func (o *Ordered) compile(g *Grid, report *Report) {
	for _, p := range g.PendingPositions() {
		cur, _ := g.Get(p)
		if cur.Cell.Value.Kind != KindText {
			continue
		}
		next, changed, err := o.resolver.Step(g, cur)
		if err != nil {
			report.Diagnostics[p] = err
		}
		if changed {
			g.Set(p, next)
		}
	}
}

// settle steps the cell at p until it stops changing. A reference to a
// pending reference takes one step per hop, so the number of steps is bounded
// by the grid size.
func (o *Ordered) settle(g *Grid, p Position, report *Report) {
	for range g.Len() + 1 {
		cur, _ := g.Get(p)
		next, changed, err := o.resolver.Step(g, cur)
		if err != nil {
			report.Diagnostics[p] = err
		}
		if !changed {
			return
		}
		g.Set(p, next)
	}
}

// reads lists the positions a pending value reads from.
func reads(g *Grid, v Value) []Position {
	switch v.Kind {
	case KindReference:
		return []Position{v.From}
	case KindAggregate:
		if v.Inner == nil || v.Inner.Kind != KindRange {
			return nil
		}
		return membersIn(g, *v.Inner)
	}
	return nil
}

// membersIn returns the present positions inside rng. Large ranges over a
// small grid are filtered from the grid's side instead of enumerated.
func membersIn(g *Grid, rng Value) []Position {
	lo, hi := corners(rng.From, rng.To)
	area := (hi.Row - lo.Row + 1) * (hi.Col - lo.Col + 1)

	var out []Position
	if area > g.Len() {
		for _, p := range g.Positions() {
			if p.Row >= lo.Row && p.Row <= hi.Row && p.Col >= lo.Col && p.Col <= hi.Col {
				out = append(out, p)
			}
		}
		return out
	}
	for row := lo.Row; row <= hi.Row; row++ {
		for col := lo.Col; col <= hi.Col; col++ {
			p := Position{Row: row, Col: col}
			if _, ok := g.Get(p); ok {
				out = append(out, p)
			}
		}
	}
	return out
}

// classify explains why the cell at p is still pending. diag is the latest
// diagnostic of the cell, so text copied from a malformed cell counts as
// malformed too.
func classify(g *Grid, p Position, onCycle bool, diag error) Outcome {
	switch {
	case onCycle:
		return OutcomeCycle
	case errors.Is(diag, ErrMalformed):
		return OutcomeMalformed
	}
	s, _ := g.Get(p)
	switch s.Cell.Value.Kind {
	case KindReference, KindAggregate:
		return OutcomeUnresolved
	default:
		return OutcomeInert
	}
}

func joinPositions(ps []Position) string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = p.String()
	}
	return strings.Join(out, ", ")
}
