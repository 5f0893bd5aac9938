package sheet

import (
	"context"

	"github.com/vk/cellgrid/internal/ctxlog"
)

// DefaultPasses is the pass budget used when none is configured.
const DefaultPasses = 10

// Driver resolves a grid with a bounded number of Jacobi-style passes: every
// pass reads a snapshot taken at its start and writes to the live grid, so
// updates made during a pass become visible only to the next one.
type Driver struct {
	passes   int
	resolver *Resolver
}

var _ Strategy = (*Driver)(nil)

// NewDriver returns a driver running at most passes passes. A non-positive
// budget selects DefaultPasses and a nil resolver selects NewResolver().
func NewDriver(passes int, resolver *Resolver) *Driver {
	if passes <= 0 {
		passes = DefaultPasses
	}
	if resolver == nil {
		resolver = NewResolver()
	}
	return &Driver{passes: passes, resolver: resolver}
}

// Passes returns the pass budget.
func (d *Driver) Passes() int {
	return d.passes
}

// Run resolves g in place. It stops after the pass budget, or as soon as a
// pass changes nothing: the next snapshot would equal the current one, so
// every later pass would be a no-op as well. Only Pending cells are stepped;
// terminal statuses are never revisited.
func (d *Driver) Run(ctx context.Context, g *Grid) Report {
	logger := ctxlog.FromContext(ctx)
	report := newReport("passes")

	for pass := 1; pass <= d.passes; pass++ {
		pending := g.PendingPositions()
		if len(pending) == 0 {
			break
		}

		snap := g.Snapshot()
		changed := 0
		for _, p := range pending {
			cur, _ := g.Get(p)
			next, ok, err := d.resolver.Step(snap, cur)
			if err != nil {
				report.Diagnostics[p] = err
			}
			if ok {
				g.Set(p, next)
				changed++
			}
		}

		report.Passes = pass
		logger.Debug("Resolution pass finished.", "pass", pass, "pending", len(pending), "changed", changed)
		if changed == 0 {
			break
		}
	}

	report.Pending = g.PendingPositions()
	logger.Debug("Pass driver finished.", "passes", report.Passes, "still_pending", len(report.Pending))
	return report
}
