// Package sheet is the cell resolution engine. It classifies the raw fields of
// a delimited text file into cell statuses, and then advances pending formula
// cells (position references, ranges and range sums) towards finished values.
//
// Two resolution strategies share the same single-step Resolver:
//
//   - Driver runs a bounded number of snapshot-then-update passes over the
//     whole grid. Every pass reads only the previous pass's results, so a chain
//     of k references needs k passes.
//   - Ordered builds a dependency graph of the pending cells, reports cycles and
//     unresolvable references explicitly, and evaluates everything else in
//     topological order without snapshots.
//
// Neither strategy ever returns an error for a formula. The worst outcome for a
// cell is to stay Pending, which Display renders distinctly from a finished
// value.
package sheet
