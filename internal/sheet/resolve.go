package sheet

import (
	"errors"
	"fmt"
	"iter"
	"strconv"
	"strings"
)

const (
	spanPrefix = "Span("
	sumPrefix  = "Sum("
)

// Resolver advances a single pending cell by exactly one evaluation step.
type Resolver struct{}

// NewResolver returns a Resolver.
func NewResolver() *Resolver {
	return &Resolver{}
}

// Step tries to move cur one step closer to a finished value, reading other
// cells only through snap.
//
// The returned changed flag is false when no progress was made, in which case
// next equals cur. A non-nil err is a diagnostic: it never means that next is
// unusable. Statuses other than Pending are returned untouched.
func (r *Resolver) Step(snap Lookup, cur Status) (next Status, changed bool, err error) {
	if cur.Kind != StatusPending {
		return cur, false, nil
	}

	v := cur.Cell.Value
	switch v.Kind {
	case KindText:
		return r.compile(cur)
	case KindReference:
		return r.follow(snap, cur)
	case KindAggregate:
		return r.sum(snap, cur)
	default:
		return cur, false, nil
	}
}

// compile turns formula text into a Reference, Range or Aggregate value.
func (r *Resolver) compile(cur Status) (Status, bool, error) {
	src := cur.Cell.Value.Text

	var (
		v   Value
		err error
	)
	switch {
	case strings.HasPrefix(src, "["):
		v, err = parseReference(src)
	case strings.HasPrefix(src, spanPrefix):
		v, err = parseSpan(src)
	case strings.HasPrefix(src, sumPrefix):
		v, err = parseSum(src)
	default:
		// Text such as "total [0,0]" has no evaluation rule.
		return cur, false, nil
	}
	if err != nil {
		return cur, false, err
	}
	return cur.withValue(StatusPending, v), true, nil
}

// follow replaces a reference with a copy of its target's status. The
// referencing cell keeps its own original text and comment. A target missing
// from snap leaves the cell as it is.
func (r *Resolver) follow(snap Lookup, cur Status) (Status, bool, error) {
	target, ok := snap.Get(cur.Cell.Value.From)
	if !ok {
		return cur, false, nil
	}
	next := cur.withValue(target.Kind, target.Cell.Value)
	if next.Equal(cur) {
		return cur, false, nil
	}
	return next, true, nil
}

// sum finishes an aggregate once no cell of its range is pending.
func (r *Resolver) sum(snap Lookup, cur Status) (Status, bool, error) {
	inner := cur.Cell.Value.Inner
	if inner == nil || inner.Kind != KindRange {
		got := KindNone
		if inner != nil {
			got = inner.Kind
		}
		return Failed(cur.Cell), true, fmt.Errorf("%w: wraps %s", ErrInvariant, got)
	}

	var (
		total float64
		diags []error
	)
	for p, s := range members(snap, *inner) {
		switch s.Kind {
		case StatusPending:
			return cur, false, nil
		case StatusFinished:
			switch s.Cell.Value.Kind {
			case KindNumber:
				total += s.Cell.Value.Number
			case KindNone:
			default:
				diags = append(diags, fmt.Errorf("%w: %s holds %s %q", ErrNonNumeric, p, s.Cell.Value.Kind, s.Cell.Value))
			}
		case StatusError:
			diags = append(diags, fmt.Errorf("%w: %s is an error", ErrNonNumeric, p))
		}
	}
	return cur.withValue(StatusFinished, Number(total)), true, errors.Join(diags...)
}

// members iterates the present cells of rng in row-major order. A *Grid
// lookup is filtered from the grid's side, so wide ranges over small grids
// stay cheap.
func members(snap Lookup, rng Value) iter.Seq2[Position, Status] {
	return func(yield func(Position, Status) bool) {
		if g, ok := snap.(*Grid); ok {
			for _, p := range membersIn(g, rng) {
				s, _ := g.Get(p)
				if !yield(p, s) {
					return
				}
			}
			return
		}
		lo, hi := corners(rng.From, rng.To)
		for row := lo.Row; row <= hi.Row; row++ {
			for col := lo.Col; col <= hi.Col; col++ {
				p := Position{Row: row, Col: col}
				if s, ok := snap.Get(p); ok && !yield(p, s) {
					return
				}
			}
		}
	}
}

// corners normalises two range corners into top-left and bottom-right.
func corners(a, b Position) (Position, Position) {
	return Position{Row: min(a.Row, b.Row), Col: min(a.Col, b.Col)},
		Position{Row: max(a.Row, b.Row), Col: max(a.Col, b.Col)}
}

// parseReference parses a complete "[row, col]" literal.
func parseReference(src string) (Value, error) {
	p, rest, err := parsePosition(src)
	if err != nil {
		return Value{}, err
	}
	if strings.TrimSpace(rest) != "" {
		return Value{}, fmt.Errorf("%w: trailing text %q after %s", ErrMalformed, rest, p)
	}
	return Reference(p), nil
}

// parseSpan parses a complete "Span([r1, c1], [r2, c2])" literal.
func parseSpan(src string) (Value, error) {
	v, rest, err := scanSpan(src)
	if err != nil {
		return Value{}, err
	}
	if strings.TrimSpace(rest) != "" {
		return Value{}, fmt.Errorf("%w: trailing text %q after %s", ErrMalformed, rest, v)
	}
	return v, nil
}

// parseSum parses a complete "Sum(Span(...))" literal.
func parseSum(src string) (Value, error) {
	body := strings.TrimLeft(strings.TrimPrefix(src, sumPrefix), " \t")
	if !strings.HasPrefix(body, spanPrefix) {
		return Value{}, fmt.Errorf("%w: Sum expects a Span in %q", ErrMalformed, src)
	}
	rng, rest, err := scanSpan(body)
	if err != nil {
		return Value{}, err
	}
	rest, ok := expect(rest, ')')
	if !ok {
		return Value{}, fmt.Errorf("%w: unterminated Sum in %q", ErrMalformed, src)
	}
	if strings.TrimSpace(rest) != "" {
		return Value{}, fmt.Errorf("%w: trailing text %q after Sum", ErrMalformed, rest)
	}
	return Aggregate(rng), nil
}

// scanSpan parses "Span(" position "," position ")" and returns the remainder.
func scanSpan(src string) (Value, string, error) {
	rest := strings.TrimPrefix(src, spanPrefix)

	from, rest, err := parsePosition(strings.TrimLeft(rest, " \t"))
	if err != nil {
		return Value{}, "", err
	}
	rest, ok := expect(rest, ',')
	if !ok {
		return Value{}, "", fmt.Errorf("%w: expected ',' between Span corners in %q", ErrMalformed, src)
	}
	to, rest, err := parsePosition(strings.TrimLeft(rest, " \t"))
	if err != nil {
		return Value{}, "", err
	}
	rest, ok = expect(rest, ')')
	if !ok {
		return Value{}, "", fmt.Errorf("%w: unterminated Span in %q", ErrMalformed, src)
	}
	return Range(from, to), rest, nil
}

// parsePosition parses a leading "[row, col]" literal and returns the text
// after its closing bracket.
func parsePosition(src string) (Position, string, error) {
	if !strings.HasPrefix(src, "[") {
		return Position{}, "", fmt.Errorf("%w: expected '[' at %q", ErrMalformed, src)
	}
	end := strings.IndexByte(src, ']')
	if end < 0 {
		return Position{}, "", fmt.Errorf("%w: missing ']' in %q", ErrMalformed, src)
	}

	rowText, colText, found := strings.Cut(src[1:end], ",")
	if !found {
		return Position{}, "", fmt.Errorf("%w: position %q needs two components", ErrMalformed, src[:end+1])
	}
	row, err := strconv.Atoi(strings.TrimSpace(rowText))
	if err != nil {
		return Position{}, "", fmt.Errorf("%w: row in %q is not an integer", ErrMalformed, src[:end+1])
	}
	col, err := strconv.Atoi(strings.TrimSpace(colText))
	if err != nil {
		return Position{}, "", fmt.Errorf("%w: column in %q is not an integer", ErrMalformed, src[:end+1])
	}
	p, err := NewPosition(row, col)
	if err != nil {
		return Position{}, "", fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	return p, src[end+1:], nil
}

// expect skips blanks and consumes ch.
func expect(src string, ch byte) (string, bool) {
	src = strings.TrimLeft(src, " \t")
	if src == "" || src[0] != ch {
		return src, false
	}
	return src[1:], true
}
