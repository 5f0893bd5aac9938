package sheet

import (
	"fmt"
	"strconv"
)

// ValueKind tags the payload held by a Value.
type ValueKind uint8

const (
	// KindNone is the zero value: the cell carries no value at all.
	KindNone ValueKind = iota
	// KindNumber is a resolved numeric scalar.
	KindNumber
	// KindText is a string literal, or an unparsed formula body while pending.
	KindText
	// KindReference points at a single cell awaiting resolution.
	KindReference
	// KindRange is an inclusive rectangle of cells.
	KindRange
	// KindAggregate is a sum over the range held in Inner.
	KindAggregate
)

// String returns the lower-case name of the kind.
func (k ValueKind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindNumber:
		return "number"
	case KindText:
		return "text"
	case KindReference:
		return "reference"
	case KindRange:
		return "range"
	case KindAggregate:
		return "aggregate"
	default:
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Value is the typed payload of a cell. Only the fields belonging to Kind are
// meaningful; Values are treated as immutable once built.
type Value struct {
	Kind   ValueKind
	Number float64
	Text   string
	// From is the referenced position, or the first corner of a range.
	From Position
	// To is the second corner of a range.
	To Position
	// Inner is the wrapped value of an aggregate. It must be a range.
	Inner *Value
}

// Number returns a numeric value.
func Number(n float64) Value {
	return Value{Kind: KindNumber, Number: n}
}

// Text returns a text value.
func Text(s string) Value {
	return Value{Kind: KindText, Text: s}
}

// Reference returns a single-cell reference to p.
func Reference(p Position) Value {
	return Value{Kind: KindReference, From: p}
}

// Range returns the inclusive rectangle spanned by from and to.
func Range(from, to Position) Value {
	return Value{Kind: KindRange, From: from, To: to}
}

// Aggregate wraps inner, which should be a range, in a pending sum.
func Aggregate(inner Value) Value {
	return Value{Kind: KindAggregate, Inner: &inner}
}

// IsNone reports whether the value is absent.
func (v Value) IsNone() bool {
	return v.Kind == KindNone
}

// Equal reports whether v and o hold the same payload. Aggregates compare
// their wrapped values.
func (v Value) Equal(o Value) bool {
	if v.Kind != o.Kind {
		return false
	}
	switch v.Kind {
	case KindNone:
		return true
	case KindNumber:
		return v.Number == o.Number
	case KindText:
		return v.Text == o.Text
	case KindReference:
		return v.From == o.From
	case KindRange:
		return v.From == o.From && v.To == o.To
	case KindAggregate:
		if v.Inner == nil || o.Inner == nil {
			return v.Inner == o.Inner
		}
		return v.Inner.Equal(*o.Inner)
	}
	return false
}

// String returns the canonical textual form used for display. Numbers are
// printed with three decimals.
func (v Value) String() string {
	switch v.Kind {
	case KindNone:
		return ""
	case KindNumber:
		return fmt.Sprintf("%.3f", v.Number)
	case KindText:
		return v.Text
	case KindReference:
		return v.From.String()
	case KindRange:
		return fmt.Sprintf("Span(%s, %s)", v.From, v.To)
	case KindAggregate:
		if v.Inner == nil {
			return "Sum()"
		}
		return "Sum(" + v.Inner.String() + ")"
	default:
		return v.Kind.String()
	}
}
