package sheet

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisplay(t *testing.T) {
	testCases := []struct {
		name        string
		status      Status
		wantDisplay string
		wantComment string
	}{
		{"error", Failed(Cell{Comment: "lost", HasComment: true}), "Error", ""},
		{"empty", Empty(), "", ""},
		{"number", Finished(Cell{Value: Number(5)}), "5.000", ""},
		{"rounded", Finished(Cell{Value: Number(2.0 / 3)}), "0.667", ""},
		{"infinite", Finished(Cell{Value: Number(math.Inf(1))}), "+Inf", ""},
		{"text with comment", Finished(Cell{Value: Text("name"), Comment: "label", HasComment: true}), "name", "label"},
		{"comment only", Finished(Cell{Comment: "header", HasComment: true}), "", "header"},
		{"pending reference", Pending(Cell{Value: Reference(at(3, 1))}), "PENDING: [3, 1]", ""},
		{"pending range", Pending(Cell{Value: Range(at(0, 0), at(1, 2))}), "PENDING: Span([0, 0], [1, 2])", ""},
		{"pending sum", Pending(Cell{Value: Aggregate(Range(at(0, 0), at(0, 2)))}), "PENDING: Sum(Span([0, 0], [0, 2]))", ""},
		{"pending text", Pending(Cell{Value: Text("[abc]"), Comment: "bad", HasComment: true}), "PENDING: [abc]", "bad"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			display, comment := Display(tc.status)
			assert.Equal(t, tc.wantDisplay, display)
			assert.Equal(t, tc.wantComment, comment)
		})
	}
}

func TestValueKind_String(t *testing.T) {
	assert.Equal(t, "aggregate", KindAggregate.String())
	assert.Equal(t, "none", Value{}.Kind.String())
	assert.Equal(t, "kind(9)", ValueKind(9).String())
	assert.Equal(t, "pending", StatusPending.String())
}

func TestGrid_SnapshotIsDetached(t *testing.T) {
	g := NewGrid(Extent{Width: 1, Height: 1})
	g.Set(at(0, 0), Finished(Cell{Value: Number(1)}))

	snap := g.Snapshot()
	g.Set(at(0, 0), Finished(Cell{Value: Number(2)}))

	s, ok := snap.Get(at(0, 0))
	assert.True(t, ok)
	assert.Equal(t, Number(1), s.Cell.Value)
	assert.Equal(t, g.Extent(), snap.Extent())
}
