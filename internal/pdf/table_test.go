package pdf

import (
	"math"
	"strings"
	"testing"
)

func TestTableNormalizesFractions(t *testing.T) {
	p := NewPager(newFakeCanvas(), testGeometry())
	// Fractions sum to 9, not 1; bounds must still cover the content
	// width exactly.
	table := NewTable(p, []Column{
		{Title: "A", Frac: 3},
		{Title: "B", Frac: 6},
	})

	if table.left[0] != p.Left() {
		t.Fatalf("first column should start at the left margin")
	}
	if math.Abs(table.right[1]-p.Right()) > 0.001 {
		t.Fatalf("last column should end at the right margin, got %.3f", table.right[1])
	}
	wantSplit := p.Left() + p.ContentWidth()/3
	if math.Abs(table.right[0]-wantSplit) > 0.001 {
		t.Fatalf("expected 1/3 split at %.3f, got %.3f", wantSplit, table.right[0])
	}
}

func TestTableDefaultsNonPositiveFractions(t *testing.T) {
	p := NewPager(newFakeCanvas(), testGeometry())
	table := NewTable(p, []Column{{Title: "A"}, {Title: "B"}})
	mid := p.Left() + p.ContentWidth()/2
	if math.Abs(table.right[0]-mid) > 0.001 {
		t.Fatalf("expected even split at %.3f, got %.3f", mid, table.right[0])
	}
}

func TestDrawHeaderDrawsTitlesBetweenRules(t *testing.T) {
	canvas := newFakeCanvas()
	p := NewPager(canvas, testGeometry())
	p.StartPage()

	table := NewTable(p, []Column{{Title: "Item", Frac: 1}, {Title: "Total", Frac: 1, Align: AlignRight}})
	table.DrawHeader(p)

	if canvas.page().lines != 2 {
		t.Fatalf("expected top and bottom rules, got %d", canvas.page().lines)
	}
	if !canvas.page().contains("Item") || !canvas.page().contains("Total") {
		t.Fatalf("expected column titles on the page: %+v", canvas.page().texts)
	}
}

func TestDrawEllipsizedRowStaysInsideColumn(t *testing.T) {
	canvas := newFakeCanvas()
	p := NewPager(canvas, testGeometry())
	p.StartPage()

	table := NewTable(p, []Column{
		{Title: "Desc", Frac: 1, Pad: 2},
		{Title: "Qty", Frac: 1, Align: AlignRight, Pad: 2},
	})
	table.DrawEllipsizedRow(p, []string{"an extremely long description that overflows", "3"})

	var desc fakeText
	found := false
	for _, txt := range canvas.page().texts {
		if strings.HasSuffix(txt.s, Ellipsis) {
			desc = txt
			found = true
		}
	}
	if !found {
		t.Fatalf("expected the overflowing cell to be ellipsized: %+v", canvas.page().texts)
	}

	avail := table.right[0] - table.left[0] - 4
	if w := canvas.TextWidth(desc.s, desc.st); w > avail {
		t.Fatalf("cell width %.1f exceeds column space %.1f", w, avail)
	}
}

func TestDrawRowAdvancesCursor(t *testing.T) {
	p := NewPager(newFakeCanvas(), testGeometry())
	p.StartPage()
	table := NewTable(p, []Column{{Title: "A", Frac: 1}})

	before := p.Y()
	table.DrawRow(p, []string{"x"})
	if p.Y() != before+table.RowHeight() {
		t.Fatalf("expected cursor advanced by one row height")
	}
}
