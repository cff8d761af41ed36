package pdf

import (
	"strings"
	"testing"
)

func TestRenderPaginatesLongTables(t *testing.T) {
	canvas := newFakeCanvas()
	rec := testRecord(90)

	if _, err := render(canvas, A4(), rec); err != nil {
		t.Fatalf("render failed: %v", err)
	}

	if len(canvas.pages) < 2 {
		t.Fatalf("expected the table to spill onto multiple pages, got %d", len(canvas.pages))
	}

	// Shop header and table header must be redrawn on every page that
	// carries item rows, continuation pages included.
	for i, page := range canvas.pages {
		if !page.contains("Toko Nota") {
			t.Fatalf("page %d: missing shop header", i+1)
		}
		if !page.contains("Description") {
			t.Fatalf("page %d: missing table header", i+1)
		}
	}

	rows := 0
	for _, page := range canvas.pages {
		for _, txt := range page.texts {
			if strings.Contains(txt.s, "Kemeja Batik") {
				rows++
			}
		}
	}
	if rows != 90 {
		t.Fatalf("expected all 90 rows rendered, got %d", rows)
	}
}

func TestRenderShortInvoiceFitsOnOnePage(t *testing.T) {
	canvas := newFakeCanvas()
	if _, err := render(canvas, A4(), testRecord(3)); err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if len(canvas.pages) != 1 {
		t.Fatalf("expected a single page, got %d", len(canvas.pages))
	}
}

func TestRenderTotalsBlockConditionalLines(t *testing.T) {
	rec := testRecord(2)
	rec.Totals.AdjustedAmountCents = 50000
	rec.Totals.TotalAmountCents = rec.Totals.SubtotalBeforeAdjustCents - 50000
	rec.Totals.AdvanceCents = 100000
	rec.Totals.RemainingBalanceCents = rec.Totals.TotalAmountCents - 100000

	canvas := newFakeCanvas()
	if _, err := render(canvas, A4(), rec); err != nil {
		t.Fatalf("render failed: %v", err)
	}

	last := canvas.pages[len(canvas.pages)-1]
	if !last.contains("Adjustment") || !last.contains("-Rp500") {
		t.Fatalf("expected a negative adjustment line: %+v", last.texts)
	}
	if !last.contains("Advance Paid") {
		t.Fatalf("expected an advance line")
	}
	if !last.contains("Remaining Balance") {
		t.Fatalf("expected the remaining balance line")
	}
}

func TestRenderOmitsZeroAdjustmentAndAdvance(t *testing.T) {
	canvas := newFakeCanvas()
	if _, err := render(canvas, A4(), testRecord(2)); err != nil {
		t.Fatalf("render failed: %v", err)
	}

	last := canvas.pages[len(canvas.pages)-1]
	if last.contains("Adjustment") {
		t.Fatalf("zero adjustment must not be rendered")
	}
	if last.contains("Advance Paid") {
		t.Fatalf("zero advance must not be rendered")
	}
	if !last.contains("Subtotal") || !last.contains("Remaining Balance") {
		t.Fatalf("subtotal and remaining balance are always rendered")
	}
}

func TestRenderWrapsLongNotes(t *testing.T) {
	rec := testRecord(2)
	rec.Notes = strings.TrimSpace(strings.Repeat("ambil sebelum hari Sabtu ", 12))

	canvas := newFakeCanvas()
	if _, err := render(canvas, A4(), rec); err != nil {
		t.Fatalf("render failed: %v", err)
	}

	last := canvas.pages[len(canvas.pages)-1]
	if !last.contains("Notes:") {
		t.Fatalf("expected notes label")
	}

	// 12 repetitions at 6pt per rune exceed one content-width line, so
	// the note must wrap onto several lines with no words lost.
	noteLines := 0
	for _, txt := range last.texts {
		if strings.Contains(txt.s, "ambil sebelum") {
			noteLines++
		}
	}
	if noteLines < 2 {
		t.Fatalf("expected the note to wrap onto multiple lines, got %d", noteLines)
	}
}

func TestRenderDecimalConsistencyAcrossDocument(t *testing.T) {
	rec := testRecord(2)
	// A single odd-cent line total forces every amount to 2 decimals.
	rec.Lines[0].LineTotalCents = 249950
	rec.Totals.SubtotalBeforeAdjustCents = 499950
	rec.Totals.TotalAmountCents = 499950
	rec.Totals.RemainingBalanceCents = 499950

	canvas := newFakeCanvas()
	if _, err := render(canvas, A4(), rec); err != nil {
		t.Fatalf("render failed: %v", err)
	}

	for _, page := range canvas.pages {
		for _, txt := range page.texts {
			if !strings.HasPrefix(txt.s, "Rp") {
				continue
			}
			if !strings.Contains(txt.s, ".") {
				t.Fatalf("amount %q rendered without decimals in a fractional document", txt.s)
			}
		}
	}
}
