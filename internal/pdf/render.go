package pdf

import (
	"bytes"

	"notapos/backend/internal/domain"
)

// Render lays one invoice record out onto A4 pages and returns the
// encoded PDF. It is stateless between calls: every invocation builds
// its own canvas and pager, so concurrent renders of different orders
// are safe.
func Render(rec domain.InvoiceRecord) ([]byte, error) {
	geom := A4()
	return render(newFpdfCanvas(geom), geom, rec)
}

func render(canvas Canvas, geom Geometry, rec domain.InvoiceRecord) ([]byte, error) {
	// The decimal policy is decided once, over every amount the
	// document will show, before any drawing happens.
	money := NewMoneyFormatter(rec.CurrencySymbol, collectAmounts(rec))

	p := NewPager(canvas, geom)
	p.StartPage()

	renderHeader(p, rec)
	table := NewTable(p, itemColumns())
	renderItemsTable(p, table, rec, money)
	renderNotes(p, rec)
	renderTotals(p, rec, money)

	var buf bytes.Buffer
	if err := p.Finish(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func collectAmounts(rec domain.InvoiceRecord) []int64 {
	amounts := make([]int64, 0, 2*len(rec.Lines)+5)
	for _, line := range rec.Lines {
		amounts = append(amounts, line.UnitPriceCents, line.LineTotalCents)
	}
	totals := rec.Totals
	return append(amounts,
		totals.SubtotalBeforeAdjustCents,
		totals.AdjustedAmountCents,
		totals.TotalAmountCents,
		totals.AdvanceCents,
		totals.RemainingBalanceCents,
	)
}
