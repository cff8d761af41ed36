package pdf

import (
	"fmt"

	"notapos/backend/internal/domain"
)

const (
	logoSize   = 42
	headerGap  = 6
	sectionGap = 14
)

var (
	shopNameStyle  = Style{Bold: true, Size: 14}
	metaStyle      = Style{Size: 9}
	invoiceNoStyle = Style{Bold: true, Size: 10}
	totalValue     = Style{Size: 9}
	balanceStyle   = Style{Bold: true, Size: 11}
)

// itemColumns is the fixed column layout of the line-item table.
func itemColumns() []Column {
	return []Column{
		{Title: "Description", Frac: 0.28, Align: AlignLeft, Pad: 3},
		{Title: "Owner", Frac: 0.12, Align: AlignLeft, Pad: 3},
		{Title: "Type", Frac: 0.12, Align: AlignLeft, Pad: 3},
		{Title: "Qty", Frac: 0.08, Align: AlignRight, Pad: 3},
		{Title: "Unit Price", Frac: 0.15, Align: AlignRight, Pad: 3},
		{Title: "Disc %", Frac: 0.08, Align: AlignRight, Pad: 3},
		{Title: "Total", Frac: 0.17, Align: AlignRight, Pad: 3},
	}
}

// renderHeader draws the shop identity block and the invoice metadata
// lines below a divider. It is redrawn at the top of every
// continuation page.
func renderHeader(p *Pager, rec domain.InvoiceRecord) {
	rightInset := 0.0
	if len(rec.Logo) > 0 {
		p.Image(rec.Logo, p.Right()-logoSize, p.Y(), logoSize, logoSize)
		rightInset = logoSize + 10
	}

	p.TextLeft(rec.Shop.Name, shopNameStyle)
	if rec.Shop.Address != "" {
		x := p.Right() - rightInset - p.Canvas().TextWidth(rec.Shop.Address, metaStyle)
		p.TextAt(x, p.Y()+metaStyle.Size, rec.Shop.Address, metaStyle)
	}
	p.Advance(lineHeight(shopNameStyle))

	if rec.Shop.Phone != "" {
		p.TextLeft(rec.Shop.Phone, metaStyle)
	}
	p.Advance(lineHeight(metaStyle) + headerGap)

	p.Rule()
	p.Advance(headerGap)

	p.TextLeft(fmt.Sprintf("Invoice No: %s", rec.InvoiceNumber), invoiceNoStyle)
	p.TextRight(rec.IssuedAt.Format("02 Jan 2006 15:04"), metaStyle)
	p.Advance(lineHeight(invoiceNoStyle))

	p.TextLeft(fmt.Sprintf("Order: %s", rec.OrderID), metaStyle)
	p.Advance(lineHeight(metaStyle))

	customer := rec.Customer.Name
	if rec.Customer.Phone != "" {
		customer = fmt.Sprintf("%s (%s)", customer, rec.Customer.Phone)
	}
	p.TextLeft(fmt.Sprintf("Customer: %s", customer), metaStyle)
	p.Advance(lineHeight(metaStyle) + sectionGap)
}

// renderItemsTable draws the header row once, then one row per line
// item. Ensure runs before every row so a row never splits across a
// page boundary; on a break the shop header and the table header are
// both redrawn before rows continue.
func renderItemsTable(p *Pager, t *Table, rec domain.InvoiceRecord, money MoneyFormatter) {
	redraw := func(p *Pager) {
		renderHeader(p, rec)
		t.DrawHeader(p)
	}

	t.DrawHeader(p)
	for _, line := range rec.Lines {
		p.Ensure(t.RowHeight(), redraw)
		t.DrawEllipsizedRow(p, []string{
			line.Description,
			line.OwnerLabel,
			line.TypeLabel,
			fmt.Sprintf("%d", line.Qty),
			money.Format(line.UnitPriceCents),
			fmt.Sprintf("%d", line.DiscountPct),
			money.Format(line.LineTotalCents),
		})
	}
	p.Advance(sectionGap)
}

// renderNotes draws the free-form order notes, word-wrapped to the
// content width. Long unbroken strings are hard-split so a note can
// never widen the page.
func renderNotes(p *Pager, rec domain.InvoiceRecord) {
	if rec.Notes == "" {
		return
	}

	lines := Wrap(p.Canvas(), rec.Notes, metaStyle, p.ContentWidth())
	if len(lines) == 0 {
		return
	}

	p.Ensure(lineHeight(invoiceNoStyle)+lineHeight(metaStyle), func(p *Pager) { renderHeader(p, rec) })
	p.TextLeft("Notes:", invoiceNoStyle)
	p.Advance(lineHeight(invoiceNoStyle))
	for _, line := range lines {
		p.Ensure(lineHeight(metaStyle), func(p *Pager) { renderHeader(p, rec) })
		p.TextLeft(line, metaStyle)
		p.Advance(lineHeight(metaStyle))
	}
	p.Advance(sectionGap)
}

// renderTotals draws the right-anchored reconciliation block. The
// adjustment appears only when non-zero and is shown as a negative
// amount; the advance appears only when non-zero; the remaining
// balance is always shown and emphasized.
func renderTotals(p *Pager, rec domain.InvoiceRecord, money MoneyFormatter) {
	type totalRow struct {
		label string
		value string
		style Style
	}

	totals := rec.Totals
	rows := []totalRow{
		{"Subtotal", money.Format(totals.SubtotalBeforeAdjustCents), totalValue},
	}
	if totals.AdjustedAmountCents != 0 {
		rows = append(rows, totalRow{"Adjustment", money.Format(-totals.AdjustedAmountCents), totalValue})
	}
	if totals.AdvanceCents != 0 {
		rows = append(rows, totalRow{"Advance Paid", money.Format(totals.AdvanceCents), totalValue})
	}
	rows = append(rows, totalRow{"Remaining Balance", money.Format(totals.RemainingBalanceCents), balanceStyle})

	rowH := 15.0
	blockH := rowH*float64(len(rows)) + lineHeight(balanceStyle)
	p.Ensure(blockH, func(p *Pager) { renderHeader(p, rec) })

	labelRight := p.Right() - 130
	for _, row := range rows {
		baseline := p.Y() + row.style.Size
		p.TextAt(labelRight-p.Canvas().TextWidth(row.label, row.style), baseline, row.label, row.style)
		p.TextAt(p.Right()-p.Canvas().TextWidth(row.value, row.style), baseline, row.value, row.style)
		p.Advance(rowH)
	}
}

func lineHeight(st Style) float64 {
	return st.Size * 1.4
}
