// Package pricing turns an order's raw line items, manual adjustment,
// and advance payment into a reconciled monetary breakdown.
//
// The engine is total: malformed inputs (negative quantities or
// prices, out-of-range discounts, oversized adjustments) are clamped
// into valid ranges instead of rejected, so pricing can never fail on
// historical order data. All amounts are int64 cents.
package pricing

import "notapos/backend/internal/domain"

// Price computes the per-line totals and the order-level breakdown for
// one request. It is pure and deterministic: no I/O, no shared state,
// and the output lines appear in the same order as the input items.
func Price(req domain.PricingRequest) domain.PricingResult {
	lines := make([]domain.PricedLine, 0, len(req.Items))

	var subtotal int64
	for _, item := range req.Items {
		total := lineTotal(item)
		lines = append(lines, domain.PricedLine{ItemID: item.ItemID, LineTotalCents: total})
		subtotal += total
	}

	adjusted := clamp(req.AdjustedAmountCents, 0, subtotal)
	total := subtotal - adjusted
	advance := clamp(req.AdvanceCents, 0, total)

	return domain.PricingResult{
		Lines:                     lines,
		SubtotalBeforeAdjustCents: subtotal,
		AdjustedAmountCents:       adjusted,
		TotalAmountCents:          total,
		AdvanceCents:              advance,
		RemainingBalanceCents:     total - advance,
	}
}

// lineTotal applies the percentage discount to the full line subtotal
// (unit price times quantity), not to the unit price alone, and rounds
// half-up to the nearest cent. With non-negative integer inputs the
// rounding is exact integer arithmetic: (subtotal*(100-disc)+50)/100.
func lineTotal(item domain.LineItem) int64 {
	qty := int64(item.Qty)
	if qty < 0 {
		qty = 0
	}
	unitPrice := item.UnitPriceCents
	if unitPrice < 0 {
		unitPrice = 0
	}
	disc := clamp(int64(item.DiscountPct), 0, 100)

	return (unitPrice*qty*(100-disc) + 50) / 100
}

func clamp(v, lo, hi int64) int64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
