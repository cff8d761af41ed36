package pdf

import (
	"fmt"
	"strings"
)

// MoneyFormatter renders cent amounts as display currency. The decimal
// count is fixed once per document: two places when any amount in the
// document carries a fractional cent part, zero otherwise, so every
// figure on the invoice lines up.
type MoneyFormatter struct {
	symbol   string
	decimals int
}

func NewMoneyFormatter(symbol string, amounts []int64) MoneyFormatter {
	decimals := 0
	for _, cents := range amounts {
		if cents%100 != 0 {
			decimals = 2
			break
		}
	}
	return MoneyFormatter{symbol: symbol, decimals: decimals}
}

func (f MoneyFormatter) Format(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}

	major := cents / 100
	frac := cents % 100
	if f.decimals == 0 {
		// Round half-up in the degenerate case of a fractional amount
		// leaking into a zero-decimal document.
		major = (cents + 50) / 100
		return sign + f.symbol + groupThousands(major)
	}
	return fmt.Sprintf("%s%s%s.%02d", sign, f.symbol, groupThousands(major), frac)
}

func groupThousands(v int64) string {
	digits := fmt.Sprintf("%d", v)
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
