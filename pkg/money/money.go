// Package money provides rupee display formatting and share-of-total
// arithmetic for extracted amounts. Amounts travel through the pipeline as
// whole-rupee integers; decimal is used only where precision matters
// (percentage of a grand total).
package money

import (
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// INR is the only currency the extractor deals in.
const INR = "INR"

// Symbol returns the rupee grapheme from the ISO-4217 registry.
func Symbol() string {
	c := money.GetCurrency(INR)
	if c == nil {
		return "₹"
	}
	return c.Grapheme
}

// FormatINR renders a non-negative whole-rupee amount as a symbol-prefixed,
// thousands-grouped string, e.g. 5000 -> "₹5,000".
func FormatINR(amount int64) string {
	return Symbol() + GroupDigits(decimal.NewFromInt(amount).String())
}

// GroupDigits inserts thousands separators into a plain digit string.
// Non-digit input is returned unchanged.
func GroupDigits(digits string) string {
	for _, r := range digits {
		if r < '0' || r > '9' {
			return digits
		}
	}
	n := len(digits)
	if n <= 3 {
		return digits
	}
	var b strings.Builder
	head := n % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < n; i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

// PercentShare returns part/total as a percentage with one decimal place,
// e.g. PercentShare(20000, 30000) -> "66.7". A zero total yields "".
func PercentShare(part, total int64) string {
	if total == 0 {
		return ""
	}
	p := decimal.NewFromInt(part)
	t := decimal.NewFromInt(total)
	return p.Div(t).Mul(decimal.NewFromInt(100)).StringFixed(1)
}
