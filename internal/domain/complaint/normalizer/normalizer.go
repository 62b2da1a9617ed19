// Package normalizer canonicalizes raw matched substrings into display-ready
// values. Every function here is total: bad input degrades to an empty
// string, it never produces an error. Downstream code relies on that split:
// "" means matched-but-invalid, the schema sentinel means never matched.
package normalizer

import (
	"regexp"
	"strings"
	"time"

	"github.com/FACorreiaa/complaint-analyzer/pkg/money"
)

var (
	whitespaceRun = regexp.MustCompile(`\s+`)
	nonDigit      = regexp.MustCompile(`[^\d]`)
)

// CleanValue collapses internal whitespace runs to a single space and strips
// leading/trailing whitespace, colons and hyphens.
func CleanValue(raw string) string {
	if raw == "" {
		return ""
	}
	return strings.Trim(whitespaceRun.ReplaceAllString(raw, " "), " :-")
}

// dateFormats are tried in order. Day-first layouts come before their
// month-first twins so ambiguous inputs like 01-02-2023 resolve day-first.
var dateFormats = []string{
	"02-01-2006",
	"02/01/2006",
	"02.01.2006",
	"2006-01-02",
	"2006/01/02",
	"2-1-2006",
	"2/1/2006",
	"02-01-06",
	"02/01/06",
	"2 January 2006",
	"2 Jan 2006",
	"02 Jan 2006",
	"2-Jan-2006",
	"January 2, 2006",
	"Jan 2, 2006",
	"02/01/2006 15:04:05",
	"02-01-2006 15:04:05",
}

// NormalizeDate parses a loosely formatted date string (day-first when
// ambiguous) and renders it as DD/MM/YYYY. Unparsable input yields "",
// never the raw text.
func NormalizeDate(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ""
	}
	for _, layout := range dateFormats {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("02/01/2006")
		}
	}
	return ""
}

// NormalizeAmount strips every non-digit character and, when digits remain,
// renders a rupee-prefixed thousands-grouped integer, e.g. "Rs. 5,000" ->
// "₹5,000". Digits after a decimal point are absorbed into the integer and
// leading zeros are dropped, so equal amounts always render identically.
func NormalizeAmount(raw string) string {
	digits := nonDigit.ReplaceAllString(raw, "")
	if digits == "" {
		return ""
	}
	digits = strings.TrimLeft(digits, "0")
	if digits == "" {
		digits = "0"
	}
	return money.Symbol() + money.GroupDigits(digits)
}
