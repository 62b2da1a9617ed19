// Package miner extracts bank/amount/date transaction triples from
// free-flowing complaint narrative. Mentions have no grammar: "transferred
// Rs. 50,000 to HDFC on 05/01/2024" and "HDFC ... 50,000 ... 05/01/2024"
// must both mine, so it is a one-shot regex pass over the whole document,
// not a ledger.
package miner

import (
	"regexp"
	"strconv"
	"strings"
)

// StatusProcessed is the only status mined transactions carry; no lifecycle
// is modeled.
const StatusProcessed = "Processed"

// Transaction is one unique (date, amount, bank) triple mined from the text.
// Date stays the raw captured string; Amount is whole rupees.
type Transaction struct {
	Sequence int    `csv:"Transaction #"`
	Date     string `csv:"Date"`
	Amount   int64  `csv:"Amount"`
	Bank     string `csv:"Bank"`
	Status   string `csv:"Status"`
}

// tripleKey deduplicates candidates as they are produced.
type tripleKey struct {
	date   string
	amount int64
	bank   string
}

// Miner mines transaction triples from raw document text.
type Miner struct {
	re      *regexp.Regexp
	aliases *AliasMatcher
}

// New builds a Miner over the built-in bank alias table.
func New() *Miner {
	// One expression, entire document: a known bank/service token, then,
	// across arbitrary text including line breaks, an amount token, then a
	// date-shaped token.
	pattern := `(?is)\b(` + aliasAlternation() + `)\b` +
		`.*?` +
		`(?:rs\.?|inr|₹)?\s*([\d,]*\d)` +
		`.*?` +
		`(\d{1,2}[/-]\d{1,2}[/-]\d{2,4})`
	return &Miner{
		re:      regexp.MustCompile(pattern),
		aliases: NewAliasMatcher(),
	}
}

// Mine scans text and returns unique transactions in first-seen order.
// Candidates whose amount does not parse to a positive integer are dropped.
func (m *Miner) Mine(text string) []Transaction {
	matches := m.re.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return nil
	}

	seen := make(map[tripleKey]struct{}, len(matches))
	txns := make([]Transaction, 0, len(matches))

	for _, match := range matches {
		bank := m.aliases.Canonical(match[1])
		amount := parseAmount(match[2])
		date := match[3]

		if amount <= 0 {
			continue
		}

		k := tripleKey{date: date, amount: amount, bank: bank}
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}

		txns = append(txns, Transaction{
			Sequence: len(txns) + 1,
			Date:     date,
			Amount:   amount,
			Bank:     bank,
			Status:   StatusProcessed,
		})
	}
	return txns
}

// parseAmount strips thousands separators and parses the remainder as an
// integer; anything non-numeric coerces to 0.
func parseAmount(raw string) int64 {
	n, err := strconv.ParseInt(strings.ReplaceAll(raw, ",", ""), 10, 64)
	if err != nil {
		return 0
	}
	return n
}
