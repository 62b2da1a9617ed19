package miner

import (
	"strings"

	"github.com/cloudflare/ahocorasick"
)

// bankAlias maps a case-insensitive substring to the canonical display name
// of a bank or payment service. The table is ordered: when several aliases
// appear in one mention, the earliest table entry wins.
type bankAlias struct {
	substr    string
	canonical string
}

// UnknownBank is the canonical name for mentions no alias covers.
const UnknownBank = "Unknown Bank"

// bankAliasTable covers the banks and payment services that show up in
// Indian cybercrime complaint narratives. Longer aliases precede their
// abbreviations so "state bank of india" resolves before a bare "sbi".
var bankAliasTable = []bankAlias{
	{"state bank of india", "State Bank of India"},
	{"sbi", "State Bank of India"},
	{"hdfc", "HDFC Bank"},
	{"icici", "ICICI Bank"},
	{"axis", "Axis Bank"},
	{"kotak", "Kotak Mahindra Bank"},
	{"punjab national", "Punjab National Bank"},
	{"pnb", "Punjab National Bank"},
	{"bank of baroda", "Bank of Baroda"},
	{"canara", "Canara Bank"},
	{"union bank", "Union Bank of India"},
	{"indusind", "IndusInd Bank"},
	{"yes bank", "Yes Bank"},
	{"idfc", "IDFC First Bank"},
	{"federal bank", "Federal Bank"},
	{"airtel payments", "Airtel Payments Bank"},
	{"paytm", "Paytm Payments Bank"},
	{"phonepe", "PhonePe"},
	{"google pay", "Google Pay"},
	{"gpay", "Google Pay"},
	{"amazon pay", "Amazon Pay"},
	{"bhim", "BHIM"},
	{"mobikwik", "MobiKwik"},
}

// AliasMatcher canonicalizes mined bank mentions. It runs every alias over
// the mention in a single Aho-Corasick pass instead of a per-alias
// substring loop.
type AliasMatcher struct {
	matcher *ahocorasick.Matcher
	aliases []bankAlias
}

// NewAliasMatcher builds a matcher over the built-in alias table.
func NewAliasMatcher() *AliasMatcher {
	patterns := make([][]byte, len(bankAliasTable))
	for i, a := range bankAliasTable {
		patterns[i] = []byte(strings.ToUpper(a.substr))
	}
	return &AliasMatcher{
		matcher: ahocorasick.NewMatcher(patterns),
		aliases: bankAliasTable,
	}
}

// Canonical returns the display name for a raw bank mention. When several
// aliases hit, the one earliest in the table wins; no hit yields
// UnknownBank.
func (am *AliasMatcher) Canonical(mention string) string {
	hits := am.matcher.Match([]byte(strings.ToUpper(mention)))
	if len(hits) == 0 {
		return UnknownBank
	}
	best := hits[0]
	for _, idx := range hits[1:] {
		if idx < best {
			best = idx
		}
	}
	return am.aliases[best].canonical
}

// aliasAlternation renders the alias table as a regexp alternation, longest
// alias first so the mention capture is as specific as possible.
func aliasAlternation() string {
	sorted := make([]string, len(bankAliasTable))
	for i, a := range bankAliasTable {
		sorted[i] = a.substr
	}
	for i := 1; i < len(sorted); i++ {
		for j := i; j > 0 && len(sorted[j]) > len(sorted[j-1]); j-- {
			sorted[j], sorted[j-1] = sorted[j-1], sorted[j]
		}
	}
	escaped := make([]string, len(sorted))
	for i, s := range sorted {
		escaped[i] = strings.ReplaceAll(s, " ", `\s+`)
	}
	return strings.Join(escaped, "|")
}
