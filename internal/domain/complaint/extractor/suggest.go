package extractor

import (
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// SuggestField returns the schema field whose name is the closest fuzzy match
// for an unrecognized label, plus the rank distance (lower is closer). It is
// diagnostic only, logged so new label spellings can be added to the
// pattern table, and never affects extraction results.
// ok is false when nothing ranks at all.
func SuggestField(label string) (field string, rank int, ok bool) {
	label = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(label), ":"))
	if label == "" {
		return "", 0, false
	}

	ranks := fuzzy.RankFindNormalizedFold(label, Schema)
	if len(ranks) == 0 {
		return "", 0, false
	}

	best := ranks[0]
	for _, r := range ranks[1:] {
		if r.Distance < best.Distance {
			best = r
		}
	}
	return best.Target, best.Distance, true
}

// LooksLabeled reports whether a line has the "Label : value" shape that the
// pattern table is expected to recognize.
func LooksLabeled(line string) bool {
	idx := strings.Index(line, ":")
	return idx > 0 && strings.TrimSpace(line[:idx]) != ""
}

// Recognized reports whether any label pattern claims the line.
func Recognized(line string) bool {
	low := strings.ToLower(line)
	for _, fl := range labelTable {
		for _, p := range fl.patterns {
			if p.MatchString(low) {
				return true
			}
		}
	}
	return false
}
