// Package segmenter splits a document's raw text into per-complaint blocks.
package segmenter

import (
	"regexp"
	"strings"
)

// DefaultMinBlockChars is the minimum trimmed length a candidate block must
// exceed to count as a real complaint. Shorter fragments are boundary
// artifacts (stray headers/footers that happen to contain a marker).
const DefaultMinBlockChars = 200

// boundaryMarker matches the start of a new complaint record. The match
// position is used as a cut point so the marker text stays with the block
// that follows it.
var boundaryMarker = regexp.MustCompile(`(?i)complaint\s*(?:id|no)|complaint\s*type\s*:`)

// Segmenter produces complaint blocks from raw document text.
type Segmenter struct {
	minBlockChars int
}

// New creates a Segmenter. A non-positive minBlockChars falls back to
// DefaultMinBlockChars.
func New(minBlockChars int) *Segmenter {
	if minBlockChars <= 0 {
		minBlockChars = DefaultMinBlockChars
	}
	return &Segmenter{minBlockChars: minBlockChars}
}

// Split returns the complaint blocks of text in document order. Each block
// begins at a boundary marker and runs to the next marker (or end of text).
// Text before the first marker is discarded. A document with no markers
// yields no blocks.
func (s *Segmenter) Split(text string) []string {
	if text == "" {
		return nil
	}

	starts := boundaryMarker.FindAllStringIndex(text, -1)
	if len(starts) == 0 {
		return nil
	}

	blocks := make([]string, 0, len(starts))
	for i, loc := range starts {
		end := len(text)
		if i+1 < len(starts) {
			end = starts[i+1][0]
		}
		block := strings.TrimSpace(text[loc[0]:end])
		if len(block) > s.minBlockChars {
			blocks = append(blocks, block)
		}
	}
	return blocks
}
