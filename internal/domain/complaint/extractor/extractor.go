// Package extractor recognizes the fixed complaint field schema inside one
// segmented text block. Input has no reliable grammar: labels vary in
// spelling and order and values go missing, so recognition is an ordered
// pattern scan with whole-block fallbacks rather than a parser.
package extractor

import (
	"regexp"
	"strings"

	"github.com/FACorreiaa/complaint-analyzer/internal/domain/complaint/normalizer"
)

// Sentinel values marking a field whose label never matched. The two report
// variants disagree on the convention, so it is explicit configuration.
const (
	SentinelNull  = "NULL"
	SentinelEmpty = ""
)

// Record maps every Schema field to its normalized value. The key set is
// always exactly Schema; unmatched fields hold the extractor's sentinel.
type Record map[string]string

var (
	emailToken = regexp.MustCompile(`[\w.-]+@[\w.-]+\.\w+`)

	// One expression with two capture groups: date and time must come from
	// the same sentence or they could pair across unrelated lines.
	acceptedDateTime = regexp.MustCompile(`(?i)complaint\s*accepted\s*date\s*[:\-]?\s*(\d{1,2}/\d{1,2}/\d{4})\s*(\d{1,2}:\d{2}:\d{2}\s*[AP]M)`)
)

// Extractor turns complaint blocks into schema records.
type Extractor struct {
	sentinel string
}

// New creates an Extractor that fills never-matched fields with sentinel.
func New(sentinel string) *Extractor {
	return &Extractor{sentinel: sentinel}
}

// Extract produces one Record from a complaint block. It never fails: fields
// whose labels are absent keep the sentinel, and values that resist
// normalization degrade to "".
func (e *Extractor) Extract(block string) Record {
	data := make(Record, len(Schema))
	for _, f := range Schema {
		data[f] = e.sentinel
	}

	for _, line := range strings.Split(block, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		low := strings.ToLower(line)

		for _, fl := range labelTable {
			for _, p := range fl.patterns {
				if p.MatchString(low) {
					// Value is whatever follows the first colon on the
					// physical line; a later match for the same field in
					// this block overwrites an earlier one.
					data[fl.field] = normalizer.CleanValue(afterColon(line))
					break
				}
			}
		}
	}

	// Fallback: any email-shaped token anywhere in the block.
	if data[FieldEmail] == e.sentinel {
		if m := emailToken.FindString(block); m != "" {
			data[FieldEmail] = m
		}
	}

	// Date Accepted and Time Accepted are filled together from one match.
	if m := acceptedDateTime.FindStringSubmatch(block); m != nil {
		data[FieldDateAccepted] = normalizer.NormalizeDate(m[1])
		data[FieldTimeAccepted] = m[2]
	}

	data[FieldDateFiled] = normalizer.NormalizeDate(data[FieldDateFiled])
	data[FieldAmountLost] = normalizer.NormalizeAmount(data[FieldAmountLost])

	upper := strings.ToUpper(block)
	data[FieldPlatform] = classifyPlatform(upper)
	data[FieldComplaintStatus] = classify(upper, complaintStatusRules, "PENDING")
	data[FieldFIRStatus] = classifyFIR(upper)
	data[FieldInvestigationStatus] = classify(upper, investigationStatusRules, "NOT STARTED")

	return data
}

// afterColon returns the text after the first colon of line, or the whole
// line when it has none.
func afterColon(line string) string {
	if idx := strings.Index(line, ":"); idx >= 0 {
		return line[idx+1:]
	}
	return line
}
