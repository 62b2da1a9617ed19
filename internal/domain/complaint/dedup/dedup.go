// Package dedup collapses records describing the same complaint. Scanned
// bundles repeat complaints across pages and across files, so the batch is
// filtered once after every document has been extracted.
package dedup

import (
	"github.com/FACorreiaa/complaint-analyzer/internal/domain/complaint/extractor"
)

// identityKey is the tuple that decides two records are the same complaint.
// Values are taken verbatim, post-normalization. Differences in any other
// field do not matter.
type identityKey struct {
	complaintID string
	dateFiled   string
	name        string
	amountLost  string
}

func keyOf(r extractor.Record) identityKey {
	return identityKey{
		complaintID: r[extractor.FieldComplaintID],
		dateFiled:   r[extractor.FieldDateFiled],
		name:        r[extractor.FieldComplainantName],
		amountLost:  r[extractor.FieldAmountLost],
	}
}

// Filter returns records with duplicates removed, keeping the first-seen
// instance of each identity key and preserving input order.
func Filter(records []extractor.Record) []extractor.Record {
	seen := make(map[identityKey]struct{}, len(records))
	unique := make([]extractor.Record, 0, len(records))

	for _, r := range records {
		k := keyOf(r)
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		unique = append(unique, r)
	}
	return unique
}
