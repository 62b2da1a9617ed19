package extractor

import "regexp"

// Field names of the fixed complaint schema. The Schema slice below defines
// both the output column order and the key set every Record carries.
const (
	FieldComplaintID         = "Complaint ID"
	FieldDateFiled           = "Date Filed"
	FieldDateAccepted        = "Date Accepted"
	FieldTimeAccepted        = "Time Accepted"
	FieldComplainantName     = "Complainant Name"
	FieldEmail               = "Email"
	FieldMobileNumber        = "Mobile Number"
	FieldState               = "State"
	FieldDistrict            = "District"
	FieldCybercrimeType      = "Cybercrime Type"
	FieldSubCategory         = "Sub-Category"
	FieldPlatform            = "Platform"
	FieldAmountLost          = "Amount Lost"
	FieldComplaintStatus     = "Complaint Status"
	FieldFIRStatus           = "FIR Status"
	FieldInvestigationStatus = "Investigation Status"
)

// Schema is the ordered set of fields every extracted record carries.
var Schema = []string{
	FieldComplaintID,
	FieldDateFiled,
	FieldDateAccepted,
	FieldTimeAccepted,
	FieldComplainantName,
	FieldEmail,
	FieldMobileNumber,
	FieldState,
	FieldDistrict,
	FieldCybercrimeType,
	FieldSubCategory,
	FieldPlatform,
	FieldAmountLost,
	FieldComplaintStatus,
	FieldFIRStatus,
	FieldInvestigationStatus,
}

// fieldLabels pairs a schema field with its ordered recognition patterns.
// Patterns run against lowercased line text; the first pattern to match a
// line claims it for that field.
type fieldLabels struct {
	field    string
	patterns []*regexp.Regexp
}

// labelTable holds recognition patterns in Schema order. Label spellings vary
// wildly across scanned documents, so several fields carry alternates.
var labelTable = []fieldLabels{
	{FieldComplaintID, compileAll(`acknowledg(e)?ment\s*number`, `complaint\s*id`)},
	{FieldDateFiled, compileAll(`complaint\s*date`)},
	{FieldComplainantName, compileAll(`name\s*:`)},
	{FieldEmail, compileAll(`email`)},
	{FieldMobileNumber, compileAll(`mobile`)},
	{FieldState, compileAll(`state`)},
	{FieldDistrict, compileAll(`district`)},
	{FieldCybercrimeType, compileAll(`category\s*of\s*complaint`)},
	{FieldSubCategory, compileAll(`sub\s*category\s*of\s*complaint`)},
	{FieldAmountLost, compileAll(`total\s*fraudulent\s*amount`, `amount\s*:`)},
}

func compileAll(patterns ...string) []*regexp.Regexp {
	compiled := make([]*regexp.Regexp, len(patterns))
	for i, p := range patterns {
		compiled[i] = regexp.MustCompile(p)
	}
	return compiled
}
