package extractor

import "strings"

// statusRule pairs a keyword predicate with the status it yields. Rule lists
// are evaluated top to bottom and the first hit wins; noisy blocks often
// contain several of these keywords at once, so the order is the contract.
type statusRule struct {
	keyword string
	result  string
}

var complaintStatusRules = []statusRule{
	{"CLOSED", "CLOSED"},
	{"UNDER PROCESS", "UNDER PROCESS"},
	{"COMPLAINT ACCEPTED", "ACCEPTED"},
}

var investigationStatusRules = []statusRule{
	{"CLOSED", "CLOSED"},
	{"UNDER PROCESS", "ONGOING"},
}

// classify returns the result of the first rule whose keyword occurs in the
// uppercased block text, or fallback when none does.
func classify(upper string, rules []statusRule, fallback string) string {
	for _, r := range rules {
		if strings.Contains(upper, r.keyword) {
			return r.result
		}
	}
	return fallback
}

func classifyPlatform(upper string) string {
	if strings.Contains(upper, "UPI") {
		return "UPI"
	}
	return "Other"
}

func classifyFIR(upper string) string {
	if strings.Contains(upper, "FIR") {
		return "FILED"
	}
	return "NOT FILED"
}
