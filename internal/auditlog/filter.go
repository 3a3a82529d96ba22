package auditlog

import "strings"

// Filter holds the optional, independent predicates a read may apply. An
// empty field matches everything; supplied predicates combine with AND.
type Filter struct {
	// Location, AidType and BeneficiaryID match case-insensitively on
	// substring, mirroring how operators search free-text fields.
	Location      string
	AidType       string
	BeneficiaryID string

	// Date matches as an exact prefix of the timestamp string, so an ISO
	// date like "2024-05-01" selects that day's events.
	Date string
}

// IsZero reports whether no predicate is set.
func (f Filter) IsZero() bool {
	return f == Filter{}
}

// Match reports whether the event satisfies every supplied predicate.
func (f Filter) Match(e Event) bool {
	if f.Location != "" && !containsFold(e.Location, f.Location) {
		return false
	}
	if f.Date != "" && !strings.HasPrefix(e.Timestamp, f.Date) {
		return false
	}
	if f.AidType != "" && !containsFold(e.AidType, f.AidType) {
		return false
	}
	if f.BeneficiaryID != "" && !containsFold(e.BeneficiaryID, f.BeneficiaryID) {
		return false
	}
	return true
}

// Apply returns the matching subset in the original relative order. A filter
// with no predicates returns the input unchanged; no match returns an empty
// slice, never nil.
func (f Filter) Apply(events []Event) []Event {
	if f.IsZero() {
		return events
	}
	matched := []Event{}
	for _, e := range events {
		if f.Match(e) {
			matched = append(matched, e)
		}
	}
	return matched
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
