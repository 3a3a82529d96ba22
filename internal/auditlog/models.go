// Package auditlog is the append-only record of aid-distribution events.
// Every recorded event carries the ledger receipt its digest was anchored
// under, so the trail stays independently verifiable.
package auditlog

// Event is one recorded aid distribution. Events are immutable once appended;
// there is no update or delete path anywhere in this package.
//
// Timestamp is kept as the exact RFC 3339 string the event was submitted (or
// assigned) with: the digest and the day-level filter both operate on the
// literal string, so reformatting it would change the fingerprint.
type Event struct {
	BeneficiaryID string `json:"beneficiaryId"`
	AidType       string `json:"aidType"`
	Location      string `json:"location"`
	Timestamp     string `json:"timestamp"`

	// AnchorID is the external ledger receipt (a Hedera file id in
	// production, e.g. "0.0.999"). It is set on every stored event:
	// anchoring happens before the append, never after.
	AnchorID string `json:"fileId"`
}

// SubmitRequest carries a candidate event into the service. ClientDigest is
// the digest the submitting client claims to have computed; it is untrusted
// and only compared against the server-side value for logging.
type SubmitRequest struct {
	BeneficiaryID string
	AidType       string
	Location      string
	Timestamp     string
	ClientDigest  string
}
