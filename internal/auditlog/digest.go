package auditlog

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
)

// digestPayload fixes the canonical serialization for fingerprinting: the four
// content fields, in this order, as compact JSON. AnchorID is excluded; it
// does not exist at digest time.
type digestPayload struct {
	BeneficiaryID string `json:"beneficiaryId"`
	AidType       string `json:"aidType"`
	Location      string `json:"location"`
	Timestamp     string `json:"timestamp"`
}

// Digest computes the event fingerprint: lowercase hex SHA-256 over the
// canonical serialization. Deterministic: identical field values (including
// the exact timestamp string) always yield the identical fingerprint.
func Digest(beneficiaryID, aidType, location, timestamp string) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	// Free-text fields may contain & < >; HTML escaping would fold distinct
	// values onto different serializations than the canonical one.
	enc.SetEscapeHTML(false)
	// Encoding a struct of strings cannot fail.
	_ = enc.Encode(digestPayload{
		BeneficiaryID: beneficiaryID,
		AidType:       aidType,
		Location:      location,
		Timestamp:     timestamp,
	})
	canonical := bytes.TrimSuffix(buf.Bytes(), []byte{'\n'})

	sum := sha256.Sum256(canonical)
	return hex.EncodeToString(sum[:])
}
