package handler

import (
	"regexp"
	"strings"

	dErrors "aidproof/pkg/domain-errors"
)

// LogAidRequest is the HTTP request body for POST /logAid. AidDataHash is the
// digest the client computed; the server recomputes its own and only uses the
// client value for mismatch logging.
type LogAidRequest struct {
	BeneficiaryID string `json:"beneficiaryId"`
	AidType       string `json:"aidType"`
	Location      string `json:"location"`
	Timestamp     string `json:"timestamp"`
	AidDataHash   string `json:"aidDataHash"`
}

var hexDigestPattern = regexp.MustCompile(`^[0-9a-f]{64}$`)

// Validate checks presence and size of the submitted fields. Timestamp format
// is the service's concern; this layer only rejects obviously oversized or
// malformed input early.
//
// Implements the Validatable interface for httputil.DecodeAndPrepare.
func (r *LogAidRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}

	r.BeneficiaryID = strings.TrimSpace(r.BeneficiaryID)
	r.AidType = strings.TrimSpace(r.AidType)
	r.Location = strings.TrimSpace(r.Location)
	r.Timestamp = strings.TrimSpace(r.Timestamp)
	r.AidDataHash = strings.TrimSpace(r.AidDataHash)

	if r.BeneficiaryID == "" {
		return dErrors.New(dErrors.CodeValidation, "beneficiaryId is required")
	}
	if r.AidType == "" {
		return dErrors.New(dErrors.CodeValidation, "aidType is required")
	}
	if r.Location == "" {
		return dErrors.New(dErrors.CodeValidation, "location is required")
	}

	if len(r.BeneficiaryID) > 128 {
		return dErrors.New(dErrors.CodeValidation, "beneficiaryId must be at most 128 characters")
	}
	if len(r.AidType) > 64 {
		return dErrors.New(dErrors.CodeValidation, "aidType must be at most 64 characters")
	}
	if len(r.Location) > 256 {
		return dErrors.New(dErrors.CodeValidation, "location must be at most 256 characters")
	}
	if len(r.Timestamp) > 64 {
		return dErrors.New(dErrors.CodeValidation, "timestamp must be at most 64 characters")
	}

	if r.AidDataHash != "" && !hexDigestPattern.MatchString(r.AidDataHash) {
		return dErrors.New(dErrors.CodeValidation, "aidDataHash must be a lowercase hex sha-256 digest")
	}
	return nil
}
