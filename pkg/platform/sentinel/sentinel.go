package sentinel

import "errors"

// Sentinel errors for infrastructure facts. Stores and ledger backends return
// these (optionally wrapped) so services can translate them into domain errors.
//
// These represent factual states about resources, not validation failures:
// - ErrNotFound: record or fingerprint does not exist in the backend
// - ErrUnavailable: backend temporarily unable to serve (circuit open, down)
//
// For validation errors (bad input, missing fields), use pkg/domain-errors directly.
var (
	ErrNotFound    = errors.New("not found")
	ErrUnavailable = errors.New("unavailable")
)
