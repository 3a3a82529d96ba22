// Package domainerrors defines code-carrying errors shared by services and the
// HTTP layer. Services return these (or wrap infrastructure errors into them)
// so transport code can translate without inspecting error strings.
package domainerrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Code identifies the class of failure. Codes are part of the wire contract:
// they appear verbatim in the "error" field of failure responses.
type Code string

const (
	CodeValidation Code = "validation_error"
	CodeBadRequest Code = "bad_request"
	CodeNotFound   Code = "not_found"

	// CodeAnchorFailed means the external ledger call failed and nothing was
	// persisted; the submission did not take effect and may be resubmitted.
	CodeAnchorFailed Code = "anchor_failed"

	// CodeAnchoredNotRecorded means the ledger durably holds the fingerprint
	// but the local append failed. The two sides disagree until an operator
	// reconciles; it must never be reported as a plain storage error.
	CodeAnchoredNotRecorded Code = "anchored_not_recorded"

	CodeStorage     Code = "storage_error"
	CodeUnavailable Code = "unavailable"
	CodeInternal    Code = "internal_error"
)

// DomainError couples a Code with a human-readable message and an optional
// wrapped cause.
type DomainError struct {
	Code    Code
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *DomainError) Unwrap() error { return e.Err }

// New creates a DomainError with the given code and message.
func New(code Code, message string) *DomainError {
	return &DomainError{Code: code, Message: message}
}

// Wrap creates a DomainError that records err as its cause.
func Wrap(code Code, message string, err error) *DomainError {
	return &DomainError{Code: code, Message: message, Err: err}
}

// Is reports whether err is (or wraps) a DomainError with the given code.
func Is(err error, code Code) bool {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Code == code
	}
	return false
}

// CodeOf extracts the code from err, defaulting to CodeInternal for errors
// that did not originate in a service.
func CodeOf(err error) Code {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Code
	}
	return CodeInternal
}

// MessageOf extracts the message from err; empty for non-domain errors so the
// HTTP layer never leaks internal detail by accident.
func MessageOf(err error) string {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Message
	}
	return ""
}

// ToHTTPStatus maps a Code to its HTTP status.
func ToHTTPStatus(code Code) int {
	switch code {
	case CodeValidation, CodeBadRequest:
		return http.StatusBadRequest
	case CodeNotFound:
		return http.StatusNotFound
	case CodeAnchorFailed:
		return http.StatusBadGateway
	case CodeUnavailable:
		return http.StatusServiceUnavailable
	case CodeAnchoredNotRecorded, CodeStorage, CodeInternal:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
