// Package ledger anchors event fingerprints on an external distributed
// ledger. The audit log depends only on the Anchorer interface; backends are
// selected by configuration.
package ledger

import "context"

// Anchorer submits a fingerprint for durable external anchoring. A returned
// id means the fingerprint is retrievable from the ledger under that id; an
// error means nothing was anchored and the caller must not persist the event.
//
// Implementations must not leave partial state visible on failure.
type Anchorer interface {
	Anchor(ctx context.Context, fingerprint string) (string, error)
}

// AnchorFunc adapts a function to the Anchorer interface, mostly for tests.
type AnchorFunc func(ctx context.Context, fingerprint string) (string, error)

func (f AnchorFunc) Anchor(ctx context.Context, fingerprint string) (string, error) {
	return f(ctx, fingerprint)
}
