// Package dedup caches fingerprint-to-anchor mappings so a resubmitted
// identical event reuses its existing receipt instead of being anchored a
// second time. The cache is advisory: a miss only costs one extra anchor.
package dedup

import "context"

// Cache maps a fingerprint to the anchor id it was last anchored under.
// Get returns sentinel.ErrNotFound (possibly wrapped) on a miss.
type Cache interface {
	Get(ctx context.Context, fingerprint string) (string, error)
	Put(ctx context.Context, fingerprint, anchorID string) error
}
