package auditlog

import "context"

// Store is the append-only persistence boundary. Implementations must be
// durable before Append returns, must serialize appends internally, and must
// return events from List in append order. No mutation or deletion methods
// exist on purpose.
//
// Stores are interface-driven to keep the domain logic testable and to allow
// swapping in-memory, file-based, or external persistence without rewiring
// business code.
type Store interface {
	Append(ctx context.Context, event Event) error
	List(ctx context.Context) ([]Event, error)
}
