package auditlog

import (
	"context"
	"log/slog"
	"time"

	"aidproof/internal/auditlog/metrics"
	"aidproof/internal/ledger"
	dErrors "aidproof/pkg/domain-errors"
)

// Service orchestrates a submission: validate, digest, anchor, append. An
// event reaches the store only after the ledger holds its fingerprint, so the
// store never contains an un-anchored record and a failed submission leaves
// no trace locally.
type Service struct {
	store   Store
	anchor  ledger.Anchorer
	logger  *slog.Logger
	metrics *metrics.Metrics
	now     func() time.Time
}

// Option configures a Service.
type Option func(*Service)

// WithClock overrides the timestamp source for server-assigned timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func NewService(store Store, anchor ledger.Anchorer, logger *slog.Logger, m *metrics.Metrics, opts ...Option) *Service {
	s := &Service{
		store:   store,
		anchor:  anchor,
		logger:  logger,
		metrics: m,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Submit records one aid-distribution event. On success the returned Event
// carries the ledger receipt id. Failure modes are distinct by design:
// validation and anchor failures leave no state anywhere, while a storage
// failure after a successful anchor is reported as anchored_not_recorded so
// operators know the ledger and the local log disagree.
func (s *Service) Submit(ctx context.Context, req SubmitRequest) (Event, error) {
	if err := validateSubmit(&req); err != nil {
		return Event{}, err
	}
	if req.Timestamp == "" {
		req.Timestamp = s.now().UTC().Format(time.RFC3339)
	}

	fingerprint := Digest(req.BeneficiaryID, req.AidType, req.Location, req.Timestamp)

	// Client digests are untrusted input: the server value is what gets
	// anchored either way. A mismatch usually means the client serialized
	// differently, which is worth knowing about.
	if req.ClientDigest != "" && req.ClientDigest != fingerprint {
		s.logger.WarnContext(ctx, "client digest mismatch, anchoring server-side digest",
			"client_digest", req.ClientDigest,
			"server_digest", fingerprint,
		)
	}

	start := s.now()
	anchorID, err := s.anchor.Anchor(ctx, fingerprint)
	s.metrics.AnchorLatency.Observe(time.Since(start).Seconds())
	if err != nil {
		s.metrics.AnchorFailures.Inc()
		s.logger.ErrorContext(ctx, "anchor failed, nothing persisted",
			"fingerprint", fingerprint,
			"error", err.Error(),
		)
		return Event{}, dErrors.Wrap(dErrors.CodeAnchorFailed, "ledger anchor failed, submission did not take effect", err)
	}

	event := Event{
		BeneficiaryID: req.BeneficiaryID,
		AidType:       req.AidType,
		Location:      req.Location,
		Timestamp:     req.Timestamp,
		AnchorID:      anchorID,
	}
	if err := s.store.Append(ctx, event); err != nil {
		// The ledger durably holds the fingerprint already; that side effect
		// cannot be rolled back. Surface it distinctly for reconciliation.
		s.metrics.StorageFailures.Inc()
		s.logger.ErrorContext(ctx, "append failed after successful anchor",
			"fingerprint", fingerprint,
			"anchor_id", anchorID,
			"error", err.Error(),
		)
		return Event{}, dErrors.Wrap(dErrors.CodeAnchoredNotRecorded, "event anchored under "+anchorID+" but not recorded locally", err)
	}

	s.metrics.EventsRecorded.Inc()
	return event, nil
}

// List returns recorded events in append order, narrowed by filter.
func (s *Service) List(ctx context.Context, filter Filter) ([]Event, error) {
	events, err := s.store.List(ctx)
	if err != nil {
		return nil, dErrors.Wrap(dErrors.CodeStorage, "audit log could not be read", err)
	}
	return filter.Apply(events), nil
}

func validateSubmit(req *SubmitRequest) error {
	if req.BeneficiaryID == "" {
		return dErrors.New(dErrors.CodeValidation, "beneficiaryId is required")
	}
	if req.AidType == "" {
		return dErrors.New(dErrors.CodeValidation, "aidType is required")
	}
	if req.Location == "" {
		return dErrors.New(dErrors.CodeValidation, "location is required")
	}
	if req.Timestamp != "" {
		if _, err := time.Parse(time.RFC3339, req.Timestamp); err != nil {
			return dErrors.New(dErrors.CodeValidation, "timestamp must be RFC 3339")
		}
	}
	return nil
}
