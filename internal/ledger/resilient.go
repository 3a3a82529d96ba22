package ledger

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/singleflight"

	"aidproof/internal/ledger/dedup"
	dErrors "aidproof/pkg/domain-errors"
	"aidproof/pkg/platform/circuit"
	"aidproof/pkg/platform/sentinel"
)

// ResilientAnchorer hardens a backend Anchorer for production use:
//
//   - per-attempt timeout, so a hung ledger call fails its own submission
//     instead of hanging the request forever;
//   - bounded retries with linear backoff;
//   - singleflight per fingerprint, so concurrent submissions of identical
//     content share one anchor call;
//   - a dedup cache, so a fingerprint that already has a receipt is never
//     anchored twice;
//   - a circuit breaker, so a down ledger sheds load fast instead of making
//     every submission wait out the full retry schedule.
type ResilientAnchorer struct {
	next    Anchorer
	cache   dedup.Cache
	breaker *circuit.Breaker
	logger  *slog.Logger
	timeout time.Duration
	retries int
	backoff time.Duration
	group   singleflight.Group
}

// ResilientConfig tunes the hardening behavior. Zero values get defaults.
type ResilientConfig struct {
	Timeout time.Duration // per attempt, default 10s
	Retries int           // attempts after the first, default 2
	Backoff time.Duration // base backoff between attempts, default 250ms
}

func NewResilient(next Anchorer, cache dedup.Cache, breaker *circuit.Breaker, logger *slog.Logger, cfg ResilientConfig) *ResilientAnchorer {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	if cfg.Retries < 0 {
		cfg.Retries = 0
	} else if cfg.Retries == 0 {
		cfg.Retries = 2
	}
	if cfg.Backoff <= 0 {
		cfg.Backoff = 250 * time.Millisecond
	}
	return &ResilientAnchorer{
		next:    next,
		cache:   cache,
		breaker: breaker,
		logger:  logger,
		timeout: cfg.Timeout,
		retries: cfg.Retries,
		backoff: cfg.Backoff,
	}
}

func (r *ResilientAnchorer) Anchor(ctx context.Context, fingerprint string) (string, error) {
	if anchorID, err := r.cache.Get(ctx, fingerprint); err == nil {
		r.logger.InfoContext(ctx, "fingerprint already anchored, reusing receipt",
			"fingerprint", fingerprint,
			"anchor_id", anchorID,
		)
		return anchorID, nil
	} else if !errors.Is(err, sentinel.ErrNotFound) {
		// Cache trouble must not block anchoring.
		r.logger.WarnContext(ctx, "dedup cache unavailable", "error", err.Error())
	}

	v, err, _ := r.group.Do(fingerprint, func() (any, error) {
		return r.anchorWithRetry(ctx, fingerprint)
	})
	if err != nil {
		return "", err
	}
	return v.(string), nil
}

func (r *ResilientAnchorer) anchorWithRetry(ctx context.Context, fingerprint string) (string, error) {
	if r.breaker.IsOpen() {
		return "", dErrors.Wrap(dErrors.CodeUnavailable, "ledger circuit open", sentinel.ErrUnavailable)
	}

	var lastErr error
	for attempt := 0; attempt <= r.retries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(time.Duration(attempt) * r.backoff):
			}
		}

		anchorID, err := r.anchorOnce(ctx, fingerprint)
		if err == nil {
			r.breaker.RecordSuccess()
			if putErr := r.cache.Put(ctx, fingerprint, anchorID); putErr != nil {
				r.logger.WarnContext(ctx, "dedup cache write failed", "error", putErr.Error())
			}
			return anchorID, nil
		}

		lastErr = err
		if _, change := r.breaker.RecordFailure(); change.Opened {
			r.logger.ErrorContext(ctx, "ledger circuit opened", "breaker", r.breaker.Name())
		}
		if ctx.Err() != nil {
			break
		}
	}
	return "", fmt.Errorf("anchor %q: %w", fingerprint, lastErr)
}

// anchorOnce bounds a single backend call. The backend SDK may not honor
// context cancellation, so the call runs in its own goroutine and is
// abandoned on timeout; the buffered channel lets it finish quietly.
func (r *ResilientAnchorer) anchorOnce(ctx context.Context, fingerprint string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	type result struct {
		anchorID string
		err      error
	}
	done := make(chan result, 1)
	go func() {
		anchorID, err := r.next.Anchor(ctx, fingerprint)
		done <- result{anchorID, err}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-done:
		return res.anchorID, res.err
	}
}
