package auditlog

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// aid_events is insert-only: no UPDATE or DELETE statement exists in this
// package, and seq gives the total append order List reads back.
const initSQL = `
CREATE TABLE IF NOT EXISTS aid_events (
    seq             BIGSERIAL PRIMARY KEY,
    beneficiary_id  TEXT        NOT NULL,
    aid_type        TEXT        NOT NULL,
    location        TEXT        NOT NULL,
    event_timestamp TEXT        NOT NULL,
    anchor_id       TEXT        NOT NULL,
    recorded_at     TIMESTAMPTZ NOT NULL DEFAULT now()
);
`

// PostgresStore persists events in an append-only table.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgres creates the table if needed and returns the store.
func NewPostgres(ctx context.Context, pool *pgxpool.Pool) (*PostgresStore, error) {
	if _, err := pool.Exec(ctx, initSQL); err != nil {
		return nil, fmt.Errorf("auditlog: init aid_events table: %w", err)
	}
	return &PostgresStore{pool: pool}, nil
}

func (s *PostgresStore) Append(ctx context.Context, event Event) error {
	const query = `
		INSERT INTO aid_events (beneficiary_id, aid_type, location, event_timestamp, anchor_id)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := s.pool.Exec(ctx, query,
		event.BeneficiaryID,
		event.AidType,
		event.Location,
		event.Timestamp,
		event.AnchorID,
	)
	if err != nil {
		return fmt.Errorf("auditlog: insert event: %w", err)
	}
	return nil
}

func (s *PostgresStore) List(ctx context.Context) ([]Event, error) {
	const query = `
		SELECT beneficiary_id, aid_type, location, event_timestamp, anchor_id
		FROM aid_events
		ORDER BY seq
	`
	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("auditlog: query events: %w", err)
	}
	defer rows.Close()

	events := []Event{}
	for rows.Next() {
		var e Event
		if err := rows.Scan(&e.BeneficiaryID, &e.AidType, &e.Location, &e.Timestamp, &e.AnchorID); err != nil {
			return nil, fmt.Errorf("auditlog: scan event: %w", err)
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("auditlog: read events: %w", err)
	}
	return events, nil
}
