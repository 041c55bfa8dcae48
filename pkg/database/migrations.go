package database

import (
	"context"
	"fmt"
)

// Schema for the ratings table. The check constraint duplicates the API-level
// bound on purpose: an out-of-range value that slips past the boundary is
// still rejected at commit time.
const createRatingsTable = `
CREATE TABLE IF NOT EXISTS ratings (
	id         BIGSERIAL PRIMARY KEY,
	trip_id    BIGINT NOT NULL,
	rider_id   BIGINT NOT NULL,
	driver_id  BIGINT NOT NULL,
	rating     INTEGER NOT NULL,
	comment    TEXT,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	CONSTRAINT check_rating_range CHECK (rating >= 1 AND rating <= 5)
);
CREATE INDEX IF NOT EXISTS idx_ratings_rider_id ON ratings (rider_id);
`

// Migrate creates the ratings schema if it does not exist yet.
func (p *Postgres) Migrate(ctx context.Context) error {
	if _, err := p.Pool.Exec(ctx, createRatingsTable); err != nil {
		return fmt.Errorf("failed to run ratings migration: %w", err)
	}
	return nil
}
