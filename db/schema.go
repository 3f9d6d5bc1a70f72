// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates the tables the SQL sink needs.
// Safe to call multiple times - uses IF NOT EXISTS.
//
// The submission table is the source of truth and stores the full nested
// record as JSON. The submission_flat table starts with only its key
// column; the sink adds answer columns on demand, append-only, as the
// question registry grows.
func CreateSchema(db *sql.DB, driver string) error {
	schema := sqliteSchema
	if driver == "postgres" {
		schema = postgresSchema
	}
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

const postgresSchema = `
-- Submissions (source of truth, immutable rows)
CREATE TABLE IF NOT EXISTS submission (
    id TEXT PRIMARY KEY,
    completed_at TIMESTAMPTZ NOT NULL,
    language TEXT NOT NULL,
    instrument_version TEXT NOT NULL,
    record JSONB NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_submission_completed_at ON submission(completed_at);

-- Flat tabular mirror; answer columns are added by the sink
CREATE TABLE IF NOT EXISTS submission_flat (
    submission_id TEXT PRIMARY KEY REFERENCES submission(id) ON DELETE CASCADE
);
`

const sqliteSchema = `
-- Submissions (source of truth, immutable rows)
CREATE TABLE IF NOT EXISTS submission (
    id TEXT PRIMARY KEY,
    completed_at TEXT NOT NULL,
    language TEXT NOT NULL,
    instrument_version TEXT NOT NULL,
    record TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_submission_completed_at ON submission(completed_at);

-- Flat tabular mirror; answer columns are added by the sink
CREATE TABLE IF NOT EXISTS submission_flat (
    submission_id TEXT PRIMARY KEY REFERENCES submission(id) ON DELETE CASCADE
);
`
