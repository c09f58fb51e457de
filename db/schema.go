// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// Works on both PostgreSQL and SQLite.
const schema = `
-- Lists
CREATE TABLE IF NOT EXISTS list (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    iframe TEXT,
    share_slug TEXT NOT NULL UNIQUE,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

-- Items
CREATE TABLE IF NOT EXISTS item (
    id TEXT PRIMARY KEY,
    list_id TEXT NOT NULL REFERENCES list(id) ON DELETE CASCADE,
    name TEXT NOT NULL,
    iframe TEXT,
    score INTEGER NOT NULL DEFAULT 1500,
    wins INTEGER NOT NULL DEFAULT 0,
    losses INTEGER NOT NULL DEFAULT 0,
    rank INTEGER
);

CREATE INDEX IF NOT EXISTS idx_item_list_id ON item(list_id);

-- Head-to-head decisions
CREATE TABLE IF NOT EXISTS match_result (
    id TEXT PRIMARY KEY,
    list_id TEXT NOT NULL REFERENCES list(id) ON DELETE CASCADE,
    winner_id TEXT NOT NULL REFERENCES item(id) ON DELETE CASCADE,
    loser_id TEXT NOT NULL REFERENCES item(id) ON DELETE CASCADE,
    mode TEXT NOT NULL CHECK (mode IN ('match', 'tournament')),
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_match_result_list_id ON match_result(list_id);
`
