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

// Portable across sqlite and postgres: ids and timestamps are assigned in
// code, so no SERIAL/AUTOINCREMENT or NOW() defaults appear here.
const schema = `
-- Users
CREATE TABLE IF NOT EXISTS users (
    id INTEGER PRIMARY KEY,
    username TEXT NOT NULL UNIQUE
);

-- Rounds
CREATE TABLE IF NOT EXISTS rounds (
    number INTEGER PRIMARY KEY,
    start_time TIMESTAMP NOT NULL,
    end_time TIMESTAMP NOT NULL,
    seed_composition_id INTEGER
);

-- Compositions
CREATE TABLE IF NOT EXISTS compositions (
    id INTEGER PRIMARY KEY,
    user_id INTEGER NOT NULL REFERENCES users(id),
    content TEXT NOT NULL,
    round_number INTEGER NOT NULL REFERENCES rounds(number),
    timestamp TIMESTAMP NOT NULL,
    votes INTEGER NOT NULL DEFAULT 0
);

CREATE INDEX IF NOT EXISTS idx_compositions_round_number ON compositions(round_number);
CREATE INDEX IF NOT EXISTS idx_compositions_user_id ON compositions(user_id);
`
