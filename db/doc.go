// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database schema creation.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

The schema includes:

  - users: Registered participants (unique usernames)
  - rounds: Numbered 24-hour submission windows
  - compositions: Submitted entries with vote counters

# Relationships

	users  1──* compositions
	rounds 1──* compositions

rounds.seed_composition_id is a reserved column for carrying a prior
round's result forward; nothing populates it yet.

# Indexes

Performance indexes on:

  - users.username (unique)
  - compositions.round_number
  - compositions.user_id
*/
package db
