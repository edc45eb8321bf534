// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the jamcircle API server.

jamcircle is a collaborative music-composition service: users submit
text compositions into timed 24-hour rounds, peers vote on them, and the
current round's entries can be listed.

# Starting the Server

The server reads configuration from CLI flags, environment variables, or
a .env file:

	DATABASE_URL=jamcircle.db go run .

Or with flags:

	go run . -p 8000 -t sqlite -d jamcircle.db

# Configuration

Settings:

  - DATABASE_TYPE (-t): store backend - sqlite (default), postgres,
    or memory
  - DATABASE_URL (-d): sqlite file path or postgres connection string
  - PORT (-p): server port (default: 8000)

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (users, rounds, compositions)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: Request/response types
  - store: Round ledger interface and errors
  - store/sqlstore: database/sql backend (sqlite or postgres)
  - store/memstore: in-memory backend
  - db: Schema creation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
