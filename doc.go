// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Quickly Rank API server.

Quickly Rank turns a list of anything (albums, songs, snacks) into a ranking.
Items are compared two at a time: every decision moves Elo points, and a
seeded single-elimination tournament over the whole list assigns each item
a placement.

# Starting the Server

	DATABASE_URL=quickly-rank.db OWNER_KEY_SALT=... SHARE_SLUG_SALT=... go run .

Or with flags:

	go run . -p 3318 -t postgres -d "postgres://..." -owner-salt ... -slug-salt ...

Values can also live in a .env file (see -env). Real environment variables
win over the file.

# Configuration

Required settings:

  - DATABASE_URL (-d): SQLite file path or PostgreSQL connection string
  - OWNER_KEY_SALT (-owner-salt): Secret for owner key HMAC
  - SHARE_SLUG_SALT (-slug-salt): Secret for share slug generation

Optional settings:

  - PORT (-p): Server port (default: 3318)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - SESSION_TTL (-session-ttl): idle time before a live tournament is dropped (default: 24h)

# Architecture

  - bracket: Seeded single-elimination engine, no I/O
  - session: Live tournaments in memory
  - handlers: HTTP request handlers (lists, matches, tournaments)
  - render: Bracket PNG rendering
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: Request/response types
  - auth: Owner keys and share slugs
  - db: Driver selection and schema creation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
