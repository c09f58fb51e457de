// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db opens the database and creates the schema.

# Drivers

Open supports two database types:

  - "postgres": github.com/lib/pq
  - "sqlite": modernc.org/sqlite (pure Go, no cgo)

	conn, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)

SQLite connections get foreign keys and a 5s busy timeout through DSN
pragmas so every pooled connection has them.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.
The same statements run on both databases.

# Tables

  - list: named collection, share slug
  - item: Elo score, wins, losses, tournament rank
  - match_result: every head-to-head decision

# Relationships

	list 1──* item
	list 1──* match_result
	item 1──* match_result (as winner or loser)

All foreign keys use ON DELETE CASCADE.

Live tournament brackets are never stored; only the ranks they produce are.
*/
package db
