// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3318)
  - DatabaseURL: Database connection string (required)
  - DatabaseType: "sqlite" or "postgres" (default: sqlite)
  - OwnerKeySalt: Secret for list owner key HMAC (required)
  - ShareSlugSalt: Secret for share slug generation (required)
  - SessionTTL: Idle time before a live tournament is dropped (default: 24h)

# CLI Flags

	-p            Server port
	-d            Database URL
	-t            Database type
	-session-ttl  Tournament idle timeout
	-env          Dotenv file (default: .env)
	--owner-salt  Owner key salt
	--slug-salt   Share slug salt

# Environment Variables

Flags fall back to environment variables:

	PORT            → -p
	DATABASE_URL    → -d
	DATABASE_TYPE   → -t
	SESSION_TTL     → -session-ttl
	OWNER_KEY_SALT  → --owner-salt
	SHARE_SLUG_SALT → --slug-salt

Environment variables may also come from a dotenv file. Variables that are
already set are never overwritten by the file, and a missing file is ignored.

CLI flags take precedence over environment variables.

# Validation

ParseFlags returns an error if required values are missing:

  - DATABASE_URL must be provided
  - OWNER_KEY_SALT must be provided
  - SHARE_SLUG_SALT must be provided
*/
package cliparse
