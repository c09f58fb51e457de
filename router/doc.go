// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the Quickly Rank API.

	store := session.NewStore(session.DefaultMaxSessions, cfg.SessionTTL)
	mux := router.NewRouter(db, cfg, store)

# Endpoints

Health:

	GET /health

Lists (requires X-Owner-Key):

	POST   /lists                      - Create list
	GET    /lists/{id}                 - List with ranked items
	POST   /lists/{id}/items           - Add item
	DELETE /lists/{id}/items/{item_id} - Remove item

Shared (public):

	GET /shared/{slug} - Read-only list view

Matches (requires X-Owner-Key):

	POST /lists/{id}/matches        - Record a head-to-head result
	GET  /lists/{id}/matches/random - Two random items to compare

Tournaments:

	POST   /lists/{id}/tournaments        - Start (seeded or random)
	GET    /tournaments/{tid}             - Bracket state and next match
	POST   /tournaments/{tid}/advance     - Play one match
	POST   /tournaments/{tid}/reset       - Restore the starting bracket
	GET    /tournaments/{tid}/standings   - Placements so far
	GET    /tournaments/{tid}/bracket.png - Rendered bracket
	DELETE /tournaments/{tid}             - Abandon

Starting, advancing, resetting and deleting check the list's owner key.
*/
package router
