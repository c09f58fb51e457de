// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Quickly Rank API.

# Handler Types

Each handler is a struct with database and config dependencies:

  - ListHandler: Lists, items and the shared read-only view
  - MatchHandler: Pairwise Elo matches
  - TournamentHandler: Live single-elimination tournaments

	listHandler := handlers.NewListHandler(db, cfg)
	tournamentHandler := handlers.NewTournamentHandler(db, cfg, store)

# Lists

	POST   /lists                      → CreateList (returns owner_key, share_slug)
	POST   /lists/{id}/items           → AddItem
	GET    /lists/{id}                 → GetList
	DELETE /lists/{id}/items/{item_id} → DeleteItem
	GET    /shared/{slug}              → GetShared

List operations require the X-Owner-Key header, except GetShared.

# Elo

Every decided match moves points from the loser to the winner:

	diff = int(32 / (1 + 10^((winner - loser) / 400)))

Two items at 1500 become 1516 and 1484. Matches come from RecordMatch or
from tournament advances and are stored in match_result with their mode.

# Tournaments

	POST   /lists/{id}/tournaments        → StartTournament
	GET    /tournaments/{tid}             → GetTournament
	POST   /tournaments/{tid}/advance     → Advance (409 if not resolvable)
	POST   /tournaments/{tid}/reset       → ResetTournament
	GET    /tournaments/{tid}/standings   → GetStandings
	GET    /tournaments/{tid}/bracket.png → GetBracketImage
	DELETE /tournaments/{tid}             → DeleteTournament

Advance, reset and delete check the owner key of the tournament's list.
When the final is played the standings are written to item.rank in the
same transaction as the final's Elo update.
*/
package handlers
