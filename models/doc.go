// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

  - CreateListRequest: name, iframe
  - AddItemRequest: name, iframe
  - RecordMatchRequest: winner_id, loser_id
  - StartTournamentRequest: mode ("seeded" or "random")
  - AdvanceRequest: slot

# Response Types

  - CreateListResponse: list_id, owner_key, share_slug
  - AddItemResponse: item_id
  - RecordMatchResponse: updated winner and loser
  - RandomMatchResponse: two items to compare
  - AdvanceResponse: resolved flag, match outcome, tournament state
  - ErrorResponse: error, message

# Domain Types

  - List: a named collection of items
  - Item: one thing being ranked, with Elo score, wins, losses and rank
  - MatchResult: one recorded head-to-head decision

# Tournament Types

TournamentState is a snapshot of a live bracket. Slots mirror the bracket
layout one to one; blank slots are unused leaves next to a bye. Standings
carry each item's rank from before the tournament so clients can show
movement.

# Constants

	DefaultScore   = 1500
	ModeMatch      = "match"
	ModeTournament = "tournament"
*/
package models
