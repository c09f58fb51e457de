// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "time"

// Starting Elo score for new items
const DefaultScore = 1500

// Match modes recorded with each result
const (
	ModeMatch      = "match"
	ModeTournament = "tournament"
)

// Request types

type CreateListRequest struct {
	Name   string  `json:"name"`
	Iframe *string `json:"iframe,omitempty"`
}

type AddItemRequest struct {
	Name   string  `json:"name"`
	Iframe *string `json:"iframe,omitempty"`
}

type RecordMatchRequest struct {
	WinnerID string `json:"winner_id"`
	LoserID  string `json:"loser_id"`
}

// mode is "seeded" (by score) or "random"
type StartTournamentRequest struct {
	Mode string `json:"mode"`
}

type AdvanceRequest struct {
	Slot *int `json:"slot"`
}

// Response types

type CreateListResponse struct {
	ListID    string `json:"list_id"`
	OwnerKey  string `json:"owner_key"`
	ShareSlug string `json:"share_slug"`
}

type AddItemResponse struct {
	ItemID string `json:"item_id"`
}

type RecordMatchResponse struct {
	Winner Item `json:"winner"`
	Loser  Item `json:"loser"`
}

type RandomMatchResponse struct {
	Left  Item `json:"left"`
	Right Item `json:"right"`
}

type AdvanceResponse struct {
	Resolved   bool            `json:"resolved"`
	Winner     *Item           `json:"winner,omitempty"`
	Loser      *Item           `json:"loser,omitempty"`
	Champion   *Item           `json:"champion,omitempty"`
	Tournament TournamentState `json:"tournament"`
}

// Domain types

type List struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Iframe    *string   `json:"iframe,omitempty"`
	ShareSlug string    `json:"share_slug"`
	CreatedAt time.Time `json:"created_at"`
}

type Item struct {
	ID     string  `json:"id"`
	ListID string  `json:"list_id"`
	Name   string  `json:"name"`
	Iframe *string `json:"iframe,omitempty"`
	Score  int     `json:"score"`
	Wins   int     `json:"wins"`
	Losses int     `json:"losses"`
	Rank   *int    `json:"rank,omitempty"` // 1-indexed, set by tournaments
}

type ListWithItems struct {
	List  List   `json:"list"`
	Items []Item `json:"items"`
}

type MatchResult struct {
	ID        string    `json:"id"`
	ListID    string    `json:"list_id"`
	WinnerID  string    `json:"winner_id"`
	LoserID   string    `json:"loser_id"`
	Mode      string    `json:"mode"`
	CreatedAt time.Time `json:"created_at"`
}

// Tournament types

// SlotView is one bracket slot as shown to clients.
// Depth picks the column, Eligible whether it can be clicked.
type SlotView struct {
	Index    int    `json:"index"`
	ItemID   string `json:"item_id,omitempty"`
	Name     string `json:"name,omitempty"`
	Eligible bool   `json:"eligible"`
	Depth    int    `json:"depth"`
	Sibling  int    `json:"sibling"`
	Blank    bool   `json:"blank"`
}

type Standing struct {
	ItemID       string `json:"item_id"`
	Name         string `json:"name"`
	Rank         int    `json:"rank"`
	PreviousRank *int   `json:"previous_rank,omitempty"`
	Score        int    `json:"score"`
}

type MatchView struct {
	Left  SlotView `json:"left"`
	Right SlotView `json:"right"`
}

type TournamentState struct {
	ID        string     `json:"id"`
	ListID    string     `json:"list_id"`
	Mode      string     `json:"mode"`
	Depth     int        `json:"depth"`
	Version   int        `json:"version"` // bumped by every advance and reset
	Slots     []SlotView `json:"slots"`
	Winner    *Item      `json:"winner,omitempty"`
	Standings []Standing `json:"standings"`
	NextMatch *MatchView `json:"next_match,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
