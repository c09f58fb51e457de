// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/quickly-rank/bracket"
	"github.com/danielhkuo/quickly-rank/cliparse"
	"github.com/danielhkuo/quickly-rank/middleware"
	"github.com/danielhkuo/quickly-rank/models"
)

type MatchHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewMatchHandler(db *sql.DB, cfg cliparse.Config) *MatchHandler {
	return &MatchHandler{db: db, cfg: cfg}
}

// RecordMatch handles POST /lists/{id}/matches
// Applies one head-to-head result to the Elo scores of both items
func (h *MatchHandler) RecordMatch(w http.ResponseWriter, r *http.Request) {
	listID, ok := authorizeList(w, r, h.cfg)
	if !ok {
		return
	}

	var req models.RecordMatchRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.WinnerID == "" || req.LoserID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "winner_id and loser_id are required")
		return
	}
	if req.WinnerID == req.LoserID {
		middleware.ErrorResponse(w, http.StatusBadRequest, "An item cannot play itself")
		return
	}

	tx, err := h.db.Begin()
	if err != nil {
		slog.Error("failed to begin transaction", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer tx.Rollback()

	winner, loser, err := applyMatch(tx, h.cfg.DatabaseType, listID, req.WinnerID, req.LoserID, models.ModeMatch)
	if errors.Is(err, sql.ErrNoRows) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Item not found")
		return
	}
	if err != nil {
		slog.Error("failed to record match", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to record match")
		return
	}

	if err := tx.Commit(); err != nil {
		slog.Error("failed to commit transaction", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to record match")
		return
	}

	slog.Info("match recorded",
		"list_id", listID,
		"winner_id", winner.ID,
		"loser_id", loser.ID,
		"winner_score", winner.Score,
		"loser_score", loser.Score,
	)

	middleware.JSONResponse(w, http.StatusOK, models.RecordMatchResponse{
		Winner: winner,
		Loser:  loser,
	})
}

// RandomMatch handles GET /lists/{id}/matches/random
// Picks two distinct items uniformly at random
func (h *MatchHandler) RandomMatch(w http.ResponseWriter, r *http.Request) {
	listID, ok := authorizeList(w, r, h.cfg)
	if !ok {
		return
	}

	if !listExists(w, h.db, listID) {
		return
	}

	items, err := getItems(h.db, listID)
	if err != nil {
		slog.Error("failed to query items", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	if len(items) < 2 {
		middleware.ErrorResponse(w, http.StatusConflict, "List needs at least 2 items")
		return
	}

	bracket.Shuffle(items, nil)

	middleware.JSONResponse(w, http.StatusOK, models.RandomMatchResponse{
		Left:  items[0],
		Right: items[1],
	})
}
