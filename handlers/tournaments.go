// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"bytes"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/quickly-rank/auth"
	"github.com/danielhkuo/quickly-rank/bracket"
	"github.com/danielhkuo/quickly-rank/cliparse"
	"github.com/danielhkuo/quickly-rank/middleware"
	"github.com/danielhkuo/quickly-rank/models"
	"github.com/danielhkuo/quickly-rank/render"
	"github.com/danielhkuo/quickly-rank/session"
	"golang.org/x/sync/singleflight"
)

type TournamentHandler struct {
	db    *sql.DB
	cfg   cliparse.Config
	store *session.Store

	// Coalesces concurrent image renders of the same tournament
	renders singleflight.Group
}

func NewTournamentHandler(db *sql.DB, cfg cliparse.Config, store *session.Store) *TournamentHandler {
	return &TournamentHandler{db: db, cfg: cfg, store: store}
}

// StartTournament handles POST /lists/{id}/tournaments
// An empty body starts a seeded tournament
func (h *TournamentHandler) StartTournament(w http.ResponseWriter, r *http.Request) {
	listID, ok := authorizeList(w, r, h.cfg)
	if !ok {
		return
	}

	var req models.StartTournamentRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil && !errors.Is(err, io.EOF) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	strategy, err := bracket.ParseStrategy(req.Mode)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "mode must be 'seeded' or 'random'")
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

	t, err := h.store.Create(listID, strategy, items)
	if errors.Is(err, session.ErrNoItems) {
		middleware.ErrorResponse(w, http.StatusConflict, "List has no items")
		return
	}
	if err != nil {
		slog.Error("failed to start tournament", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to start tournament")
		return
	}

	middleware.JSONResponse(w, http.StatusCreated, t.State())
}

// GetTournament handles GET /tournaments/{tid}
func (h *TournamentHandler) GetTournament(w http.ResponseWriter, r *http.Request) {
	t, ok := h.lookup(w, r)
	if !ok {
		return
	}

	middleware.JSONResponse(w, http.StatusOK, t.State())
}

// Advance handles POST /tournaments/{tid}/advance
// The item in the given slot wins its match. Elo stats are updated for both
// items, and the final standings become the list ranks once a champion is
// decided.
func (h *TournamentHandler) Advance(w http.ResponseWriter, r *http.Request) {
	t, ok := h.lookupOwned(w, r)
	if !ok {
		return
	}

	var req models.AdvanceRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.Slot == nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "slot is required")
		return
	}

	out, err := t.Advance(*req.Slot, func(o session.Outcome) ([]models.Item, error) {
		return h.commitOutcome(t.ListID, o)
	})
	if errors.Is(err, session.ErrNotResolvable) {
		middleware.ErrorResponse(w, http.StatusConflict, "Match not resolvable")
		return
	}
	if errors.Is(err, sql.ErrNoRows) {
		// The bracket references an item that was deleted and can never finish
		h.store.Delete(t.ID)
		slog.Info("tournament dropped", "tournament_id", t.ID, "reason", "item deleted")
		middleware.ErrorResponse(w, http.StatusGone, "An item in this match was deleted; start a new tournament")
		return
	}
	if err != nil {
		slog.Error("failed to advance tournament", "tournament_id", t.ID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to advance tournament")
		return
	}

	slog.Info("match played",
		"tournament_id", t.ID,
		"slot", *req.Slot,
		"winner_id", out.Winner.ID,
		"loser_id", out.Loser.ID,
	)

	resp := models.AdvanceResponse{
		Resolved:   true,
		Winner:     &out.Winner,
		Loser:      &out.Loser,
		Tournament: t.State(),
	}
	if out.Champion {
		resp.Champion = &out.Winner
		slog.Info("tournament decided", "tournament_id", t.ID, "champion_id", out.Winner.ID)
	}

	middleware.JSONResponse(w, http.StatusOK, resp)
}

// commitOutcome stores one tournament match in a single transaction
func (h *TournamentHandler) commitOutcome(listID string, o session.Outcome) ([]models.Item, error) {
	tx, err := h.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	winner, loser, err := applyMatch(tx, h.cfg.DatabaseType, listID, o.Winner.ID, o.Loser.ID, models.ModeTournament)
	if err != nil {
		return nil, err
	}

	if o.Champion {
		if err := persistRanks(tx, listID, o.Standings); err != nil {
			return nil, err
		}
		for _, s := range o.Standings {
			rank := s.Rank
			switch s.ItemID {
			case winner.ID:
				winner.Rank = &rank
			case loser.ID:
				loser.Rank = &rank
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return []models.Item{winner, loser}, nil
}

// ResetTournament handles POST /tournaments/{tid}/reset
// Ranks and Elo changes already stored are kept
func (h *TournamentHandler) ResetTournament(w http.ResponseWriter, r *http.Request) {
	t, ok := h.lookupOwned(w, r)
	if !ok {
		return
	}

	t.Reset()
	slog.Info("tournament reset", "tournament_id", t.ID)

	middleware.JSONResponse(w, http.StatusOK, t.State())
}

// GetStandings handles GET /tournaments/{tid}/standings
func (h *TournamentHandler) GetStandings(w http.ResponseWriter, r *http.Request) {
	t, ok := h.lookup(w, r)
	if !ok {
		return
	}

	middleware.JSONResponse(w, http.StatusOK, t.Standings())
}

// GetBracketImage handles GET /tournaments/{tid}/bracket.png
func (h *TournamentHandler) GetBracketImage(w http.ResponseWriter, r *http.Request) {
	t, ok := h.lookup(w, r)
	if !ok {
		return
	}

	// Requests join an in-flight render only when they see the same version
	state := t.State()
	key := renderKey(state)
	img, err, _ := h.renders.Do(key, func() (any, error) {
		var buf bytes.Buffer
		if err := render.BracketPNG(&buf, state); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	})
	if err != nil {
		slog.Error("failed to render bracket", "tournament_id", t.ID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to render bracket")
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	w.Write(img.([]byte))
}

func renderKey(state models.TournamentState) string {
	return fmt.Sprintf("%s/%d", state.ID, state.Version)
}

// DeleteTournament handles DELETE /tournaments/{tid}
func (h *TournamentHandler) DeleteTournament(w http.ResponseWriter, r *http.Request) {
	t, ok := h.lookupOwned(w, r)
	if !ok {
		return
	}

	if err := h.store.Delete(t.ID); err != nil {
		middleware.ErrorResponse(w, http.StatusNotFound, "Tournament not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// lookup finds the live tournament named by the {tid} path value
func (h *TournamentHandler) lookup(w http.ResponseWriter, r *http.Request) (*session.Tournament, bool) {
	tid := r.PathValue("tid")
	if tid == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "tournament_id is required")
		return nil, false
	}

	t, err := h.store.Get(tid)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusNotFound, "Tournament not found")
		return nil, false
	}

	return t, true
}

// lookupOwned is lookup plus an owner key check against the tournament's list
func (h *TournamentHandler) lookupOwned(w http.ResponseWriter, r *http.Request) (*session.Tournament, bool) {
	t, ok := h.lookup(w, r)
	if !ok {
		return nil, false
	}

	ownerKey := r.Header.Get(middleware.OwnerKeyHeader)
	if err := auth.ValidateOwnerKey(t.ListID, ownerKey, h.cfg.OwnerKeySalt); err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid owner key")
		return nil, false
	}

	return t, true
}
