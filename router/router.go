// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/danielhkuo/quickly-rank/cliparse"
	"github.com/danielhkuo/quickly-rank/handlers"
	"github.com/danielhkuo/quickly-rank/middleware"
	"github.com/danielhkuo/quickly-rank/session"
)

func NewRouter(db *sql.DB, cfg cliparse.Config, store *session.Store) *http.ServeMux {
	mux := http.NewServeMux()

	listHandler := handlers.NewListHandler(db, cfg)
	matchHandler := handlers.NewMatchHandler(db, cfg)
	tournamentHandler := handlers.NewTournamentHandler(db, cfg, store)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Lists and items (owner)
	mux.HandleFunc("POST /lists", middleware.WithLogging(listHandler.CreateList))
	mux.HandleFunc("GET /lists/{id}", middleware.WithLogging(listHandler.GetList))
	mux.HandleFunc("POST /lists/{id}/items", middleware.WithLogging(listHandler.AddItem))
	mux.HandleFunc("DELETE /lists/{id}/items/{item_id}", middleware.WithLogging(listHandler.DeleteItem))

	// Shared read-only view
	mux.HandleFunc("GET /shared/{slug}", middleware.WithLogging(listHandler.GetShared))

	// Pairwise matches
	mux.HandleFunc("POST /lists/{id}/matches", middleware.WithLogging(matchHandler.RecordMatch))
	mux.HandleFunc("GET /lists/{id}/matches/random", middleware.WithLogging(matchHandler.RandomMatch))

	// Tournaments
	mux.HandleFunc("POST /lists/{id}/tournaments", middleware.WithLogging(tournamentHandler.StartTournament))
	mux.HandleFunc("GET /tournaments/{tid}", middleware.WithLogging(tournamentHandler.GetTournament))
	mux.HandleFunc("DELETE /tournaments/{tid}", middleware.WithLogging(tournamentHandler.DeleteTournament))
	mux.HandleFunc("POST /tournaments/{tid}/advance", middleware.WithLogging(tournamentHandler.Advance))
	mux.HandleFunc("POST /tournaments/{tid}/reset", middleware.WithLogging(tournamentHandler.ResetTournament))
	mux.HandleFunc("GET /tournaments/{tid}/standings", middleware.WithLogging(tournamentHandler.GetStandings))
	mux.HandleFunc("GET /tournaments/{tid}/bracket.png", middleware.WithLogging(tournamentHandler.GetBracketImage))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("quickly-rank API v1"))
	})

	return mux
}
