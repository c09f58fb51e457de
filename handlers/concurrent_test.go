// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/danielhkuo/quickly-rank/cliparse"
	"github.com/danielhkuo/quickly-rank/db"
	"github.com/danielhkuo/quickly-rank/models"
	"github.com/danielhkuo/quickly-rank/testutil"
)

// TestConcurrentMatches verifies that simultaneous match submissions on the
// same list are all recorded and no Elo points are lost
func TestConcurrentMatches(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	checkConcurrentMatches(t, conn, testutil.GetTestConfig())
}

// TestConcurrentMatchesPostgres runs the same check against a live Postgres,
// where transactions on the same items really overlap
func TestConcurrentMatchesPostgres(t *testing.T) {
	conn := testutil.SetupPostgresDB(t)
	defer conn.Close()

	cfg := testutil.GetTestConfig()
	cfg.DatabaseType = db.TypePostgres
	checkConcurrentMatches(t, conn, cfg)
}

// checkConcurrentMatches plays A against B from many goroutines, alternating
// the winner so the two rows are requested in both orders
func checkConcurrentMatches(t *testing.T, conn *sql.DB, cfg cliparse.Config) {
	t.Helper()

	handler := NewMatchHandler(conn, cfg)
	listID, ownerKey, _ := testutil.CreateTestList(t, conn, cfg, "Albums")
	a := testutil.AddTestItem(t, conn, listID, "A", 1500)
	b := testutil.AddTestItem(t, conn, listID, "B", 1500)

	numMatches := 10
	var successCount atomic.Int32
	var wg sync.WaitGroup

	for i := 0; i < numMatches; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()

			body := models.RecordMatchRequest{WinnerID: a, LoserID: b}
			if i%2 == 1 {
				body = models.RecordMatchRequest{WinnerID: b, LoserID: a}
			}
			req := testutil.MakeRequest("POST", "/lists/"+listID+"/matches", body, testutil.OwnerHeaders(ownerKey))
			req.SetPathValue("id", listID)
			w := httptest.NewRecorder()

			handler.RecordMatch(w, req)

			if w.Code == http.StatusOK {
				successCount.Add(1)
			}
		}(i)
	}

	wg.Wait()

	if int(successCount.Load()) != numMatches {
		t.Errorf("Expected %d successful matches, got %d", numMatches, successCount.Load())
	}

	var results int
	conn.QueryRow("SELECT COUNT(*) FROM match_result WHERE list_id = $1", listID).Scan(&results)
	if results != numMatches {
		t.Errorf("Expected %d match results, got %d", numMatches, results)
	}

	// Elo is zero-sum and every match counted once
	var total, wins, losses int
	err := conn.QueryRow("SELECT SUM(score), SUM(wins), SUM(losses) FROM item WHERE list_id = $1", listID).Scan(&total, &wins, &losses)
	if err != nil {
		t.Fatal(err)
	}
	if total != 3000 {
		t.Errorf("Expected total score 3000, got %d", total)
	}
	if wins != numMatches || losses != numMatches {
		t.Errorf("Expected %d wins and losses, got %d/%d", numMatches, wins, losses)
	}
}

// TestConcurrentAdvances verifies that racing clients clicking the same
// match only resolve it once
func TestConcurrentAdvances(t *testing.T) {
	f := newTournamentFixture(t, 8)
	tid := f.mustStart(t, "seeded").ID

	var played, conflicts atomic.Int32
	var wg sync.WaitGroup

	for i := 0; i < 6; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				w := f.do("GET", tid, "", nil, "", f.handler.GetTournament)
				var state models.TournamentState
				if err := json.NewDecoder(w.Body).Decode(&state); err != nil {
					t.Errorf("Failed to decode state: %v", err)
					return
				}
				if state.NextMatch == nil {
					return
				}

				switch code := f.advance(tid, state.NextMatch.Left.Index).Code; code {
				case http.StatusOK:
					played.Add(1)
				case http.StatusConflict:
					conflicts.Add(1)
				default:
					t.Errorf("Unexpected status %d", code)
					return
				}
			}
		}()
	}

	wg.Wait()

	if played.Load() != 7 {
		t.Errorf("Expected 7 matches played, got %d (%d conflicts)", played.Load(), conflicts.Load())
	}

	var results int
	f.db.QueryRow("SELECT COUNT(*) FROM match_result WHERE list_id = $1 AND mode = $2", f.listID, models.ModeTournament).Scan(&results)
	if results != 7 {
		t.Errorf("Expected 7 tournament match results, got %d", results)
	}

	var ranked int
	f.db.QueryRow("SELECT COUNT(*) FROM item WHERE list_id = $1 AND rank IS NOT NULL", f.listID).Scan(&ranked)
	if ranked != 8 {
		t.Errorf("Expected 8 ranked items, got %d", ranked)
	}
}
