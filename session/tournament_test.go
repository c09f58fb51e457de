// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package session

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/danielhkuo/quickly-rank/bracket"
	"github.com/danielhkuo/quickly-rank/models"
)

func noCommit(Outcome) ([]models.Item, error) { return nil, nil }

func newTestTournament(t *testing.T, items []models.Item) *Tournament {
	t.Helper()
	tour, err := NewStore(DefaultMaxSessions, time.Hour).Create("list1", bracket.Seeded, items)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	return tour
}

func TestAdvanceFinal(t *testing.T) {
	tour := newTestTournament(t, testItems(2))

	var committed Outcome
	out, err := tour.Advance(0, func(o Outcome) ([]models.Item, error) {
		committed = o
		winner, loser := o.Winner, o.Loser
		winner.Score += 16
		winner.Wins++
		loser.Score -= 16
		loser.Losses++
		return []models.Item{winner, loser}, nil
	})
	if err != nil {
		t.Fatalf("Advance() error = %v", err)
	}

	if !committed.Champion || committed.Winner.ID != "i1" || committed.Loser.ID != "i2" {
		t.Errorf("Unexpected committed outcome: %+v", committed)
	}
	if len(committed.Standings) != 2 || committed.Standings[0].ItemID != "i1" || committed.Standings[1].Rank != 2 {
		t.Errorf("Expected final standings i1:1, i2:2, got %+v", committed.Standings)
	}

	if out.Winner.Score != 1716 || out.Loser.Score != 1584 {
		t.Errorf("Expected updated scores 1716/1584, got %d/%d", out.Winner.Score, out.Loser.Score)
	}

	state := tour.State()
	if state.Winner == nil || state.Winner.ID != "i1" {
		t.Fatalf("Expected i1 to be champion, got %+v", state.Winner)
	}
	if state.Winner.Wins != 1 {
		t.Errorf("Expected cached winner to have 1 win, got %d", state.Winner.Wins)
	}
	if state.NextMatch != nil {
		t.Errorf("Expected no next match, got %+v", state.NextMatch)
	}
	if state.Standings[1].Score != 1584 {
		t.Errorf("Expected runner-up score 1584, got %d", state.Standings[1].Score)
	}
}

func TestAdvanceNotResolvable(t *testing.T) {
	tour := newTestTournament(t, testItems(2))

	called := false
	_, err := tour.Advance(1, func(Outcome) ([]models.Item, error) {
		called = true
		return nil, nil
	})
	if !errors.Is(err, ErrNotResolvable) {
		t.Errorf("Expected ErrNotResolvable, got %v", err)
	}
	if called {
		t.Error("Expected commit not to run for an unresolvable slot")
	}
}

func TestAdvanceCommitFailureLeavesBracket(t *testing.T) {
	tour := newTestTournament(t, testItems(2))
	before := tour.State()

	boom := errors.New("db down")
	_, err := tour.Advance(0, func(Outcome) ([]models.Item, error) {
		return nil, boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("Expected commit error, got %v", err)
	}

	after := tour.State()
	if after.Winner != nil {
		t.Error("Expected no champion after failed commit")
	}
	for i := range before.Slots {
		if before.Slots[i] != after.Slots[i] {
			t.Errorf("Slot %d changed: %+v -> %+v", i, before.Slots[i], after.Slots[i])
		}
	}

	// The same match can still be played
	if _, err := tour.Advance(0, noCommit); err != nil {
		t.Errorf("Expected retry to succeed, got %v", err)
	}
}

func TestStateSlots(t *testing.T) {
	tour := newTestTournament(t, testItems(3))
	state := tour.State()

	if state.Depth != 2 {
		t.Errorf("Expected depth 2, got %d", state.Depth)
	}
	if len(state.Slots) != 7 {
		t.Fatalf("Expected 7 slots, got %d", len(state.Slots))
	}

	// Seed 1 has a bye in slot 1 above the blank leaves 0 and 2
	if state.Slots[1].ItemID != "i1" || !state.Slots[1].Eligible {
		t.Errorf("Expected i1 eligible in slot 1, got %+v", state.Slots[1])
	}
	for _, i := range []int{0, 2} {
		if !state.Slots[i].Blank || state.Slots[i].ItemID != "" {
			t.Errorf("Expected slot %d to be blank, got %+v", i, state.Slots[i])
		}
	}
	if state.Slots[3].ItemID != "" || state.Slots[3].Eligible {
		t.Errorf("Expected empty root, got %+v", state.Slots[3])
	}

	if state.NextMatch == nil {
		t.Fatal("Expected a next match")
	}
	if state.NextMatch.Left.Index != 4 || state.NextMatch.Right.Index != 6 {
		t.Errorf("Expected next match 4 vs 6, got %d vs %d", state.NextMatch.Left.Index, state.NextMatch.Right.Index)
	}
	if len(state.Standings) != 0 {
		t.Errorf("Expected no standings yet, got %+v", state.Standings)
	}
}

func TestStandingsKeepPreviousRank(t *testing.T) {
	items := testItems(2)
	prev := 2
	items[0].Rank = &prev

	tour := newTestTournament(t, items)
	_, err := tour.Advance(2, func(o Outcome) ([]models.Item, error) {
		rank := 1
		winner := o.Winner
		winner.Rank = &rank
		return []models.Item{winner}, nil
	})
	if err != nil {
		t.Fatal(err)
	}

	standings := tour.Standings()
	if len(standings) != 2 {
		t.Fatalf("Expected 2 standings, got %d", len(standings))
	}
	if standings[0].ItemID != "i2" || standings[0].PreviousRank != nil {
		t.Errorf("Expected champion i2 with no previous rank, got %+v", standings[0])
	}
	if standings[1].ItemID != "i1" || standings[1].PreviousRank == nil || *standings[1].PreviousRank != 2 {
		t.Errorf("Expected runner-up i1 with previous rank 2, got %+v", standings[1])
	}
}

func TestTournamentReset(t *testing.T) {
	tour := newTestTournament(t, testItems(4))
	initial := tour.State()

	for tour.State().NextMatch != nil {
		left := tour.State().NextMatch.Left.Index
		if _, err := tour.Advance(left, noCommit); err != nil {
			t.Fatal(err)
		}
	}
	if _, ok := tour.Winner(); !ok {
		t.Fatal("Expected a champion")
	}

	tour.Reset()
	state := tour.State()
	if state.Winner != nil || len(state.Standings) != 0 {
		t.Errorf("Expected a fresh bracket after reset, got winner %+v standings %+v", state.Winner, state.Standings)
	}
	for i := range initial.Slots {
		if initial.Slots[i] != state.Slots[i] {
			t.Errorf("Slot %d not restored: %+v vs %+v", i, state.Slots[i], initial.Slots[i])
		}
	}
}

func TestTournamentVersion(t *testing.T) {
	tour := newTestTournament(t, testItems(4))
	if v := tour.State().Version; v != 0 {
		t.Fatalf("Expected version 0 at start, got %d", v)
	}

	left := tour.State().NextMatch.Left.Index
	failing := func(Outcome) ([]models.Item, error) { return nil, errors.New("db down") }
	if _, err := tour.Advance(left, failing); err == nil {
		t.Fatal("Expected commit error")
	}
	if _, err := tour.Advance(1, noCommit); !errors.Is(err, ErrNotResolvable) {
		t.Fatalf("Expected ErrNotResolvable, got %v", err)
	}
	if v := tour.State().Version; v != 0 {
		t.Errorf("Failed advances changed version to %d", v)
	}

	if _, err := tour.Advance(left, noCommit); err != nil {
		t.Fatal(err)
	}
	if v := tour.State().Version; v != 1 {
		t.Errorf("Expected version 1 after advance, got %d", v)
	}

	tour.Reset()
	if v := tour.State().Version; v != 2 {
		t.Errorf("Expected version 2 after reset, got %d", v)
	}
}

func TestSingleEntrantIsChampion(t *testing.T) {
	tour := newTestTournament(t, testItems(1))

	winner, ok := tour.Winner()
	if !ok || winner.ID != "i1" {
		t.Errorf("Expected i1 to be champion immediately, got %+v %v", winner, ok)
	}
	standings := tour.Standings()
	if len(standings) != 1 || standings[0].Rank != 1 {
		t.Errorf("Expected single standing with rank 1, got %+v", standings)
	}
}

func TestConcurrentAdvance(t *testing.T) {
	const entrants = 16
	tour := newTestTournament(t, testItems(entrants))

	var commits atomic.Int32
	commit := func(Outcome) ([]models.Item, error) {
		commits.Add(1)
		return nil, nil
	}

	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				next := tour.State().NextMatch
				if next == nil {
					return
				}
				_, err := tour.Advance(next.Left.Index, commit)
				if err != nil && !errors.Is(err, ErrNotResolvable) {
					t.Errorf("Advance() error = %v", err)
					return
				}
			}
		}()
	}
	wg.Wait()

	if got := commits.Load(); got != entrants-1 {
		t.Errorf("Expected %d committed matches, got %d", entrants-1, got)
	}
	if len(tour.Standings()) != entrants {
		t.Errorf("Expected %d standings, got %d", entrants, len(tour.Standings()))
	}
}
