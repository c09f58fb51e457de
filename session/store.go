// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package session

import (
	"cmp"
	"errors"
	"log/slog"
	"slices"
	"time"

	"github.com/danielhkuo/quickly-rank/bracket"
	"github.com/danielhkuo/quickly-rank/models"
	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"
)

// DefaultMaxSessions bounds how many live tournaments are kept
const DefaultMaxSessions = 1024

var (
	ErrNotFound = errors.New("tournament not found")
	ErrNoItems  = errors.New("list has no items")
)

// Store holds live tournaments keyed by ID
type Store struct {
	lru *expirable.LRU[string, *Tournament]
}

// NewStore creates a store keeping at most size tournaments, each dropped
// after ttl without use. A ttl of zero keeps sessions until evicted by size.
func NewStore(size int, ttl time.Duration) *Store {
	return &Store{
		lru: expirable.NewLRU[string, *Tournament](size, onEvict, ttl),
	}
}

func onEvict(id string, t *Tournament) {
	slog.Info("tournament closed",
		"tournament_id", id,
		"list_id", t.ListID,
		"last_used", humanize.Time(t.LastUsed()),
	)
}

// Create starts a tournament over items. Seeded tournaments put the highest
// score first; Random ones shuffle.
func (s *Store) Create(listID string, strategy bracket.Strategy, items []models.Item) (*Tournament, error) {
	if len(items) == 0 {
		return nil, ErrNoItems
	}

	seeded := slices.Clone(items)
	slices.SortStableFunc(seeded, bySeed)
	seeded = bracket.Order(seeded, strategy, nil)

	t := newTournament(uuid.NewString(), listID, strategy, seeded)
	s.lru.Add(t.ID, t)

	slog.Info("tournament started",
		"tournament_id", t.ID,
		"list_id", listID,
		"mode", strategy,
		"entrants", len(items),
	)

	return t, nil
}

// Get returns a live tournament and restarts its idle timer
func (s *Store) Get(id string) (*Tournament, error) {
	t, ok := s.lru.Get(id)
	if !ok {
		return nil, ErrNotFound
	}
	t.touch()
	s.lru.Add(id, t)
	return t, nil
}

// Delete drops a tournament
func (s *Store) Delete(id string) error {
	if !s.lru.Remove(id) {
		return ErrNotFound
	}
	return nil
}

// Len reports the number of live tournaments
func (s *Store) Len() int {
	return s.lru.Len()
}

// bySeed orders items strongest first: score, then name, then ID
func bySeed(a, b models.Item) int {
	return cmp.Or(
		cmp.Compare(b.Score, a.Score),
		cmp.Compare(a.Name, b.Name),
		cmp.Compare(a.ID, b.ID),
	)
}
