// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package session

import (
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/danielhkuo/quickly-rank/bracket"
	"github.com/danielhkuo/quickly-rank/models"
)

// ErrNotResolvable is returned when the chosen slot has no playable match
var ErrNotResolvable = errors.New("match not resolvable")

// Undecided match slots hold the empty ID
const placeholder = ""

// Tournament is one live bracket over the items of a list
type Tournament struct {
	ID        string
	ListID    string
	Mode      bracket.Strategy
	CreatedAt time.Time

	mu       sync.Mutex
	bracket  *bracket.Bracket[string]
	items    map[string]models.Item
	previous map[string]*int // persisted ranks when the tournament started
	version  int
	lastUsed atomic.Int64
}

// Outcome is the result of one advance
type Outcome struct {
	Winner   models.Item
	Loser    models.Item
	Champion bool
	// Final standings, set only when Champion is true
	Standings []models.Standing
}

// CommitFunc persists an outcome and returns the updated items
type CommitFunc func(Outcome) ([]models.Item, error)

func newTournament(id, listID string, mode bracket.Strategy, seeded []models.Item) *Tournament {
	ids := make([]string, len(seeded))
	items := make(map[string]models.Item, len(seeded))
	previous := make(map[string]*int, len(seeded))
	for i, item := range seeded {
		ids[i] = item.ID
		items[item.ID] = item
		previous[item.ID] = item.Rank
	}

	t := &Tournament{
		ID:        id,
		ListID:    listID,
		Mode:      mode,
		CreatedAt: time.Now(),
		bracket:   bracket.Build(ids, placeholder),
		items:     items,
		previous:  previous,
	}
	t.touch()
	return t
}

func (t *Tournament) touch() {
	t.lastUsed.Store(time.Now().UnixNano())
}

// LastUsed returns when the tournament was last read or changed
func (t *Tournament) LastUsed() time.Time {
	return time.Unix(0, t.lastUsed.Load())
}

// Advance lets the item in slot win its match. commit runs before the
// bracket changes; if it fails the tournament is left as it was.
func (t *Tournament) Advance(slot int, commit CommitFunc) (Outcome, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.touch()

	next := t.bracket.Clone()
	res, ok := next.Advance(slot)
	if !ok {
		return Outcome{}, ErrNotResolvable
	}

	out := Outcome{
		Winner:   t.items[res.Winner],
		Loser:    t.items[res.Loser],
		Champion: res.Champion,
	}
	if res.Champion {
		out.Standings = t.standings(next)
	}

	updated, err := commit(out)
	if err != nil {
		return Outcome{}, err
	}

	for _, item := range updated {
		if _, ok := t.items[item.ID]; ok {
			t.items[item.ID] = item
		}
	}
	out.Winner = t.items[res.Winner]
	out.Loser = t.items[res.Loser]

	t.bracket = next
	t.version++
	return out, nil
}

// Reset puts every item back in its starting slot
func (t *Tournament) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.touch()
	t.bracket.Reset()
	t.version++
}

// Standings returns the placements decided so far, best first
func (t *Tournament) Standings() []models.Standing {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.standings(t.bracket)
}

// Winner returns the champion once the final is played
func (t *Tournament) Winner() (models.Item, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	id, ok := t.bracket.Winner()
	if !ok {
		return models.Item{}, false
	}
	return t.items[id], true
}

// State returns a snapshot of the whole tournament for clients
func (t *Tournament) State() models.TournamentState {
	t.mu.Lock()
	defer t.mu.Unlock()

	slots := t.bracket.Slots()
	views := make([]models.SlotView, len(slots))
	for i, s := range slots {
		views[i] = t.slotView(i, s)
	}

	state := models.TournamentState{
		ID:        t.ID,
		ListID:    t.ListID,
		Mode:      string(t.Mode),
		Depth:     t.bracket.Depth(),
		Version:   t.version,
		Slots:     views,
		Standings: t.standings(t.bracket),
		CreatedAt: t.CreatedAt,
	}

	if id, ok := t.bracket.Winner(); ok {
		winner := t.items[id]
		state.Winner = &winner
	}
	if left, right, ok := t.bracket.NextMatch(); ok {
		state.NextMatch = &models.MatchView{Left: views[left], Right: views[right]}
	}

	return state
}

func (t *Tournament) slotView(i int, s bracket.Slot[string]) models.SlotView {
	v := models.SlotView{
		Index:    i,
		Eligible: s.Eligible,
		Depth:    s.Depth,
		Sibling:  s.Sibling,
		Blank:    s.Blank,
	}
	if item, ok := t.items[s.Item]; ok && !s.Blank {
		v.ItemID = item.ID
		v.Name = item.Name
	}
	return v
}

func (t *Tournament) standings(b *bracket.Bracket[string]) []models.Standing {
	placed := b.Standings()
	if len(placed) == 0 {
		return []models.Standing{}
	}

	out := make([]models.Standing, len(placed))
	for i, p := range placed {
		item := t.items[p.Item]
		out[i] = models.Standing{
			ItemID:       item.ID,
			Name:         item.Name,
			Rank:         p.Rank,
			PreviousRank: t.previous[p.Item],
			Score:        item.Score,
		}
	}
	return out
}
