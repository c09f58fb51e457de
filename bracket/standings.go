// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package bracket

import "slices"

// Standing is the final placement of one competitor.
type Standing[T comparable] struct {
	Item T
	Rank int
}

// Standings returns every placement decided so far, best first. Until the
// final is played the champion and any competitor still alive are missing.
func (b *Bracket[T]) Standings() []Standing[T] {
	if b.cursor+1 >= len(b.standings) {
		return nil
	}
	return slices.Clone(b.standings[b.cursor+1:])
}

// rankAt returns the placement of a competitor knocked out of a match whose
// slots sit at the given depth. Losers of the final (depth D-1) place 2.
func (b *Bracket[T]) rankAt(depth int) int {
	return 1<<(b.depth-1-depth) + 1
}

// record fills the standings from the back; the champion is the last write.
func (b *Bracket[T]) record(item T, rank int) {
	if b.cursor < 0 {
		return
	}
	b.standings[b.cursor] = Standing[T]{Item: item, Rank: rank}
	b.cursor--
}

func (b *Bracket[T]) clearStandings() {
	b.standings = make([]Standing[T], b.entrants)
	b.cursor = b.entrants - 1

	// A lone entrant starts out as champion.
	if winner, ok := b.Winner(); ok {
		b.record(winner, 1)
	}
}
