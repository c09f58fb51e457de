// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package bracket

// Result describes one resolved match.
type Result[T comparable] struct {
	Winner   T
	Loser    T
	Champion bool // Winner has just won the whole bracket
}

// Advance makes the contender in slot i win its current match. Both slots of
// the match are consumed and the winner moves into the parent slot.
//
// ok is false, and nothing changes, when i is out of range or either side of
// the match is not eligible.
func (b *Bracket[T]) Advance(i int) (res Result[T], ok bool) {
	if i < 0 || i >= len(b.slots) {
		return res, false
	}
	slot := b.slots[i]
	if slot.Blank || !slot.Eligible || slot.Sibling == NoSibling {
		return res, false
	}
	sibling := &b.slots[slot.Sibling]
	if !sibling.Eligible {
		return res, false
	}

	b.slots[i].Eligible = false
	sibling.Eligible = false
	if sibling.Item != b.placeholder {
		b.record(sibling.Item, b.rankAt(sibling.Depth))
	}

	parent := &b.slots[(i+slot.Sibling)/2]
	parent.Item = slot.Item
	parent.Eligible = true

	res = Result[T]{Winner: slot.Item, Loser: sibling.Item}
	if parent.Sibling == NoSibling {
		b.record(slot.Item, 1)
		res.Champion = true
	}
	return res, true
}

// Winner returns the champion once the final has been played.
func (b *Bracket[T]) Winner() (T, bool) {
	if len(b.slots) == 0 {
		var zero T
		return zero, false
	}
	root := b.slots[b.Root()]
	if !root.Eligible {
		var zero T
		return zero, false
	}
	return root.Item, true
}

// Decided reports whether no more matches can be played.
func (b *Bracket[T]) Decided() bool {
	if len(b.slots) == 0 {
		return true
	}
	return b.slots[b.Root()].Eligible
}

// Reset restores every slot to how Build left it and clears the standings.
func (b *Bracket[T]) Reset() {
	copy(b.slots, b.initial)
	b.clearStandings()
}

// NextMatch returns the first playable pair of slots, scanning all first
// round matches before any second round match and so on.
func (b *Bracket[T]) NextMatch() (left, right int, ok bool) {
	half := len(b.slots) / 2
	for start, step := 0, 2; start < half; start, step = start+step/2, step*2 {
		for i := start; i < len(b.slots); i += step {
			slot := b.slots[i]
			if slot.Blank || !slot.Eligible || slot.Sibling == NoSibling {
				continue
			}
			if b.slots[slot.Sibling].Eligible {
				return i, slot.Sibling, true
			}
		}
	}
	return 0, 0, false
}
