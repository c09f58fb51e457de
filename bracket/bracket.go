// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package bracket

import (
	"math/bits"
	"slices"
)

// NoSibling is the Sibling of the root slot and of blank leaves.
const NoSibling = -1

// Slot is one position in the bracket.
type Slot[T comparable] struct {
	Item     T
	Eligible bool // holds a live contender that can be advanced now
	Depth    int  // 0 for leaves, increasing toward the root
	Sibling  int  // slot this one is matched against
	Blank    bool // unused leaf next to a bye
}

// Bracket is a single-elimination tournament over entrants of type T.
type Bracket[T comparable] struct {
	slots       []Slot[T]
	initial     []Slot[T]
	placeholder T
	depth       int
	entrants    int

	standings []Standing[T]
	cursor    int
}

// Build creates a bracket for entrants given in seed order (seed 1 first).
// placeholder fills match slots that have no winner yet and must not be
// equal to any entrant.
func Build[T comparable](entrants []T, placeholder T) *Bracket[T] {
	b := &Bracket[T]{
		placeholder: placeholder,
		entrants:    len(entrants),
		cursor:      -1,
	}
	if len(entrants) == 0 {
		return b
	}

	b.depth = depthFor(len(entrants))
	size := (2 << b.depth) - 1

	slots := make([]Slot[T], size)
	for i := range slots {
		if i%2 == 0 {
			slots[i] = Slot[T]{Blank: true, Sibling: NoSibling}
		} else {
			slots[i] = Slot[T]{Item: placeholder, Sibling: NoSibling}
		}
	}

	for seed, pos := range Positions(len(entrants)) {
		slots[pos] = Slot[T]{Item: entrants[seed], Eligible: true, Sibling: NoSibling}
	}

	// Wire each pair once, from its left member.
	wired := make([]bool, size)
	for i := range slots {
		if slots[i].Blank || wired[i] {
			continue
		}
		depth := bits.TrailingZeros(^uint(i))
		slots[i].Depth = depth
		wired[i] = true

		sibling := i + 2<<depth
		if sibling < size && !slots[sibling].Blank {
			slots[i].Sibling = sibling
			slots[sibling].Depth = depth
			slots[sibling].Sibling = i
			wired[sibling] = true
		}
	}

	b.slots = slots
	b.initial = slices.Clone(slots)
	b.clearStandings()
	return b
}

// Slots returns a copy of the current slots.
func (b *Bracket[T]) Slots() []Slot[T] {
	return slices.Clone(b.slots)
}

// Depth returns D, the depth of the root slot.
func (b *Bracket[T]) Depth() int {
	return b.depth
}

// Entrants returns the number of competitors the bracket was built with.
func (b *Bracket[T]) Entrants() int {
	return b.entrants
}

// Placeholder returns the value held by undecided match slots.
func (b *Bracket[T]) Placeholder() T {
	return b.placeholder
}

// Root returns the index of the champion slot, or -1 for an empty bracket.
func (b *Bracket[T]) Root() int {
	if len(b.slots) == 0 {
		return -1
	}
	return len(b.slots) / 2
}

// Clone returns an independent copy of the bracket, standings included.
// Advancing the copy leaves the original untouched.
func (b *Bracket[T]) Clone() *Bracket[T] {
	c := *b
	c.slots = slices.Clone(b.slots)
	c.standings = slices.Clone(b.standings)
	return &c
}
