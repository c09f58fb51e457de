// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package bracket

import (
	"errors"
	"math/rand/v2"
	"slices"
)

// Strategy decides the seed order handed to Build.
type Strategy string

const (
	// Seeded keeps the caller's order, strongest first.
	Seeded Strategy = "seeded"
	// Random shuffles the entrants before seeding.
	Random Strategy = "random"
)

var ErrUnknownStrategy = errors.New("unknown seeding strategy")

// ParseStrategy maps a request value to a Strategy. The empty string means
// Seeded.
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(s) {
	case "", Seeded:
		return Seeded, nil
	case Random:
		return Random, nil
	default:
		return "", ErrUnknownStrategy
	}
}

// Order returns a copy of entrants in the seed order for the strategy.
// r may be nil, in which case the global source is used.
func Order[T any](entrants []T, strategy Strategy, r *rand.Rand) []T {
	out := slices.Clone(entrants)
	if strategy == Random {
		Shuffle(out, r)
	}
	return out
}

// Shuffle permutes items in place with a Fisher-Yates shuffle.
func Shuffle[T any](items []T, r *rand.Rand) {
	swap := func(i, j int) { items[i], items[j] = items[j], items[i] }
	if r == nil {
		rand.Shuffle(len(items), swap)
		return
	}
	r.Shuffle(len(items), swap)
}
