// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package session keeps live tournaments in memory.

A Tournament wraps one bracket.Bracket of item IDs together with a snapshot
of the list's items. Brackets are never written to the database; only the
Elo updates and final ranks they produce are.

# Store

	store := session.NewStore(session.DefaultMaxSessions, cfg.SessionTTL)
	t, err := store.Create(listID, bracket.Seeded, items)

	t, err = store.Get(id) // refreshes the idle timer
	err = store.Delete(id)

Sessions idle longer than the TTL, and the least recently used sessions once
the store is full, are evicted by an expirable LRU.

# Advancing

Advance plays one match on a copy of the bracket and hands the outcome to a
commit function. The copy replaces the live bracket only when commit
succeeds, so a failed database write leaves the tournament unchanged.

	out, err := t.Advance(slot, func(o session.Outcome) ([]models.Item, error) {
		return recordResult(tx, o)
	})

Each Tournament serializes its own operations. Different tournaments never
contend.
*/
package session
