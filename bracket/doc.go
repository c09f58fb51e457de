// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package bracket implements a seeded single-elimination tournament.

# Layout

A bracket for N entrants is a flat slice of 2^(D+1)-1 slots where D is the
smallest depth with 2^D >= N. Even indexes are leaves (entrants), odd indexes
are match slots that receive the winner of the two slots around them:

	index  0   1   2   3   4   5   6
	       1   *   4   *   3   *   2     start
	       1   1   4   1   3   2   2     after three matches

Relationships come from index arithmetic alone:

  - depth of slot i is the number of trailing one bits of i
  - the sibling of a left slot i is i + 2*2^depth
  - the parent of a pair is the slot midway between them
  - the root (champion) slot is len/2 and has no sibling

# Seeding

Seeds are placed so that 1 and 2 sit in opposite halves, 1-4 in different
quarters, and so on. When N is not a power of two the first 2^D-N seeds get
byes: they are placed directly into the match slot above an unused pair of
leaves.

	b := bracket.Build([]string{"a", "b", "c"}, "")
	// slots: _ a _ * c * b

# Playing

Advance resolves one match in favor of the given slot:

	res, ok := b.Advance(6) // "b" beats "c"
	res, ok = b.Advance(1)  // "a" beats "b", res.Champion == true

Advance never fails; it reports ok=false when the slot cannot be resolved.
NextMatch finds the next playable pair, round by round.

# Standings

Every resolved match assigns the loser a placement. Competitors eliminated in
the same round tie: runner-up is 2, semifinal losers 3, quarterfinal losers 5.
A competitor that loses from a slot at depth d ranks 2^(D-1-d)+1, where D
is the depth of the root slot.

	for _, s := range b.Standings() {
		fmt.Println(s.Rank, s.Item)
	}

Reset restores the bracket as it was built and clears the standings.

A Bracket is not safe for concurrent use.
*/
package bracket
