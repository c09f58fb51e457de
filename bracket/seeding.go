// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package bracket

// depthFor returns the smallest D with 2^D >= n.
func depthFor(n int) int {
	d := 0
	for 1<<d < n {
		d++
	}
	return d
}

// gaps returns the signed steps between the slot indexes of consecutive seeds
// for a bracket of the given depth.
//
// The upper and lower halves of the draw each keep a table of steps. The
// tables for the next depth are derived from the current ones by negating
// and interleaving, so no level is rebuilt from scratch.
func gaps(depth int) []int {
	var top, nextTop, bottom, nextBottom []int
	for d := 0; d <= depth; d++ {
		length := (2 << d) - 2
		current := 0

		top = interleave(negate(nextTop), top)
		nextTop = nil
		for _, next := range top {
			step := length - 2*current
			nextTop = append(nextTop, step)
			current += step + next
		}
		step := length - 2*current
		nextTop = append(nextTop, step)
		current += step - 2

		bottom = interleave(negate(nextBottom), bottom)
		nextBottom = nil
		for _, next := range bottom {
			step := length - 2*current
			nextBottom = append(nextBottom, step)
			current += step + next
		}
		nextBottom = append(nextBottom, length-2*current)
	}

	steps := make([]int, 0, 2*(len(nextTop)+len(top))+2)
	steps = append(steps, 0)
	steps = append(steps, interleave(nextTop, top)...)
	steps = append(steps, -2)
	steps = append(steps, interleave(nextBottom, bottom)...)
	return steps
}

// Positions returns the slot index of every seed in a bracket of n entrants.
// Positions(n)[0] is where seed 1 goes.
func Positions(n int) []int {
	if n <= 0 {
		return nil
	}

	depth := depthFor(n)
	byes := (1 << depth) - n
	steps := gaps(depth)

	positions := make([]int, n)
	current := 0
	for seed := 0; seed < n; seed++ {
		current += steps[seed]
		pos := current
		// Byes skip the first round: move into the match slot above the
		// leaf pair instead of occupying a leaf.
		if seed < byes {
			if current%4 == 0 {
				pos = current + 1
			} else {
				pos = current - 1
			}
		}
		positions[seed] = pos
	}
	return positions
}

// interleave alternates a[0], b[0], a[1], b[1], ... and stops at the first
// turn whose slice is exhausted.
func interleave(a, b []int) []int {
	out := make([]int, 0, len(a)+len(b))
	for i := 0; ; i++ {
		if i >= len(a) {
			return out
		}
		out = append(out, a[i])
		if i >= len(b) {
			return out
		}
		out = append(out, b[i])
	}
}

func negate(steps []int) []int {
	out := make([]int, len(steps))
	for i, s := range steps {
		out[i] = -s
	}
	return out
}
