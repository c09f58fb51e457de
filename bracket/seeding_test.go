// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package bracket

import (
	"reflect"
	"testing"
)

func TestGaps(t *testing.T) {
	tests := []struct {
		depth int
		want  []int
	}{
		{0, []int{0, 0, -2, 4}},
		{1, []int{0, 2, 0, -2, -2, 6, -4, 2}},
		{2, []int{0, 6, -2, -2, 0, 2, 2, -6, -2, 10, -6, 2, -4, 6, -2, -2}},
	}

	for _, tt := range tests {
		if got := gaps(tt.depth); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("gaps(%d) = %v, want %v", tt.depth, got, tt.want)
		}
	}
}

func TestGapsCoverEveryEntrant(t *testing.T) {
	for depth := 0; depth <= 8; depth++ {
		if got := len(gaps(depth)); got < 1<<depth {
			t.Errorf("len(gaps(%d)) = %d, want at least %d", depth, got, 1<<depth)
		}
	}
}

func TestPositions(t *testing.T) {
	tests := []struct {
		n    int
		want []int
	}{
		{0, nil},
		{1, []int{0}},
		{2, []int{0, 2}},
		{3, []int{1, 6, 4}},
		{4, []int{0, 6, 4, 2}},
		{5, []int{1, 13, 9, 6, 4}},
	}

	for _, tt := range tests {
		if got := Positions(tt.n); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Positions(%d) = %v, want %v", tt.n, got, tt.want)
		}
	}
}

func TestPositionsAreDistinct(t *testing.T) {
	for n := 1; n <= 64; n++ {
		seen := map[int]int{}
		size := (2 << depthFor(n)) - 1
		for seed, pos := range Positions(n) {
			if pos < 0 || pos >= size {
				t.Fatalf("n=%d: seed %d placed out of range at %d", n, seed+1, pos)
			}
			if other, dup := seen[pos]; dup {
				t.Fatalf("n=%d: seeds %d and %d share slot %d", n, other+1, seed+1, pos)
			}
			seen[pos] = seed
		}
	}
}

func TestInterleave(t *testing.T) {
	tests := []struct {
		a, b, want []int
	}{
		{nil, nil, []int{}},
		{[]int{1}, nil, []int{1}},
		{[]int{1, 3}, []int{2}, []int{1, 2, 3}},
		{[]int{1, 3}, []int{2, 4, 6}, []int{1, 2, 3, 4}},
	}

	for _, tt := range tests {
		if got := interleave(tt.a, tt.b); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("interleave(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}
