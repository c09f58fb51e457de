// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package bracket

import (
	"errors"
	"math/rand/v2"
	"reflect"
	"slices"
	"testing"
)

func TestParseStrategy(t *testing.T) {
	tests := []struct {
		in      string
		want    Strategy
		wantErr bool
	}{
		{"", Seeded, false},
		{"seeded", Seeded, false},
		{"random", Random, false},
		{"swiss", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseStrategy(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownStrategy) {
					t.Errorf("ParseStrategy(%q) error = %v, want ErrUnknownStrategy", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseStrategy(%q) error = %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseStrategy(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestOrderSeededKeepsOrder(t *testing.T) {
	in := seeds(16)
	got := Order(in, Seeded, nil)

	if !reflect.DeepEqual(got, in) {
		t.Errorf("Order(Seeded) = %v, want %v", got, in)
	}
	got[0] = 99
	if in[0] != 1 {
		t.Error("Order should not alias its input")
	}
}

func TestOrderRandomIsPermutation(t *testing.T) {
	in := seeds(32)
	r := rand.New(rand.NewPCG(1, 2))
	got := Order(in, Random, r)

	if reflect.DeepEqual(got, in) {
		t.Error("Order(Random) returned the input order")
	}
	sorted := slices.Clone(got)
	slices.Sort(sorted)
	if !reflect.DeepEqual(sorted, in) {
		t.Errorf("Order(Random) = %v is not a permutation of the input", got)
	}

	// Same source, same order.
	again := Order(in, Random, rand.New(rand.NewPCG(1, 2)))
	if !reflect.DeepEqual(got, again) {
		t.Error("Order(Random) is not reproducible with the same source")
	}
}
