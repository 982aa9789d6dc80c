package core

import (
	"slices"
	"testing"
)

func TestRNGDeterministic(t *testing.T) {
	draw := func(seed int64) []int {
		r := NewRNG(seed)
		out := make([]int, 16)
		for i := range out {
			out[i] = r.IntN(100)
		}
		return out
	}
	if !slices.Equal(draw(7), draw(7)) {
		t.Fatal("same seed should produce the same sequence")
	}
	if slices.Equal(draw(7), draw(8)) {
		t.Fatal("different seeds should produce different sequences")
	}
}

func TestPick(t *testing.T) {
	r := NewRNG(1)
	choices := []string{"a", "b", "c"}
	for i := 0; i < 20; i++ {
		if got := Pick(r, choices); !slices.Contains(choices, got) {
			t.Fatalf("picked %q outside choices", got)
		}
	}
	if got := Pick[string](r, nil); got != "" {
		t.Fatalf("empty pick should be zero value, got %q", got)
	}
	if r.IntN(0) != 0 {
		t.Fatal("IntN(0) should be 0")
	}
}
