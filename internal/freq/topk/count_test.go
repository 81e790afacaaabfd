package topk

import (
	"maps"
	"math/rand"
	"testing"
)

func TestCount(t *testing.T) {
	tests := []struct {
		name   string
		values []int
		want   map[int]int
	}{
		{name: "empty", values: nil, want: map[int]int{}},
		{name: "single", values: []int{7}, want: map[int]int{7: 1}},
		{name: "mixed", values: []int{1, 1, 1, 2, 2, 3}, want: map[int]int{1: 3, 2: 2, 3: 1}},
		{name: "all same", values: []int{5, 5, 5, 5}, want: map[int]int{5: 4}},
		{name: "negatives", values: []int{-1, -1, 0}, want: map[int]int{-1: 2, 0: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Count(tt.values)
			if !maps.Equal(got, tt.want) {
				t.Errorf("Count(%v) = %v, want %v", tt.values, got, tt.want)
			}
		})
	}
}

// TestCountTotal verifies that counts always sum to the input length.
func TestCountTotal(t *testing.T) {
	rnd := rand.New(rand.NewSource(42))
	for _, n := range []int{0, 1, 10, 1000} {
		values := make([]int, n)
		for i := range values {
			values[i] = rnd.Intn(17)
		}

		total := 0
		for _, c := range Count(values) {
			total += c
		}
		if total != n {
			t.Errorf("counts for n=%d sum to %d, want %d", n, total, n)
		}
	}
}

// TestCountIdempotent verifies that counting the same input twice yields
// structurally equal maps.
func TestCountIdempotent(t *testing.T) {
	values := []string{"a", "b", "a", "c", "a", "b"}
	if first, second := Count(values), Count(values); !maps.Equal(first, second) {
		t.Errorf("Count not idempotent: %v vs %v", first, second)
	}
}
