package topk

import "sort"

// selectSort materializes every (value, count) pair, sorts by count
// descending and truncates to k. sort.Slice is not stable; equal counts may
// land in either order, which is within the selection contract.
func selectSort[E comparable](freq map[E]int, k int) []E {
	pairs := make([]candidate[E], 0, len(freq))
	for v, c := range freq {
		pairs = append(pairs, candidate[E]{value: v, count: c})
	}
	sort.Slice(pairs, func(i, j int) bool {
		return pairs[i].count > pairs[j].count
	})

	if k > len(pairs) {
		k = len(pairs)
	}
	out := make([]E, k)
	for i := range out {
		out[i] = pairs[i].value
	}
	return out
}
