package topk

// Count returns a map from each distinct value in values to the number of
// times it appears. The sum of all counts equals len(values) and an empty
// input yields an empty map. Counts are ints: a count can never exceed the
// input length, so any slice Go can address counts without overflow.
func Count[S ~[]E, E comparable](values S) map[E]int {
	freq := make(map[E]int)
	for _, v := range values {
		freq[v]++
	}
	return freq
}
