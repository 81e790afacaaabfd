package topk

// selectBucket groups values into buckets indexed by exact count, then
// scans buckets from the highest count down, collecting values until k are
// gathered. No value can appear more than n times, so n+1 buckets cover
// every possible count and the whole selection runs in O(n) without a sort.
func selectBucket[E comparable](freq map[E]int, n, k int) []E {
	if k > len(freq) {
		k = len(freq)
	}
	out := make([]E, 0, k)
	if k == 0 {
		return out
	}

	buckets := make([][]E, n+1)
	for v, c := range freq {
		buckets[c] = append(buckets[c], v)
	}

	// Every present value has count >= 1, so the scan stops before bucket 0.
	// Across the whole scan each distinct value is visited at most once.
	for c := n; c >= 1 && len(out) < k; c-- {
		for _, v := range buckets[c] {
			out = append(out, v)
			if len(out) == k {
				break
			}
		}
	}
	return out
}
