package topk

// candidate pairs a value with its occurrence count while a selector runs.
// Candidates never outlive the selection call that created them.
type candidate[E comparable] struct {
	value E
	count int
}

// minHeap is a count-ordered min-heap of candidates. Heap operations are
// implemented manually instead of through container/heap so the element
// type stays concrete and push/pop avoid interface boxing.
type minHeap[E comparable] []candidate[E]

func (h minHeap[E]) less(i, j int) bool { return h[i].count < h[j].count }
func (h minHeap[E]) swap(i, j int)      { h[i], h[j] = h[j], h[i] }

// push appends a candidate and bubbles it up to restore the heap invariant.
func (h *minHeap[E]) push(c candidate[E]) {
	*h = append(*h, c)
	h.up(len(*h) - 1)
}

// popMin removes and returns the root, the candidate with the lowest count.
func (h *minHeap[E]) popMin() candidate[E] {
	old := *h
	n := len(old) - 1
	root := old[0]
	old[0] = old[n]
	*h = old[:n]
	h.down(0)
	return root
}

// up bubbles element j toward the root until the heap invariant is restored.
func (h minHeap[E]) up(j int) {
	for {
		i := (j - 1) / 2 // parent index
		if i == j || !h.less(j, i) {
			break
		}
		h.swap(i, j)
		j = i
	}
}

// down sinks element i toward the leaves until the heap invariant is restored.
func (h minHeap[E]) down(i int) {
	n := len(h)
	for {
		j1 := 2*i + 1
		if j1 >= n || j1 < 0 { // j1 < 0 after int overflow
			break
		}
		j := j1
		if j2 := j1 + 1; j2 < n && h.less(j2, j1) {
			j = j2 // pick smaller child
		}
		if !h.less(j, i) {
			break
		}
		h.swap(i, j)
		i = j
	}
}

// selectHeap keeps at most k candidates in a min-heap, evicting the current
// minimum whenever the heap grows past k. When equal counts sit at the k
// boundary, which of them survives eviction depends on map iteration order.
// Draining the heap yields ascending counts, so the result is filled back
// to front.
func selectHeap[E comparable](freq map[E]int, k int) []E {
	if k > len(freq) {
		k = len(freq)
	}
	if k == 0 {
		return []E{}
	}

	h := make(minHeap[E], 0, k+1)
	for v, c := range freq {
		h.push(candidate[E]{value: v, count: c})
		if len(h) > k {
			h.popMin()
		}
	}

	out := make([]E, k)
	for i := k - 1; i >= 0; i-- {
		out[i] = h.popMin().value
	}
	return out
}
