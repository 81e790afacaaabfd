package sketch

// Item is a tracked heavy hitter.
type Item struct {
	Key   string
	Count uint64
}

// list is a count-ordered min-heap of Items. Heap operations are implemented
// manually instead of through container/heap to avoid interface boxing on
// every operation.
type list []Item

// linearSearch finds an item by key with a backwards linear scan. For the
// small k values a tracker holds, the slice fits in cache and a scan beats a
// side map; recently touched items cluster toward the end after heap
// operations, so scanning backwards finds them sooner.
func (l list) linearSearch(key string) (int, bool) {
	for i := len(l) - 1; i >= 0; i-- {
		if l[i].Key == key {
			return i, true
		}
	}
	return -1, false
}

// less orders by count (min-heap) with the key as tiebreaker so heap shape
// is deterministic for a given item set.
func (l list) less(i, j int) bool {
	if l[i].Count != l[j].Count {
		return l[i].Count < l[j].Count
	}
	return l[i].Key < l[j].Key
}

func (l list) swap(i, j int) { l[i], l[j] = l[j], l[i] }

// push appends an item and bubbles it up to restore the heap invariant.
func (l *list) push(it Item) {
	*l = append(*l, it)
	l.up(len(*l) - 1)
}

// up bubbles element j toward the root until the heap invariant is restored.
func (l list) up(j int) {
	for {
		i := (j - 1) / 2 // parent index
		if i == j || !l.less(j, i) {
			break
		}
		l.swap(i, j)
		j = i
	}
}

// down sinks element i0 toward the leaves until the heap invariant is
// restored. Returns true if the element moved.
func (l list) down(i0, n int) bool {
	i := i0
	for {
		j1 := 2*i + 1
		if j1 >= n || j1 < 0 { // j1 < 0 after int overflow
			break
		}
		j := j1
		if j2 := j1 + 1; j2 < n && l.less(j2, j1) {
			j = j2 // pick smaller child
		}
		if !l.less(j, i) {
			break
		}
		l.swap(i, j)
		i = j
	}
	return i > i0
}

// fix restores the heap invariant after element i has changed its count.
func (l *list) fix(i int) {
	if !l.down(i, len(*l)) {
		l.up(i)
	}
}
