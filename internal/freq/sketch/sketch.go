// Package sketch tracks approximate heavy hitters over a stream of string
// keys in bounded memory.
//
// The tracker is a HeavyKeeper: a Width x Depth array of (fingerprint,
// count) cells plus a k-bounded min-heap of the current heavy hitters. Each
// observed key hashes to one cell per row. A cell owned by the same
// fingerprint is incremented; a cell owned by a different fingerprint
// decays with probability decay^count, and a cell that decays to zero is
// claimed by the new key. Sustained heavy keys therefore hold their cells
// while one-off noise is ground away, at the cost of counts being
// estimates rather than exact.
//
// Use the exact engine (internal/freq/topk) when the whole input fits in
// memory; use a Tracker when it doesn't, or when keys arrive incrementally.
package sketch

import (
	"math"
	"sort"
	"sync/atomic"

	"github.com/cespare/xxhash/v2"
)

// decayLookupSize covers counts 0-255 with O(1) threshold lookup.
const decayLookupSize = 256

// globalSeed is an atomic counter for RNG seeding, avoiding a time.Now()
// syscall per tracker.
var globalSeed uint64 = 1

// cell pairs a key fingerprint with its estimated count.
type cell struct {
	fingerprint uint64
	count       uint64
}

// Config holds initialization parameters. Zero or out-of-range fields fall
// back to the defaults.
type Config struct {
	K     int
	Width int
	Depth int
	Decay float64
}

// DefaultConfig returns sensible defaults: K=50, width=2048, depth=5, decay=0.9.
func DefaultConfig() Config {
	return Config{K: 50, Width: 2048, Depth: 5, Decay: 0.9}
}

// Tracker tracks the approximately-K most frequent keys seen so far.
// A Tracker is not safe for concurrent use.
type Tracker struct {
	k     int
	width int
	depth int
	decay float64

	cells []cell // depth rows of width cells
	heap  list

	// decayThresholds[c] is decay^c scaled to the uint64 range, so a decay
	// roll is one RNG step and one compare for counts below the table size.
	decayThresholds [decayLookupSize]uint64
	rngState        uint64
}

// New creates a Tracker with the given configuration.
func New(cfg Config) *Tracker {
	def := DefaultConfig()
	if cfg.K <= 0 {
		cfg.K = def.K
	}
	if cfg.Width <= 0 {
		cfg.Width = def.Width
	}
	if cfg.Depth <= 0 {
		cfg.Depth = def.Depth
	}
	if cfg.Decay <= 0 || cfg.Decay >= 1 {
		cfg.Decay = def.Decay
	}

	t := &Tracker{
		k:        cfg.K,
		width:    cfg.Width,
		depth:    cfg.Depth,
		decay:    cfg.Decay,
		cells:    make([]cell, cfg.Width*cfg.Depth),
		heap:     make(list, 0, cfg.K),
		rngState: atomic.AddUint64(&globalSeed, 1),
	}

	for i := range t.decayThresholds {
		prob := math.Pow(cfg.Decay, float64(i))
		if prob >= 1.0 {
			t.decayThresholds[i] = math.MaxUint64
		} else {
			t.decayThresholds[i] = uint64(prob * float64(math.MaxUint64))
		}
	}
	return t
}

// Observe feeds keys through the tracker.
func (t *Tracker) Observe(keys ...string) {
	for _, key := range keys {
		t.observe(key)
	}
}

func (t *Tracker) observe(key string) {
	// Sum64String avoids the []byte(key) allocation.
	h64 := xxhash.Sum64String(key)
	width := uint64(t.width)
	var maxCount uint64

	for d := 0; d < t.depth; d++ {
		idx := mix(h64^uint64(d)) % width
		c := &t.cells[uint64(d)*width+idx]

		switch {
		case c.count == 0:
			c.fingerprint = h64
			c.count = 1
			maxCount = max(maxCount, 1)
		case c.fingerprint == h64:
			c.count++
			maxCount = max(maxCount, c.count)
		default:
			if t.decayRoll(c.count) {
				c.count--
				if c.count == 0 {
					c.fingerprint = h64
					c.count = 1
					maxCount = max(maxCount, 1)
				}
			}
		}
	}

	t.offer(key, maxCount)
}

// offer proposes a key with its current estimate for heap membership.
func (t *Tracker) offer(key string, count uint64) {
	if idx, found := t.heap.linearSearch(key); found {
		if count > t.heap[idx].Count {
			t.heap[idx].Count = count
			t.heap.fix(idx)
		}
		return
	}

	if len(t.heap) < t.k {
		t.heap.push(Item{Key: key, Count: count})
		return
	}

	// Heap full: replace the minimum only if the newcomer beats it.
	if count > t.heap[0].Count {
		t.heap[0] = Item{Key: key, Count: count}
		t.heap.fix(0)
	}
}

// decayRoll returns true if a colliding cell at count should decay, using a
// Xorshift64 step against the precomputed threshold table.
func (t *Tracker) decayRoll(count uint64) bool {
	x := t.rngState
	x ^= x << 13
	x ^= x >> 7
	x ^= x << 17
	t.rngState = x

	if count < decayLookupSize {
		return x < t.decayThresholds[count]
	}

	// Large count fallback, computed on the fly.
	prob := math.Pow(t.decay, float64(count))
	return x < uint64(prob*float64(math.MaxUint64))
}

// Query reports whether key is currently a tracked heavy hitter and its
// estimated count.
func (t *Tracker) Query(key string) (bool, uint64) {
	if idx, found := t.heap.linearSearch(key); found {
		return true, t.heap[idx].Count
	}
	return false, 0
}

// List returns the tracked heavy hitters sorted by estimated count
// descending. The returned slice is a copy.
func (t *Tracker) List() []Item {
	out := make([]Item, len(t.heap))
	copy(out, t.heap)
	sort.Slice(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})
	return out
}

// K returns the maximum number of tracked keys.
func (t *Tracker) K() int { return t.k }

// Width returns the cell array width.
func (t *Tracker) Width() int { return t.width }

// Depth returns the number of cell rows.
func (t *Tracker) Depth() int { return t.depth }

// Decay returns the decay probability base.
func (t *Tracker) Decay() float64 { return t.decay }

// decayProb returns decay^count as the tracker applies it (for testing).
func (t *Tracker) decayProb(count uint64) float64 {
	if count < decayLookupSize {
		return float64(t.decayThresholds[count]) / float64(math.MaxUint64)
	}
	return math.Pow(t.decay, float64(count))
}

// mix applies SplitMix64 to decorrelate hash bits for independent row
// indices.
func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
