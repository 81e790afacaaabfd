// Package topk selects the k most frequent elements of a slice.
//
// Selection runs in two phases: a single counting pass builds a map from
// each distinct value to its occurrence count, then one of three
// interchangeable strategies extracts the k highest-count values from that
// map:
//
//   - StrategySort sorts every (value, count) pair and truncates. O(D log D)
//     for D distinct values; the simplest option and the baseline the other
//     two are checked against.
//   - StrategyHeap keeps a k-bounded min-heap of candidates, evicting the
//     current minimum whenever the heap grows past k. O(D log k) with O(k)
//     extra space; wins when k is much smaller than D.
//   - StrategyBucket groups values into buckets indexed by exact count and
//     scans from the highest bucket down. A count can never exceed the input
//     length, so the bucket array is bounded and the whole selection is O(n).
//
// All three return the same value set for the same input. Order among
// equal counts is unspecified: the counting map iterates in arbitrary order
// and no strategy sorts stably, so ties may land in either relative order,
// and when a tie straddles the k boundary the boundary member itself is
// unspecified. Callers comparing results across strategies must compare
// sets, not sequences, wherever ties are possible.
package topk

import "errors"

var (
	// ErrNegativeK reports a negative k. It is the only invalid input:
	// every other (slice, k, strategy) combination has a defined result.
	ErrNegativeK = errors.New("topk: negative k")

	// ErrUnknownStrategy reports a Strategy value outside the declared set.
	ErrUnknownStrategy = errors.New("topk: unknown strategy")
)

// Strategy identifies which selection algorithm Select runs.
type Strategy int

const (
	StrategySort Strategy = iota
	StrategyHeap
	StrategyBucket
)

// String returns the name ParseStrategy accepts for s.
func (s Strategy) String() string {
	switch s {
	case StrategySort:
		return "sort"
	case StrategyHeap:
		return "heap"
	case StrategyBucket:
		return "bucket"
	}
	return "unknown"
}

// ParseStrategy maps a strategy name ("sort", "heap", "bucket") to its
// Strategy value.
func ParseStrategy(name string) (Strategy, error) {
	switch name {
	case "sort":
		return StrategySort, nil
	case "heap":
		return StrategyHeap, nil
	case "bucket":
		return StrategyBucket, nil
	}
	return 0, ErrUnknownStrategy
}

// Select returns up to k values from values, ordered by descending
// occurrence count. The result length is min(k, D) where D is the number of
// distinct values: k = 0 yields an empty result and k >= D yields every
// distinct value. The returned slice is always non-nil and owned by the
// caller; values is only read.
//
// Arguments are validated before any counting work: a negative k returns
// ErrNegativeK and a Strategy outside the declared set returns
// ErrUnknownStrategy, both with no partial computation performed.
func Select[S ~[]E, E comparable](values S, k int, strategy Strategy) ([]E, error) {
	if k < 0 {
		return nil, ErrNegativeK
	}
	switch strategy {
	case StrategySort, StrategyHeap, StrategyBucket:
	default:
		return nil, ErrUnknownStrategy
	}

	freq := Count(values)

	switch strategy {
	case StrategyHeap:
		return selectHeap(freq, k), nil
	case StrategyBucket:
		return selectBucket(freq, len(values), k), nil
	}
	return selectSort(freq, k), nil
}
