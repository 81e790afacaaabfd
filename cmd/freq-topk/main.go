// freq-topk ranks the distinct tokens of its input by occurrence count and
// prints the top k, one "token count" pair per line, most frequent first.
//
// Input is read as whitespace-separated tokens from stdin, or from the
// trailing command-line arguments if any are given. Diagnostics go to
// stderr; only results go to stdout.
//
// Usage Examples
// ==============
//
// Top 10 words of a file, linear-time bucket selection (the default):
//
//	freq-topk < access.log
//
// Top 3 with the bounded-heap strategy, tokens given inline:
//
//	freq-topk -k 3 -strategy heap a b a c a b
//
// Cross-check all three strategies against each other before printing:
//
//	freq-topk -k 20 -verify < access.log
//
// Approximate mode for streams too large to count exactly, using a
// bounded-memory heavy-hitter tracker (counts become estimates):
//
//	freq-topk -k 20 -approx < firehose.log
//
// Exit Codes
// ==========
//
// 0: Success.
// 1: Invalid flags, unreadable input, or (with -verify) a strategy
// disagreement.

package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"

	"freq.lopezb.com/internal/freq/sketch"
	"freq.lopezb.com/internal/freq/topk"
)

func main() {
	var (
		k            = flag.Int("k", 10, "number of values to report")
		strategyName = flag.String("strategy", "bucket", "selection strategy: sort, heap or bucket")
		verify       = flag.Bool("verify", false, "run every strategy and fail if they disagree")
		approx       = flag.Bool("approx", false, "use the bounded-memory tracker; counts become estimates")
	)
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	tokens, err := readTokens(flag.Args(), os.Stdin)
	if err != nil {
		logger.Error("reading input", "error", err)
		os.Exit(1)
	}

	if *approx {
		items, err := approxList(tokens, *k)
		if err != nil {
			logger.Error("selection failed", "k", *k, "error", err)
			os.Exit(1)
		}
		for _, item := range items {
			fmt.Printf("%s %d\n", item.Key, item.Count)
		}
		return
	}

	strategy, err := topk.ParseStrategy(*strategyName)
	if err != nil {
		logger.Error("invalid -strategy", "value", *strategyName, "error", err)
		os.Exit(1)
	}

	if *verify {
		if err := verifyAgreement(tokens, *k); err != nil {
			logger.Error("strategy verification failed", "error", err)
			os.Exit(1)
		}
	}

	result, err := topk.Select(tokens, *k, strategy)
	if err != nil {
		logger.Error("selection failed", "k", *k, "strategy", strategy.String(), "error", err)
		os.Exit(1)
	}

	counts := topk.Count(tokens)
	for _, v := range result {
		fmt.Printf("%s %d\n", v, counts[v])
	}
}

// readTokens returns the trailing arguments if any were given, otherwise
// the whitespace-separated tokens of r.
func readTokens(args []string, r io.Reader) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}

	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	var tokens []string
	for sc.Scan() {
		tokens = append(tokens, sc.Text())
	}
	return tokens, sc.Err()
}

// approxList runs tokens through a bounded-memory tracker and returns the
// estimated heavy hitters, most frequent first. It holds the approximate
// path to the same argument contract as the exact engine: a negative k is
// rejected before any tracking work, and k = 0 yields an empty result
// rather than falling back to the tracker's default capacity.
func approxList(tokens []string, k int) ([]sketch.Item, error) {
	if k < 0 {
		return nil, topk.ErrNegativeK
	}
	if k == 0 {
		return nil, nil
	}

	tr := sketch.New(sketch.Config{K: k})
	tr.Observe(tokens...)
	return tr.List(), nil
}

// verifyAgreement runs all three strategies over tokens and checks that
// they agree. Ties at the k boundary legitimately let different strategies
// pick different boundary members, so agreement is checked on the count
// profile (the sorted sequence of returned counts), which is identical
// across strategies regardless of tie choices, rather than on the exact
// value sets.
func verifyAgreement(tokens []string, k int) error {
	strategies := []topk.Strategy{topk.StrategySort, topk.StrategyHeap, topk.StrategyBucket}
	counts := topk.Count(tokens)

	var reference []int
	for _, strategy := range strategies {
		result, err := topk.Select(tokens, k, strategy)
		if err != nil {
			return fmt.Errorf("%s: %w", strategy, err)
		}

		profile := make([]int, len(result))
		for i, v := range result {
			profile[i] = counts[v]
		}
		if !slices.IsSortedFunc(profile, func(a, b int) int { return b - a }) {
			return fmt.Errorf("%s: counts not descending: %v", strategy, profile)
		}

		if reference == nil {
			reference = profile
			continue
		}
		if !slices.Equal(profile, reference) {
			return fmt.Errorf("%s: count profile %v differs from %s profile %v",
				strategy, profile, strategies[0], reference)
		}
	}
	return nil
}
