// Package monotonic answers next-greater-value distance queries over a
// slice in a single linear pass.
package monotonic

import "cmp"

// NextGreater returns, for each position in values, the distance to the
// nearest following position holding a strictly greater value, or 0 when no
// such position exists. The result always has len(values) entries.
//
// The pass maintains a stack of indices whose values are still waiting for
// something greater; arriving at a larger value resolves every smaller
// index on top of the stack. Each index is pushed and popped at most once,
// so the scan is O(n) with O(n) worst-case stack space.
func NextGreater[S ~[]E, E cmp.Ordered](values S) []int {
	out := make([]int, len(values))
	stack := make([]int, 0, len(values))

	for i, v := range values {
		for len(stack) > 0 && values[stack[len(stack)-1]] < v {
			j := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			out[j] = i - j
		}
		stack = append(stack, i)
	}
	return out
}
