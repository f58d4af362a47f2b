// Package ordering sorts columns for painter's-algorithm drawing.
//
// Columns are drawn in ascending depth, where depth is w+d: the sum of the
// grid coordinates grows toward the viewer, so every column is painted
// before the nearer columns that may overlap it. The sort is stable so
// columns on the same anti-diagonal keep their enumeration order and the
// output is deterministic.
package ordering

import (
	"cmp"
	"slices"
)

// Depth returns the painter's depth of grid cell (w, d).
func Depth(w, d int) int { return w + d }

// Sort orders items back to front by the depth reported for each item.
// Items with equal depth keep their relative order.
func Sort[T any](items []T, depth func(T) int) {
	slices.SortStableFunc(items, func(a, b T) int {
		return cmp.Compare(depth(a), depth(b))
	})
}

// IsBackToFront reports whether items are in non-decreasing depth order.
func IsBackToFront[T any](items []T, depth func(T) int) bool {
	return slices.IsSortedFunc(items, func(a, b T) int {
		return cmp.Compare(depth(a), depth(b))
	})
}
