package vlist

// Range is the contiguous window of item indices currently visible.
// A range with Last < First is empty and renders nothing.
type Range struct {
	First int
	Last  int
}

// EmptyRange is the canonical empty window.
var EmptyRange = Range{First: 0, Last: -1}

// Empty reports whether the range contains no indices.
func (r Range) Empty() bool {
	return r.Last < r.First
}

// Len returns the number of indices in the range.
func (r Range) Len() int {
	if r.Empty() {
		return 0
	}
	return r.Last - r.First + 1
}

// Contains reports whether index i falls inside the range.
func (r Range) Contains(i int) bool {
	return i >= r.First && i <= r.Last
}

// Shift returns the range moved by delta indices.
func (r Range) Shift(delta int) Range {
	if r.Empty() {
		return r
	}
	return Range{First: r.First + delta, Last: r.Last + delta}
}
