package vlist

// Layout converts scroll geometry into a visible index range. Implementations
// are pure: the virtualizer owns all mutable scroll state.
type Layout interface {
	// Range returns the indices visible in a viewport of the given height
	// scrolled to scrollTop. Empty when nothing is visible.
	Range(scrollTop, viewportHeight, totalItems int) Range

	// Offset returns the scroll position at which item index begins.
	Offset(index int) int

	// Extent returns the total scrollable size for the given item count.
	Extent(totalItems int) int
}

// FixedHeight lays out items as rows of a constant height. Row values
// below 1 are treated as 1.
type FixedHeight struct {
	Row int
}

func (f FixedHeight) row() int {
	if f.Row < 1 {
		return 1
	}
	return f.Row
}

// Range implements Layout.
func (f FixedHeight) Range(scrollTop, viewportHeight, totalItems int) Range {
	if totalItems <= 0 || viewportHeight <= 0 {
		return EmptyRange
	}
	row := f.row()
	if scrollTop < 0 {
		scrollTop = 0
	}
	first := scrollTop / row
	if first >= totalItems {
		return EmptyRange
	}
	last := (scrollTop + viewportHeight - 1) / row
	if last >= totalItems {
		last = totalItems - 1
	}
	return Range{First: first, Last: last}
}

// Offset implements Layout.
func (f FixedHeight) Offset(index int) int {
	if index < 0 {
		return 0
	}
	return index * f.row()
}

// Extent implements Layout.
func (f FixedHeight) Extent(totalItems int) int {
	if totalItems < 0 {
		return 0
	}
	return totalItems * f.row()
}
