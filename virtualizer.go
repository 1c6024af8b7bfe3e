package vlist

// Virtualizer is the geometry engine: it owns the scroll position and
// viewport size for one container element, follows its scroll target's
// scroll/resize events, and emits EventRangeChanged on the container
// whenever the visible index range moves. Emission is synchronous and in
// order; consumers that need coalescing do it themselves.
type Virtualizer[T any] struct {
	container *Element

	items      []T
	totalItems int
	layout     Layout
	target     *Element

	unsubScroll func()
	unsubResize func()

	scrollTop int
	viewportH int
	rng       Range
}

// NewVirtualizer creates a geometry engine scoped to container. The
// scroll target starts as the container itself.
func NewVirtualizer[T any](container *Element) *Virtualizer[T] {
	v := &Virtualizer[T]{
		container: container,
		rng:       EmptyRange,
	}
	v.SetScrollTarget(container)
	return v
}

// Container returns the element the engine is scoped to.
func (v *Virtualizer[T]) Container() *Element {
	return v.container
}

// Items returns the current item reference.
func (v *Virtualizer[T]) Items() []T {
	return v.items
}

// SetItems replaces the engine's item reference.
func (v *Virtualizer[T]) SetItems(items []T) *Virtualizer[T] {
	v.items = items
	v.recompute()
	return v
}

// TotalItems returns the virtual item count.
func (v *Virtualizer[T]) TotalItems() int {
	return v.totalItems
}

// SetTotalItems sets the virtual item count, which may exceed the items
// actually held.
func (v *Virtualizer[T]) SetTotalItems(n int) *Virtualizer[T] {
	if n < 0 {
		n = 0
	}
	v.totalItems = n
	v.recompute()
	return v
}

// SetLayout sets the layout strategy. Nil selects the engine default
// (fixed single-line rows).
func (v *Virtualizer[T]) SetLayout(l Layout) *Virtualizer[T] {
	v.layout = l
	v.recompute()
	return v
}

// SetScrollTarget points the engine at the element whose scroll and
// resize events drive it. Setting the current target again is a no-op.
func (v *Virtualizer[T]) SetScrollTarget(target *Element) *Virtualizer[T] {
	if target == nil || target == v.target {
		return v
	}
	if v.unsubScroll != nil {
		v.unsubScroll()
	}
	if v.unsubResize != nil {
		v.unsubResize()
	}
	v.target = target
	v.unsubScroll = target.On(EventScroll, func(e Event) {
		v.ScrollBy(e.Delta)
	})
	v.unsubResize = target.On(EventResize, func(e Event) {
		v.viewportH = e.Height
		v.recompute()
	})
	_, v.viewportH = target.Size()
	v.recompute()
	return v
}

// ScrollTarget returns the element currently driving the engine.
func (v *Virtualizer[T]) ScrollTarget() *Element {
	return v.target
}

// ScrollTop returns the current scroll position in layout units.
func (v *Virtualizer[T]) ScrollTop() int {
	return v.scrollTop
}

// ScrollTo scrolls to the given position, clamped to the scrollable
// extent.
func (v *Virtualizer[T]) ScrollTo(top int) *Virtualizer[T] {
	v.scrollTop = top
	v.recompute()
	return v
}

// ScrollBy scrolls by delta layout units (positive = down).
func (v *Virtualizer[T]) ScrollBy(delta int) *Virtualizer[T] {
	return v.ScrollTo(v.scrollTop + delta)
}

// ScrollToIndex scrolls so the item at index is at the top of the
// viewport, clamped to the scrollable extent.
func (v *Virtualizer[T]) ScrollToIndex(index int) *Virtualizer[T] {
	if index < 0 {
		index = 0
	}
	if v.totalItems > 0 && index >= v.totalItems {
		index = v.totalItems - 1
	}
	return v.ScrollTo(v.effectiveLayout().Offset(index))
}

// Range returns the currently visible index range.
func (v *Virtualizer[T]) Range() Range {
	return v.rng
}

// ViewportHeight returns the viewport size in layout units.
func (v *Virtualizer[T]) ViewportHeight() int {
	return v.viewportH
}

func (v *Virtualizer[T]) effectiveLayout() Layout {
	if v.layout == nil {
		return FixedHeight{Row: 1}
	}
	return v.layout
}

// recompute clamps the scroll position, recalculates the visible range,
// and notifies the container when the range moved.
func (v *Virtualizer[T]) recompute() {
	l := v.effectiveLayout()
	maxTop := l.Extent(v.totalItems) - v.viewportH
	if maxTop < 0 {
		maxTop = 0
	}
	if v.scrollTop > maxTop {
		v.scrollTop = maxTop
	}
	if v.scrollTop < 0 {
		v.scrollTop = 0
	}
	next := l.Range(v.scrollTop, v.viewportH, v.totalItems)
	if next == v.rng {
		return
	}
	v.rng = next
	v.container.Dispatch(Event{Type: EventRangeChanged, Range: next})
}
