package vlist

// Config carries one update's worth of window configuration. Fields are
// independently optional; the builder records which were explicitly set
// so the window can tell "absent" from a zero value. A Config is treated
// as immutable once passed to Update.
//
// Defaults when absent: Items — empty; TotalItems — len(items); Layout —
// nil (engine default); ScrollTarget — the bound container. RenderItem and
// KeyFunc keep their prior effective values. ScrollToIndex is sticky: it
// is pushed to the engine only when explicitly set, and omitting it later
// never re-triggers or clears an earlier request.
type Config[T any] struct {
	items        []T
	total        int
	hasTotal     bool
	layout       Layout
	scrollTarget *Element
	render       func(T, int) Component
	key          func(T) any
	scrollIdx    int
	hasScrollIdx bool
}

// NewConfig creates an empty configuration.
func NewConfig[T any]() *Config[T] {
	return &Config[T]{}
}

// Items sets the ordered item collection. The config holds a shared,
// non-owning reference.
func (c *Config[T]) Items(items []T) *Config[T] {
	c.items = items
	return c
}

// TotalItems sets the virtual item count, which may exceed the items
// actually supplied.
func (c *Config[T]) TotalItems(n int) *Config[T] {
	c.total = n
	c.hasTotal = true
	return c
}

// Layout sets the layout strategy passed through to the geometry engine.
func (c *Config[T]) Layout(l Layout) *Config[T] {
	c.layout = l
	return c
}

// ScrollTarget sets the element whose scroll events drive the engine.
func (c *Config[T]) ScrollTarget(el *Element) *Config[T] {
	c.scrollTarget = el
	return c
}

// RenderItem sets the item render function.
func (c *Config[T]) RenderItem(fn func(item T, index int) Component) *Config[T] {
	c.render = fn
	return c
}

// KeyFunc sets the key function. Keys must be stable across renders for
// the same logical item.
func (c *Config[T]) KeyFunc(fn func(item T) any) *Config[T] {
	c.key = fn
	return c
}

// ScrollToIndex requests a scroll to the given item index on this update.
func (c *Config[T]) ScrollToIndex(i int) *Config[T] {
	c.scrollIdx = i
	c.hasScrollIdx = true
	return c
}
